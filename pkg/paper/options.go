package paper

import (
	"log/slog"
)

// DocumentOption configures a Document.
type DocumentOption func(*Document)

// WithClass sets the document class. Defaults to aastex631.
func WithClass(class string) DocumentOption {
	return func(d *Document) {
		d.class = class
	}
}

// WithClassOptions replaces the class options. Defaults to twocolumn.
func WithClassOptions(opts ...string) DocumentOption {
	return func(d *Document) {
		d.classOptions = opts
	}
}

// WithFontEncoding sets the fontenc option. Empty skips the package.
func WithFontEncoding(enc string) DocumentOption {
	return func(d *Document) {
		d.fontEncoding = enc
	}
}

// WithInputEncoding sets the inputenc option. Empty skips the package.
func WithInputEncoding(enc string) DocumentOption {
	return func(d *Document) {
		d.inputEncoding = enc
	}
}

// WithFontSize sets the size command opening the body, e.g. "small".
func WithFontSize(size string) DocumentOption {
	return func(d *Document) {
		d.fontSize = size
	}
}

// WithLModern toggles the Latin Modern fonts.
func WithLModern(enabled bool) DocumentOption {
	return func(d *Document) {
		d.lmodern = enabled
	}
}

// WithTextComp toggles the textcomp package.
func WithTextComp(enabled bool) DocumentOption {
	return func(d *Document) {
		d.textcomp = enabled
	}
}

// WithMicrotype toggles the microtype package.
func WithMicrotype(enabled bool) DocumentOption {
	return func(d *Document) {
		d.microtype = enabled
	}
}

// WithPageNumbers toggles page numbering. When off the page style is empty.
func WithPageNumbers(enabled bool) DocumentOption {
	return func(d *Document) {
		d.pageNumbers = enabled
	}
}

// WithIndent controls paragraph indentation. Without this option paragraphs
// are indented; false loads parskip instead.
func WithIndent(indent bool) DocumentOption {
	return func(d *Document) {
		d.indent = &indent
	}
}

// WithGeometry loads the geometry package with the given options. An empty
// value emits the bare key (e.g. "landscape").
func WithGeometry(opts map[string]string) DocumentOption {
	return func(d *Document) {
		d.geometry = opts
	}
}

// WithLogger sets the logger for the document.
func WithLogger(logger *slog.Logger) DocumentOption {
	return func(d *Document) {
		d.logger = logger
	}
}
