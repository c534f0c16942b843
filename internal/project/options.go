package project

import (
	"log/slog"
	"time"

	"github.com/aretw0/aastex/pkg/paper"
)

// options holds the configuration for opening and building a project.
type options struct {
	logger       *slog.Logger
	output       string
	docOpts      []paper.DocumentOption
	debounce     time.Duration
	errorHandler func(error)
}

// Option configures a Project.
type Option func(*options)

func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for builds and the watcher.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithOutput overrides the .tex path from the manifest.
func WithOutput(path string) Option {
	return func(o *options) {
		o.output = path
	}
}

// WithDocumentOptions applies document options after those from the manifest.
func WithDocumentOptions(opts ...paper.DocumentOption) Option {
	return func(o *options) {
		o.docOpts = append(o.docOpts, opts...)
	}
}

// WithDebounce sets the quiet period before a change triggers a rebuild.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithWatcherErrorHandler receives watch errors, including failed rebuilds,
// which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
