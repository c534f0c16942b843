package paper

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/aretw0/aastex/internal/platform"
	"github.com/aretw0/aastex/pkg/latex"
)

// Defaults for AddImage and AddFig.
const (
	DefaultImageWidth = `0.8\columnwidth`
	DefaultPlacement  = `\centering`
	DefaultExtension  = "pdf"
)

var graphicxPackage = latex.NewPackageSet(latex.NewPackage("graphicx"))

// RenderOptions is what a Renderer receives from AddFig. Sizes are in
// inches; zero means the renderer's own default.
type RenderOptions struct {
	Format string // file extension without the dot, e.g. "pdf"
	Width  float64
	Height float64
	DPI    float64
}

// Renderer draws an in-memory plot to a file. Implementations choose the
// encoding from opts.Format and return an error for formats they cannot
// produce.
type Renderer interface {
	Render(path string, opts RenderOptions) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(path string, opts RenderOptions) error

// Render implements Renderer.
func (f RendererFunc) Render(path string, opts RenderOptions) error {
	return f(path, opts)
}

// ImageOption configures AddImage and AddFig. Width and placement shape the
// \includegraphics call; the remaining options only reach the Renderer.
type ImageOption func(*imageConfig)

type imageConfig struct {
	width     string
	placement string
	render    RenderOptions
}

func newImageConfig(opts []ImageOption) imageConfig {
	cfg := imageConfig{
		width:     DefaultImageWidth,
		placement: DefaultPlacement,
		render:    RenderOptions{Format: DefaultExtension},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithWidth sets the width passed to \includegraphics, e.g. `0.5\textwidth`.
func WithWidth(width string) ImageOption {
	return func(c *imageConfig) {
		c.width = width
	}
}

// WithoutWidth includes the image at its natural size.
func WithoutWidth() ImageOption {
	return WithWidth("")
}

// WithPlacement sets the command emitted before the image.
func WithPlacement(placement string) ImageOption {
	return func(c *imageConfig) {
		c.placement = placement
	}
}

// WithoutPlacement emits the image with no placement command.
func WithoutPlacement() ImageOption {
	return WithPlacement("")
}

// WithExtension selects the rendered file format. A leading dot is ignored.
func WithExtension(ext string) ImageOption {
	return func(c *imageConfig) {
		c.render.Format = strings.TrimPrefix(ext, ".")
	}
}

// WithSize sets the rendered size in inches.
func WithSize(width, height float64) ImageOption {
	return func(c *imageConfig) {
		c.render.Width = width
		c.render.Height = height
	}
}

// WithDPI sets the resolution for raster formats.
func WithDPI(dpi float64) ImageOption {
	return func(c *imageConfig) {
		c.render.DPI = dpi
	}
}

// FigureOption configures a Figure.
type FigureOption func(*Figure)

// WithPosition sets the float placement specifier, e.g. "ht".
func WithPosition(position string) FigureOption {
	return func(f *Figure) {
		f.Position = position
	}
}

// WithTempDir stores rendered figures in dir instead of the process-wide
// scratch directory.
func WithTempDir(dir string) FigureOption {
	return func(f *Figure) {
		f.tempDir = dir
	}
}

// WithFigureLogger sets the logger for render events.
func WithFigureLogger(logger *slog.Logger) FigureOption {
	return func(f *Figure) {
		f.logger = logger
	}
}

// Figure is a float holding images. The label is always its first child.
type Figure struct {
	Label    latex.Label
	Position string
	// Star selects figure*, spanning both columns.
	Star     bool
	Children []latex.Node

	tempDir string
	logger  *slog.Logger
}

// NewFigure creates a column-width figure. id is "prefix:name" or a bare name
// under the "fig" prefix; an empty id gets a generated name.
func NewFigure(id string, opts ...FigureOption) *Figure {
	spec := labelSpec{mode: labelText, text: id}
	if id == "" {
		spec = labelSpec{mode: labelAuto}
	}
	return newFigure(*resolveLabel(spec, "", PrefixFigure, "figure"), opts)
}

// NewFigureStar creates a page-width figure*.
func NewFigureStar(id string, opts ...FigureOption) *Figure {
	f := NewFigure(id, opts...)
	f.Star = true
	return f
}

// NewFigureWithLabel creates a figure anchored at an existing label.
func NewFigureWithLabel(l latex.Label, opts ...FigureOption) *Figure {
	return newFigure(l, opts)
}

func newFigure(l latex.Label, opts []FigureOption) *Figure {
	f := &Figure{Label: l}
	for _, opt := range opts {
		opt(f)
	}
	f.Children = []latex.Node{f.Label}
	return f
}

// Append adds content such as a Gridline or a Caption.
func (f *Figure) Append(nodes ...latex.Node) {
	f.Children = append(f.Children, nodes...)
}

// AddCaption appends a \caption.
func (f *Figure) AddCaption(text string) {
	f.Append(NewCaption(text))
}

// AddImage appends an \includegraphics for the file at path, resolved to an
// absolute path.
func (f *Figure) AddImage(path string, opts ...ImageOption) error {
	return f.addImage(path, newImageConfig(opts))
}

func (f *Figure) addImage(path string, cfg imageConfig) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve image path %s: %w", path, err)
	}

	if cfg.placement != "" {
		f.Append(latex.Raw(cfg.placement))
	}
	graphic := latex.Command{
		Name:      "includegraphics",
		Arguments: []string{graphicsPath(abs)},
		Packages:  graphicxPackage,
	}
	if cfg.width != "" {
		graphic.Options = []string{"width=" + cfg.width}
	}
	f.Append(graphic)
	return nil
}

// AddFig renders r to a uniquely named file in the scratch directory and
// includes it. Renderer errors are returned as is. The file is left in place
// for the LaTeX run.
func (f *Figure) AddFig(r Renderer, opts ...ImageOption) error {
	cfg := newImageConfig(opts)

	dir := f.tempDir
	if dir == "" {
		var err error
		if dir, err = platform.TempDir(); err != nil {
			return err
		}
	}

	ext := strings.TrimPrefix(cfg.render.Format, ".")
	if ext == "" {
		ext = DefaultExtension
	}
	cfg.render.Format = ext
	path := filepath.Join(dir, uuid.NewString()+"."+ext)

	if err := r.Render(path, cfg.render); err != nil {
		return err
	}
	if f.logger != nil {
		f.logger.Debug("rendered figure", "label", f.Label.Marker.String(), "path", path)
	}

	return f.addImage(path, cfg)
}

// Reference implements latex.Referencer.
func (f *Figure) Reference() (string, error) {
	return reference(&f.Label)
}

// Serialize implements latex.Node.
func (f *Figure) Serialize() latex.Fragment {
	env := &latex.Environment{Name: "figure", Star: f.Star, Children: f.Children}
	if f.Position != "" {
		env.Options = []string{f.Position}
	}
	return env.Serialize()
}

// graphicsPath prepares a path for \includegraphics: forward slashes, extra
// dots in the file name hidden in braces so graphicx finds the extension, and
// \detokenize around paths containing a tilde.
func graphicsPath(path string) string {
	path = filepath.ToSlash(path)

	dir, file := "", path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		dir, file = path[:i+1], path[i+1:]
	}
	if parts := strings.Split(file, "."); len(parts) > 2 {
		file = "{" + strings.Join(parts[:len(parts)-1], ".") + "}." + parts[len(parts)-1]
	}

	fixed := dir + file
	if strings.Contains(fixed, "~") {
		fixed = `\detokenize{` + fixed + `}`
	}
	return fixed
}
