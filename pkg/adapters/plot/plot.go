// Package plot renders gonum plots for paper.Figure.AddFig.
package plot

import (
	"fmt"
	"io"

	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/aretw0/aastex/internal/platform"
	"github.com/aretw0/aastex/pkg/paper"
)

// DefaultAspect is height over width when only a width is requested.
const DefaultAspect = 0.75

// Renderer draws a gonum plot. The zero size is one journal column wide.
type Renderer struct {
	Plot *gonumplot.Plot
}

// New wraps p.
func New(p *gonumplot.Plot) *Renderer {
	return &Renderer{Plot: p}
}

// Render implements paper.Renderer. Vector formats (pdf, eps, svg) and
// raster formats at the default resolution go through Plot.Save; raster
// formats with an explicit DPI are drawn on a vgimg canvas.
func (r *Renderer) Render(path string, opts paper.RenderOptions) error {
	if r.Plot == nil {
		return fmt.Errorf("plot: nil plot")
	}
	w, h := size(opts)

	if opts.DPI <= 0 {
		if err := r.Plot.Save(w, h, path); err != nil {
			return fmt.Errorf("plot: save %s: %w", path, err)
		}
		return nil
	}

	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(int(opts.DPI)))
	r.Plot.Draw(draw.New(c))

	var wt io.WriterTo
	switch opts.Format {
	case "png":
		wt = vgimg.PngCanvas{Canvas: c}
	case "jpg", "jpeg":
		wt = vgimg.JpegCanvas{Canvas: c}
	case "tif", "tiff":
		wt = vgimg.TiffCanvas{Canvas: c}
	default:
		if err := r.Plot.Save(w, h, path); err != nil {
			return fmt.Errorf("plot: save %s: %w", path, err)
		}
		return nil
	}

	return platform.WriteAtomic(path, 0644, func(out io.Writer) error {
		_, err := wt.WriteTo(out)
		return err
	})
}

func size(opts paper.RenderOptions) (w, h vg.Length) {
	width := opts.Width
	if width <= 0 {
		width = paper.ColumnWidthInches
	}
	height := opts.Height
	if height <= 0 {
		height = width * DefaultAspect
	}
	return vg.Length(width) * vg.Inch, vg.Length(height) * vg.Inch
}

var _ paper.Renderer = (*Renderer)(nil)
