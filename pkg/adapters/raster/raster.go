// Package raster renders in-memory images for paper.Figure.AddFig.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/aretw0/aastex/internal/platform"
	"github.com/aretw0/aastex/pkg/paper"
)

// ErrUnsupportedFormat is returned for formats with no raster encoder,
// including vector formats such as pdf.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// DefaultJPEGQuality is used when Renderer.Quality is zero.
const DefaultJPEGQuality = 90

// Renderer writes an image.Image, rescaled when the render options give a
// physical size and a resolution.
type Renderer struct {
	Image   image.Image
	Quality int // jpeg only
}

// New wraps img.
func New(img image.Image) *Renderer {
	return &Renderer{Image: img}
}

type encoder func(w io.Writer, img image.Image) error

func (r *Renderer) encoder(format string) (encoder, error) {
	switch format {
	case "png":
		return png.Encode, nil
	case "jpg", "jpeg":
		q := r.Quality
		if q <= 0 {
			q = DefaultJPEGQuality
		}
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
		}, nil
	case "gif":
		return func(w io.Writer, img image.Image) error {
			return gif.Encode(w, img, nil)
		}, nil
	case "tif", "tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	case "bmp":
		return bmp.Encode, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Render implements paper.Renderer.
func (r *Renderer) Render(path string, opts paper.RenderOptions) error {
	if r.Image == nil {
		return errors.New("raster: nil image")
	}
	enc, err := r.encoder(opts.Format)
	if err != nil {
		return err
	}

	img := Scale(r.Image, opts)
	return platform.WriteAtomic(path, 0644, func(w io.Writer) error {
		return enc(w, img)
	})
}

// Scale resizes img to Width x Height inches at DPI. A missing height keeps
// the aspect ratio. Without a width or a DPI the image is returned as is.
func Scale(img image.Image, opts paper.RenderOptions) image.Image {
	if opts.Width <= 0 || opts.DPI <= 0 {
		return img
	}
	src := img.Bounds()
	if src.Empty() {
		return img
	}

	w := int(math.Round(opts.Width * opts.DPI))
	h := int(math.Round(opts.Height * opts.DPI))
	if opts.Height <= 0 {
		h = int(math.Round(float64(w) * float64(src.Dy()) / float64(src.Dx())))
	}
	if w < 1 || h < 1 || (w == src.Dx() && h == src.Dy()) {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}

var _ paper.Renderer = (*Renderer)(nil)
