package paper

import "github.com/aretw0/aastex/pkg/latex"

// FigAlign selects between the AAS \fig, \leftfig and \rightfig macros.
type FigAlign int

const (
	AlignCenter FigAlign = iota
	AlignLeft
	AlignRight
)

// Fig is one panel of a Gridline.
type Fig struct {
	File    string
	Width   string
	Caption string
	Align   FigAlign
}

// NewFig creates a centered panel.
func NewFig(file, width, caption string) *Fig {
	return &Fig{File: file, Width: width, Caption: caption}
}

// NewLeftFig creates a left-aligned panel.
func NewLeftFig(file, width, caption string) *Fig {
	return &Fig{File: file, Width: width, Caption: caption, Align: AlignLeft}
}

// NewRightFig creates a right-aligned panel.
func NewRightFig(file, width, caption string) *Fig {
	return &Fig{File: file, Width: width, Caption: caption, Align: AlignRight}
}

// Serialize implements latex.Node.
func (f *Fig) Serialize() latex.Fragment {
	name := "fig"
	switch f.Align {
	case AlignLeft:
		name = "leftfig"
	case AlignRight:
		name = "rightfig"
	}
	return latex.NewCommand(name, graphicsPath(f.File), f.Width, f.Caption).Serialize()
}

// Gridline is a row of panels inside a Figure.
type Gridline struct {
	Figs []*Fig
}

// NewGridline creates a row of panels.
func NewGridline(figs ...*Fig) *Gridline {
	return &Gridline{Figs: figs}
}

// Serialize implements latex.Node.
func (g *Gridline) Serialize() latex.Fragment {
	var inner string
	for _, f := range g.Figs {
		inner += f.Serialize().Text
	}
	return latex.NewCommand("gridline", inner).Serialize()
}

// Caption is a float caption.
type Caption struct {
	Text string
}

// NewCaption creates a caption.
func NewCaption(text string) *Caption {
	return &Caption{Text: text}
}

// Serialize implements latex.Node.
func (c *Caption) Serialize() latex.Fragment {
	return latex.NewCommand("caption", c.Text).Serialize()
}
