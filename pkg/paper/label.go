package paper

import (
	"fmt"
	"sync/atomic"

	"github.com/aretw0/aastex/pkg/latex"
)

// Marker prefixes used when a label is derived automatically.
const (
	PrefixAbstract      = "abs"
	PrefixSection       = "sec"
	PrefixSubsection    = "subsec"
	PrefixSubsubsection = "ssubsec"
	PrefixFigure        = "fig"
)

type labelMode int

const (
	labelAuto labelMode = iota
	labelNone
	labelExplicit
	labelText
)

// labelSpec is the caller's request: derive, omit, or use a given label.
type labelSpec struct {
	mode  labelMode
	label latex.Label
	text  string
}

// autoLabels numbers elements whose title gives no usable marker name.
// It advances at construction, never during serialization.
var autoLabels atomic.Uint64

// resolveLabel applies the label policy shared by every block element.
// title feeds automatic derivation; kind names the fallback marker
// ("section-7") when the title is empty or has no usable characters.
func resolveLabel(spec labelSpec, title, prefix, kind string) *latex.Label {
	switch spec.mode {
	case labelNone:
		return nil
	case labelExplicit:
		l := spec.label
		return &l
	case labelText:
		l := latex.NewLabel(latex.ParseMarker(spec.text, prefix))
		return &l
	}

	name := latex.SanitizeMarkerName(title)
	if name == "" {
		name = fmt.Sprintf("%s-%d", kind, autoLabels.Add(1))
	}
	l := latex.NewLabel(latex.NewMarker(name, prefix))
	return &l
}

// reference builds the \ref for a resolved label.
func reference(l *latex.Label) (string, error) {
	if l == nil {
		return "", latex.ErrMissingLabel
	}
	return latex.NewRef(l.Marker).Serialize().Text, nil
}
