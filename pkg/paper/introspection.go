package paper

import (
	"slices"

	"github.com/aretw0/introspection"

	"github.com/aretw0/aastex/pkg/latex"
)

// DocumentState exposes the document outline for observability.
type DocumentState struct {
	Class        string   `json:"class"`
	ClassOptions []string `json:"class_options,omitempty"`
	Packages     []string `json:"packages"`
	Variables    []string `json:"variables,omitempty"`
	Labels       []string `json:"labels,omitempty"`
	Sections     int      `json:"sections"`
	Figures      int      `json:"figures"`
	Authors      int      `json:"authors"`
	Acronyms     int      `json:"acronyms"`
	PreambleSize int      `json:"preamble_size"`
	BodySize     int      `json:"body_size"`
}

// State implements introspection.Introspectable.
func (d *Document) State() any {
	frag := d.Serialize()
	pkgs := make([]string, 0, len(frag.Packages))
	for _, p := range frag.Packages.Sorted() {
		pkgs = append(pkgs, p.Name)
	}

	vars := make([]string, 0, len(d.varNames))
	for name := range d.varNames {
		vars = append(vars, name)
	}
	slices.Sort(vars)

	st := DocumentState{
		Class:        d.class,
		ClassOptions: d.classOptions,
		Packages:     pkgs,
		Variables:    vars,
		PreambleSize: len(d.preamble),
		BodySize:     len(d.body),
	}
	walk(d.preamble, &st)
	walk(d.body, &st)
	return st
}

// ComponentType implements introspection.Component.
func (d *Document) ComponentType() string {
	return "document"
}

var _ introspection.Introspectable = (*Document)(nil)
var _ introspection.Component = (*Document)(nil)

// Labels lists the markers anchored in the body, in document order.
func (d *Document) Labels() []string {
	var st DocumentState
	walk(d.body, &st)
	return st.Labels
}

func walk(nodes []latex.Node, st *DocumentState) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *Section:
			st.Sections++
			addLabel(st, v.Label)
			walk(v.Children, st)
		case *Abstract:
			addLabel(st, v.Label)
			walk(v.Children, st)
		case *Figure:
			st.Figures++
			addLabel(st, &v.Label)
		case *Author:
			st.Authors++
		case *Acronym:
			st.Acronyms++
		}
	}
}

func addLabel(st *DocumentState, l *latex.Label) {
	if l != nil {
		st.Labels = append(st.Labels, l.Marker.String())
	}
}
