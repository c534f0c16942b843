package paper

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/aretw0/aastex/internal/platform"
	"github.com/aretw0/aastex/pkg/latex"
	"github.com/aretw0/aastex/pkg/quantity"
)

// DefaultClass is the AAS journal class.
const DefaultClass = "aastex631"

// Document is the root of a paper. It is built by sequential calls from one
// goroutine; Serialize only reads it and may be called any number of times.
type Document struct {
	class         string
	classOptions  []string
	fontEncoding  string
	inputEncoding string
	fontSize      string
	lmodern       bool
	textcomp      bool
	microtype     bool
	pageNumbers   bool
	indent        *bool
	geometry      map[string]string

	preamble  []latex.Node
	variables []latex.Node
	varNames  map[string]bool
	body      []latex.Node

	logger *slog.Logger
}

// NewDocument creates a document with the AAS defaults.
func NewDocument(opts ...DocumentOption) *Document {
	d := &Document{
		class:         DefaultClass,
		classOptions:  []string{"twocolumn"},
		fontEncoding:  "T1",
		inputEncoding: "utf8",
		fontSize:      "normalsize",
		lmodern:       true,
		textcomp:      true,
		pageNumbers:   true,
		varNames:      make(map[string]bool),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.preamble = []latex.Node{latex.NewCommand("bibliographystyle", "aasjournal")}
	return d
}

// Append adds nodes to the body in order.
func (d *Document) Append(nodes ...latex.Node) {
	d.body = append(d.body, nodes...)
}

// AppendPreamble adds nodes after the package declarations.
func (d *Document) AppendPreamble(nodes ...latex.Node) {
	d.preamble = append(d.preamble, nodes...)
}

// SetVariable defines \name to expand to value, which is emitted verbatim.
// The first definition of a name goes to the preamble; later ones are
// appended to the body as \renewcommand, taking effect from that point on.
func (d *Document) SetVariable(name, value string) {
	macro := `\` + name
	if d.varNames[name] {
		d.body = append(d.body, latex.NewCommand("renewcommand", macro, value))
		if d.logger != nil {
			d.logger.Debug("variable redefined", "name", name)
		}
		return
	}
	d.varNames[name] = true
	d.variables = append(d.variables, latex.NewCommand("newcommand", macro, value))
	if d.logger != nil {
		d.logger.Debug("variable defined", "name", name)
	}
}

// SetVariableQuantity formats q and defines it as a variable. Scientific
// notation is chosen automatically unless quantity.WithScientific is given;
// quantity.WithDigits sets the precision (default 3).
func (d *Document) SetVariableQuantity(name string, q quantity.Quantity, opts ...quantity.Option) error {
	value, err := quantity.Format(q, opts...)
	if err != nil {
		return fmt.Errorf("variable %s: %w", name, err)
	}
	d.SetVariable(name, value)
	return nil
}

// Serialize implements latex.Node.
func (d *Document) Serialize() latex.Fragment {
	preamble := latex.Concat(latex.Separator, latex.SerializeAll(d.preamble)...)
	variables := latex.Concat(latex.Separator, latex.SerializeAll(d.variables)...)

	var bodyFrags []latex.Fragment
	if d.fontSize != "" {
		bodyFrags = append(bodyFrags, latex.NewCommand(d.fontSize).Serialize())
	}
	bodyFrags = append(bodyFrags, latex.SerializeAll(d.body)...)
	body := latex.Concat(latex.Separator, bodyFrags...)

	pkgs := d.packages(preamble.Packages.Union(variables.Packages).Union(body.Packages))
	pkgFrags := make([]latex.Fragment, len(pkgs))
	for i, p := range pkgs {
		pkgFrags[i] = p.Serialize()
	}

	parts := []latex.Fragment{
		latex.Command{Name: "documentclass", Options: d.classOptions, Arguments: []string{d.class}}.Serialize(),
		latex.Concat(latex.Separator, pkgFrags...),
		variables,
		preamble,
	}
	if !d.pageNumbers {
		parts = append(parts, latex.NewCommand("pagestyle", "empty").Serialize())
	}
	parts = append(parts,
		latex.NewCommand("begin", "document").Serialize(),
		body,
		latex.NewCommand("end", "document").Serialize(),
	)

	out := latex.Concat(latex.Separator, parts...)
	out.Packages = latex.NewPackageSet(pkgs...)
	return out
}

// packages lists the class-level packages first, in a fixed order, followed
// by the packages the content asked for, sorted.
func (d *Document) packages(required latex.PackageSet) []latex.Package {
	var pkgs []latex.Package
	if d.fontEncoding != "" {
		pkgs = append(pkgs, latex.NewPackage("fontenc", d.fontEncoding))
	}
	if d.inputEncoding != "" {
		pkgs = append(pkgs, latex.NewPackage("inputenc", d.inputEncoding))
	}
	if d.lmodern {
		pkgs = append(pkgs, latex.NewPackage("lmodern"))
	}
	if d.textcomp {
		pkgs = append(pkgs, latex.NewPackage("textcomp"))
	}
	if d.pageNumbers {
		pkgs = append(pkgs, latex.NewPackage("lastpage"))
	}
	if d.indent != nil && !*d.indent {
		pkgs = append(pkgs, latex.NewPackage("parskip"))
	}
	if d.microtype {
		pkgs = append(pkgs, latex.NewPackage("microtype"))
	}
	if d.geometry != nil {
		pkgs = append(pkgs, latex.NewPackage("geometry", geometryOptions(d.geometry)...))
	}

	for _, p := range required.Sorted() {
		if !slices.ContainsFunc(pkgs, func(q latex.Package) bool { return q.Name == p.Name }) {
			pkgs = append(pkgs, p)
		}
	}
	return pkgs
}

func geometryOptions(opts map[string]string) []string {
	out := make([]string, 0, len(opts))
	for _, k := range slices.Sorted(maps.Keys(opts)) {
		if v := opts[k]; v != "" {
			out = append(out, k+"="+v)
		} else {
			out = append(out, k)
		}
	}
	return out
}

// Dumps returns the complete LaTeX source.
func (d *Document) Dumps() string {
	return d.Serialize().Text
}

// WriteTo writes the LaTeX source to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Dumps())
	return int64(n), err
}

// GenerateTex writes the source to path, adding the .tex extension when it
// is missing. The write is atomic.
func (d *Document) GenerateTex(path string) error {
	if !strings.HasSuffix(path, ".tex") {
		path += ".tex"
	}
	err := platform.WriteAtomic(path, 0644, func(w io.Writer) error {
		_, err := d.WriteTo(w)
		return err
	})
	if err != nil {
		return err
	}
	if d.logger != nil {
		d.logger.Debug("wrote tex", "path", path)
	}
	return nil
}

var _ latex.Node = (*Document)(nil)
var _ io.WriterTo = (*Document)(nil)
