package manifest

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/aastex/pkg/latex"
	"github.com/aretw0/aastex/pkg/paper"
	"github.com/aretw0/aastex/pkg/quantity"
)

// Option configures Build.
type Option func(*builder)

type builder struct {
	baseDir string
	logger  *slog.Logger
	docOpts []paper.DocumentOption
}

// WithBaseDir resolves image paths and globs against dir instead of the
// working directory.
func WithBaseDir(dir string) Option {
	return func(b *builder) {
		b.baseDir = dir
	}
}

// WithLogger sets the logger for the build and the resulting document.
func WithLogger(logger *slog.Logger) Option {
	return func(b *builder) {
		b.logger = logger
	}
}

// WithDocumentOptions applies extra options after those from the manifest.
func WithDocumentOptions(opts ...paper.DocumentOption) Option {
	return func(b *builder) {
		b.docOpts = append(b.docOpts, opts...)
	}
}

// Build assembles the document described by m.
func Build(m *Manifest, opts ...Option) (*paper.Document, error) {
	b := &builder{baseDir: "."}
	for _, opt := range opts {
		opt(b)
	}

	doc := paper.NewDocument(append(b.documentOptions(m), b.docOpts...)...)

	if err := b.front(doc, m); err != nil {
		return nil, err
	}

	if m.Abstract != "" {
		abs := paper.NewAbstract()
		abs.Append(latex.Raw(m.Abstract))
		doc.Append(abs)
	}

	for _, s := range m.Sections {
		sec, err := b.section(s, paper.LevelSection)
		if err != nil {
			return nil, err
		}
		doc.Append(sec)
	}

	if m.Bibliography != "" {
		doc.Append(paper.NewBibliography(m.Bibliography))
	}

	b.checkLabels(doc)
	return doc, nil
}

func (b *builder) documentOptions(m *Manifest) []paper.DocumentOption {
	var opts []paper.DocumentOption
	if m.Class != "" {
		opts = append(opts, paper.WithClass(m.Class))
	}
	if m.ClassOptions != nil {
		opts = append(opts, paper.WithClassOptions(m.ClassOptions...))
	}
	if m.FontSize != "" {
		opts = append(opts, paper.WithFontSize(m.FontSize))
	}
	if m.PageNumbers != nil {
		opts = append(opts, paper.WithPageNumbers(*m.PageNumbers))
	}
	if m.Indent != nil {
		opts = append(opts, paper.WithIndent(*m.Indent))
	}
	if m.Microtype {
		opts = append(opts, paper.WithMicrotype(true))
	}
	if m.Geometry != nil {
		opts = append(opts, paper.WithGeometry(m.Geometry))
	}
	if b.logger != nil {
		opts = append(opts, paper.WithLogger(b.logger))
	}
	return opts
}

// front fills the preamble: title, authors, acronyms and variables.
func (b *builder) front(doc *paper.Document, m *Manifest) error {
	for _, p := range m.Preamble {
		doc.AppendPreamble(latex.Raw(p))
	}

	if m.Title != "" {
		title := paper.NewTitle(m.Title)
		title.Short = m.ShortTitle
		doc.AppendPreamble(title)
	}

	affs := make(map[string]*paper.Affiliation, len(m.Affiliations))
	for key, name := range m.Affiliations {
		affs[key] = paper.NewAffiliation(name)
	}
	for _, a := range m.Authors {
		var aff *paper.Affiliation
		if a.Affiliation != "" {
			var ok bool
			if aff, ok = affs[a.Affiliation]; !ok {
				return fmt.Errorf("author %s: unknown affiliation %q", a.Name, a.Affiliation)
			}
		}
		var opts []paper.AuthorOption
		if a.Email != "" {
			opts = append(opts, paper.WithEmail(a.Email))
		}
		if a.ORCID != "" {
			opts = append(opts, paper.WithORCID(a.ORCID))
		}
		doc.AppendPreamble(paper.NewAuthor(a.Name, aff, opts...))
	}

	for _, a := range m.Acronyms {
		var opts []paper.AcronymOption
		if a.Short != "" {
			opts = append(opts, paper.WithShortName(a.Short))
		}
		if a.Plural {
			opts = append(opts, paper.WithPlural())
		}
		if a.ShortOnly {
			opts = append(opts, paper.WithShortOnly())
		}
		doc.AppendPreamble(paper.NewAcronym(a.Acronym, a.Full, opts...))
	}

	for _, name := range slices.Sorted(maps.Keys(m.Variables)) {
		doc.SetVariable(name, m.Variables[name])
	}
	for _, name := range slices.Sorted(maps.Keys(m.Quantities)) {
		q := m.Quantities[name]
		if err := doc.SetVariableQuantity(name, q.quantity(), q.options()...); err != nil {
			return err
		}
	}
	return nil
}

func (q Quantity) quantity() quantity.Quantity {
	if q.Unit == "" {
		return quantity.Quantity{Values: q.Value}
	}
	dims, err := quantity.ParseUnit(q.Unit)
	if err != nil {
		return quantity.Symbolic(q.Unit, q.Value...)
	}
	return quantity.Array(dims, q.Value...)
}

func (q Quantity) options() []quantity.Option {
	var opts []quantity.Option
	if q.Digits != nil {
		opts = append(opts, quantity.WithDigits(*q.Digits))
	}
	if q.Scientific != nil {
		opts = append(opts, quantity.WithScientific(*q.Scientific))
	}
	return opts
}

func (b *builder) section(s Section, level paper.Level) (*paper.Section, error) {
	var opts []paper.BlockOption
	if s.Numbered != nil {
		opts = append(opts, paper.WithNumbering(*s.Numbered))
	}
	switch {
	case s.Label.Disabled:
		opts = append(opts, paper.WithoutLabel())
	case s.Label.ID != "":
		opts = append(opts, paper.WithLabelID(s.Label.ID))
	}

	var sec *paper.Section
	switch level {
	case paper.LevelSection:
		sec = paper.NewSection(s.Title, opts...)
	case paper.LevelSubsection:
		sec = paper.NewSubsection(s.Title, opts...)
	case paper.LevelSubsubsection:
		sec = paper.NewSubsubsection(s.Title, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", ErrTooDeep, s.Title)
	}

	if s.Text != "" {
		sec.Append(latex.Raw(s.Text))
	}
	for _, f := range s.Figures {
		fig, err := b.figure(f)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", s.Title, err)
		}
		sec.Append(fig)
	}
	for _, sub := range s.Subsections {
		child, err := b.section(sub, level+1)
		if err != nil {
			return nil, err
		}
		sec.Append(child)
	}
	return sec, nil
}

func (b *builder) figure(f Figure) (*paper.Figure, error) {
	var opts []paper.FigureOption
	if f.Position != "" {
		opts = append(opts, paper.WithPosition(f.Position))
	}
	if b.logger != nil {
		opts = append(opts, paper.WithFigureLogger(b.logger))
	}

	fig := paper.NewFigure(f.Label, opts...)
	fig.Star = f.Star

	var imgOpts []paper.ImageOption
	if f.Width != "" {
		imgOpts = append(imgOpts, paper.WithWidth(f.Width))
	}
	for _, pattern := range f.Images {
		paths, err := b.expand(pattern)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			if err := fig.AddImage(p, imgOpts...); err != nil {
				return nil, err
			}
		}
	}

	if len(f.Gridline) > 0 {
		panels := make([]*paper.Fig, 0, len(f.Gridline))
		for _, p := range f.Gridline {
			abs, err := filepath.Abs(b.resolve(p.File))
			if err != nil {
				return nil, err
			}
			switch p.Align {
			case "left":
				panels = append(panels, paper.NewLeftFig(abs, p.Width, p.Caption))
			case "right":
				panels = append(panels, paper.NewRightFig(abs, p.Width, p.Caption))
			default:
				panels = append(panels, paper.NewFig(abs, p.Width, p.Caption))
			}
		}
		fig.Append(paper.NewGridline(panels...))
	}

	if f.Caption != "" {
		fig.AddCaption(f.Caption)
	}
	return fig, nil
}

func (b *builder) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(b.baseDir, path)
}

// expand resolves a path or a doublestar glob to files, sorted. A plain path
// is returned even if it does not exist yet.
func (b *builder) expand(pattern string) ([]string, error) {
	if !hasMeta(pattern) {
		return []string{b.resolve(pattern)}, nil
	}
	if filepath.IsAbs(pattern) {
		base, rel := doublestar.SplitPattern(filepath.ToSlash(pattern))
		return glob(filepath.FromSlash(base), rel)
	}
	return glob(b.baseDir, filepath.ToSlash(pattern))
}

func glob(dir, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid image pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, pattern)
	}
	slices.Sort(matches)
	for i, m := range matches {
		matches[i] = filepath.Join(dir, filepath.FromSlash(m))
	}
	return matches, nil
}

func hasMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// checkLabels warns about markers anchored more than once.
func (b *builder) checkLabels(doc *paper.Document) {
	if b.logger == nil {
		return
	}
	seen := make(map[string]bool)
	for _, l := range doc.Labels() {
		if seen[l] {
			b.logger.Warn("duplicate label", "label", l)
		}
		seen[l] = true
	}
}

// Inputs lists the files a build of m reads, as doublestar patterns relative
// to the manifest directory. manifestName is included first.
func Inputs(m *Manifest, manifestName string) []string {
	inputs := []string{manifestName}
	seen := map[string]bool{manifestName: true}
	add := func(path string) {
		if filepath.IsAbs(path) {
			return
		}
		path = filepath.ToSlash(path)
		if !seen[path] {
			seen[path] = true
			inputs = append(inputs, path)
		}
	}

	var walk func([]Section)
	walk = func(sections []Section) {
		for _, s := range sections {
			for _, f := range s.Figures {
				for _, img := range f.Images {
					add(img)
				}
				for _, p := range f.Gridline {
					add(p.File)
				}
			}
			walk(s.Subsections)
		}
	}
	walk(m.Sections)
	return inputs
}

// OutputPath returns the .tex path for a manifest stored in dir.
func OutputPath(m *Manifest, dir string) string {
	out := strings.TrimSuffix(m.Output, ".tex")
	if out == "" {
		out = DefaultOutput
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(dir, out)
	}
	return out + ".tex"
}
