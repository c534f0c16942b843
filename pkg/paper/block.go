package paper

import (
	"github.com/aretw0/aastex/pkg/latex"
)

// Level is the depth of a sectioning command.
type Level int

const (
	LevelSection Level = iota
	LevelSubsection
	LevelSubsubsection
)

func (l Level) command() string {
	switch l {
	case LevelSubsection:
		return "subsection"
	case LevelSubsubsection:
		return "subsubsection"
	default:
		return "section"
	}
}

func (l Level) prefix() string {
	switch l {
	case LevelSubsection:
		return PrefixSubsection
	case LevelSubsubsection:
		return PrefixSubsubsection
	default:
		return PrefixSection
	}
}

// BlockOption configures an Abstract or a Section.
type BlockOption func(*blockConfig)

type blockConfig struct {
	numbered bool
	label    labelSpec
}

func newBlockConfig(opts []BlockOption) blockConfig {
	cfg := blockConfig{numbered: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithNumbering selects \section (true, the default) or \section*.
func WithNumbering(numbered bool) BlockOption {
	return func(c *blockConfig) {
		c.numbered = numbered
	}
}

// WithLabel uses l instead of deriving one.
func WithLabel(l latex.Label) BlockOption {
	return func(c *blockConfig) {
		c.label = labelSpec{mode: labelExplicit, label: l}
	}
}

// WithLabelID uses "prefix:name", or a bare name under the element's
// default prefix.
func WithLabelID(id string) BlockOption {
	return func(c *blockConfig) {
		c.label = labelSpec{mode: labelText, text: id}
	}
}

// WithoutLabel emits no anchor. Reference then fails with
// latex.ErrMissingLabel.
func WithoutLabel() BlockOption {
	return func(c *blockConfig) {
		c.label = labelSpec{mode: labelNone}
	}
}

// Section is a sectioning command at any Level followed by its content.
// Subsections belong in a Section's children; the order is not checked here.
type Section struct {
	Title    string
	Level    Level
	Numbered bool
	Label    *latex.Label
	Children []latex.Node
}

func newSection(level Level, title string, opts []BlockOption) *Section {
	cfg := newBlockConfig(opts)
	return &Section{
		Title:    title,
		Level:    level,
		Numbered: cfg.numbered,
		Label:    resolveLabel(cfg.label, title, level.prefix(), level.command()),
	}
}

// NewSection creates a top-level section.
func NewSection(title string, opts ...BlockOption) *Section {
	return newSection(LevelSection, title, opts)
}

// NewSubsection creates a subsection.
func NewSubsection(title string, opts ...BlockOption) *Section {
	return newSection(LevelSubsection, title, opts)
}

// NewSubsubsection creates a subsubsection.
func NewSubsubsection(title string, opts ...BlockOption) *Section {
	return newSection(LevelSubsubsection, title, opts)
}

// Append adds content in order.
func (s *Section) Append(nodes ...latex.Node) {
	s.Children = append(s.Children, nodes...)
}

// Reference implements latex.Referencer.
func (s *Section) Reference() (string, error) {
	return reference(s.Label)
}

// Serialize implements latex.Node.
func (s *Section) Serialize() latex.Fragment {
	name := s.Level.command()
	if !s.Numbered {
		name += "*"
	}

	frags := []latex.Fragment{latex.NewCommand(name, s.Title).Serialize()}
	if s.Label != nil {
		frags = append(frags, s.Label.Serialize())
	}
	frags = append(frags, latex.SerializeAll(s.Children)...)
	return latex.Concat(latex.Separator, frags...)
}

// Abstract is the abstract environment.
type Abstract struct {
	Label    *latex.Label
	Children []latex.Node
}

// NewAbstract creates an abstract. WithNumbering has no effect on it.
func NewAbstract(opts ...BlockOption) *Abstract {
	cfg := newBlockConfig(opts)
	return &Abstract{Label: resolveLabel(cfg.label, "", PrefixAbstract, "abstract")}
}

// Append adds content in order.
func (a *Abstract) Append(nodes ...latex.Node) {
	a.Children = append(a.Children, nodes...)
}

// Reference implements latex.Referencer.
func (a *Abstract) Reference() (string, error) {
	return reference(a.Label)
}

// Serialize implements latex.Node.
func (a *Abstract) Serialize() latex.Fragment {
	env := latex.NewEnvironment("abstract")
	if a.Label != nil {
		env.Append(*a.Label)
	}
	env.Append(a.Children...)
	return env.Serialize()
}
