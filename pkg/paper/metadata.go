package paper

import (
	"github.com/aretw0/aastex/pkg/latex"
)

// Title is the article title.
type Title struct {
	Name  string
	Short string // running head; omitted when empty
}

// NewTitle creates a title.
func NewTitle(name string) *Title {
	return &Title{Name: name}
}

// Serialize implements latex.Node.
func (t *Title) Serialize() latex.Fragment {
	frags := []latex.Fragment{latex.NewCommand("title", t.Name).Serialize()}
	if t.Short != "" {
		frags = append(frags, latex.NewCommand("shorttitle", t.Short).Serialize())
	}
	return latex.Concat(latex.Separator, frags...)
}

// Affiliation is an organization that an author is associated with.
type Affiliation struct {
	Name string
}

// NewAffiliation creates an affiliation.
func NewAffiliation(name string) *Affiliation {
	return &Affiliation{Name: name}
}

// Serialize implements latex.Node.
func (a *Affiliation) Serialize() latex.Fragment {
	return latex.NewCommand("affiliation", a.Name).Serialize()
}

// Author is one of the authors of the article. Several authors may point at
// the same Affiliation.
type Author struct {
	Name        string
	Affiliation *Affiliation
	Email       string
	ORCID       string
}

// AuthorOption configures an Author.
type AuthorOption func(*Author)

// WithEmail adds a contact address, printed with \email.
func WithEmail(email string) AuthorOption {
	return func(a *Author) {
		a.Email = email
	}
}

// WithORCID sets the author's ORCID iD (without the URL prefix).
func WithORCID(id string) AuthorOption {
	return func(a *Author) {
		a.ORCID = id
	}
}

// NewAuthor creates an author.
func NewAuthor(name string, affiliation *Affiliation, opts ...AuthorOption) *Author {
	a := &Author{Name: name, Affiliation: affiliation}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Serialize implements latex.Node.
func (a *Author) Serialize() latex.Fragment {
	author := latex.NewCommand("author", a.Name)
	if a.ORCID != "" {
		author.Options = []string{a.ORCID}
	}

	frags := []latex.Fragment{author.Serialize()}
	if a.Affiliation != nil {
		frags = append(frags, a.Affiliation.Serialize())
	}
	if a.Email != "" {
		frags = append(frags, latex.NewCommand("email", a.Email).Serialize())
	}
	return latex.Concat(latex.Separator, frags...)
}

// Acronym defines an acronym and shorthand macros for it.
//
// With Acronym "NASA" the output defines \NASA; Plural adds \NASAs and Short
// adds \NASAShort.
type Acronym struct {
	Acronym  string
	NameFull string
	// NameShort is the displayed short form. Empty means Acronym itself,
	// resolved when serializing.
	NameShort string
	Plural    bool
	Short     bool
}

// AcronymOption configures an Acronym.
type AcronymOption func(*Acronym)

// WithShortName sets the displayed short form.
func WithShortName(name string) AcronymOption {
	return func(a *Acronym) {
		a.NameShort = name
	}
}

// WithPlural also defines the plural shorthand.
func WithPlural() AcronymOption {
	return func(a *Acronym) {
		a.Plural = true
	}
}

// WithShortOnly also defines the short-form-only shorthand.
func WithShortOnly() AcronymOption {
	return func(a *Acronym) {
		a.Short = true
	}
}

// NewAcronym creates an acronym definition.
func NewAcronym(acronym, nameFull string, opts ...AcronymOption) *Acronym {
	a := &Acronym{Acronym: acronym, NameFull: nameFull}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var acronymPackage = latex.NewPackageSet(latex.NewPackage("acronym"))

// Serialize implements latex.Node.
func (a *Acronym) Serialize() latex.Fragment {
	short := a.NameShort
	if short == "" {
		short = a.Acronym
	}

	frags := []latex.Fragment{
		latex.Command{
			Name:           "newacro",
			Arguments:      []string{a.Acronym},
			Options:        []string{short},
			ExtraArguments: []string{a.NameFull},
		}.Serialize(),
		shorthand(a.Acronym, "ac", a.Acronym),
	}
	if a.Plural {
		frags = append(frags, shorthand(a.Acronym+"s", "acp", a.Acronym))
	}
	if a.Short {
		frags = append(frags, shorthand(a.Acronym+"Short", "acs", a.Acronym))
	}

	out := latex.Concat(latex.Separator, frags...)
	out.Packages = out.Packages.Union(acronymPackage)
	return out
}

// shorthand defines \name as \macro{acronym}.
func shorthand(name, macro, acronym string) latex.Fragment {
	return latex.NewCommand("newcommand", `\`+name, `\`+macro+`{`+acronym+`}`).Serialize()
}

// Bibliography includes a BibTeX database.
type Bibliography struct {
	// Sources is the .bib file name without its extension.
	Sources string
}

// NewBibliography creates a bibliography inclusion.
func NewBibliography(sources string) *Bibliography {
	return &Bibliography{Sources: sources}
}

// Serialize implements latex.Node.
func (b *Bibliography) Serialize() latex.Fragment {
	return latex.NewCommand("bibliography", b.Sources).Serialize()
}
