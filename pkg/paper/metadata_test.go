package paper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/aastex/pkg/latex"
	"github.com/aretw0/aastex/pkg/paper"
)

func TestMetadata(t *testing.T) {
	aff := paper.NewAffiliation("Center for Astrophysics")
	short := paper.NewTitle("A Very Long Title")
	short.Short = "Long Title"

	tests := []struct {
		name string
		node latex.Node
		want string
	}{
		{"Title", paper.NewTitle("Cool Paper"), `\title{Cool Paper}`},
		{"EmptyTitle", paper.NewTitle(""), `\title{}`},
		{"ShortTitle", short, "\\title{A Very Long Title}%\n\\shorttitle{Long Title}"},
		{"Affiliation", aff, `\affiliation{Center for Astrophysics}`},
		{"Author", paper.NewAuthor("Jane Doe", aff), "\\author{Jane Doe}%\n\\affiliation{Center for Astrophysics}"},
		{"AuthorNoAffiliation", paper.NewAuthor("Jane Doe", nil), `\author{Jane Doe}`},
		{
			"AuthorEmailORCID",
			paper.NewAuthor("Jane Doe", aff, paper.WithEmail("jane@example.org"), paper.WithORCID("0000-0002-1825-0097")),
			"\\author[0000-0002-1825-0097]{Jane Doe}%\n\\affiliation{Center for Astrophysics}%\n\\email{jane@example.org}",
		},
		{"Bibliography", paper.NewBibliography("sources"), `\bibliography{sources}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Serialize().Text)
		})
	}
}

func TestAuthorsShareAffiliation(t *testing.T) {
	aff := paper.NewAffiliation("Institute")
	a := paper.NewAuthor("A", aff)
	b := paper.NewAuthor("B", aff)

	aff.Name = "Renamed Institute"
	assert.Contains(t, a.Serialize().Text, `\affiliation{Renamed Institute}`)
	assert.Contains(t, b.Serialize().Text, `\affiliation{Renamed Institute}`)
}

func TestAcronym(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		f := paper.NewAcronym("NASA", "National Aeronautics and Space Administration").Serialize()
		assert.Equal(t,
			"\\newacro{NASA}[NASA]{National Aeronautics and Space Administration}%\n"+
				`\newcommand{\NASA}{\ac{NASA}}`,
			f.Text)
		assert.True(t, f.Packages.Has("acronym"))
	})

	t.Run("ShortName", func(t *testing.T) {
		f := paper.NewAcronym("HST", "Hubble Space Telescope", paper.WithShortName("Hubble")).Serialize()
		assert.Contains(t, f.Text, `\newacro{HST}[Hubble]{Hubble Space Telescope}`)
	})

	t.Run("AllShorthands", func(t *testing.T) {
		f := paper.NewAcronym("AGN", "active galactic nucleus", paper.WithPlural(), paper.WithShortOnly()).Serialize()
		assert.Equal(t,
			"\\newacro{AGN}[AGN]{active galactic nucleus}%\n"+
				"\\newcommand{\\AGN}{\\ac{AGN}}%\n"+
				"\\newcommand{\\AGNs}{\\acp{AGN}}%\n"+
				`\newcommand{\AGNShort}{\acs{AGN}}`,
			f.Text)
	})

	t.Run("ShortNameResolvedLate", func(t *testing.T) {
		a := paper.NewAcronym("SN", "supernova")
		a.Acronym = "SNe"
		assert.Contains(t, a.Serialize().Text, `\newacro{SNe}[SNe]{supernova}`)
	})
}
