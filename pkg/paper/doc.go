// Package paper models an article written for the AAS journal class.
//
// A paper is a tree of [latex.Node] values rooted at a [Document]:
//
//	aff := paper.NewAffiliation("Center for Astrophysics")
//	doc := paper.NewDocument()
//	doc.AppendPreamble(paper.NewTitle("A Survey of Nearby Dwarfs"))
//	doc.AppendPreamble(paper.NewAuthor("Jane Doe", aff))
//
//	intro := paper.NewSection("Introduction")
//	intro.Append(latex.Raw("Dwarf galaxies are ..."))
//	doc.Append(intro)
//
//	tex := doc.Dumps()
//
// Headings, abstracts and figures get a label automatically; call
// Reference on them to cite them from prose.
package paper

// Widths of the aastex631 two-column layout, for sizing rendered plots.
const (
	TextWidthInches   = 513.11743 / 72
	ColumnWidthInches = 242.26653 / 72
)
