// Package aastex generates LaTeX source for articles in the American
// Astronomical Society journals.
//
// A paper is assembled from typed elements (title, authors, abstract,
// sections, figures, acronyms) and serialized to a .tex file ready for the
// aastex631 class. Figures can be rendered on the fly from gonum plots or
// in-memory images, and numeric results can be injected as LaTeX macros so
// the text never drifts from the analysis.
//
// Two ways in:
//
//   - Programmatic: build a Document from the elements in pkg/paper.
//   - Declarative: describe the paper in aastex.yaml (see pkg/manifest) and
//     Open it as a Project, or use the aastex command.
//
// Usage:
//
//	doc := aastex.New()
//	doc.AppendPreamble(paper.NewTitle("A Survey of Nearby Dwarfs"))
//
//	sec := paper.NewSection("Results")
//	fig := paper.NewFigure("lightcurve")
//	if err := fig.AddFig(plot.New(p), paper.WithSize(paper.ColumnWidthInches, 2)); err != nil {
//		return err
//	}
//	sec.Append(fig)
//	doc.Append(sec)
//
//	err := doc.GenerateTex("paper")
package aastex
