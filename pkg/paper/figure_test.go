package paper_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/aastex/pkg/latex"
	"github.com/aretw0/aastex/pkg/paper"
)

func TestFigureLabel(t *testing.T) {
	tests := []struct {
		name string
		fig  *paper.Figure
		want string
	}{
		{"BareName", paper.NewFigure("data"), "fig:data"},
		{"Prefixed", paper.NewFigure("plot:data"), "plot:data"},
		{"FirstSeparatorOnly", paper.NewFigure("fig:a:b"), "fig:a:b"},
		{"Explicit", paper.NewFigureWithLabel(latex.NewLabel(latex.NewMarker("m", "x"))), "x:m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fig.Label.Marker.String())
			require.NotEmpty(t, tt.fig.Children)
			assert.Equal(t, tt.fig.Label, tt.fig.Children[0])

			ref, err := tt.fig.Reference()
			require.NoError(t, err)
			assert.Equal(t, `\ref{`+tt.want+`}`, ref)
		})
	}

	t.Run("Generated", func(t *testing.T) {
		a, b := paper.NewFigure(""), paper.NewFigure("")
		assert.Equal(t, paper.PrefixFigure, a.Label.Marker.Prefix)
		assert.True(t, strings.HasPrefix(a.Label.Marker.Name, "figure-"))
		assert.NotEqual(t, a.Label, b.Label)
	})
}

func TestFigureSerialize(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "plot.png")

	fig := paper.NewFigure("data", paper.WithPosition("ht"))
	require.NoError(t, fig.AddImage(img))
	fig.AddCaption("Some data.")

	f := fig.Serialize()
	assert.Equal(t,
		"\\begin{figure}[ht]%\n"+
			"\\label{fig:data}%\n"+
			"\\centering%\n"+
			"\\includegraphics[width=0.8\\columnwidth]{"+filepath.ToSlash(img)+"}%\n"+
			"\\caption{Some data.}%\n"+
			"\\end{figure}",
		f.Text)
	assert.True(t, f.Packages.Has("graphicx"))

	star := paper.NewFigureStar("wide")
	assert.Equal(t, "\\begin{figure*}%\n\\label{fig:wide}%\n\\end{figure*}", star.Serialize().Text)
}

func TestAddImageOptions(t *testing.T) {
	dir := t.TempDir()

	t.Run("WidthAndPlacement", func(t *testing.T) {
		fig := paper.NewFigure("a")
		require.NoError(t, fig.AddImage(filepath.Join(dir, "a.pdf"), paper.WithWidth(`\textwidth`), paper.WithPlacement(`\raggedleft`)))
		text := fig.Serialize().Text
		assert.Contains(t, text, `\raggedleft`)
		assert.Contains(t, text, `\includegraphics[width=\textwidth]{`)
	})

	t.Run("Natural", func(t *testing.T) {
		fig := paper.NewFigure("b")
		require.NoError(t, fig.AddImage(filepath.Join(dir, "b.pdf"), paper.WithoutWidth(), paper.WithoutPlacement()))
		text := fig.Serialize().Text
		assert.NotContains(t, text, `\centering`)
		assert.Contains(t, text, `\includegraphics{`)
	})

	t.Run("Relative", func(t *testing.T) {
		fig := paper.NewFigure("c")
		require.NoError(t, fig.AddImage("c.pdf"))
		abs, err := filepath.Abs("c.pdf")
		require.NoError(t, err)
		assert.Contains(t, fig.Serialize().Text, "{"+filepath.ToSlash(abs)+"}")
	})

	t.Run("MultiDot", func(t *testing.T) {
		fig := paper.NewFigure("d")
		require.NoError(t, fig.AddImage(filepath.Join(dir, "run.v2.final.png")))
		assert.Contains(t, fig.Serialize().Text, "/{run.v2.final}.png}")
	})
}

func TestAddFig(t *testing.T) {
	dir := t.TempDir()

	var got paper.RenderOptions
	var rendered string
	r := paper.RendererFunc(func(path string, opts paper.RenderOptions) error {
		got, rendered = opts, path
		return os.WriteFile(path, []byte("%PDF-1.4"), 0644)
	})

	fig := paper.NewFigure("plot", paper.WithTempDir(dir))
	require.NoError(t, fig.AddFig(r, paper.WithSize(3, 2), paper.WithWidth(`\columnwidth`)))

	assert.Equal(t, dir, filepath.Dir(rendered))
	assert.Equal(t, ".pdf", filepath.Ext(rendered))
	assert.FileExists(t, rendered)
	assert.Equal(t, paper.RenderOptions{Format: "pdf", Width: 3, Height: 2}, got)

	text := fig.Serialize().Text
	assert.Contains(t, text, `\includegraphics[width=\columnwidth]{`+filepath.ToSlash(rendered)+`}`)

	t.Run("Extension", func(t *testing.T) {
		fig := paper.NewFigure("png", paper.WithTempDir(dir))
		require.NoError(t, fig.AddFig(r, paper.WithExtension(".png"), paper.WithDPI(300)))
		assert.Equal(t, ".png", filepath.Ext(rendered))
		assert.Equal(t, "png", got.Format)
		assert.Equal(t, 300.0, got.DPI)
	})

	t.Run("UniqueNames", func(t *testing.T) {
		fig := paper.NewFigure("twice", paper.WithTempDir(dir))
		require.NoError(t, fig.AddFig(r))
		first := rendered
		require.NoError(t, fig.AddFig(r))
		assert.NotEqual(t, first, rendered)
	})

	t.Run("RendererError", func(t *testing.T) {
		boom := errors.New("boom")
		fig := paper.NewFigure("fail", paper.WithTempDir(dir))
		err := fig.AddFig(paper.RendererFunc(func(string, paper.RenderOptions) error { return boom }))
		assert.Same(t, boom, err)
		assert.Len(t, fig.Children, 1)
	})
}

func TestGridline(t *testing.T) {
	fig := paper.NewFigure("grid")
	fig.Append(paper.NewGridline(
		paper.NewLeftFig("/data/a.pdf", `0.3\textwidth`, "(a)"),
		paper.NewFig("/data/b.pdf", `0.3\textwidth`, "(b)"),
		paper.NewRightFig("/data/c.pdf", `0.3\textwidth`, "(c)"),
	))

	assert.Contains(t, fig.Serialize().Text,
		`\gridline{\leftfig{/data/a.pdf}{0.3\textwidth}{(a)}`+
			`\fig{/data/b.pdf}{0.3\textwidth}{(b)}`+
			`\rightfig{/data/c.pdf}{0.3\textwidth}{(c)}}`)
}
