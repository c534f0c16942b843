package manifest_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/aastex/pkg/manifest"
)

const sample = `
title: A Survey of Nearby Dwarfs
affiliations:
  cfa: Center for Astrophysics
authors:
  - name: Jane Doe
    affiliation: cfa
    orcid: 0000-0002-1825-0097
acronyms:
  - acronym: NASA
    full: National Aeronautics and Space Administration
    short_only: true
variables:
  nstars: "12"
quantities:
  dist:
    value: 0.002
    unit: m
  temps:
    value: [10, 20]
    unit: K
    digits: 0
  speed:
    value: 3
    unit: km/s
    digits: 1
abstract: We survey dwarfs.
sections:
  - title: Introduction
    text: Hello.
    subsections:
      - title: Background
        label: false
        subsections:
          - title: Details
            numbered: false
  - title: Data
    label: data
    figures:
      - label: maps
        star: true
        position: ht
        images: ["figures/*.png"]
        width: 0.5\textwidth
        caption: Maps.
      - label: grid
        gridline:
          - {file: figures/a.png, width: 0.3\textwidth, caption: (a), align: left}
          - {file: figures/b.png, width: 0.3\textwidth, caption: (b)}
bibliography: sources
`

func writeFigures(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "figures"), 0755))
	for _, name := range []string{"b.png", "a.png", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "figures", name), []byte("x"), 0644))
	}
}

func TestParseFormats(t *testing.T) {
	t.Run("YAML", func(t *testing.T) {
		m, err := manifest.Parse([]byte(sample), ".yaml")
		require.NoError(t, err)
		assert.Equal(t, "A Survey of Nearby Dwarfs", m.Title)
		assert.True(t, m.Sections[0].Subsections[0].Label.Disabled)
		assert.Equal(t, "data", m.Sections[1].Label.ID)
		assert.Equal(t, manifest.Values{10, 20}, m.Quantities["temps"].Value)
		assert.Equal(t, manifest.Values{0.002}, m.Quantities["dist"].Value)
	})

	t.Run("JSON", func(t *testing.T) {
		m, err := manifest.Parse([]byte(`{
			"title": "T",
			"quantities": {"x": {"value": [1, 2], "unit": "K"}, "y": {"value": 3}},
			"sections": [{"title": "A", "label": false}, {"title": "B", "label": "b"}]
		}`), ".json")
		require.NoError(t, err)
		assert.Equal(t, manifest.Values{1, 2}, m.Quantities["x"].Value)
		assert.Equal(t, manifest.Values{3}, m.Quantities["y"].Value)
		assert.True(t, m.Sections[0].Label.Disabled)
		assert.Equal(t, "b", m.Sections[1].Label.ID)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := manifest.Parse([]byte("title = 'x'"), ".toml")
		assert.ErrorIs(t, err, manifest.ErrUnknownFormat)
	})

	t.Run("UnknownField", func(t *testing.T) {
		_, err := manifest.Parse([]byte("titel: x\n"), ".yaml")
		assert.Error(t, err)
		_, err = manifest.Parse([]byte(`{"titel": "x"}`), ".json")
		assert.Error(t, err)
	})

	t.Run("BadLabel", func(t *testing.T) {
		_, err := manifest.Parse([]byte("sections:\n  - title: A\n    label: [1]\n"), ".yml")
		assert.Error(t, err)
	})
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	writeFigures(t, dir)

	m, err := manifest.Parse([]byte(sample), ".yaml")
	require.NoError(t, err)
	doc, err := manifest.Build(m, manifest.WithBaseDir(dir))
	require.NoError(t, err)

	out := doc.Dumps()
	for _, want := range []string{
		`\title{A Survey of Nearby Dwarfs}`,
		`\author[0000-0002-1825-0097]{Jane Doe}`,
		`\affiliation{Center for Astrophysics}`,
		`\newcommand{\NASAShort}{\acs{NASA}}`,
		`\newcommand{\nstars}{12}`,
		`\newcommand{\dist}{$2.000 \times 10^{-3}\,\mathrm{m}$}`,
		`\newcommand{\temps}{$(10, 20)\,\mathrm{K}$}`,
		`\newcommand{\speed}{$3.0\,\mathrm{km/s}$}`,
		`\begin{abstract}`,
		`\section{Introduction}`,
		`\subsection{Background}`,
		`\subsubsection*{Details}`,
		`\label{sec:data}`,
		`\begin{figure*}[ht]`,
		`\label{fig:maps}`,
		`\includegraphics[width=0.5\textwidth]{` + filepath.ToSlash(filepath.Join(dir, "figures", "a.png")) + `}`,
		`\caption{Maps.}`,
		`\gridline{\leftfig{` + filepath.ToSlash(filepath.Join(dir, "figures", "a.png")) + `}{0.3\textwidth}{(a)}`,
		`\bibliography{sources}`,
	} {
		assert.Contains(t, out, want)
	}

	assert.NotContains(t, out, `\label{subsec:Background}`)
	assert.NotContains(t, out, "notes.txt")
	a := strings.Index(out, "figures/a.png")
	b := strings.Index(out, "figures/b.png")
	assert.Less(t, a, b, "glob matches are sorted")
}

func TestBuildErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		yaml string
		is   error
	}{
		{"UnknownAffiliation", "authors:\n  - name: A\n    affiliation: nope\n", nil},
		{"NoMatch", "sections:\n  - title: A\n    figures:\n      - images: ['figs/*.png']\n", manifest.ErrNoMatch},
		{
			"TooDeep",
			"sections:\n  - title: A\n    subsections:\n      - title: B\n        subsections:\n          - title: C\n            subsections:\n              - title: D\n",
			manifest.ErrTooDeep,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := manifest.Parse([]byte(tt.yaml), ".yaml")
			require.NoError(t, err)
			_, err = manifest.Build(m, manifest.WithBaseDir(dir))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestBuildWarnsDuplicateLabels(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	m, err := manifest.Parse([]byte("sections:\n  - title: Results\n  - title: Results\n"), ".yaml")
	require.NoError(t, err)
	_, err = manifest.Build(m, manifest.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "duplicate label")
	assert.Contains(t, logs.String(), "sec:Results")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aastex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifest.Template), 0644))

	m, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Title of the Paper", m.Title)
	assert.Equal(t, filepath.Join(dir, "paper.tex"), manifest.OutputPath(m, dir))

	_, err = manifest.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInputs(t *testing.T) {
	m, err := manifest.Parse([]byte(sample), ".yaml")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"aastex.yaml", "figures/*.png", "figures/a.png", "figures/b.png"},
		manifest.Inputs(m, "aastex.yaml"))
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("dir", "out.tex"), manifest.OutputPath(&manifest.Manifest{Output: "out.tex"}, "dir"))
	assert.Equal(t, "/abs/x.tex", manifest.OutputPath(&manifest.Manifest{Output: "/abs/x"}, "dir"))
}

func TestEncodeRoundTrip(t *testing.T) {
	m, err := manifest.Parse([]byte(sample), ".yaml")
	require.NoError(t, err)
	data, err := manifest.Encode(m)
	require.NoError(t, err)

	again, err := manifest.Parse(data, ".yaml")
	require.NoError(t, err)
	assert.Equal(t, m, again)
}

func TestTemplateBuilds(t *testing.T) {
	m, err := manifest.Parse([]byte(manifest.Template), ".yaml")
	require.NoError(t, err)
	doc, err := manifest.Build(m, manifest.WithBaseDir(t.TempDir()))
	require.NoError(t, err)
	assert.Contains(t, doc.Dumps(), `\newcommand{\teff}{$5772\,\mathrm{K}$}`)
}
