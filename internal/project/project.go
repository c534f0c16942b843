// Package project ties a manifest on disk to the document it builds.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/aastex/internal/platform"
	"github.com/aretw0/aastex/pkg/manifest"
	"github.com/aretw0/aastex/pkg/paper"
)

// ErrExists is returned by Init when a manifest is already present.
var ErrExists = errors.New("manifest already exists")

// Project is a manifest and the directory its paths are relative to.
type Project struct {
	Dir          string
	ManifestPath string
	Manifest     *manifest.Manifest

	opts *options
}

// Open loads a project. path may name a manifest file, or a directory from
// which the nearest manifest upwards is used; empty means the working
// directory.
func Open(path string, opts ...Option) (*Project, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open project: %w", err)
	}

	var manifestPath string
	if info.IsDir() {
		_, found, err := platform.FindRoot(abs)
		if err != nil {
			return nil, err
		}
		manifestPath = found
	} else {
		manifestPath = abs
	}

	p := &Project{
		Dir:          filepath.Dir(manifestPath),
		ManifestPath: manifestPath,
		opts:         o,
	}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Reload re-reads the manifest from disk.
func (p *Project) Reload() error {
	m, err := manifest.Load(p.ManifestPath)
	if err != nil {
		return err
	}
	p.Manifest = m
	return nil
}

// Build assembles the document from the current manifest.
func (p *Project) Build() (*paper.Document, error) {
	mopts := []manifest.Option{
		manifest.WithBaseDir(p.Dir),
		manifest.WithDocumentOptions(p.opts.docOpts...),
	}
	if p.opts.logger != nil {
		mopts = append(mopts, manifest.WithLogger(p.opts.logger))
	}
	return manifest.Build(p.Manifest, mopts...)
}

// Output is the path of the generated .tex file.
func (p *Project) Output() string {
	if p.opts.output != "" {
		out := p.opts.output
		if abs, err := filepath.Abs(out); err == nil {
			out = abs
		}
		if !strings.HasSuffix(out, ".tex") {
			out += ".tex"
		}
		return out
	}
	return manifest.OutputPath(p.Manifest, p.Dir)
}

// Generate builds the document and writes it to Output.
func (p *Project) Generate() (string, error) {
	doc, err := p.Build()
	if err != nil {
		return "", err
	}
	out := p.Output()
	if err := doc.GenerateTex(out); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", out, err)
	}
	if p.opts.logger != nil {
		p.opts.logger.Info("generated", "path", out)
	}
	return out, nil
}

// Inputs lists the watch patterns of the project, relative to Dir.
func (p *Project) Inputs() []string {
	return manifest.Inputs(p.Manifest, filepath.Base(p.ManifestPath))
}

// Init writes the starter manifest into dir and returns its path. It fails
// with ErrExists if any manifest is already there, unless force is set.
func Init(dir string, force bool) (string, error) {
	if !force {
		for _, name := range platform.ManifestNames {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return "", fmt.Errorf("%w: %s", ErrExists, filepath.Join(dir, name))
			}
		}
	}
	path := filepath.Join(dir, platform.ManifestNames[0])
	if err := platform.WriteFileAtomic(path, []byte(manifest.Template), 0644); err != nil {
		return "", err
	}
	return path, nil
}
