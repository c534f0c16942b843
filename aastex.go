package aastex

import (
	"log/slog"
	"time"

	"github.com/aretw0/aastex/internal/project"
	"github.com/aretw0/aastex/pkg/paper"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Document is the root of a paper.
type Document = paper.Document

// DocumentOption configures a Document.
type DocumentOption = paper.DocumentOption

// Project is a manifest on disk and the document it builds.
type Project = project.Project

// BuildResult reports a rebuild during Project.Watch.
type BuildResult = project.BuildResult

// --- Configuration ---

// Option configures a Project.
type Option = project.Option

// WithLogger sets the logger for builds and the watcher.
func WithLogger(logger *slog.Logger) Option {
	return project.WithLogger(logger)
}

// WithOutput overrides the .tex path set in the manifest.
func WithOutput(path string) Option {
	return project.WithOutput(path)
}

// WithDocumentOptions applies document options on top of the manifest.
func WithDocumentOptions(opts ...DocumentOption) Option {
	return project.WithDocumentOptions(opts...)
}

// WithDebounce sets the quiet period before a change triggers a rebuild.
func WithDebounce(d time.Duration) Option {
	return project.WithDebounce(d)
}

// WithWatcherErrorHandler registers a callback for watch and rebuild errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return project.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates an empty document with the AAS defaults.
func New(opts ...DocumentOption) *Document {
	return paper.NewDocument(opts...)
}

// Open loads the project whose manifest is at path, or the nearest manifest
// above the directory path.
func Open(path string, opts ...Option) (*Project, error) {
	return project.Open(path, opts...)
}

// Init writes a starter manifest into dir.
func Init(dir string, force bool) (string, error) {
	return project.Init(dir, force)
}
