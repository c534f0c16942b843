package project

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/aastex/pkg/adapters/fs"
	"github.com/aretw0/aastex/pkg/adapters/lifecycle"
)

// BuildResult reports one rebuild triggered by Watch.
type BuildResult struct {
	Trigger string // event that caused the rebuild; empty for the initial build
	Output  string
	Err     error
}

// Watch generates the document, then regenerates it whenever the manifest or
// an included image changes, until ctx is done. Each build is reported to
// onBuild. A manifest that fails to load or build is reported and watching
// continues.
func (p *Project) Watch(ctx context.Context, onBuild func(BuildResult)) error {
	out, err := p.Generate()
	onBuild(BuildResult{Output: out, Err: err})

	for ctx.Err() == nil {
		restart, err := p.watchOnce(ctx, onBuild)
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
	return nil
}

// watchOnce runs one watcher over the current inputs. It returns restart
// when the manifest changed so the watch list must be recomputed.
func (p *Project) watchOnce(ctx context.Context, onBuild func(BuildResult)) (restart bool, err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := fs.NewWatcher(fs.Config{
		Root:         p.Dir,
		Patterns:     p.Inputs(),
		Debounce:     p.opts.debounce,
		Logger:       p.opts.logger,
		ErrorHandler: p.opts.errorHandler,
	})
	if err := w.Start(ctx); err != nil {
		return false, fmt.Errorf("failed to start watcher: %w", err)
	}
	if p.opts.logger != nil {
		p.opts.logger.Debug("watching", "dir", p.Dir, "inputs", p.Inputs())
	}

	src := lifecycle.NewSource(w.Events())
	if err := src.Start(ctx); err != nil {
		return false, err
	}

	manifestName := filepath.Base(p.ManifestPath)
	for e := range src.Events() {
		ev, ok := e.(fs.Event)
		if !ok {
			continue
		}

		res := BuildResult{Trigger: ev.String()}
		if ev.Path == manifestName {
			if err := p.Reload(); err != nil {
				res.Err = err
				p.report(res, onBuild)
				continue
			}
			restart = true
		}
		res.Output, res.Err = p.Generate()
		p.report(res, onBuild)

		if restart {
			return true, nil
		}
	}
	return false, nil
}

func (p *Project) report(res BuildResult, onBuild func(BuildResult)) {
	if res.Err != nil {
		if p.opts.logger != nil {
			p.opts.logger.Error("rebuild failed", "trigger", res.Trigger, "error", res.Err)
		}
		if p.opts.errorHandler != nil {
			p.opts.errorHandler(res.Err)
		}
	}
	onBuild(res)
}
