// Package lifecycle exposes watcher events as a lifecycle.Source.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/aastex/pkg/adapters/fs"
)

type watchSource struct {
	events <-chan fs.Event
	out    chan lifecycle.Event
}

// NewSource bridges a watcher's event channel to lifecycle events. The
// output channel closes when events closes or the context passed to Start
// is done.
func NewSource(events <-chan fs.Event) lifecycle.Source {
	return &watchSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *watchSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *watchSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
