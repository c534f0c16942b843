package fs

import (
	"sync"
	"time"
)

// debouncer collapses bursts of events on the same path into the last one.
// Editors and atomic writers typically emit several events per save.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay, timers: make(map[string]*time.Timer)}
}

// add schedules fire(e) after the delay, replacing any pending event for the
// same path.
func (d *debouncer) add(e Event, fire func(Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if t, ok := d.timers[e.Path]; ok && t.Stop() {
		d.wg.Done()
	}
	d.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.mu.Lock()
		if d.timers[e.Path] == t {
			delete(d.timers, e.Path)
		}
		d.mu.Unlock()
		fire(e)
	})
	d.timers[e.Path] = t
}

// stopAndWait drops pending events and waits up to timeout for events that
// are already firing.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for path, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, path)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}
