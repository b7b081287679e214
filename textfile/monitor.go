package textfile

import (
	"context"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/charindex"
)

// Monitor keeps the latest indexed snapshot of a text file.
//
// Indexed strings are immutable, so a file edit can never be reflected
// in-place; Reload produces a fresh snapshot instead and broadcasts it to
// all subscribers. Reads of the current snapshot are safe from multiple
// goroutines.
type Monitor struct {
	path string
	cast *caster.Caster // broadcaster for re-indexed snapshots

	mu     sync.RWMutex
	snap   charindex.IndexedString
	closed bool
}

// NewMonitor loads a file and starts monitoring it.
//
// Monitoring is passive: the monitor does not watch the file system, clients
// trigger re-indexing through Reload.
func NewMonitor(name string) (*Monitor, error) {
	snap, err := Load(name, 0)
	if err != nil {
		return nil, err
	}
	return &Monitor{
		path: name,
		cast: caster.New(nil),
		snap: snap,
	}, nil
}

// Snapshot returns the most recently indexed snapshot.
func (m *Monitor) Snapshot() charindex.IndexedString {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}

// Reload re-reads the file, builds a fresh snapshot and broadcasts it to all
// subscribers. The previous snapshot stays valid for everyone still holding
// it.
func (m *Monitor) Reload() error {
	snap, err := Load(m.path, 0)
	if err != nil {
		return err
	}
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrMonitorClosed
	}
	m.snap = snap
	m.mu.Unlock()
	m.cast.Pub(snap)
	tracer().Debugf("textfile: reloaded %q, %d chars", m.path, snap.CharCount())
	return nil
}

// Subscribe returns a channel receiving every snapshot produced by future
// Reload calls.
//
// The channel is closed when ctx is cancelled or the monitor is closed. A
// nil ctx subscribes for the lifetime of the monitor.
func (m *Monitor) Subscribe(ctx context.Context) (<-chan charindex.IndexedString, error) {
	m.mu.RLock()
	closed := m.closed
	m.mu.RUnlock()
	if closed {
		return nil, ErrMonitorClosed
	}
	src, ok := m.cast.Sub(ctx, 1)
	if !ok {
		return nil, ErrMonitorClosed
	}
	out := make(chan charindex.IndexedString, 1)
	go func() {
		defer close(out)
		for msg := range src {
			if snap, isSnap := msg.(charindex.IndexedString); isSnap {
				out <- snap
			}
		}
	}()
	return out, nil
}

// Close shuts the monitor down and closes all subscription channels.
func (m *Monitor) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.mu.Unlock()
	m.cast.Close()
}
