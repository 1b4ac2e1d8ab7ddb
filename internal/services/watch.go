package services

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"drover/internal/ports"
)

// SessionSnapshot is one live session with its windows, as shown by watch.
type SessionSnapshot struct {
	Name    string
	Windows []ports.MuxWindow
}

// Snapshot is the full multiplexer state at one instant.
type Snapshot struct {
	Sessions []SessionSnapshot
	TakenAt  time.Time
}

// WatchService produces point-in-time snapshots of all sessions for the TUI.
type WatchService struct {
	mux ports.Multiplexer
}

// NewWatchService creates a new WatchService
func NewWatchService(mux ports.Multiplexer) *WatchService {
	return &WatchService{mux: mux}
}

// Take lists all sessions and fans out per-session window listing.
func (w *WatchService) Take(ctx context.Context) (*Snapshot, error) {
	if err := w.mux.Available(); err != nil {
		return nil, err
	}

	sessions, err := w.mux.ListSessions()
	if err != nil {
		return nil, err
	}

	snapshots := make([]SessionSnapshot, len(sessions))
	g, _ := errgroup.WithContext(ctx)
	for i, s := range sessions {
		g.Go(func() error {
			windows, err := w.mux.ListWindows(s.Name)
			if err != nil {
				// A session can vanish between list and inspect; show it
				// without windows rather than failing the whole snapshot.
				windows = nil
			}
			snapshots[i] = SessionSnapshot{Name: s.Name, Windows: windows}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Name < snapshots[j].Name
	})

	return &Snapshot{Sessions: snapshots, TakenAt: time.Now()}, nil
}
