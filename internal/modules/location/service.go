// README: Session controller owning current fix, history, and position sources.
package location

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// Service is the single writer for session location state. It enforces that
// exactly one position source is active at a time: a live watch on the device
// feed, or a route simulation, never both.
type Service struct {
	mu          sync.Mutex
	store       *Store
	source      Source
	sim         *Simulator
	history     *History
	current     *Position
	destination *Position
	watching    bool
	cancelWatch func()
	lastFlushed *Position
}

// Snapshot is the read view handed to consumers; mutating it has no effect
// on the session.
type Snapshot struct {
	Current     *Position  `json:"current,omitempty"`
	Destination *Position  `json:"destination,omitempty"`
	History     []Position `json:"history"`
	Watching    bool       `json:"watching"`
	Simulating  bool       `json:"simulating"`
	Progress    float64    `json:"progress"`
}

// NewService creates a session controller. store may be nil when persistence
// is not wired (tests, demo CLI).
func NewService(store *Store, source Source) *Service {
	s := &Service{
		store:   store,
		source:  source,
		history: NewHistory(DefaultMaxHistory),
	}
	s.sim = NewSimulator(s.handleFix, s.handleSimulationComplete)
	return s
}

// handleFix is the only path by which a new fix enters the session, whether
// it came from the live watch or the simulator.
func (s *Service) handleFix(p Position) {
	s.mu.Lock()
	cp := p
	s.current = &cp
	s.history.Admit(p)
	s.mu.Unlock()
}

func (s *Service) handleSimulationComplete() {
	log.Printf("simulation complete")
}

func (s *Service) handleWatchError(perr *PositionError) {
	log.Printf("position watch error: %v", perr)
	s.StopWatching()
}

// StartWatching switches the session to the live source. A running
// simulation is stopped first.
func (s *Service) StartWatching() error {
	s.sim.Stop()

	s.mu.Lock()
	if s.watching {
		s.mu.Unlock()
		return nil
	}
	s.watching = true
	s.mu.Unlock()

	cancel, err := s.source.Watch(s.handleFix, s.handleWatchError)
	if err != nil {
		s.mu.Lock()
		s.watching = false
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.cancelWatch = cancel
	s.mu.Unlock()
	return nil
}

// StopWatching is idempotent and safe to call while not watching.
func (s *Service) StopWatching() {
	s.mu.Lock()
	cancel := s.cancelWatch
	s.cancelWatch = nil
	s.watching = false
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// StartSimulation stops the live watch, records the destination (explicit or
// synthesized from the final route point), persists the route, and begins
// playback.
func (s *Service) StartSimulation(ctx context.Context, route []Position, rateHz float64, dest *Position) error {
	if len(route) < 2 {
		return ErrInvalidRoute
	}
	if rateHz <= 0 {
		return ErrInvalidRate
	}

	s.StopWatching()

	d := dest
	if d == nil {
		last := route[len(route)-1]
		d = &Position{
			Lat:  last.Lat,
			Lng:  last.Lng,
			TsMs: last.TsMs,
			Name: last.Name,
		}
		if d.Name == "" {
			d.Name = fmt.Sprintf("Destination (%.4f, %.4f)", last.Lat, last.Lng)
		}
	}

	s.mu.Lock()
	s.destination = d
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.SaveRoute(ctx, route); err != nil {
			log.Printf("save simulation route: %v", err)
		}
		if err := s.store.SaveDestination(ctx, *d); err != nil {
			log.Printf("save simulation destination: %v", err)
		}
	}

	return s.sim.Start(route, rateHz)
}

// StopSimulation is idempotent.
func (s *Service) StopSimulation() { s.sim.Stop() }

// ReportFix admits a one-shot fix outside of any watch, e.g. the initial
// position lookup on session start.
func (s *Service) ReportFix(p Position) { s.handleFix(p) }

func (s *Service) SetDestination(d *Position) {
	s.mu.Lock()
	s.destination = d
	s.mu.Unlock()
}

func (s *Service) ClearHistory() {
	s.mu.Lock()
	s.history.Clear()
	s.mu.Unlock()
}

func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	snap := Snapshot{
		History:  s.history.Points(),
		Watching: s.watching,
	}
	if s.current != nil {
		cp := *s.current
		snap.Current = &cp
	}
	if s.destination != nil {
		cp := *s.destination
		snap.Destination = &cp
	}
	s.mu.Unlock()

	snap.Simulating = s.sim.Running()
	snap.Progress = s.sim.Progress()
	return snap
}

// RunSnapshotFlusher periodically persists the latest admitted fix so a
// session survives restarts. Blocks until ctx is cancelled.
func (s *Service) RunSnapshotFlusher(ctx context.Context, interval time.Duration) {
	if s.store == nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			var pending *Position
			if s.current != nil && s.current != s.lastFlushed {
				pending = s.current
			}
			s.mu.Unlock()

			if pending == nil {
				continue
			}
			if err := s.store.AppendSnapshot(ctx, *pending); err != nil {
				log.Printf("flush location snapshot: %v", err)
				continue
			}
			s.mu.Lock()
			s.lastFlushed = pending
			s.mu.Unlock()
		}
	}
}

// Close tears the session down; the simulation timer must not fire afterward.
func (s *Service) Close() {
	s.StopWatching()
	s.sim.Stop()
}
