// README: Route playback simulator; emits fixes like a live position watch.
package location

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrInvalidRoute = errors.New("simulation route needs at least two points")
	ErrInvalidRate  = errors.New("playback rate must be positive")
)

// Simulator replays a route at a fixed rate, producing the same fix stream a
// real device would. It is idle until Start and returns to idle when the
// route is exhausted, on explicit Stop, or on teardown.
type Simulator struct {
	mu       sync.Mutex
	route    []Position
	cursor   int
	rateHz   float64
	progress float64
	running  bool
	stop     chan struct{}

	onFix      func(Position)
	onComplete func()
}

// NewSimulator creates an idle simulator. onFix receives every emitted
// position; onComplete fires once when a route finishes on its own. Either
// callback may be nil.
func NewSimulator(onFix func(Position), onComplete func()) *Simulator {
	return &Simulator{onFix: onFix, onComplete: onComplete}
}

// Start begins playback. The first route point is emitted immediately and the
// remaining points follow every 1/rateHz seconds. A running playback is
// stopped first, so timers never overlap.
func (s *Simulator) Start(route []Position, rateHz float64) error {
	if len(route) < 2 {
		return ErrInvalidRoute
	}
	if rateHz <= 0 {
		return ErrInvalidRate
	}

	s.mu.Lock()
	s.stopLocked()
	s.route = make([]Position, len(route))
	copy(s.route, route)
	s.cursor = 0
	s.rateHz = rateHz
	s.progress = 0
	s.running = true
	stopCh := make(chan struct{})
	s.stop = stopCh
	s.mu.Unlock()

	if s.onFix != nil {
		s.onFix(route[0])
	}

	go s.run(stopCh, time.Duration(float64(time.Second)/rateHz))
	return nil
}

func (s *Simulator) run(stopCh chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			s.mu.Lock()
			// Guard against ticks from a superseded or cancelled run.
			if !s.running || s.stop != stopCh {
				s.mu.Unlock()
				return
			}
			s.cursor++
			if s.cursor >= len(s.route) {
				// Route exhausted: back to idle, progress stays at 1.
				s.running = false
				s.stop = nil
				s.mu.Unlock()
				if s.onComplete != nil {
					s.onComplete()
				}
				return
			}
			pos := s.route[s.cursor]
			s.progress = float64(s.cursor) / float64(len(s.route)-1)
			s.mu.Unlock()

			if s.onFix != nil {
				s.onFix(pos)
			}
		}
	}
}

// Stop cancels playback and resets cursor and progress. Safe to call from
// idle and safe to call repeatedly.
func (s *Simulator) Stop() {
	s.mu.Lock()
	s.stopLocked()
	s.mu.Unlock()
}

func (s *Simulator) stopLocked() {
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
	s.running = false
	s.cursor = 0
	s.progress = 0
	s.route = nil
}

// Running reports whether a playback is in flight.
func (s *Simulator) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Progress is cursor/(len(route)-1), in [0,1].
func (s *Simulator) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}
