// README: Positioning source abstraction and the device-fed implementation.
package location

import (
	"context"
	"sync"
)

// Source is a uniform one-shot/continuous position provider. A live device
// feed and any platform positioning API both fit behind it.
type Source interface {
	// Current returns the latest known fix, or a *PositionError.
	Current(ctx context.Context) (Position, error)
	// Watch delivers every new fix to onFix until the returned stop function
	// is called. Positioning failures go to onErr; neither callback may be nil.
	Watch(onFix func(Position), onErr func(*PositionError)) (stop func(), err error)
}

// DeviceFeed is a Source fed over HTTP by the client device. Each reported
// fix fans out to all registered watchers.
type DeviceFeed struct {
	mu       sync.Mutex
	nextID   int
	watchers map[int]watcher
	latest   *Position
}

type watcher struct {
	onFix func(Position)
	onErr func(*PositionError)
}

func NewDeviceFeed() *DeviceFeed {
	return &DeviceFeed{watchers: make(map[int]watcher)}
}

// Push records a fix reported by the device and notifies watchers.
func (f *DeviceFeed) Push(p Position) {
	f.mu.Lock()
	cp := p
	f.latest = &cp
	targets := make([]watcher, 0, len(f.watchers))
	for _, w := range f.watchers {
		targets = append(targets, w)
	}
	f.mu.Unlock()

	for _, w := range targets {
		w.onFix(p)
	}
}

// Fail propagates a positioning failure (permission denied, timeout, ...) to
// all watchers.
func (f *DeviceFeed) Fail(code int, message string) {
	if message == "" {
		message = ErrorMessage(code)
	}
	perr := &PositionError{Code: code, Message: message}

	f.mu.Lock()
	targets := make([]watcher, 0, len(f.watchers))
	for _, w := range f.watchers {
		targets = append(targets, w)
	}
	f.mu.Unlock()

	for _, w := range targets {
		w.onErr(perr)
	}
}

func (f *DeviceFeed) Current(_ context.Context) (Position, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.latest == nil {
		return Position{}, &PositionError{
			Code:    CodePositionUnavailable,
			Message: ErrorMessage(CodePositionUnavailable),
		}
	}
	return *f.latest, nil
}

func (f *DeviceFeed) Watch(onFix func(Position), onErr func(*PositionError)) (func(), error) {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.watchers[id] = watcher{onFix: onFix, onErr: onErr}
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.watchers, id)
			f.mu.Unlock()
		})
	}, nil
}
