package location

import (
	"context"
	"testing"
	"time"
)

func TestService_LiveFixesFeedHistory(t *testing.T) {
	feed := NewDeviceFeed()
	svc := NewService(nil, feed)
	defer svc.Close()

	if err := svc.StartWatching(); err != nil {
		t.Fatalf("start watching: %v", err)
	}

	feed.Push(Position{Lat: 0, Lng: 0, TsMs: 1000})
	feed.Push(Position{Lat: 0, Lng: 0.00001, TsMs: 2000}) // ~1m, rejected by history
	feed.Push(Position{Lat: 0, Lng: 1, TsMs: 3000})

	snap := svc.Snapshot()
	if !snap.Watching {
		t.Error("expected session to be watching")
	}
	if snap.Current == nil || snap.Current.Lng != 1 {
		t.Errorf("unexpected current fix %+v", snap.Current)
	}
	if len(snap.History) != 2 {
		t.Fatalf("expected 2 admitted fixes, got %d", len(snap.History))
	}
}

func TestService_SimulationStopsLiveWatch(t *testing.T) {
	feed := NewDeviceFeed()
	svc := NewService(nil, feed)
	defer svc.Close()

	if err := svc.StartWatching(); err != nil {
		t.Fatalf("start watching: %v", err)
	}

	route := []Position{
		{Lat: 5, Lng: 5, TsMs: 1000},
		{Lat: 6, Lng: 6, TsMs: 2000},
	}
	// 0.2 Hz keeps the first tick 5s away, so only route[0] is emitted here.
	if err := svc.StartSimulation(context.Background(), route, 0.2, nil); err != nil {
		t.Fatalf("start simulation: %v", err)
	}

	snap := svc.Snapshot()
	if snap.Watching {
		t.Error("starting a simulation must stop the live watch")
	}
	if !snap.Simulating {
		t.Error("expected simulation to be running")
	}
	if snap.Current == nil || snap.Current.Lat != 5 {
		t.Errorf("expected route[0] as current fix, got %+v", snap.Current)
	}

	// The cancelled watch must no longer reach the session.
	feed.Push(Position{Lat: 50, Lng: 50, TsMs: 3000})
	if cur := svc.Snapshot().Current; cur == nil || cur.Lat != 5 {
		t.Errorf("live fix leaked into a simulating session: %+v", cur)
	}
}

func TestService_WatchStopsSimulation(t *testing.T) {
	feed := NewDeviceFeed()
	svc := NewService(nil, feed)
	defer svc.Close()

	route := []Position{{Lat: 1}, {Lat: 2}}
	if err := svc.StartSimulation(context.Background(), route, 0.2, nil); err != nil {
		t.Fatalf("start simulation: %v", err)
	}
	if err := svc.StartWatching(); err != nil {
		t.Fatalf("start watching: %v", err)
	}

	snap := svc.Snapshot()
	if snap.Simulating {
		t.Error("starting the live watch must stop the simulation")
	}
	if !snap.Watching {
		t.Error("expected session to be watching")
	}
}

func TestService_SynthesizesDestinationFromRoute(t *testing.T) {
	svc := NewService(nil, NewDeviceFeed())
	defer svc.Close()

	route := []Position{
		{Lat: 0, Lng: 0},
		{Lat: 35.6812, Lng: 139.7671},
	}
	if err := svc.StartSimulation(context.Background(), route, 0.2, nil); err != nil {
		t.Fatalf("start simulation: %v", err)
	}

	snap := svc.Snapshot()
	if snap.Destination == nil {
		t.Fatal("expected a synthesized destination")
	}
	if snap.Destination.Name != "Destination (35.6812, 139.7671)" {
		t.Errorf("unexpected destination label %q", snap.Destination.Name)
	}

	explicit := &Position{Lat: 1, Lng: 2, Name: "Diner"}
	if err := svc.StartSimulation(context.Background(), route, 0.2, explicit); err != nil {
		t.Fatalf("restart simulation: %v", err)
	}
	if got := svc.Snapshot().Destination; got == nil || got.Name != "Diner" {
		t.Errorf("explicit destination not recorded: %+v", got)
	}
}

func TestService_SimulationRejectsBadInput(t *testing.T) {
	svc := NewService(nil, NewDeviceFeed())
	defer svc.Close()

	if err := svc.StartSimulation(context.Background(), []Position{{Lat: 1}}, 1, nil); err != ErrInvalidRoute {
		t.Errorf("got %v, want ErrInvalidRoute", err)
	}
	if err := svc.StartSimulation(context.Background(), []Position{{}, {Lat: 1}}, 0, nil); err != ErrInvalidRate {
		t.Errorf("got %v, want ErrInvalidRate", err)
	}
}

func TestService_SimulatedRouteRunsThroughAdmission(t *testing.T) {
	svc := NewService(nil, NewDeviceFeed())
	defer svc.Close()

	route := []Position{
		{Lat: 0, Lng: 0, TsMs: 1000},
		{Lat: 0, Lng: 1, TsMs: 2000},
		{Lat: 0, Lng: 2, TsMs: 3000},
	}
	if err := svc.StartSimulation(context.Background(), route, 100, nil); err != nil {
		t.Fatalf("start simulation: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for svc.Snapshot().Simulating {
		if time.Now().After(deadline) {
			t.Fatal("simulation did not finish in time")
		}
		time.Sleep(5 * time.Millisecond)
	}

	snap := svc.Snapshot()
	if len(snap.History) != 3 {
		t.Fatalf("expected all simulated fixes admitted, got %d", len(snap.History))
	}
	if snap.Progress != 1.0 {
		t.Errorf("final progress = %f, want 1.0", snap.Progress)
	}
}
