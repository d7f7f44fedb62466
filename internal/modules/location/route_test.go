package location

import "testing"

func TestInterpolateRoute(t *testing.T) {
	a := Position{Lat: 0, Lng: 0, TsMs: 1000}
	b := Position{Lat: 1, Lng: 2, Name: "End"}

	route := InterpolateRoute(a, b, 5)
	if len(route) != 5 {
		t.Fatalf("expected 5 points, got %d", len(route))
	}
	if route[0].Lat != 0 || route[0].Lng != 0 {
		t.Errorf("route must start at a, got %+v", route[0])
	}
	last := route[4]
	if last.Lat != 1 || last.Lng != 2 || last.Name != "End" {
		t.Errorf("route must end at b, got %+v", last)
	}
	if mid := route[2]; mid.Lat != 0.5 || mid.Lng != 1 {
		t.Errorf("midpoint off the line: %+v", mid)
	}
	for i := 1; i < len(route); i++ {
		if route[i].TsMs != route[i-1].TsMs+1000 {
			t.Errorf("timestamps must be 1s apart, got %d -> %d", route[i-1].TsMs, route[i].TsMs)
		}
	}
}

func TestInterpolateRoute_ClampsToTwoPoints(t *testing.T) {
	route := InterpolateRoute(Position{}, Position{Lat: 1}, 0)
	if len(route) != 2 {
		t.Fatalf("expected clamp to 2 points, got %d", len(route))
	}
}
