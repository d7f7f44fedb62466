// README: Local route construction for simulations without a routing backend.
package location

import "time"

// InterpolateRoute builds a straight-line route of n evenly spaced points
// from a to b, with timestamps one second apart. n is clamped to 2.
func InterpolateRoute(a, b Position, n int) []Position {
	if n < 2 {
		n = 2
	}
	base := a.TsMs
	if base == 0 {
		base = time.Now().UnixMilli()
	}

	route := make([]Position, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		route[i] = Position{
			Lat:  a.Lat + (b.Lat-a.Lat)*t,
			Lng:  a.Lng + (b.Lng-a.Lng)*t,
			TsMs: base + int64(i)*1000,
		}
	}
	route[n-1].Name = b.Name
	return route
}
