// README: CLI demo; plays an interpolated route through the simulator and prints headings.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iamneilroberts/roadtrip-buddy/internal/modules/location"
)

func main() {
	fromLat := flag.Float64("from-lat", 30.2672, "route start latitude")
	fromLng := flag.Float64("from-lng", -97.7431, "route start longitude")
	toLat := flag.Float64("to-lat", 32.7767, "route end latitude")
	toLng := flag.Float64("to-lng", -96.7970, "route end longitude")
	points := flag.Int("points", 10, "number of route points")
	rate := flag.Float64("rate", 5.0, "playback rate in Hz")
	flag.Parse()

	start := location.Position{Lat: *fromLat, Lng: *fromLng}
	end := location.Position{Lat: *toLat, Lng: *toLng, Name: "Destination"}
	route := location.InterpolateRoute(start, end, *points)

	history := location.NewHistory(location.DefaultMaxHistory)
	done := make(chan struct{})

	var last *location.Position
	sim := location.NewSimulator(func(p location.Position) {
		admitted := history.Admit(p)
		line := fmt.Sprintf("fix  %9.4f, %9.4f", p.Lat, p.Lng)
		if last != nil {
			bearing := location.BearingDegrees(*last, p)
			line += fmt.Sprintf("  heading %-9s (%6.2f°)", location.CardinalDirection(bearing), bearing)
			line += fmt.Sprintf("  moved %7.1fm", location.DistanceMeters(*last, p))
		}
		if !admitted {
			line += "  (below movement threshold)"
		}
		fmt.Println(line)
		point := p
		last = &point
	}, func() {
		close(done)
	})

	if err := sim.Start(route, *rate); err != nil {
		fmt.Fprintf(os.Stderr, "start simulation: %v\n", err)
		os.Exit(1)
	}
	<-done

	fmt.Printf("\nroute complete, %d of %d fixes admitted to history\n", history.Len(), len(route))
}
