// README: Google Maps directions wrapper producing drivable point sequences.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/iamneilroberts/roadtrip-buddy/internal/modules/location"
)

// RouteService handles interactions with Google Maps API.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API Key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// GetRoute fetches driving directions and flattens the overview polyline into
// positions spaced one second apart, ready for playback.
func (s *RouteService) GetRoute(ctx context.Context, origin, destination string) ([]location.Position, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("no route found")
	}

	latlngs, err := routes[0].OverviewPolyline.Decode()
	if err != nil {
		return nil, fmt.Errorf("decode polyline: %w", err)
	}

	points := make([]location.Position, len(latlngs))
	for i, ll := range latlngs {
		points[i] = location.Position{
			Lat:  ll.Lat,
			Lng:  ll.Lng,
			TsMs: int64(i) * 1000,
		}
	}
	if len(points) > 0 {
		points[len(points)-1].Name = destination
	}
	return points, nil
}
