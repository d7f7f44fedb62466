package prompt

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/iamneilroberts/roadtrip-buddy/internal/modules/location"
	"github.com/iamneilroberts/roadtrip-buddy/internal/types"
)

const maxHeadingPoints = 4

// Context carries everything a prompt template can reference.
type Context struct {
	CurrentLocation     *location.Position
	Destination         *location.Position
	History             []location.Position
	CurrentTime         string
	Mode                types.Mode
	ConversationSummary string
}

// Format substitutes every placeholder in template and, when enough history
// exists, appends a travel direction section derived from the recent track.
func Format(template string, c Context) string {
	out := template

	userLocation := "Unknown"
	if c.CurrentLocation != nil {
		userLocation = fmt.Sprintf("%v, %v", c.CurrentLocation.Lat, c.CurrentLocation.Lng)
	}
	out = strings.ReplaceAll(out, "{user_location}", userLocation)

	destination := "Not specified"
	if c.Destination != nil {
		destination = fmt.Sprintf("%v, %v", c.Destination.Lat, c.Destination.Lng)
		if c.Destination.Name != "" {
			destination = fmt.Sprintf("%s (%s)", c.Destination.Name, destination)
		}
	}
	out = strings.ReplaceAll(out, "{destination}", destination)

	out = strings.ReplaceAll(out, "{current_time}", c.CurrentTime)

	summary := c.ConversationSummary
	if summary == "" {
		summary = "No previous stops recorded"
	}
	out = strings.ReplaceAll(out, "{conversation_history}", summary)

	out = strings.ReplaceAll(out, "{quick_mode or detailed_mode}", string(c.Mode)+"_mode")

	if section := travelDirectionSection(c.History); section != "" {
		out += section
	}
	return out
}

// travelDirectionSection summarizes the recent heading from the last few
// track points. Below two points there is no heading to report.
func travelDirectionSection(history []location.Position) string {
	if len(history) < 2 {
		return ""
	}

	sorted := make([]location.Position, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].TsMs < sorted[j].TsMs })

	recent := sorted
	if len(recent) > maxHeadingPoints {
		recent = recent[len(recent)-maxHeadingPoints:]
	}

	lines := make([]string, len(recent))
	for i, point := range recent {
		ts := point.TsMs
		if ts == 0 {
			ts = time.Now().UnixMilli()
		}
		lines[i] = fmt.Sprintf("{lat: %.4f, lng: %.4f, timestamp: %d}", point.Lat, point.Lng, ts)
	}

	bearing := location.BearingDegrees(recent[len(recent)-2], recent[len(recent)-1])
	cardinal := location.CardinalDirection(bearing)

	return fmt.Sprintf(`
## Travel Direction Information

The user is currently traveling in the %s direction (bearing: %.2f°).

Recent location history (from oldest to newest):
- %s

Use this location history to:
1. Determine the user's travel path and direction
2. Predict their likely route
3. Recommend places that are ahead on their path rather than behind them
4. Adjust recommendations based on their current heading
5. Always include the town/city name with any locations you mention
`, cardinal, bearing, strings.Join(lines, "\n- "))
}
