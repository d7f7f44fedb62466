// README: Position fix model and typed positioning errors.
package location

import "fmt"

// Position is a single positioning fix. Immutable once created.
type Position struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Accuracy float64 `json:"accuracy,omitempty"`
	TsMs     int64   `json:"timestamp"`
	Name     string  `json:"name,omitempty"`
}

// Positioning error codes, matching the conventional platform numbering.
const (
	CodeUnsupported         = 0
	CodePermissionDenied    = 1
	CodePositionUnavailable = 2
	CodePositionTimeout     = 3
)

// PositionError is surfaced by a Source when a fix cannot be obtained.
// The core never retries; the caller decides whether to prompt again.
type PositionError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("positioning error %d: %s", e.Code, e.Message)
}

// ErrorMessage returns the stock description for a positioning error code.
func ErrorMessage(code int) string {
	switch code {
	case CodePermissionDenied:
		return "Permission denied. Please allow location access to use this feature."
	case CodePositionUnavailable:
		return "Position unavailable. The network is down or the positioning satellites cannot be contacted."
	case CodePositionTimeout:
		return "Timeout. The request to get user location timed out."
	default:
		return "An unknown error occurred while trying to access your location."
	}
}
