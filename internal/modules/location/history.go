// README: Bounded, movement-gated history of position fixes.
package location

const (
	// DefaultMaxHistory is the number of fixes kept for direction detection.
	DefaultMaxHistory = 10
	// MinMovementMeters is the minimum displacement for a fix to be recorded.
	MinMovementMeters = 10.0
)

// History keeps the most recent fixes in chronological order. A candidate is
// admitted only when it moved more than the minimum threshold from the last
// entry; once the capacity is exceeded the oldest entries are evicted.
type History struct {
	points  []Position
	maxLen  int
	minMove float64
}

func NewHistory(maxLen int) *History {
	if maxLen <= 0 {
		maxLen = DefaultMaxHistory
	}
	return &History{maxLen: maxLen, minMove: MinMovementMeters}
}

// Admit appends the candidate if the history is empty or the candidate is
// more than minMove meters from the last entry. Reports whether it was added.
func (h *History) Admit(p Position) bool {
	if n := len(h.points); n > 0 && DistanceMeters(h.points[n-1], p) <= h.minMove {
		return false
	}
	h.points = append(h.points, p)
	if len(h.points) > h.maxLen {
		trimmed := make([]Position, h.maxLen)
		copy(trimmed, h.points[len(h.points)-h.maxLen:])
		h.points = trimmed
	}
	return true
}

// Points returns a copy of the recorded fixes, oldest first.
func (h *History) Points() []Position {
	out := make([]Position, len(h.points))
	copy(out, h.points)
	return out
}

func (h *History) Len() int { return len(h.points) }

// Last returns the most recent fix, if any.
func (h *History) Last() (Position, bool) {
	if len(h.points) == 0 {
		return Position{}, false
	}
	return h.points[len(h.points)-1], true
}

func (h *History) Clear() { h.points = nil }
