package types

// Mode selects how much detail a recommendation reply should carry.
type Mode string

const (
	// ModeQuick asks for short, glanceable answers suitable while driving.
	ModeQuick Mode = "quick"
	// ModeDetailed asks for full write-ups with structured stop data.
	ModeDetailed Mode = "detailed"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeQuick, ModeDetailed:
		return true
	}
	return false
}
