package device

// Mode is the device's top-level state. Exactly one mode is active; the
// device is the single writer and transitions happen between ticks, never
// inside a handler observed by another component.
type Mode int

const (
	ModeClock Mode = iota
	ModeGameSelect
	ModeSettings
	ModeSetTime
	ModeSetDate
	ModeDino
	ModeDodge
	ModeSnake
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeClock:
		return "clock"
	case ModeGameSelect:
		return "game-select"
	case ModeSettings:
		return "settings"
	case ModeSetTime:
		return "set-time"
	case ModeSetDate:
		return "set-date"
	case ModeDino:
		return "dino"
	case ModeDodge:
		return "dodge"
	case ModeSnake:
		return "snake"
	default:
		return "unknown"
	}
}

// game reports whether the mode runs a game engine, and which one.
func (m Mode) game() (index int, ok bool) {
	switch m {
	case ModeDino:
		return 0, true
	case ModeDodge:
		return 1, true
	case ModeSnake:
		return 2, true
	default:
		return 0, false
	}
}

// allowsLongHold reports whether the long button gesture is accepted.
// Only the menu and editing surfaces use it; in Clock and in games a very
// long press must stay inert.
func (m Mode) allowsLongHold() bool {
	switch m {
	case ModeGameSelect, ModeSettings, ModeSetTime, ModeSetDate:
		return true
	default:
		return false
	}
}
