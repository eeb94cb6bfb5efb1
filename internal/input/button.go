package input

import "time"

// Gesture is the semantic outcome of one completed physical button press.
// A press yields at most one of the three gestures.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureShort
	GestureMedium
	GestureLong
)

// String returns a human-readable name for the gesture.
func (g Gesture) String() string {
	switch g {
	case GestureShort:
		return "short"
	case GestureMedium:
		return "medium"
	case GestureLong:
		return "long"
	default:
		return "none"
	}
}

// Thresholds are the press-duration boundaries for the three gestures.
// Short fires on release below Short; Medium fires while held once the
// hold crosses Medium; Long fires on release past Long, and only when the
// device reports that a long-accepting mode is active.
type Thresholds struct {
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
}

// Button tracks the physical button line across ticks and emits gestures.
type Button struct {
	th          Thresholds
	down        bool
	pressedAt   time.Time
	mediumFired bool
}

// NewButton creates a button tracker with the given thresholds.
func NewButton(th Thresholds) *Button {
	return &Button{th: th}
}

// Poll advances the gesture state machine with this tick's button level.
// allowLong gates the long gesture on the active mode. At most one gesture
// is returned per physical press:
//
//	press start          -> none, arm timestamps
//	held past Medium     -> medium, exactly once
//	release < Short, no medium fired -> short
//	release >= Long after medium, allowLong -> long
//	anything else on release -> none
func (b *Button) Poll(now time.Time, pressed bool, allowLong bool) Gesture {
	switch {
	case pressed && !b.down:
		b.down = true
		b.pressedAt = now
		b.mediumFired = false

	case pressed && b.down:
		if !b.mediumFired && now.Sub(b.pressedAt) >= b.th.Medium {
			b.mediumFired = true
			return GestureMedium
		}

	case !pressed && b.down:
		b.down = false
		held := now.Sub(b.pressedAt)
		if b.mediumFired && held >= b.th.Long && allowLong {
			return GestureLong
		}
		if !b.mediumFired && held < b.th.Short {
			return GestureShort
		}
	}
	return GestureNone
}

// Held reports whether the button is currently pressed.
func (b *Button) Held() bool { return b.down }
