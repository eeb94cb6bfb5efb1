package input

import (
	"testing"
	"time"
)

var th = Thresholds{
	Short:  500 * time.Millisecond,
	Medium: 800 * time.Millisecond,
	Long:   2 * time.Second,
}

// runPress holds the button from t0 for the given duration, polling every
// 20ms, and returns all gestures fired in order.
func runPress(b *Button, hold time.Duration, allowLong bool) []Gesture {
	var fired []Gesture
	step := 20 * time.Millisecond
	now := t0
	for elapsed := time.Duration(0); elapsed <= hold; elapsed += step {
		if g := b.Poll(now, true, allowLong); g != GestureNone {
			fired = append(fired, g)
		}
		now = now.Add(step)
	}
	if g := b.Poll(now, false, allowLong); g != GestureNone {
		fired = append(fired, g)
	}
	return fired
}

func TestShortPress(t *testing.T) {
	b := NewButton(th)
	fired := runPress(b, 100*time.Millisecond, false)

	if len(fired) != 1 || fired[0] != GestureShort {
		t.Errorf("expected one short gesture, got %v", fired)
	}
}

func TestMediumFiresOnceWhileHeld(t *testing.T) {
	b := NewButton(th)
	fired := runPress(b, 1200*time.Millisecond, false)

	if len(fired) != 1 || fired[0] != GestureMedium {
		t.Errorf("expected exactly one medium gesture, got %v", fired)
	}
}

func TestMediumWithoutLongFiresNothingOnRelease(t *testing.T) {
	b := NewButton(th)
	// Past medium, short of long, in a long-accepting mode: the release
	// completes silently.
	fired := runPress(b, 1500*time.Millisecond, true)

	if len(fired) != 1 || fired[0] != GestureMedium {
		t.Errorf("expected only the medium gesture, got %v", fired)
	}
}

func TestLongPressInEditingMode(t *testing.T) {
	b := NewButton(th)
	fired := runPress(b, 2200*time.Millisecond, true)

	if len(fired) != 2 || fired[0] != GestureMedium || fired[1] != GestureLong {
		t.Errorf("expected medium then long, got %v", fired)
	}
}

func TestLongPressSuppressedOutsideEditingModes(t *testing.T) {
	b := NewButton(th)
	fired := runPress(b, 2200*time.Millisecond, false)

	if len(fired) != 1 || fired[0] != GestureMedium {
		t.Errorf("expected long to be suppressed, got %v", fired)
	}
}

func TestAwkwardDurationBetweenShortAndMedium(t *testing.T) {
	b := NewButton(th)
	// Longer than short, shorter than medium: no gesture at all.
	fired := runPress(b, 600*time.Millisecond, true)

	if len(fired) != 0 {
		t.Errorf("expected no gesture, got %v", fired)
	}
}

func TestGesturePerPressIsIndependent(t *testing.T) {
	b := NewButton(th)

	if fired := runPress(b, 1000*time.Millisecond, false); len(fired) != 1 || fired[0] != GestureMedium {
		t.Fatalf("first press: got %v", fired)
	}
	// The medium-fired flag must be cleared on the next press.
	if fired := runPress(b, 100*time.Millisecond, false); len(fired) != 1 || fired[0] != GestureShort {
		t.Fatalf("second press: got %v", fired)
	}
}
