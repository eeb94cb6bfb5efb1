package rtc

import (
	"testing"
	"time"
)

type memOffsetStore struct {
	off   time.Duration
	saves int
}

func (m *memOffsetStore) ClockOffset() (time.Duration, error) { return m.off, nil }
func (m *memOffsetStore) SetClockOffset(d time.Duration) error {
	m.off = d
	m.saves++
	return nil
}

func TestSetThenNowRoundTrip(t *testing.T) {
	s := NewSystem(nil)

	target := time.Date(2030, 1, 2, 23, 59, 0, 0, time.Local)
	if err := s.Set(target); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	now, err := s.Now()
	if err != nil {
		t.Fatalf("Now() failed: %v", err)
	}
	if d := now.Sub(target); d < 0 || d > time.Second {
		t.Errorf("Now() drifted %v from the value just set", d)
	}
}

func TestOffsetPersistence(t *testing.T) {
	store := &memOffsetStore{}
	s := NewSystem(store)

	if err := s.Set(time.Now().Add(90 * time.Minute)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if store.saves != 1 {
		t.Errorf("expected one offset write, got %d", store.saves)
	}

	// A fresh source over the same store picks the offset back up.
	s2 := NewSystem(store)
	now, _ := s2.Now()
	if d := now.Sub(time.Now()); d < 89*time.Minute || d > 91*time.Minute {
		t.Errorf("restored offset off by too much: %v", d)
	}
}
