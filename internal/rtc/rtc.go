// Package rtc is the real-time source boundary. The core reads the current
// date-time and writes a fully staged replacement; it never read-modifies
// partial fields on the hardware side.
package rtc

import "time"

// Source is the clock consumed by the device.
type Source interface {
	// Now returns the current date-time. An error means the time source is
	// unavailable; callers degrade to best-effort display.
	Now() (time.Time, error)

	// Set replaces the current date-time atomically.
	Set(t time.Time) error
}

// OffsetStore persists the clock adjustment across restarts. Implemented
// by the storage layer; optional.
type OffsetStore interface {
	ClockOffset() (time.Duration, error)
	SetClockOffset(d time.Duration) error
}

// SystemSource keeps a settable clock as an offset over the host's wall
// clock, the simulator's stand-in for a battery-backed RTC chip.
type SystemSource struct {
	offset time.Duration
	store  OffsetStore
}

// NewSystem creates a system-backed source. When store is non-nil the
// persisted offset is restored and future Set calls are written back.
func NewSystem(store OffsetStore) *SystemSource {
	s := &SystemSource{store: store}
	if store != nil {
		if off, err := store.ClockOffset(); err == nil {
			s.offset = off
		}
	}
	return s
}

// Now returns the adjusted current time.
func (s *SystemSource) Now() (time.Time, error) {
	return time.Now().Add(s.offset), nil
}

// Set adjusts the clock so Now reads t from this instant on and persists
// the new offset when a store is wired.
func (s *SystemSource) Set(t time.Time) error {
	s.offset = time.Until(t)
	if s.store != nil {
		return s.store.SetClockOffset(s.offset)
	}
	return nil
}

var _ Source = (*SystemSource)(nil)
