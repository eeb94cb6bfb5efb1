// Package tui is the terminal simulator for the clock: a Bubble Tea loop
// that drives the device scheduler, maps keys to synthetic remote pulses
// and renders the LED frame with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one device scheduler tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the configured rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
