package device

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pixelclock/internal/display"
	"github.com/vovakirdan/pixelclock/internal/input"
)

// menuItem is the settings menu cursor.
type menuItem int

const (
	menuDifficulty menuItem = iota
	menuTime
	menuDate
	menuExit

	menuItems
)

func (m menuItem) label() string {
	switch m {
	case menuDifficulty:
		return "DIFF"
	case menuTime:
		return "TIME"
	case menuDate:
		return "DATE"
	default:
		return "EXIT"
	}
}

// editState is the staged copy of time or date fields being edited. It is
// committed to the time source in one write on final confirm and simply
// discarded on cancel or timeout.
type editState struct {
	field  int
	hour   int
	minute int
	year   int
	month  int
	day    int
}

// tickSettings handles the four-item menu. Difficulty changes persist
// immediately; every exit path persists it again, which is a no-op unless
// the value actually changed.
func (d *Device) tickSettings(now time.Time, e input.Edges, g input.Gesture) {
	switch {
	case e.Has(input.Return):
		d.exitSettings(now)
		return
	case e.Has(input.Up):
		d.menu = (d.menu + menuItems - 1) % menuItems
	case e.Has(input.Down) || g == input.GestureShort:
		d.menu = (d.menu + 1) % menuItems
	case e.Has(input.Ok) || g == input.GestureLong:
		d.selectMenuItem(now)
		return
	}
	if now.Sub(d.disp.LastInput()) > d.cfg.Timeouts.Settings() {
		d.exitSettings(now)
		return
	}
	d.drawSettings()
}

func (d *Device) exitSettings(now time.Time) {
	d.persistDifficulty()
	d.setMode(ModeClock, now)
}

func (d *Device) persistDifficulty() {
	if err := d.store.SetDifficulty(d.difficulty); err != nil {
		d.logger.Warn("cannot persist difficulty", "err", err)
	}
}

func (d *Device) selectMenuItem(now time.Time) {
	switch d.menu {
	case menuDifficulty:
		d.difficulty = d.difficulty%5 + 1
		d.persistDifficulty()
		d.drawSettings()
	case menuTime:
		t := d.sourceNow(now)
		d.edit = editState{hour: t.Hour(), minute: t.Minute()}
		d.setMode(ModeSetTime, now)
	case menuDate:
		t := d.sourceNow(now)
		d.edit = editState{year: t.Year(), month: int(t.Month()), day: t.Day()}
		d.setMode(ModeSetDate, now)
	case menuExit:
		d.exitSettings(now)
	}
}

// sourceNow reads the time source, degrading to the scheduler's own clock
// when the source is unavailable.
func (d *Device) sourceNow(now time.Time) time.Time {
	t, err := d.clock.Now()
	if err != nil {
		d.logger.Warn("time source read failed", "err", err)
		return now
	}
	return t
}

func (d *Device) drawSettings() {
	d.canvas.Clear()
	d.canvas.DrawText(display.Top, "SET", display.White)
	text := d.menu.label()
	if d.menu == menuDifficulty {
		text = fmt.Sprintf("DIFF %d", d.difficulty)
	}
	d.canvas.DrawText(display.Bottom, text, display.Amber)
}

// editFields returns how many fields the active editor steps through.
func (d *Device) editFields() int {
	if d.mode == ModeSetTime {
		return 2 // hour, minute
	}
	return 3 // year, month, day
}

// tickEdit handles both the time and the date editor. Up/short increment
// the active field with wraparound, Down decrements; Ok advances and, on
// the last field, commits the whole staged value in one write.
func (d *Device) tickEdit(now time.Time, e input.Edges, g input.Gesture) {
	switch {
	case e.Has(input.Return):
		d.setMode(ModeSettings, now)
		return
	case e.Has(input.Up) || g == input.GestureShort:
		d.stepField(1)
	case e.Has(input.Down):
		d.stepField(-1)
	case e.Has(input.Ok) || g == input.GestureLong:
		if d.edit.field < d.editFields()-1 {
			d.edit.field++
		} else {
			d.commitEdit(now)
			d.setMode(ModeClock, now)
			return
		}
	}
	if now.Sub(d.disp.LastInput()) > d.cfg.Timeouts.Edit() {
		d.setMode(ModeClock, now)
		return
	}
	d.drawEdit()
}

// stepField adjusts the active field by delta, wrapping inside its valid
// range.
func (d *Device) stepField(delta int) {
	ed := &d.edit
	if d.mode == ModeSetTime {
		switch ed.field {
		case 0:
			ed.hour = wrap(ed.hour+delta, 0, 23)
		case 1:
			ed.minute = wrap(ed.minute+delta, 0, 59)
		}
		return
	}
	switch ed.field {
	case 0:
		ed.year = wrap(ed.year+delta, 2000, 2099)
	case 1:
		ed.month = wrap(ed.month+delta, 1, 12)
	case 2:
		ed.day = wrap(ed.day+delta, 1, 31)
	}
}

// wrap keeps v inside [lo, hi], wrapping around at both ends.
func wrap(v, lo, hi int) int {
	if v > hi {
		return lo
	}
	if v < lo {
		return hi
	}
	return v
}

// commitEdit writes the staged fields to the time source as one full
// date-time, preserving whichever half was not edited.
func (d *Device) commitEdit(now time.Time) {
	cur := d.sourceNow(now)
	var next time.Time
	if d.mode == ModeSetTime {
		next = time.Date(cur.Year(), cur.Month(), cur.Day(),
			d.edit.hour, d.edit.minute, 0, 0, cur.Location())
	} else {
		next = time.Date(d.edit.year, time.Month(d.edit.month), d.edit.day,
			cur.Hour(), cur.Minute(), cur.Second(), 0, cur.Location())
	}
	if err := d.clock.Set(next); err != nil {
		d.logger.Error("cannot set time source", "err", err)
		return
	}
	d.logger.Info("time source updated", "to", next.Format("2006-01-02 15:04"))
}

// drawEdit shows the active field's name on top and its staged value
// below.
func (d *Device) drawEdit() {
	d.canvas.Clear()
	var name, value string
	if d.mode == ModeSetTime {
		switch d.edit.field {
		case 0:
			name, value = "HOUR", fmt.Sprintf("%02d", d.edit.hour)
		case 1:
			name, value = "MIN", fmt.Sprintf("%02d", d.edit.minute)
		}
	} else {
		switch d.edit.field {
		case 0:
			name, value = "YEAR", fmt.Sprintf("%d", d.edit.year)
		case 1:
			name, value = "MONTH", fmt.Sprintf("%02d", d.edit.month)
		case 2:
			name, value = "DAY", fmt.Sprintf("%02d", d.edit.day)
		}
	}
	d.canvas.DrawText(display.Top, name, display.White)
	d.canvas.DrawText(display.Bottom, value, display.Green)
}
