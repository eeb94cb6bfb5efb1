package device

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pixelclock/internal/display"
	"github.com/vovakirdan/pixelclock/internal/equation"
)

// quizPeriod is the length of one bottom-row display window. Windows
// alternate between the date and an arithmetic quiz.
const quizPeriod = 10 * time.Second

// drawClock renders the home screen: hours and minutes on top with a
// colon blinking on even seconds, date or quiz below.
func (d *Device) drawClock(now time.Time) {
	t := d.sourceNow(now)

	sep := ":"
	if t.Second()%2 != 0 {
		sep = " "
	}
	d.canvas.Clear()
	d.canvas.DrawText(display.Top, fmt.Sprintf("%02d%s%02d", t.Hour(), sep, t.Minute()), display.Red)

	// Seconds heartbeat: one indicator pixel in the top-right corner,
	// outside the text area. The only place raw pixels are set in Clock.
	if t.Second()%2 == 0 {
		d.canvas.Plot(d.canvas.W-1, 0, display.Green)
	}

	slot := t.Unix() / int64(quizPeriod/time.Second)
	if slot%2 == 0 {
		d.canvas.DrawText(display.Bottom, fmt.Sprintf("%02d.%02d", t.Day(), int(t.Month())), display.Green)
		return
	}

	// One quiz per window; the answer takes over for the last three
	// seconds so the viewer can check themselves.
	if slot != d.quizSlot {
		d.quizSlot = slot
		d.quiz = equation.Generate(d.quizRNG, d.difficulty)
	}
	if t.Unix()%int64(quizPeriod/time.Second) >= 7 {
		d.canvas.DrawText(display.Bottom, fmt.Sprintf("=%d", d.quiz.Answer), display.Amber)
		return
	}
	d.canvas.DrawText(display.Bottom, d.quiz.Question, display.Green)
}
