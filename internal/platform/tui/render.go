package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixelclock/internal/display"
)

// ledCell is one LED rendered two columns wide so the panel looks roughly
// square in a terminal.
const ledCell = "██"

var ledStyles = map[display.Color]lipgloss.Style{
	display.Off:   lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	display.Red:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	display.Green: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	display.Amber: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	display.White: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// RenderFrame converts the LED frame to a styled string. Adjacent pixels
// of the same color are grouped into one styled run to keep the escape
// sequence count down.
func RenderFrame(f *display.Frame) string {
	var sb strings.Builder
	sb.Grow(f.Width() * f.Height() * 4)

	for y := 0; y < f.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < f.Width() {
			start := f.Pixel(x, y)
			var run strings.Builder
			for x < f.Width() && f.Pixel(x, y) == start {
				run.WriteString(ledCell)
				x++
			}
			sb.WriteString(ledStyles[start].Render(run.String()))
		}
	}
	return panelStyle.Render(sb.String())
}
