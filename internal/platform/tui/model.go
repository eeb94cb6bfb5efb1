package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixelclock/internal/config"
	"github.com/vovakirdan/pixelclock/internal/device"
	"github.com/vovakirdan/pixelclock/internal/display"
	"github.com/vovakirdan/pixelclock/internal/input"
	"github.com/vovakirdan/pixelclock/internal/rtc"
)

// pulseLen is how long a key press asserts its remote line. It exceeds one
// scheduler tick by a wide margin, matching the guarantee of the hardware
// pulse decoder.
const pulseLen = 120 * time.Millisecond

// Button hold lengths for the three keyboard stand-ins.
const (
	tapHold  = 100 * time.Millisecond
	midHold  = 1000 * time.Millisecond
	longHold = 2200 * time.Millisecond
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Options configures a simulator session.
type Options struct {
	Config config.Config
	Store  device.ScoreStore
	Clock  rtc.Source
	Logger *log.Logger
	Seed   int64
}

// Model is the Bubble Tea model wrapping one simulated device.
type Model struct {
	dev      *device.Device
	frame    *display.Frame
	sampler  *input.PulseSampler
	cfg      config.Config
	keys     keyMap
	help     help.Model
	quitting bool
}

// NewModel builds a simulator around a fresh device.
func NewModel(opts Options) Model {
	frame := display.NewFrame(opts.Config.Matrix.Width, opts.Config.Matrix.Height)
	sampler := input.NewPulseSampler()
	dev := device.New(device.Options{
		Config:  opts.Config,
		Adapter: frame,
		Sampler: sampler,
		Clock:   opts.Clock,
		Store:   opts.Store,
		Logger:  opts.Logger,
		Seed:    opts.Seed,
	})
	return Model{
		dev:     dev,
		frame:   frame,
		sampler: sampler,
		cfg:     opts.Config,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Init boots the device and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.dev.Boot(time.Now())
	return tickCmd(m.cfg.TickRate)
}

// Update handles key and tick messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		m.dev.Tick(time.Now())
		return m, tickCmd(m.cfg.TickRate)
	}
	return m, nil
}

// handleKey translates one key press to a synthetic pulse or button hold.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.sampler.Pulse(input.Up, now, pulseLen)
	case key.Matches(msg, m.keys.Down):
		m.sampler.Pulse(input.Down, now, pulseLen)
	case key.Matches(msg, m.keys.Left):
		m.sampler.Pulse(input.Left, now, pulseLen)
	case key.Matches(msg, m.keys.Right):
		m.sampler.Pulse(input.Right, now, pulseLen)
	case key.Matches(msg, m.keys.Ok):
		m.sampler.Pulse(input.Ok, now, pulseLen)
	case key.Matches(msg, m.keys.Back):
		m.sampler.Pulse(input.Return, now, pulseLen)
	case key.Matches(msg, m.keys.Options):
		m.sampler.Pulse(input.Options, now, pulseLen)
	case key.Matches(msg, m.keys.Game1):
		m.sampler.Pulse(input.Game1, now, pulseLen)
	case key.Matches(msg, m.keys.Game2):
		m.sampler.Pulse(input.Game2, now, pulseLen)
	case key.Matches(msg, m.keys.Game3):
		m.sampler.Pulse(input.Game3, now, pulseLen)
	case key.Matches(msg, m.keys.Tap):
		m.sampler.HoldButton(now, tapHold)
	case key.Matches(msg, m.keys.Hold):
		m.sampler.HoldButton(now, midHold)
	case key.Matches(msg, m.keys.Long):
		m.sampler.HoldButton(now, longHold)
	}
	return m, nil
}

// View renders the panel, a mode line and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderFrame(m.frame),
		statusStyle.Render("mode: "+m.dev.Mode().String()),
		m.help.View(m.keys),
	)
}

// Run starts an interactive simulator in the current terminal.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
