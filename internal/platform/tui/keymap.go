package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap declares the simulator bindings. The remote lines map to the
// obvious keys; the single physical button gets three keys because the
// keyboard cannot express press duration.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Ok      key.Binding
	Back    key.Binding
	Options key.Binding
	Game1   key.Binding
	Game2   key.Binding
	Game3   key.Binding
	Tap     key.Binding
	Hold    key.Binding
	Long    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Ok:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "ok")),
		Back:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "return")),
		Options: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "options")),
		Game1:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "dino")),
		Game2:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "dodge")),
		Game3:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "snake")),
		Tap:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "button tap")),
		Hold:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "button hold")),
		Long:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "button long hold")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Ok, k.Back, k.Options, k.Tap, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Ok, k.Back, k.Options},
		{k.Game1, k.Game2, k.Game3},
		{k.Tap, k.Hold, k.Long},
		{k.Help, k.Quit},
	}
}
