package term

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/pad"
)

// KeyMap binds terminal keys to pad buttons.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Cross    key.Binding
	Circle   key.Binding
	Square   key.Binding
	Triangle key.Binding
	L1       key.Binding
	R1       key.Binding
	L2       key.Binding
	R2       key.Binding
	Start    key.Binding
	Select   key.Binding
	Quit     key.Binding
}

// DefaultKeyMap uses the arrow keys for the d-pad, enter and backspace for
// Cross and Circle, and q/e to page.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "less")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "more")),
		Cross:    key.NewBinding(key.WithKeys("enter", "x"), key.WithHelp("enter", "cross")),
		Circle:   key.NewBinding(key.WithKeys("backspace", "esc", "o"), key.WithHelp("esc", "circle")),
		Square:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "square")),
		Triangle: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "triangle")),
		L1:       key.NewBinding(key.WithKeys("q", "pgup"), key.WithHelp("q", "L1")),
		R1:       key.NewBinding(key.WithKeys("e", "pgdown"), key.WithHelp("e", "R1")),
		L2:       key.NewBinding(key.WithKeys("1")),
		R2:       key.NewBinding(key.WithKeys("3")),
		Start:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start")),
		Select:   key.NewBinding(key.WithKeys("tab")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k KeyMap) buttons() []struct {
	binding key.Binding
	button  pad.Buttons
} {
	return []struct {
		binding key.Binding
		button  pad.Buttons
	}{
		{k.Up, pad.Up}, {k.Down, pad.Down}, {k.Left, pad.Left}, {k.Right, pad.Right},
		{k.Cross, pad.Cross}, {k.Circle, pad.Circle}, {k.Square, pad.Square}, {k.Triangle, pad.Triangle},
		{k.L1, pad.L1}, {k.R1, pad.R1}, {k.L2, pad.L2}, {k.R2, pad.R2},
		{k.Start, pad.Start}, {k.Select, pad.Select},
	}
}

// Button returns the pad button msg is bound to, or 0.
func (k KeyMap) Button(msg tea.KeyMsg) pad.Buttons {
	for _, b := range k.buttons() {
		if key.Matches(msg, b.binding) {
			return b.button
		}
	}
	return 0
}

// Help lists the bindings that carry help text, for the key line.
func (k KeyMap) Help() []key.Binding {
	out := make([]key.Binding, 0, 12)
	for _, b := range k.buttons() {
		if b.binding.Help().Key != "" {
			out = append(out, b.binding)
		}
	}
	return append(out, k.Quit)
}
