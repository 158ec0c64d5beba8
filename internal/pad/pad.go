// Package pad models gamepad buttons, edge detection and typematic repeat.
package pad

import "strings"

// Buttons is a bitmask of held pad buttons.
type Buttons uint32

const (
	Up Buttons = 1 << iota
	Down
	Left
	Right
	Cross
	Circle
	Square
	Triangle
	L1
	R1
	L2
	R2
	Start
	Select
)

// Directions groups the buttons that auto-repeat while held.
const Directions = Up | Down | Left | Right

// Any is every defined button.
const Any = Up | Down | Left | Right | Cross | Circle | Square | Triangle | L1 | R1 | L2 | R2 | Start | Select

var names = []struct {
	b    Buttons
	name string
}{
	{Up, "up"}, {Down, "down"}, {Left, "left"}, {Right, "right"},
	{Cross, "cross"}, {Circle, "circle"}, {Square, "square"}, {Triangle, "triangle"},
	{L1, "l1"}, {R1, "r1"}, {L2, "l2"}, {R2, "r2"},
	{Start, "start"}, {Select, "select"},
}

// Has reports whether every button in mask is set.
func (b Buttons) Has(mask Buttons) bool { return mask != 0 && b&mask == mask }

func (b Buttons) String() string {
	if b == 0 {
		return "none"
	}
	parts := make([]string, 0, 2)
	for _, n := range names {
		if b&n.b != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// Source reports the currently held buttons. It is polled once per frame.
type Source interface {
	Poll() Buttons
}

// SourceFunc adapts a function to Source.
type SourceFunc func() Buttons

func (f SourceFunc) Poll() Buttons { return f() }

// Mapping assigns the confirm and cancel roles to physical buttons.
type Mapping struct {
	Select Buttons
	Cancel Buttons
}

// DefaultMapping confirms with Cross and cancels with Circle.
func DefaultMapping() Mapping {
	return Mapping{Select: Cross, Cancel: Circle}
}

// Swapped returns the mapping with both roles exchanged, as used by
// Japanese-region consoles.
func (m Mapping) Swapped() Mapping {
	return Mapping{Select: m.Cancel, Cancel: m.Select}
}
