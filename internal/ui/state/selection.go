package state

import "github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"

// Adjust applies a Left (-1) or Right (+1) press to the focused item. Values
// step and wrap at their bounds, toggles flip regardless of direction and
// enums cycle through their choices. It reports whether anything changed.
func (l *Level) Adjust(delta int) bool {
	it := l.Item()
	if it == nil || !it.Selectable() || delta == 0 {
		return false
	}
	switch p := it.Payload.(type) {
	case *menu.ValuePayload:
		switch it.Type {
		case menu.Toggle:
			return l.Toggle()
		case menu.Value:
			old := p.Current
			p.Current += delta
			if p.Current > p.Max {
				p.Current = p.Min
			} else if p.Current < p.Min {
				p.Current = p.Max
			}
			return p.Current != old
		}
	case *menu.EnumPayload:
		n := len(p.Labels)
		if n == 0 {
			return false
		}
		old := p.Selected
		p.Selected = ((p.Selected+delta)%n + n) % n
		return p.Selected != old
	}
	return false
}

// Toggle flips the focused toggle item.
func (l *Level) Toggle() bool {
	it := l.Item()
	if it == nil || it.Type != menu.Toggle || !it.Selectable() {
		return false
	}
	p, ok := it.Payload.(*menu.ValuePayload)
	if !ok {
		return false
	}
	if p.Current != 0 {
		p.Current = 0
	} else {
		p.Current = 1
	}
	return true
}
