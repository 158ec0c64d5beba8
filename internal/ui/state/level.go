// Package state tracks focus within a menu: which selectable item the
// cursor rests on and how directional input moves or edits it.
package state

import "github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"

// None marks a level without a focused item.
const None = -1

// Level is the focus state of one active menu.
type Level struct {
	Menu   *menu.Menu
	Cursor int
}

// NewLevel focuses the item with selectedID when it is selectable, otherwise
// the first selectable item.
func NewLevel(m *menu.Menu, selectedID int) *Level {
	l := &Level{Menu: m, Cursor: None}
	if idx := l.IndexOf(selectedID); idx >= 0 {
		l.Cursor = idx
	} else {
		l.Cursor = First(m)
	}
	return l
}

// IndexOf returns the index of the selectable item with the given id, or
// None.
func (l *Level) IndexOf(id int) int {
	if l.Menu == nil || id < 0 || id > 0xff {
		return None
	}
	n := l.Menu.Len()
	for i := 0; i < n; i++ {
		it := &l.Menu.Items[i]
		if int(it.ID) == id && it.Selectable() {
			return i
		}
	}
	return None
}

// Item returns the focused item, or nil.
func (l *Level) Item() *menu.Item {
	if l.Menu == nil || l.Cursor < 0 {
		return nil
	}
	return l.Menu.At(l.Cursor)
}

// Resolve drops focus that no longer rests on a selectable item. It reports
// whether focus survived.
func (l *Level) Resolve() bool {
	it := l.Item()
	if it == nil || !it.Selectable() {
		l.Cursor = None
		return false
	}
	return true
}

// Switch moves the level to another menu and focuses its first selectable
// item.
func (l *Level) Switch(m *menu.Menu) {
	l.Menu = m
	l.Cursor = First(m)
}
