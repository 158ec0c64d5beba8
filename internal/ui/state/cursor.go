package state

import "github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"

// First returns the index of the first selectable item of m, or None.
func First(m *menu.Menu) int {
	return next(m, -1)
}

// Last returns the index of the last selectable item of m, or None.
func Last(m *menu.Menu) int {
	if m == nil {
		return None
	}
	return prev(m, m.Len())
}

func next(m *menu.Menu, from int) int {
	if m == nil {
		return None
	}
	n := m.Len()
	for i := from + 1; i < n; i++ {
		if m.Items[i].Selectable() {
			return i
		}
	}
	return None
}

func prev(m *menu.Menu, from int) int {
	if m == nil {
		return None
	}
	if n := m.Len(); from > n {
		from = n
	}
	for i := from - 1; i >= 0; i-- {
		if m.Items[i].Selectable() {
			return i
		}
	}
	return None
}

// MoveDown focuses the next selectable item, wrapping to the first one past
// the end.
func (l *Level) MoveDown() bool {
	old := l.Cursor
	idx := next(l.Menu, l.Cursor)
	if idx == None {
		idx = First(l.Menu)
	}
	l.Cursor = idx
	return l.Cursor != old
}

// MoveUp focuses the previous selectable item, wrapping to the last one
// before the start.
func (l *Level) MoveUp() bool {
	old := l.Cursor
	from := l.Cursor
	if from < 0 {
		from = l.Menu.Len()
	}
	idx := prev(l.Menu, from)
	if idx == None {
		idx = Last(l.Menu)
	}
	l.Cursor = idx
	return l.Cursor != old
}
