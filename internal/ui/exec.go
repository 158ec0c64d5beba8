package ui

import (
	"context"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/logging/events"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/pad"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/ui/state"
)

// Callback runs once per frame after the menu is drawn. selection is the
// focused item index or state.None; pressed holds this frame's new presses.
// A non-zero return ends ExecuteMenu with that value.
type Callback func(m *menu.Menu, frame, selection int, pressed pad.Buttons) int

// ExecuteMenu runs first until a button is activated, cancel is pressed or
// cb returns non-zero. It returns the result and the menu that was current
// when the loop ended, which differs from first after L1/R1 paging.
//
// The loop otherwise only stops when ctx ends or the backend fails to flip;
// both return CancelResult with the error.
//
// Only one input class is dispatched per frame. Select, cancel and paging
// edges that lose to another class that frame are carried to the next one.
func (u *UI) ExecuteMenu(ctx context.Context, first *menu.Menu, selectedID int, cb Callback) (int, *menu.Menu, error) {
	level := state.NewLevel(first, selectedID)
	carried := u.mapping.Select | u.mapping.Cancel | pad.L1 | pad.R1
	var pending pad.Buttons
	for frame := 0; ; frame++ {
		if err := ctx.Err(); err != nil {
			return CancelResult, level.Menu, err
		}

		in := u.repeat.Update(u.pad.Poll())
		in.Pressed |= pending
		var used pad.Buttons
		switch {
		case in.Repeat&pad.Up != 0:
			used = pad.Up
			if level.MoveUp() {
				events.UI.MenuCursor(level.Menu.ID, level.Cursor)
			}
		case in.Repeat&pad.Down != 0:
			used = pad.Down
			if level.MoveDown() {
				events.UI.MenuCursor(level.Menu.ID, level.Cursor)
			}
		case in.Repeat&(pad.Left|pad.Right) != 0:
			used = pad.Left | pad.Right
			delta := 1
			if in.Repeat&pad.Left != 0 {
				delta = -1
			}
			if level.Adjust(delta) {
				u.traceValue(level)
			}
		case in.Pressed&u.mapping.Select != 0:
			used = u.mapping.Select
			if it := level.Item(); it != nil && it.Selectable() {
				switch it.Type {
				case menu.Button:
					events.UI.MenuEnter(level.Menu.ID, int(it.ID))
					return int(it.ID), level.Menu, nil
				case menu.Toggle:
					if level.Toggle() {
						u.traceValue(level)
					}
				}
			}
		case in.Pressed&u.mapping.Cancel != 0:
			events.UI.MenuCancel(level.Menu.ID)
			return CancelResult, level.Menu, nil
		case in.Pressed&pad.L1 != 0:
			used = pad.L1
			if prev, ok := u.menus.Prev(level.Menu); ok {
				if err := u.page(level, prev, SlideRightOut, SlideRightIn); err != nil {
					return CancelResult, level.Menu, err
				}
			}
		case in.Pressed&pad.R1 != 0:
			used = pad.R1
			if next, ok := u.menus.Next(level.Menu); ok {
				if err := u.page(level, next, SlideLeftOut, SlideLeftIn); err != nil {
					return CancelResult, level.Menu, err
				}
			}
		}
		pending = in.Pressed &^ used & carried

		level.Resolve()
		u.Draw(level.Menu, frame, UIOffsetX, UIOffsetY, level.Cursor)
		if cb != nil {
			if r := cb(level.Menu, frame, level.Cursor, in.Pressed); r != 0 {
				events.UI.MenuCallback(level.Menu.ID, r)
				return r, level.Menu, nil
			}
		}
		if err := u.gfx.Flip(); err != nil {
			return CancelResult, level.Menu, err
		}
	}
}

func (u *UI) traceValue(level *state.Level) {
	it := level.Item()
	if it == nil {
		return
	}
	v := level.Menu.Value(it.ID)
	if it.Type == menu.Enum {
		v = level.Menu.EnumIndex(it.ID)
	}
	events.UI.MenuValue(level.Menu.ID, int(it.ID), v)
}

// page plays the outgoing transition on the current menu, switches level to
// target and plays the incoming one.
func (u *UI) page(level *state.Level, target *menu.Menu, out, in TransitionKind) error {
	events.UI.MenuPage(level.Menu.ID, target.ID)
	if err := u.transition(level.Menu, out, level.Cursor); err != nil {
		return err
	}
	level.Switch(target)
	return u.transition(level.Menu, in, level.Cursor)
}
