package state

import (
	"testing"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/lang"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"
)

func newTestMenu() *menu.Menu {
	return menu.New("test",
		menu.NewLabel(0, lang.LblMenuMain),
		menu.Layout(menu.Break),
		menu.NewButton(1, lang.LblInstall, 0),
		menu.NewButton(2, lang.LblUninstall, 0).With(menu.Disabled),
		menu.NewButton(3, lang.LblFormatMC, 0),
		menu.NewString(4, "desc").With(menu.ReadOnly),
		menu.NewButton(5, lang.LblExit, 0).With(menu.Hidden),
		menu.NewButton(6, lang.LblDumpMC, 0),
	)
}

func TestNewLevelFocus(t *testing.T) {
	m := newTestMenu()
	if l := NewLevel(m, 3); l.Cursor != 4 {
		t.Fatalf("expected cursor on id 3 at index 4, got %d", l.Cursor)
	}
	if l := NewLevel(m, 2); l.Cursor != 2 {
		t.Fatalf("expected disabled id to fall back to first selectable, got %d", l.Cursor)
	}
	if l := NewLevel(menu.New("empty", menu.NewLabel(0, lang.LblOK)), 0); l.Cursor != None || l.Item() != nil {
		t.Fatalf("expected no focus on a menu without selectable items")
	}
}

func TestMoveSkipsUnselectable(t *testing.T) {
	m := newTestMenu()
	l := NewLevel(m, 1)
	var seen []int
	for i := 0; i < 6; i++ {
		l.MoveDown()
		seen = append(seen, l.Cursor)
		if it := l.Item(); it == nil || !it.Selectable() {
			t.Fatalf("cursor landed on unselectable index %d", l.Cursor)
		}
	}
	want := []int{4, 7, 2, 4, 7, 2}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("unexpected down sequence %v", seen)
		}
	}
}

func TestMoveWraps(t *testing.T) {
	m := newTestMenu()
	l := NewLevel(m, 1)
	if !l.MoveUp() || l.Cursor != Last(m) {
		t.Fatalf("expected up from first to wrap to last, got %d", l.Cursor)
	}
	if !l.MoveDown() || l.Cursor != First(m) {
		t.Fatalf("expected down from last to wrap to first, got %d", l.Cursor)
	}
}

func TestMoveSingleSelectableStays(t *testing.T) {
	m := menu.New("one", menu.NewLabel(0, lang.LblOK), menu.NewButton(1, lang.LblOK, 0))
	l := NewLevel(m, 1)
	if l.MoveDown() || l.MoveUp() || l.Cursor != 1 {
		t.Fatalf("expected focus to stay on the only selectable item, got %d", l.Cursor)
	}
}

func TestResolveDropsStaleFocus(t *testing.T) {
	m := newTestMenu()
	l := NewLevel(m, 3)
	m.SetVisible(3, false)
	if l.Resolve() || l.Cursor != None {
		t.Fatalf("expected hidden focus to resolve to none")
	}
	other := menu.New("other", menu.NewButton(9, lang.LblOK, 0))
	l.Switch(other)
	if l.Cursor != 0 || l.Menu != other {
		t.Fatalf("expected switch to focus first selectable of the new menu")
	}
}
