package state

import (
	"testing"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/lang"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"
)

func TestAdjustValueWraps(t *testing.T) {
	m := menu.New("v", menu.NewValue(1, menu.FormatDec, 1, 0, 5))
	l := NewLevel(m, 1)
	l.Adjust(-1)
	if m.Value(1) != 5 {
		t.Fatalf("expected left from min to wrap to 5, got %d", m.Value(1))
	}
	l.Adjust(1)
	if m.Value(1) != 0 {
		t.Fatalf("expected right from max to wrap to 0, got %d", m.Value(1))
	}
	m.SetValue(1, 3)
	l.Adjust(1)
	if m.Value(1) != 4 {
		t.Fatalf("expected 4, got %d", m.Value(1))
	}
}

func TestAdjustToggleFlipsEitherWay(t *testing.T) {
	m := menu.New("t", menu.NewToggle(1, false))
	l := NewLevel(m, 1)
	l.Adjust(-1)
	if m.Value(1) != 1 {
		t.Fatalf("expected left to enable")
	}
	l.Adjust(-1)
	if m.Value(1) != 0 {
		t.Fatalf("expected second left to disable")
	}
	if !l.Toggle() || m.Value(1) != 1 {
		t.Fatalf("expected select toggle to flip")
	}
}

func TestAdjustEnumCycles(t *testing.T) {
	m := menu.New("e", menu.NewEnum(1, lang.LblOTPayloadSlims, lang.LblOTPayloadFats, lang.LblOTPayloadFat170))
	l := NewLevel(m, 1)
	l.Adjust(-1)
	if m.EnumIndex(1) != 2 {
		t.Fatalf("expected wrap to last choice, got %d", m.EnumIndex(1))
	}
	l.Adjust(1)
	if m.EnumIndex(1) != 0 {
		t.Fatalf("expected wrap to first choice, got %d", m.EnumIndex(1))
	}
}

func TestAdjustIgnoresButtons(t *testing.T) {
	m := menu.New("b", menu.NewButton(1, lang.LblOK, 0))
	l := NewLevel(m, 1)
	if l.Adjust(1) || l.Toggle() {
		t.Fatalf("expected buttons to ignore left/right and toggle")
	}
}
