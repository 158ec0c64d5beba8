package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/lang"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/pad"
)

func buttonMenu(id string) *menu.Menu {
	return menu.New(id,
		menu.NewLabel(0, lang.LblMenuMain),
		menu.Layout(menu.Separator),
		menu.NewButton(1, lang.LblInstall, 0).With(menu.PosMid),
		menu.Layout(menu.Break),
		menu.NewButton(2, lang.LblUninstall, 0).With(menu.PosMid),
		menu.Layout(menu.Break),
		menu.NewButton(3, lang.LblExit, 0).With(menu.PosMid),
	)
}

func TestExecuteMenuActivatesFocusedButton(t *testing.T) {
	u, rec, _ := newTestUI(t, nil, pad.Taps(pad.Down, pad.Cross)...)
	m := buttonMenu("main")
	got, cur, err := u.ExecuteMenu(context.Background(), m, 1, nil)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got != 2 || cur != m {
		t.Fatalf("expected button 2 on main, got %d on %s", got, cur.ID)
	}
	if len(rec.Frames) != 2 {
		t.Fatalf("expected two flipped frames before activation, got %d", len(rec.Frames))
	}
}

func TestExecuteMenuWrapsUp(t *testing.T) {
	u, _, _ := newTestUI(t, nil, pad.Taps(pad.Up, pad.Cross)...)
	got, _, err := u.ExecuteMenu(context.Background(), buttonMenu("main"), 1, nil)
	if err != nil || got != 3 {
		t.Fatalf("expected up from first to wrap to 3, got %d (%v)", got, err)
	}
}

func TestCancelTerminatesWithinOneFrame(t *testing.T) {
	u, rec, script := newTestUI(t, nil, pad.Circle)
	got, _, err := u.ExecuteMenu(context.Background(), buttonMenu("main"), 3, nil)
	if err != nil || got != CancelResult {
		t.Fatalf("expected cancel sentinel, got %d (%v)", got, err)
	}
	if script.Polls() != 1 || len(rec.Frames) != 0 {
		t.Fatalf("expected exit on the first frame, polls=%d frames=%d", script.Polls(), len(rec.Frames))
	}
}

func TestCancelWithDirectionIsNotLost(t *testing.T) {
	u, rec, _ := newTestUI(t, nil, pad.Down|pad.Circle, 0, 0, 0)
	late := func(_ *menu.Menu, frame, _ int, _ pad.Buttons) int {
		if frame == 5 {
			return 99
		}
		return 0
	}
	got, _, err := u.ExecuteMenu(context.Background(), buttonMenu("main"), 1, late)
	if err != nil || got != CancelResult {
		t.Fatalf("expected cancel sentinel, got %d (%v)", got, err)
	}
	if len(rec.Frames) != 1 {
		t.Fatalf("expected cancel on the frame after the move, got %d frames", len(rec.Frames))
	}
}

func TestSelectAfterMoveActivatesNewFocus(t *testing.T) {
	u, _, _ := newTestUI(t, nil, pad.Down|pad.Cross, 0)
	got, _, err := u.ExecuteMenu(context.Background(), buttonMenu("main"), 1, nil)
	if err != nil || got != 2 {
		t.Fatalf("expected the carried select to activate button 2, got %d (%v)", got, err)
	}
}

func TestSwappedMappingCancelsWithCross(t *testing.T) {
	u, _, _ := newTestUI(t, nil, pad.Cross)
	u.SetMapping(pad.DefaultMapping().Swapped())
	got, _, _ := u.ExecuteMenu(context.Background(), buttonMenu("main"), 1, nil)
	if got != CancelResult {
		t.Fatalf("expected cross to cancel under swapped mapping, got %d", got)
	}
}

func TestValueClampsWithWraparound(t *testing.T) {
	m := menu.New("values",
		menu.NewValue(1, menu.FormatDec, 1, 0, 5),
		menu.Layout(menu.Break),
		menu.NewButton(2, lang.LblOK, 0),
	)
	run := func(start int, press pad.Buttons) int {
		u, _, _ := newTestUI(t, nil, press, 0, pad.Circle)
		m.SetValue(1, start)
		if _, _, err := u.ExecuteMenu(context.Background(), m, 1, nil); err != nil {
			t.Fatalf("execute: %v", err)
		}
		return m.Value(1)
	}
	if got := run(0, pad.Left); got != 5 {
		t.Fatalf("expected left from 0 to wrap to 5, got %d", got)
	}
	if got := run(5, pad.Right); got != 0 {
		t.Fatalf("expected right from 5 to wrap to 0, got %d", got)
	}
	if got := run(3, pad.Right); got != 4 {
		t.Fatalf("expected right from 3 to give 4, got %d", got)
	}
}

func TestReadOnlyValueIgnoresLeftRight(t *testing.T) {
	m := menu.New("ro",
		menu.NewValue(1, menu.FormatDec, 1, 0, 5).With(menu.ReadOnly),
		menu.NewButton(2, lang.LblOK, 0),
	)
	u, _, _ := newTestUI(t, nil, pad.Right, 0, pad.Cross)
	got, _, _ := u.ExecuteMenu(context.Background(), m, 1, nil)
	if got != 2 || m.Value(1) != 0 {
		t.Fatalf("expected focus on the button and untouched value, got %d value %d", got, m.Value(1))
	}
}

func TestSelectTogglesAndContinues(t *testing.T) {
	m := menu.New("t", menu.NewToggle(1, false), menu.NewButton(2, lang.LblOK, 0))
	u, _, _ := newTestUI(t, nil, pad.Taps(pad.Cross, pad.Cross, pad.Cross, pad.Circle)...)
	got, _, _ := u.ExecuteMenu(context.Background(), m, 1, nil)
	if got != CancelResult || m.Value(1) != 1 {
		t.Fatalf("expected three toggles then cancel, got %d value %d", got, m.Value(1))
	}
}

func TestHeldDirectionRepeats(t *testing.T) {
	m := menu.New("v", menu.NewValue(1, menu.FormatDec, 2, 0, 99))
	frames := make([]pad.Buttons, 0, 40)
	for i := 0; i < 29; i++ {
		frames = append(frames, pad.Right)
	}
	frames = append(frames, 0, pad.Circle)
	u, _, _ := newTestUI(t, nil, frames...)
	if _, _, err := u.ExecuteMenu(context.Background(), m, 1, nil); err != nil {
		t.Fatalf("execute: %v", err)
	}
	// one edge, then repeats on held frames 20, 24 and 28
	if got := m.Value(1); got != 4 {
		t.Fatalf("expected 4 increments over 29 held frames, got %d", got)
	}
}

func TestCallbackEndsLoop(t *testing.T) {
	u, _, script := newTestUI(t, nil)
	m := buttonMenu("main")
	var seen []int
	got, _, err := u.ExecuteMenu(context.Background(), m, 2, func(cm *menu.Menu, frame, selection int, pressed pad.Buttons) int {
		seen = append(seen, selection)
		if frame == 3 {
			return 42
		}
		return 0
	})
	if err != nil || got != 42 {
		t.Fatalf("expected callback result 42, got %d (%v)", got, err)
	}
	if script.Polls() != 4 || len(seen) != 4 || seen[0] != 4 {
		t.Fatalf("unexpected callback trace %v after %d polls", seen, script.Polls())
	}
}

func TestPagingSwitchesSibling(t *testing.T) {
	a := buttonMenu("a")
	b := menu.New("b", menu.NewLabel(0, lang.LblMenuExtras), menu.NewButton(7, lang.LblFormatHDD, 0))
	reg := menu.NewRegistry(a, b)
	if err := reg.Chain("a", "b"); err != nil {
		t.Fatalf("chain: %v", err)
	}
	u, rec, _ := newTestUI(t, reg, pad.Taps(pad.R1, pad.Cross)...)
	got, cur, err := u.ExecuteMenu(context.Background(), a, 1, nil)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got != 7 || cur != b {
		t.Fatalf("expected button 7 on b, got %d on %s", got, cur.ID)
	}
	if want := 2*TransitionFrames + 2; len(rec.Frames) != want {
		t.Fatalf("expected %d frames including transitions, got %d", want, len(rec.Frames))
	}
}

func TestPagingWithoutSiblingIsIgnored(t *testing.T) {
	u, rec, _ := newTestUI(t, nil, pad.Taps(pad.L1, pad.Cross)...)
	got, _, _ := u.ExecuteMenu(context.Background(), buttonMenu("solo"), 1, nil)
	if got != 1 || len(rec.Frames) != 2 {
		t.Fatalf("expected no transition, got result %d after %d frames", got, len(rec.Frames))
	}
}

func TestExecuteMenuStopsOnFlipErrorAndContext(t *testing.T) {
	u, _, _ := newTestUI(t, nil)
	got, _, err := u.ExecuteMenu(context.Background(), buttonMenu("main"), 1, nil)
	if !errors.Is(err, errStop) || got != CancelResult {
		t.Fatalf("expected flip error to end the loop, got %d (%v)", got, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := u.ExecuteMenu(ctx, buttonMenu("main"), 1, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestSelectionNeverLandsOnUnselectable(t *testing.T) {
	m := menu.New("mixed",
		menu.NewLabel(0, lang.LblMenuMain),
		menu.NewButton(1, lang.LblInstall, 0),
		menu.NewButton(2, lang.LblUninstall, 0).With(menu.Disabled),
		menu.NewString(3, "x"),
		menu.NewButton(4, lang.LblFormatMC, 0).With(menu.Hidden),
		menu.NewToggle(5, true).With(menu.ReadOnly),
		menu.NewEnum(6, lang.LblOTAuto, lang.LblOTManual),
	)
	var frames []pad.Buttons
	for i := 0; i < 12; i++ {
		if i%3 == 0 {
			frames = append(frames, pad.Up, 0)
		} else {
			frames = append(frames, pad.Down, 0)
		}
	}
	frames = append(frames, pad.Circle)
	u, _, _ := newTestUI(t, nil, frames...)
	_, _, err := u.ExecuteMenu(context.Background(), m, 1, func(cm *menu.Menu, _, selection int, _ pad.Buttons) int {
		if it := cm.At(selection); it == nil || !it.Selectable() {
			t.Fatalf("selection %d is not selectable", selection)
		}
		return 0
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
}
