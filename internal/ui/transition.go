package ui

import (
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/logging/events"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/ui/state"
)

// TransitionKind selects a screen animation.
type TransitionKind int

const (
	SlideLeftIn TransitionKind = iota
	SlideLeftOut
	SlideRightIn
	SlideRightOut
	FadeIn
	FadeOut
)

var transitionNames = [...]string{"slide-left-in", "slide-left-out", "slide-right-in", "slide-right-out", "fade-in", "fade-out"}

func (k TransitionKind) String() string {
	if k < 0 || int(k) >= len(transitionNames) {
		return "unknown"
	}
	return transitionNames[k]
}

// Animation timing.
const (
	TransitionFrames = 20
	slideStep        = 6
	fadeStep         = 8
)

// Transition animates m with the item selectedID focused. It blocks for
// TransitionFrames frames and reads no input.
func (u *UI) Transition(m *menu.Menu, kind TransitionKind, selectedID int) error {
	return u.transition(m, kind, state.NewLevel(m, selectedID).Cursor)
}

func (u *UI) transition(m *menu.Menu, kind TransitionKind, selection int) error {
	id := ""
	if m != nil {
		id = m.ID
	}
	events.UI.Transition(id, kind.String())
	for f := 0; f < TransitionFrames; f++ {
		// out animations move away from the origin, in animations towards it
		step := f + 1
		switch kind {
		case SlideLeftIn, SlideRightIn, FadeIn:
			step = TransitionFrames - 1 - f
		}
		dir := 0
		switch kind {
		case SlideLeftOut, SlideRightIn:
			dir = -1
		case SlideRightOut, SlideLeftIn:
			dir = 1
		}
		x := UIOffsetX + dir*step*slideStep
		u.Draw(m, f, x, UIOffsetY, selection)
		if alpha := step * fadeStep; alpha > 0 {
			overlay := u.colors.overlay
			overlay.A = uint8(alpha)
			u.gfx.FillRect(u.bounds, overlay)
		}
		if err := u.gfx.Flip(); err != nil {
			return err
		}
	}
	return nil
}
