package ui

import (
	"strings"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/lang"
)

const (
	loadingTitleScale = 2.5
	loadingTextScale  = 1.8
	loadingFadeFrames = 60
)

// ShowLoading draws one frame of the loading screen: the application title
// and the loading caption whose dots cycle every four seconds at 60 frames
// per second. The first second fades in from black.
func (u *UI) ShowLoading(frame int) error {
	u.sync()
	u.gfx.Clear(u.colors.background)
	u.font.Print(UIOffsetX, UIOffsetX, loadingTitleScale, u.colors.text, "FMCBInstaller "+u.version)

	x, y := u.bounds.Dx()-220, u.bounds.Dy()-68
	dx, _ := u.font.PrintWithFeedback(x, y, loadingTextScale, u.colors.text, u.strings.Label(lang.LblLoading)+" ")
	if dots := frame % 240 / 60; dots > 0 {
		u.font.Print(x+dx, y, loadingTextScale, u.colors.text, strings.TrimSpace(strings.Repeat(". ", dots)))
	}

	if frame >= 0 && frame < loadingFadeFrames {
		overlay := u.colors.overlay
		overlay.A = uint8(0xff - frame*0xff/loadingFadeFrames)
		u.gfx.FillRect(u.bounds, overlay)
	}
	return u.gfx.Flip()
}
