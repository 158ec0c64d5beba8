package ui

import (
	"context"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/lang"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/logging/events"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/pad"
)

const (
	msgBoxTitle uint8 = iota + 10
	msgBoxMessage
)

const (
	msgBoxButtonHeight = 24
	msgBoxButtonTop    = 300
	msgBoxButtonStep   = 32
	// dismissed ends a status box on any press; it maps to no option.
	dismissed = -2
)

// newMessageBox fills the message box template. Option n is button id n;
// NoLabel hides a slot.
func newMessageBox(options [4]lang.LabelID, text string, title lang.LabelID) (*menu.Menu, int) {
	items := []menu.Item{
		menu.NewLabel(msgBoxTitle, title),
		menu.Layout(menu.Separator),
		menu.Layout(menu.Break),
		menu.NewString(msgBoxMessage, text).With(menu.ReadOnly),
	}
	count := 0
	for i, label := range options {
		if label == lang.NoLabel {
			continue
		}
		y := int16(msgBoxButtonTop + count*msgBoxButtonStep)
		items = append(items, menu.NewButton(uint8(i+1), label, msgBoxButtonHeight).
			With(menu.PosAbsolute|menu.PosMid).At(0, y))
		count++
	}
	items = append(items, menu.Layout(menu.Terminator))

	m := menu.New("msgbox", items...)
	if count == 0 {
		m.Hints = [2]menu.Hint{{Glyph: menu.GlyphNone}, {Glyph: menu.GlyphNone}}
	}
	return m, count
}

// ShowMessageBox shows text under title with up to four option buttons and
// returns the chosen option number, 1 to 4. It returns 0 on cancel. With no
// options configured it waits for any press and returns 0.
func (u *UI) ShowMessageBox(ctx context.Context, options [4]lang.LabelID, text string, title lang.LabelID) (int, error) {
	return u.showMessageBox(ctx, options, u.wrapText(text), title)
}

func (u *UI) showMessageBox(ctx context.Context, options [4]lang.LabelID, text string, title lang.LabelID) (int, error) {
	m, count := newMessageBox(options, text, title)
	var cb Callback
	if count == 0 {
		cb = func(_ *menu.Menu, _, _ int, pressed pad.Buttons) int {
			if pressed&pad.Any != 0 {
				return dismissed
			}
			return 0
		}
	}
	r, _, err := u.ExecuteMenu(ctx, m, 1, cb)
	if err != nil {
		return 0, err
	}
	result := 0
	if r >= 1 && r <= len(options) {
		result = r
	}
	events.UI.MessageBox(u.strings.Label(title), count, result)
	return result, nil
}

func (u *UI) showMessage(ctx context.Context, options [4]lang.LabelID, msg lang.MsgID, title lang.LabelID) (int, error) {
	return u.showMessageBox(ctx, options, u.Message(msg), title)
}

func single(label lang.LabelID) [4]lang.LabelID {
	return [4]lang.LabelID{label, lang.NoLabel, lang.NoLabel, lang.NoLabel}
}

// DisplayWarning shows a warning with an OK button.
func (u *UI) DisplayWarning(ctx context.Context, msg lang.MsgID) error {
	_, err := u.showMessage(ctx, single(lang.LblOK), msg, lang.LblWarning)
	return err
}

// DisplayError shows an error with an OK button.
func (u *UI) DisplayError(ctx context.Context, msg lang.MsgID) error {
	_, err := u.showMessage(ctx, single(lang.LblOK), msg, lang.LblError)
	return err
}

// DisplayInfo shows a notice with an OK button.
func (u *UI) DisplayInfo(ctx context.Context, msg lang.MsgID) error {
	_, err := u.showMessage(ctx, single(lang.LblOK), msg, lang.LblInfo)
	return err
}

// DisplayPrompt asks a two-way question and returns 1, 2 or 0 on cancel.
func (u *UI) DisplayPrompt(ctx context.Context, msg lang.MsgID, first, second lang.LabelID) (int, error) {
	return u.showMessage(ctx, [4]lang.LabelID{first, second, lang.NoLabel, lang.NoLabel}, msg, lang.LblConfirm)
}

// DisplayStatus shows msg without options and waits for any press.
func (u *UI) DisplayStatus(ctx context.Context, msg lang.MsgID) error {
	_, err := u.showMessage(ctx, [4]lang.LabelID{lang.NoLabel, lang.NoLabel, lang.NoLabel, lang.NoLabel}, msg, lang.LblWait)
	return err
}

// DrawStatus draws msg once under the Wait title and flips. Long operations
// call it before they start.
func (u *UI) DrawStatus(msg lang.MsgID) error {
	m, _ := newMessageBox([4]lang.LabelID{lang.NoLabel, lang.NoLabel, lang.NoLabel, lang.NoLabel}, u.Message(msg), lang.LblWait)
	u.Draw(m, 0, UIOffsetX, UIOffsetY, -1)
	return u.gfx.Flip()
}
