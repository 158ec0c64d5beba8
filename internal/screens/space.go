package screens

import (
	"context"
	"math"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/lang"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/ui"
)

const (
	spcTitle uint8 = iota + 1
	spcMessage
	spcAvailable
	spcRequired
	spcAvailableUnit
	spcRequiredUnit
	spcOK
)

// spaceUnits is ordered so each entry is 1024 times the previous one.
var spaceUnits = [...]lang.LabelID{lang.LblB, lang.LblKB, lang.LblMB, lang.LblGB, lang.LblTB}

// ProcessSpaceValue scales a byte count down by 1024 until it is below 1024
// or the largest unit is reached, and returns the scaled value and its unit.
func ProcessSpaceValue(space uint64) (uint64, lang.LabelID) {
	unit := 0
	for space >= 1024 && unit < len(spaceUnits)-1 {
		space /= 1024
		unit++
	}
	return space, spaceUnits[unit]
}

// SpaceScreen tells the user a card lacks room for an operation.
type SpaceScreen struct {
	menu *menu.Menu
}

// NewSpaceScreen builds the insufficient space screen.
func NewSpaceScreen() *SpaceScreen {
	items := []menu.Item{
		menu.NewLabel(spcTitle, lang.LblError),
		menu.Layout(menu.Separator),
		menu.Layout(menu.Break),
		menu.NewMessage(spcMessage, lang.MsgNoSpace).With(menu.ReadOnly),
		menu.Layout(menu.Break),
		menu.Layout(menu.Break),
		menu.NewLabel(0, lang.LblAvailableSpace),
		menu.Layout(menu.Tab),
		menu.NewValue(spcAvailable, menu.FormatUDec, 0, 0, math.MaxInt32).With(menu.ReadOnly),
		menu.Layout(menu.Space),
		menu.NewLabel(spcAvailableUnit, lang.LblB),
		menu.Layout(menu.Break),
		menu.NewLabel(0, lang.LblRequiredSpace),
		menu.Layout(menu.Tab),
		menu.Layout(menu.Tab),
		menu.NewValue(spcRequired, menu.FormatUDec, 0, 0, math.MaxInt32).With(menu.ReadOnly),
		menu.Layout(menu.Space),
		menu.NewLabel(spcRequiredUnit, lang.LblB),
		menu.Layout(menu.Break),
	}
	for i := 0; i < 12; i++ {
		items = append(items, menu.Layout(menu.Break))
	}
	items = append(items, menu.NewButton(spcOK, lang.LblOK, 16).With(menu.PosMid))
	m := menu.New("space", items...)
	m.Hints = [2]menu.Hint{{Glyph: menu.GlyphSelect, Label: lang.LblOK}, {Glyph: menu.GlyphNone}}
	return &SpaceScreen{menu: m}
}

// Menu returns the screen's menu.
func (s *SpaceScreen) Menu() *menu.Menu { return s.menu }

// Set fills in the two sizes, in bytes.
func (s *SpaceScreen) Set(msg lang.MsgID, available, required uint64) {
	m := s.menu
	m.SetMessage(spcMessage, msg)
	v, unit := ProcessSpaceValue(available)
	m.SetValue(spcAvailable, int(v))
	m.SetLabel(spcAvailableUnit, unit)
	v, unit = ProcessSpaceValue(required)
	m.SetValue(spcRequired, int(v))
	m.SetLabel(spcRequiredUnit, unit)
}

// Show runs the screen until it is dismissed.
func (s *SpaceScreen) Show(ctx context.Context, u *ui.UI, available, required uint64) error {
	s.Set(lang.MsgNoSpace, available, required)
	_, _, err := u.ExecuteMenu(ctx, s.menu, int(spcOK), nil)
	return err
}
