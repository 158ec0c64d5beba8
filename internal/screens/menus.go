package screens

import (
	"fmt"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/lang"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/pad"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/ui"
)

// Item ids shared by the main, extras and memory card menus. Exit is 1 so it
// lines up with the first message box option.
const (
	idExit uint8 = iota + 1
	idInstall
	idOpenTuna
	idMultiInstall
	idUninstall
	idDowngradeMulti
	idFormatMC
	idDumpMC
	idRestoreMC
	idCrossPSX
	idInstallFHDB
	idUninstallFHDB
	idFormatHDD
	idDescription
	idVersion
)

// Menu ids in the registry.
const (
	MainMenuID   = "main"
	ExtrasMenuID = "extras"
	MCMenuID     = "mc"
)

var buttonEvents = map[uint8]Event{
	idExit:           EventExit,
	idInstall:        EventInstall,
	idOpenTuna:       EventOpenTuna,
	idMultiInstall:   EventMultiInstall,
	idUninstall:      EventUninstall,
	idDowngradeMulti: EventDowngradeMulti,
	idFormatMC:       EventFormatMC,
	idDumpMC:         EventDumpMC,
	idRestoreMC:      EventRestoreMC,
	idCrossPSX:       EventCrossPSX,
	idInstallFHDB:    EventInstallFHDB,
	idUninstallFHDB:  EventUninstallFHDB,
	idFormatHDD:      EventFormatHDD,
}

var descriptions = map[uint8]lang.MsgID{
	idExit:           lang.MsgDescQuit,
	idInstall:        lang.MsgDescInstall,
	idOpenTuna:       lang.MsgDescOpenTuna,
	idMultiInstall:   lang.MsgDescMultiInstall,
	idUninstall:      lang.MsgDescUninstall,
	idDowngradeMulti: lang.MsgDescDowngradeMulti,
	idFormatMC:       lang.MsgDescFormatMC,
	idDumpMC:         lang.MsgDescDumpMC,
	idRestoreMC:      lang.MsgDescRestoreMC,
	idCrossPSX:       lang.MsgDescInstallCrossPSX,
	idInstallFHDB:    lang.MsgDescInstallFHDB,
	idUninstallFHDB:  lang.MsgDescUninstallFHDB,
	idFormatHDD:      lang.MsgDescFormatHDD,
}

// eventFor maps an ExecuteMenu result to an event. Cancel means exit.
func eventFor(result int) Event {
	if result == ui.CancelResult {
		return EventExit
	}
	if result < 0 || result > 0xff {
		return EventNone
	}
	if ev, ok := buttonEvents[uint8(result)]; ok {
		return ev
	}
	return EventNone
}

// Capabilities gates menu buttons on the detected hardware.
type Capabilities struct {
	// PS2 is false on PSX (DESR) units.
	PS2 bool
	HDD bool
	// MultiInstall allows the multi-install button.
	MultiInstall bool
}

// Menus holds the three sibling menus. Paging runs
// memory card <-> extras <-> main.
type Menus struct {
	Main, Extras, MC *menu.Menu
}

func pageButton(id uint8, label lang.LabelID) []menu.Item {
	return []menu.Item{
		menu.NewButton(id, label, menu.DefaultButtonHeight).With(menu.PosMid),
		menu.Layout(menu.Break),
		menu.Layout(menu.Break),
	}
}

func newPage(id string, title lang.LabelID, buttons ...[]menu.Item) *menu.Menu {
	items := []menu.Item{
		menu.NewLabel(0, title),
		menu.Layout(menu.Separator),
		menu.Layout(menu.Break),
	}
	for _, b := range buttons {
		items = append(items, b...)
	}
	items = append(items,
		menu.NewString(idDescription, "").With(menu.PosAbsolute|menu.ReadOnly).At(32, 370),
		menu.Layout(menu.Break),
		menu.NewString(idVersion, "").With(menu.PosAbsolute|menu.ReadOnly).At(520, 420),
		menu.Layout(menu.Break),
	)
	m := menu.New(id, items...)
	m.Hints = [2]menu.Hint{
		{Glyph: menu.GlyphSelect, Label: lang.LblOK},
		{Glyph: menu.GlyphCancel, Label: lang.LblExit},
	}
	return m
}

// NewMenus builds the sibling menus, registers them in reg and links them.
func NewMenus(reg *menu.Registry, version string, caps Capabilities) (*Menus, error) {
	ms := &Menus{
		Main: newPage(MainMenuID, lang.LblMenuMain,
			pageButton(idInstall, lang.LblInstall),
			pageButton(idOpenTuna, lang.LblOTMenuTitle),
			pageButton(idMultiInstall, lang.LblMultiInstall),
			pageButton(idUninstall, lang.LblUninstall),
			pageButton(idDowngradeMulti, lang.LblDowngradeMulti),
			pageButton(idExit, lang.LblExit),
		),
		Extras: newPage(ExtrasMenuID, lang.LblMenuExtras,
			pageButton(idCrossPSX, lang.LblInstallCrossPSX),
			pageButton(idInstallFHDB, lang.LblInstallFHDB),
			pageButton(idUninstallFHDB, lang.LblUninstallFHDB),
			pageButton(idFormatHDD, lang.LblFormatHDD),
		),
		MC: newPage(MCMenuID, lang.LblMenuMC,
			pageButton(idFormatMC, lang.LblFormatMC),
			pageButton(idDumpMC, lang.LblDumpMC),
			pageButton(idRestoreMC, lang.LblRestoreMC),
		),
	}
	for _, m := range []*menu.Menu{ms.MC, ms.Extras, ms.Main} {
		m.SetString(idVersion, version)
		reg.Add(m)
	}
	if err := reg.Chain(MCMenuID, ExtrasMenuID, MainMenuID); err != nil {
		return nil, fmt.Errorf("link installer menus: %w", err)
	}
	ms.Apply(caps)
	return ms, nil
}

// Apply enables the buttons the hardware supports.
func (ms *Menus) Apply(caps Capabilities) {
	ms.Main.SetEnabled(idMultiInstall, caps.PS2 && caps.MultiInstall)
	ms.Extras.SetEnabled(idCrossPSX, caps.PS2)
	ms.Extras.SetEnabled(idInstallFHDB, caps.HDD)
	ms.Extras.SetEnabled(idUninstallFHDB, caps.HDD)
	ms.Extras.SetEnabled(idFormatHDD, caps.HDD)
}

// describe returns the per-frame callback that keeps the description line in
// step with the focused button. focus receives the focused item id.
func describe(focus *uint8) ui.Callback {
	return func(m *menu.Menu, frame, selection int, pressed pad.Buttons) int {
		it := m.At(selection)
		if it != nil {
			*focus = it.ID
		}
		if pressed == 0 && frame != 0 {
			return 0
		}
		if it != nil && it.Type == menu.Button {
			if msg, ok := descriptions[it.ID]; ok {
				m.SetMessage(idDescription, msg)
				return 0
			}
		}
		m.SetString(idDescription, "")
		return 0
	}
}
