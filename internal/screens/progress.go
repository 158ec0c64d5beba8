package screens

import (
	"math"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/backend"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/lang"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"
)

const (
	prgTitle uint8 = iota + 1
	prgETALabel
	prgHours
	prgMinsSep
	prgMins
	prgSecsSep
	prgSecs
	prgRateLabel
	prgRate
	prgRateUnit
	prgBar
)

// unknownETA replaces the h:m:s values while the rate is unknown.
const unknownETA = "--"

var etaFields = [3]uint8{prgHours, prgMins, prgSecs}

// ProgressScreen shows a running job. Dump and restore jobs also show the
// transfer rate and time left; they are the only ones that can be cancelled.
type ProgressScreen struct {
	menu     *menu.Menu
	eta      [3]*menu.ValuePayload
	shown    bool
	detailed bool
}

func etaValue(id uint8) menu.Item {
	return menu.NewValue(id, menu.FormatUDec|menu.FormatZeroPad, 2, 0, math.MaxInt32).With(menu.ReadOnly)
}

// NewProgressScreen builds the progress screen template.
func NewProgressScreen() *ProgressScreen {
	sep := func(id uint8) menu.Item {
		it := menu.Layout(menu.Colon)
		it.ID = id
		return it
	}
	m := menu.New("progress",
		menu.NewLabel(prgTitle, lang.LblInstalling),
		menu.Layout(menu.Separator),
		menu.Layout(menu.Break),
		menu.NewLabel(prgETALabel, lang.LblETA),
		menu.Layout(menu.Tab),
		etaValue(prgHours), sep(prgMinsSep), etaValue(prgMins), sep(prgSecsSep), etaValue(prgSecs),
		menu.Layout(menu.Break),
		menu.Layout(menu.Break),
		menu.NewLabel(prgRateLabel, lang.LblRate),
		menu.Layout(menu.Tab),
		menu.Layout(menu.Tab),
		menu.NewValue(prgRate, menu.FormatUDec, 0, 0, math.MaxInt32).With(menu.ReadOnly),
		menu.Layout(menu.Space),
		menu.NewLabel(prgRateUnit, lang.LblKBps),
		menu.Layout(menu.Break),
		menu.Layout(menu.Break),
		menu.NewProgress(prgBar).With(menu.PosAbsolute).At(0, 280),
		menu.Layout(menu.Break),
	)
	p := &ProgressScreen{menu: m, shown: true}
	for i, id := range etaFields {
		it, _ := m.Item(id)
		p.eta[i] = it.Payload.(*menu.ValuePayload)
	}
	return p
}

// Menu returns the screen's menu.
func (p *ProgressScreen) Menu() *menu.Menu { return p.menu }

// Detailed reports whether the current job shows rate and ETA.
func (p *ProgressScreen) Detailed() bool { return p.detailed }

// Init prepares the screen for a job titled title.
func (p *ProgressScreen) Init(title lang.LabelID) error {
	m := p.menu
	m.SetLabel(prgTitle, title)
	p.detailed = title == lang.LblDumpingMC || title == lang.LblRestoringMC
	if p.detailed {
		m.Hints[0] = menu.Hint{Glyph: menu.GlyphCancel, Label: lang.LblCancel}
	} else {
		m.Hints[0] = menu.Hint{Glyph: menu.GlyphNone}
	}
	m.Hints[1] = menu.Hint{Glyph: menu.GlyphNone}

	if err := p.showETA(true); err != nil {
		return err
	}
	for _, id := range []uint8{prgETALabel, prgHours, prgMins, prgSecs, prgRateLabel, prgRate, prgRateUnit} {
		m.SetVisible(id, p.detailed)
	}
	setLayoutVisible(m, prgMinsSep, p.detailed)
	setLayoutVisible(m, prgSecsSep, p.detailed)
	m.SetValue(prgBar, 0)
	m.SetValue(prgRate, 0)
	return nil
}

// Update copies a job snapshot into the screen.
func (p *ProgressScreen) Update(pr backend.Progress) error {
	m := p.menu
	m.SetValue(prgBar, pr.Percent()/100)
	if !p.detailed {
		return nil
	}
	m.SetValue(prgRate, int(pr.Rate()/1024))
	eta, ok := pr.ETA()
	if err := p.showETA(ok); err != nil || !ok {
		return err
	}
	secs := int(eta.Seconds())
	m.SetValue(prgHours, secs/3600)
	m.SetValue(prgMins, secs%3600/60)
	m.SetValue(prgSecs, secs%60)
	return nil
}

// showETA switches the h:m:s fields between numbers and the unknown marker.
func (p *ProgressScreen) showETA(known bool) error {
	if known == p.shown {
		return nil
	}
	for i, id := range etaFields {
		var err error
		if known {
			err = p.menu.SetType(id, menu.Value, p.eta[i])
		} else {
			err = p.menu.SetType(id, menu.String, &menu.StringPayload{Text: unknownETA})
		}
		if err != nil {
			return err
		}
	}
	p.shown = known
	return nil
}

// setLayoutVisible toggles payload-free items that carry an id for grouping.
func setLayoutVisible(m *menu.Menu, id uint8, visible bool) {
	for i := range m.Items {
		it := &m.Items[i]
		if it.ID != id || it.Payload != nil {
			continue
		}
		if visible {
			it.Flags &^= menu.Hidden
		} else {
			it.Flags |= menu.Hidden
		}
	}
}
