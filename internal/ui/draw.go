package ui

import (
	"image"
	"image/color"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/font"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/gfx"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/lang"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/pad"
)

const (
	lineHeight     = font.CharHeight
	buttonPadding  = font.CharWidth
	progressHeight = font.CharHeight
	hintGap        = 4
	hintSpacing    = 16
	legendBottom   = 40
)

var separatorGlyphs = map[menu.ItemType]string{
	menu.Colon: ":",
	menu.Dash:  "-",
	menu.Dot:   ".",
	menu.Slash: "/",
}

// Draw renders one frame of m with its origin at x, y. selection is the index
// of the focused item or a negative value for none. frame identifies the
// animation step of a transition and does not change the layout, so equal
// menu state draws equal frames.
func (u *UI) Draw(m *menu.Menu, frame, x, y, selection int) {
	u.sync()
	u.gfx.Clear(u.colors.background)
	if m == nil {
		return
	}
	l := layout{ui: u, startX: x, startY: y, x: x, y: y}
	n := m.Len()
	for i := 0; i < n; i++ {
		it := &m.Items[i]
		if it.Has(menu.Hidden) {
			continue
		}
		l.item(it, i == selection)
	}
	u.drawLegend(m, x, y)
}

type layout struct {
	ui             *UI
	startX, startY int
	x, y           int
}

func (l *layout) newline(dy int) {
	l.x = l.startX
	l.y += dy
}

func (l *layout) print(c color.NRGBA, s string) {
	dx, dy := l.ui.font.PrintWithFeedback(l.x, l.y, 1, c, s)
	l.x += dx
	l.y += dy
}

func (l *layout) item(it *menu.Item, selected bool) {
	u := l.ui
	if it.Has(menu.PosAbsolute) {
		l.x = l.startX + int(it.X)
		l.y = l.startY + int(it.Y)
	}

	switch it.Type {
	case menu.Separator:
		ry := l.y + lineHeight/2
		u.gfx.Line(l.startX, ry, l.startX+u.contentWidth(), ry, u.colors.rule)
		l.newline(lineHeight)
	case menu.Break:
		l.newline(lineHeight)
	case menu.Tab:
		cell := font.CharWidth * font.TabStops
		col := (l.x - l.startX) / cell
		l.x = l.startX + (col+1)*cell
	case menu.Space:
		l.x += font.CharWidth
	case menu.Label:
		if p, ok := it.Payload.(*menu.LabelPayload); ok {
			l.print(u.colors.text, u.strings.Label(p.Label))
		}
	case menu.String:
		if p, ok := it.Payload.(*menu.StringPayload); ok {
			l.print(u.stateColor(it, selected), u.stringText(p))
		}
	case menu.Button:
		l.button(it, selected)
	case menu.Colon, menu.Dash, menu.Dot, menu.Slash:
		l.print(u.colors.text, separatorGlyphs[it.Type])
	case menu.Value:
		if p, ok := it.Payload.(*menu.ValuePayload); ok {
			l.print(u.stateColor(it, selected), formatValue(p, it.Flags))
		}
	case menu.Progress:
		if p, ok := it.Payload.(*menu.ValuePayload); ok {
			l.progress(p)
		}
	case menu.Toggle:
		if p, ok := it.Payload.(*menu.ValuePayload); ok {
			label := lang.LblDisabled
			if p.Current != 0 {
				label = lang.LblEnabled
			}
			l.print(u.stateColor(it, selected), u.strings.Label(label))
		}
	case menu.Enum:
		if p, ok := it.Payload.(*menu.EnumPayload); ok {
			label := lang.NoLabel
			if p.Selected >= 0 && p.Selected < len(p.Labels) {
				label = p.Labels[p.Selected]
			}
			l.print(u.stateColor(it, selected), u.strings.Label(label))
		}
	}
}

func (l *layout) button(it *menu.Item, selected bool) {
	u := l.ui
	p, ok := it.Payload.(*menu.ButtonPayload)
	if !ok {
		return
	}
	text := u.strings.Label(p.Label)
	textW := u.font.StringWidth(text, -1)
	w, h := textW+2*buttonPadding, p.Height
	rx := l.x
	if it.Has(menu.PosMid) {
		rx = l.startX + (u.contentWidth()-w)/2
	}
	rect := image.Rect(rx, l.y, rx+w, l.y+h)
	fill := u.colors.button
	if selected {
		rect = grow(rect, 10)
		fill = u.colors.buttonSelected
	}
	u.gfx.FillRect(rect, fill)

	textColor := u.colors.text
	switch {
	case it.Has(menu.Disabled):
		textColor = u.colors.disabled
	case selected:
		textColor = u.colors.highlight
	}
	tx := rect.Min.X + (rect.Dx()-textW)/2
	ty := rect.Min.Y + (rect.Dy()-lineHeight)/2
	u.font.Print(tx, ty, 1, textColor, text)
	l.newline(h)
}

func (l *layout) progress(p *menu.ValuePayload) {
	u := l.ui
	v := p.Current
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	w := u.contentWidth() - (l.x - l.startX)
	track := image.Rect(l.x, l.y, l.x+w, l.y+progressHeight)
	u.gfx.FillRect(track, u.colors.progressTrack)
	if fill := w * v / 100; fill > 0 {
		u.gfx.FillRect(image.Rect(l.x, l.y, l.x+fill, l.y+progressHeight), u.colors.progressFill)
	}
	l.newline(2 * progressHeight)
}

// grow enlarges r by percent around its centre.
func grow(r image.Rectangle, percent int) image.Rectangle {
	dx := r.Dx() * percent / 200
	dy := r.Dy() * percent / 200
	return image.Rect(r.Min.X-dx, r.Min.Y-dy, r.Max.X+dx, r.Max.Y+dy)
}

func (u *UI) stringText(p *menu.StringPayload) string {
	if p.FromMsg {
		return u.wrap.Get(int(p.Message), u.strings.Message(p.Message))
	}
	return p.Text
}

func (u *UI) stateColor(it *menu.Item, selected bool) color.NRGBA {
	switch {
	case it.Has(menu.Disabled):
		return u.colors.disabled
	case it.Has(menu.ReadOnly):
		return u.colors.text
	case selected:
		return u.colors.highlight
	}
	return u.colors.accent
}

func (u *UI) hintIcon(g menu.Glyph) (gfx.Icon, bool) {
	switch g {
	case menu.GlyphSelect:
		return buttonIcon(u.mapping.Select), true
	case menu.GlyphCancel:
		return buttonIcon(u.mapping.Cancel), true
	case menu.GlyphTriangle:
		return gfx.IconTriangle, true
	case menu.GlyphSquare:
		return gfx.IconSquare, true
	case menu.GlyphStart:
		return gfx.IconStart, true
	}
	return 0, false
}

func buttonIcon(b pad.Buttons) gfx.Icon {
	switch b {
	case pad.Circle:
		return gfx.IconCircle
	case pad.Square:
		return gfx.IconSquare
	case pad.Triangle:
		return gfx.IconTriangle
	}
	return gfx.IconCross
}

// drawLegend draws the button hints along the bottom and the L1/R1 paging
// icons in the top-right corner.
func (u *UI) drawLegend(m *menu.Menu, x, y int) {
	hx := x + u.contentWidth()/2
	hy := y + u.bounds.Dy() - legendBottom
	for _, h := range m.Hints {
		icon, ok := u.hintIcon(h.Glyph)
		if !ok {
			continue
		}
		size := gfx.IconSize(icon)
		u.gfx.Icon(icon, image.Pt(hx, hy))
		hx += size.X + hintGap
		dx, _ := u.font.PrintWithFeedback(hx, hy+(size.Y-lineHeight)/2, 1, u.colors.text, u.strings.Label(h.Label))
		hx += dx + hintSpacing
	}

	right := x + u.contentWidth()
	if _, ok := u.menus.Next(m); ok {
		right -= gfx.IconSize(gfx.IconR1).X
		u.gfx.Icon(gfx.IconR1, image.Pt(right, y))
		right -= hintGap
	}
	if _, ok := u.menus.Prev(m); ok {
		right -= gfx.IconSize(gfx.IconL1).X
		u.gfx.Icon(gfx.IconL1, image.Pt(right, y))
	}
}
