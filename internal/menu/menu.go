// Package menu defines the declarative menu model: typed items with flags and
// payloads, menus holding them, and a registry linking sibling menus.
package menu

import (
	"errors"
	"fmt"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/lang"
)

var (
	// ErrNotFound reports a lookup by id that matched nothing.
	ErrNotFound = errors.New("menu: item not found")
	// ErrPayloadMismatch reports a type change whose payload does not fit
	// the new type.
	ErrPayloadMismatch = errors.New("menu: payload does not fit item type")
)

// Glyph selects the icon of an on-screen hint.
type Glyph int

const (
	GlyphNone Glyph = iota
	// GlyphSelect and GlyphCancel follow the active confirm/cancel mapping.
	GlyphSelect
	GlyphCancel
	GlyphTriangle
	GlyphSquare
	GlyphStart
)

// Hint is one entry of the button legend drawn under a menu.
type Hint struct {
	Glyph Glyph
	Label lang.LabelID
}

// Menu is one screen. Items are scanned up to the first Terminator, if any.
// Prev and Next name sibling menus in a Registry.
type Menu struct {
	ID    string
	Items []Item
	Hints [2]Hint
	Prev  string
	Next  string
}

// New creates a menu with the standard select/cancel legend.
func New(id string, items ...Item) *Menu {
	return &Menu{
		ID:    id,
		Items: items,
		Hints: [2]Hint{
			{Glyph: GlyphSelect, Label: lang.LblOK},
			{Glyph: GlyphCancel, Label: lang.LblCancel},
		},
	}
}

// Len returns the number of items before the terminator.
func (m *Menu) Len() int {
	for i := range m.Items {
		if m.Items[i].Type == Terminator {
			return i
		}
	}
	return len(m.Items)
}

// At returns the item at index i, or nil when out of range.
func (m *Menu) At(i int) *Item {
	if i < 0 || i >= m.Len() {
		return nil
	}
	return &m.Items[i]
}

// Clone deep-copies the menu so the copy can be mutated independently.
func (m *Menu) Clone() *Menu {
	c := *m
	c.Items = make([]Item, len(m.Items))
	for i, it := range m.Items {
		c.Items[i] = it.clone()
	}
	return &c
}

// Item returns the first addressable item with the given id.
func (m *Menu) Item(id uint8) (*Item, bool) {
	n := m.Len()
	for i := 0; i < n; i++ {
		it := &m.Items[i]
		if it.ID == id && it.Type.addressable() {
			return it, true
		}
	}
	return nil, false
}

func (m *Menu) setFlag(id uint8, f Flags, on bool) {
	it, ok := m.Item(id)
	if !ok {
		return
	}
	if on {
		it.Flags |= f
	} else {
		it.Flags &^= f
	}
}

// SetVisible shows or hides an item. Hidden items take no layout space.
func (m *Menu) SetVisible(id uint8, visible bool) { m.setFlag(id, Hidden, !visible) }

// SetReadOnly marks an item read-only.
func (m *Menu) SetReadOnly(id uint8, readOnly bool) { m.setFlag(id, ReadOnly, readOnly) }

// SetEnabled enables or greys out an item.
func (m *Menu) SetEnabled(id uint8, enabled bool) { m.setFlag(id, Disabled, !enabled) }

func (m *Menu) value(id uint8) *ValuePayload {
	it, ok := m.Item(id)
	if !ok {
		return nil
	}
	v, _ := it.Payload.(*ValuePayload)
	return v
}

// SetValue stores the current value of a Value, Progress or Toggle item.
// Toggles store 0 or 1.
func (m *Menu) SetValue(id uint8, value int) {
	it, ok := m.Item(id)
	if !ok {
		return
	}
	v, ok := it.Payload.(*ValuePayload)
	if !ok {
		return
	}
	if it.Type == Toggle && value != 0 {
		value = 1
	}
	v.Current = value
}

// Value returns the current value, or 0 for items without one.
func (m *Menu) Value(id uint8) int {
	if v := m.value(id); v != nil {
		return v.Current
	}
	return 0
}

// SetRange sets the bounds Left/Right adjust a Value item within.
func (m *Menu) SetRange(id uint8, lo, hi int) {
	if v := m.value(id); v != nil {
		v.Min, v.Max = lo, hi
	}
}

// SetFormat sets how a Value item renders.
func (m *Menu) SetFormat(id uint8, format Format, width int) {
	if v := m.value(id); v != nil {
		v.Format, v.Width = format, width
	}
}

// SetLabel changes the label of a Label or Button item.
func (m *Menu) SetLabel(id uint8, label lang.LabelID) {
	it, ok := m.Item(id)
	if !ok {
		return
	}
	switch p := it.Payload.(type) {
	case *LabelPayload:
		p.Label = label
	case *ButtonPayload:
		p.Label = label
	}
}

// SetString sets the free text of a String item.
func (m *Menu) SetString(id uint8, text string) {
	it, ok := m.Item(id)
	if !ok {
		return
	}
	if p, ok := it.Payload.(*StringPayload); ok {
		p.Text, p.FromMsg = text, false
	}
}

// SetMessage points a String item at a message-table entry.
func (m *Menu) SetMessage(id uint8, msg lang.MsgID) {
	it, ok := m.Item(id)
	if !ok {
		return
	}
	if p, ok := it.Payload.(*StringPayload); ok {
		p.Message, p.FromMsg = msg, true
	}
}

// SetType changes how an item is interpreted. p becomes the new payload and
// must fit the new type; a nil p keeps the current payload if it fits.
func (m *Menu) SetType(id uint8, t ItemType, p Payload) error {
	it, ok := m.Item(id)
	if !ok {
		return fmt.Errorf("set type of %d in %s: %w", id, m.ID, ErrNotFound)
	}
	if p == nil {
		p = it.Payload
		if !Fits(t, p) {
			p = nil
		}
	}
	if !Fits(t, p) {
		return fmt.Errorf("set %s on item %d in %s: %w", t, id, m.ID, ErrPayloadMismatch)
	}
	it.Type, it.Payload = t, p
	return nil
}

// SetEnum replaces the choices of an Enum item and selects the first.
func (m *Menu) SetEnum(id uint8, labels []lang.LabelID) {
	it, ok := m.Item(id)
	if !ok {
		return
	}
	if p, ok := it.Payload.(*EnumPayload); ok {
		p.Labels = append([]lang.LabelID(nil), labels...)
		p.Selected = 0
	}
}

// SetEnumIndex selects a choice of an Enum item. Out-of-range indexes are
// ignored.
func (m *Menu) SetEnumIndex(id uint8, index int) {
	it, ok := m.Item(id)
	if !ok {
		return
	}
	if p, ok := it.Payload.(*EnumPayload); ok && index >= 0 && index < len(p.Labels) {
		p.Selected = index
	}
}

// EnumIndex returns the selected choice of an Enum item, or 0.
func (m *Menu) EnumIndex(id uint8) int {
	it, ok := m.Item(id)
	if !ok {
		return 0
	}
	if p, ok := it.Payload.(*EnumPayload); ok {
		return p.Selected
	}
	return 0
}
