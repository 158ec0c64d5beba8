package menu

import "github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/lang"

// ItemType says how the draw engine lays out an item and which payload it
// carries.
type ItemType uint8

const (
	Terminator ItemType = iota
	Label
	Separator
	Break
	Tab
	Space
	String
	Button
	Colon
	Dash
	Dot
	Slash
	Value
	Progress
	Toggle
	Enum
)

var typeNames = [...]string{
	"terminator", "label", "separator", "break", "tab", "space", "string",
	"button", "colon", "dash", "dot", "slash", "value", "progress", "toggle", "enum",
}

func (t ItemType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Interactive reports whether items of this type can take focus.
func (t ItemType) Interactive() bool {
	switch t {
	case Button, Value, Toggle, Enum:
		return true
	}
	return false
}

// addressable types can be looked up by id; pure layout items cannot.
func (t ItemType) addressable() bool {
	switch t {
	case Separator, Break, Tab, Space, Colon, Dash, Dot, Slash, Terminator:
		return false
	}
	return true
}

// Flags adjust visibility, interactivity and placement of an item.
type Flags uint8

const (
	Hidden Flags = 1 << iota
	Disabled
	ReadOnly
	// PosAbsolute places the item at its X/Y instead of the layout cursor.
	PosAbsolute
	// PosMid centres a button horizontally.
	PosMid
	// UnitPrefix scales a value by 1024 steps and appends K/M/G.
	UnitPrefix
)

// Format selects how a Value item renders its number.
type Format uint8

const (
	FormatDec Format = iota
	FormatUDec
	FormatHex
	FormatPointer
	// FormatFloat renders the value as fixed-point hundredths.
	FormatFloat
)

// FormatZeroPad pads to the item width with zeros instead of spaces.
const FormatZeroPad Format = 0x80

// Kind strips modifier bits.
func (f Format) Kind() Format { return f &^ FormatZeroPad }

// Payload is the type-specific state of an item. Each item type accepts
// exactly one payload type; layout items carry none.
type Payload interface {
	clone() Payload
}

// LabelPayload names a label-table entry.
type LabelPayload struct {
	Label lang.LabelID
}

// ButtonPayload is a button caption plus the height of its plate.
type ButtonPayload struct {
	Label  lang.LabelID
	Height int
}

// StringPayload is free text. When Message is set the text comes from the
// message table instead, reflowed to the screen width.
type StringPayload struct {
	Text    string
	Message lang.MsgID
	FromMsg bool
}

// ValuePayload backs Value, Progress and Toggle items.
type ValuePayload struct {
	Current  int
	Min, Max int
	Format   Format
	Width    int
}

// EnumPayload backs Enum items.
type EnumPayload struct {
	Labels   []lang.LabelID
	Selected int
}

func (p *LabelPayload) clone() Payload  { c := *p; return &c }
func (p *ButtonPayload) clone() Payload { c := *p; return &c }
func (p *StringPayload) clone() Payload { c := *p; return &c }
func (p *ValuePayload) clone() Payload  { c := *p; return &c }
func (p *EnumPayload) clone() Payload {
	c := *p
	c.Labels = append([]lang.LabelID(nil), p.Labels...)
	return &c
}

// Fits reports whether p is the payload type t requires. Layout types fit
// only a nil payload.
func Fits(t ItemType, p Payload) bool {
	switch t {
	case Label:
		_, ok := p.(*LabelPayload)
		return ok
	case Button:
		_, ok := p.(*ButtonPayload)
		return ok
	case String:
		_, ok := p.(*StringPayload)
		return ok
	case Value, Progress, Toggle:
		_, ok := p.(*ValuePayload)
		return ok
	case Enum:
		_, ok := p.(*EnumPayload)
		return ok
	}
	return p == nil
}

// Item is one entry of a menu.
type Item struct {
	Type    ItemType
	ID      uint8
	Flags   Flags
	X, Y    int16
	Payload Payload
}

// Has reports whether every bit of f is set.
func (it *Item) Has(f Flags) bool { return it.Flags&f == f }

// Selectable reports whether the item can take focus.
func (it *Item) Selectable() bool {
	return it.Type.Interactive() && it.Flags&(Hidden|Disabled|ReadOnly) == 0
}

// At returns a copy of the item with its X/Y offset set.
func (it Item) At(x, y int16) Item {
	it.X, it.Y = x, y
	return it
}

// With returns a copy of the item with extra flags set.
func (it Item) With(f Flags) Item {
	it.Flags |= f
	return it
}

func (it Item) clone() Item {
	if it.Payload != nil {
		it.Payload = it.Payload.clone()
	}
	return it
}

// DefaultButtonHeight is the plate height of buttons declared without one.
const DefaultButtonHeight = 24

// NewLabel declares a label item.
func NewLabel(id uint8, label lang.LabelID) Item {
	return Item{Type: Label, ID: id, Payload: &LabelPayload{Label: label}}
}

// NewButton declares a button. A non-positive height uses DefaultButtonHeight.
func NewButton(id uint8, label lang.LabelID, height int) Item {
	if height <= 0 {
		height = DefaultButtonHeight
	}
	return Item{Type: Button, ID: id, Payload: &ButtonPayload{Label: label, Height: height}}
}

// NewString declares a free-text item.
func NewString(id uint8, text string) Item {
	return Item{Type: String, ID: id, Payload: &StringPayload{Text: text}}
}

// NewMessage declares a string item showing a message-table entry.
func NewMessage(id uint8, msg lang.MsgID) Item {
	return Item{Type: String, ID: id, Payload: &StringPayload{Message: msg, FromMsg: true}}
}

// NewValue declares a numeric item with the given format and width.
func NewValue(id uint8, format Format, width, lo, hi int) Item {
	return Item{Type: Value, ID: id, Payload: &ValuePayload{Min: lo, Max: hi, Format: format, Width: width}}
}

// NewProgress declares a progress bar taking values 0..100.
func NewProgress(id uint8) Item {
	return Item{Type: Progress, ID: id, Payload: &ValuePayload{Max: 100}}
}

// NewToggle declares an Enabled/Disabled toggle.
func NewToggle(id uint8, on bool) Item {
	v := 0
	if on {
		v = 1
	}
	return Item{Type: Toggle, ID: id, Payload: &ValuePayload{Current: v, Max: 1}}
}

// NewEnum declares a choice between labels.
func NewEnum(id uint8, labels ...lang.LabelID) Item {
	return Item{Type: Enum, ID: id, Payload: &EnumPayload{Labels: append([]lang.LabelID(nil), labels...)}}
}

// Layout declares a payload-free layout item such as Break or Separator.
func Layout(t ItemType) Item {
	return Item{Type: t}
}
