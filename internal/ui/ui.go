package ui

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/font"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/gfx"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/lang"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/logging/events"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/pad"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/textwrap"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/theme"
)

// ErrFontUnavailable is returned by New when neither the configured font nor
// the fallback font could be loaded.
var ErrFontUnavailable = errors.New("ui: no usable font")

// CancelResult is what ExecuteMenu returns on a cancel press. Item ids are
// uint8, so it never equals a button id.
const CancelResult = -1

// Screen layout.
const (
	ScreenWidth  = 640
	ScreenHeight = 448
	UIOffsetX    = 10
	UIOffsetY    = 8
	wrapMargin   = 32
)

// Options configure New. Backend and Pad are required.
type Options struct {
	Backend gfx.Backend
	Pad     pad.Source
	Strings *lang.Table
	Menus   *menu.Registry

	FontPath    string
	SubFontPath string
	// FallbackFont is loaded when FontPath is empty or fails. Nil uses the
	// compiled-in Go Regular face.
	FallbackFont []byte
	FontSize     int

	Mapping     pad.Mapping
	RepeatDelay int
	RepeatRate  int
	Palette     *theme.Palette
	Version     string
}

type palette struct {
	background, text, accent, highlight, disabled color.NRGBA
	rule, button, buttonSelected                  color.NRGBA
	progressTrack, progressFill, overlay          color.NRGBA
}

func newPalette(p theme.Palette) palette {
	return palette{
		background:     theme.NRGBA(p.Background),
		text:           theme.NRGBA(p.Text),
		accent:         theme.NRGBA(p.Accent),
		highlight:      theme.NRGBA(p.Highlight),
		disabled:       theme.NRGBA(p.Disabled),
		rule:           theme.NRGBA(p.Rule),
		button:         theme.NRGBA(p.Button),
		buttonSelected: theme.NRGBA(p.ButtonSelected),
		progressTrack:  theme.NRGBA(p.ProgressTrack),
		progressFill:   theme.NRGBA(p.ProgressFill),
		overlay:        theme.NRGBA(p.Overlay),
	}
}

// UI is the drawing and input context every screen runs through.
type UI struct {
	gfx     gfx.Backend
	font    *font.Renderer
	strings *lang.Table
	menus   *menu.Registry
	pad     pad.Source
	repeat  *pad.Repeater
	mapping pad.Mapping
	colors  palette
	wrap    *textwrap.Cache
	gen     uint64
	version string
	bounds  image.Rectangle
}

// New brings the UI up. The configured font is tried first and the fallback
// font second; only both failing is an error.
func New(opts Options) (*UI, error) {
	if opts.Backend == nil {
		return nil, errors.New("ui: no drawing backend")
	}
	if opts.Pad == nil {
		opts.Pad = pad.SourceFunc(func() pad.Buttons { return 0 })
	}
	if opts.Strings == nil {
		opts.Strings = lang.English()
	}
	if opts.Menus == nil {
		opts.Menus = menu.NewRegistry()
	}
	if opts.Mapping == (pad.Mapping{}) {
		opts.Mapping = pad.DefaultMapping()
	}
	p := theme.DefaultPalette()
	if opts.Palette != nil {
		p = *opts.Palette
	}
	if opts.FallbackFont == nil {
		opts.FallbackFont = goregular.TTF
	}

	u := &UI{
		gfx:     opts.Backend,
		strings: opts.Strings,
		menus:   opts.Menus,
		pad:     opts.Pad,
		repeat:  pad.NewRepeater(opts.RepeatDelay, opts.RepeatRate),
		mapping: opts.Mapping,
		colors:  newPalette(p),
		version: opts.Version,
		bounds:  opts.Backend.Bounds(),
	}
	u.font = font.NewRenderer(opts.Backend, font.Options{Size: opts.FontSize, Codec: opts.Strings.Codec()})
	if err := u.initFont(opts.FontPath, opts.FallbackFont); err != nil {
		return nil, err
	}
	if opts.SubFontPath != "" {
		if err := u.font.AddSubFont(opts.SubFontPath); err != nil {
			events.Font.Fallback(opts.SubFontPath, err)
		}
	}

	wrap, err := textwrap.NewCache(int(lang.MsgCount)+16, u.wrapText)
	if err != nil {
		return nil, fmt.Errorf("ui: wrap memo: %w", err)
	}
	u.wrap = wrap
	u.gen = opts.Strings.Generation()
	return u, nil
}

func (u *UI) initFont(path string, fallback []byte) error {
	if path != "" {
		err := u.font.Init(path)
		if err == nil {
			return nil
		}
		events.Font.Fallback(path, err)
	}
	if err := u.font.InitFromBuffer(fallback); err != nil {
		return fmt.Errorf("%w: %v", ErrFontUnavailable, err)
	}
	return nil
}

// Reinit drops every cached glyph and wrapped string and reloads the fonts
// from their retained buffers.
func (u *UI) Reinit() error {
	if err := u.font.Reset(); err != nil {
		return fmt.Errorf("ui: reinit: %w", err)
	}
	u.wrap.Purge()
	u.font.SetCodec(u.strings.Codec())
	u.gen = u.strings.Generation()
	return nil
}

// Deinit releases the fonts.
func (u *UI) Deinit() {
	u.font.Deinit()
	u.wrap.Purge()
}

// Font returns the renderer.
func (u *UI) Font() *font.Renderer { return u.font }

// Strings returns the active string tables.
func (u *UI) Strings() *lang.Table { return u.strings }

// Menus returns the registry sibling links are resolved through.
func (u *UI) Menus() *menu.Registry { return u.menus }

// SetMapping changes which buttons confirm and cancel.
func (u *UI) SetMapping(m pad.Mapping) { u.mapping = m }

// Mapping returns the confirm/cancel assignment.
func (u *UI) Mapping() pad.Mapping { return u.mapping }

// Bounds returns the screen rectangle.
func (u *UI) Bounds() image.Rectangle { return u.bounds }

// Flip presents the current frame.
func (u *UI) Flip() error { return u.gfx.Flip() }

// sync picks up a language switch: the codec follows the table and every
// wrapped string is reflowed on next use.
func (u *UI) sync() {
	if gen := u.strings.Generation(); gen != u.gen {
		u.gen = gen
		u.font.SetCodec(u.strings.Codec())
		u.wrap.Purge()
	}
}

func (u *UI) wrapBudget() int {
	return u.bounds.Dx() - 2*wrapMargin
}

func (u *UI) wrapText(s string) string {
	return textwrap.BreakLongString(s, u.strings.Codec(), u.font.GlyphWidth, u.wrapBudget())
}

// Message returns the message for id reflowed to the screen width.
func (u *UI) Message(id lang.MsgID) string {
	u.sync()
	return u.wrap.Get(int(id), u.strings.Message(id))
}

func (u *UI) contentWidth() int {
	return u.bounds.Dx() - 2*UIOffsetX
}
