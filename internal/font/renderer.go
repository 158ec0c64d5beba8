// Package font rasterizes vector fonts into atlas-cached glyphs and draws
// text runs through a gfx backend.
package font

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/gfx"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/logging/events"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/textenc"
)

var (
	// ErrNoFace reports an empty font buffer.
	ErrNoFace = errors.New("font: no font data")
	// ErrBadFont wraps parse failures.
	ErrBadFont = errors.New("font: unreadable font")
	// ErrNotLoaded is returned by operations that need a primary font.
	ErrNotLoaded = errors.New("font: not loaded")
)

// Nominal character cell and atlas budget.
const (
	CharWidth  = 12
	CharHeight = 18
	TabStops   = 4
	MaxAtlases = 4
	AtlasSize  = 512
	PixelSize  = 16
)

// Options tune the renderer. Zero fields use the package defaults.
type Options struct {
	Size        int
	AtlasWidth  int
	AtlasHeight int
	MaxAtlases  int
	Codec       textenc.Codec
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = PixelSize
	}
	if o.AtlasWidth <= 0 {
		o.AtlasWidth = AtlasSize
	}
	if o.AtlasHeight <= 0 {
		o.AtlasHeight = AtlasSize
	}
	if o.MaxAtlases <= 0 {
		o.MaxAtlases = MaxAtlases
	}
	if o.Codec == nil {
		o.Codec = textenc.UTF8
	}
	return o
}

// Renderer owns the primary and optional secondary font and draws text onto
// its canvas.
type Renderer struct {
	opts     Options
	canvas   gfx.Backend
	primary  *face
	sub      *face
	resolved map[rune]*Glyph
}

// NewRenderer creates a renderer drawing onto canvas. No font is loaded yet.
func NewRenderer(canvas gfx.Backend, opts Options) *Renderer {
	return &Renderer{
		opts:     opts.withDefaults(),
		canvas:   canvas,
		resolved: make(map[rune]*Glyph),
	}
}

// Init loads the primary font from a file.
func (r *Renderer) Init(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	return r.load(path, data)
}

// InitFromBuffer loads the primary font from memory. The buffer is retained
// for Reset.
func (r *Renderer) InitFromBuffer(data []byte) error {
	return r.load("buffer", data)
}

func (r *Renderer) load(name string, data []byte) error {
	f, err := newFace(name, data, r.opts)
	if err != nil {
		return err
	}
	r.primary = f
	r.resolved = make(map[rune]*Glyph)
	events.Font.Loaded(name, len(data), false)
	return nil
}

// AddSubFont loads the secondary font consulted for characters the primary
// font lacks.
func (r *Renderer) AddSubFont(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read sub font %s: %w", path, err)
	}
	return r.addSub(path, data)
}

// AddSubFontFromBuffer loads the secondary font from memory.
func (r *Renderer) AddSubFontFromBuffer(data []byte) error {
	return r.addSub("buffer", data)
}

func (r *Renderer) addSub(name string, data []byte) error {
	f, err := newFace(name, data, r.opts)
	if err != nil {
		return err
	}
	r.sub = f
	r.resolved = make(map[rune]*Glyph)
	events.Font.Loaded(name, len(data), true)
	return nil
}

// Reset drops every cached glyph and atlas page and reparses both fonts from
// their retained buffers.
func (r *Renderer) Reset() error {
	if r.primary == nil {
		return ErrNotLoaded
	}
	primary, err := newFace(r.primary.name, r.primary.data, r.opts)
	if err != nil {
		return err
	}
	var sub *face
	if r.sub != nil {
		if sub, err = newFace(r.sub.name, r.sub.data, r.opts); err != nil {
			sub = nil
		}
	}
	r.primary, r.sub = primary, sub
	r.resolved = make(map[rune]*Glyph)
	return nil
}

// Deinit releases both fonts.
func (r *Renderer) Deinit() {
	r.primary, r.sub = nil, nil
	r.resolved = make(map[rune]*Glyph)
}

// Loaded reports whether a primary font is available.
func (r *Renderer) Loaded() bool { return r.primary != nil }

// Buffer returns the primary font bytes, or nil.
func (r *Renderer) Buffer() []byte {
	if r.primary == nil {
		return nil
	}
	return r.primary.data
}

// SetCodec selects the byte decoding used for every string.
func (r *Renderer) SetCodec(c textenc.Codec) {
	if c == nil {
		c = textenc.UTF8
	}
	r.opts.Codec = c
}

// Codec returns the active decoding.
func (r *Renderer) Codec() textenc.Codec { return r.opts.Codec }

// LineHeight returns the line advance at scale 1.
func (r *Renderer) LineHeight() int { return CharHeight }

// Pages returns the number of atlas pages the primary font has claimed.
func (r *Renderer) Pages() int {
	if r.primary == nil {
		return 0
	}
	return len(r.primary.pages)
}

// Rasterized returns how many bitmaps both fonts have rasterized.
func (r *Renderer) Rasterized() int {
	n := 0
	for _, f := range []*face{r.primary, r.sub} {
		if f != nil {
			n += f.rasters
		}
	}
	return n
}

// page returns the alpha texture of atlas page i of f.
func (r *Renderer) page(f *face, i int) *image.Alpha {
	if f == nil || i < 0 || i >= len(f.pages) {
		return nil
	}
	return f.pages[i].Pix
}

// Glyph resolves ch through the primary font, then the secondary font, then
// the primary font's placeholder. It returns nil when no font is loaded.
func (r *Renderer) Glyph(ch rune) *Glyph {
	g, _ := r.lookup(ch)
	return g
}

func (r *Renderer) lookup(ch rune) (*Glyph, *face) {
	if r.primary == nil {
		return nil, nil
	}
	if g, ok := r.resolved[ch]; ok {
		return g, r.owner(g)
	}
	var (
		g     *Glyph
		owner *face
	)
	if pg, ok := r.primary.glyph(ch); ok {
		g, owner = pg, r.primary
	} else if r.sub != nil {
		if sg, ok := r.sub.glyph(ch); ok {
			g, owner = sg, r.sub
		}
	}
	if g == nil {
		g, owner = r.primary.placeholder(), r.primary
		events.Font.MissingGlyph(ch)
	}
	r.resolved[ch] = g
	return g, owner
}

func (r *Renderer) owner(g *Glyph) *face {
	if r.sub != nil {
		if sg, ok := r.sub.glyphs[g.Rune]; ok && sg == g {
			return r.sub
		}
	}
	return r.primary
}

// GlyphWidth returns the advance of ch in pixels. When no font can supply a
// glyph it returns half the nominal character cell.
func (r *Renderer) GlyphWidth(ch rune) int {
	g := r.Glyph(ch)
	if g == nil {
		return CharWidth / 2
	}
	return g.AdvanceX
}

// StringWidth sums the glyph advances of s up to n bytes, stopping at the
// first decode failure. A negative n measures the whole string.
func (r *Renderer) StringWidth(s string, n int) int {
	runes, _ := textenc.Runes(r.opts.Codec, s, n)
	width := 0
	for _, ch := range runes {
		if ch == '\t' {
			width = nextTabStop(width, 1)
			continue
		}
		width += r.GlyphWidth(ch)
	}
	return width
}

// nextTabStop returns the pen offset of the tab stop after offset.
func nextTabStop(offset int, scale float64) int {
	cell := scaled(CharWidth*TabStops, scale)
	return (offset/cell + 1) * cell
}

// Print draws s with its top-left corner at x, y.
func (r *Renderer) Print(x, y int, scale float64, c color.NRGBA, s string) {
	r.PrintWithFeedback(x, y, scale, c, s)
}

// PrintWithFeedback draws s and returns the pen displacement. Newlines return
// the pen to x and advance one line; tabs move it to the next stop.
func (r *Renderer) PrintWithFeedback(x, y int, scale float64, c color.NRGBA, s string) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	lineHeight := scaled(CharHeight, scale)
	runes, _ := textenc.Runes(r.opts.Codec, s, -1)
	penX, penY := x, y
	for _, ch := range runes {
		if ch == '\n' {
			penX = x
			penY += lineHeight
			continue
		}
		if ch == '\t' {
			penX = x + nextTabStop(penX-x, scale)
			continue
		}
		g, owner := r.lookup(ch)
		if g == nil {
			penX += scaled(CharWidth/2, scale)
			continue
		}
		r.drawGlyph(owner, g, penX, penY, scale, c)
		penX += scaled(g.AdvanceX, scale)
	}
	return penX - x, penY - y
}

func (r *Renderer) drawGlyph(f *face, g *Glyph, x, y int, scale float64, c color.NRGBA) {
	if g.Blank || r.canvas == nil {
		return
	}
	ascent := CharHeight
	if f != nil {
		ascent = f.ascent
	}
	size := g.Size()
	origin := image.Pt(x+scaled(g.Left, scale), y+scaled(ascent-g.Top, scale))
	dst := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(scaled(size.X, scale), scaled(size.Y, scale)))}
	if g.Uncached {
		r.canvas.Line(dst.Min.X, dst.Min.Y, dst.Max.X, dst.Min.Y, c)
		r.canvas.Line(dst.Max.X, dst.Min.Y, dst.Max.X, dst.Max.Y, c)
		r.canvas.Line(dst.Max.X, dst.Max.Y, dst.Min.X, dst.Max.Y, c)
		r.canvas.Line(dst.Min.X, dst.Max.Y, dst.Min.X, dst.Min.Y, c)
		return
	}
	r.canvas.Sprite(dst, r.page(f, g.Page), g.Rect, c)
}

func scaled(v int, scale float64) int {
	if scale == 1 {
		return v
	}
	return int(math.Round(float64(v) * scale))
}
