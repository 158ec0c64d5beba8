package font

import (
	"fmt"
	"image"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/atlas"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/logging/events"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Glyph is the cached bitmap location and metrics of one character.
type Glyph struct {
	Rune rune
	// Page is the atlas page holding the bitmap; Rect is its location there.
	Page int
	Rect image.Rectangle
	// Left and Top are the bearing from the pen position on the baseline.
	Left, Top int
	AdvanceX  int
	AdvanceY  int
	// Blank glyphs (spaces) have metrics but no bitmap.
	Blank bool
	// Uncached glyphs did not fit in any atlas page and draw as a
	// missing-glyph box.
	Uncached bool
	// Placeholder is set when the face has no glyph for Rune and the
	// notdef glyph stands in.
	Placeholder bool
}

// Size returns the bitmap size.
func (g *Glyph) Size() image.Point { return g.Rect.Size() }

// face is one parsed font with its own atlas pages and glyph cache.
type face struct {
	name    string
	data    []byte
	font    *opentype.Font
	buf     sfnt.Buffer
	ppem    fixed.Int26_6
	ascent  int
	opts    Options
	pages   []*atlas.Page
	glyphs  map[rune]*Glyph
	notdef  *Glyph
	rasters int
}

func newFace(name string, data []byte, opts Options) (*face, error) {
	if len(data) == 0 {
		return nil, ErrNoFace
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFont, err)
	}
	f := &face{
		name:   name,
		data:   data,
		font:   parsed,
		ppem:   fixed.I(opts.Size),
		opts:   opts,
		glyphs: make(map[rune]*Glyph),
	}
	m, err := parsed.Metrics(&f.buf, f.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFont, err)
	}
	f.ascent = m.Ascent.Ceil()
	return f, nil
}

func (f *face) index(r rune) sfnt.GlyphIndex {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return idx
}

// glyph returns the cached glyph for r, rasterizing it on first use. It
// reports false when the face has no glyph for r.
func (f *face) glyph(r rune) (*Glyph, bool) {
	if g, ok := f.glyphs[r]; ok {
		return g, true
	}
	idx := f.index(r)
	if idx == 0 {
		return nil, false
	}
	g := f.rasterize(r, idx)
	f.glyphs[r] = g
	return g, true
}

// placeholder returns the face's notdef glyph standing in for r.
func (f *face) placeholder() *Glyph {
	if f.notdef == nil {
		f.notdef = f.rasterize(0, 0)
		f.notdef.Placeholder = true
	}
	return f.notdef
}

func (f *face) rasterize(r rune, idx sfnt.GlyphIndex) *Glyph {
	f.rasters++
	g := &Glyph{Rune: r, Page: -1}
	if adv, err := f.font.GlyphAdvance(&f.buf, idx, f.ppem, font.HintingNone); err == nil {
		g.AdvanceX = adv.Round()
	}
	segs, err := f.font.LoadGlyph(&f.buf, idx, f.ppem, nil)
	if err != nil {
		g.Blank = true
		return g
	}
	b := segs.Bounds()
	minX, minY := b.Min.X.Floor(), b.Min.Y.Floor()
	w, h := b.Max.X.Ceil()-minX, b.Max.Y.Ceil()-minY
	g.Left, g.Top = minX, -minY
	if w <= 0 || h <= 0 {
		g.Blank = true
		return g
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z := vector.NewRasterizer(w, h)
	ox, oy := float32(-minX), float32(-minY)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 + ox, float32(p.Y)/64 + oy
	}
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			z.MoveTo(pt(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			z.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			dx, dy := pt(s.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	z.Draw(mask, mask.Rect, image.Opaque, image.Point{})

	page, rect, err := f.store(w, h)
	if err != nil {
		g.Uncached = true
		g.Rect = image.Rect(0, 0, w, h)
		events.Font.AtlasFull(f.name, r, len(f.pages))
		return g
	}
	xdraw.Draw(f.pages[page].Pix, rect, mask, image.Point{}, xdraw.Src)
	g.Page, g.Rect = page, rect
	return g
}

// store claims space on the first page with room, opening a new page while
// under the page budget.
func (f *face) store(w, h int) (int, image.Rectangle, error) {
	for i, p := range f.pages {
		if r, err := p.Alloc(w, h); err == nil {
			return i, r, nil
		}
	}
	if len(f.pages) >= f.opts.MaxAtlases {
		return -1, image.Rectangle{}, atlas.ErrFull
	}
	p := atlas.NewPage(f.opts.AtlasWidth, f.opts.AtlasHeight, atlas.DefaultPadding)
	r, err := p.Alloc(w, h)
	if err != nil {
		return -1, image.Rectangle{}, err
	}
	f.pages = append(f.pages, p)
	events.Font.AtlasPage(f.name, len(f.pages))
	return len(f.pages) - 1, r, nil
}
