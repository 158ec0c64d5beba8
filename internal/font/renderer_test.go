package font

import (
	"errors"
	"testing"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/gfx"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var white = gfx.RGBA(0xff, 0xff, 0xff, 0xff)

func newTestRenderer(t *testing.T, opts Options) (*Renderer, *gfx.Recorder) {
	t.Helper()
	rec := gfx.NewRecorder(640, 448)
	r := NewRenderer(rec, opts)
	if err := r.InitFromBuffer(goregular.TTF); err != nil {
		t.Fatalf("init from buffer: %v", err)
	}
	return r, rec
}

func TestGlyphCacheHit(t *testing.T) {
	r, _ := newTestRenderer(t, Options{})
	first := r.Glyph('A')
	if first == nil || first.Uncached || first.Blank {
		t.Fatalf("expected cached bitmap for A, got %+v", first)
	}
	rasters := r.Rasterized()
	second := r.Glyph('A')
	if first != second {
		t.Fatalf("expected identical glyph reference on second lookup")
	}
	if r.Rasterized() != rasters {
		t.Fatalf("expected no re-rasterization, got %d -> %d", rasters, r.Rasterized())
	}
	if r.Pages() != 1 {
		t.Fatalf("expected one atlas page, got %d", r.Pages())
	}
}

func TestAtlasExhaustionFallsBackToPlaceholderBox(t *testing.T) {
	r, rec := newTestRenderer(t, Options{AtlasWidth: 24, AtlasHeight: 24, MaxAtlases: 1})
	var overflow *Glyph
	for _, ch := range "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789" {
		if g := r.Glyph(ch); g.Uncached && overflow == nil {
			overflow = g
		}
	}
	if overflow == nil {
		t.Fatalf("expected a glyph to overflow the atlas budget")
	}
	if r.Pages() != 1 {
		t.Fatalf("expected page budget of 1 to hold, got %d", r.Pages())
	}
	if r.GlyphWidth(overflow.Rune) <= 0 {
		t.Fatalf("expected overflowed glyph to keep its advance")
	}
	r.Print(0, 0, 1, white, string(overflow.Rune))
	if gfx.Count(rec.Ops, gfx.OpLine) != 4 || gfx.Count(rec.Ops, gfx.OpSprite) != 0 {
		t.Fatalf("expected missing-glyph box, got %v", rec.Ops)
	}
}

func TestStringWidthSumsGlyphWidths(t *testing.T) {
	r, _ := newTestRenderer(t, Options{})
	s := "Hello, wörld"
	sum := 0
	for _, ch := range s {
		sum += r.GlyphWidth(ch)
	}
	if got := r.StringWidth(s, len(s)); got != sum {
		t.Fatalf("expected width %d, got %d", sum, got)
	}
	if got, want := r.StringWidth(s, 5), r.StringWidth("Hello", -1); got != want {
		t.Fatalf("expected prefix width %d, got %d", want, got)
	}
}

func TestStringWidthStopsAtDecodeFailure(t *testing.T) {
	r, _ := newTestRenderer(t, Options{})
	if got, want := r.StringWidth("ab\xffcd", -1), r.StringWidth("ab", -1); got != want {
		t.Fatalf("expected measurement to stop at invalid byte: %d vs %d", got, want)
	}
}

func TestGlyphWidthWithoutFont(t *testing.T) {
	r := NewRenderer(nil, Options{})
	if got := r.GlyphWidth('x'); got != CharWidth/2 {
		t.Fatalf("expected half-cell fallback %d, got %d", CharWidth/2, got)
	}
	if r.Glyph('x') != nil {
		t.Fatalf("expected nil glyph without a font")
	}
}

func TestMissingGlyphUsesPlaceholder(t *testing.T) {
	r, _ := newTestRenderer(t, Options{})
	a := r.Glyph('あ')
	if a == nil || !a.Placeholder {
		t.Fatalf("expected placeholder for uncovered character, got %+v", a)
	}
	if r.Glyph('い') != a {
		t.Fatalf("expected uncovered characters to share the placeholder")
	}
}

func TestSpaceIsBlank(t *testing.T) {
	r, rec := newTestRenderer(t, Options{})
	g := r.Glyph(' ')
	if !g.Blank || g.AdvanceX <= 0 {
		t.Fatalf("expected blank glyph with advance, got %+v", g)
	}
	r.Print(0, 0, 1, white, "   ")
	if len(rec.Ops) != 0 {
		t.Fatalf("expected spaces to draw nothing, got %v", rec.Ops)
	}
}

func TestPrintWithFeedbackNewline(t *testing.T) {
	r, rec := newTestRenderer(t, Options{})
	dx, dy := r.PrintWithFeedback(10, 20, 1, white, "ab\ncd")
	if dy != CharHeight {
		t.Fatalf("expected one line advance, got %d", dy)
	}
	if want := r.GlyphWidth('c') + r.GlyphWidth('d'); dx != want {
		t.Fatalf("expected x advance %d, got %d", want, dx)
	}
	if n := gfx.Count(rec.Ops, gfx.OpSprite); n != 4 {
		t.Fatalf("expected 4 sprites, got %d", n)
	}
	if rec.Ops[2].Rect.Min.X >= rec.Ops[1].Rect.Min.X {
		t.Fatalf("expected newline to return pen to column start")
	}

	_, dy = r.PrintWithFeedback(0, 0, 2, white, "a\nb")
	if dy != 2*CharHeight {
		t.Fatalf("expected scaled line advance, got %d", dy)
	}
}

func TestTabAdvancesToNextStop(t *testing.T) {
	r, rec := newTestRenderer(t, Options{})
	stop := CharWidth * TabStops
	dx, _ := r.PrintWithFeedback(10, 20, 1, white, "ab\t")
	if dx != stop {
		t.Fatalf("expected pen at first stop %d, got %d", stop, dx)
	}
	if n := gfx.Count(rec.Ops, gfx.OpSprite); n != 2 {
		t.Fatalf("expected tab to draw nothing, got %d sprites", n)
	}
	if dx, _ := r.PrintWithFeedback(0, 0, 1, white, "\t\t"); dx != 2*stop {
		t.Fatalf("expected two stops %d, got %d", 2*stop, dx)
	}
	if w := r.StringWidth("ab\tc", -1); w != stop+r.GlyphWidth('c') {
		t.Fatalf("expected measured width %d, got %d", stop+r.GlyphWidth('c'), w)
	}
}

func TestInitErrorsAndReset(t *testing.T) {
	r := NewRenderer(nil, Options{})
	if err := r.Init("/nonexistent/font.ttf"); err == nil {
		t.Fatalf("expected error for missing font file")
	}
	if err := r.InitFromBuffer(nil); !errors.Is(err, ErrNoFace) {
		t.Fatalf("expected ErrNoFace, got %v", err)
	}
	if err := r.InitFromBuffer([]byte("not a font")); !errors.Is(err, ErrBadFont) {
		t.Fatalf("expected ErrBadFont, got %v", err)
	}
	if err := r.Reset(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded before init, got %v", err)
	}
	if err := r.InitFromBuffer(goregular.TTF); err != nil {
		t.Fatalf("init: %v", err)
	}
	r.Glyph('Q')
	if r.Pages() != 1 {
		t.Fatalf("expected a page after rasterizing")
	}
	if err := r.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if r.Pages() != 0 || r.Rasterized() != 0 {
		t.Fatalf("expected reset to drop atlases, got %d pages", r.Pages())
	}
	if !r.Loaded() {
		t.Fatalf("expected font to stay loaded after reset")
	}
	r.Deinit()
	if r.Loaded() {
		t.Fatalf("expected deinit to unload")
	}
}

func TestSubFontLoads(t *testing.T) {
	r, _ := newTestRenderer(t, Options{})
	if err := r.AddSubFontFromBuffer(gomono.TTF); err != nil {
		t.Fatalf("add sub font: %v", err)
	}
	if err := r.AddSubFont("/nonexistent/sub.ttf"); err == nil {
		t.Fatalf("expected missing sub font to fail")
	}
	if g := r.Glyph('A'); g == nil || g.Placeholder {
		t.Fatalf("expected primary glyph, got %+v", g)
	}
}
