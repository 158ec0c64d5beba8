package gfx

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// PresentFunc receives each finished frame. The image is reused for the next
// frame, so implementations must copy what they keep.
type PresentFunc func(frame *image.RGBA) error

// Framebuffer renders primitives into an in-memory RGBA image.
type Framebuffer struct {
	img     *image.RGBA
	present PresentFunc
}

// NewFramebuffer creates a width x height framebuffer. present may be nil.
func NewFramebuffer(width, height int, present PresentFunc) *Framebuffer {
	return &Framebuffer{
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		present: present,
	}
}

// Image exposes the current frame contents.
func (f *Framebuffer) Image() *image.RGBA { return f.img }

func (f *Framebuffer) Bounds() image.Rectangle { return f.img.Rect }

func (f *Framebuffer) Clear(c color.NRGBA) {
	xdraw.Draw(f.img, f.img.Rect, image.NewUniform(c), image.Point{}, xdraw.Src)
}

func (f *Framebuffer) FillRect(r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(f.img.Rect)
	if r.Empty() {
		return
	}
	xdraw.Draw(f.img, r, image.NewUniform(c), image.Point{}, xdraw.Over)
}

// Line draws a one-pixel line with a DDA walk.
func (f *Framebuffer) Line(x0, y0, x1, y1 int, c color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		f.FillRect(image.Rect(x0, y0, x0+1, y0+1), c)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + (dx*i+sign(dx)*steps/2)/steps
		y := y0 + (dy*i+sign(dy)*steps/2)/steps
		f.FillRect(image.Rect(x, y, x+1, y+1), c)
	}
}

func (f *Framebuffer) Sprite(dst image.Rectangle, tex *image.Alpha, src image.Rectangle, c color.NRGBA) {
	if tex == nil || dst.Empty() || src.Empty() {
		return
	}
	mask := image.Image(tex)
	mp := src.Min
	if dst.Size() != src.Size() {
		scaled := image.NewAlpha(image.Rect(0, 0, dst.Dx(), dst.Dy()))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Rect, tex, src, xdraw.Src, nil)
		mask, mp = scaled, image.Point{}
	}
	xdraw.DrawMask(f.img, dst, image.NewUniform(c), image.Point{}, mask, mp, xdraw.Over)
}

// Icon draws a button glyph as a dark plate with a coloured symbol.
func (f *Framebuffer) Icon(kind Icon, at image.Point) {
	size := IconSize(kind)
	r := image.Rectangle{Min: at, Max: at.Add(size)}
	f.FillRect(r, RGBA(0x20, 0x20, 0x20, 0xff))
	in := r.Inset(5)
	switch kind {
	case IconCross:
		f.Line(in.Min.X, in.Min.Y, in.Max.X, in.Max.Y, RGBA(0x7c, 0xb2, 0xe8, 0xff))
		f.Line(in.Min.X, in.Max.Y, in.Max.X, in.Min.Y, RGBA(0x7c, 0xb2, 0xe8, 0xff))
	case IconCircle:
		f.outline(in, RGBA(0xff, 0x6f, 0x6f, 0xff))
	case IconSquare:
		f.outline(in, RGBA(0xff, 0x9c, 0xe6, 0xff))
	case IconTriangle:
		c := RGBA(0x40, 0xe2, 0xa0, 0xff)
		mid := (in.Min.X + in.Max.X) / 2
		f.Line(mid, in.Min.Y, in.Min.X, in.Max.Y, c)
		f.Line(mid, in.Min.Y, in.Max.X, in.Max.Y, c)
		f.Line(in.Min.X, in.Max.Y, in.Max.X, in.Max.Y, c)
	default:
		f.FillRect(in, RGBA(0xc0, 0xc0, 0xc0, 0xff))
	}
}

func (f *Framebuffer) outline(r image.Rectangle, c color.NRGBA) {
	f.Line(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y, c)
	f.Line(r.Max.X, r.Min.Y, r.Max.X, r.Max.Y, c)
	f.Line(r.Max.X, r.Max.Y, r.Min.X, r.Max.Y, c)
	f.Line(r.Min.X, r.Max.Y, r.Min.X, r.Min.Y, c)
}

func (f *Framebuffer) Flip() error {
	if f.present == nil {
		return nil
	}
	return f.present(f.img)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
