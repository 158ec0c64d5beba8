// Package gfx defines the drawing primitives the menu engine renders through.
// The engine treats the backend as opaque; Framebuffer is a software
// implementation and Recorder captures primitives for tests.
package gfx

import (
	"errors"
	"image"
	"image/color"
)

// ErrClosed is returned by Flip once the presenter has gone away.
var ErrClosed = errors.New("gfx: backend closed")

// Icon identifies a button glyph from the pad layout sheet.
type Icon int

const (
	IconCross Icon = iota
	IconCircle
	IconSquare
	IconTriangle
	IconL1
	IconR1
	IconL2
	IconR2
	IconStart
	IconSelect
	IconLeft
	IconRight
	IconUp
	IconDown
	iconCount
)

var iconNames = [...]string{
	"cross", "circle", "square", "triangle",
	"l1", "r1", "l2", "r2", "start", "select",
	"left", "right", "up", "down",
}

func (i Icon) String() string {
	if i < 0 || i >= iconCount {
		return "unknown"
	}
	return iconNames[i]
}

// iconSizes mirrors the cell sizes on the pad layout sheet.
var iconSizes = [iconCount]image.Point{
	IconCross: {22, 22}, IconCircle: {22, 22}, IconSquare: {22, 22}, IconTriangle: {22, 22},
	IconL1: {28, 20}, IconR1: {28, 20}, IconL2: {28, 20}, IconR2: {28, 20},
	IconStart: {29, 19}, IconSelect: {28, 19},
	IconLeft: {26, 26}, IconRight: {26, 26}, IconUp: {26, 26}, IconDown: {26, 26},
}

// IconSize returns the drawn size of an icon.
func IconSize(i Icon) image.Point {
	if i < 0 || i >= iconCount {
		return image.Point{22, 22}
	}
	return iconSizes[i]
}

// Backend is the set of primitives a frame is built from.
type Backend interface {
	Bounds() image.Rectangle
	Clear(c color.NRGBA)
	FillRect(r image.Rectangle, c color.NRGBA)
	Line(x0, y0, x1, y1 int, c color.NRGBA)
	// Sprite blits the src region of an alpha texture into dst, tinted with
	// c. Differing sizes scale the texture.
	Sprite(dst image.Rectangle, tex *image.Alpha, src image.Rectangle, c color.NRGBA)
	Icon(kind Icon, at image.Point)
	// Flip waits for vertical sync and presents the frame.
	Flip() error
}

// RGBA builds a non-premultiplied colour.
func RGBA(r, g, b, a uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
