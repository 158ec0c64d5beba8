// Package atlas packs rasterized glyph bitmaps into fixed-size alpha pages.
//
// Each page keeps two open shelves ("frontiers"). A rectangle is placed on the
// first shelf with enough remaining width and height; the lowest shelf may grow
// taller while nothing sits below it. When neither shelf fits, a new shelf is
// opened under the lowest one, replacing the fuller of the two. Placement is
// allocate-only: nothing is ever evicted from a page.
package atlas

import (
	"errors"
	"image"
)

// ErrFull reports that a page has no shelf with room for the request.
var ErrFull = errors.New("atlas: page full")

// Default page geometry.
const (
	DefaultWidth   = 512
	DefaultHeight  = 512
	DefaultPadding = 1
)

type frontier struct {
	x, y   int
	height int
	open   bool
}

// Page is one texture page. Pix is the backing alpha image glyph bitmaps are
// copied into.
type Page struct {
	Pix *image.Alpha

	padding   int
	frontiers [2]frontier
	bottom    int
	used      int
}

// NewPage creates an empty page. Non-positive dimensions use the defaults.
func NewPage(width, height, padding int) *Page {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if padding < 0 {
		padding = 0
	}
	return &Page{
		Pix:     image.NewAlpha(image.Rect(0, 0, width, height)),
		padding: padding,
	}
}

// Width returns the page width in pixels.
func (p *Page) Width() int { return p.Pix.Rect.Dx() }

// Height returns the page height in pixels.
func (p *Page) Height() int { return p.Pix.Rect.Dy() }

// Used returns the number of rectangles placed on the page.
func (p *Page) Used() int { return p.used }

// Alloc claims a width x height rectangle and returns its location on the
// page. Zero-area requests succeed without consuming space.
func (p *Page) Alloc(width, height int) (image.Rectangle, error) {
	if width <= 0 || height <= 0 {
		return image.Rectangle{}, nil
	}
	w, h := width+p.padding, height+p.padding
	pw, ph := p.Width(), p.Height()
	if width > pw || height > ph {
		return image.Rectangle{}, ErrFull
	}
	if w > pw {
		w = pw
	}
	if h > ph {
		h = ph
	}

	for i := range p.frontiers {
		f := &p.frontiers[i]
		if !f.open || f.x+w > pw {
			continue
		}
		if h <= f.height {
			return p.place(f, width, height, w), nil
		}
		if f.y+f.height == p.bottom && f.y+h <= ph {
			f.height = h
			p.bottom = f.y + h
			return p.place(f, width, height, w), nil
		}
	}

	if p.bottom+h > ph {
		return image.Rectangle{}, ErrFull
	}
	slot := p.replaceable()
	p.frontiers[slot] = frontier{y: p.bottom, height: h, open: true}
	p.bottom += h
	return p.place(&p.frontiers[slot], width, height, w), nil
}

func (p *Page) place(f *frontier, width, height, advance int) image.Rectangle {
	r := image.Rect(f.x, f.y, f.x+width, f.y+height)
	f.x += advance
	p.used++
	return r
}

// replaceable picks the shelf slot for a new shelf: a closed slot if any,
// otherwise the shelf with the least remaining width.
func (p *Page) replaceable() int {
	best, bestRoom := 0, -1
	for i, f := range p.frontiers {
		if !f.open {
			return i
		}
		room := p.Width() - f.x
		if bestRoom < 0 || room < bestRoom {
			best, bestRoom = i, room
		}
	}
	return best
}
