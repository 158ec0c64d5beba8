package gfx

import (
	"fmt"
	"image"
	"image/color"
)

// OpKind names a recorded primitive.
type OpKind string

const (
	OpClear  OpKind = "clear"
	OpFill   OpKind = "fill"
	OpLine   OpKind = "line"
	OpSprite OpKind = "sprite"
	OpIcon   OpKind = "icon"
)

// Op is one recorded primitive.
type Op struct {
	Kind  OpKind
	Rect  image.Rectangle
	Src   image.Rectangle
	Color color.NRGBA
	Icon  Icon
}

func (o Op) String() string {
	switch o.Kind {
	case OpIcon:
		return fmt.Sprintf("%s %s %v", o.Kind, o.Icon, o.Rect.Min)
	case OpSprite:
		return fmt.Sprintf("%s %v<-%v %v", o.Kind, o.Rect, o.Src, o.Color)
	default:
		return fmt.Sprintf("%s %v %v", o.Kind, o.Rect, o.Color)
	}
}

// Recorder is a Backend that records primitives instead of drawing them.
// Ops holds the primitives of the frame in progress; Frames holds every
// flipped frame.
type Recorder struct {
	Width, Height int
	Ops           []Op
	Frames        [][]Op
	// OnFlip runs after each flip with the number of flipped frames. A
	// non-nil error is returned from Flip.
	OnFlip func(frames int) error
}

// NewRecorder creates a recorder with the given screen size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Bounds() image.Rectangle { return image.Rect(0, 0, r.Width, r.Height) }

func (r *Recorder) Clear(c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Rect: r.Bounds(), Color: c})
}

func (r *Recorder) FillRect(rect image.Rectangle, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Rect: rect, Color: c})
}

func (r *Recorder) Line(x0, y0, x1, y1 int, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Rect: image.Rect(x0, y0, x1, y1), Color: c})
}

func (r *Recorder) Sprite(dst image.Rectangle, _ *image.Alpha, src image.Rectangle, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpSprite, Rect: dst, Src: src, Color: c})
}

func (r *Recorder) Icon(kind Icon, at image.Point) {
	r.Ops = append(r.Ops, Op{Kind: OpIcon, Rect: image.Rectangle{Min: at, Max: at.Add(IconSize(kind))}, Icon: kind})
}

func (r *Recorder) Flip() error {
	r.Frames = append(r.Frames, r.Ops)
	r.Ops = nil
	if r.OnFlip != nil {
		return r.OnFlip(len(r.Frames))
	}
	return nil
}

// Last returns the most recently flipped frame.
func (r *Recorder) Last() []Op {
	if len(r.Frames) == 0 {
		return nil
	}
	return r.Frames[len(r.Frames)-1]
}

// Count returns how many ops of kind the frame holds.
func Count(frame []Op, kind OpKind) int {
	n := 0
	for _, op := range frame {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
