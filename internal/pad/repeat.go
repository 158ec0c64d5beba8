package pad

// Default typematic timings, in frames.
const (
	DefaultRepeatDelay = 20
	DefaultRepeatRate  = 4
)

// Frame is the per-frame view of the pad after edge detection.
type Frame struct {
	// Held is the raw mask returned by the source.
	Held Buttons
	// Pressed holds buttons that went down this frame.
	Pressed Buttons
	// Repeat is Pressed plus auto-repeat pulses for held directions.
	Repeat Buttons
}

// Repeater turns raw held masks into edge and typematic events. Directions
// repeat after Delay frames, then every Rate frames. Changing the held
// directions restarts both timers.
type Repeater struct {
	Delay int
	Rate  int

	prev Buttons
	held int
}

// NewRepeater creates a repeater; non-positive values use the defaults.
func NewRepeater(delay, rate int) *Repeater {
	if delay <= 0 {
		delay = DefaultRepeatDelay
	}
	if rate <= 0 {
		rate = DefaultRepeatRate
	}
	return &Repeater{Delay: delay, Rate: rate}
}

// Update consumes one polled mask.
func (r *Repeater) Update(held Buttons) Frame {
	edge := held &^ r.prev
	dirs := held & Directions
	if dirs != r.prev&Directions {
		r.held = 0
	} else if dirs != 0 {
		r.held++
	}
	r.prev = held

	var repeat Buttons
	if dirs != 0 && r.held >= r.Delay && (r.held-r.Delay)%r.Rate == 0 {
		repeat = dirs
	}
	return Frame{Held: held, Pressed: edge, Repeat: edge | repeat}
}

// Reset forgets the previous mask so currently held buttons count as new
// presses on the next update.
func (r *Repeater) Reset() {
	r.prev = 0
	r.held = 0
}

// Sync records held as already down without producing edges, so a button
// still held from a previous screen does not trigger the next one.
func (r *Repeater) Sync(held Buttons) {
	r.prev = held
	r.held = 0
}
