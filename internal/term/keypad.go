package term

import (
	"sync"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/logging/events"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/pad"
)

// DefaultHoldFrames is how long a key press keeps its button down. Terminal
// auto-repeat refreshes the latch while a key stays pressed.
const DefaultHoldFrames = 6

// KeyPad is a pad.Source fed by terminal key events. Terminals report no
// key-up, so every press latches its button for a number of polls.
type KeyPad struct {
	hold int

	mu     sync.Mutex
	latch  map[pad.Buttons]int
	last   pad.Buttons
	polled uint64
}

// NewKeyPad creates a pad that holds each press for hold polls.
func NewKeyPad(hold int) *KeyPad {
	if hold <= 0 {
		hold = DefaultHoldFrames
	}
	return &KeyPad{hold: hold, latch: make(map[pad.Buttons]int)}
}

// Press latches b. Pressing a latched button again extends the latch.
func (k *KeyPad) Press(b pad.Buttons) {
	if b == 0 {
		return
	}
	k.mu.Lock()
	k.latch[b] = k.hold
	k.last = b
	k.mu.Unlock()
}

// Poll returns the latched buttons and ages each latch by one poll.
func (k *KeyPad) Poll() pad.Buttons {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.polled++
	var held pad.Buttons
	for b, n := range k.latch {
		held |= b
		if n <= 1 {
			delete(k.latch, b)
		} else {
			k.latch[b] = n - 1
		}
	}
	return held
}

// Last returns the most recently pressed button.
func (k *KeyPad) Last() pad.Buttons {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.last
}

// Polls returns how often the pad was polled.
func (k *KeyPad) Polls() uint64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.polled
}

func traceKey(name string, b pad.Buttons) {
	events.Input.Key(name, b.String())
}
