package pad

import "sync"

// Script replays a fixed sequence of held masks, one per poll, and reports
// no buttons once exhausted.
type Script struct {
	mu     sync.Mutex
	frames []Buttons
	polls  int
}

// NewScript creates a script from per-frame masks.
func NewScript(frames ...Buttons) *Script {
	return &Script{frames: append([]Buttons(nil), frames...)}
}

// Taps expands presses into press/release pairs so each one is a fresh edge.
func Taps(presses ...Buttons) []Buttons {
	out := make([]Buttons, 0, len(presses)*2)
	for _, b := range presses {
		out = append(out, b, 0)
	}
	return out
}

func (s *Script) Poll() Buttons {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.polls++
	if len(s.frames) == 0 {
		return 0
	}
	b := s.frames[0]
	s.frames = s.frames[1:]
	return b
}

// Append queues more frames.
func (s *Script) Append(frames ...Buttons) {
	s.mu.Lock()
	s.frames = append(s.frames, frames...)
	s.mu.Unlock()
}

// Polls returns how many times the script was polled.
func (s *Script) Polls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.polls
}

// Remaining returns the number of unplayed frames.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}
