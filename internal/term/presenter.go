package term

import (
	"errors"
	"image"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/backend"
)

// ErrClosed is returned by Present once the program has gone away.
var ErrClosed = errors.New("term: presenter closed")

type frameMsg struct {
	view  string
	index uint64
}

// Presenter turns framebuffer flips into program messages. Present runs on
// the UI goroutine: it waits for the next frame slot, renders the frame at
// the size the model last reported and sends it to the program.
type Presenter struct {
	throttle *backend.Throttle

	mu     sync.Mutex
	send   func(tea.Msg)
	cols   int
	rows   int
	closed bool

	frames atomic.Uint64
}

// NewPresenter paces Present to fps frames a second.
func NewPresenter(fps int) *Presenter {
	return &Presenter{throttle: backend.ForRate(fps)}
}

// Attach sets where frames go, normally tea.Program.Send.
func (p *Presenter) Attach(send func(tea.Msg)) {
	p.mu.Lock()
	p.send = send
	p.mu.Unlock()
}

// Resize sets the cell grid frames are rendered onto.
func (p *Presenter) Resize(cols, rows int) {
	p.mu.Lock()
	p.cols, p.rows = cols, rows
	p.mu.Unlock()
}

// ResizeWindow sizes the grid for a width by height terminal, leaving the
// chrome rows under the frame.
func (p *Presenter) ResizeWindow(width, height int) {
	p.Resize(width, height-chromeRows)
}

// Close makes every later Present fail with ErrClosed.
func (p *Presenter) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}

// Frames returns how many frames were presented.
func (p *Presenter) Frames() uint64 { return p.frames.Load() }

// Present is a gfx.PresentFunc.
func (p *Presenter) Present(frame *image.RGBA) error {
	p.throttle.Wait()
	p.mu.Lock()
	closed, send, cols, rows := p.closed, p.send, p.cols, p.rows
	p.mu.Unlock()
	if closed {
		return ErrClosed
	}
	n := p.frames.Add(1)
	if send == nil || cols <= 0 || rows <= 0 {
		return nil
	}
	fc, fr := Fit(frame.Bounds(), cols, rows)
	send(frameMsg{view: Render(frame, fc, fr), index: n})
	return nil
}
