package term

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/theme"
)

// chromeRows is the space under the frame: the status and key lines.
const chromeRows = 2

type doneMsg struct {
	err error
}

// Done tells the model the UI goroutine has returned.
func Done(err error) tea.Msg { return doneMsg{err: err} }

type msgHandler func(tea.Msg) tea.Cmd

// Model shows presented frames and feeds key presses to the pad.
type Model struct {
	keys      KeyMap
	pad       *KeyPad
	presenter *Presenter
	styles    *theme.Styles
	help      help.Model
	cancel    context.CancelFunc
	title     string

	frame      string
	frameIndex uint64
	width      int
	height     int
	err        error
	finished   bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the model to its pad and presenter. cancel stops the UI
// goroutine when the user quits.
func NewModel(title string, keys KeyMap, kp *KeyPad, p *Presenter, cancel context.CancelFunc) *Model {
	if cancel == nil {
		cancel = func() {}
	}
	m := &Model{
		keys:      keys,
		pad:       kp,
		presenter: p,
		styles:    theme.Default(),
		help:      help.New(),
		cancel:    cancel,
		title:     title,
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd { return nil }

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
		reflect.TypeOf(doneMsg{}):           m.handleDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(km, m.keys.Quit) {
		m.cancel()
		return tea.Quit
	}
	b := m.keys.Button(km)
	if b == 0 {
		return nil
	}
	traceKey(km.String(), b)
	if m.pad != nil {
		m.pad.Press(b)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width, m.height = resize.Width, resize.Height
	m.help.Width = resize.Width
	if m.presenter != nil {
		m.presenter.ResizeWindow(resize.Width, resize.Height)
	}
	return nil
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	f, ok := msg.(frameMsg)
	if !ok {
		return nil
	}
	// frames can be delivered out of order around a quit
	if f.index < m.frameIndex {
		return nil
	}
	m.frame, m.frameIndex = f.view, f.index
	return nil
}

func (m *Model) handleDoneMsg(msg tea.Msg) tea.Cmd {
	d, ok := msg.(doneMsg)
	if !ok {
		return nil
	}
	m.err = d.err
	m.finished = true
	return tea.Quit
}

// Err returns the error the UI goroutine ended with.
func (m *Model) Err() error { return m.err }

// Finished reports whether the UI goroutine has returned.
func (m *Model) Finished() bool { return m.finished }

// View renders the last frame with the status and key lines under it.
func (m *Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.frame)
	if m.frame != "" {
		sb.WriteByte('\n')
	}
	sb.WriteString(m.statusLine())
	sb.WriteByte('\n')
	sb.WriteString(m.styles.Keys.Render(m.help.ShortHelpView(m.keys.Help())))
	return sb.String()
}

func (m *Model) statusLine() string {
	style := m.styles.Status
	var text string
	switch {
	case m.err != nil:
		style = m.styles.StatusError
		text = fmt.Sprintf("%s: %v", m.title, m.err)
	default:
		text = fmt.Sprintf("%s · frame %d", m.title, m.frameIndex)
		if m.pad != nil {
			if last := m.pad.Last(); last != 0 {
				text += " · " + last.String()
			}
		}
	}
	if m.width > 1 {
		text = truncate.StringWithTail(text, uint(m.width-1), "…")
	}
	return style.Render(text)
}
