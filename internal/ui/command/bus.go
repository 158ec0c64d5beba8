package command

import (
	"context"
	"fmt"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/logging/events"
)

// Handler performs one operation.
type Handler func(ctx context.Context) error

// Request encapsulates an operation invocation.
type Request struct {
	ID      string
	Label   string
	Handler Handler
}

// Bus runs installer operations and traces their lifecycle.
type Bus struct {
	history []string
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute runs req synchronously. A request without a handler is skipped.
// Handler errors are traced and returned wrapped with the request id.
func (b *Bus) Execute(ctx context.Context, req Request) error {
	events.Command.Queue(req.ID, req.Label)
	if req.Handler == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	b.history = append(b.history, req.ID)
	if err := req.Handler(ctx); err != nil {
		events.Command.Error(req.ID, err)
		return fmt.Errorf("%s: %w", req.ID, err)
	}
	events.Command.Result(req.ID, req.Label, "ok")
	return nil
}

// History returns the ids of executed requests, oldest first.
func (b *Bus) History() []string {
	return append([]string(nil), b.history...)
}
