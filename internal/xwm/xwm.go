// Package xwm drives an X connection with an Elm style model: events come in
// as messages, the model updates itself, and the result is rendered back to
// the display server.
package xwm

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jezek/xgb"
)

// ErrConnClosed is returned by [ReceiveEvents] when the X server hangs up.
var ErrConnClosed = errors.New("x connection closed")

// Msg is data from the result of an IO operation. Msgs trigger the update
// function and, henceforth, the render.
type Msg any

// QuitMsg ends the event loop cleanly.
type QuitMsg struct{}

// ErrorMsg ends the event loop with an error.
type ErrorMsg struct {
	Err error
}

// Cmd is a side effect requested by an update. Nil means no effect.
type Cmd func() Msg

// Quit is the Cmd that ends the event loop.
var Quit Cmd = func() Msg { return QuitMsg{} }

// Error is the Cmd that ends the event loop with err.
func Error(err error) Cmd {
	return func() Msg { return ErrorMsg{Err: err} }
}

type Model interface {
	// Init is called once before the first event.
	Init(ctx context.Context, conn *xgb.Conn) (Model, Cmd)

	// Update is called when a message is received. Use it to inspect
	// messages and, in response, update the model.
	Update(ctx context.Context, conn *xgb.Conn, msg Msg) (Model, Cmd)

	// Render pushes the model's current state to the display server. It is
	// called after every update.
	Render(ctx context.Context, conn *xgb.Conn) error
}

// ReceiveEvents forwards X events to msgC until the connection closes or ctx
// is done. The connection closing is forwarded as an [ErrorMsg] so the event
// loop shuts down. Protocol level errors are logged and skipped; they are
// responses to unchecked requests, not reasons to stop.
func ReceiveEvents(ctx context.Context, conn *xgb.Conn, msgC chan<- Msg) error {
	for {
		ev, err := conn.WaitForEvent()
		if ev == nil && err == nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case msgC <- ErrorMsg{Err: ErrConnClosed}:
			}
			return ErrConnClosed
		}
		if err != nil {
			slog.Error("Failed to read X event", "error", err)
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case msgC <- ev:
		}
	}
}

// Run feeds messages from msgC through the model until a [QuitMsg], an
// [ErrorMsg], or context cancellation.
func Run(ctx context.Context, conn *xgb.Conn, model Model, msgC <-chan Msg) error {
	model, cmd := model.Init(ctx, conn)
	if done, err := execute(ctx, conn, &model, &cmd); done {
		return err
	}
	if err := model.Render(ctx, conn); err != nil {
		slog.Error("Failed to render", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-msgC:
			model, cmd = model.Update(ctx, conn, msg)
			if done, err := execute(ctx, conn, &model, &cmd); done {
				return err
			}

			if err := model.Render(ctx, conn); err != nil {
				slog.Error("Failed to render", "error", err)
			}
		}
	}
}

// execute runs pending commands, feeding their messages back into the model.
// It reports whether the loop should stop.
func execute(ctx context.Context, conn *xgb.Conn, model *Model, cmd *Cmd) (bool, error) {
	for *cmd != nil {
		switch msg := (*cmd)().(type) {
		case QuitMsg:
			return true, nil
		case ErrorMsg:
			return true, msg.Err
		default:
			*model, *cmd = (*model).Update(ctx, conn, msg)
		}
	}
	return false, nil
}
