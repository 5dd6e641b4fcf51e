package layout

import (
	"github.com/ktsine/x-tilewm/internal/geometry"
	"github.com/ktsine/x-tilewm/internal/stack"
)

// Monocle gives the full screen to the focused client. Every other client
// receives no placement; the event loop is expected to hide them. Monocle is
// stateless and ignores all messages.
type Monocle struct{}

func (Monocle) Name() string {
	return "Mono"
}

func (Monocle) Clone() Layout {
	return Monocle{}
}

func (Monocle) Layout(s *stack.Stack[Client], r geometry.Rect) (Layout, []Placement) {
	focus, ok := s.Focused()
	if !ok {
		return nil, nil
	}
	return nil, []Placement{{Client: focus, Rect: r}}
}

func (Monocle) HandleMessage(Message) Layout {
	return nil
}
