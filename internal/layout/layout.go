// Package layout implements the tiling algorithms and the message protocol
// used to reconfigure them at runtime.
//
// A [Layout] computes a [Placement] for every client in a workspace stack.
// Both Layout and HandleMessage may return a replacement Layout: the caller
// takes sole ownership of the returned value and must use it in place of the
// receiver from then on. Built-in leaf layouts never replace themselves
// during placement; wrapping layouts such as [Gaps] use replacement to
// unwrap.
package layout

import (
	"github.com/ktsine/x-tilewm/internal/geometry"
	"github.com/ktsine/x-tilewm/internal/stack"
)

// Client is an opaque reference to a window known to the display server.
// Layouts never create, destroy, or reinterpret clients; they only tag
// rectangles with them.
type Client uint32

// Placement assigns one screen rectangle to one client.
type Placement struct {
	Client Client
	Rect   geometry.Rect
}

// Message is a command routed to a layout to change its state. The set of
// message kinds is open: any package may define new kinds, and layouts ignore
// kinds they do not recognize. Dispatch is by type assertion with a
// fall-through to "unchanged", so foreign kinds are never an error.
type Message any

// Layout is the capability every tiling algorithm implements.
type Layout interface {
	// Name is a stable human readable label used for display and switching.
	Name() string

	// Clone returns an independent copy with identical state. Containers
	// duplicate layouts freely, one copy per workspace.
	Clone() Layout

	// Layout places every client of s inside r, in stack order. Clients not
	// present in s receive no placement. A non-nil first result replaces the
	// receiver as a whole.
	Layout(s *stack.Stack[Client], r geometry.Rect) (Layout, []Placement)

	// HandleMessage applies m to the layout's own state. Unrecognized
	// message kinds leave the state unchanged. A non-nil result replaces the
	// receiver as a whole.
	HandleMessage(m Message) Layout
}

// place zips clients with rects in order, stopping at the shorter of the two.
func place(clients []Client, rects []geometry.Rect) []Placement {
	n := min(len(clients), len(rects))
	placements := make([]Placement, n)
	for i := 0; i < n; i++ {
		placements[i] = Placement{Client: clients[i], Rect: rects[i]}
	}
	return placements
}
