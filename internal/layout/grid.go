package layout

import (
	"github.com/ktsine/x-tilewm/internal/geometry"
	"github.com/ktsine/x-tilewm/internal/stack"
)

// Grid places clients row-major in the smallest near-square grid that holds
// them all: the fewest columns whose square covers the client count, dropping
// the last row when a full one would sit empty. The last row may be partially
// filled; its unused cells are simply not assigned. Grid is stateless and
// ignores all messages.
type Grid struct{}

func (Grid) Name() string {
	return "Grid"
}

func (Grid) Clone() Layout {
	return Grid{}
}

func (Grid) Layout(s *stack.Stack[Client], r geometry.Rect) (Layout, []Placement) {
	n := uint32(s.Len())
	if n == 0 {
		return nil, nil
	}

	cols := uint32(1)
	for cols*cols < n {
		cols++
	}
	rows := cols
	// Prefer a wide grid over a tall one: drop the last row whenever the
	// remaining cells still hold every client.
	if cols*(cols-1) >= n {
		rows = cols - 1
	}

	rects := make([]geometry.Rect, 0, rows*cols)
	for _, band := range r.Rows(rows) {
		rects = append(rects, band.Columns(cols)...)
	}

	return nil, place(s.Slice(), rects)
}

func (Grid) HandleMessage(Message) Layout {
	return nil
}
