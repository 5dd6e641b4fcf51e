package layout

import (
	"fmt"

	"github.com/ktsine/x-tilewm/internal/geometry"
	"github.com/ktsine/x-tilewm/internal/stack"
)

// Gaps wraps an inner layout and pads its output: the screen is inset by an
// outer gap before placement and every placement is inset by an inner gap
// after. All messages pass through to the inner layout; [Unwrap] replaces the
// wrapper with the layout it wraps.
type Gaps struct {
	inner Layout
	outer uint32
	gap   uint32
}

func NewGaps(inner Layout, outer, gap uint32) *Gaps {
	return &Gaps{inner: inner, outer: outer, gap: gap}
}

func (g *Gaps) Name() string {
	return fmt.Sprintf("Gaps(%s)", g.inner.Name())
}

func (g *Gaps) Clone() Layout {
	return &Gaps{inner: g.inner.Clone(), outer: g.outer, gap: g.gap}
}

func (g *Gaps) Layout(s *stack.Stack[Client], r geometry.Rect) (Layout, []Placement) {
	repl, placements := g.inner.Layout(s, r.Shrink(g.outer))
	if repl != nil {
		g.inner = repl
	}

	for i := range placements {
		placements[i].Rect = placements[i].Rect.Shrink(g.gap)
	}

	return nil, placements
}

func (g *Gaps) HandleMessage(m Message) Layout {
	if _, ok := m.(Unwrap); ok {
		return g.inner
	}
	if repl := g.inner.HandleMessage(m); repl != nil {
		g.inner = repl
	}
	return nil
}

// Reflected wraps an inner layout and mirrors its placements across the
// vertical or horizontal mid-line of the screen. All messages pass through to
// the inner layout; [Unwrap] replaces the wrapper with the layout it wraps.
type Reflected struct {
	inner    Layout
	vertical bool
}

// ReflectHorizontal mirrors placements left to right.
func ReflectHorizontal(inner Layout) *Reflected {
	return &Reflected{inner: inner}
}

// ReflectVertical mirrors placements top to bottom.
func ReflectVertical(inner Layout) *Reflected {
	return &Reflected{inner: inner, vertical: true}
}

func (f *Reflected) Name() string {
	if f.vertical {
		return fmt.Sprintf("FlippedV(%s)", f.inner.Name())
	}
	return fmt.Sprintf("FlippedH(%s)", f.inner.Name())
}

func (f *Reflected) Clone() Layout {
	return &Reflected{inner: f.inner.Clone(), vertical: f.vertical}
}

func (f *Reflected) Layout(s *stack.Stack[Client], r geometry.Rect) (Layout, []Placement) {
	repl, placements := f.inner.Layout(s, r)
	if repl != nil {
		f.inner = repl
	}

	for i := range placements {
		p := placements[i].Rect
		if f.vertical {
			p.Y = r.Y + int32(r.H) - (p.Y - r.Y) - int32(p.H)
		} else {
			p.X = r.X + int32(r.W) - (p.X - r.X) - int32(p.W)
		}
		placements[i].Rect = p
	}

	return nil, placements
}

func (f *Reflected) HandleMessage(m Message) Layout {
	if _, ok := m.(Unwrap); ok {
		return f.inner
	}
	if repl := f.inner.HandleMessage(m); repl != nil {
		f.inner = repl
	}
	return nil
}
