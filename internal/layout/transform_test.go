package layout

import (
	"testing"

	"github.com/ktsine/x-tilewm/internal/geometry"
	"github.com/ktsine/x-tilewm/internal/stack"
)

func TestGaps_InsetsPlacements(t *testing.T) {
	g := NewGaps(Monocle{}, 10, 5)
	s := stack.New[Client](1)

	_, placements := g.Layout(s, geometry.New(0, 0, 100, 100))

	if len(placements) != 1 {
		t.Fatalf("got %d placements, want 1", len(placements))
	}
	// Outer gap shrinks the screen to (10,10,80,80), inner gap the placement.
	if want := geometry.New(15, 15, 70, 70); placements[0].Rect != want {
		t.Errorf("placement = %s, want %s", placements[0].Rect, want)
	}
}

func TestGaps_Name(t *testing.T) {
	if got := NewGaps(Grid{}, 4, 2).Name(); got != "Gaps(Grid)" {
		t.Errorf("Name() = %q, want %q", got, "Gaps(Grid)")
	}
}

func TestGaps_UnwrapReplaces(t *testing.T) {
	g := NewGaps(Monocle{}, 4, 2)

	repl := g.HandleMessage(Unwrap{})

	if repl == nil {
		t.Fatalf("HandleMessage(Unwrap) returned no replacement")
	}
	if repl.Name() != "Mono" {
		t.Errorf("replacement = %q, want the wrapped layout", repl.Name())
	}
}

func TestGaps_ForwardsMessages(t *testing.T) {
	inner := Side(1, 0.5, 0.25)
	g := NewGaps(inner, 0, 0)

	if repl := g.HandleMessage(ExpandMain{}); repl != nil {
		t.Errorf("HandleMessage returned a replacement, want none")
	}
	if inner.ratio != 0.75 {
		t.Errorf("inner ratio = %v, want 0.75", inner.ratio)
	}
}

func TestReflectHorizontal(t *testing.T) {
	f := ReflectHorizontal(Side(1, 0.6, 0.1))
	s := stack.New[Client](1, 2)

	_, placements := f.Layout(s, geometry.New(0, 0, 1000, 800))

	// The main region moves from the left to the right edge.
	if want := geometry.New(400, 0, 600, 800); placements[0].Rect != want {
		t.Errorf("main placement = %s, want %s", placements[0].Rect, want)
	}
	if want := geometry.New(0, 0, 400, 800); placements[1].Rect != want {
		t.Errorf("stack placement = %s, want %s", placements[1].Rect, want)
	}
}

func TestReflectVertical(t *testing.T) {
	f := ReflectVertical(Bottom(1, 0.5, 0.1))
	s := stack.New[Client](1, 2)

	_, placements := f.Layout(s, geometry.New(0, 0, 1000, 600))

	if want := geometry.New(0, 300, 1000, 300); placements[0].Rect != want {
		t.Errorf("main placement = %s, want %s", placements[0].Rect, want)
	}
	if want := geometry.New(0, 0, 1000, 300); placements[1].Rect != want {
		t.Errorf("stack placement = %s, want %s", placements[1].Rect, want)
	}
}

func TestReflected_CloneIsDeep(t *testing.T) {
	inner := Side(1, 0.5, 0.25)
	f := ReflectHorizontal(inner)

	c := f.Clone().(*Reflected)
	f.HandleMessage(ExpandMain{})

	if c.inner.(*MainAndStack).ratio != 0.5 {
		t.Errorf("clone inner ratio = %v, want 0.5", c.inner.(*MainAndStack).ratio)
	}
}
