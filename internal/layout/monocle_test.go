package layout

import (
	"testing"

	"github.com/ktsine/x-tilewm/internal/geometry"
	"github.com/ktsine/x-tilewm/internal/stack"
)

func TestMonocle_FocusedOnly(t *testing.T) {
	s := stack.New[Client](1, 2, 3)
	s.FocusOn(2)
	screen := geometry.New(0, 0, 1920, 1080)

	repl, placements := Monocle{}.Layout(s, screen)

	if repl != nil {
		t.Errorf("Layout returned a replacement, want none")
	}
	if len(placements) != 1 {
		t.Fatalf("got %d placements, want 1", len(placements))
	}
	if placements[0].Client != 2 {
		t.Errorf("placed client %d, want 2", placements[0].Client)
	}
	if placements[0].Rect != screen {
		t.Errorf("placement = %s, want %s", placements[0].Rect, screen)
	}
}

func TestMonocle_EmptyStack(t *testing.T) {
	_, placements := Monocle{}.Layout(stack.New[Client](), geometry.New(0, 0, 100, 100))

	if len(placements) != 0 {
		t.Errorf("got %d placements for empty stack, want 0", len(placements))
	}
}

func TestMonocle_IgnoresMessages(t *testing.T) {
	if repl := (Monocle{}).HandleMessage(IncMain{Delta: 1}); repl != nil {
		t.Errorf("HandleMessage returned a replacement, want none")
	}
}
