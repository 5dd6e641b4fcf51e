package layout

import (
	"testing"

	"github.com/ktsine/x-tilewm/internal/geometry"
	"github.com/ktsine/x-tilewm/internal/stack"
)

func TestGrid_Sizing(t *testing.T) {
	tests := []struct {
		n        int
		wantCols uint32
		wantRows uint32
	}{
		{1, 1, 1},
		{2, 2, 1},
		{3, 2, 2},
		{4, 2, 2},
		{5, 3, 2},
		{6, 3, 2},
		{7, 3, 3},
		{9, 3, 3},
		{10, 4, 3},
	}

	screen := geometry.New(0, 0, 1200, 1200)
	for _, tt := range tests {
		_, placements := Grid{}.Layout(clients(tt.n), screen)

		if len(placements) != tt.n {
			t.Errorf("n=%d: got %d placements, want %d", tt.n, len(placements), tt.n)
			continue
		}

		// Cell extents betray the grid dimensions on a square screen.
		first := placements[0].Rect
		if got := 1200 / first.W; got != tt.wantCols {
			t.Errorf("n=%d: %d columns, want %d", tt.n, got, tt.wantCols)
		}
		if got := 1200 / first.H; got != tt.wantRows {
			t.Errorf("n=%d: %d rows, want %d", tt.n, got, tt.wantRows)
		}
	}
}

func TestGrid_RowMajorAssignment(t *testing.T) {
	// Five clients on a 3x2 grid: the last row holds only two of three cells.
	screen := geometry.New(0, 0, 900, 600)

	_, placements := Grid{}.Layout(clients(5), screen)

	want := []geometry.Rect{
		geometry.New(0, 0, 300, 300),
		geometry.New(300, 0, 300, 300),
		geometry.New(600, 0, 300, 300),
		geometry.New(0, 300, 300, 300),
		geometry.New(300, 300, 300, 300),
	}
	for i, p := range placements {
		if p.Client != Client(i+1) {
			t.Errorf("placement %d client = %d, want %d", i, p.Client, i+1)
		}
		if p.Rect != want[i] {
			t.Errorf("placement %d = %s, want %s", i, p.Rect, want[i])
		}
	}
}

func TestGrid_EmptyStack(t *testing.T) {
	_, placements := Grid{}.Layout(stack.New[Client](), geometry.New(0, 0, 100, 100))

	if len(placements) != 0 {
		t.Errorf("got %d placements for empty stack, want 0", len(placements))
	}
}

func TestGrid_IgnoresMessages(t *testing.T) {
	if repl := (Grid{}).HandleMessage(ExpandMain{}); repl != nil {
		t.Errorf("HandleMessage returned a replacement, want none")
	}
}
