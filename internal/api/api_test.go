package api

import (
	"testing"

	"github.com/ktsine/x-tilewm/internal/layout"
)

func TestMessageFromKind(t *testing.T) {
	tests := []struct {
		kind  string
		delta int
		name  string
		want  layout.Message
	}{
		{kind: "expand-main", want: layout.ExpandMain{}},
		{kind: "shrink-main", want: layout.ShrinkMain{}},
		{kind: "inc-main", delta: -2, want: layout.IncMain{Delta: -2}},
		{kind: "mirror", want: layout.Mirror{}},
		{kind: "rotate", want: layout.Rotate{}},
		{kind: "unwrap", want: layout.Unwrap{}},
		{kind: "next-layout", want: layout.NextLayout{}},
		{kind: "set-layout", name: "Grid", want: layout.SetLayout{Name: "Grid"}},
	}

	for _, tt := range tests {
		got, err := messageFromKind(tt.kind, tt.delta, tt.name)
		if err != nil {
			t.Errorf("messageFromKind(%q) error: %v", tt.kind, err)
			continue
		}
		if got != tt.want {
			t.Errorf("messageFromKind(%q) = %#v, want %#v", tt.kind, got, tt.want)
		}
	}
}

func TestMessageFromKind_Invalid(t *testing.T) {
	if _, err := messageFromKind("resize-window", 0, ""); err == nil {
		t.Errorf("messageFromKind(%q) error = nil, want error", "resize-window")
	}

	if _, err := messageFromKind("set-layout", 0, ""); err == nil {
		t.Errorf("set-layout without a name: error = nil, want error")
	}
}
