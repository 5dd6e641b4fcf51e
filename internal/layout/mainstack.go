package layout

import (
	"github.com/ktsine/x-tilewm/internal/geometry"
	"github.com/ktsine/x-tilewm/internal/stack"
)

type position int

const (
	posSide position = iota
	posBottom
)

// MainAndStack places up to maxMain clients in a main region holding a ratio
// of the screen and stacks the rest in the remaining region.
//
// [ExpandMain] and [ShrinkMain] adjust the ratio by the ratio step, clamped
// to [0, 1]. [IncMain] changes the main client count, saturating at zero.
// [Mirror] swaps which physical side holds the main region without changing
// the stored ratio. [Rotate] toggles between the side and bottom
// orientations.
type MainAndStack struct {
	pos       position
	maxMain   uint32
	ratio     float32
	ratioStep float32
	mirrored  bool
}

// Default returns a side main area holding one client at 60% of the screen.
func Default() *MainAndStack {
	return Side(1, 0.6, 0.1)
}

// Side returns a main area on the left with remaining clients stacked on the
// right.
func Side(maxMain uint32, ratio, ratioStep float32) *MainAndStack {
	return &MainAndStack{pos: posSide, maxMain: maxMain, ratio: clampRatio(ratio), ratioStep: ratioStep}
}

// SideMirrored returns a main area on the right with remaining clients
// stacked on the left.
func SideMirrored(maxMain uint32, ratio, ratioStep float32) *MainAndStack {
	return &MainAndStack{pos: posSide, maxMain: maxMain, ratio: clampRatio(ratio), ratioStep: ratioStep, mirrored: true}
}

// Bottom returns a main area on the top with remaining clients stacked below.
func Bottom(maxMain uint32, ratio, ratioStep float32) *MainAndStack {
	return &MainAndStack{pos: posBottom, maxMain: maxMain, ratio: clampRatio(ratio), ratioStep: ratioStep}
}

// Top returns a main area on the bottom with remaining clients stacked above.
func Top(maxMain uint32, ratio, ratioStep float32) *MainAndStack {
	return &MainAndStack{pos: posBottom, maxMain: maxMain, ratio: clampRatio(ratio), ratioStep: ratioStep, mirrored: true}
}

// clampRatio keeps the main area fraction inside [0, 1]. The constructors and
// the message handler both go through it, so a stored ratio is always valid.
func clampRatio(r float32) float32 {
	if r < 0.0 {
		return 0.0
	}
	if r > 1.0 {
		return 1.0
	}
	return r
}

// Name is derived from orientation and mirroring, not stored.
func (m *MainAndStack) Name() string {
	switch {
	case m.pos == posSide && !m.mirrored:
		return "Side"
	case m.pos == posSide && m.mirrored:
		return "Mirror"
	case m.pos == posBottom && !m.mirrored:
		return "Bottom"
	default:
		return "Top"
	}
}

func (m *MainAndStack) Clone() Layout {
	c := *m
	return &c
}

// effectiveRatio is the fraction of the primary axis given to the near-origin
// part of the split. Mirroring flips the fraction, not the stored ratio.
func (m *MainAndStack) effectiveRatio() float32 {
	if m.mirrored {
		return 1.0 - m.ratio
	}
	return m.ratio
}

// singleStack reports whether there is no meaningful second region and all n
// clients belong in one evenly divided stack.
func (m *MainAndStack) singleStack(n uint32) bool {
	return n <= m.maxMain || m.maxMain == 0 || m.ratio == 0.0 || m.ratio == 1.0
}

func (m *MainAndStack) Layout(s *stack.Stack[Client], r geometry.Rect) (Layout, []Placement) {
	if m.pos == posSide {
		return nil, m.layoutSide(s, r)
	}
	return nil, m.layoutBottom(s, r)
}

func (m *MainAndStack) layoutSide(s *stack.Stack[Client], r geometry.Rect) []Placement {
	n := uint32(s.Len())

	if m.singleStack(n) {
		return place(s.Slice(), r.Rows(n))
	}

	main, rest, err := r.SplitAtWidth(r.ScaleW(m.effectiveRatio()))
	if err != nil {
		// The ratio is clamped to [0, 1] so the split point is always in range.
		panic(err)
	}
	if m.mirrored {
		main, rest = rest, main
	}

	rects := append(main.Rows(m.maxMain), rest.Rows(n-m.maxMain)...)
	return place(s.Slice(), rects)
}

func (m *MainAndStack) layoutBottom(s *stack.Stack[Client], r geometry.Rect) []Placement {
	n := uint32(s.Len())

	if m.singleStack(n) {
		return place(s.Slice(), r.Columns(n))
	}

	main, rest, err := r.SplitAtHeight(r.ScaleH(m.effectiveRatio()))
	if err != nil {
		// The ratio is clamped to [0, 1] so the split point is always in range.
		panic(err)
	}
	if m.mirrored {
		main, rest = rest, main
	}

	rects := append(main.Columns(m.maxMain), rest.Columns(n-m.maxMain)...)
	return place(s.Slice(), rects)
}

func (m *MainAndStack) HandleMessage(msg Message) Layout {
	switch msg := msg.(type) {
	case ExpandMain:
		m.ratio = clampRatio(m.ratio + m.ratioStep)
	case ShrinkMain:
		m.ratio = clampRatio(m.ratio - m.ratioStep)
	case IncMain:
		if msg.Delta < 0 {
			d := uint32(-msg.Delta)
			if d > m.maxMain {
				m.maxMain = 0
			} else {
				m.maxMain -= d
			}
		} else {
			m.maxMain += uint32(msg.Delta)
		}
	case Mirror:
		m.mirrored = !m.mirrored
	case Rotate:
		if m.pos == posSide {
			m.pos = posBottom
		} else {
			m.pos = posSide
		}
	}

	return nil
}
