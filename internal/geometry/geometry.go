// Package geometry provides the pixel rectangle type and the splitting
// operations that layout algorithms are built from. All functions are pure.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSplit is returned by [Rect.SplitAtWidth] and [Rect.SplitAtHeight]
// when the split offset lies outside the rectangle's extent. Offsets are never
// clamped.
var ErrInvalidSplit = errors.New("split point is outside the rectangle")

// Rect is a screen region in the pixel units used by the display connection.
// W and H are extents and never negative.
type Rect struct {
	X int32
	Y int32
	W uint32
	H uint32
}

func New(x, y int32, w, h uint32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%d, %d, %d, %d)", r.X, r.Y, r.W, r.H)
}

// Rows divides r into n equal rows from top to bottom. The remainder of the
// integer division goes to the last row so the rows always cover r exactly.
// n = 0 yields no rows.
func (r Rect) Rows(n uint32) []Rect {
	if n == 0 {
		return nil
	}

	h := r.H / n
	rows := make([]Rect, n)
	for i := uint32(0); i < n; i++ {
		rows[i] = Rect{X: r.X, Y: r.Y + int32(i*h), W: r.W, H: h}
	}
	rows[n-1].H = r.H - (n-1)*h

	return rows
}

// Columns divides r into n equal columns from left to right. The remainder of
// the integer division goes to the last column so the columns always cover r
// exactly. n = 0 yields no columns.
func (r Rect) Columns(n uint32) []Rect {
	if n == 0 {
		return nil
	}

	w := r.W / n
	cols := make([]Rect, n)
	for i := uint32(0); i < n; i++ {
		cols[i] = Rect{X: r.X + int32(i*w), Y: r.Y, W: w, H: r.H}
	}
	cols[n-1].W = r.W - (n-1)*w

	return cols
}

// SplitAtWidth splits r into a left and right part at w pixels from the left
// edge. w may be anywhere in [0, r.W]; anything else is an invalid split.
func (r Rect) SplitAtWidth(w uint32) (Rect, Rect, error) {
	if w > r.W {
		return Rect{}, Rect{}, fmt.Errorf("%w: width %d > %d", ErrInvalidSplit, w, r.W)
	}

	left := Rect{X: r.X, Y: r.Y, W: w, H: r.H}
	right := Rect{X: r.X + int32(w), Y: r.Y, W: r.W - w, H: r.H}

	return left, right, nil
}

// SplitAtHeight splits r into a top and bottom part at h pixels from the top
// edge. h may be anywhere in [0, r.H]; anything else is an invalid split.
func (r Rect) SplitAtHeight(h uint32) (Rect, Rect, error) {
	if h > r.H {
		return Rect{}, Rect{}, fmt.Errorf("%w: height %d > %d", ErrInvalidSplit, h, r.H)
	}

	top := Rect{X: r.X, Y: r.Y, W: r.W, H: h}
	bottom := Rect{X: r.X, Y: r.Y + int32(h), W: r.W, H: r.H - h}

	return top, bottom, nil
}

// ScaleW returns the width of r scaled by ratio, rounded to the nearest pixel.
func (r Rect) ScaleW(ratio float32) uint32 {
	return uint32(math.Round(float64(r.W) * float64(ratio)))
}

// ScaleH returns the height of r scaled by ratio, rounded to the nearest pixel.
func (r Rect) ScaleH(ratio float32) uint32 {
	return uint32(math.Round(float64(r.H) * float64(ratio)))
}

// Shrink returns r inset by d pixels on every side. Extents too small to
// shrink collapse to zero instead of underflowing.
func (r Rect) Shrink(d uint32) Rect {
	w, h := uint32(0), uint32(0)
	if r.W > 2*d {
		w = r.W - 2*d
	}
	if r.H > 2*d {
		h = r.H - 2*d
	}

	return Rect{X: r.X + int32(d), Y: r.Y + int32(d), W: w, H: h}
}
