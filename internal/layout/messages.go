package layout

// Built-in message kinds. External packages are free to define their own
// kinds; layouts silently ignore anything they do not understand.

// ExpandMain grows the main area by the layout's ratio step.
type ExpandMain struct{}

// ShrinkMain shrinks the main area by the layout's ratio step.
type ShrinkMain struct{}

// IncMain changes the number of clients placed in the main area by Delta.
// The count saturates at zero and never goes negative.
type IncMain struct {
	Delta int
}

// Mirror flips which physical side holds the main area.
type Mirror struct{}

// Rotate toggles a layout between its side-by-side and stacked orientations.
type Rotate struct{}

// Unwrap strips the outermost wrapping layout, if any, leaving the layout it
// wrapped.
type Unwrap struct{}

// NextLayout advances a [Cycle] to its next held layout.
type NextLayout struct{}

// SetLayout activates the held layout with the given name in a [Cycle].
type SetLayout struct {
	Name string
}
