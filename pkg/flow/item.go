package flow

// Measurable is anything that can report its preferred size.
//
// Measure must be a pure function of the proposal: the packer may call it
// several times per pass and assumes identical answers. Implementations that
// are shared across goroutines must be safe for concurrent use.
type Measurable interface {
	Measure(p Proposal) Size
}

// Placeable is implemented by items that want to be told where they ended up.
// [Layout.Place] calls Place once per item, in input order, with the same
// proposal that was used to measure it.
type Placeable interface {
	Place(at Point, p Proposal)
}

// MeasureFunc adapts a plain function to [Measurable].
type MeasureFunc func(p Proposal) Size

// Measure calls f(p).
func (f MeasureFunc) Measure(p Proposal) Size { return f(p) }

// Fixed is a Measurable that ignores the proposal and always reports itself.
type Fixed Size

// Measure returns s.
func (s Fixed) Measure(Proposal) Size { return Size(s) }

// Items converts a slice of any concrete Measurable type into the interface
// slice expected by [Layout].
func Items[T Measurable](xs []T) []Measurable {
	out := make([]Measurable, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}
