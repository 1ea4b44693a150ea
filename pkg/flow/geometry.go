package flow

import "strconv"

// Dimension is one axis of a [Proposal]. It either holds a length or is
// unspecified, meaning the caller places no constraint on that axis.
type Dimension struct {
	value float64
	set   bool
}

// Unspecified is a Dimension without a value.
var Unspecified = Dimension{}

// Exactly returns a Dimension holding v.
func Exactly(v float64) Dimension { return Dimension{value: v, set: true} }

// Value returns the length and whether one was specified.
func (d Dimension) Value() (float64, bool) { return d.value, d.set }

// IsSpecified reports whether d holds a length.
func (d Dimension) IsSpecified() bool { return d.set }

// Or returns the length, or fallback when d is unspecified.
func (d Dimension) Or(fallback float64) float64 {
	if !d.set {
		return fallback
	}
	return d.value
}

func (d Dimension) String() string {
	if !d.set {
		return "unspecified"
	}
	return strconv.FormatFloat(d.value, 'g', -1, 64)
}

// Proposal is the size hint handed to [Measurable.Measure].
// Either axis may be [Unspecified].
type Proposal struct {
	Width  Dimension
	Height Dimension
}

// Propose returns a Proposal with both axes specified.
func Propose(width, height float64) Proposal {
	return Proposal{Width: Exactly(width), Height: Exactly(height)}
}

// ProposeWidth returns a Proposal constraining only the width.
func ProposeWidth(width float64) Proposal {
	return Proposal{Width: Exactly(width)}
}

func (p Proposal) String() string {
	return p.Width.String() + "x" + p.Height.String()
}

// Size is a width and height pair.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Point is a position in the layout's coordinate space. Y grows downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectOf builds a Rect from an origin and a size.
func RectOf(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Left returns the minimum X of the rectangle.
func (r Rect) Left() float64 { return r.X }

// Right returns the maximum X of the rectangle.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the minimum Y of the rectangle.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the maximum Y of the rectangle.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }
