// Package measure turns tags into sized items for the flow packer.
//
// A [Measurer] reports the intrinsic size of a tag in its unit: pixels for
// SVG output via the embedded font, terminal cells for text output. Sizes
// are computed once by [Items]; the resulting items ignore size proposals,
// so repeated measurement during packing and placement is stable.
package measure

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tagflow/pkg/errors"
	"github.com/matzehuels/tagflow/pkg/flow"
	"github.com/matzehuels/tagflow/pkg/fonts"
	"github.com/matzehuels/tagflow/pkg/tags"
)

// Coordinate units.
const (
	UnitPixel = "px"
	UnitCell  = "cell"
)

// ParseUnit validates a unit name.
func ParseUnit(s string) (string, error) {
	switch s {
	case UnitPixel, UnitCell:
		return s, nil
	case "pixel", "pixels":
		return UnitPixel, nil
	case "cells":
		return UnitCell, nil
	}
	return "", errors.New(errors.ErrCodeInvalidUnit, "invalid unit: %q (must be px or cell)", s)
}

// Measurer sizes a single tag.
type Measurer interface {
	Unit() string
	Size(t tags.Tag) (flow.Size, error)
}

var (
	_ Measurer = Pixels{}
	_ Measurer = Cells{}
)

// Pixels measures chips with the embedded font.
type Pixels struct {
	FontSize float64
	PaddingX float64
	PaddingY float64
}

// Unit returns "px".
func (Pixels) Unit() string { return UnitPixel }

// Size returns the text advance plus horizontal padding by the line height
// plus vertical padding. A non-zero fixed width or height on the tag wins.
func (m Pixels) Size(t tags.Tag) (flow.Size, error) {
	var s flow.Size
	if t.Width > 0 {
		s.Width = t.Width
	} else {
		adv, err := fonts.Advance(m.FontSize, t.Label)
		if err != nil {
			return flow.Size{}, fmt.Errorf("measure %q: %w", t.ID, err)
		}
		s.Width = fonts.Round(adv + 2*m.PaddingX)
	}
	if t.Height > 0 {
		s.Height = t.Height
	} else {
		lh, err := fonts.LineHeight(m.FontSize)
		if err != nil {
			return flow.Size{}, fmt.Errorf("measure %q: %w", t.ID, err)
		}
		s.Height = fonts.Round(lh + 2*m.PaddingY)
	}
	return s, nil
}

// Cells measures chips in terminal cells.
type Cells struct {
	PaddingX int
	Border   bool
}

// Unit returns "cell".
func (Cells) Unit() string { return UnitCell }

// Size returns the display width of the label plus padding by one line,
// adding a cell on every side when bordered. Fixed sizes on the tag win.
func (m Cells) Size(t tags.Tag) (flow.Size, error) {
	w := lipgloss.Width(t.Label) + 2*m.PaddingX
	h := 1
	if m.Border {
		w += 2
		h += 2
	}
	s := flow.Size{Width: float64(w), Height: float64(h)}
	if t.Width > 0 {
		s.Width = t.Width
	}
	if t.Height > 0 {
		s.Height = t.Height
	}
	return s, nil
}

// Item is a measured tag. It implements [flow.Measurable] and
// [flow.Placeable]; after placement Origin holds its top-left corner.
type Item struct {
	Tag    tags.Tag
	size   flow.Size
	Origin flow.Point
	placed bool
}

// Measure returns the precomputed size regardless of p.
func (it *Item) Measure(flow.Proposal) flow.Size { return it.size }

// Place records the origin chosen by the packer.
func (it *Item) Place(at flow.Point, _ flow.Proposal) {
	it.Origin = at
	it.placed = true
}

// Size returns the measured size.
func (it *Item) Size() flow.Size { return it.size }

// Placed reports whether the packer has placed the item.
func (it *Item) Placed() bool { return it.placed }

// Items measures every tag with m.
func Items(ts []tags.Tag, m Measurer) ([]*Item, error) {
	out := make([]*Item, len(ts))
	for i, t := range ts {
		s, err := m.Size(t)
		if err != nil {
			return nil, err
		}
		out[i] = &Item{Tag: t, size: s}
	}
	return out, nil
}
