package flow

import (
	"strconv"
	"strings"

	"github.com/matzehuels/tagflow/pkg/errors"
)

// DefaultSpacing is the horizontal and vertical gap used by [New].
const DefaultSpacing = 10.0

// Alignment selects where a row sits horizontally inside the bounds.
type Alignment int

const (
	// Leading aligns rows to the left edge.
	Leading Alignment = iota
	// Center centers each row.
	Center
	// Trailing aligns rows to the right edge.
	Trailing
)

// Alignments lists every alignment in declaration order.
var Alignments = []Alignment{Leading, Center, Trailing}

func (a Alignment) String() string {
	switch a {
	case Leading:
		return "leading"
	case Center:
		return "center"
	case Trailing:
		return "trailing"
	}
	return "alignment(" + strconv.Itoa(int(a)) + ")"
}

// Next returns the alignment following a, wrapping around.
func (a Alignment) Next() Alignment {
	return Alignments[(int(a)+1)%len(Alignments)]
}

// ParseAlignment parses "leading", "center" or "trailing" (case-insensitive).
// "left" and "right" are accepted as aliases.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leading", "left":
		return Leading, nil
	case "center", "centre":
		return Center, nil
	case "trailing", "right":
		return Trailing, nil
	}
	return Leading, errors.New(errors.ErrCodeInvalidAlignment,
		"invalid alignment: %q (must be one of: leading, center, trailing)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	v, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Layout is the configuration of a flow pass. It is a plain value: copy it,
// change it between passes, share it between goroutines.
//
// The zero value is a leading-aligned layout without gaps. Use [New] for the
// conventional defaults.
type Layout struct {
	Alignment         Alignment
	HorizontalSpacing float64
	VerticalSpacing   float64
}

// Option configures a Layout built by [New].
type Option func(*Layout)

// WithAlignment sets the row alignment.
func WithAlignment(a Alignment) Option { return func(l *Layout) { l.Alignment = a } }

// WithSpacing sets both gaps.
func WithSpacing(horizontal, vertical float64) Option {
	return func(l *Layout) {
		l.HorizontalSpacing = horizontal
		l.VerticalSpacing = vertical
	}
}

// WithHorizontalSpacing sets the gap between items in a row.
func WithHorizontalSpacing(s float64) Option { return func(l *Layout) { l.HorizontalSpacing = s } }

// WithVerticalSpacing sets the gap between rows.
func WithVerticalSpacing(s float64) Option { return func(l *Layout) { l.VerticalSpacing = s } }

// New returns a centered Layout with [DefaultSpacing] on both axes, then
// applies opts.
func New(opts ...Option) Layout {
	l := Layout{
		Alignment:         Center,
		HorizontalSpacing: DefaultSpacing,
		VerticalSpacing:   DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}
