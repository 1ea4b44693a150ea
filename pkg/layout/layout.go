package layout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/tagflow/pkg/errors"
	"github.com/matzehuels/tagflow/pkg/flow"
	"github.com/matzehuels/tagflow/pkg/measure"
	"github.com/matzehuels/tagflow/pkg/tags"
)

// =============================================================================
// Layout
// =============================================================================

// Layout is a packed tag cloud.
type Layout struct {
	Width             float64        `json:"width"`
	Height            float64        `json:"height"`
	Alignment         flow.Alignment `json:"alignment"`
	HorizontalSpacing float64        `json:"horizontal_spacing"`
	VerticalSpacing   float64        `json:"vertical_spacing"`
	Unit              string         `json:"unit"`

	// Rows lists chip IDs per row, top to bottom.
	Rows  [][]string `json:"rows"`
	Chips []Chip     `json:"chips"`
}

// Chip is a positioned tag.
type Chip struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	URL    string  `json:"url,omitempty"`
	Color  string  `json:"color,omitempty"`
	Row    int     `json:"row"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Frame returns the rectangle covered by the chip.
func (c Chip) Frame() flow.Rect {
	return flow.Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

// Config returns the flow configuration the layout was packed with.
func (l Layout) Config() flow.Layout {
	return flow.Layout{
		Alignment:         l.Alignment,
		HorizontalSpacing: l.HorizontalSpacing,
		VerticalSpacing:   l.VerticalSpacing,
	}
}

// Build measures every tag in set with m and packs them into a container
// of the given width.
//
// The container size comes from [flow.Layout.SizeThatFits] and chips are
// placed inside (0, 0, size). A width of zero places every tag in its own
// row.
func Build(set *tags.Set, m measure.Measurer, cfg flow.Layout, width float64) (Layout, error) {
	if err := errors.ValidateLength("width", width); err != nil {
		return Layout{}, err
	}

	items, err := measure.Items(set.Tags, m)
	if err != nil {
		return Layout{}, err
	}
	ms := flow.Items(items)

	p := flow.ProposeWidth(width)
	size := cfg.SizeThatFits(p, ms)
	placements := cfg.Place(flow.RectOf(flow.Point{}, size), p, ms)

	l := Layout{
		Width:             size.Width,
		Height:            size.Height,
		Alignment:         cfg.Alignment,
		HorizontalSpacing: cfg.HorizontalSpacing,
		VerticalSpacing:   cfg.VerticalSpacing,
		Unit:              m.Unit(),
		Rows:              [][]string{},
		Chips:             make([]Chip, len(placements)),
	}
	for i, pl := range placements {
		t := items[pl.Index].Tag
		l.Chips[i] = Chip{
			ID:     t.ID,
			Label:  t.Label,
			URL:    t.URL,
			Color:  t.Color,
			Row:    pl.Row,
			X:      pl.Origin.X,
			Y:      pl.Origin.Y,
			Width:  pl.Size.Width,
			Height: pl.Size.Height,
		}
		for len(l.Rows) <= pl.Row {
			l.Rows = append(l.Rows, nil)
		}
		l.Rows[pl.Row] = append(l.Rows[pl.Row], t.ID)
	}
	return l, nil
}

// Validate checks that the layout is internally consistent: a known unit,
// finite non-negative dimensions, unique chip IDs, and every chip listed in
// exactly the row its Row field names.
func (l Layout) Validate() error {
	if _, err := measure.ParseUnit(l.Unit); err != nil {
		return err
	}
	for _, v := range []struct {
		name string
		val  float64
	}{{"width", l.Width}, {"height", l.Height}} {
		if err := errors.ValidateLength(v.name, v.val); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidLayout, err, "layout %s", v.name)
		}
	}

	rowOf := make(map[string]int)
	for r, row := range l.Rows {
		for _, id := range row {
			if _, dup := rowOf[id]; dup {
				return errors.New(errors.ErrCodeInvalidLayout, "chip %q listed in more than one row slot", id)
			}
			rowOf[id] = r
		}
	}

	ids := make(map[string]bool, len(l.Chips))
	for _, c := range l.Chips {
		if ids[c.ID] {
			return errors.New(errors.ErrCodeInvalidLayout, "duplicate chip id %q", c.ID)
		}
		ids[c.ID] = true
		if c.Row < 0 || c.Row >= len(l.Rows) {
			return errors.New(errors.ErrCodeInvalidLayout, "chip %q has row %d, layout has %d rows", c.ID, c.Row, len(l.Rows))
		}
		if r, ok := rowOf[c.ID]; !ok || r != c.Row {
			return errors.New(errors.ErrCodeInvalidLayout, "chip %q is not listed in row %d", c.ID, c.Row)
		}
	}
	for id, r := range rowOf {
		if !ids[id] {
			return errors.New(errors.ErrCodeInvalidLayout, "row %d references unknown chip %q", r, id)
		}
	}
	return nil
}

// =============================================================================
// Serialization
// =============================================================================

// Marshal serializes a Layout to pretty-printed JSON bytes.
func Marshal(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// Unmarshal deserializes and validates JSON bytes into a Layout. A missing
// unit defaults to pixels.
func Unmarshal(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidLayout, err, "unmarshal layout")
	}
	if l.Unit == "" {
		l.Unit = measure.UnitPixel
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// WriteFile writes a Layout to a JSON file.
func WriteFile(l Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads a Layout from a JSON file.
func ReadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout %s not found", path)
	}
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	l, err := Unmarshal(data)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// IsLayoutFile reports whether data looks like a serialized layout rather
// than a tag document.
func IsLayoutFile(data []byte) bool {
	var head struct {
		Chips json.RawMessage `json:"chips"`
		Unit  string          `json:"unit"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return false
	}
	return head.Chips != nil
}
