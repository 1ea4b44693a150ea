package sink

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tagflow/pkg/layout"
	"github.com/matzehuels/tagflow/pkg/measure"
)

// TextOption configures terminal rendering via [RenderText].
type TextOption func(*textRenderer)

type textRenderer struct {
	border bool
	color  bool
}

// WithBorder draws a rounded border around each chip. The layout must have
// been measured with bordered cells for the chips to line up.
func WithBorder() TextOption { return func(r *textRenderer) { r.border = true } }

// WithColor colors chips that carry a color.
func WithColor() TextOption { return func(r *textRenderer) { r.color = true } }

// RenderText renders the layout for a terminal.
//
// Cell layouts are drawn at their packed positions. Pixel layouts keep their
// rows but chips are drawn at label width with single-cell gaps, since pixel
// coordinates have no terminal equivalent.
func RenderText(l layout.Layout, opts ...TextOption) string {
	r := textRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	cells := l.Unit == measure.UnitCell
	rows := groupRows(l)

	vgap := 0
	if cells {
		vgap = max(0, int(math.Round(l.VerticalSpacing)))
	}

	var lines []string
	for i, row := range rows {
		if i > 0 {
			for range vgap {
				lines = append(lines, "")
			}
		}
		block := r.renderRow(row, cells)
		for _, line := range strings.Split(block, "\n") {
			lines = append(lines, strings.TrimRight(line, " "))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// groupRows buckets chips by Row. Chips naming a row outside l.Rows are
// dropped; [layout.Layout.Validate] rejects such layouts.
func groupRows(l layout.Layout) [][]layout.Chip {
	rows := make([][]layout.Chip, len(l.Rows))
	for _, c := range l.Chips {
		if c.Row < 0 || c.Row >= len(rows) {
			continue
		}
		rows[c.Row] = append(rows[c.Row], c)
	}
	for _, row := range rows {
		slices.SortStableFunc(row, func(a, b layout.Chip) int { return cmp.Compare(a.X, b.X) })
	}
	return rows
}

func (r textRenderer) renderRow(row []layout.Chip, cells bool) string {
	parts := make([]string, 0, 2*len(row))
	cursor := 0
	for i, c := range row {
		gap := 1
		if cells {
			gap = int(math.Round(c.X)) - cursor
		} else if i == 0 {
			gap = 0
		}
		if gap > 0 {
			parts = append(parts, strings.Repeat(" ", gap))
			cursor += gap
		}
		chip := r.renderChip(c, cells)
		parts = append(parts, chip)
		cursor += lipgloss.Width(chip)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r textRenderer) renderChip(c layout.Chip, cells bool) string {
	s := lipgloss.NewStyle().Align(lipgloss.Center)
	inner := int(math.Round(c.Width))
	if r.border {
		s = s.Border(lipgloss.RoundedBorder())
		inner -= 2
	}
	if cells && inner > 0 {
		s = s.Width(inner)
	}
	if r.color && c.Color != "" {
		col := lipgloss.Color(c.Color)
		s = s.Foreground(col).BorderForeground(col)
	}
	return s.Render(c.Label)
}
