package flow

// Row is one visual line of a packed layout: the input indices of its items,
// in order, and the sizes they reported when the row was packed.
type Row struct {
	Items []int
	Sizes []Size
}

// Len returns the number of items in the row.
func (r Row) Len() int { return len(r.Items) }

// MaxHeight returns the tallest item height in the row, or 0 for an empty row.
func (r Row) MaxHeight() float64 {
	if len(r.Sizes) == 0 {
		return 0
	}
	h := r.Sizes[0].Height
	for _, s := range r.Sizes[1:] {
		h = max(h, s.Height)
	}
	return h
}

// ContentWidth returns the summed item widths plus spacing between items.
// No spacing is counted after the last item.
func (r Row) ContentWidth(spacing float64) float64 {
	if len(r.Sizes) == 0 {
		return 0
	}
	var w float64
	for _, s := range r.Sizes {
		w += s.Width
	}
	return w + spacing*float64(len(r.Sizes)-1)
}

// Rows packs items into rows no wider than maxWidth.
//
// Items are measured once each, in order, against p. A new row starts when
// the current row is non-empty and the cursor plus the item's width plus the
// horizontal spacing exceeds maxWidth. The cursor always advances by width
// plus spacing, including for the first item of a row, so the spacing is
// counted even where no gap will be drawn. An item that is wider than
// maxWidth on its own still gets a row.
//
// Rows returns nil for no items.
func (l Layout) Rows(items []Measurable, maxWidth float64, p Proposal) []Row {
	var (
		rows []Row
		row  Row
		x    float64
	)
	for i, item := range items {
		size := item.Measure(p)
		if row.Len() > 0 && x+size.Width+l.HorizontalSpacing > maxWidth {
			rows = append(rows, row)
			row = Row{}
			x = 0
		}
		row.Items = append(row.Items, i)
		row.Sizes = append(row.Sizes, size)
		x += size.Width + l.HorizontalSpacing
	}
	if row.Len() > 0 {
		rows = append(rows, row)
	}
	return rows
}

// Height returns the stacked height of rows: every row's max height plus
// the vertical spacing between consecutive rows. There is no gap after the
// last row.
func (l Layout) Height(rows []Row) float64 {
	var h float64
	for i, row := range rows {
		h += row.MaxHeight()
		if i < len(rows)-1 {
			h += l.VerticalSpacing
		}
	}
	return h
}
