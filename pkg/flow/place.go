package flow

// Placement is where one item ended up.
type Placement struct {
	// Index is the item's position in the input slice.
	Index int
	// Row is the zero-based row the item was packed into.
	Row int
	// Origin is the item's top-left corner.
	Origin Point
	// Size is the size the item reported while packing.
	Size Size
	// Proposal is the proposal the item was measured with.
	Proposal Proposal
}

// Frame returns the rectangle occupied by the item.
func (p Placement) Frame() Rect { return RectOf(p.Origin, p.Size) }

// RowOrigins returns the three candidate X origins of row inside bounds.
// Center is the midpoint of leading and trailing.
func (l Layout) RowOrigins(bounds Rect, row Row) (leading, trailing, center float64) {
	leading = bounds.Right() - bounds.Width
	trailing = bounds.Right() - row.ContentWidth(l.HorizontalSpacing)
	center = (leading + trailing) / 2
	return leading, trailing, center
}

func (l Layout) rowOrigin(bounds Rect, row Row) float64 {
	leading, trailing, center := l.RowOrigins(bounds, row)
	switch l.Alignment {
	case Leading:
		return leading
	case Trailing:
		return trailing
	default:
		return center
	}
}

// Place positions items inside bounds.
//
// Rows are packed against bounds.Width. Each row starts at the X chosen by the
// alignment and at a Y that advances by the row's max height plus the vertical
// spacing after every row. Within a row, X advances by each item's width plus
// the horizontal spacing.
//
// The returned slice is indexed like items. Items implementing [Placeable]
// are notified in input order.
func (l Layout) Place(bounds Rect, p Proposal, items []Measurable) []Placement {
	rows := l.Rows(items, bounds.Width, p)
	placements := make([]Placement, len(items))

	origin := bounds.Origin()
	for r, row := range rows {
		origin.X = l.rowOrigin(bounds, row)
		for k, idx := range row.Items {
			size := row.Sizes[k]
			placements[idx] = Placement{
				Index:    idx,
				Row:      r,
				Origin:   origin,
				Size:     size,
				Proposal: p,
			}
			if pl, ok := items[idx].(Placeable); ok {
				pl.Place(origin, p)
			}
			origin.X += size.Width + l.HorizontalSpacing
		}
		origin.Y += row.MaxHeight() + l.VerticalSpacing
	}
	return placements
}
