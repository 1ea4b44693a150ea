package flow

// SizeThatFits reports the size of the container holding items under p.
//
// The width is the proposed width, or 0 when the proposal leaves it
// unspecified; it is never shrunk to the widest row. The height is
// [Layout.Height] of the rows packed against that width.
func (l Layout) SizeThatFits(p Proposal, items []Measurable) Size {
	maxWidth := p.Width.Or(0)
	rows := l.Rows(items, maxWidth, p)
	return Size{Width: maxWidth, Height: l.Height(rows)}
}
