package flow

import "testing"

func TestSizeThatFits(t *testing.T) {
	l := New(WithSpacing(10, 10))
	tests := []struct {
		name     string
		proposal Proposal
		items    []Measurable
		want     Size
	}{
		{
			name:     "two rows forced by width",
			proposal: ProposeWidth(120),
			items:    widths(20, 50, 50, 50),
			want:     Size{Width: 120, Height: 50},
		},
		{
			name:     "no items",
			proposal: ProposeWidth(300),
			items:    nil,
			want:     Size{Width: 300, Height: 0},
		},
		{
			name:     "width is the constraint, not the widest row",
			proposal: Propose(400, 999),
			items:    widths(20, 50),
			want:     Size{Width: 400, Height: 20},
		},
		{
			name:     "unspecified width collapses to zero",
			proposal: Proposal{},
			items:    widths(20, 5, 5, 5),
			want:     Size{Width: 0, Height: 20*3 + 10*2},
		},
		{
			name:     "no items and no constraint",
			proposal: Proposal{},
			items:    nil,
			want:     Size{},
		},
		{
			name:     "overflowing item keeps its height",
			proposal: ProposeWidth(100),
			items:    fixedItems(Size{Width: 500, Height: 40}),
			want:     Size{Width: 100, Height: 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.SizeThatFits(tt.proposal, tt.items); got != tt.want {
				t.Errorf("SizeThatFits() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSizeThatFitsUnspecifiedWidthRows(t *testing.T) {
	l := New()
	items := widths(10, 1, 2, 3, 4)

	rows := l.Rows(items, Proposal{}.Width.Or(0), Proposal{})
	if len(rows) != len(items) {
		t.Fatalf("got %d rows, want one per item (%d)", len(rows), len(items))
	}
	for i, r := range rows {
		if r.Len() != 1 || r.Items[0] != i {
			t.Errorf("row %d = %v, want [%d]", i, r.Items, i)
		}
	}
}

func TestSizeThatFitsVerticalSpacingOnlyBetweenRows(t *testing.T) {
	items := widths(20, 50, 50, 50)

	for _, vs := range []float64{0, 5, 10, -5} {
		l := Layout{HorizontalSpacing: 10, VerticalSpacing: vs}
		got := l.SizeThatFits(ProposeWidth(120), items)
		want := 20 + vs + 20
		if got.Height != want {
			t.Errorf("vs=%v: Height = %v, want %v", vs, got.Height, want)
		}
	}
}
