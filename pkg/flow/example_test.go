package flow_test

import (
	"fmt"

	"github.com/matzehuels/tagflow/pkg/flow"
)

func Example() {
	items := []flow.Measurable{
		flow.Fixed{Width: 50, Height: 20},
		flow.Fixed{Width: 50, Height: 20},
		flow.Fixed{Width: 50, Height: 20},
	}
	l := flow.New(flow.WithAlignment(flow.Leading), flow.WithSpacing(10, 10))

	size := l.SizeThatFits(flow.ProposeWidth(120), items)
	fmt.Printf("size: %vx%v\n", size.Width, size.Height)

	bounds := flow.RectOf(flow.Point{}, size)
	for _, p := range l.Place(bounds, flow.ProposeWidth(120), items) {
		fmt.Printf("item %d: row %d at (%v, %v)\n", p.Index, p.Row, p.Origin.X, p.Origin.Y)
	}
	// Output:
	// size: 120x50
	// item 0: row 0 at (0, 0)
	// item 1: row 0 at (60, 0)
	// item 2: row 1 at (0, 30)
}

func ExampleLayout_Rows() {
	items := []flow.Measurable{
		flow.Fixed{Width: 30, Height: 10},
		flow.Fixed{Width: 200, Height: 10},
		flow.Fixed{Width: 30, Height: 10},
	}
	rows := flow.New().Rows(items, 100, flow.Proposal{})
	for i, r := range rows {
		fmt.Println(i, r.Items)
	}
	// Output:
	// 0 [0]
	// 1 [1]
	// 2 [2]
}

func ExampleLayout_SizeThatFits_unspecified() {
	items := []flow.Measurable{
		flow.Fixed{Width: 5, Height: 10},
		flow.Fixed{Width: 5, Height: 10},
	}
	size := flow.New().SizeThatFits(flow.Proposal{}, items)
	fmt.Printf("%vx%v\n", size.Width, size.Height)
	// Output: 0x30
}
