// Package flow packs measurable items into wrapped rows.
//
// # Overview
//
// A flow (or "tag") layout arranges variable-width boxes left to right,
// starting a new row whenever the next box would run past the width budget.
// Each row is then positioned according to a horizontal [Alignment] and rows
// are stacked top to bottom with a vertical gap. This is the layout used for
// chip and tag collections.
//
// The package knows nothing about what the items are. Anything that can
// report a preferred [Size] for a [Proposal] implements [Measurable]:
//
//	items := []flow.Measurable{
//	    flow.Fixed{Width: 50, Height: 20},
//	    flow.Fixed{Width: 50, Height: 20},
//	    flow.Fixed{Width: 50, Height: 20},
//	}
//	l := flow.New(flow.WithSpacing(10, 10))
//	size := l.SizeThatFits(flow.Propose(120, 0), items) // 120x50
//
// # Three Contracts
//
// All three entry points share one packing pass:
//
//   - [Layout.Rows] buckets items into rows for a width constraint.
//   - [Layout.SizeThatFits] reports the bounding size of the packed rows.
//   - [Layout.Place] computes the top-left origin of every item inside a
//     bounding rectangle.
//
// Rows are recomputed from scratch on every call. Nothing is cached and a
// [Layout] holds no mutable state, so a single value can be shared freely
// across goroutines as long as the items' Measure methods are reentrant.
//
// # Edge Cases
//
// An item wider than the constraint is never split or dropped; it gets a row
// of its own. An unspecified proposal width is treated as zero by
// [Layout.SizeThatFits], which puts every item on its own row. Spacing values
// are used as given, including zero and negative values.
//
// # Gap Handling
//
// Sizing does not add a vertical gap after the last row, while placement
// advances past every row including the last. Likewise the trailing origin
// of a row excludes the gap after its final item, while the per-item advance
// includes it. Both asymmetries are deliberate and keep output stable.
package flow
