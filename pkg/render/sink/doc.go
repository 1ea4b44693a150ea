// Package sink provides output format renderers for tag layouts.
//
// A "sink" transforms a computed [layout.Layout] into a final output format:
//
//   - SVG: scalable vector graphics, one rectangle and label per chip
//   - JSON: the layout itself, pretty-printed
//   - Text: terminal rendering with lipgloss
//
// Basic usage:
//
//	svg := sink.RenderSVG(l, sink.WithStyle(styles.Pill{}), sink.WithMargin(8))
//	txt := sink.RenderText(l, sink.WithBorder())
//
// Sinks never modify the layout and are safe to call concurrently.
package sink
