// Package layout provides the serialized form of a packed tag cloud.
//
// A [Layout] is the wire format shared by every output: the SVG and text
// sinks render it, the JSON sink and the HTTP API emit it, and the cache
// stores it. [Build] produces one from a tag set:
//
//	set, _ := tags.ReadFile("tags.toml")
//	l, err := layout.Build(set, measure.Pixels{FontSize: 14, PaddingX: 10, PaddingY: 6}, flow.New(), 480)
//
// Chip coordinates are in the layout's [Layout.Unit]: pixels for layouts
// measured with the embedded font, terminal cells for text layouts.
package layout
