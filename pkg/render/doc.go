// Package render groups the output side of tagflow.
//
// A packed [layout.Layout] is turned into bytes by the [sink] subpackage
// (SVG, JSON, terminal text). SVG appearance is controlled by a
// [styles.Style]:
//
//	style, _ := styles.ByName("pill")
//	svg := sink.RenderSVG(l, sink.WithStyle(style), sink.WithMargin(8))
//
// [layout.Layout]: github.com/matzehuels/tagflow/pkg/layout
// [sink]: github.com/matzehuels/tagflow/pkg/render/sink
// [styles.Style]: github.com/matzehuels/tagflow/pkg/render/styles
package render
