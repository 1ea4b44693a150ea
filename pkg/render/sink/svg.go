package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/tagflow/pkg/layout"
	"github.com/matzehuels/tagflow/pkg/measure"
	"github.com/matzehuels/tagflow/pkg/render/styles"
)

// DefaultFontSize is the label size used when no font size is given.
const DefaultFontSize = 14.0

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style    styles.Style
	margin   float64
	fontSize float64
	scale    float64
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithMargin(m float64) SVGOption     { return func(r *svgRenderer) { r.margin = max(0, m) } }
func WithFontSize(s float64) SVGOption   { return func(r *svgRenderer) { r.fontSize = s } }

// WithCellScale sets how many pixels one cell spans when rendering a
// cell-unit layout. The default is 8.
func WithCellScale(px float64) SVGOption { return func(r *svgRenderer) { r.scale = px } }

func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	scale := 1.0
	if l.Unit == measure.UnitCell {
		scale = r.scale
	}
	w := l.Width*scale + 2*r.margin
	h := l.Height*scale + 2*r.margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	r.style.RenderDefs(&buf)
	if r.margin > 0 {
		fmt.Fprintf(&buf, `  <g transform="translate(%.1f %.1f)">`+"\n", r.margin, r.margin)
	}
	for _, c := range buildChips(l, scale, r.fontSize) {
		r.style.RenderChip(&buf, c)
	}
	if r.margin > 0 {
		buf.WriteString("  </g>\n")
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Pill{}, fontSize: DefaultFontSize, scale: 8}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func buildChips(l layout.Layout, scale, fontSize float64) []styles.Chip {
	chips := make([]styles.Chip, 0, len(l.Chips))
	for i, c := range l.Chips {
		x, y := c.X*scale, c.Y*scale
		w, h := c.Width*scale, c.Height*scale
		chips = append(chips, styles.Chip{
			ID:    c.ID,
			Label: c.Label,
			X:     x, Y: y,
			W: w, H: h,
			CX: x + w/2, CY: y + h/2,
			URL:      c.URL,
			Color:    c.Color,
			FontSize: fontSize,
			Index:    i,
		})
	}
	return chips
}
