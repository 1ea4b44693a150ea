package styles

import (
	"bytes"
	"fmt"
)

// palette is cycled for pill chips without an explicit color.
var palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2",
	"#59a14f", "#edc948", "#b07aa1", "#ff9da7",
}

// Pill draws fully rounded, filled chips.
type Pill struct{}

func (Pill) Name() string { return StylePill }

func (Pill) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <style>\n    .chip { stroke: none; }\n    a:hover .chip { opacity: 0.85; }\n    a { cursor: pointer; }\n  </style>\n")
}

func (Pill) RenderChip(buf *bytes.Buffer, c Chip) {
	fill := palette[c.Index%len(palette)]
	if c.Color != "" {
		fill = expandHex(c.Color)
	}
	r := c.H / 2
	WrapURL(buf, c.URL, func() {
		fmt.Fprintf(buf, `  <rect id="chip-%s" class="chip" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" ry="%.2f" fill="%s"/>`+"\n",
			EscapeXML(c.ID), c.X, c.Y, c.W, c.H, r, r, fill)
		renderLabel(buf, c, TextColorFor(fill))
	})
}
