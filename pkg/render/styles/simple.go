package styles

import (
	"bytes"
	"fmt"
)

// Simple draws square-cornered outlined chips.
type Simple struct{}

func (Simple) Name() string { return StyleSimple }

func (Simple) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <style>\n    .chip { stroke: #333333; stroke-width: 1; }\n    a { cursor: pointer; }\n  </style>\n")
}

func (Simple) RenderChip(buf *bytes.Buffer, c Chip) {
	fill := "#ffffff"
	if c.Color != "" {
		fill = expandHex(c.Color)
	}
	WrapURL(buf, c.URL, func() {
		fmt.Fprintf(buf, `  <rect id="chip-%s" class="chip" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="2" ry="2" fill="%s"/>`+"\n",
			EscapeXML(c.ID), c.X, c.Y, c.W, c.H, fill)
		renderLabel(buf, c, TextColorFor(fill))
	})
}
