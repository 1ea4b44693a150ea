package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/tagflow/pkg/fonts"
)

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func WrapURL(buf *bytes.Buffer, url string, fn func()) {
	if url != "" {
		fmt.Fprintf(buf, `  <a href="%s" target="_blank">`, EscapeXML(url))
	}
	fn()
	if url != "" {
		buf.WriteString("</a>")
	}
}

func renderLabel(buf *bytes.Buffer, c Chip, fill string) {
	fmt.Fprintf(buf, `  <text class="chip-text" data-chip="%s" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
		EscapeXML(c.ID), c.CX, c.CY, EscapeXML(fonts.FallbackFontFamily), c.FontSize, fill, EscapeXML(c.Label))
}

// expandHex turns #rgb into #rrggbb.
func expandHex(hex string) string {
	if len(hex) == 4 {
		return "#" + strings.Repeat(hex[1:2], 2) + strings.Repeat(hex[2:3], 2) + strings.Repeat(hex[3:4], 2)
	}
	return hex
}

// TextColorFor returns black or white, whichever reads better on fill.
// Unparseable colors get black.
func TextColorFor(fill string) string {
	hex := expandHex(fill)
	if len(hex) != 7 || hex[0] != '#' {
		return "#000000"
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return "#000000"
	}
	r, g, b := float64(v>>16&0xff), float64(v>>8&0xff), float64(v&0xff)
	// ITU-R BT.601 luma
	if 0.299*r+0.587*g+0.114*b > 150 {
		return "#000000"
	}
	return "#ffffff"
}
