// Package styles provides the visual styles used by the SVG sink.
package styles

import (
	"bytes"
	"strings"

	"github.com/matzehuels/tagflow/pkg/errors"
)

// Style names.
const (
	StyleSimple = "simple"
	StylePill   = "pill"
)

// Names lists the available styles.
var Names = []string{StyleSimple, StylePill}

// Style defines the visual appearance of chips.
type Style interface {
	// Name returns the style's identifier.
	Name() string
	// RenderDefs writes SVG <defs> and <style> content.
	RenderDefs(buf *bytes.Buffer)
	// RenderChip writes the SVG for a chip's shape and label.
	RenderChip(buf *bytes.Buffer, c Chip)
}

// Chip contains all data needed to render a single chip.
type Chip struct {
	ID         string  // Tag identifier
	Label      string  // Display text
	X, Y, W, H float64 // Position and dimensions
	CX, CY     float64 // Center coordinates (for text)
	URL        string  // Optional link target
	Color      string  // Optional fill color (#rgb or #rrggbb)
	FontSize   float64 // Label size in pixels
	Index      int     // Position in the layout, for palette cycling
}

// ByName returns the style registered under name.
func ByName(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "", StylePill:
		return Pill{}, nil
	case StyleSimple:
		return Simple{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: %s)", name, strings.Join(Names, ", "))
}
