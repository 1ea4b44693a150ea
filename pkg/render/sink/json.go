package sink

import (
	"encoding/json"

	"github.com/matzehuels/tagflow/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
}

// WithJSONStyle records the style name (e.g., "simple", "pill") in the JSON
// output so the layout can be re-rendered the same way.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	layout.Layout
	Style string `json:"style,omitempty"`
}

// RenderJSON exports the layout as a pretty-printed JSON document. The result
// can be read back with [layout.Unmarshal]; the style field is ignored there.
//
// RenderJSON returns an error only if JSON marshaling fails.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if l.Rows == nil {
		l.Rows = [][]string{}
	}
	if l.Chips == nil {
		l.Chips = []layout.Chip{}
	}
	return json.MarshalIndent(jsonOutput{Layout: l, Style: r.style}, "", "  ")
}
