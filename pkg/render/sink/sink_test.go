package sink

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/tagflow/pkg/flow"
	"github.com/matzehuels/tagflow/pkg/layout"
	"github.com/matzehuels/tagflow/pkg/measure"
	"github.com/matzehuels/tagflow/pkg/render/styles"
	"github.com/matzehuels/tagflow/pkg/tags"
)

func buildCells(t *testing.T, m measure.Cells, cfg flow.Layout, width float64, labels ...string) layout.Layout {
	t.Helper()
	set, err := tags.FromLabels(labels...)
	if err != nil {
		t.Fatalf("FromLabels() error: %v", err)
	}
	l, err := layout.Build(set, m, cfg, width)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return l
}

func sampleLayout() layout.Layout {
	return layout.Layout{
		Width: 100, Height: 50, Unit: measure.UnitPixel,
		Rows: [][]string{{"go", "rust"}},
		Chips: []layout.Chip{
			{ID: "go", Label: "Go", URL: "https://go.dev", X: 0, Y: 0, Width: 40, Height: 20},
			{ID: "rust", Label: "Rust <3", Color: "#dea584", X: 50, Y: 0, Width: 50, Height: 20},
		},
	}
}

func TestRenderSVG(t *testing.T) {
	out := string(RenderSVG(sampleLayout()))

	for _, want := range []string{
		`viewBox="0 0 100.0 50.0"`,
		`id="chip-go"`,
		`id="chip-rust"`,
		`<a href="https://go.dev" target="_blank">`,
		`Rust &lt;3`,
		`fill="#dea584"`,
		`font-size="14.0"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if !strings.HasPrefix(out, "<svg") || !strings.HasSuffix(out, "</svg>\n") {
		t.Error("SVG should be a single root element")
	}
	if strings.Count(out, "<rect") != 2 {
		t.Errorf("want 2 rects, got %d", strings.Count(out, "<rect"))
	}
}

func TestRenderSVGOptions(t *testing.T) {
	out := string(RenderSVG(sampleLayout(), WithMargin(10), WithStyle(styles.Simple{}), WithFontSize(12)))

	if !strings.Contains(out, `viewBox="0 0 120.0 70.0"`) {
		t.Error("margin should grow the canvas")
	}
	if !strings.Contains(out, `<g transform="translate(10.0 10.0)">`) {
		t.Error("margin should translate content")
	}
	if !strings.Contains(out, `font-size="12.0"`) {
		t.Error("font size option ignored")
	}
	if !strings.Contains(out, `rx="2"`) {
		t.Error("simple style should use square corners")
	}
}

func TestRenderSVGCells(t *testing.T) {
	l := buildCells(t, measure.Cells{}, flow.New(flow.WithAlignment(flow.Leading), flow.WithSpacing(1, 1)), 10, "ab")
	out := string(RenderSVG(l, WithCellScale(10)))
	if !strings.Contains(out, `viewBox="0 0 100.0 10.0"`) {
		t.Errorf("cell layouts should scale:\n%s", out)
	}
	if !strings.Contains(out, `width="20.00"`) {
		t.Errorf("chip width should scale:\n%s", out)
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	out := string(RenderSVG(layout.Layout{Unit: measure.UnitPixel}))
	if strings.Contains(out, "<rect") {
		t.Error("empty layout should have no chips")
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(sampleLayout(), WithJSONStyle("pill"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if raw["style"] != "pill" {
		t.Errorf("style = %v", raw["style"])
	}

	l, err := layout.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if len(l.Chips) != 2 || l.Chips[1].Label != "Rust <3" {
		t.Errorf("round trip = %+v", l.Chips)
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	data, err := RenderJSON(layout.Layout{Unit: measure.UnitCell})
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	if !strings.Contains(string(data), `"chips": []`) || !strings.Contains(string(data), `"rows": []`) {
		t.Errorf("empty slices should serialize as []:\n%s", data)
	}
	if strings.Contains(string(data), "style") {
		t.Error("style should be omitted when unset")
	}
}

func TestRenderText(t *testing.T) {
	tests := []struct {
		name  string
		cfg   flow.Layout
		width float64
		want  string
	}{
		{
			name:  "leading",
			cfg:   flow.New(flow.WithAlignment(flow.Leading), flow.WithSpacing(1, 1)),
			width: 20,
			want:  "go rust\n",
		},
		{
			// content 7 in 21: trailing 14, center 7
			name:  "center",
			cfg:   flow.New(flow.WithSpacing(1, 1)),
			width: 21,
			want:  "       go rust\n",
		},
		{
			name:  "trailing",
			cfg:   flow.New(flow.WithAlignment(flow.Trailing), flow.WithSpacing(1, 1)),
			width: 10,
			want:  "   go rust\n",
		},
		{
			// second chip wraps: 3 + 4 + 1 > 6
			name:  "wrapped with vertical gap",
			cfg:   flow.New(flow.WithAlignment(flow.Leading), flow.WithHorizontalSpacing(1), flow.WithVerticalSpacing(1)),
			width: 6,
			want:  "go\n\nrust\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := buildCells(t, measure.Cells{}, tt.cfg, tt.width, "go", "rust")
			if got := RenderText(l); got != tt.want {
				t.Errorf("RenderText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderTextBorder(t *testing.T) {
	cfg := flow.New(flow.WithAlignment(flow.Leading), flow.WithSpacing(0, 0))
	l := buildCells(t, measure.Cells{PaddingX: 1, Border: true}, cfg, 40, "go")
	want := "╭────╮\n│ go │\n╰────╯\n"
	if got := RenderText(l, WithBorder()); got != want {
		t.Errorf("RenderText() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderTextPixels(t *testing.T) {
	if got := RenderText(sampleLayout()); got != "Go Rust <3\n" {
		t.Errorf("RenderText() = %q", got)
	}
}

func TestRenderTextEmpty(t *testing.T) {
	if got := RenderText(layout.Layout{Unit: measure.UnitCell}); got != "" {
		t.Errorf("RenderText() = %q, want empty", got)
	}
}

func TestRenderTextSkipsChipsOutsideRows(t *testing.T) {
	l := sampleLayout()
	l.Chips = append(l.Chips,
		layout.Chip{ID: "neg", Label: "neg", Row: -1, Width: 3, Height: 1},
		layout.Chip{ID: "far", Label: "far", Row: 1 << 30, Width: 3, Height: 1},
	)
	if got := RenderText(l); got != "Go Rust <3\n" {
		t.Errorf("RenderText() = %q", got)
	}
}
