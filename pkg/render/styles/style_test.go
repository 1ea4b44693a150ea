package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/tagflow/pkg/errors"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", StylePill},
		{"pill", StylePill},
		{"Simple", StyleSimple},
	}
	for _, tt := range tests {
		s, err := ByName(tt.name)
		if err != nil {
			t.Fatalf("ByName(%q) error: %v", tt.name, err)
		}
		if s.Name() != tt.want {
			t.Errorf("ByName(%q).Name() = %q, want %q", tt.name, s.Name(), tt.want)
		}
	}

	if _, err := ByName("handdrawn"); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("ByName(handdrawn) error = %v, want INVALID_STYLE", err)
	}
}

func TestRenderChip(t *testing.T) {
	c := Chip{ID: "go", Label: "Go & <Rust>", X: 1, Y: 2, W: 40, H: 20, CX: 21, CY: 12, FontSize: 14}

	for _, s := range []Style{Simple{}, Pill{}} {
		t.Run(s.Name(), func(t *testing.T) {
			var buf bytes.Buffer
			s.RenderChip(&buf, c)
			out := buf.String()

			for _, want := range []string{`id="chip-go"`, `width="40.00"`, `Go &amp; &lt;Rust&gt;`, `x="21.00"`} {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			if strings.Contains(out, "<a ") {
				t.Error("chip without URL should not be linked")
			}
		})
	}
}

func TestRenderChipLinked(t *testing.T) {
	var buf bytes.Buffer
	Pill{}.RenderChip(&buf, Chip{ID: "a", Label: "a", H: 10, URL: "https://x.dev/?a=1&b=2"})
	out := buf.String()
	if !strings.Contains(out, `<a href="https://x.dev/?a=1&amp;b=2" target="_blank">`) || !strings.HasSuffix(out, "</a>") {
		t.Errorf("linked chip:\n%s", out)
	}
	if !strings.Contains(out, `rx="5.00"`) {
		t.Errorf("pill radius should be half the height:\n%s", out)
	}
}

func TestRenderChipColor(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderChip(&buf, Chip{ID: "a", Label: "a", Color: "#fc0"})
	if !strings.Contains(buf.String(), `fill="#ffcc00"`) {
		t.Errorf("short hex should expand:\n%s", buf.String())
	}
}

func TestTextColorFor(t *testing.T) {
	tests := map[string]string{
		"#ffffff": "#000000",
		"#000":    "#ffffff",
		"#4e79a7": "#ffffff",
		"#edc948": "#000000",
		"nope":    "#000000",
	}
	for fill, want := range tests {
		if got := TextColorFor(fill); got != want {
			t.Errorf("TextColorFor(%q) = %q, want %q", fill, got, want)
		}
	}
}

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`a<b>"c"`); got != "a&lt;b&gt;&#34;c&#34;" {
		t.Errorf("EscapeXML() = %q", got)
	}
}
