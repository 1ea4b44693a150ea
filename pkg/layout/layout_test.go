package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/tagflow/pkg/errors"
	"github.com/matzehuels/tagflow/pkg/flow"
	"github.com/matzehuels/tagflow/pkg/measure"
	"github.com/matzehuels/tagflow/pkg/tags"
)

// fixedSet returns tags with explicit sizes so results do not depend on
// font metrics.
func fixedSet(t *testing.T, widths ...float64) *tags.Set {
	t.Helper()
	s := &tags.Set{}
	for i, w := range widths {
		s.Tags = append(s.Tags, tags.Tag{Label: string(rune('a' + i)), Width: w, Height: 20})
	}
	if err := s.Normalize(); err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	return s
}

func TestBuild(t *testing.T) {
	set := fixedSet(t, 40, 40, 40)
	cfg := flow.New(flow.WithAlignment(flow.Leading), flow.WithSpacing(10, 10))

	l, err := Build(set, measure.Pixels{FontSize: 14}, cfg, 100)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	// 40+10+40+10 = 100 fits; the third wraps.
	wantRows := [][]string{{"a", "b"}, {"c"}}
	if diff := cmp.Diff(wantRows, l.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
	if l.Width != 100 || l.Height != 50 {
		t.Errorf("size = %vx%v, want 100x50", l.Width, l.Height)
	}
	if l.Unit != measure.UnitPixel {
		t.Errorf("Unit = %q", l.Unit)
	}

	wantChips := []Chip{
		{ID: "a", Label: "a", Row: 0, X: 0, Y: 0, Width: 40, Height: 20},
		{ID: "b", Label: "b", Row: 0, X: 50, Y: 0, Width: 40, Height: 20},
		{ID: "c", Label: "c", Row: 1, X: 0, Y: 30, Width: 40, Height: 20},
	}
	if diff := cmp.Diff(wantChips, l.Chips); diff != "" {
		t.Errorf("Chips mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCentered(t *testing.T) {
	set := fixedSet(t, 40, 40)
	l, err := Build(set, measure.Cells{}, flow.New(flow.WithSpacing(10, 10)), 200)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	// Content width 90 inside 200: leading 0, trailing 110, center 55.
	if l.Chips[0].X != 55 || l.Chips[1].X != 105 {
		t.Errorf("X = %v, %v; want 55, 105", l.Chips[0].X, l.Chips[1].X)
	}
	if l.Unit != measure.UnitCell {
		t.Errorf("Unit = %q", l.Unit)
	}
}

func TestBuildZeroWidth(t *testing.T) {
	set := fixedSet(t, 10, 10, 10)
	l, err := Build(set, measure.Pixels{}, flow.New(), 0)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(l.Rows) != 3 {
		t.Errorf("rows = %d, want 3", len(l.Rows))
	}
	if l.Width != 0 || l.Height != 3*20+2*10 {
		t.Errorf("size = %vx%v", l.Width, l.Height)
	}
}

func TestBuildEmpty(t *testing.T) {
	l, err := Build(&tags.Set{}, measure.Pixels{}, flow.New(), 300)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if l.Height != 0 || len(l.Rows) != 0 || len(l.Chips) != 0 {
		t.Errorf("empty build = %+v", l)
	}
	data, _ := Marshal(l)
	if !strings.Contains(string(data), `"chips": []`) {
		t.Errorf("empty chips should serialize as []:\n%s", data)
	}
}

func TestBuildRejectsNegativeWidth(t *testing.T) {
	_, err := Build(&tags.Set{}, measure.Pixels{}, flow.New(), -1)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Build() error = %v, want INVALID_INPUT", err)
	}
}

func TestRoundTrip(t *testing.T) {
	set := fixedSet(t, 30, 60, 90)
	set.Tags[1].URL = "https://example.com"
	set.Tags[2].Color = "#abc"
	l, err := Build(set, measure.Pixels{}, flow.New(flow.WithAlignment(flow.Trailing)), 150)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "cloud.layout.json")
	if err := WriteFile(l, path); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if diff := cmp.Diff(l, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"alignment": "trailing"`) {
		t.Errorf("alignment should serialize by name:\n%s", data)
	}
	if !IsLayoutFile(data) {
		t.Error("IsLayoutFile() = false for a layout")
	}
}

func TestUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"bad json", `{`, errors.ErrCodeInvalidLayout},
		{"bad unit", `{"unit":"em","chips":[]}`, errors.ErrCodeInvalidUnit},
		{"negative height", `{"height":-1,"chips":[]}`, errors.ErrCodeInvalidLayout},
		{"duplicate chip", `{"rows":[["a"]],"chips":[{"id":"a"},{"id":"a"}]}`, errors.ErrCodeInvalidLayout},
		{"unknown row id", `{"rows":[["a","x"]],"chips":[{"id":"a"}]}`, errors.ErrCodeInvalidLayout},
		{"negative row", `{"unit":"cell","rows":[["a"]],"chips":[{"id":"a","row":-1}]}`, errors.ErrCodeInvalidLayout},
		{"row past end", `{"rows":[["a"]],"chips":[{"id":"a","row":1000000000}]}`, errors.ErrCodeInvalidLayout},
		{"chip missing from rows", `{"chips":[{"id":"a"}]}`, errors.ErrCodeInvalidLayout},
		{"chip in wrong row", `{"rows":[["b"],["a"]],"chips":[{"id":"a"},{"id":"b","row":1}]}`, errors.ErrCodeInvalidLayout},
		{"chip listed twice", `{"rows":[["a","a"]],"chips":[{"id":"a"}]}`, errors.ErrCodeInvalidLayout},
		{"bad alignment", `{"alignment":"up"}`, errors.ErrCodeInvalidLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.data))
			if !errors.Is(err, tt.code) {
				t.Errorf("Unmarshal() error = %v, want %s", err, tt.code)
			}
		})
	}

	if _, err := Unmarshal([]byte(`{"rows":[["a","b"],["c"]],"chips":[{"id":"a"},{"id":"b"},{"id":"c","row":1}]}`)); err != nil {
		t.Errorf("Unmarshal() rejected a consistent layout: %v", err)
	}

	l, err := Unmarshal([]byte(`{"width":10,"chips":[]}`))
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if l.Unit != measure.UnitPixel {
		t.Errorf("default Unit = %q, want px", l.Unit)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestIsLayoutFile(t *testing.T) {
	if IsLayoutFile([]byte(`{"tags":[{"label":"a"}]}`)) {
		t.Error("tag document detected as layout")
	}
	if IsLayoutFile([]byte("Go\nRust\n")) {
		t.Error("text detected as layout")
	}
}

func TestConfig(t *testing.T) {
	l := Layout{Alignment: flow.Trailing, HorizontalSpacing: 3, VerticalSpacing: 4}
	want := flow.Layout{Alignment: flow.Trailing, HorizontalSpacing: 3, VerticalSpacing: 4}
	if l.Config() != want {
		t.Errorf("Config() = %+v", l.Config())
	}
}
