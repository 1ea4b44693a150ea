package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/tagflow/pkg/errors"
	"github.com/matzehuels/tagflow/pkg/flow"
)

const sampleTOML = `
[layout]
width = 480.0
alignment = "trailing"
horizontal_spacing = 8.0

[[tag]]
label = "Go"
url = "https://go.dev"
color = "#00ADD8"

[[tag]]
label = "Machine Learning"

[[tag]]
id = "go-2-custom"
label = "Go"
width = 90.0
`

func TestParseTOML(t *testing.T) {
	s, err := Parse([]byte(sampleTOML), FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []Tag{
		{ID: "go", Label: "Go", URL: "https://go.dev", Color: "#00ADD8"},
		{ID: "machine-learning", Label: "Machine Learning"},
		{ID: "go-2-custom", Label: "Go", Width: 90},
	}
	if diff := cmp.Diff(want, s.Tags); diff != "" {
		t.Errorf("Tags mismatch (-want +got):\n%s", diff)
	}

	if s.Layout.Width == nil || *s.Layout.Width != 480 {
		t.Errorf("Layout.Width = %v, want 480", s.Layout.Width)
	}
	if s.Layout.Alignment == nil || *s.Layout.Alignment != flow.Trailing {
		t.Errorf("Layout.Alignment = %v, want trailing", s.Layout.Alignment)
	}
	if s.Layout.VerticalSpacing != nil {
		t.Errorf("Layout.VerticalSpacing = %v, want unset", *s.Layout.VerticalSpacing)
	}
}

func TestParseTOMLUnknownKey(t *testing.T) {
	_, err := Parse([]byte("[[tag]]\nlabel = \"a\"\ncolour = \"#fff\"\n"), FormatTOML)
	if !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("Parse() error = %v, want INVALID_DOCUMENT", err)
	}
}

func TestParseTOMLBadAlignment(t *testing.T) {
	_, err := Parse([]byte("[layout]\nalignment = \"up\"\n"), FormatTOML)
	if err == nil {
		t.Fatal("Parse() should reject unknown alignment")
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{
		"layout": {"alignment": "leading", "vertical_spacing": 4},
		"tags": [{"label": "a"}, {"label": "b", "url": "https://b.example"}]
	}`)
	s, err := Parse(data, FormatJSON)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := s.Labels(); !cmp.Equal(got, []string{"a", "b"}) {
		t.Errorf("Labels() = %v", got)
	}
	if *s.Layout.VerticalSpacing != 4 {
		t.Errorf("VerticalSpacing = %v, want 4", *s.Layout.VerticalSpacing)
	}
	if s.Tags[1].URL != "https://b.example" {
		t.Errorf("URL = %q", s.Tags[1].URL)
	}
}

func TestParseJSONUnknownField(t *testing.T) {
	_, err := Parse([]byte(`{"tags":[{"label":"a","size":3}]}`), FormatJSON)
	if !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("Parse() error = %v, want INVALID_DOCUMENT", err)
	}
}

func TestParseText(t *testing.T) {
	data := []byte("# languages\nGo\n\n  Rust  \nGo\n#Zig\nC++\n")
	s, err := Parse(data, FormatText)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []Tag{
		{ID: "go", Label: "Go"},
		{ID: "rust", Label: "Rust"},
		{ID: "go-2", Label: "Go"},
		{ID: "c", Label: "C++"},
	}
	if diff := cmp.Diff(want, s.Tags); diff != "" {
		t.Errorf("Tags mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, f := range []Format{FormatTOML, FormatJSON, FormatText} {
		data := []byte("")
		if f == FormatJSON {
			data = []byte("{}")
		}
		s, err := Parse(data, f)
		if err != nil {
			t.Fatalf("Parse(%s) error: %v", f, err)
		}
		if s.Len() != 0 {
			t.Errorf("Parse(%s) Len() = %d, want 0", f, s.Len())
		}
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.Code
	}{
		{"empty label", "[[tag]]\nlabel = \"\"\n", errors.ErrCodeInvalidTag},
		{"bad url", "[[tag]]\nlabel = \"a\"\nurl = \"ftp://x\"\n", errors.ErrCodeInvalidInput},
		{"bad color", "[[tag]]\nlabel = \"a\"\ncolor = \"blue\"\n", errors.ErrCodeInvalidInput},
		{"negative width", "[[tag]]\nlabel = \"a\"\nwidth = -3.0\n", errors.ErrCodeInvalidInput},
		{"bad id", "[[tag]]\nid = \"a b\"\nlabel = \"a\"\n", errors.ErrCodeInvalidTag},
		{"duplicate id", "[[tag]]\nid = \"x\"\nlabel = \"a\"\n[[tag]]\nid = \"x\"\nlabel = \"b\"\n", errors.ErrCodeInvalidTag},
		{"negative layout width", "[layout]\nwidth = -1.0\n", errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), FormatTOML)
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Parse() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Go", "go"},
		{"Machine Learning", "machine-learning"},
		{"  C++ / C#  ", "c-c"},
		{"v1.2", "v1-2"},
		{"!!!", "tag"},
		{"日本", "tag"},
		{"café", "caf"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Slug(tt.input); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeAvoidsExplicitIDs(t *testing.T) {
	s := &Set{Tags: []Tag{{Label: "go"}, {ID: "go", Label: "golang"}}}
	if err := s.Normalize(); err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if s.Tags[0].ID != "go-2" {
		t.Errorf("derived ID = %q, want go-2", s.Tags[0].ID)
	}
}

func TestFromLabels(t *testing.T) {
	s, err := FromLabels("a", "b", "a")
	if err != nil {
		t.Fatalf("FromLabels() error: %v", err)
	}
	ids := []string{s.Tags[0].ID, s.Tags[1].ID, s.Tags[2].ID}
	if !cmp.Equal(ids, []string{"a", "b", "a-2"}) {
		t.Errorf("IDs = %v", ids)
	}

	if _, err := FromLabels("ok", " "); err == nil {
		t.Error("FromLabels() should reject blank labels")
	}
}

func TestSettingsApply(t *testing.T) {
	a := flow.Leading
	h := 3.0
	got := Settings{Alignment: &a, HorizontalSpacing: &h}.Apply(flow.New())
	want := flow.Layout{Alignment: flow.Leading, HorizontalSpacing: 3, VerticalSpacing: flow.DefaultSpacing}
	if got != want {
		t.Errorf("Apply() = %+v, want %+v", got, want)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tags.toml")
	if err := os.WriteFile(path, []byte(sampleTOML), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}

	_, err = ReadFile(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile(missing) error = %v, want FILE_NOT_FOUND", err)
	}

	if _, err := ReadFile(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("ReadFile(\"\") error = %v, want INVALID_PATH", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.toml":     FormatTOML,
		"a.TOML":     FormatTOML,
		"dir/b.json": FormatJSON,
		"c.txt":      FormatText,
		"README":     FormatText,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("TXT"); err != nil || f != FormatText {
		t.Errorf("ParseFormat(TXT) = %q, %v", f, err)
	}
	if _, err := ParseFormat("yaml"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ParseFormat(yaml) error = %v", err)
	}
}
