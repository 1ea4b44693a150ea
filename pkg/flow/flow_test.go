package flow

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/tagflow/pkg/errors"
)

func TestNewDefaults(t *testing.T) {
	l := New()
	if l.Alignment != Center {
		t.Errorf("Alignment = %v, want center", l.Alignment)
	}
	if l.HorizontalSpacing != DefaultSpacing || l.VerticalSpacing != DefaultSpacing {
		t.Errorf("spacing = (%v, %v), want (%v, %v)", l.HorizontalSpacing, l.VerticalSpacing, DefaultSpacing, DefaultSpacing)
	}
}

func TestNewOptions(t *testing.T) {
	l := New(
		WithAlignment(Trailing),
		WithHorizontalSpacing(3),
		WithVerticalSpacing(4),
	)
	want := Layout{Alignment: Trailing, HorizontalSpacing: 3, VerticalSpacing: 4}
	if l != want {
		t.Errorf("New() = %+v, want %+v", l, want)
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		input   string
		want    Alignment
		wantErr bool
	}{
		{"leading", Leading, false},
		{"Leading", Leading, false},
		{"left", Leading, false},
		{"center", Center, false},
		{" CENTER ", Center, false},
		{"centre", Center, false},
		{"trailing", Trailing, false},
		{"right", Trailing, false},
		{"", Leading, true},
		{"justify", Leading, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlignment(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAlignment(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidAlignment) {
					t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidAlignment)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseAlignment(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAlignmentString(t *testing.T) {
	for _, a := range Alignments {
		back, err := ParseAlignment(a.String())
		if err != nil || back != a {
			t.Errorf("ParseAlignment(%q) = %v, %v", a.String(), back, err)
		}
	}
	if got := Alignment(9).String(); got != "alignment(9)" {
		t.Errorf("unknown alignment String() = %q", got)
	}
}

func TestAlignmentNext(t *testing.T) {
	if Leading.Next() != Center || Center.Next() != Trailing || Trailing.Next() != Leading {
		t.Error("Next() should cycle leading -> center -> trailing -> leading")
	}
}

func TestAlignmentJSON(t *testing.T) {
	var cfg struct {
		Alignment Alignment `json:"alignment"`
	}
	if err := json.Unmarshal([]byte(`{"alignment":"trailing"}`), &cfg); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if cfg.Alignment != Trailing {
		t.Errorf("Alignment = %v, want trailing", cfg.Alignment)
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `{"alignment":"trailing"}` {
		t.Errorf("Marshal() = %s", data)
	}

	if err := json.Unmarshal([]byte(`{"alignment":"up"}`), &cfg); err == nil {
		t.Error("Unmarshal() should reject unknown alignment")
	}
}

func TestDimension(t *testing.T) {
	if v, ok := Unspecified.Value(); ok || v != 0 {
		t.Errorf("Unspecified.Value() = (%v, %v)", v, ok)
	}
	if Unspecified.Or(7) != 7 {
		t.Error("Unspecified.Or(7) should be 7")
	}
	if Exactly(0).Or(7) != 0 {
		t.Error("Exactly(0).Or(7) should be 0")
	}
	if !Exactly(3).IsSpecified() {
		t.Error("Exactly(3) should be specified")
	}
	if got := (Proposal{Width: Exactly(120)}).String(); got != "120xunspecified" {
		t.Errorf("Proposal.String() = %q", got)
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if r.Left() != 10 || r.Right() != 40 || r.Top() != 20 || r.Bottom() != 60 {
		t.Errorf("edges = %v %v %v %v", r.Left(), r.Right(), r.Top(), r.Bottom())
	}
	if r.Origin() != (Point{X: 10, Y: 20}) {
		t.Errorf("Origin() = %+v", r.Origin())
	}
	if RectOf(r.Origin(), r.Size()) != r {
		t.Error("RectOf(Origin, Size) should round-trip")
	}
}

func TestItems(t *testing.T) {
	fixed := []Fixed{{Width: 1, Height: 2}, {Width: 3, Height: 4}}
	items := Items(fixed)
	if len(items) != 2 {
		t.Fatalf("Items() len = %d, want 2", len(items))
	}
	if got := items[1].Measure(Proposal{}); got != (Size{Width: 3, Height: 4}) {
		t.Errorf("items[1].Measure() = %+v", got)
	}
}
