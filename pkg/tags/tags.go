package tags

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/matzehuels/tagflow/pkg/errors"
	"github.com/matzehuels/tagflow/pkg/flow"
)

// Tag is a single chip in a document.
type Tag struct {
	ID    string `toml:"id" json:"id,omitempty"`
	Label string `toml:"label" json:"label"`
	URL   string `toml:"url" json:"url,omitempty"`
	Color string `toml:"color" json:"color,omitempty"`

	// Width and Height override the measured size when non-zero.
	Width  float64 `toml:"width" json:"width,omitempty"`
	Height float64 `toml:"height" json:"height,omitempty"`
}

// Settings holds the optional [layout] table of a document. Nil fields were
// not present in the document.
type Settings struct {
	Width             *float64        `toml:"width" json:"width,omitempty"`
	Alignment         *flow.Alignment `toml:"alignment" json:"alignment,omitempty"`
	HorizontalSpacing *float64        `toml:"horizontal_spacing" json:"horizontal_spacing,omitempty"`
	VerticalSpacing   *float64        `toml:"vertical_spacing" json:"vertical_spacing,omitempty"`
}

// Apply overlays the document settings onto l and returns the result.
func (s Settings) Apply(l flow.Layout) flow.Layout {
	if s.Alignment != nil {
		l.Alignment = *s.Alignment
	}
	if s.HorizontalSpacing != nil {
		l.HorizontalSpacing = *s.HorizontalSpacing
	}
	if s.VerticalSpacing != nil {
		l.VerticalSpacing = *s.VerticalSpacing
	}
	return l
}

// Set is a parsed tag document.
type Set struct {
	Layout Settings `toml:"layout" json:"layout"`
	Tags   []Tag    `toml:"tag" json:"tags"`
}

// Len returns the number of tags.
func (s *Set) Len() int { return len(s.Tags) }

// Labels returns the tag labels in order.
func (s *Set) Labels() []string {
	out := make([]string, len(s.Tags))
	for i, t := range s.Tags {
		out[i] = t.Label
	}
	return out
}

// FromLabels builds a normalized set from plain labels.
func FromLabels(labels ...string) (*Set, error) {
	s := &Set{Tags: make([]Tag, len(labels))}
	for i, l := range labels {
		s.Tags[i] = Tag{Label: l}
	}
	if err := s.Normalize(); err != nil {
		return nil, err
	}
	return s, nil
}

// Normalize trims labels, assigns IDs to tags that lack one and validates
// the set.
func (s *Set) Normalize() error {
	used := make(map[string]bool, len(s.Tags))
	for _, t := range s.Tags {
		if t.ID != "" {
			used[t.ID] = true
		}
	}
	for i := range s.Tags {
		t := &s.Tags[i]
		t.Label = strings.TrimSpace(t.Label)
		if t.ID != "" {
			continue
		}
		t.ID = uniqueID(Slug(t.Label), used)
		used[t.ID] = true
	}
	return s.Validate()
}

// Validate checks every tag and the layout settings.
func (s *Set) Validate() error {
	seen := make(map[string]int, len(s.Tags))
	for i, t := range s.Tags {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("tag %d: %w", i+1, err)
		}
		if prev, dup := seen[t.ID]; dup {
			return errors.New(errors.ErrCodeInvalidTag, "tag %d: duplicate id %q (first used by tag %d)", i+1, t.ID, prev+1)
		}
		seen[t.ID] = i
	}
	if s.Layout.Width != nil {
		if err := errors.ValidateLength("layout width", *s.Layout.Width); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a single tag.
func (t Tag) Validate() error {
	if err := errors.ValidateLabel(t.Label); err != nil {
		return err
	}
	if err := errors.ValidateID(t.ID); err != nil {
		return err
	}
	if t.URL != "" {
		if err := errors.ValidateURL(t.URL); err != nil {
			return err
		}
	}
	if t.Color != "" {
		if err := errors.ValidateColor(t.Color); err != nil {
			return err
		}
	}
	if err := errors.ValidateLength("width", t.Width); err != nil {
		return err
	}
	return errors.ValidateLength("height", t.Height)
}

// Slug derives an ID from a label: letters and digits are lower-cased and
// kept, everything else collapses into single dashes. Labels without any
// letter or digit map to "tag".
func Slug(label string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(label) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "tag"
	}
	if len(slug) > 100 {
		slug = strings.TrimSuffix(slug[:100], "-")
	}
	return slug
}

func uniqueID(base string, used map[string]bool) string {
	if !used[base] {
		return base
	}
	for n := 2; ; n++ {
		id := fmt.Sprintf("%s-%d", base, n)
		if !used[id] {
			return id
		}
	}
}
