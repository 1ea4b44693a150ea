// Package pipeline provides the parse → layout → render pipeline for tagflow.
//
// This package implements the pipeline shared by the CLI and the HTTP API.
// By centralizing this logic, both entry points resolve options, cache
// results and render outputs the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Read a tag document (TOML, JSON or plain text)
//  2. Layout: Measure the tags and pack them into rows
//  3. Render: Generate output in various formats (SVG, JSON, text)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "tags.toml",
//	    Formats: []string{"svg", "txt"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	set, err := pipeline.Load(ctx, opts)
//	l, err := runner.Layout(ctx, set, opts)
//	artifacts, err := runner.Render(ctx, l, opts)
//
// # Option precedence
//
// Packing settings resolve in three layers: built-in defaults, then the
// document's [layout] table, then options set explicitly on [Options].
package pipeline

import (
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tagflow/pkg/cache"
	"github.com/matzehuels/tagflow/pkg/errors"
	"github.com/matzehuels/tagflow/pkg/flow"
	"github.com/matzehuels/tagflow/pkg/layout"
	"github.com/matzehuels/tagflow/pkg/measure"
	"github.com/matzehuels/tagflow/pkg/render/styles"
	"github.com/matzehuels/tagflow/pkg/tags"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default container width in pixels.
	DefaultWidth = 480.0

	// DefaultCellWidth is the default container width for cell layouts.
	DefaultCellWidth = 80.0

	// DefaultFontSize is the default label size in pixels.
	DefaultFontSize = 14.0

	// DefaultPaddingX and DefaultPaddingY pad pixel chips around their label.
	DefaultPaddingX = 10.0
	DefaultPaddingY = 6.0

	// DefaultCellPadding pads cell chips on both sides.
	DefaultCellPadding = 1

	// DefaultCellSpacing replaces the pixel spacing default for cell layouts.
	DefaultCellSpacing = 1.0

	// DefaultStyle is the default visual style.
	DefaultStyle = styles.StylePill
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatText = "txt"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatText: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	styles.StyleSimple: true,
	styles.StylePill:   true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
//
// Pointer fields distinguish "not set" from zero: unset fields fall back to
// the tag document and then to the defaults.
type Options struct {
	// Parse options
	Input          string `json:"-"`                         // Path to a tag document (CLI)
	Document       []byte `json:"-"`                         // Inline document (API); wins over Input
	DocumentFormat string `json:"document_format,omitempty"` // toml, json or text; inferred from Input when empty

	// Layout options
	Width             *float64 `json:"width,omitempty"`
	Alignment         string   `json:"alignment,omitempty"`
	HorizontalSpacing *float64 `json:"horizontal_spacing,omitempty"`
	VerticalSpacing   *float64 `json:"vertical_spacing,omitempty"`
	Unit              string   `json:"unit,omitempty"`
	FontSize          float64  `json:"font_size,omitempty"`
	PaddingX          *float64 `json:"padding_x,omitempty"`
	PaddingY          *float64 `json:"padding_y,omitempty"`
	Border            bool     `json:"border,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Margin  float64  `json:"margin,omitempty"`
	Color   bool     `json:"color,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Set is the parsed tag document.
	Set *tags.Set

	// DocHash is the content hash of the normalized document.
	DocHash string

	// Layout is the packed layout.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TagCount   int
	RowCount   int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json, txt)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: simple, pill)", style)
	}
	return nil
}

// ParseFormats parses a comma-separated format list; see [NormalizeFormats].
func ParseFormats(s string) []string {
	return NormalizeFormats(strings.Split(s, ","))
}

// NormalizeFormats lowercases and trims each format, maps the "text" alias
// to "txt", and drops blanks and duplicates. Unknown names are kept so
// validation can report them.
func NormalizeFormats(formats []string) []string {
	var out []string
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "text" {
			f = FormatText
		}
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults validates every option and applies render and
// measurement defaults. Packing settings are left unset so the tag document
// can still supply them; see [Options.Config].
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for measurement.
func (o *Options) SetLayoutDefaults() {
	if o.Unit == "" {
		o.Unit = measure.UnitPixel
	}
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()

	unit, err := measure.ParseUnit(o.Unit)
	if err != nil {
		return err
	}
	o.Unit = unit

	if o.Alignment != "" {
		a, err := flow.ParseAlignment(o.Alignment)
		if err != nil {
			return err
		}
		o.Alignment = a.String()
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"width", o.Width},
		{"padding_x", o.PaddingX},
		{"padding_y", o.PaddingY},
	} {
		if f.v == nil {
			continue
		}
		if err := errors.ValidateLength(f.name, *f.v); err != nil {
			return err
		}
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"horizontal_spacing", o.HorizontalSpacing},
		{"vertical_spacing", o.VerticalSpacing},
	} {
		if f.v != nil && (math.IsNaN(*f.v) || math.IsInf(*f.v, 0)) {
			return errors.New(errors.ErrCodeInvalidInput, "%s must be a finite number", f.name)
		}
	}
	if o.FontSize < 0 || math.IsNaN(o.FontSize) || math.IsInf(o.FontSize, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "font_size must be a positive number")
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering. Formats are
// normalized first, so "text" is accepted for "txt".
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.Formats = NormalizeFormats(o.Formats)
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	return errors.ValidateLength("margin", o.Margin)
}

// IsCells reports whether chips are measured in terminal cells.
func (o *Options) IsCells() bool {
	return o.Unit == measure.UnitCell
}

// Config resolves the packing configuration and container width from the
// defaults, the document settings and the explicitly set options, in that
// order of increasing precedence.
func (o *Options) Config(doc tags.Settings) (flow.Layout, float64) {
	cfg := flow.New()
	width := DefaultWidth
	if o.IsCells() {
		cfg = flow.New(flow.WithSpacing(DefaultCellSpacing, DefaultCellSpacing))
		width = DefaultCellWidth
	}

	cfg = doc.Apply(cfg)
	if doc.Width != nil {
		width = *doc.Width
	}

	if o.Alignment != "" {
		if a, err := flow.ParseAlignment(o.Alignment); err == nil {
			cfg.Alignment = a
		}
	}
	if o.HorizontalSpacing != nil {
		cfg.HorizontalSpacing = *o.HorizontalSpacing
	}
	if o.VerticalSpacing != nil {
		cfg.VerticalSpacing = *o.VerticalSpacing
	}
	if o.Width != nil {
		width = *o.Width
	}
	return cfg, width
}

// Measurer returns the measurer for the configured unit.
func (o *Options) Measurer() measure.Measurer {
	if o.IsCells() {
		pad := DefaultCellPadding
		if o.PaddingX != nil {
			pad = int(math.Round(*o.PaddingX))
		}
		return measure.Cells{PaddingX: pad, Border: o.Border}
	}
	m := measure.Pixels{FontSize: o.FontSize, PaddingX: DefaultPaddingX, PaddingY: DefaultPaddingY}
	if m.FontSize == 0 {
		m.FontSize = DefaultFontSize
	}
	if o.PaddingX != nil {
		m.PaddingX = *o.PaddingX
	}
	if o.PaddingY != nil {
		m.PaddingY = *o.PaddingY
	}
	return m
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts(doc tags.Settings) cache.LayoutKeyOpts {
	cfg, width := o.Config(doc)
	k := cache.LayoutKeyOpts{
		Width:             width,
		Alignment:         cfg.Alignment.String(),
		HorizontalSpacing: cfg.HorizontalSpacing,
		VerticalSpacing:   cfg.VerticalSpacing,
		Unit:              o.Unit,
	}
	switch m := o.Measurer().(type) {
	case measure.Pixels:
		k.FontSize, k.PaddingX, k.PaddingY = m.FontSize, m.PaddingX, m.PaddingY
	case measure.Cells:
		k.PaddingX, k.Border = float64(m.PaddingX), m.Border
	}
	return k
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatSVG:
		k.Style, k.Margin, k.FontSize = o.Style, o.Margin, o.FontSize
	case FormatJSON:
		k.Style = o.Style
	case FormatText:
		k.Border, k.Color = o.Border, o.Color
	}
	return k
}

// Float returns a pointer to v, for setting optional fields.
func Float(v float64) *float64 { return &v }
