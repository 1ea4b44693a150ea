// Package cache provides storage backends and key derivation for cached
// layouts and rendered artifacts.
//
// Two kinds of entries are cached:
//
//   - Layouts, keyed by the hash of the tag document plus the packing
//     options ([Keyer.LayoutKey])
//   - Artifacts (SVG, JSON, text), keyed by the hash of the layout plus the
//     render options ([Keyer.ArtifactKey])
//
// Backends:
//
//   - [FileCache]: JSON entries under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//   - [NullCache]: never stores anything
package cache

import (
	"context"
	"time"
)

// Default entry lifetimes.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend's resources.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	LayoutKey(docHash string, opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the inputs, besides the document, that change a layout.
type LayoutKeyOpts struct {
	Width             float64 `json:"width"`
	Alignment         string  `json:"alignment"`
	HorizontalSpacing float64 `json:"hs"`
	VerticalSpacing   float64 `json:"vs"`
	Unit              string  `json:"unit"`
	FontSize          float64 `json:"font_size,omitempty"`
	PaddingX          float64 `json:"padding_x,omitempty"`
	PaddingY          float64 `json:"padding_y,omitempty"`
	Border            bool    `json:"border,omitempty"`
}

// ArtifactKeyOpts are the inputs, besides the layout, that change an artifact.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Style    string  `json:"style,omitempty"`
	Margin   float64 `json:"margin,omitempty"`
	FontSize float64 `json:"font_size,omitempty"`
	Border   bool    `json:"border,omitempty"`
	Color    bool    `json:"color,omitempty"`
}

// DefaultKeyer hashes options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey returns "layout:<sha256>".
func (DefaultKeyer) LayoutKey(docHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", docHash, opts)
}

// ArtifactKey returns "artifact:<format>:<sha256>".
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, layoutHash, opts)
}

var _ Keyer = DefaultKeyer{}
