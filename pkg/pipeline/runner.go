package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tagflow/pkg/cache"
	"github.com/matzehuels/tagflow/pkg/layout"
	"github.com/matzehuels/tagflow/pkg/observability"
	"github.com/matzehuels/tagflow/pkg/tags"
)

// Cache key types reported to cache hooks.
const (
	keyTypeLayout   = "layout"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Parse
	parseStart := time.Now()
	set, err := Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Set = set
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.TagCount = set.Len()

	r.Logger.Debug("parsed tags",
		"tags", set.Len(),
		"duration", result.Stats.ParseTime)

	if err := r.executeFrom(ctx, set, opts, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ExecuteSet runs layout and render for an already parsed document.
func (r *Runner) ExecuteSet(ctx context.Context, set *tags.Set, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Set: set}
	result.Stats.TagCount = set.Len()
	if err := r.executeFrom(ctx, set, opts, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Runner) executeFrom(ctx context.Context, set *tags.Set, opts Options, result *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if h, err := cache.HashJSON(set); err == nil {
		result.DocHash = h
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	l, layoutHit, err := r.LayoutWithCacheInfo(ctx, set, opts)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.RowCount = len(l.Rows)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Debug("computed layout",
		"rows", len(l.Rows),
		"chips", len(l.Chips),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return err
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)
	return nil
}

// LayoutWithCacheInfo packs a tag set with caching and returns cache hit info.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, set *tags.Set, opts Options) (layout.Layout, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.Unit, set.Len())
	start := time.Now()

	l, hit, err := r.layout(ctx, set, opts)

	hooks.OnLayoutComplete(ctx, opts.Unit, len(l.Rows), time.Since(start), err)
	return l, hit, err
}

func (r *Runner) layout(ctx context.Context, set *tags.Set, opts Options) (layout.Layout, bool, error) {
	docHash, err := cache.HashJSON(set)
	if err != nil {
		return layout.Layout{}, false, err
	}
	cacheKey := r.Keyer.LayoutKey(docHash, opts.LayoutKeyOpts(set.Layout))
	cacheHooks := observability.Cache()

	// Try cache first
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		if cached, err := layout.Unmarshal(data); err == nil {
			cacheHooks.OnCacheHit(ctx, keyTypeLayout)
			return cached, true, nil
		}
		// If deserialization fails, fall through to recompute
	} else if err != nil {
		r.Logger.Warn("cache read failed", "key", cacheKey, "err", err)
	}
	cacheHooks.OnCacheMiss(ctx, keyTypeLayout)

	l, err := GenerateLayout(set, opts)
	if err != nil {
		return layout.Layout{}, false, err
	}

	if data, err := layout.Marshal(l); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err != nil {
			r.Logger.Warn("cache write failed", "key", cacheKey, "err", err)
		} else {
			cacheHooks.OnCacheSet(ctx, keyTypeLayout, len(data))
		}
	}
	return l, false, nil
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, set *tags.Set, opts Options) (layout.Layout, error) {
	l, _, err := r.LayoutWithCacheInfo(ctx, set, opts)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit
// info. The hit is true only when every format came from the cache; formats
// that missed are rendered concurrently.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, hit, err := r.render(ctx, l, opts)

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, hit, err
}

func (r *Runner) render(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, bool, error) {
	layoutData, err := layout.Marshal(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)
	cacheHooks := observability.Cache()

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			cacheHooks.OnCacheHit(ctx, keyTypeArtifact)
			artifacts[format] = data
			continue
		}
		cacheHooks.OnCacheMiss(ctx, keyTypeArtifact)
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	rendered, err := Render(ctx, l, missing, opts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "key", key, "err", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, keyTypeArtifact, len(data))
	}
	return artifacts, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
