// Package pkg provides the core libraries for tagflow tag layouts.
//
// # Overview
//
// Tagflow packs a list of tags into rows of chips, the way a tag cloud or a
// wrapped toolbar flows: items are placed left to right and a new row starts
// whenever the next item would not fit. The pkg directory is organized into
// four main areas:
//
//  1. [flow] - The packing algorithm (size proposals, row breaking, alignment)
//  2. [tags], [measure], [layout] - Documents, chip measurement, layout files
//  3. [render] - Output sinks (SVG, JSON, terminal text) and chip styles
//  4. [pipeline] - Orchestration (parse → layout → render) with [cache]
//
// # Architecture
//
// The typical data flow through tagflow:
//
//	Tag document (TOML, JSON, text)
//	         ↓
//	    [tags] package (parse + normalize)
//	         ↓
//	    [measure] package (chip sizes in px or terminal cells)
//	         ↓
//	    [flow] package (SizeThatFits + Place)
//	         ↓
//	    [layout] package (positioned chips, layout.json)
//	         ↓
//	    [render/sink] package → SVG/JSON/text
//
// # Quick Start
//
// Pack and render a handful of labels:
//
//	set, _ := tags.FromLabels("go", "rust", "zig")
//	l, _ := layout.Build(set, measure.Pixels{FontSize: 14, PaddingX: 10, PaddingY: 6},
//	    flow.New(flow.WithAlignment(flow.Leading)), 320)
//	svg := sink.RenderSVG(l, sink.WithStyle(styles.Pill{}))
//
// Or run the whole pipeline with caching:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Input:   "tags.toml",
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatText},
//	})
//
// # Main Packages
//
// [flow] - The flow packer. Items report a size for a width proposal; the
// packer breaks them into rows, sizes the container and places each row with
// leading, center or trailing alignment.
//
// [tags] - Tag documents with an optional [layout] table that overrides the
// packing settings.
//
// [measure] - Measurers turning tags into sizes: [measure.Pixels] uses the
// Go font from [fonts], [measure.Cells] uses terminal display width.
//
// [layout] - The computed layout: chips with frames, grouped into rows, and
// its JSON file format.
//
// [render/sink] - Output formats: SVG, JSON and terminal text.
//
// [render/styles] - Chip styles for SVG output (simple, pill).
//
// [pipeline] - Complete pipeline (parse → layout → render) used by the CLI
// and the HTTP API. Ensures consistent behavior across entry points.
//
// [cache] - Cache backends (file, Redis, null) and key derivation.
//
// [observability] - Hooks for pipeline, cache and server events.
//
// [errors] - Structured error codes shared by the CLI and the API.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/flow/...      # Specific package
//	go test -run Example        # Examples only
//
// [flow]: https://pkg.go.dev/github.com/matzehuels/tagflow/pkg/flow
// [tags]: https://pkg.go.dev/github.com/matzehuels/tagflow/pkg/tags
// [measure]: https://pkg.go.dev/github.com/matzehuels/tagflow/pkg/measure
// [fonts]: https://pkg.go.dev/github.com/matzehuels/tagflow/pkg/fonts
// [layout]: https://pkg.go.dev/github.com/matzehuels/tagflow/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/tagflow/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/tagflow/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/tagflow/pkg/render/styles
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tagflow/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/tagflow/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/tagflow/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/tagflow/pkg/errors
package pkg
