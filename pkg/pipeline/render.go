package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/tagflow/pkg/layout"
	"github.com/matzehuels/tagflow/pkg/render/sink"
	"github.com/matzehuels/tagflow/pkg/render/styles"
)

// Render generates output artifacts in the requested formats. Formats are
// rendered concurrently.
func Render(ctx context.Context, l layout.Layout, formats []string, opts Options) (map[string][]byte, error) {
	out := make([][]byte, len(formats))

	g, ctx := errgroup.WithContext(ctx)
	for i, format := range formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := RenderFormat(l, format, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			out[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(formats))
	for i, format := range formats {
		artifacts[format] = out[i]
	}
	return artifacts, nil
}

// RenderFormat renders a single format.
func RenderFormat(l layout.Layout, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		style, err := styles.ByName(opts.Style)
		if err != nil {
			return nil, err
		}
		fontSize := opts.FontSize
		if fontSize == 0 {
			fontSize = DefaultFontSize
		}
		return sink.RenderSVG(l,
			sink.WithStyle(style),
			sink.WithMargin(opts.Margin),
			sink.WithFontSize(fontSize),
		), nil
	case FormatJSON:
		return sink.RenderJSON(l, sink.WithJSONStyle(opts.Style))
	case FormatText:
		var textOpts []sink.TextOption
		if opts.Border {
			textOpts = append(textOpts, sink.WithBorder())
		}
		if opts.Color {
			textOpts = append(textOpts, sink.WithColor())
		}
		return []byte(sink.RenderText(l, textOpts...)), nil
	default:
		return nil, ValidateFormat(format)
	}
}
