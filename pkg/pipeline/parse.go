package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/tagflow/pkg/errors"
	"github.com/matzehuels/tagflow/pkg/observability"
	"github.com/matzehuels/tagflow/pkg/tags"
)

// Load reads the tag document named by opts. An inline Document wins over
// Input; its format defaults to TOML.
func Load(ctx context.Context, opts Options) (*tags.Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := opts.Input
	if opts.Document != nil {
		source = "inline"
	}
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, source)
	start := time.Now()

	set, err := load(opts)

	n := 0
	if set != nil {
		n = set.Len()
	}
	hooks.OnParseComplete(ctx, source, n, time.Since(start), err)
	return set, err
}

func load(opts Options) (*tags.Set, error) {
	if opts.Document != nil {
		format := tags.FormatTOML
		if opts.DocumentFormat != "" {
			f, err := tags.ParseFormat(opts.DocumentFormat)
			if err != nil {
				return nil, err
			}
			format = f
		}
		return tags.Parse(opts.Document, format)
	}

	if opts.Input == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "a tag document is required")
	}
	if opts.DocumentFormat == "" {
		return tags.ReadFile(opts.Input)
	}
	f, err := tags.ParseFormat(opts.DocumentFormat)
	if err != nil {
		return nil, err
	}
	return tags.ReadFileAs(opts.Input, f)
}
