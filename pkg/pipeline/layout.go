package pipeline

import (
	"github.com/matzehuels/tagflow/pkg/layout"
	"github.com/matzehuels/tagflow/pkg/tags"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout packs set with the resolved configuration, without caching.
func GenerateLayout(set *tags.Set, opts Options) (layout.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, err
	}
	cfg, width := opts.Config(set.Layout)
	return layout.Build(set, opts.Measurer(), cfg, width)
}
