package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagflow/pkg/layout"
	"github.com/matzehuels/tagflow/pkg/pipeline"
)

// renderCommand creates the render command for generating artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags  layoutFlags
		output renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render [tags-file|layout.json]",
		Short: "Render tags or a layout to SVG, JSON or text",
		Long: `Render tags or a precomputed layout to SVG, JSON or terminal text.

The input is either a tag document, which is packed first, or a layout.json
produced by 'layout'. Layout flags are ignored for layout input.

Multiple formats can be requested at once (-f svg,json,txt); each is written
next to the base path given with -o. Use -o - to write to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Input: args[0]}
			flags.apply(cmd, &opts)
			output.apply(&opts)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, output.output, flags.noCache)
		},
	}

	flags.register(cmd)
	output.register(cmd)

	return cmd
}

// runRender renders the input to every requested format and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	opts.Logger = c.Logger
	opts.SetRenderDefaults()
	prog := newProgress(c.Logger)

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	var (
		artifacts map[string][]byte
		tagCount  int
		rowCount  int
		cached    bool
	)

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	l, isLayout, err := readLayoutInput(opts.Input)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("read layout %s: %w", opts.Input, err)
	}
	if isLayout {
		c.Logger.Debug("rendering precomputed layout", "file", opts.Input, "chips", len(l.Chips))
		artifacts, cached, err = runner.RenderWithCacheInfo(ctx, l, opts)
		tagCount, rowCount = len(l.Chips), len(l.Rows)
	} else {
		var result *pipeline.Result
		result, err = runner.Execute(ctx, opts)
		if result != nil {
			artifacts = result.Artifacts
			tagCount, rowCount = result.Stats.TagCount, result.Stats.RowCount
			cached = result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit
		}
	}
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render %s: %w", opts.Input, err)
	}
	spinner.Stop()

	if spinner.Cancelled() {
		return ctx.Err()
	}

	if output == "-" {
		for _, format := range opts.Formats {
			if _, err := os.Stdout.Write(artifacts[format]); err != nil {
				return err
			}
		}
		return nil
	}

	paths := outputPaths(output, opts.Input, opts.Formats)
	for _, format := range opts.Formats {
		if err := os.WriteFile(paths[format], artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", paths[format], err)
		}
	}
	prog.done(fmt.Sprintf("Rendered %d artifacts", len(opts.Formats)))

	printSuccess("Render complete")
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	printStats(tagCount, rowCount, cached)
	return nil
}

// readLayoutInput reports whether path holds a layout file rather than a tag
// document, returning the decoded layout when it does. A layout file that
// fails validation is an error.
func readLayoutInput(path string) (layout.Layout, bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return layout.Layout{}, false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil || !layout.IsLayoutFile(data) {
		return layout.Layout{}, false, nil
	}
	l, err := layout.Unmarshal(data)
	if err != nil {
		return layout.Layout{}, true, err
	}
	return l, true, nil
}

// outputPaths maps each format to its output file.
//
// A single format written to an explicit output uses that path verbatim.
// Otherwise the base path (output, or the input without its extension, with a
// trailing ".layout" removed) gets one extension per format. A path that
// would overwrite the input gets an ".out" infix.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, format := range formats {
		p := base + "." + format
		if p == input {
			p = base + ".out." + format
		}
		paths[format] = p
	}
	return paths
}

// basePath derives the base output path from the output and input file paths.
func basePath(output, input string) string {
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		return strings.TrimSuffix(base, ".layout")
	}
	ext := filepath.Ext(output)
	if slices.Contains([]string{".svg", ".json", ".txt"}, ext) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
