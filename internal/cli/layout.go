package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagflow/pkg/layout"
	"github.com/matzehuels/tagflow/pkg/pipeline"
)

// layoutCommand creates the layout command for packing a tag document.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		flags  layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [tags-file]",
		Short: "Compute a flow layout from a tag document",
		Long: `Compute a flow layout from a tag document.

The layout command reads a tag document (TOML, JSON, or plain text with one
label per line) and packs its tags into rows. The output is a layout.json file
(same format as 'render -f json') that can be rendered with 'render'.

Flags override the [layout] table of the document. Results are cached locally
for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Input: args[0]}
			flags.apply(cmd, &opts)
			return c.runLayout(cmd.Context(), opts, output, flags.noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	flags.register(cmd)

	return cmd
}

// runLayout loads the tag document, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	opts.Logger = c.Logger
	set, err := pipeline.Load(ctx, opts)
	if err != nil {
		return fmt.Errorf("load tags %s: %w", opts.Input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Packing "+plural(set.Len(), "tag")+"...")
	spinner.Start()

	l, cacheHit, err := runner.LayoutWithCacheInfo(ctx, set, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if spinner.Cancelled() {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = layoutPath(opts.Input)
	}

	if err := layout.WriteFile(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(set.Len(), len(l.Rows), cacheHit)
	printNewline()
	printNextStep("Render", appName+" render "+outputPath)

	return nil
}

// layoutPath derives the default layout file name from the input path.
func layoutPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
}
