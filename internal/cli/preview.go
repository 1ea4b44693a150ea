package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tagflow/pkg/measure"
	"github.com/matzehuels/tagflow/pkg/pipeline"
)

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		flags layoutFlags
		color bool
	)

	cmd := &cobra.Command{
		Use:   "preview [tags-file]",
		Short: "Interactively preview a tag layout in the terminal",
		Long: `Interactively preview a tag layout in the terminal.

Tags are measured in terminal cells and packed to the terminal width. Use the
arrow keys to change the width, 'a' to cycle the alignment and +/- to change
the horizontal spacing. Passing --width pins the width.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Input: args[0]}
			flags.apply(cmd, &opts)
			opts.Unit = measure.UnitCell
			opts.Color = color
			return c.runPreview(cmd.Context(), opts, cmd.Flags().Changed("width"))
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&color, "color", true, "colorize chips")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, opts pipeline.Options, pinWidth bool) error {
	opts.Logger = c.Logger
	set, err := pipeline.Load(ctx, opts)
	if err != nil {
		return fmt.Errorf("load tags %s: %w", opts.Input, err)
	}
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}

	cfg, width := opts.Config(set.Layout)
	if !pinWidth {
		width = 0
	}
	model := NewPreviewModel(set, opts.Measurer(), cfg, width)
	model.Border = opts.Border
	model.Color = opts.Color

	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	if m, ok := final.(PreviewModel); ok {
		c.Logger.Debug("preview closed",
			"width", m.Width,
			"alignment", m.Config.Alignment.String(),
			"rows", len(m.Layout().Rows))
	}
	return nil
}
