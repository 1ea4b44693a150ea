package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagflow/pkg/flow"
	"github.com/matzehuels/tagflow/pkg/measure"
	"github.com/matzehuels/tagflow/pkg/pipeline"
	"github.com/matzehuels/tagflow/pkg/render/styles"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [" + strings.Join(completionShells, "|") + "]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for tagflow.

Bash:
  $ source <(tagflow completion bash)

Zsh:
  $ tagflow completion zsh > "${fpath[1]}/_tagflow"

Fish:
  $ tagflow completion fish > ~/.config/fish/completions/tagflow.fish

PowerShell:
  PS> tagflow completion powershell | Out-String | Invoke-Expression

Flag values such as --align, --unit, --style and --format complete too.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}
}

// completeValues registers a fixed set of completions for a flag.
func completeValues(cmd *cobra.Command, flag string, values ...string) {
	_ = cmd.RegisterFlagCompletionFunc(flag, cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
}

func registerLayoutCompletions(cmd *cobra.Command) {
	var aligns []string
	for _, a := range flow.Alignments {
		aligns = append(aligns, a.String())
	}
	completeValues(cmd, "align", aligns...)
	completeValues(cmd, "unit", measure.UnitPixel, measure.UnitCell)
}

// registerRenderCompletions completes --style and the comma-separated --format list.
func registerRenderCompletions(cmd *cobra.Command) {
	completeValues(cmd, "style", styles.Names...)
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		prefix := ""
		if i := strings.LastIndex(toComplete, ","); i >= 0 {
			prefix = toComplete[:i+1]
		}
		var out []string
		for _, f := range []string{pipeline.FormatSVG, pipeline.FormatJSON, pipeline.FormatText} {
			out = append(out, prefix+f)
		}
		return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	})
}
