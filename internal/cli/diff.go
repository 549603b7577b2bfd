package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/output"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/tui/cardview"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/tui/icons"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/tui/theme"
)

func newDiffCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "diff <card-file-a> <card-file-b>",
		Short: "Compare two rendered cards",
		Long: `Diff renders both cards with the same layout budgets and plain
styling, then compares the rendered text. Useful for spotting how a
card edit changes the printed layout.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadCard(args[0])
			if err != nil {
				return err
			}
			b, err := loadCard(args[1])
			if err != nil {
				return err
			}

			rc := layoutConfig(cfg, 0, 0)
			// Plain theme and ASCII icons keep the comparison about
			// layout, not escape sequences.
			r := cardview.New().WithWidth(cardWidthOr(width))
			r.Theme = theme.Plain
			r.Icons = icons.ASCII

			result := output.ComputeDiff(
				diffLabel(a, args[0]), r.RenderCard(a, rc),
				diffLabel(b, args[1]), r.RenderCard(b, rc),
			)

			if jsonOutput {
				return output.PrintJSON(result)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d lines) vs %s (%d lines)\n",
				result.CardA, result.LineCountA, result.CardB, result.LineCountB)
			fmt.Fprintf(cmd.OutOrStdout(), "Similarity: %.0f%%\n", result.Similarity*100)
			if result.UnifiedDiff != "" {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprint(cmd.OutOrStdout(), result.UnifiedDiff)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Card width in terminal cells")

	return cmd
}

func cardWidthOr(width int) int {
	if width > 0 {
		return width
	}
	if cfg != nil && cfg.Layout.CardWidth > 0 {
		return cfg.Layout.CardWidth
	}
	return cardview.DefaultWidth
}

func diffLabel(c card.Card, path string) string {
	if c.Name != "" {
		return c.Name
	}
	return path
}
