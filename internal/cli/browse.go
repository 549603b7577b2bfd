package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/output"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/tui/browser"
)

func newBrowseCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "browse <card-dir>",
		Short: "Browse cards interactively",
		Long: `Browse opens a full-screen browser over a card directory: a
filterable list on the left, the selected card rendered on the right.

Keys: arrows or j/k to move, / to filter, c to toggle compact
icons, q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := card.LoadDir(args[0])
			if err != nil {
				return output.NewCLIError("loading cards").
					WithCause(err.Error()).
					WithHint(output.HintCardUnreadable)
			}
			if len(cards) == 0 {
				return output.NewCLIError("no card files in " + args[0]).
					WithHint(output.HintCardNotFound)
			}

			m := browser.New(cards, newCardRenderer(cfg, width), layoutConfig(cfg, 0, 0))
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Card width in terminal cells")

	return cmd
}
