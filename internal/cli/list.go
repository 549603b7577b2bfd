package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/output"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/render"
)

func newListCmd() *cobra.Command {
	var cardType string

	cmd := &cobra.Command{
		Use:   "list <card-dir>",
		Short: "Summarize every card in a directory",
		Long: `List loads every card file in a directory and prints one line per
card: cost, behavior count, planned row count, and whether the card
overflows its row budget.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := card.LoadDir(args[0])
			if err != nil {
				return output.NewCLIError("loading cards").
					WithCause(err.Error()).
					WithHint(output.HintCardUnreadable)
			}

			rc := layoutConfig(cfg, 0, 0)
			items := make([]output.CardListItem, 0, len(cards))
			for _, c := range cards {
				if cardType != "" && string(c.Type) != cardType {
					continue
				}
				res := render.Run(c.Behaviors, rc)
				items = append(items, listItem(c, res))
			}

			if jsonOutput {
				return output.PrintJSON(output.ListResponse{
					TimestampedResponse: output.NewTimestamped(),
					Cards:               items,
					Count:               len(items),
				})
			}

			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No cards found.")
				return nil
			}

			table := output.NewTable(cmd.OutOrStdout(), "ID", "NAME", "TYPE", "COST", "BEHAVIORS", "ROWS", "")
			for _, it := range items {
				flag := ""
				if it.Overflow {
					flag = "overflow"
				}
				table.AddRow(
					it.ID,
					output.Truncate(it.Name, 28),
					it.Type,
					fmt.Sprintf("%d", it.Cost),
					summarizeCategories(it),
					fmt.Sprintf("%d", it.Rows),
					flag,
				)
			}
			table.Render()
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", output.CountStr(len(items), "card", "cards"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&cardType, "type", "t", "", "Only show cards of this type (automated, active, event, ...)")

	return cmd
}

func listItem(c card.Card, res render.Result) output.CardListItem {
	cats := make(map[string]int)
	for _, cb := range res.Behaviors {
		cats[string(cb.Category)]++
	}
	return output.CardListItem{
		ID:         c.ID,
		Name:       c.Name,
		Type:       string(c.Type),
		Cost:       c.Cost,
		Behaviors:  len(c.Behaviors),
		Categories: cats,
		Rows:       res.CardPlan.TotalRows,
		Overflow:   res.CardPlan.NeedsOverflowHandling,
	}
}

// summarizeCategories renders the category counts as a stable short
// string, e.g. "2 triggered-effect, 1 manual-action".
func summarizeCategories(it output.CardListItem) string {
	if it.Behaviors == 0 {
		return "-"
	}
	order := []render.Category{
		render.CategoryDiscount,
		render.CategoryPaymentSubstitute,
		render.CategoryValueModifier,
		render.CategoryDefense,
		render.CategoryManualAction,
		render.CategoryTriggeredEffect,
		render.CategoryImmediateProduction,
		render.CategoryImmediateEffect,
		render.CategoryAutoNoBackground,
	}
	var parts []string
	for _, cat := range order {
		if n := it.Categories[string(cat)]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, cat))
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%d", it.Behaviors)
	}
	return strings.Join(parts, ", ")
}
