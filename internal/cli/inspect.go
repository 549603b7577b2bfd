package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/output"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/render"
)

func newInspectCmd() *cobra.Command {
	var (
		maxRows     int
		iconColumns int
		compact     bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <card-file>",
		Short: "Show the layout pipeline stage by stage",
		Long: `Inspect runs the full layout pipeline on a card and prints each
stage: behavior classification, triggered-effect merging, tile scale,
per-behavior row plans, and the card-level row budget.

Useful when a card renders unexpectedly and you want to see which
stage made the call.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCard(args[0])
			if err != nil {
				return err
			}
			if compact {
				forceCompact(&c)
			}

			rc := layoutConfig(cfg, iconColumns, maxRows)
			res := render.Run(c.Behaviors, rc)

			if jsonOutput {
				return output.PrintJSON(renderResponse{
					TimestampedResponse: output.NewTimestamped(),
					Card:                c,
					Layout:              res,
				})
			}

			printInspection(cmd.OutOrStdout(), c.Name, c.ID, res, rc)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxRows, "max-rows", 0, "Row budget before overflow handling kicks in")
	cmd.Flags().IntVar(&iconColumns, "icon-columns", 0, "Icon slots available per row")
	cmd.Flags().BoolVar(&compact, "compact", false, "Collapse repeated icons into counts")

	return cmd
}

func printInspection(w io.Writer, name, id string, res render.Result, rc render.Config) {
	if name == "" {
		name = id
	}
	fmt.Fprintf(w, "Card: %s\n", name)
	fmt.Fprintf(w, "Budget: %d icon columns, %d rows\n\n", rc.IconColumns, rc.MaxRows)

	fmt.Fprintf(w, "Behaviors after merge: %d\n", len(res.Behaviors))
	for i, cb := range res.Behaviors {
		fmt.Fprintf(w, "  [%d] %s", i+1, cb.Category)
		if len(cb.Merged) > 0 {
			fmt.Fprintf(w, " (+%d merged)", len(cb.Merged))
		}
		fmt.Fprintln(w)
		if t, ok := cb.Behavior.FirstTrigger(); ok {
			if t.Condition != nil {
				fmt.Fprintf(w, "      trigger: %s on %s\n", t.Type, t.Condition.Type)
			} else {
				fmt.Fprintf(w, "      trigger: %s\n", t.Type)
			}
		}

		plan := res.Plans[i]
		for ri, row := range plan.Rows {
			fmt.Fprintf(w, "      row %d (%d/%d slots): %s\n", ri+1, row.Width(), rc.IconColumns, describeRow(row))
		}
		if plan.MultiRow {
			fmt.Fprintf(w, "      spans %d rows\n", plan.TotalRows)
		}
	}

	fmt.Fprintln(w)
	if res.TileScale.Scale > render.ScaleNormal {
		fmt.Fprintf(w, "Tile scale: %.2fx (%d %s)\n", res.TileScale.Scale, res.TileScale.TileCount, res.TileScale.TileType)
	} else {
		fmt.Fprintf(w, "Tile scale: normal\n")
	}

	fmt.Fprintf(w, "Card plan: %d of %d rows", res.CardPlan.TotalRows, rc.MaxRows)
	if res.CardPlan.NeedsOverflowHandling {
		fmt.Fprint(w, " (overflow)")
	}
	fmt.Fprintln(w)
	if res.Compacted {
		fmt.Fprintln(w, "Space optimizer: compacted icon groups after first pass")
	}
}

func describeRow(row render.Row) string {
	var parts []string
	for _, in := range row.Inputs {
		parts = append(parts, describeIcon(in))
	}
	switch row.Separator {
	case render.SeparatorArrow:
		parts = append(parts, "->")
	case render.SeparatorColon:
		parts = append(parts, ":")
	case render.SeparatorOr:
		parts = append(parts, "OR")
	}
	for _, out := range row.Outputs {
		parts = append(parts, describeIcon(out))
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " ")
}

func describeIcon(info render.IconDisplayInfo) string {
	if info.Mode == render.DisplayIndividual {
		return fmt.Sprintf("%s x%d", info.Type, info.IconCount)
	}
	return fmt.Sprintf("%d*%s", info.Amount, info.Type)
}
