package cli

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

//go:embed guide.md
var guideMarkdown string

// guideWrapWidth fits the guide to the terminal, within sane bounds.
func guideWrapWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 100
	}
	if width > 100 {
		width = 100
	}
	if width < 40 {
		width = 40
	}
	return width
}

func newGuideCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Show the user guide",
		Long:  "Guide prints the built-in manual: card file format, layout pipeline, commands, and configuration.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if plain {
				fmt.Fprintln(cmd.OutOrStdout(), guideMarkdown)
				return nil
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(guideWrapWidth()),
			)
			if err != nil {
				// Markdown is still readable raw
				fmt.Fprintln(cmd.OutOrStdout(), guideMarkdown)
				return nil
			}

			out, err := renderer.Render(guideMarkdown)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), guideMarkdown)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw markdown without styling")

	return cmd
}
