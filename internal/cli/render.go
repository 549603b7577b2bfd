package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/config"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/output"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/render"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/watcher"
)

// renderResponse is the JSON shape of a single rendered card.
type renderResponse struct {
	output.TimestampedResponse
	Card   card.Card     `json:"card"`
	Layout render.Result `json:"layout"`
}

func newRenderCmd() *cobra.Command {
	var (
		width       int
		maxRows     int
		iconColumns int
		compact     bool
		watch       bool
	)

	cmd := &cobra.Command{
		Use:   "render <card-file>",
		Short: "Draw a card in the terminal",
		Long: `Render reads a card file and draws it: behaviors are classified,
compatible triggered effects are merged, and icons are laid out
row by row inside the card frame.

Examples:
  marscard render card.json
  marscard render card.yaml --width 40 --compact
  marscard render card.json --watch          # redraw on file change
  marscard render card.json --json | jq .layout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			draw := func() error {
				c, err := loadCard(path)
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

				r := newCardRenderer(cfg, width)
				fmt.Fprintln(cmd.OutOrStdout(), r.Render(c, res))
				return nil
			}

			if err := draw(); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return watchAndRedraw(cmd, path, draw)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Card width in terminal cells")
	cmd.Flags().IntVar(&maxRows, "max-rows", 0, "Row budget before overflow handling kicks in")
	cmd.Flags().IntVar(&iconColumns, "icon-columns", 0, "Icon slots available per row")
	cmd.Flags().BoolVar(&compact, "compact", false, "Collapse repeated icons into counts")
	cmd.Flags().BoolVar(&watch, "watch", false, "Redraw whenever the card file changes")

	return cmd
}

// watchAndRedraw blocks, redrawing the card whenever its file or the
// config file changes, until interrupted. Parse errors during a redraw
// are reported but do not end the watch; the next save gets another
// chance.
func watchAndRedraw(cmd *cobra.Command, path string, draw func() error) error {
	redraw, onConfig := watchCallbacks(cmd.OutOrStdout(), cmd.ErrOrStderr(), draw)

	w, err := watcher.New(func(events []watcher.Event) {
		redraw()
	}, watcher.WithDebounceDuration(200*time.Millisecond))
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	// Config edits change budgets and styling, so they redraw too. The
	// watch follows whichever file --config selected.
	if stop, err := config.Watch(cfgFile, onConfig); err == nil {
		defer stop()
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", path)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

// watchCallbacks builds the redraw and config-reload handlers for watch
// mode. Card and config changes arrive on separate watcher goroutines,
// and draw reads the active config, so redraws and config swaps share
// one lock.
func watchCallbacks(out, errOut io.Writer, draw func() error) (redraw func(), onConfig func(*config.Config)) {
	var mu sync.Mutex
	redraw = func() {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprint(out, "\033[H\033[2J")
		if err := draw(); err != nil {
			fmt.Fprintln(errOut, "Error:", err)
		}
	}
	onConfig = func(c *config.Config) {
		mu.Lock()
		cfg = c
		mu.Unlock()
		redraw()
	}
	return redraw, onConfig
}
