package cli

import (
	"errors"
	"os"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/config"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/output"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/render"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/tui/cardview"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/tui/icons"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/tui/theme"
)

// layoutConfig builds the render config from the loaded config file,
// with non-zero flag values taking precedence.
func layoutConfig(cfg *config.Config, iconColumns, maxRows int) render.Config {
	rc := render.Config{
		IconColumns: cfg.Layout.IconColumns,
		MaxRows:     cfg.Layout.MaxRows,
	}
	if iconColumns > 0 {
		rc.IconColumns = iconColumns
	}
	if maxRows > 0 {
		rc.MaxRows = maxRows
	}
	return rc
}

// iconSet resolves an icon mode name to a complete icon set. Modes other
// than the known three fall through to terminal detection.
func iconSet(mode string) icons.IconSet {
	switch mode {
	case "nerd", "nerdfonts":
		return icons.NerdFonts.WithFallback(icons.Unicode).WithFallback(icons.ASCII)
	case "unicode":
		return icons.Unicode.WithFallback(icons.ASCII)
	case "ascii":
		return icons.ASCII
	default:
		return icons.Detect()
	}
}

// newCardRenderer assembles a card renderer from the active config.
func newCardRenderer(cfg *config.Config, width int) *cardview.Renderer {
	r := cardview.New()
	r.Theme = theme.FromName(cfg.Theme.Name)
	r.Icons = iconSet(cfg.Icons.Mode)
	if width > 0 {
		r = r.WithWidth(width)
	} else if cfg.Layout.CardWidth > 0 {
		r = r.WithWidth(cfg.Layout.CardWidth)
	}
	return r
}

// loadCard wraps card.Load with CLI-friendly errors.
func loadCard(path string) (card.Card, error) {
	c, err := card.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return card.Card{}, output.CardNotFoundError(path)
		}
		return card.Card{}, output.CardParseError(path, err)
	}
	return c, nil
}

// forceCompact marks every resource amount on the card for compact
// display, so the layout collapses individual icons into counts.
func forceCompact(c *card.Card) {
	for bi := range c.Behaviors {
		b := &c.Behaviors[bi]
		for i := range b.Inputs {
			b.Inputs[i].ForceCompact = true
		}
		for i := range b.Outputs {
			b.Outputs[i].ForceCompact = true
		}
		for ci := range b.Choices {
			ch := &b.Choices[ci]
			for i := range ch.Inputs {
				ch.Inputs[i].ForceCompact = true
			}
			for i := range ch.Outputs {
				ch.Outputs[i].ForceCompact = true
			}
		}
	}
}
