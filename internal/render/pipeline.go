package render

import (
	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
)

// Default policy constants: how many icon slots fit across a behavior
// row and how many rows fit in the card's behavior area.
const (
	DefaultIconColumns = 7
	DefaultMaxRows     = 4
)

// Config carries the layout budgets through the pipeline. Budgets are
// explicit parameters, not globals, so two cards can render concurrently
// with different budgets and tests can shrink them at will.
type Config struct {
	IconColumns int `json:"iconColumns"`
	MaxRows     int `json:"maxRows"`
}

// DefaultConfig returns the card frame's standard budgets.
func DefaultConfig() Config {
	return Config{IconColumns: DefaultIconColumns, MaxRows: DefaultMaxRows}
}

func (c Config) withDefaults() Config {
	if c.IconColumns <= 0 {
		c.IconColumns = DefaultIconColumns
	}
	if c.MaxRows <= 0 {
		c.MaxRows = DefaultMaxRows
	}
	return c
}

// Result is everything one pipeline run hands to presentation: the
// merged classified behaviors in final render order, the card-wide tile
// scale, one layout plan per behavior (index-aligned with Behaviors),
// and the aggregate card plan with its overflow flag.
type Result struct {
	Behaviors []ClassifiedBehavior `json:"behaviors"`
	TileScale TileScaleInfo        `json:"tileScale"`
	Plans     []LayoutPlan         `json:"plans"`
	CardPlan  CardLayoutPlan       `json:"cardPlan"`
	// Compacted reports whether the space optimizer rewrote the
	// behaviors after the first planning pass.
	Compacted bool `json:"compacted"`
}

// Run executes the full pipeline for one card's behaviors. It is a pure,
// synchronous function: concurrent runs share nothing.
//
// When the first planning pass flags overflow, the optimizer attaches
// compaction overrides and the plans are rebuilt so the display analyzer
// sees the tightened threshold. The card plan itself is not recomputed;
// compaction is best effort and the overflow flag keeps telling the
// presenter to provide a scroll container.
func Run(behaviors []card.Behavior, cfg Config) Result {
	cfg = cfg.withDefaults()

	classified := Merge(Classify(card.NormalizeBehaviors(behaviors)))
	scale := DetectTileScale(classified)
	cardPlan := AnalyzeCardLayout(classified, cfg)

	compacted := false
	if cardPlan.NeedsOverflowHandling {
		classified = OptimizeForSpace(classified, cardPlan)
		compacted = true
	}

	plans := make([]LayoutPlan, len(classified))
	for i, cb := range classified {
		plans[i] = Plan(cb, cfg)
	}

	return Result{
		Behaviors: classified,
		TileScale: scale,
		Plans:     plans,
		CardPlan:  cardPlan,
		Compacted: compacted,
	}
}
