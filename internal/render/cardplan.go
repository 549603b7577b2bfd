package render

import (
	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
)

// CardLayoutPlan aggregates per-behavior row estimates for a whole card
// and flags when the summed estimate exceeds the card's row budget.
type CardLayoutPlan struct {
	BehaviorRows          []int `json:"behaviorRows"`
	TotalRows             int   `json:"totalRows"`
	NeedsOverflowHandling bool  `json:"needsOverflowHandling"`
}

// AnalyzeCardLayout plans each behavior in list order and totals the row
// estimates. Any bordered box occupies at least one row even when its
// plan is logically empty, so every estimate except the borderless auto
// slot is floored at 1.
func AnalyzeCardLayout(classified []ClassifiedBehavior, cfg Config) CardLayoutPlan {
	plan := CardLayoutPlan{BehaviorRows: make([]int, len(classified))}
	for i, cb := range classified {
		rows := Plan(cb, cfg).TotalRows
		if rows < 1 && cb.Category != CategoryAutoNoBackground {
			rows = 1
		}
		plan.BehaviorRows[i] = rows
		plan.TotalRows += rows
	}
	plan.NeedsOverflowHandling = plan.TotalRows > cfg.MaxRows
	return plan
}

// OptimizeForSpace rewrites behaviors for tighter display when the card
// plan flagged overflow. Every resource with an absolute amount above 2
// gets the compaction override, tightening the individual/number
// threshold the display analyzer applies downstream. This is a single
// best-effort pass: it does not re-plan to verify the rewrite fits,
// matching the game's tolerance for occasional scroll overflow on
// pathological cards.
func OptimizeForSpace(classified []ClassifiedBehavior, cardPlan CardLayoutPlan) []ClassifiedBehavior {
	if !cardPlan.NeedsOverflowHandling {
		return classified
	}

	out := make([]ClassifiedBehavior, len(classified))
	for i, cb := range classified {
		cb.Behavior = compactBehavior(cb.Behavior)
		merged := make([]card.Behavior, len(cb.Merged))
		for j, m := range cb.Merged {
			merged[j] = compactBehavior(m)
		}
		cb.Merged = merged
		out[i] = cb
	}
	return out
}

func compactBehavior(b card.Behavior) card.Behavior {
	b.Inputs = compactAmounts(b.Inputs)
	b.Outputs = compactAmounts(b.Outputs)
	choices := make([]card.Choice, len(b.Choices))
	for i, c := range b.Choices {
		choices[i] = card.Choice{
			Inputs:  compactAmounts(c.Inputs),
			Outputs: compactAmounts(c.Outputs),
		}
	}
	b.Choices = choices
	return b
}

func compactAmounts(in []card.ResourceAmount) []card.ResourceAmount {
	out := make([]card.ResourceAmount, len(in))
	for i, r := range in {
		if abs(r.Amount) > displayThresholdCompact {
			r.ForceCompact = true
		}
		out[i] = r
	}
	return out
}
