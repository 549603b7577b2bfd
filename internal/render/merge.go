package render

import (
	"fmt"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
)

// Merge runs both consolidation passes over a classified behavior list:
// triggered effects sharing a condition key collapse into one box, and
// unconditional auto effects collapse into a single borderless slot.
// Both passes are idempotent and leave non-qualifying behaviors alone.
func Merge(classified []ClassifiedBehavior) []ClassifiedBehavior {
	return mergeAutoNoBackground(mergeTriggeredByCondition(classified))
}

// conditionKey builds the grouping key for a triggered effect. Two
// conditions that differ only in which player or location they watch
// must stay visually separate, so target and location are part of the
// key, defaulting to "any" when absent.
func conditionKey(c *card.TriggerCondition) string {
	target := "any"
	if c.Target != nil {
		target = string(*c.Target)
	}
	location := "any"
	if c.Location != nil {
		location = string(*c.Location)
	}
	return fmt.Sprintf("%s|%s|%s", c.Type, target, location)
}

// mergeTriggeredByCondition folds triggered effects with identical
// condition keys into the first occurrence. The fold preserves input
// order: a merged primary keeps its position, and everything else
// passes through untouched.
func mergeTriggeredByCondition(classified []ClassifiedBehavior) []ClassifiedBehavior {
	out := make([]ClassifiedBehavior, 0, len(classified))
	primaries := map[string]int{} // condition key -> index in out

	for _, cb := range classified {
		first, ok := cb.Behavior.FirstTrigger()
		if cb.Category != CategoryTriggeredEffect || !ok || first.Condition == nil {
			out = append(out, cb)
			continue
		}

		key := conditionKey(first.Condition)
		if idx, seen := primaries[key]; seen {
			primary := out[idx]
			merged := make([]card.Behavior, len(primary.Merged), len(primary.Merged)+1)
			copy(merged, primary.Merged)
			primary.Merged = append(merged, cb.Behavior)
			out[idx] = primary
			continue
		}
		primaries[key] = len(out)
		out = append(out, cb)
	}
	return out
}

// mergeAutoNoBackground consolidates unconditional auto effects. The
// qualifying behaviors split into a production bucket (every output is a
// production change) and an immediate bucket; each non-empty bucket
// collapses to one behavior, and if both are non-empty they collapse
// again into a single behavior so production and immediate effects share
// one borderless display slot. A behavior whose trigger carries a
// condition is never folded in: conditional effects must stay visually
// distinct so the card does not imply they always fire.
func mergeAutoNoBackground(classified []ClassifiedBehavior) []ClassifiedBehavior {
	var production, immediate []ClassifiedBehavior
	var rest []ClassifiedBehavior

	for _, cb := range classified {
		if cb.Category != CategoryAutoNoBackground || hasConditionalTrigger(cb.Behavior) {
			rest = append(rest, cb)
			continue
		}
		if allOutputsProduction(cb.Behavior) {
			production = append(production, cb)
		} else {
			immediate = append(immediate, cb)
		}
	}

	if len(production)+len(immediate) < 2 {
		return classified
	}

	prodMerged := concatOutputs(production)
	immMerged := concatOutputs(immediate)

	var combined []ClassifiedBehavior
	switch {
	case prodMerged != nil && immMerged != nil:
		both := concatOutputs([]ClassifiedBehavior{*prodMerged, *immMerged})
		combined = append(combined, *both)
	case prodMerged != nil:
		combined = append(combined, *prodMerged)
	case immMerged != nil:
		combined = append(combined, *immMerged)
	}

	return append(combined, rest...)
}

// concatOutputs collapses a bucket to one synthetic auto behavior whose
// outputs are the concatenation of every absorbed behavior's outputs.
// Nothing is dropped or duplicated. A single-element bucket passes its
// behavior through with a bare auto trigger.
func concatOutputs(bucket []ClassifiedBehavior) *ClassifiedBehavior {
	if len(bucket) == 0 {
		return nil
	}

	var outputs []card.ResourceAmount
	for _, cb := range bucket {
		outputs = append(outputs, cb.Behavior.Outputs...)
	}

	return &ClassifiedBehavior{
		Behavior: card.Behavior{
			Triggers: []card.Trigger{{Type: card.TriggerAuto}},
			Inputs:   []card.ResourceAmount{},
			Outputs:  outputs,
			Choices:  []card.Choice{},
		},
		Category: CategoryAutoNoBackground,
	}
}

func hasConditionalTrigger(b card.Behavior) bool {
	for _, t := range b.Triggers {
		if t.Condition != nil {
			return true
		}
	}
	return false
}

func allOutputsProduction(b card.Behavior) bool {
	if len(b.Outputs) == 0 {
		return false
	}
	for _, o := range b.Outputs {
		if !o.Type.IsProduction() {
			return false
		}
	}
	return true
}
