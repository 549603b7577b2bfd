// Package render implements the card behavior layout pipeline: it
// classifies raw behaviors into display categories, consolidates
// behaviors that share a display slot, decides per-resource icon display
// modes, and produces row-by-row layout plans bounded by the card's row
// budget. Every stage is a pure function over immutable inputs; the
// pipeline allocates its own intermediate values and never errors.
package render

import (
	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
)

// Category is the closed set of display categories a behavior can render
// as. The category decides which view a behavior is dispatched to and
// how its layout plan is built.
type Category string

const (
	CategoryDiscount            Category = "discount"
	CategoryPaymentSubstitute   Category = "payment-substitute"
	CategoryValueModifier       Category = "value-modifier"
	CategoryDefense             Category = "defense"
	CategoryManualAction        Category = "manual-action"
	CategoryTriggeredEffect     Category = "triggered-effect"
	CategoryImmediateProduction Category = "immediate-production"
	CategoryImmediateEffect     Category = "immediate-effect"
	CategoryAutoNoBackground    Category = "auto-no-background"
)

// ClassifiedBehavior pairs a behavior with its display category. Merged
// carries secondary triggered effects folded into this one for shared
// display; only their output content is still relevant.
type ClassifiedBehavior struct {
	Behavior card.Behavior `json:"behavior"`
	Category Category      `json:"category"`
	Merged   []card.Behavior `json:"mergedBehaviors,omitempty"`
}

// Classify assigns each behavior a category. The result has the same
// length and order as the input.
//
// Categories are not mutually exclusive in the raw data (a discount can
// also carry an auto trigger), so the rule order below is the contract:
// first match wins.
func Classify(behaviors []card.Behavior) []ClassifiedBehavior {
	out := make([]ClassifiedBehavior, len(behaviors))
	for i, b := range behaviors {
		out[i] = ClassifiedBehavior{Behavior: b, Category: categoryOf(b)}
	}
	return out
}

func categoryOf(b card.Behavior) Category {
	switch {
	case hasOutputType(b, card.ResourceDiscount):
		return CategoryDiscount
	case hasOutputType(b, card.ResourcePaymentSubstitute):
		return CategoryPaymentSubstitute
	case hasOutputType(b, card.ResourceValueModifier):
		return CategoryValueModifier
	case hasOutputType(b, card.ResourceDefense):
		return CategoryDefense
	}

	if first, ok := b.FirstTrigger(); ok {
		if first.Type == card.TriggerManual {
			return CategoryManualAction
		}
		if first.Type == card.TriggerAuto && first.Condition != nil {
			return CategoryTriggeredEffect
		}
		if first.Type == card.TriggerAuto && len(b.Inputs) == 0 {
			return CategoryAutoNoBackground
		}
		if len(b.Inputs) > 0 {
			return CategoryTriggeredEffect
		}
	}

	if hasProductionOutput(b) && autoOrUntriggered(b) {
		return CategoryImmediateProduction
	}
	return CategoryImmediateEffect
}

func hasOutputType(b card.Behavior, t card.ResourceType) bool {
	for _, o := range b.Outputs {
		if o.Type == t {
			return true
		}
	}
	return false
}

func hasProductionOutput(b card.Behavior) bool {
	for _, o := range b.Outputs {
		if o.Type.IsProduction() {
			return true
		}
	}
	return false
}

func autoOrUntriggered(b card.Behavior) bool {
	first, ok := b.FirstTrigger()
	return !ok || first.Type == card.TriggerAuto
}
