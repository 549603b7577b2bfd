package render

import (
	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
)

// Tile scale factors. Placement tiles render oversized only when they
// are the card's sole content; a tile that shares the card with other
// mechanics stays at normal size. TileScaleInfo.Scale draws from this
// closed set. DetectTileScale's rules top out at ScaleSingle; ScaleHero
// completes the declared set as its unused ceiling.
const (
	ScaleNormal = 1.0
	ScalePair   = 1.25
	ScaleSingle = 1.5
	ScaleHero   = 2.0
)

// TileScaleInfo is one value shared by every placement icon on a card.
type TileScaleInfo struct {
	Scale     float64           `json:"scale"`
	TileType  card.ResourceType `json:"tileType,omitempty"`
	TileCount int               `json:"tileCount"`
}

// DetectTileScale decides whether placement-tile icons render oversized.
// The decision looks at the whole merged behavior list: emphasis only
// applies when the placements are the card's only content and the card
// carries no production box, no action or choice box, and no conditional
// triggered effect.
func DetectTileScale(classified []ClassifiedBehavior) TileScaleInfo {
	var placements int
	var firstType card.ResourceType
	sharesBehavior := false

	for _, cb := range classified {
		var placed, other bool
		for _, o := range cb.Behavior.Outputs {
			if o.Type.IsPlacement() {
				placements++
				if firstType == "" {
					firstType = o.Type
				}
				placed = true
			} else {
				other = true
			}
		}
		if placed && other {
			sharesBehavior = true
		}
	}

	if placements == 0 {
		return TileScaleInfo{Scale: ScaleNormal}
	}
	if sharesBehavior {
		return TileScaleInfo{Scale: ScaleNormal, TileCount: placements}
	}

	busy := hasProductionBox(classified) ||
		hasActionOrChoiceBox(classified) ||
		hasConditionalEffect(classified)
	isolated := placementsOnly(classified)

	switch {
	case placements == 2 && isolated && !busy:
		return TileScaleInfo{Scale: ScalePair, TileType: firstType, TileCount: placements}
	case placements == 1 && isolated && !busy:
		return TileScaleInfo{Scale: ScaleSingle, TileType: firstType, TileCount: placements}
	}
	return TileScaleInfo{Scale: ScaleNormal, TileCount: placements}
}

// placementsOnly reports whether placement outputs are the card's only
// behaviors: every behavior consists solely of placement outputs, with
// no inputs and no choices.
func placementsOnly(classified []ClassifiedBehavior) bool {
	for _, cb := range classified {
		if len(cb.Behavior.Inputs) > 0 || cb.Behavior.HasChoices() {
			return false
		}
		for _, o := range cb.Behavior.Outputs {
			if !o.Type.IsPlacement() {
				return false
			}
		}
	}
	return true
}

func hasProductionBox(classified []ClassifiedBehavior) bool {
	for _, cb := range classified {
		if cb.Category == CategoryImmediateProduction {
			return true
		}
	}
	return false
}

func hasActionOrChoiceBox(classified []ClassifiedBehavior) bool {
	for _, cb := range classified {
		if cb.Category == CategoryManualAction || cb.Behavior.HasChoices() {
			return true
		}
	}
	return false
}

func hasConditionalEffect(classified []ClassifiedBehavior) bool {
	for _, cb := range classified {
		if hasConditionalTrigger(cb.Behavior) {
			return true
		}
	}
	return false
}
