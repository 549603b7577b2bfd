package render

import (
	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
)

// DisplayMode says how a resource amount renders: as repeated icons or
// as a numeric multiplier next to a single icon.
type DisplayMode string

const (
	DisplayIndividual DisplayMode = "individual"
	DisplayNumber     DisplayMode = "number"
)

// Icon repetition thresholds. Amounts above the threshold switch to
// "N x icon" form; compaction tightens the threshold by one.
const (
	displayThreshold        = 3
	displayThresholdCompact = 2
)

// IconDisplayInfo is the display decision for one resource amount:
// which mode it renders in and how many icon slots it occupies.
type IconDisplayInfo struct {
	Type   card.ResourceType `json:"type"`
	Amount int               `json:"amount"`
	Mode   DisplayMode       `json:"displayMode"`
	// IconCount is the number of horizontal slots the rendering occupies.
	IconCount int `json:"iconCount"`
}

// Analyze decides the display mode for a single resource given the slot
// budget. forceCompact tightens the repetition threshold from 3 to 2;
// the same tightening applies when the resource itself carries the
// compaction override attached by the space optimizer.
//
// A production resource with a per-multiplier always renders as two
// combined glyphs (base icon plus the counted icon) regardless of
// amount.
func Analyze(res card.ResourceAmount, availableSlots int, forceCompact bool) IconDisplayInfo {
	if res.Type.IsProduction() && res.Per != nil {
		return IconDisplayInfo{Type: res.Type, Amount: res.Amount, Mode: DisplayNumber, IconCount: 2}
	}

	threshold := displayThreshold
	if forceCompact || res.ForceCompact {
		threshold = displayThresholdCompact
	}

	n := abs(res.Amount)
	if n > 0 && n <= threshold && n <= availableSlots {
		return IconDisplayInfo{Type: res.Type, Amount: res.Amount, Mode: DisplayIndividual, IconCount: n}
	}
	return IconDisplayInfo{Type: res.Type, Amount: res.Amount, Mode: DisplayNumber, IconCount: 1}
}

// AnalyzeGroup analyzes resources that render together on one row and
// then coordinates their modes: if any resource in the group resolved to
// number mode, the rest switch to number mode too so the row reads
// uniformly. Amount-1 resources are exempt ("1 x icon" would be
// redundant) and keep individual mode.
//
// Callers must re-apply this whenever group membership changes, e.g.
// after merging.
func AnalyzeGroup(resources []card.ResourceAmount, availableSlots int, forceCompact bool) []IconDisplayInfo {
	infos := make([]IconDisplayInfo, len(resources))
	anyNumber := false
	for i, r := range resources {
		infos[i] = Analyze(r, availableSlots, forceCompact)
		if infos[i].Mode == DisplayNumber {
			anyNumber = true
		}
	}
	if !anyNumber {
		return infos
	}

	for i := range infos {
		if infos[i].Mode == DisplayNumber || abs(infos[i].Amount) == 1 {
			continue
		}
		infos[i].Mode = DisplayNumber
		infos[i].IconCount = 1
	}
	return infos
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
