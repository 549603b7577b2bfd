package render

import (
	"testing"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
)

func TestDetectTileScale(t *testing.T) {
	tests := []struct {
		name      string
		behaviors []card.Behavior
		wantScale float64
		wantType  card.ResourceType
		wantCount int
	}{
		{
			name: "no placement tiles",
			behaviors: []card.Behavior{
				{Outputs: []card.ResourceAmount{out(card.ResourceCredits, 3)}},
			},
			wantScale: ScaleNormal,
			wantType:  "",
			wantCount: 0,
		},
		{
			name: "single isolated tile",
			behaviors: []card.Behavior{
				{Outputs: []card.ResourceAmount{out(card.ResourceGreeneryPlacement, 1)}},
			},
			wantScale: ScaleSingle,
			wantType:  card.ResourceGreeneryPlacement,
			wantCount: 1,
		},
		{
			name: "two isolated tiles",
			behaviors: []card.Behavior{
				{Outputs: []card.ResourceAmount{out(card.ResourceCityPlacement, 1)}},
				{Outputs: []card.ResourceAmount{out(card.ResourceOceanPlacement, 1)}},
			},
			wantScale: ScalePair,
			wantType:  card.ResourceCityPlacement,
			wantCount: 2,
		},
		{
			name: "two tiles in one behavior",
			behaviors: []card.Behavior{
				{Outputs: []card.ResourceAmount{
					out(card.ResourceOceanPlacement, 1),
					out(card.ResourceOceanPlacement, 1),
				}},
			},
			wantScale: ScalePair,
			wantType:  card.ResourceOceanPlacement,
			wantCount: 2,
		},
		{
			name: "tile sharing a behavior with non-placement output",
			behaviors: []card.Behavior{
				{Outputs: []card.ResourceAmount{
					out(card.ResourceCityPlacement, 1),
					out(card.ResourceCredits, 3),
				}},
			},
			wantScale: ScaleNormal,
			wantType:  "",
			wantCount: 1,
		},
		{
			name: "tile alongside production box",
			behaviors: []card.Behavior{
				{Outputs: []card.ResourceAmount{out(card.ResourceGreeneryPlacement, 1)}},
				{Outputs: []card.ResourceAmount{out(card.ResourcePlantsProduction, 1)}},
			},
			wantScale: ScaleNormal,
			wantType:  "",
			wantCount: 1,
		},
		{
			name: "tile alongside manual action",
			behaviors: []card.Behavior{
				{Outputs: []card.ResourceAmount{out(card.ResourceOceanPlacement, 1)}},
				{
					Triggers: []card.Trigger{manualTrigger()},
					Inputs:   []card.ResourceAmount{out(card.ResourceEnergy, 1)},
					Outputs:  []card.ResourceAmount{out(card.ResourceCredits, 1)},
				},
			},
			wantScale: ScaleNormal,
			wantType:  "",
			wantCount: 1,
		},
		{
			name: "three tiles never scale",
			behaviors: []card.Behavior{
				{Outputs: []card.ResourceAmount{out(card.ResourceOceanPlacement, 1)}},
				{Outputs: []card.ResourceAmount{out(card.ResourceOceanPlacement, 1)}},
				{Outputs: []card.ResourceAmount{out(card.ResourceOceanPlacement, 1)}},
			},
			wantScale: ScaleNormal,
			wantType:  "",
			wantCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectTileScale(Merge(Classify(card.NormalizeBehaviors(tt.behaviors))))
			if got.Scale > ScaleSingle {
				t.Errorf("Scale = %v, detection rules stop at %v", got.Scale, ScaleSingle)
			}
			if got.Scale != tt.wantScale {
				t.Errorf("Scale = %v, want %v", got.Scale, tt.wantScale)
			}
			if got.TileType != tt.wantType {
				t.Errorf("TileType = %q, want %q", got.TileType, tt.wantType)
			}
			if got.TileCount != tt.wantCount {
				t.Errorf("TileCount = %d, want %d", got.TileCount, tt.wantCount)
			}
		})
	}
}
