package card

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	b := Behavior{
		Inputs:  []ResourceAmount{{Type: ResourcePlants}},
		Outputs: []ResourceAmount{{Type: ResourceCredits, Amount: 3}},
	}

	got := b.Normalize()
	if got.Inputs[0].Amount != 1 {
		t.Errorf("input amount = %d, want default 1", got.Inputs[0].Amount)
	}
	if got.Inputs[0].Target != TargetSelfPlayer {
		t.Errorf("input target = %q, want self-player", got.Inputs[0].Target)
	}
	if got.Outputs[0].Amount != 3 {
		t.Errorf("output amount = %d, want 3 unchanged", got.Outputs[0].Amount)
	}
	if got.Triggers == nil || got.Choices == nil {
		t.Error("nil slices should become empty, not stay nil")
	}
}

func TestNormalizeDoesNotMutateOriginal(t *testing.T) {
	b := Behavior{Outputs: []ResourceAmount{{Type: ResourceCredits}}}
	_ = b.Normalize()
	if b.Outputs[0].Amount != 0 {
		t.Error("Normalize mutated its receiver")
	}
}

func TestNormalizeChoicesAndPer(t *testing.T) {
	b := Behavior{
		Per: &Per{Type: "city-tile"},
		Choices: []Choice{{
			Inputs:  []ResourceAmount{{Type: ResourceEnergy}},
			Outputs: []ResourceAmount{{Type: ResourceHeat, Amount: -2}},
		}},
	}

	got := b.Normalize()
	if got.Per.Amount != 1 {
		t.Errorf("per amount = %d, want default 1", got.Per.Amount)
	}
	if got.Choices[0].Inputs[0].Amount != 1 {
		t.Errorf("choice input amount = %d, want default 1", got.Choices[0].Inputs[0].Amount)
	}
	if got.Choices[0].Outputs[0].Amount != -2 {
		t.Errorf("negative amount changed: %d", got.Choices[0].Outputs[0].Amount)
	}
}

func TestResourceTypeHelpers(t *testing.T) {
	tests := []struct {
		rt            ResourceType
		isProduction  bool
		isPlacement   bool
		base          ResourceType
	}{
		{ResourceCredits, false, false, ResourceCredits},
		{ResourceSteelProduction, true, false, ResourceSteel},
		{ResourceCityPlacement, false, true, ResourceCityPlacement},
		{ResourceOceanPlacement, false, true, ResourceOceanPlacement},
		{ResourceGreeneryPlacement, false, true, ResourceGreeneryPlacement},
		{"unknown-thing", false, false, "unknown-thing"},
	}

	for _, tt := range tests {
		t.Run(string(tt.rt), func(t *testing.T) {
			if got := tt.rt.IsProduction(); got != tt.isProduction {
				t.Errorf("IsProduction() = %v, want %v", got, tt.isProduction)
			}
			if got := tt.rt.IsPlacement(); got != tt.isPlacement {
				t.Errorf("IsPlacement() = %v, want %v", got, tt.isPlacement)
			}
			if got := tt.rt.Base(); got != tt.base {
				t.Errorf("Base() = %q, want %q", got, tt.base)
			}
		})
	}
}
