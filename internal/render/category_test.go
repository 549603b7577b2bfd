package render

import (
	"testing"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
)

func autoTrigger() card.Trigger {
	return card.Trigger{Type: card.TriggerAuto}
}

func manualTrigger() card.Trigger {
	return card.Trigger{Type: card.TriggerManual}
}

func conditionalTrigger(t card.TriggerType) card.Trigger {
	return card.Trigger{
		Type:      card.TriggerAuto,
		Condition: &card.TriggerCondition{Type: t},
	}
}

func out(t card.ResourceType, amount int) card.ResourceAmount {
	return card.ResourceAmount{Type: t, Amount: amount, Target: card.TargetSelfPlayer}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		behavior card.Behavior
		want     Category
	}{
		{
			name:     "discount output",
			behavior: card.Behavior{Outputs: []card.ResourceAmount{out(card.ResourceDiscount, 2)}},
			want:     CategoryDiscount,
		},
		{
			name: "discount wins over conditional auto trigger",
			behavior: card.Behavior{
				Triggers: []card.Trigger{conditionalTrigger(card.TriggerCardPlayed)},
				Outputs:  []card.ResourceAmount{out(card.ResourceDiscount, 2)},
			},
			want: CategoryDiscount,
		},
		{
			name:     "payment substitute",
			behavior: card.Behavior{Outputs: []card.ResourceAmount{out(card.ResourcePaymentSubstitute, 1)}},
			want:     CategoryPaymentSubstitute,
		},
		{
			name:     "value modifier",
			behavior: card.Behavior{Outputs: []card.ResourceAmount{out(card.ResourceValueModifier, 1)}},
			want:     CategoryValueModifier,
		},
		{
			name:     "defense",
			behavior: card.Behavior{Outputs: []card.ResourceAmount{out(card.ResourceDefense, 1)}},
			want:     CategoryDefense,
		},
		{
			name: "manual trigger",
			behavior: card.Behavior{
				Triggers: []card.Trigger{manualTrigger()},
				Inputs:   []card.ResourceAmount{out(card.ResourceEnergy, 1)},
				Outputs:  []card.ResourceAmount{out(card.ResourceCredits, 1)},
			},
			want: CategoryManualAction,
		},
		{
			name: "auto trigger with condition",
			behavior: card.Behavior{
				Triggers: []card.Trigger{conditionalTrigger(card.TriggerCityPlaced)},
				Outputs:  []card.ResourceAmount{out(card.ResourceCredits, 2)},
			},
			want: CategoryTriggeredEffect,
		},
		{
			name: "bare auto trigger without inputs",
			behavior: card.Behavior{
				Triggers: []card.Trigger{autoTrigger()},
				Outputs:  []card.ResourceAmount{out(card.ResourceCredits, 3)},
			},
			want: CategoryAutoNoBackground,
		},
		{
			name: "bare auto trigger with inputs",
			behavior: card.Behavior{
				Triggers: []card.Trigger{autoTrigger()},
				Inputs:   []card.ResourceAmount{out(card.ResourcePlants, 1)},
				Outputs:  []card.ResourceAmount{out(card.ResourceCredits, 3)},
			},
			want: CategoryTriggeredEffect,
		},
		{
			name: "production output no trigger",
			behavior: card.Behavior{
				Outputs: []card.ResourceAmount{out(card.ResourceSteelProduction, 1)},
			},
			want: CategoryImmediateProduction,
		},
		{
			name: "mixed production and stock still production",
			behavior: card.Behavior{
				Outputs: []card.ResourceAmount{
					out(card.ResourceSteelProduction, 1),
					out(card.ResourceTitanium, 2),
				},
			},
			want: CategoryImmediateProduction,
		},
		{
			name:     "plain stock gain",
			behavior: card.Behavior{Outputs: []card.ResourceAmount{out(card.ResourceCredits, 5)}},
			want:     CategoryImmediateEffect,
		},
		{
			name:     "empty behavior",
			behavior: card.Behavior{},
			want:     CategoryImmediateEffect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify([]card.Behavior{tt.behavior})
			if len(got) != 1 {
				t.Fatalf("Classify returned %d results, want 1", len(got))
			}
			if got[0].Category != tt.want {
				t.Errorf("Classify() category = %q, want %q", got[0].Category, tt.want)
			}
		})
	}
}

func TestClassifyPreservesOrderAndLength(t *testing.T) {
	behaviors := []card.Behavior{
		{Outputs: []card.ResourceAmount{out(card.ResourceDiscount, 1)}},
		{Triggers: []card.Trigger{manualTrigger()}},
		{Outputs: []card.ResourceAmount{out(card.ResourceHeat, 2)}},
	}

	got := Classify(behaviors)
	if len(got) != len(behaviors) {
		t.Fatalf("Classify returned %d results, want %d", len(got), len(behaviors))
	}

	want := []Category{CategoryDiscount, CategoryManualAction, CategoryImmediateEffect}
	for i, cat := range want {
		if got[i].Category != cat {
			t.Errorf("result[%d] = %q, want %q", i, got[i].Category, cat)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	b := card.Behavior{
		Triggers: []card.Trigger{conditionalTrigger(card.TriggerCityPlaced)},
		Outputs:  []card.ResourceAmount{out(card.ResourceDiscount, 1)},
	}

	first := Classify([]card.Behavior{b})[0].Category
	for i := 0; i < 10; i++ {
		if got := Classify([]card.Behavior{b})[0].Category; got != first {
			t.Fatalf("run %d classified %q, first run classified %q", i, got, first)
		}
	}
}
