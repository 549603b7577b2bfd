package render

import (
	"testing"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
)

func TestAnalyze(t *testing.T) {
	perCity := &card.Per{Type: "city-tile", Amount: 1}

	tests := []struct {
		name         string
		res          card.ResourceAmount
		slots        int
		forceCompact bool
		wantMode     DisplayMode
		wantCount    int
	}{
		{
			name:      "small amount repeats icons",
			res:       out(card.ResourcePlants, 3),
			slots:     7,
			wantMode:  DisplayIndividual,
			wantCount: 3,
		},
		{
			name:      "amount above threshold becomes number",
			res:       out(card.ResourcePlants, 4),
			slots:     7,
			wantMode:  DisplayNumber,
			wantCount: 1,
		},
		{
			name:      "negative cost uses absolute amount",
			res:       out(card.ResourceCredits, -2),
			slots:     7,
			wantMode:  DisplayIndividual,
			wantCount: 2,
		},
		{
			name:         "compaction tightens threshold to 2",
			res:          out(card.ResourceHeat, 3),
			slots:        7,
			forceCompact: true,
			wantMode:     DisplayNumber,
			wantCount:    1,
		},
		{
			name:      "amount exceeding slot budget becomes number",
			res:       out(card.ResourceSteel, 3),
			slots:     2,
			wantMode:  DisplayNumber,
			wantCount: 1,
		},
		{
			name: "per-resource override tightens threshold",
			res: card.ResourceAmount{
				Type: card.ResourceHeat, Amount: 3,
				Target: card.TargetSelfPlayer, ForceCompact: true,
			},
			slots:     7,
			wantMode:  DisplayNumber,
			wantCount: 1,
		},
		{
			name: "production with per multiplier is always two glyphs",
			res: card.ResourceAmount{
				Type: card.ResourceCreditsProduction, Amount: 1,
				Target: card.TargetSelfPlayer, Per: perCity,
			},
			slots:     7,
			wantMode:  DisplayNumber,
			wantCount: 2,
		},
		{
			name: "production with per multiplier ignores amount",
			res: card.ResourceAmount{
				Type: card.ResourceCreditsProduction, Amount: 9,
				Target: card.TargetSelfPlayer, Per: perCity,
			},
			slots:     7,
			wantMode:  DisplayNumber,
			wantCount: 2,
		},
		{
			name:      "zero amount is number mode",
			res:       card.ResourceAmount{Type: card.ResourceCredits, Target: card.TargetSelfPlayer},
			slots:     7,
			wantMode:  DisplayNumber,
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.res, tt.slots, tt.forceCompact)
			if got.Mode != tt.wantMode {
				t.Errorf("Mode = %q, want %q", got.Mode, tt.wantMode)
			}
			if got.IconCount != tt.wantCount {
				t.Errorf("IconCount = %d, want %d", got.IconCount, tt.wantCount)
			}
		})
	}
}

func TestAnalyzeGroupCoordination(t *testing.T) {
	// One resource resolving to number mode drags the rest of the group
	// into number mode, except amount-1 resources.
	group := []card.ResourceAmount{
		out(card.ResourceSteel, 2),
		out(card.ResourceTitanium, 8),
		out(card.ResourcePlants, 1),
	}

	infos := AnalyzeGroup(group, 7, false)
	if infos[0].Mode != DisplayNumber {
		t.Errorf("steel x2 should follow the group into number mode, got %q", infos[0].Mode)
	}
	if infos[0].IconCount != 1 {
		t.Errorf("coerced resource should occupy 1 slot, got %d", infos[0].IconCount)
	}
	if infos[1].Mode != DisplayNumber {
		t.Errorf("titanium x8 = %q, want number", infos[1].Mode)
	}
	if infos[2].Mode != DisplayIndividual {
		t.Errorf("amount-1 plants must stay individual, got %q", infos[2].Mode)
	}
}

func TestAnalyzeGroupAllSmallStaysIndividual(t *testing.T) {
	group := []card.ResourceAmount{
		out(card.ResourceSteel, 2),
		out(card.ResourcePlants, 3),
	}

	for _, info := range AnalyzeGroup(group, 7, false) {
		if info.Mode != DisplayIndividual {
			t.Errorf("%s: Mode = %q, want individual", info.Type, info.Mode)
		}
	}
}

func TestAnalyzeGroupNegativeOneExempt(t *testing.T) {
	group := []card.ResourceAmount{
		out(card.ResourceEnergy, -1),
		out(card.ResourceCredits, 9),
	}

	infos := AnalyzeGroup(group, 7, false)
	if infos[0].Mode != DisplayIndividual {
		t.Errorf("|-1| energy must stay individual, got %q", infos[0].Mode)
	}
	if infos[1].Mode != DisplayNumber {
		t.Errorf("credits x9 = %q, want number", infos[1].Mode)
	}
}

func TestAnalyzeGroupEmpty(t *testing.T) {
	if got := AnalyzeGroup(nil, 7, false); len(got) != 0 {
		t.Errorf("AnalyzeGroup(nil) returned %d infos, want 0", len(got))
	}
}
