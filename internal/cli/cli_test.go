package cli

import (
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/config"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/output"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/render"
)

func TestLayoutConfig(t *testing.T) {
	base := config.Default()
	base.Layout.IconColumns = 7
	base.Layout.MaxRows = 4

	tests := []struct {
		name        string
		iconColumns int
		maxRows     int
		wantCols    int
		wantRows    int
	}{
		{"config values pass through", 0, 0, 7, 4},
		{"flag overrides columns", 9, 0, 9, 4},
		{"flag overrides rows", 0, 6, 7, 6},
		{"both flags win", 5, 3, 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := layoutConfig(base, tt.iconColumns, tt.maxRows)
			if rc.IconColumns != tt.wantCols {
				t.Errorf("IconColumns = %d, want %d", rc.IconColumns, tt.wantCols)
			}
			if rc.MaxRows != tt.wantRows {
				t.Errorf("MaxRows = %d, want %d", rc.MaxRows, tt.wantRows)
			}
		})
	}
}

func TestIconSetModes(t *testing.T) {
	if got := iconSet("ascii").Credits; got != "$" {
		t.Errorf("ascii credits = %q, want $", got)
	}
	if got := iconSet("unicode").Plants; got != "❦" {
		t.Errorf("unicode plants = %q, want ❦", got)
	}
	// Nerd mode must still have every field filled via fallback
	nerd := iconSet("nerd")
	if nerd.Arrow == "" || nerd.Credits == "" {
		t.Error("nerd set has empty icons after fallback")
	}
}

func TestForceCompactMarksAllAmounts(t *testing.T) {
	c := card.Card{
		Behaviors: []card.Behavior{
			{
				Inputs:  []card.ResourceAmount{{Type: card.ResourceCredits, Amount: -8}},
				Outputs: []card.ResourceAmount{{Type: card.ResourcePlants, Amount: 3}},
				Choices: []card.Choice{
					{Outputs: []card.ResourceAmount{{Type: card.ResourceHeat, Amount: 4}}},
				},
			},
		},
	}
	forceCompact(&c)

	b := c.Behaviors[0]
	if !b.Inputs[0].ForceCompact || !b.Outputs[0].ForceCompact {
		t.Error("inputs/outputs not marked compact")
	}
	if !b.Choices[0].Outputs[0].ForceCompact {
		t.Error("choice outputs not marked compact")
	}
}

func TestDescribeRow(t *testing.T) {
	row := render.Row{
		Inputs:    []render.IconDisplayInfo{{Type: card.ResourceCredits, Amount: -8, Mode: render.DisplayNumber, IconCount: 1}},
		Outputs:   []render.IconDisplayInfo{{Type: card.ResourcePlants, Amount: 2, Mode: render.DisplayIndividual, IconCount: 2}},
		Separator: render.SeparatorArrow,
	}
	got := describeRow(row)
	for _, want := range []string{"credits", "->", "plants x2"} {
		if !strings.Contains(got, want) {
			t.Errorf("describeRow = %q, missing %q", got, want)
		}
	}

	if got := describeRow(render.Row{}); got != "(empty)" {
		t.Errorf("empty row = %q, want (empty)", got)
	}
}

func TestSummarizeCategories(t *testing.T) {
	it := output.CardListItem{
		Behaviors: 3,
		Categories: map[string]int{
			"triggered-effect": 2,
			"manual-action":    1,
		},
	}
	got := summarizeCategories(it)
	if !strings.Contains(got, "1 manual-action") || !strings.Contains(got, "2 triggered-effect") {
		t.Errorf("summary = %q", got)
	}
	// Category order is fixed: actions come before triggered effects
	if strings.Index(got, "manual-action") > strings.Index(got, "triggered-effect") {
		t.Errorf("summary order = %q, want manual-action first", got)
	}

	if got := summarizeCategories(output.CardListItem{}); got != "-" {
		t.Errorf("empty summary = %q, want -", got)
	}
}

func TestDiffLabel(t *testing.T) {
	if got := diffLabel(card.Card{Name: "Arctic Algae"}, "a.json"); got != "Arctic Algae" {
		t.Errorf("diffLabel = %q", got)
	}
	if got := diffLabel(card.Card{}, "a.json"); got != "a.json" {
		t.Errorf("diffLabel fallback = %q", got)
	}
}

func TestListItem(t *testing.T) {
	c := card.Card{
		ID:   "birds",
		Name: "Birds",
		Type: card.CardTypeActive,
		Cost: 10,
		Behaviors: []card.Behavior{
			{
				Triggers: []card.Trigger{{Type: card.TriggerManual}},
				Outputs:  []card.ResourceAmount{{Type: card.ResourceAnimals, Amount: 1}},
			},
		},
	}
	res := render.Run(c.Behaviors, render.DefaultConfig())
	it := listItem(c, res)

	if it.ID != "birds" || it.Cost != 10 || it.Behaviors != 1 {
		t.Errorf("item = %+v", it)
	}
	if it.Categories["manual-action"] != 1 {
		t.Errorf("categories = %v, want manual-action count 1", it.Categories)
	}
	if it.Rows < 1 {
		t.Errorf("rows = %d, want >= 1", it.Rows)
	}
}

func TestWatchCallbacksConcurrentConfigSwap(t *testing.T) {
	old := cfg
	defer func() { cfg = old }()
	cfg = config.Default()

	draw := func() error {
		_ = cfg.Layout.IconColumns
		return nil
	}
	redraw, onConfig := watchCallbacks(io.Discard, io.Discard, draw)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			redraw()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			c := config.Default()
			c.Layout.IconColumns = i
			onConfig(c)
		}
	}()
	wg.Wait()

	if cfg == nil {
		t.Fatal("config lost after concurrent reloads")
	}
}
