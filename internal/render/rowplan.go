package render

import (
	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
)

// Separator marks the glue rendered between icon groups in a row.
type Separator string

const (
	SeparatorNone  Separator = ""
	SeparatorArrow Separator = "arrow" // inputs -> outputs
	SeparatorColon Separator = "colon" // trigger : outputs
	SeparatorOr    Separator = "or"    // between choices
)

// Slot budget for the icon lists inside a single choice. Choices render
// in a narrower sub-box than a full behavior row.
const choiceSlotBudget = 3

// Row is one display row of a behavior: input icons, output icons, and
// the separator drawn between (or before) them.
type Row struct {
	Inputs    []IconDisplayInfo `json:"inputs,omitempty"`
	Outputs   []IconDisplayInfo `json:"outputs,omitempty"`
	Separator Separator         `json:"separator,omitempty"`
}

// LayoutPlan is the full row plan for one behavior. It is a disposable
// scheduling artifact owned by one render pass.
type LayoutPlan struct {
	Rows      []Row `json:"rows"`
	TotalRows int   `json:"totalRows"`
	MultiRow  bool  `json:"multiRow"`
}

// Width returns the occupied slot count of a row including its separator.
func (r Row) Width() int {
	w := 0
	for _, in := range r.Inputs {
		w += in.IconCount
	}
	for _, out := range r.Outputs {
		w += out.IconCount
	}
	if r.Separator != SeparatorNone {
		w++
	}
	return w
}

// layoutFunc builds the row plan for one behavior of a given category.
type layoutFunc func(b card.Behavior, cat Category, cfg Config) LayoutPlan

// layoutHandlers maps each category to its layout strategy. Manual
// actions keep inputs and outputs paired across rows; every other
// category lays out its outputs alone.
var layoutHandlers = map[Category]layoutFunc{
	CategoryDiscount:            planOutputs,
	CategoryPaymentSubstitute:   planOutputs,
	CategoryValueModifier:       planOutputs,
	CategoryDefense:             planOutputs,
	CategoryManualAction:        planManualAction,
	CategoryTriggeredEffect:     planOutputs,
	CategoryImmediateProduction: planOutputs,
	CategoryImmediateEffect:     planOutputs,
	CategoryAutoNoBackground:    planOutputs,
}

// Plan builds the row plan for one classified behavior. Outputs of
// merged secondaries join the primary's output group, so the whole
// group passes through display analysis together and the coordination
// rule sees the post-merge membership.
func Plan(cb ClassifiedBehavior, cfg Config) LayoutPlan {
	b := displayBehavior(cb)
	if b.HasChoices() {
		return planChoices(b, cb.Category, cfg)
	}
	handler, ok := layoutHandlers[cb.Category]
	if !ok {
		handler = planOutputs
	}
	return handler(b, cb.Category, cfg)
}

// displayBehavior appends the outputs of every merged secondary to the
// primary behavior's outputs. Secondaries contribute only output
// content; their triggers were already proven equivalent by the merge
// key.
func displayBehavior(cb ClassifiedBehavior) card.Behavior {
	if len(cb.Merged) == 0 {
		return cb.Behavior
	}
	b := cb.Behavior
	outputs := make([]card.ResourceAmount, 0, len(b.Outputs))
	outputs = append(outputs, b.Outputs...)
	for _, m := range cb.Merged {
		outputs = append(outputs, m.Outputs...)
	}
	b.Outputs = outputs
	return b
}

// separatorFor returns the separator a category renders between its icon
// groups. Manual actions draw an arrow between inputs and outputs;
// triggered effects and discounts draw a colon after their trigger;
// borderless auto effects draw nothing at all.
func separatorFor(cat Category) Separator {
	switch cat {
	case CategoryManualAction:
		return SeparatorArrow
	case CategoryTriggeredEffect, CategoryDiscount:
		return SeparatorColon
	case CategoryAutoNoBackground:
		return SeparatorNone
	default:
		return SeparatorNone
	}
}

// totalWidth sums icon slots over inputs then outputs plus one slot per
// required separator.
func totalWidth(inputs, outputs []IconDisplayInfo, cat Category) int {
	w := 0
	for _, in := range inputs {
		w += in.IconCount
	}
	for _, out := range outputs {
		w += out.IconCount
	}
	if separatorFor(cat) != SeparatorNone {
		w++
	}
	return w
}

// planOutputs lays out a behavior whose display is driven by its outputs
// alone. If everything fits the horizontal budget the plan is a single
// row; otherwise the outputs flow through the greedy distributor at the
// full budget.
func planOutputs(b card.Behavior, cat Category, cfg Config) LayoutPlan {
	inputs := AnalyzeGroup(b.Inputs, cfg.IconColumns, false)
	outputs := AnalyzeGroup(b.Outputs, cfg.IconColumns, false)

	if totalWidth(inputs, outputs, cat) <= cfg.IconColumns {
		return LayoutPlan{
			Rows:      []Row{{Inputs: inputs, Outputs: outputs, Separator: separatorFor(cat)}},
			TotalRows: 1,
		}
	}

	rows := distribute(outputs, cfg.IconColumns)
	plan := LayoutPlan{MultiRow: true}
	for i, r := range rows {
		row := Row{Outputs: r}
		if i == 0 && cat != CategoryAutoNoBackground {
			row.Separator = SeparatorColon
		}
		plan.Rows = append(plan.Rows, row)
	}
	plan.TotalRows = len(plan.Rows)
	return plan
}

// planManualAction keeps the "inputs -> outputs" reading on every row.
// Inputs and outputs distribute independently, each side capped at half
// the budget minus the arrow slot, and row i of each side zips into one
// combined row, padding the shorter side.
func planManualAction(b card.Behavior, cat Category, cfg Config) LayoutPlan {
	inputs := AnalyzeGroup(b.Inputs, cfg.IconColumns, false)
	outputs := AnalyzeGroup(b.Outputs, cfg.IconColumns, false)

	if totalWidth(inputs, outputs, cat) <= cfg.IconColumns {
		return LayoutPlan{
			Rows:      []Row{{Inputs: inputs, Outputs: outputs, Separator: SeparatorArrow}},
			TotalRows: 1,
		}
	}

	sideMax := (cfg.IconColumns - 1) / 2
	inRows := distribute(inputs, sideMax)
	outRows := distribute(outputs, sideMax)

	n := len(inRows)
	if len(outRows) > n {
		n = len(outRows)
	}

	plan := LayoutPlan{MultiRow: true}
	for i := 0; i < n; i++ {
		row := Row{Separator: SeparatorArrow}
		if i < len(inRows) {
			row.Inputs = inRows[i]
		}
		if i < len(outRows) {
			row.Outputs = outRows[i]
		}
		plan.Rows = append(plan.Rows, row)
	}
	plan.TotalRows = len(plan.Rows)
	return plan
}

// planChoices lays out a choice-bearing behavior. Each choice is
// analyzed against the narrower choice slot budget; choices are
// separated by one slot each for the OR marker, with no trailing
// separator after the last. A set of choices that fits the budget
// renders on one row; otherwise each choice takes its own row.
func planChoices(b card.Behavior, cat Category, cfg Config) LayoutPlan {
	type analyzed struct {
		inputs  []IconDisplayInfo
		outputs []IconDisplayInfo
	}

	choices := make([]analyzed, len(b.Choices))
	width := 0
	for i, c := range b.Choices {
		choices[i] = analyzed{
			inputs:  AnalyzeGroup(c.Inputs, choiceSlotBudget, false),
			outputs: AnalyzeGroup(c.Outputs, choiceSlotBudget, false),
		}
		width += totalWidth(choices[i].inputs, choices[i].outputs, cat)
		if i > 0 {
			width++ // OR marker between choices
		}
	}

	if width <= cfg.IconColumns {
		row := Row{Separator: separatorFor(cat)}
		for _, c := range choices {
			row.Inputs = append(row.Inputs, c.inputs...)
			row.Outputs = append(row.Outputs, c.outputs...)
		}
		return LayoutPlan{Rows: []Row{row}, TotalRows: 1}
	}

	plan := LayoutPlan{MultiRow: true}
	for i, c := range choices {
		row := Row{Inputs: c.inputs, Outputs: c.outputs}
		if i > 0 {
			row.Separator = SeparatorOr
		} else {
			row.Separator = separatorFor(cat)
		}
		plan.Rows = append(plan.Rows, row)
	}
	plan.TotalRows = len(plan.Rows)
	return plan
}

// distribute is a first-fit, order-preserving row packer: it walks the
// display infos in order, accumulating icon counts, and starts a new row
// whenever the next item would exceed maxPerRow and the current row is
// non-empty. Items are never reordered and a single resource's repeated
// icons never split across rows.
func distribute(items []IconDisplayInfo, maxPerRow int) [][]IconDisplayInfo {
	if len(items) == 0 {
		return nil
	}

	var rows [][]IconDisplayInfo
	var row []IconDisplayInfo
	used := 0

	for _, item := range items {
		if used+item.IconCount > maxPerRow && len(row) > 0 {
			rows = append(rows, row)
			row = nil
			used = 0
		}
		row = append(row, item)
		used += item.IconCount
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}
