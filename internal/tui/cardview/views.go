package cardview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/render"
)

// viewFunc draws one behavior's rows inside its category frame.
type viewFunc func(r *Renderer, rows []string, width int) string

// viewTable keys each display category to its frame. Production gets
// the brown box background, manual actions a bordered action box,
// triggered effects and the payment modifiers a thin effect border, and
// borderless categories render their rows bare.
var viewTable = map[render.Category]viewFunc{
	render.CategoryImmediateProduction: (*Renderer).productionFrame,
	render.CategoryManualAction:        (*Renderer).actionFrame,
	render.CategoryTriggeredEffect:     (*Renderer).effectFrame,
	render.CategoryDiscount:            (*Renderer).effectFrame,
	render.CategoryPaymentSubstitute:   (*Renderer).effectFrame,
	render.CategoryValueModifier:       (*Renderer).effectFrame,
	render.CategoryDefense:             (*Renderer).effectFrame,
	render.CategoryImmediateEffect:     (*Renderer).bareFrame,
	render.CategoryAutoNoBackground:    (*Renderer).bareFrame,
}

// behaviorView renders one classified behavior: its planned rows
// dispatched through the category view table.
func (r *Renderer) behaviorView(cb render.ClassifiedBehavior, plan render.LayoutPlan, scale render.TileScaleInfo, width int) string {
	rows := make([]string, 0, len(plan.Rows))
	for _, row := range plan.Rows {
		rows = append(rows, r.renderRow(row, scale, width))
	}
	if len(rows) == 0 {
		rows = append(rows, r.renderRow(render.Row{}, scale, width))
	}

	view, ok := viewTable[cb.Category]
	if !ok {
		view = (*Renderer).bareFrame
	}
	return view(r, rows, width)
}

// productionFrame draws the brown production box.
func (r *Renderer) productionFrame(rows []string, width int) string {
	return lipgloss.NewStyle().
		Background(r.Theme.ProductionBox).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(rows, "\n"))
}

// actionFrame draws the bordered box manual actions live in.
func (r *Renderer) actionFrame(rows []string, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.Theme.ActionBorder).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(rows, "\n"))
}

// effectFrame draws the thin border used by ongoing effects, discounts,
// and the other payment modifiers.
func (r *Renderer) effectFrame(rows []string, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(r.Theme.EffectBorder).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(rows, "\n"))
}

// bareFrame renders rows with no box at all.
func (r *Renderer) bareFrame(rows []string, width int) string {
	return strings.Join(rows, "\n")
}

// renderRow draws one planned row: input chips, the separator glyph,
// and output chips, centered in the available width.
func (r *Renderer) renderRow(row render.Row, scale render.TileScaleInfo, width int) string {
	var parts []string

	for _, in := range row.Inputs {
		parts = append(parts, r.chip(in, scale, true))
	}
	if sep := r.separatorGlyph(row.Separator); sep != "" {
		parts = append(parts, sep)
	}
	for _, out := range row.Outputs {
		parts = append(parts, r.chip(out, scale, false))
	}

	return padCenter(strings.Join(parts, " "), width)
}

// separatorGlyph maps the plan separator to its printed glyph.
func (r *Renderer) separatorGlyph(sep render.Separator) string {
	style := lipgloss.NewStyle().Foreground(r.Theme.Subtext).Bold(true)
	switch sep {
	case render.SeparatorArrow:
		return style.Render(r.Icons.Arrow)
	case render.SeparatorColon:
		return style.Render(r.Icons.Colon)
	case render.SeparatorOr:
		return style.Render("OR")
	default:
		return ""
	}
}

// chip draws one resource amount. Individual mode repeats the glyph,
// number mode prefixes it with the signed amount. Unknown resource
// types fall back to a plain text chip so new vocabulary degrades
// instead of breaking the frame.
func (r *Renderer) chip(info render.IconDisplayInfo, scale render.TileScaleInfo, isInput bool) string {
	glyph, known := r.Icons.IconFor(string(info.Type))
	if !known {
		return r.textChip(info)
	}

	style := lipgloss.NewStyle().Foreground(r.Theme.ResourceColor(string(info.Type)))
	if info.Amount < 0 {
		style = style.Foreground(r.Theme.AttackAccent)
	}
	if isInput && !r.Afford(card.ResourceAmount{Type: info.Type, Amount: info.Amount}) {
		style = style.Faint(true)
	}
	if info.Type.IsPlacement() && scale.Scale > render.ScaleNormal {
		style = style.Bold(true)
		glyph = " " + glyph + " "
	}

	switch info.Mode {
	case render.DisplayIndividual:
		n := info.IconCount
		if n < 1 {
			n = 1
		}
		chips := make([]string, n)
		for i := range chips {
			chips[i] = glyph
		}
		return style.Render(strings.Join(chips, ""))
	default:
		return style.Render(fmt.Sprintf("%d%s", info.Amount, glyph))
	}
}

// textChip renders an unknown resource as its raw type name.
func (r *Renderer) textChip(info render.IconDisplayInfo) string {
	label := string(info.Type)
	if info.Amount != 1 {
		label = fmt.Sprintf("%d %s", info.Amount, label)
	}
	return lipgloss.NewStyle().Foreground(r.Theme.Text).Render(label)
}
