// Package cardview renders a card's layout pipeline output as styled
// terminal text. It consumes the classified behaviors and row plans
// produced by the render package and dispatches each behavior to a view
// keyed by its display category.
package cardview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/render"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/tui/icons"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/tui/theme"
)

// DefaultWidth is the card frame width in terminal cells.
const DefaultWidth = 34

// Affordability reports whether the player can pay a given resource
// amount. Inputs that fail the predicate render dimmed. The renderer
// never consults game state itself; callers inject whatever notion of
// affordability they have.
type Affordability func(card.ResourceAmount) bool

// Renderer draws cards with a fixed theme, icon set, and width.
type Renderer struct {
	Theme  theme.Theme
	Icons  icons.IconSet
	Width  int
	Afford Affordability
}

// New returns a renderer using the active theme and icon set. The
// affordability predicate defaults to always-true so cards render fully
// lit outside of a game context.
func New() *Renderer {
	return &Renderer{
		Theme:  theme.Current(),
		Icons:  icons.Current(),
		Width:  DefaultWidth,
		Afford: func(card.ResourceAmount) bool { return true },
	}
}

// WithWidth sets the card frame width.
func (r *Renderer) WithWidth(width int) *Renderer {
	if width > 0 {
		r.Width = width
	}
	return r
}

// WithAffordability sets the affordability predicate.
func (r *Renderer) WithAffordability(afford Affordability) *Renderer {
	if afford != nil {
		r.Afford = afford
	}
	return r
}

// RenderCard runs the layout pipeline on the card's behaviors and draws
// the result.
func (r *Renderer) RenderCard(c card.Card, cfg render.Config) string {
	return r.Render(c, render.Run(c.Behaviors, cfg))
}

// Render draws a card frame around an already-computed pipeline result:
// header with cost, name and tags, one view per behavior, the wrapped
// description, and a scroll hint when the behavior area overflowed its
// row budget.
func (r *Renderer) Render(c card.Card, res render.Result) string {
	contentWidth := r.Width - 4 // border and padding

	var sections []string
	sections = append(sections, r.header(c, contentWidth))

	for i, cb := range res.Behaviors {
		var plan render.LayoutPlan
		if i < len(res.Plans) {
			plan = res.Plans[i]
		}
		sections = append(sections, r.behaviorView(cb, plan, res.TileScale, contentWidth))
	}

	if res.CardPlan.NeedsOverflowHandling {
		hint := lipgloss.NewStyle().
			Foreground(r.Theme.Overlay).
			Render(r.Icons.ScrollDown + " more")
		sections = append(sections, hint)
	}

	if c.Description != "" {
		desc := lipgloss.NewStyle().
			Foreground(r.Theme.Subtext).
			Italic(true).
			Render(wordwrap.String(c.Description, contentWidth))
		sections = append(sections, desc)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.frameColor(c.Type)).
		Padding(0, 1).
		Width(r.Width - 2)

	return frame.Render(body)
}

// header renders the cost badge, the card name, and the tag row.
func (r *Renderer) header(c card.Card, width int) string {
	cost := lipgloss.NewStyle().
		Foreground(r.Theme.Credits).
		Bold(true).
		Render(fmt.Sprintf("%d%s", c.Cost, r.Icons.Credits))

	name := lipgloss.NewStyle().
		Foreground(r.Theme.Text).
		Bold(true).
		Render(c.Name)

	gap := width - lipgloss.Width(cost) - lipgloss.Width(name)
	if gap < 1 {
		gap = 1
	}
	top := cost + strings.Repeat(" ", gap) + name

	if len(c.Tags) == 0 {
		return top
	}

	tags := make([]string, len(c.Tags))
	for i, t := range c.Tags {
		tags[i] = string(t)
	}
	tagLine := lipgloss.NewStyle().
		Foreground(r.Theme.Overlay).
		Render(strings.Join(tags, " "))
	return lipgloss.JoinVertical(lipgloss.Left, top, tagLine)
}

// frameColor picks the card frame color from the printed frame type.
func (r *Renderer) frameColor(t card.CardType) lipgloss.Color {
	switch t {
	case card.CardTypeActive:
		return r.Theme.ActionBorder
	case card.CardTypeAutomated:
		return r.Theme.Success
	case card.CardTypeEvent:
		return r.Theme.AttackAccent
	case card.CardTypeCorporation:
		return r.Theme.Credits
	case card.CardTypePrelude:
		return r.Theme.Warning
	default:
		return r.Theme.Surface2
	}
}

// padCenter centers s in a field of the given display width.
func padCenter(s string, width int) string {
	w := runewidth.StringWidth(stripANSI(s))
	if w >= width {
		return s
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// stripANSI removes escape sequences so runewidth sees only cells.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
