// Package browser is the interactive card browser: a filterable card
// list on the left, the selected card rendered on the right.
package browser

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/card"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/render"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/tui/cardview"
)

const listWidth = 32

type cardItem struct {
	card card.Card
	rows int
}

func (i cardItem) Title() string { return i.card.Name }
func (i cardItem) Description() string {
	return fmt.Sprintf("%s • %d MC • %d rows", i.card.Type, i.card.Cost, i.rows)
}
func (i cardItem) FilterValue() string { return i.card.Name + " " + i.card.ID }

type keyMap struct {
	Compact key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Compact: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "toggle compact"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the browser's bubbletea model.
type Model struct {
	list     list.Model
	viewport viewport.Model
	renderer *cardview.Renderer
	layout   render.Config
	compact  bool
	width    int
	height   int
	ready    bool
}

// New builds a browser over the given cards.
func New(cards []card.Card, r *cardview.Renderer, layout render.Config) Model {
	items := make([]list.Item, len(cards))
	for i, c := range cards {
		res := render.Run(c.Behaviors, layout)
		items[i] = cardItem{card: c, rows: res.CardPlan.TotalRows}
	}

	l := list.New(items, list.NewDefaultDelegate(), listWidth, 0)
	l.Title = "Cards"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Compact}
	}

	return Model{
		list:     l,
		renderer: r,
		layout:   layout,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(listWidth, msg.Height-2)
		m.viewport = viewport.New(msg.Width-listWidth-2, msg.Height-2)
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		// While the list filter is typing, every key belongs to it.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Compact):
			m.compact = !m.compact
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.list.Index()
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	if m.list.Index() != before {
		m.refresh()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// refresh redraws the selected card into the viewport.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	item, ok := m.list.SelectedItem().(cardItem)
	if !ok {
		m.viewport.SetContent("No card selected.")
		return
	}

	c := item.card
	if m.compact {
		markCompact(&c)
	}
	m.viewport.SetContent(m.renderer.RenderCard(c, m.layout))
	m.viewport.GotoTop()
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	left := lipgloss.NewStyle().Width(listWidth).Render(m.list.View())
	right := lipgloss.NewStyle().PaddingLeft(2).Render(m.viewport.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := fmt.Sprintf(" %s  %s", keys.Compact.Help().Key+" "+keys.Compact.Help().Desc, keys.Quit.Help().Key+" "+keys.Quit.Help().Desc)
	if m.compact {
		status += "  [compact]"
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}

// markCompact flags every resource amount on a copy of the card so the
// layout pipeline collapses icon groups.
func markCompact(c *card.Card) {
	behaviors := make([]card.Behavior, len(c.Behaviors))
	copy(behaviors, c.Behaviors)
	c.Behaviors = behaviors
	for bi := range c.Behaviors {
		b := &c.Behaviors[bi]
		b.Inputs = compactAmounts(b.Inputs)
		b.Outputs = compactAmounts(b.Outputs)
		choices := make([]card.Choice, len(b.Choices))
		copy(choices, b.Choices)
		for ci := range choices {
			choices[ci].Inputs = compactAmounts(choices[ci].Inputs)
			choices[ci].Outputs = compactAmounts(choices[ci].Outputs)
		}
		b.Choices = choices
	}
}

func compactAmounts(in []card.ResourceAmount) []card.ResourceAmount {
	out := make([]card.ResourceAmount, len(in))
	copy(out, in)
	for i := range out {
		out[i].ForceCompact = true
	}
	return out
}
