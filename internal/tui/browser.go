// Package tui implements the interactive rule browser.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/halcyonforge/lift/internal/model"
	"github.com/halcyonforge/lift/internal/rules"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Browser is the bubbletea model for the rule browser. It holds both
// rule partitions and re-renders the table on sort or visibility
// changes.
type Browser struct {
	table         table.Model
	nonRedundant  model.RuleSet
	redundant     model.RuleSet
	sortKey       rules.SortKey
	showRedundant bool
	err           error
}

// NewBrowser builds a browser over the two rule partitions, initially
// sorted by lift.
func NewBrowser(nonRedundant, redundant model.RuleSet) *Browser {
	columns := []table.Column{
		{Title: "Antecedent", Width: 32},
		{Title: "Consequent", Width: 24},
		{Title: "Support", Width: 9},
		{Title: "Confidence", Width: 11},
		{Title: "Lift", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)

	b := &Browser{
		table:        t,
		nonRedundant: nonRedundant,
		redundant:    redundant,
		sortKey:      rules.SortByLift,
	}
	b.refresh()
	return b
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "s":
			b.sortKey = rules.SortBySupport
			b.refresh()
		case "c":
			b.sortKey = rules.SortByConfidence
			b.refresh()
		case "l":
			b.sortKey = rules.SortByLift
			b.refresh()
		case "r":
			b.showRedundant = !b.showRedundant
			b.refresh()
		}
	case tea.WindowSizeMsg:
		height := msg.Height - 6
		if height < 5 {
			height = 5
		}
		b.table.SetHeight(height)
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

// View implements tea.Model.
func (b *Browser) View() string {
	if b.err != nil {
		return statusStyle.Render(fmt.Sprintf("error: %v", b.err)) + "\n"
	}

	status := fmt.Sprintf("sorted by %s", b.sortKey)
	if b.showRedundant {
		status += " · showing redundant rules"
	}
	status += " · s/c/l sort · r redundant · q quit"

	return baseStyle.Render(b.table.View()) + "\n" +
		statusStyle.Render(status) + "\n"
}

// refresh rebuilds the table rows for the current sort key and
// visibility.
func (b *Browser) refresh() {
	visible := b.nonRedundant
	if b.showRedundant {
		merged := make([]model.Rule, 0, b.nonRedundant.Len()+b.redundant.Len())
		merged = append(merged, b.nonRedundant.Rules...)
		merged = append(merged, b.redundant.Rules...)
		visible = model.RuleSet{Rules: merged}
	}

	sorted, err := rules.Sort(visible, b.sortKey)
	if err != nil {
		b.err = err
		return
	}

	rows := make([]table.Row, 0, sorted.Len())
	for _, r := range sorted.Rules {
		rows = append(rows, table.Row{
			joinItems(r.Antecedent),
			joinItems(r.Consequent),
			fmt.Sprintf("%.3f", r.Support),
			fmt.Sprintf("%.3f", r.Confidence),
			fmt.Sprintf("%.3f", r.Lift),
		})
	}
	b.table.SetRows(rows)
	b.table.SetCursor(0)
}

func joinItems(items []model.Item) string {
	out := ""
	for i, it := range items {
		if i > 0 {
			out += ", "
		}
		out += string(it)
	}
	return out
}

// Run starts the browser and blocks until the user quits.
func Run(nonRedundant, redundant model.RuleSet) error {
	p := tea.NewProgram(NewBrowser(nonRedundant, redundant), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("rule browser failed: %w", err)
	}
	return nil
}
