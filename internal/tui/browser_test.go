package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonforge/lift/internal/model"
)

func testPartitions() (nonRedundant, redundant model.RuleSet) {
	nonRedundant = model.RuleSet{Rules: []model.Rule{
		{
			Antecedent: []model.Item{"milk"},
			Consequent: []model.Item{"bread"},
			Support:    0.5,
			Confidence: 0.6,
			Lift:       0.9,
		},
		{
			Antecedent: []model.Item{"butter"},
			Consequent: []model.Item{"bread"},
			Support:    0.25,
			Confidence: 1.0,
			Lift:       1.3,
		},
	}}
	redundant = model.RuleSet{Rules: []model.Rule{
		{
			Antecedent: []model.Item{"butter", "milk"},
			Consequent: []model.Item{"bread"},
			Support:    0.25,
			Confidence: 1.0,
			Lift:       1.3,
		},
	}}
	return nonRedundant, redundant
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewBrowser_SortedByLift(t *testing.T) {
	b := NewBrowser(testPartitions())

	rows := b.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "butter", rows[0][0])
	assert.Equal(t, "milk", rows[1][0])
}

func TestBrowser_ResortKeys(t *testing.T) {
	b := NewBrowser(testPartitions())

	updated, _ := b.Update(keyMsg('s'))
	b = updated.(*Browser)

	rows := b.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "milk", rows[0][0])
	assert.Equal(t, "butter", rows[1][0])
}

func TestBrowser_ToggleRedundant(t *testing.T) {
	b := NewBrowser(testPartitions())

	updated, _ := b.Update(keyMsg('r'))
	b = updated.(*Browser)
	assert.Len(t, b.table.Rows(), 3)

	updated, _ = b.Update(keyMsg('r'))
	b = updated.(*Browser)
	assert.Len(t, b.table.Rows(), 2)
}

func TestBrowser_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			b := NewBrowser(testPartitions())

			var msg tea.KeyMsg
			switch key {
			case "q":
				msg = keyMsg('q')
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			}

			_, cmd := b.Update(msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestBrowser_ViewShowsStatus(t *testing.T) {
	b := NewBrowser(testPartitions())

	view := b.View()
	assert.Contains(t, view, "sorted by lift")
	assert.Contains(t, view, "q quit")
}
