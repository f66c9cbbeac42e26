package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonforge/lift/internal/model"
)

func TestBuildReport(t *testing.T) {
	run := &model.MiningRun{
		ID:            7,
		MinSupport:    0.5,
		MinConfidence: 0.5,
		Transactions:  4,
		ItemsetCount:  5,
		CreatedAt:     time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC),
	}
	rules := model.RuleSet{Rules: []model.Rule{
		{
			Antecedent: []model.Item{"butter", "milk"},
			Consequent: []model.Item{"bread"},
			Support:    0.25,
			Confidence: 1.0,
			Lift:       4.0 / 3.0,
		},
	}}

	values := buildReport(run, rules)

	// Summary block, blank spacer, header, one rule row.
	require.Len(t, values, headerRowIndex+1+rules.Len())
	assert.Equal(t, []any{"Mining run", int64(7), "2026-08-01 12:30:00"}, values[0])
	assert.Empty(t, values[headerRowIndex-1])
	assert.Equal(t, []any{"Antecedent", "Consequent", "Support", "Confidence", "Lift"}, values[headerRowIndex])
	assert.Equal(t, []any{"butter, milk", "bread", 0.25, 1.0, 4.0 / 3.0}, values[headerRowIndex+1])
}

func TestBuildReport_NoRules(t *testing.T) {
	run := &model.MiningRun{ID: 1, CreatedAt: time.Now()}

	values := buildReport(run, model.RuleSet{})

	assert.Len(t, values, headerRowIndex+1)
}

func TestRuleRange(t *testing.T) {
	rules := model.RuleSet{Rules: make([]model.Rule, 3)}

	assert.Equal(t, "A5:E8", RuleRange(rules))
	assert.Equal(t, "A5:E5", RuleRange(model.RuleSet{}))
}
