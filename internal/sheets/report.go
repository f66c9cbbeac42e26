package sheets

import (
	"fmt"

	"github.com/halcyonforge/lift/internal/model"
)

// headerRowIndex is the zero-based row of the rule table header within
// the generated report.
const headerRowIndex = 4

// buildReport renders a mining run and its rules as spreadsheet rows: a
// summary block, a blank row, then the rule table.
func buildReport(run *model.MiningRun, rules model.RuleSet) [][]any {
	values := [][]any{
		{"Mining run", run.ID, run.CreatedAt.Format("2006-01-02 15:04:05")},
		{"Min support", run.MinSupport, "Min confidence", run.MinConfidence},
		{"Transactions", run.Transactions, "Frequent itemsets", run.ItemsetCount},
		{},
		{"Antecedent", "Consequent", "Support", "Confidence", "Lift"},
	}

	for _, r := range rules.Rules {
		values = append(values, []any{
			joinItems(r.Antecedent),
			joinItems(r.Consequent),
			r.Support,
			r.Confidence,
			r.Lift,
		})
	}
	return values
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

// RuleRange describes the A1 range occupied by the rule table, used by
// callers that append charts or extra formatting.
func RuleRange(rules model.RuleSet) string {
	return fmt.Sprintf("A%d:E%d", headerRowIndex+1, headerRowIndex+1+rules.Len())
}
