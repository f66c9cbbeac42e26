package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/halcyonforge/lift/internal/cli"
	"github.com/halcyonforge/lift/internal/model"
	"github.com/halcyonforge/lift/internal/rules"
	"github.com/halcyonforge/lift/internal/service"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect mined association rules",
		Long:  `List and rank the rules of a mining run.`,
	}

	cmd.AddCommand(listRulesCmd())
	cmd.AddCommand(topRulesCmd())

	return cmd
}

func listRulesCmd() *cobra.Command {
	var (
		runID         int64
		lhsItems      []string
		rhsItems      []string
		showRedundant bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rules of a mining run",
		Long: `Display the rules of a mining run in mined order.

Use --lhs/--rhs to restrict which items may appear on each side of the
listed rules.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			run, err := resolveRun(ctx, db, runID)
			if err != nil {
				return err
			}

			var ruleSet model.RuleSet
			if showRedundant {
				ruleSet, err = db.GetRedundantRules(ctx, run.ID)
			} else {
				ruleSet, err = db.GetRules(ctx, run.ID, false)
			}
			if err != nil {
				return fmt.Errorf("failed to load rules: %w", err)
			}

			ruleSet = rules.RestrictAppearance(ruleSet, toItems(lhsItems), toItems(rhsItems))
			printRules(run, ruleSet)
			return nil
		},
	}

	cmd.Flags().Int64Var(&runID, "run", 0, "mining run ID (default: latest)")
	cmd.Flags().StringSliceVar(&lhsItems, "lhs", nil, "restrict antecedent items to this set")
	cmd.Flags().StringSliceVar(&rhsItems, "rhs", nil, "restrict consequent items to this set")
	cmd.Flags().BoolVar(&showRedundant, "redundant", false, "show the redundant partition instead")

	return cmd
}

func topRulesCmd() *cobra.Command {
	var (
		runID int64
		by    string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the highest-ranked rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			key, err := rules.ParseSortKey(by)
			if err != nil {
				return err
			}

			db, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			run, err := resolveRun(ctx, db, runID)
			if err != nil {
				return err
			}

			ruleSet, err := db.GetRules(ctx, run.ID, false)
			if err != nil {
				return fmt.Errorf("failed to load rules: %w", err)
			}

			ranked, err := rules.TopN(ruleSet, limit, key)
			if err != nil {
				return err
			}
			printRules(run, ranked)
			return nil
		},
	}

	cmd.Flags().Int64Var(&runID, "run", 0, "mining run ID (default: latest)")
	cmd.Flags().StringVar(&by, "by", "lift", "ranking metric (support, confidence, lift)")
	cmd.Flags().IntVar(&limit, "limit", 20, "number of rules to show")

	return cmd
}

// resolveRun loads the requested run, or the latest when id is zero.
func resolveRun(ctx context.Context, db service.Storage, id int64) (*model.MiningRun, error) {
	if id > 0 {
		return db.GetRun(ctx, id)
	}
	run, err := db.GetLatestRun(ctx)
	if err != nil {
		return nil, fmt.Errorf("no mining runs found; use 'lift mine' first: %w", err)
	}
	return run, nil
}

func printRules(run *model.MiningRun, ruleSet model.RuleSet) {
	if ruleSet.Empty() {
		fmt.Println(cli.InfoStyle.Render("No rules match."))
		return
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Run %d · %d transactions · %d rules",
		run.ID, run.Transactions, ruleSet.Len())))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Antecedent"),
		cli.HeaderStyle.Render("Consequent"),
		cli.HeaderStyle.Render("Support"),
		cli.HeaderStyle.Render("Confidence"),
		cli.HeaderStyle.Render("Lift"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 24),
		strings.Repeat("-", 18),
		strings.Repeat("-", 8),
		strings.Repeat("-", 10),
		strings.Repeat("-", 6))

	for _, r := range ruleSet.Rules {
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.3f\t%.3f\n",
			joinItems(r.Antecedent), joinItems(r.Consequent),
			r.Support, r.Confidence, r.Lift)
	}
}

func joinItems(items []model.Item) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = string(it)
	}
	return strings.Join(parts, ", ")
}

func toItems(raw []string) []model.Item {
	if len(raw) == 0 {
		return nil
	}
	out := make([]model.Item, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, model.Item(s))
		}
	}
	return out
}
