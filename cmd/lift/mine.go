package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/halcyonforge/lift/internal/cli"
	"github.com/halcyonforge/lift/internal/miner"
	"github.com/halcyonforge/lift/internal/model"
	"github.com/halcyonforge/lift/internal/rules"
	"github.com/halcyonforge/lift/internal/store"
)

func mineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Mine association rules from imported baskets",
		Long: `Run Apriori frequent itemset mining over the imported baskets,
generate association rules, filter redundant ones, and save the run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			minSupport := viper.GetFloat64("mining.min_support")
			minConfidence := viper.GetFloat64("mining.min_confidence")
			minLen := viper.GetInt("mining.min_len")
			maxLen := viper.GetInt("mining.max_len")
			workers := viper.GetInt("mining.workers")

			db, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			baskets, err := db.GetBaskets(ctx)
			if err != nil {
				return fmt.Errorf("failed to load baskets: %w", err)
			}
			if len(baskets) == 0 {
				fmt.Println(cli.WarningStyle.Render("No baskets found. Use 'lift import' first."))
				return nil
			}

			st, err := store.New(baskets)
			if err != nil {
				return err
			}

			bar := newLevelBar(maxLen)
			cfg := miner.Config{
				MinSupport: minSupport,
				MinLen:     minLen,
				MaxLen:     maxLen,
				Workers:    workers,
				OnLevel: func(level, candidates, frequent int) {
					_ = bar.Add(1)
					slog.Debug("level complete",
						"level", level,
						"candidates", candidates,
						"frequent", frequent)
				},
			}

			started := time.Now()
			itemsets, err := miner.Mine(ctx, st, cfg)
			if err != nil {
				return fmt.Errorf("mining failed: %w", err)
			}
			_ = bar.Finish()

			ruleSet, err := rules.Generate(ctx, itemsets, st, minConfidence)
			if err != nil {
				return fmt.Errorf("rule generation failed: %w", err)
			}
			nonRedundant, redundant := rules.FilterRedundant(ruleSet)
			redundantCount := redundant.Len()
			if !viper.GetBool("mining.keep_redundant") {
				redundant = model.RuleSet{}
			}

			run := &model.MiningRun{
				MinSupport:    minSupport,
				MinConfidence: minConfidence,
				MinLen:        minLen,
				MaxLen:        maxLen,
				Transactions:  st.Len(),
				ItemsetCount:  len(itemsets),
				Duration:      time.Since(started),
			}

			runID, err := db.SaveRun(ctx, run, nonRedundant, redundant)
			if err != nil {
				return fmt.Errorf("failed to save mining run: %w", err)
			}

			slog.Info("mining run complete",
				"run_id", runID,
				"transactions", st.Len(),
				"itemsets", len(itemsets),
				"rules", nonRedundant.Len(),
				"redundant", redundantCount,
				"duration", run.Duration)

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"✓ Run %d: %d frequent itemsets, %d rules (%d redundant filtered)",
				runID, len(itemsets), nonRedundant.Len(), redundantCount)))
			if nonRedundant.Empty() {
				fmt.Println(cli.InfoStyle.Render("No rules met the thresholds. Try lowering --min-support or --min-confidence."))
			}
			return nil
		},
	}

	cmd.Flags().Float64("min-support", 0.01, "minimum support fraction, in (0,1]")
	cmd.Flags().Float64("min-confidence", 0.5, "minimum rule confidence, in (0,1]")
	cmd.Flags().Int("min-len", miner.DefaultMinLen, "minimum itemset size to report")
	cmd.Flags().Int("max-len", miner.DefaultMaxLen, "maximum itemset size to mine")
	cmd.Flags().Int("workers", 0, "support counting workers (0 = all CPUs)")
	cmd.Flags().Bool("keep-redundant", true, "persist the redundant partition alongside the run")

	_ = viper.BindPFlag("mining.min_support", cmd.Flags().Lookup("min-support"))
	_ = viper.BindPFlag("mining.min_confidence", cmd.Flags().Lookup("min-confidence"))
	_ = viper.BindPFlag("mining.min_len", cmd.Flags().Lookup("min-len"))
	_ = viper.BindPFlag("mining.max_len", cmd.Flags().Lookup("max-len"))
	_ = viper.BindPFlag("mining.workers", cmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("mining.keep_redundant", cmd.Flags().Lookup("keep-redundant"))

	return cmd
}

// newLevelBar builds the progress bar advanced once per mining level.
func newLevelBar(maxLen int) *progressbar.ProgressBar {
	return progressbar.NewOptions(maxLen,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Mining itemset levels...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
