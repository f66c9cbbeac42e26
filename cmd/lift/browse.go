package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halcyonforge/lift/internal/cli"
	"github.com/halcyonforge/lift/internal/tui"
)

func browseCmd() *cobra.Command {
	var runID int64

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse rules interactively",
		Long:  `Open an interactive table over the rules of a mining run.`,
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

			nonRedundant, err := db.GetRules(ctx, run.ID, false)
			if err != nil {
				return fmt.Errorf("failed to load rules: %w", err)
			}
			redundant, err := db.GetRedundantRules(ctx, run.ID)
			if err != nil {
				return fmt.Errorf("failed to load redundant rules: %w", err)
			}

			if nonRedundant.Empty() && redundant.Empty() {
				fmt.Println(cli.InfoStyle.Render("Run has no rules to browse."))
				return nil
			}

			return tui.Run(nonRedundant, redundant)
		},
	}

	cmd.Flags().Int64Var(&runID, "run", 0, "mining run ID (default: latest)")

	return cmd
}
