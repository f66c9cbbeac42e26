package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/halcyonforge/lift/internal/cli"
	"github.com/halcyonforge/lift/internal/common"
	"github.com/halcyonforge/lift/internal/sheets"
)

func exportCmd() *cobra.Command {
	var (
		runID            int64
		includeRedundant bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a rule report to Google Sheets",
		Long: `Export the rules of a mining run to a Google Sheets spreadsheet.

Authentication uses either a service account
(LIFT_SHEETS_SERVICE_ACCOUNT_PATH) or OAuth2 credentials
(LIFT_SHEETS_CLIENT_ID, LIFT_SHEETS_CLIENT_SECRET,
LIFT_SHEETS_REFRESH_TOKEN).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			config := sheets.DefaultConfig()
			if err := config.LoadFromEnv(); err != nil {
				return common.NewUserError("Google Sheets export is not configured; see 'lift export --help'", err)
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

			ruleSet, err := db.GetRules(ctx, run.ID, includeRedundant)
			if err != nil {
				return fmt.Errorf("failed to load rules: %w", err)
			}

			writer, err := sheets.NewWriter(ctx, config, slog.Default())
			if err != nil {
				return fmt.Errorf("failed to create sheets writer: %w", err)
			}

			if err := writer.Write(ctx, run, ruleSet); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Exported %d rules from run %d", ruleSet.Len(), run.ID)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&runID, "run", 0, "mining run ID (default: latest)")
	cmd.Flags().BoolVar(&includeRedundant, "include-redundant", false, "also export the redundant partition")

	return cmd
}
