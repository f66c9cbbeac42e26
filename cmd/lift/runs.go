package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/halcyonforge/lift/internal/cli"
)

func runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List mining runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			runs, err := db.ListRuns(ctx)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Println(cli.InfoStyle.Render("No mining runs found. Use 'lift mine' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Created"),
				cli.HeaderStyle.Render("Support"),
				cli.HeaderStyle.Render("Confidence"),
				cli.HeaderStyle.Render("Baskets"),
				cli.HeaderStyle.Render("Rules"),
				cli.HeaderStyle.Render("Redundant"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 19),
				strings.Repeat("-", 7),
				strings.Repeat("-", 10),
				strings.Repeat("-", 7),
				strings.Repeat("-", 5),
				strings.Repeat("-", 9))

			for _, run := range runs {
				fmt.Fprintf(w, "%d\t%s\t%.3f\t%.3f\t%d\t%d\t%d\n",
					run.ID,
					run.CreatedAt.Format("2006-01-02 15:04:05"),
					run.MinSupport,
					run.MinConfidence,
					run.Transactions,
					run.RuleCount,
					run.RedundantCount)
			}

			return nil
		},
	}

	cmd.AddCommand(deleteRunCmd())
	return cmd
}

func deleteRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a mining run and its rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var id int64
			if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
				return fmt.Errorf("invalid run ID %q: %w", args[0], err)
			}

			db, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if err := db.DeleteRun(ctx, id); err != nil {
				return fmt.Errorf("failed to delete run: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Deleted run %d", id)))
			return nil
		},
	}
}
