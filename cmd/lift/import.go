package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/halcyonforge/lift/internal/cli"
	"github.com/halcyonforge/lift/internal/common"
	"github.com/halcyonforge/lift/internal/ingest"
)

func importCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import basket data from a CSV file",
		Long: `Import basket transactions from a CSV file into the local database.

Each CSV record is one basket; each field is one item identifier.
Rows may have different numbers of fields.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			baskets, err := ingest.ReadBasketsFile(path)
			if err != nil {
				return fmt.Errorf("failed to read baskets: %w", err)
			}
			if len(baskets) == 0 {
				fmt.Println(cli.WarningStyle.Render("No usable baskets found in file."))
				return nil
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if source == "" {
				source = filepath.Base(path)
			}

			saved, err := store.SaveBaskets(ctx, source, baskets)
			if err != nil {
				return fmt.Errorf("failed to save baskets: %w", err)
			}

			common.LogInfo("import complete", common.Fields{"source": source, "baskets": saved})
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Imported %d baskets from %s", saved, path)))
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "source label for the imported baskets (default: file name)")

	return cmd
}
