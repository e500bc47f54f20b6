package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Upsert raw vehicle rows from a snapshot file into the store",
	Long: "Reads a JSON array of raw vehicle rows, the same shape the snapshot source\n" +
		"accepts, and upserts each row into the hosted store keyed by its id.\n" +
		"Rows without an id are assigned one.",
	Example: `  dealer-catalog import data/vehicles.json
  dealer-catalog import --dry-run data/vehicles.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importDryRun bool

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "decode and count rows without writing")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	records, skipped, err := domain.DecodeRawRecords(data)
	if err != nil {
		return err
	}
	if skipped > 0 {
		log.Warn("rows skipped", "file", args[0], "skipped", skipped)
	}

	if importDryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "%d rows would be imported (%d skipped)\n", len(records), skipped)
		return nil
	}
	if !cfg.Database.Configured() {
		return errNoDatabase
	}

	ctx, cancel := exitOnSignal(cmd.Context())
	defer cancel()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	for i := range records {
		if err := a.store.UpsertRawVehicle(ctx, &records[i]); err != nil {
			return fmt.Errorf("importing row %d: %w", i, err)
		}
	}

	total, err := a.store.CountVehicles(ctx)
	if err != nil {
		return err
	}
	log.Info("import complete", "imported", len(records), "skipped", skipped, "stored", total)
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d rows, %d stored\n", len(records), total)
	return nil
}
