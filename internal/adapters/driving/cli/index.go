package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goodspot-labs/goodspot-cli/internal/adapters/driven/storage/file"
	"github.com/goodspot-labs/goodspot-cli/internal/adapters/driven/storage/sqlite"
	"github.com/goodspot-labs/goodspot-cli/internal/core/services"
	"github.com/goodspot-labs/goodspot-cli/internal/logger"
)

var (
	indexDataDir string
	indexDBDir   string
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Maintain the place listing index",
}

var indexBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Rebuild the listing index from full records",
	Long: `Validates every full record under places/ and regenerates the
places.json listing snapshot. Run this after editing any record.`,
	RunE: runIndexBuild,
}

var indexImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import full records into the SQLite backend",
	RunE:  runIndexImport,
}

func init() {
	indexBuildCmd.Flags().StringVar(&indexDataDir, "data", "", "data directory (default from config)")
	indexImportCmd.Flags().StringVar(&indexDataDir, "data", "", "data directory (default from config)")
	indexImportCmd.Flags().StringVar(&indexDBDir, "db", "", "database directory (default: data directory)")
	indexCmd.AddCommand(indexBuildCmd)
	indexCmd.AddCommand(indexImportCmd)
	rootCmd.AddCommand(indexCmd)
}

// resolveDataDir picks an explicit flag over the configured data
// directory, falling back to ~/.goodspot/data.
func resolveDataDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return "", err
		}
		if settings.Storage.DataDir != "" {
			return settings.Storage.DataDir, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".goodspot", "data"), nil
}

func runIndexBuild(cmd *cobra.Command, _ []string) error {
	if validationService == nil {
		return errors.New("validation service not configured")
	}

	dataDir, err := resolveDataDir(indexDataDir)
	if err != nil {
		return err
	}

	store, err := file.NewPlaceStore(dataDir)
	if err != nil {
		return err
	}

	places, err := store.ReadRecords()
	if err != nil {
		return fmt.Errorf("reading records: %w", err)
	}
	logger.Info("Read %d records from %s", len(places), dataDir)

	invalid := 0
	for i := range places {
		fieldErrs := validationService.ValidateRecord(&places[i])
		if len(fieldErrs) == 0 {
			continue
		}
		invalid++
		cmd.PrintErrf("%s:\n", places[i].Slug)
		for _, fe := range fieldErrs {
			cmd.PrintErrf("  %s: %s\n", fe.Field, fe.Message)
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d invalid record(s), index not written", invalid)
	}

	index, err := services.BuildIndex(places)
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}
	if err := store.WriteIndex(index); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}

	cmd.Printf("Indexed %d place(s).\n", len(index))
	return nil
}

func runIndexImport(cmd *cobra.Command, _ []string) error {
	dataDir, err := resolveDataDir(indexDataDir)
	if err != nil {
		return err
	}
	dbDir := indexDBDir
	if dbDir == "" {
		dbDir = dataDir
	}

	fileStore, err := file.NewPlaceStore(dataDir)
	if err != nil {
		return err
	}
	places, err := fileStore.ReadRecords()
	if err != nil {
		return fmt.Errorf("reading records: %w", err)
	}
	if len(places) == 0 {
		return errors.New("no records to import")
	}

	db, err := sqlite.NewStore(dbDir)
	if err != nil {
		return err
	}
	defer db.Close()

	for i := range places {
		if err := db.ImportPlace(cmd.Context(), &places[i]); err != nil {
			return err
		}
	}

	cmd.Printf("Imported %d place(s) into %s.\n", len(places), db.Path())
	return nil
}
