// Command colsctl maintains the cols reference data: it applies the schema
// and loads the pass catalog from YAML.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-cols/internal/config"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/spf13/cobra"
)

var (
	dsnFlag    string
	configFlag string
	levelFlag  string
)

var rootCmd = &cobra.Command{
	Use:           "colsctl",
	Short:         "Administration of the cols tracker database",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dsnFlag, "dsn", "d", "", "PostgreSQL DSN (overrides STORAGE_DB_DATABASE_URI)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "JSON config file path")
	rootCmd.PersistentFlags().StringVar(&levelFlag, "log-level", "info", "Log level")

	rootCmd.AddCommand(migrateCmd, statusCmd, importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "colsctl:", err)
		os.Exit(1)
	}
}

// connect opens the server database described by the flags and the usual
// config sources.
func connect(ctx context.Context) (*store.DB, *logger.Logger, error) {
	var args []string
	if dsnFlag != "" {
		args = append(args, "-d", dsnFlag)
	}
	if configFlag != "" {
		args = append(args, "-c", configFlag)
	}

	cfg, err := config.GetStructuredConfigFromArgs(args)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Storage.DB.DSN == "" {
		return nil, nil, fmt.Errorf("load config: %w", config.ErrInvalidStorageConfigs)
	}

	log := logger.NewLogger("colsctl").WithLevel(levelFlag)
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, nil, err
	}
	return db, log, nil
}
