package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/internal/validators"
	"github.com/MKhiriev/go-cols/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var dryRun bool

var importCmd = &cobra.Command{
	Use:   "import <catalog.yaml>",
	Short: "Insert or update reference cols from a YAML catalog",
	Long: `Reads a catalog of cols and upserts it in a single transaction.
Cols with an id are updated in place; cols without one are created.
Every col is validated before anything is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the catalog without writing")
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	catalog, err := loadCatalog(cmd.Context(), f, validators.NewDomainValidator())
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "%d cols valid\n", len(catalog.Cols))
		return nil
	}

	db, log, err := connect(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	inserted, updated, err := store.NewColRepository(db, log).UpsertCols(cmd.Context(), catalog.Cols)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d cols created, %d updated\n", inserted, updated)
	return nil
}

// loadCatalog decodes a YAML catalog and validates it. Unknown keys are
// rejected.
func loadCatalog(ctx context.Context, r io.Reader, v validators.Validator) (models.ColCatalog, error) {
	var catalog models.ColCatalog

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return models.ColCatalog{}, validators.ErrEmptyCatalog
		}
		return models.ColCatalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	if err := v.Validate(ctx, catalog); err != nil {
		return models.ColCatalog{}, err
	}
	return catalog, nil
}
