package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jrazmi/pollschema/schema/reflector"
)

// ReflectSchema reflects the current database schema and writes JSON and
// SQL snapshots of it.
func ReflectSchema(ctx context.Context, log *slog.Logger, args []string, connect Connect) error {
	fs := flag.NewFlagSet("reflect-schema", flag.ContinueOnError)
	schema := fs.String("schema", "public", "schema to reflect")
	outputDir := fs.String("output", "schema/reflector/output", "output directory for generated files")

	if err := fs.Parse(args); err != nil {
		return parseError(err)
	}

	reflected, err := reflectLive(ctx, log, connect, *schema)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	jsonPath := filepath.Join(*outputDir, *schema+".json")
	if err := reflector.WriteJSON(reflected, jsonPath); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	log.InfoContext(ctx, "generated JSON", "path", jsonPath)

	sqlPath := filepath.Join(*outputDir, *schema+".sql")
	if err := reflector.WriteSQL(reflected, sqlPath); err != nil {
		return fmt.Errorf("write SQL: %w", err)
	}
	log.InfoContext(ctx, "generated SQL", "path", sqlPath)

	return nil
}

func reflectLive(ctx context.Context, log *slog.Logger, connect Connect, schema string) (*reflector.ReflectedSchema, error) {
	pool, err := connect()
	if err != nil {
		return nil, err
	}

	store := reflector.NewPostgresStore(pool)
	log.InfoContext(ctx, "reflecting schema", "database", store.GetDatabaseName(), "schema", schema)

	reflected, err := reflector.NewReflector(store, log).Reflect(ctx, schema)
	if err != nil {
		return nil, fmt.Errorf("reflect schema: %w", err)
	}

	log.InfoContext(ctx, "discovered tables", "count", len(reflected.Tables))
	return reflected, nil
}

func parseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return ErrHelp
	}
	return fmt.Errorf("parse flags: %w", err)
}
