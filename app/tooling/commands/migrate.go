package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/jrazmi/pollschema/core/repositories/migrationsrepo"
	"github.com/jrazmi/pollschema/core/repositories/migrationsrepo/stores/migrationspgxstore"
	"github.com/jrazmi/pollschema/infrastructure/postgresdb"
	"github.com/jrazmi/pollschema/sdk/logger"
)

// Migrate applies the embedded migrations to the database, or with -status
// lists them against the schema_migrations ledger.
func Migrate(ctx context.Context, log *logger.Logger, args []string, connect Connect, out io.Writer) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(out)
	status := fs.Bool("status", false, "list applied and pending migrations without applying any")

	if err := fs.Parse(args); err != nil {
		return parseError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	pool, err := connect()
	if err != nil {
		return err
	}

	if *status {
		repo := migrationsrepo.NewRepository(log, migrationspgxstore.NewStore(log, pool))
		return MigrationStatus(ctx, repo, out)
	}

	log.InfoContext(ctx, "migration started", "step", "checking database status")
	if err := postgresdb.StatusCheck(ctx, pool); err != nil {
		return fmt.Errorf("database status check failed: %w", err)
	}

	if err := postgresdb.Migrate(ctx, pool, log.Logger); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	log.InfoContext(ctx, "migrations completed successfully")
	return nil
}

// MigrationStatus prints one line per migration.
func MigrationStatus(ctx context.Context, repo *migrationsrepo.Repository, out io.Writer) error {
	embedded, err := postgresdb.MigrationFiles()
	if err != nil {
		return fmt.Errorf("embedded migrations: %w", err)
	}

	files := make([]migrationsrepo.File, len(embedded))
	for i, f := range embedded {
		files[i] = migrationsrepo.File{Version: f.Version, Checksum: f.Checksum}
	}

	statuses, err := repo.Status(ctx, files)
	if err != nil {
		return err
	}

	for _, s := range statuses {
		state := "pending"
		switch {
		case s.Missing:
			state = "applied (no file)"
		case s.Modified:
			state = "applied (modified)"
		case s.Applied:
			state = "applied " + s.AppliedAt.Format(time.RFC3339)
		}
		if _, err := fmt.Fprintf(out, "%-32s %s\n", s.Version, state); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(out, "%d pending\n", migrationsrepo.Pending(statuses))
	return err
}
