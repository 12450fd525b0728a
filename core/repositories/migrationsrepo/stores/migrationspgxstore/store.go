// Package migrationspgxstore reads the migration ledger with pgx.
package migrationspgxstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jrazmi/pollschema/core/repositories/migrationsrepo"
	"github.com/jrazmi/pollschema/infrastructure/postgresdb"
	"github.com/jrazmi/pollschema/sdk/logger"
)

// Store provides database access for the migration ledger.
type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// NewStore creates a new migrations store
func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

const listQuery = `SELECT version, checksum, applied_at FROM schema_migrations ORDER BY version`

// List returns every applied migration. A missing ledger table yields an
// empty list.
func (s *Store) List(ctx context.Context) ([]migrationsrepo.Migration, error) {
	rows, err := s.pool.Query(ctx, listQuery)
	if err != nil {
		return s.handle(ctx, err)
	}

	migrations, err := pgx.CollectRows(rows, pgx.RowToStructByName[migrationsrepo.Migration])
	if err != nil {
		return s.handle(ctx, err)
	}
	return migrations, nil
}

func (s *Store) handle(ctx context.Context, err error) ([]migrationsrepo.Migration, error) {
	err = postgresdb.HandlePgError(err)
	if errors.Is(err, postgresdb.ErrUndefinedTable) {
		s.log.DebugContext(ctx, "migration ledger not created yet")
		return []migrationsrepo.Migration{}, nil
	}
	return nil, err
}
