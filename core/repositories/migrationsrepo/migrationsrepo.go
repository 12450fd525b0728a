// Package migrationsrepo reads the schema_migrations ledger and compares it
// with the migrations shipped in the binary.
package migrationsrepo

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/jrazmi/pollschema/sdk/logger"
)

// ========================================
// MODEL
// ========================================

// Migration is one row of schema_migrations.
type Migration struct {
	Version   string    `json:"version" db:"version"`
	Checksum  string    `json:"checksum" db:"checksum"`
	AppliedAt time.Time `json:"applied_at" db:"applied_at"`
}

// File is a migration known to the binary.
type File struct {
	Version  string
	Checksum string
}

// Status describes one migration as seen from both sides. Missing is set
// when the ledger has a version the binary does not ship.
type Status struct {
	Version   string     `json:"version"`
	Applied   bool       `json:"applied"`
	AppliedAt *time.Time `json:"applied_at,omitempty"`
	Modified  bool       `json:"modified,omitempty"`
	Missing   bool       `json:"missing,omitempty"`
}

// ========================================
// STORER INTERFACE
// ========================================

// Storer reads the ledger. A database that was never migrated has an empty
// ledger, not an error.
type Storer interface {
	List(ctx context.Context) ([]Migration, error)
}

// ========================================
// REPOSITORY
// ========================================

// Repository provides access to the migration ledger.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new migrations repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// List returns the applied migrations in version order.
func (r *Repository) List(ctx context.Context) ([]Migration, error) {
	applied, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	slices.SortFunc(applied, func(a, b Migration) int { return cmp.Compare(a.Version, b.Version) })
	return applied, nil
}

// Status joins files with the ledger, ordered by version.
func (r *Repository) Status(ctx context.Context, files []File) ([]Status, error) {
	applied, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	byVersion := make(map[string]Migration, len(applied))
	for _, m := range applied {
		byVersion[m.Version] = m
	}

	out := make([]Status, 0, len(files)+len(applied))
	for _, f := range files {
		s := Status{Version: f.Version}
		if m, ok := byVersion[f.Version]; ok {
			s.Applied = true
			s.AppliedAt = &m.AppliedAt
			s.Modified = m.Checksum != f.Checksum
			delete(byVersion, f.Version)
		}
		out = append(out, s)
	}
	for _, m := range byVersion {
		out = append(out, Status{Version: m.Version, Applied: true, AppliedAt: &m.AppliedAt, Missing: true})
	}

	slices.SortFunc(out, func(a, b Status) int { return cmp.Compare(a.Version, b.Version) })

	r.log.DebugContext(ctx, "migration status", "files", len(files), "applied", len(applied))
	return out, nil
}

// Pending counts the statuses not yet applied.
func Pending(statuses []Status) int {
	n := 0
	for _, s := range statuses {
		if !s.Applied {
			n++
		}
	}
	return n
}
