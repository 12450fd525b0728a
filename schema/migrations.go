// Package schema holds the embedded Postgres migrations for the data model.
package schema

import "embed"

// MigrationsDir is the directory of MigrationsFS holding the .sql files.
const MigrationsDir = "pgmigrations"

// MigrationsFS contains all SQL migration files from pgmigrations directory.
//
//go:embed pgmigrations/*.sql
var MigrationsFS embed.FS
