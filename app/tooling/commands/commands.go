// Package commands implements the subcommands of the tooling binary.
package commands

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

// Connect opens the database on first use. Commands that can work offline
// only call it when they need a live schema.
type Connect func() (*pgxpool.Pool, error)
