package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/jrazmi/pollschema/core/schemas"
	"github.com/jrazmi/pollschema/schema/drift"
	"github.com/jrazmi/pollschema/schema/reflector"
)

// ErrDrift is returned when the database does not match the registry.
var ErrDrift = errors.New("schema drift detected")

// Drift compares the registry with a live schema, or with a snapshot
// written by reflect-schema when -json is given.
func Drift(ctx context.Context, log *slog.Logger, args []string, connect Connect, out io.Writer) error {
	fs := flag.NewFlagSet("drift", flag.ContinueOnError)
	fs.SetOutput(out)
	schema := fs.String("schema", "public", "schema to compare")
	snapshot := fs.String("json", "", "compare a reflected JSON snapshot instead of the live database")

	if err := fs.Parse(args); err != nil {
		return parseError(err)
	}

	var (
		reflected *reflector.ReflectedSchema
		err       error
	)
	if *snapshot != "" {
		reflected, err = reflector.ReadJSON(*snapshot)
	} else {
		reflected, err = reflectLive(ctx, log, connect, *schema)
	}
	if err != nil {
		return err
	}

	report := drift.Compare(schemas.Default(), reflected)
	if err := report.Write(out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if !report.OK() {
		log.WarnContext(ctx, "drift", "schema", report.Schema, "findings", len(report.Findings))
		return ErrDrift
	}
	return nil
}
