package commands

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jrazmi/pollschema/core/schemas"
	"github.com/jrazmi/pollschema/sdk/validation"
)

// ErrInvalid is returned when the payload fails validation.
var ErrInvalid = errors.New("payload is invalid")

// Validate checks a JSON payload against one shape of a model and prints
// the decoded value or the issues found. A file of "-" reads stdin.
func Validate(ctx context.Context, log *slog.Logger, args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(out)
	model := fs.String("model", "", "model name, e.g. Poll")
	shape := fs.String("shape", string(schemas.ShapeRecord), "shape name, e.g. createArgs")
	file := fs.String("file", "-", "payload file")

	if err := fs.Parse(args); err != nil {
		return parseError(err)
	}
	if *model == "" {
		return errors.New("validate: -model is required")
	}

	s, ok := schemas.ParseShape(*shape)
	if !ok {
		return fmt.Errorf("validate: %q: %w", *shape, schemas.ErrShapeNotFound)
	}

	data, err := readPayload(*file, in)
	if err != nil {
		return err
	}

	v, err := schemas.Default().Parse(*model, s, data)
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if issues, ok := validation.AsIssues(err); ok {
		log.InfoContext(ctx, "validate", "model", *model, "shape", s, "issues", len(issues))
		if err := enc.Encode(map[string]any{"valid": false, "issues": issues}); err != nil {
			return fmt.Errorf("write issues: %w", err)
		}
		return ErrInvalid
	}
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	if err := enc.Encode(map[string]any{"valid": true, "value": v}); err != nil {
		return fmt.Errorf("write value: %w", err)
	}
	return nil
}

func readPayload(file string, in io.Reader) ([]byte, error) {
	if file == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return data, nil
}
