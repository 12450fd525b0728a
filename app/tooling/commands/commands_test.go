package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrazmi/pollschema/core/repositories/migrationsrepo"
	"github.com/jrazmi/pollschema/core/schemas"
	"github.com/jrazmi/pollschema/schema/reflector"
	"github.com/jrazmi/pollschema/sdk/logger"
)

var quiet = slog.New(slog.DiscardHandler)

func offline(t *testing.T) Connect {
	return func() (*pgxpool.Pool, error) {
		t.Fatal("command should not open the database")
		return nil, errors.New("offline")
	}
}

func TestValidate_Valid(t *testing.T) {
	categoryID := uuid.NewString()
	in := strings.NewReader(fmt.Sprintf(`{"data": {"question": "Tabs or spaces?", "categoryId": %q}}`, categoryID))

	var out bytes.Buffer
	err := Validate(context.Background(), quiet, []string{"-model", "Poll", "-shape", "createArgs"}, in, &out)
	require.NoError(t, err)

	var got struct {
		Valid bool `json:"valid"`
		Value struct {
			Data map[string]any `json:"data"`
		} `json:"value"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.True(t, got.Valid)
	assert.Equal(t, categoryID, got.Value.Data["categoryId"])
}

func TestValidate_IssuesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data": {"categoryId": "not-a-uuid"}}`), 0o600))

	var out bytes.Buffer
	err := Validate(context.Background(), quiet, []string{"-model", "poll", "-shape", "createArgs", "-file", path}, nil, &out)
	require.ErrorIs(t, err, ErrInvalid)

	var got struct {
		Valid  bool `json:"valid"`
		Issues []struct {
			Path string `json:"path"`
			Code string `json:"code"`
		} `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.False(t, got.Valid)

	paths := make([]string, len(got.Issues))
	for i, is := range got.Issues {
		paths[i] = is.Path
	}
	assert.Contains(t, paths, "data.question")
	assert.Contains(t, paths, "data.categoryId")
}

func TestValidate_Errors(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer

	err := Validate(ctx, quiet, []string{"-shape", "record"}, strings.NewReader(`{}`), &out)
	assert.ErrorContains(t, err, "-model is required")

	err = Validate(ctx, quiet, []string{"-model", "Poll", "-shape", "aggregate"}, strings.NewReader(`{}`), &out)
	assert.ErrorIs(t, err, schemas.ErrShapeNotFound)

	err = Validate(ctx, quiet, []string{"-model", "Comment"}, strings.NewReader(`{}`), &out)
	assert.ErrorIs(t, err, schemas.ErrModelNotFound)

	err = Validate(ctx, quiet, []string{"-model", "Poll", "-file", filepath.Join(t.TempDir(), "missing.json")}, nil, &out)
	assert.ErrorContains(t, err, "read payload")

	err = Validate(ctx, quiet, []string{"-h"}, nil, &out)
	assert.ErrorIs(t, err, ErrHelp)
}

func TestDrift_Snapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public.json")
	require.NoError(t, reflector.WriteJSON(&reflector.ReflectedSchema{
		Version:     reflector.FormatVersion,
		SchemaName:  "public",
		ReflectedAt: time.Now().UTC(),
		Tables:      map[string]*reflector.TableInfo{},
		Enums:       map[string][]string{"Role": {"USER", "ADMIN"}},
	}, path))

	var out bytes.Buffer
	err := Drift(context.Background(), quiet, []string{"-json", path}, offline(t), &out)
	require.ErrorIs(t, err, ErrDrift)

	assert.Contains(t, out.String(), "schema public has 14 finding(s)")
	assert.Contains(t, out.String(), "missing_table")
}

func TestDrift_MissingSnapshot(t *testing.T) {
	var out bytes.Buffer
	err := Drift(context.Background(), quiet, []string{"-json", filepath.Join(t.TempDir(), "nope.json")}, offline(t), &out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDrift)
}

func TestDrift_ConnectError(t *testing.T) {
	boom := errors.New("connection refused")
	connect := func() (*pgxpool.Pool, error) { return nil, boom }

	var out bytes.Buffer
	err := Drift(context.Background(), quiet, nil, connect, &out)
	assert.ErrorIs(t, err, boom)

	err = Migrate(context.Background(), logger.NewDefault(logger.WithOutput(io.Discard)), []string{"-status"}, connect, &out)
	assert.ErrorIs(t, err, boom)
}

type ledger []migrationsrepo.Migration

func (l ledger) List(ctx context.Context) ([]migrationsrepo.Migration, error) {
	return l, nil
}

func TestMigrationStatus(t *testing.T) {
	log := logger.NewDefault(logger.WithOutput(io.Discard))
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var out bytes.Buffer
	repo := migrationsrepo.NewRepository(log, ledger{{Version: "000_bootstrap.sql", Checksum: "x", AppliedAt: at}})
	require.NoError(t, MigrationStatus(context.Background(), repo, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "applied (no file)")
	assert.Contains(t, lines[1], "001_init.sql")
	assert.Contains(t, lines[1], "pending")
	assert.Equal(t, "1 pending", lines[2])
}
