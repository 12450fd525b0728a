package migrationsrepo

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrazmi/pollschema/sdk/logger"
)

type fakeStorer struct {
	rows []Migration
	err  error
}

func (f fakeStorer) List(ctx context.Context) ([]Migration, error) {
	return f.rows, f.err
}

func newRepo(s Storer) *Repository {
	return NewRepository(logger.NewDefault(logger.WithOutput(io.Discard)), s)
}

func TestRepository_Status(t *testing.T) {
	at := gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now())
	repo := newRepo(fakeStorer{rows: []Migration{
		{Version: "002_votes.sql", Checksum: "bbb", AppliedAt: at},
		{Version: "001_init.sql", Checksum: "aaa", AppliedAt: at},
		{Version: "000_legacy.sql", Checksum: "zzz", AppliedAt: at},
	}})

	statuses, err := repo.Status(context.Background(), []File{
		{Version: "001_init.sql", Checksum: "aaa"},
		{Version: "002_votes.sql", Checksum: "changed"},
		{Version: "003_news.sql", Checksum: "ccc"},
	})
	require.NoError(t, err)
	require.Len(t, statuses, 4)

	assert.Equal(t, "000_legacy.sql", statuses[0].Version)
	assert.True(t, statuses[0].Missing)

	assert.True(t, statuses[1].Applied)
	assert.False(t, statuses[1].Modified)
	require.NotNil(t, statuses[1].AppliedAt)
	assert.True(t, at.Equal(*statuses[1].AppliedAt))

	assert.True(t, statuses[2].Modified)

	assert.Equal(t, Status{Version: "003_news.sql"}, statuses[3])
	assert.Equal(t, 1, Pending(statuses))
}

func TestRepository_EmptyLedger(t *testing.T) {
	statuses, err := newRepo(fakeStorer{}).Status(context.Background(), []File{{Version: "001_init.sql"}})
	require.NoError(t, err)
	assert.Equal(t, []Status{{Version: "001_init.sql"}}, statuses)
	assert.Equal(t, 1, Pending(statuses))
}

func TestRepository_StoreError(t *testing.T) {
	boom := errors.New("connection reset")
	_, err := newRepo(fakeStorer{err: boom}).Status(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
}
