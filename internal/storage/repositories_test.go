package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *BatchRepository {
	t.Helper()
	db, err := Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewBatchRepository(db)
}

func TestBatchRepository_InsertAndGet(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	rec := BatchRecord{
		ID:             uuid.New(),
		Pipeline:       "catalog",
		Source:         "cli",
		LineCount:      3,
		RowCount:       4,
		MatchedCount:   2,
		DefaultedCount: 1,
		MeanConfidence: 0.72,
		Notes:          "1 line(s) had quantity clamped to 500",
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.Insert(ctx, rec))

	got, err := repo.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "catalog", got.Pipeline)
	assert.Equal(t, 4, got.RowCount)
	assert.InDelta(t, 0.72, got.MeanConfidence, 1e-9)
	assert.Equal(t, rec.Notes, got.Notes)
}

func TestBatchRepository_GetMissing(t *testing.T) {
	repo := openTestDB(t)

	got, err := repo.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBatchRepository_ListOrdersByRecency(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	older := BatchRecord{ID: uuid.New(), Pipeline: "catalog", CreatedAt: time.Now().UTC().Add(-time.Hour)}
	newer := BatchRecord{ID: uuid.New(), Pipeline: "lookup", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Insert(ctx, older))
	require.NoError(t, repo.Insert(ctx, newer))

	recs, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, newer.ID, recs[0].ID)
	assert.Equal(t, older.ID, recs[1].ID)
}

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "dsn")
	assert.Error(t, err)
}
