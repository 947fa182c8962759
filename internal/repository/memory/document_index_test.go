package memory

import (
	"context"
	"testing"

	"jarvis-assistant-be/internal/entity"
	"jarvis-assistant-be/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id string, vec []float32) *entity.DocumentRecord {
	return &entity.DocumentRecord{Id: id, Text: "text of " + id, Source: "test", Embedding: vec}
}

func TestSearchOrdersByScore(t *testing.T) {
	index := NewDocumentIndex(2)
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, []*entity.DocumentRecord{
		record("far", []float32{0, 1}),
		record("near", []float32{1, 0}),
		record("mid", []float32{1, 1}),
	}))

	matches, err := index.Search(ctx, []float32{1, 0}, 3)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, "near", matches[0].Id)
	assert.Equal(t, "mid", matches[1].Id)
	assert.Equal(t, "far", matches[2].Id)
	assert.GreaterOrEqual(t, matches[0].Score, matches[1].Score)
	assert.GreaterOrEqual(t, matches[1].Score, matches[2].Score)
}

func TestSearchEmptyIndexReturnsEmpty(t *testing.T) {
	index := NewDocumentIndex(2)

	matches, err := index.Search(context.Background(), []float32{1, 0}, 10)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearchFewerRecordsThanTopK(t *testing.T) {
	index := NewDocumentIndex(2)
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, []*entity.DocumentRecord{record("only", []float32{1, 0})}))

	matches, err := index.Search(ctx, []float32{1, 0}, 5)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestUpsertReplacesById(t *testing.T) {
	index := NewDocumentIndex(2)
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, []*entity.DocumentRecord{record("d1", []float32{1, 0})}))
	updated := record("d1", []float32{0, 1})
	updated.Text = "updated text"
	require.NoError(t, index.Upsert(ctx, []*entity.DocumentRecord{updated}))

	matches, err := index.Search(ctx, []float32{0, 1}, 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "d1", matches[0].Id)
	assert.Equal(t, "updated text", matches[0].Text)
}

func TestUpsertRejectsDimensionMismatch(t *testing.T) {
	index := NewDocumentIndex(2)
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, []*entity.DocumentRecord{record("keep", []float32{1, 0})}))

	err := index.Upsert(ctx, []*entity.DocumentRecord{
		record("keep", []float32{0, 1}),
		record("bad", []float32{1, 2, 3}),
	})
	assert.ErrorIs(t, err, apperrors.ErrDimensionMismatch)

	// The failed batch wrote nothing: the existing record is untouched.
	matches, err := index.Search(ctx, []float32{1, 0}, 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-9)
}

func TestSearchRejectsDimensionMismatch(t *testing.T) {
	index := NewDocumentIndex(2)

	_, err := index.Search(context.Background(), []float32{1, 2, 3}, 5)
	assert.ErrorIs(t, err, apperrors.ErrDimensionMismatch)
}

func TestDeleteAll(t *testing.T) {
	index := NewDocumentIndex(2)
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, []*entity.DocumentRecord{record("d1", []float32{1, 0})}))
	require.NoError(t, index.DeleteAll(ctx))

	matches, err := index.Search(ctx, []float32{1, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
