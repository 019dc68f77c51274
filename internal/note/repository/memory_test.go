package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/studydesk/go-services/internal/note"
)

func TestMemoryRepoCRUD(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()
	n := &note.Note{Title: "T", Content: "hello", Timestamp: "2025-01-01T10:00:00Z"}
	id, err := r.Create(ctx, n)
	require.NoError(t, err)
	require.Len(t, id, 24)
	require.Equal(t, id, n.ID)

	got, err := r.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, *n, *got)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, r.Update(ctx, id, "T2", "new"))
	got2, err := r.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "new", got2.Content)
	require.Equal(t, "T2", got2.Title)
	require.Equal(t, "2025-01-01T10:00:00Z", got2.Timestamp)

	require.NoError(t, r.Delete(ctx, id))
	_, err = r.Get(ctx, id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepoMissing(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()
	require.ErrorIs(t, r.Update(ctx, "missing", "t", "c"), ErrNotFound)
	require.ErrorIs(t, r.Delete(ctx, "missing"), ErrNotFound)
	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestMemoryRepoReturnsCopies(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()
	id, err := r.Create(ctx, &note.Note{Title: "T", Content: "C"})
	require.NoError(t, err)

	got, err := r.Get(ctx, id)
	require.NoError(t, err)
	got.Content = "mutated"

	again, err := r.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "C", again.Content)
}
