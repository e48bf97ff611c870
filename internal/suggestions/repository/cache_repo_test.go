package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcode-studio/studio-backend/internal/suggestions/domain"
)

func setupCache(t *testing.T) (*CacheRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCacheRepository(client), mr
}

func TestCacheRepository_PutGetDropSet(t *testing.T) {
	repo, _ := setupCache(t)
	ctx := context.Background()

	set := &domain.SuggestionSet{
		DocumentID:      "doc-1",
		DocumentVersion: 7,
		Suggestions:     []string{"one", "two"},
		Source:          domain.SourceLLM,
		Model:           "test-model",
		GeneratedAt:     time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, repo.PutSet(ctx, set))

	got, err := repo.GetSet(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, set.Suggestions, got.Suggestions)
	assert.Equal(t, int64(7), got.DocumentVersion)

	require.NoError(t, repo.DropSet(ctx, "doc-1"))

	_, err = repo.GetSet(ctx, "doc-1")
	assert.ErrorIs(t, err, ErrSetNotFound)
}

func TestCacheRepository_GetSet_Missing(t *testing.T) {
	repo, _ := setupCache(t)

	_, err := repo.GetSet(context.Background(), "doc-unknown")
	assert.ErrorIs(t, err, ErrSetNotFound)
}

func TestCacheRepository_InFlight(t *testing.T) {
	repo, mr := setupCache(t)
	ctx := context.Background()

	ok, err := repo.AcquireInFlight(ctx, domain.KindGenerate, "doc-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AcquireInFlight(ctx, domain.KindGenerate, "doc-1")
	require.NoError(t, err)
	assert.False(t, ok, "second acquire must be rejected while in flight")

	// Independent per kind and per document.
	ok, err = repo.AcquireInFlight(ctx, domain.KindApply, "doc-1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.AcquireInFlight(ctx, domain.KindGenerate, "doc-2")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.ReleaseInFlight(ctx, domain.KindGenerate, "doc-1"))
	ok, err = repo.AcquireInFlight(ctx, domain.KindGenerate, "doc-1")
	require.NoError(t, err)
	assert.True(t, ok, "marker must be reusable after release")

	// TTL lets a crashed request's marker expire.
	mr.FastForward(3 * time.Minute)
	ok, err = repo.AcquireInFlight(ctx, domain.KindApply, "doc-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCacheRepository_SetExpires(t *testing.T) {
	repo, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, repo.PutSet(ctx, &domain.SuggestionSet{DocumentID: "doc-1", Suggestions: []string{"x"}}))

	mr.FastForward(2 * time.Hour)

	_, err := repo.GetSet(ctx, "doc-1")
	assert.ErrorIs(t, err, ErrSetNotFound)
}
