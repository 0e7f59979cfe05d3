package postgres_test

import (
	"context"
	"homoglyph/pkg/domain"
	"homoglyph/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreShortURL(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	owner := domain.UserID(uuid.New())
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Microsecond)

	stored, err := pgSQL.StoreShortURL(ctx, domain.ShortURL{
		Code:        "aB3dE9",
		OriginalURL: "https://example.com/",
		CreatedBy:   owner,
		ExpiresAt:   expiresAt,
	})
	require.NoError(t, err)
	require.NotEqual(t, domain.ShortURLID{}, stored.ID)
	require.Equal(t, "aB3dE9", stored.Code)
	require.Equal(t, owner, stored.CreatedBy)
	require.Zero(t, stored.Hits)
	require.False(t, stored.CreatedAt.IsZero())
	require.True(t, expiresAt.Equal(stored.ExpiresAt))
	require.True(t, stored.DeletedAt.IsZero())

	t.Run("duplicate live code", func(t *testing.T) {
		_, err := pgSQL.StoreShortURL(ctx, domain.ShortURL{Code: "aB3dE9", OriginalURL: "https://other.com/"})
		require.ErrorIs(t, err, storage.ErrDuplicateCode)
	})

	t.Run("code is case sensitive", func(t *testing.T) {
		_, err := pgSQL.StoreShortURL(ctx, domain.ShortURL{Code: "ab3de9", OriginalURL: "https://other.com/"})
		require.NoError(t, err)
	})

	t.Run("anonymous owner", func(t *testing.T) {
		res, err := pgSQL.StoreShortURL(ctx, domain.ShortURL{Code: "anon01", OriginalURL: "https://other.com/"})
		require.NoError(t, err)
		require.True(t, res.CreatedBy.IsAnonymous())
		require.True(t, res.ExpiresAt.IsZero())
	})
}

func TestPgSQL_ResolveShortURL(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	now := time.Now()

	_, err := pgSQL.StoreShortURL(ctx, domain.ShortURL{Code: "live01", OriginalURL: "https://example.com/a"})
	require.NoError(t, err)
	_, err = pgSQL.StoreShortURL(ctx, domain.ShortURL{
		Code:        "past01",
		OriginalURL: "https://example.com/b",
		ExpiresAt:   now.Add(-time.Minute),
	})
	require.NoError(t, err)

	res, err := pgSQL.ResolveShortURL(ctx, "live01", now)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, "https://example.com/a", res.OriginalURL)
	require.Equal(t, uint(1), res.Hits)

	res, err = pgSQL.ResolveShortURL(ctx, "live01", now)
	require.NoError(t, err)
	require.Equal(t, uint(2), res.Hits)

	res, err = pgSQL.ResolveShortURL(ctx, "past01", now)
	require.NoError(t, err)
	require.Nil(t, res, "expired codes do not resolve")

	res, err = pgSQL.ResolveShortURL(ctx, "nope00", now)
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestPgSQL_DeleteShortURL(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	owner := domain.UserID(uuid.New())
	stranger := domain.UserID(uuid.New())

	_, err := pgSQL.StoreShortURL(ctx, domain.ShortURL{
		Code:        "del001",
		OriginalURL: "https://example.com/",
		CreatedBy:   owner,
	})
	require.NoError(t, err)

	res, err := pgSQL.DeleteShortURL(ctx, stranger, "del001")
	require.NoError(t, err)
	require.Nil(t, res, "only the owner can delete")

	res, err = pgSQL.DeleteShortURL(ctx, owner, "del001")
	require.NoError(t, err)
	require.NotNil(t, res)
	require.False(t, res.DeletedAt.IsZero())

	res, err = pgSQL.DeleteShortURL(ctx, owner, "del001")
	require.NoError(t, err)
	require.Nil(t, res, "already deleted")

	resolved, err := pgSQL.ResolveShortURL(ctx, "del001", time.Now())
	require.NoError(t, err)
	require.Nil(t, resolved)

	// a deleted code can be reused
	_, err = pgSQL.StoreShortURL(ctx, domain.ShortURL{Code: "del001", OriginalURL: "https://example.org/"})
	require.NoError(t, err)
}

func TestPgSQL_ExpireShortURL(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	now := time.Now()

	_, err := pgSQL.StoreShortURL(ctx, domain.ShortURL{
		Code:        "exp001",
		OriginalURL: "https://example.com/",
		ExpiresAt:   now.Add(time.Hour),
	})
	require.NoError(t, err)
	_, err = pgSQL.StoreShortURL(ctx, domain.ShortURL{Code: "forevr", OriginalURL: "https://example.com/"})
	require.NoError(t, err)

	expired, err := pgSQL.ExpireShortURL(ctx, "exp001", now)
	require.NoError(t, err)
	require.False(t, expired, "deadline not reached")

	expired, err = pgSQL.ExpireShortURL(ctx, "exp001", now.Add(2*time.Hour))
	require.NoError(t, err)
	require.True(t, expired)

	expired, err = pgSQL.ExpireShortURL(ctx, "exp001", now.Add(2*time.Hour))
	require.NoError(t, err)
	require.False(t, expired, "expiring twice is a no-op")

	expired, err = pgSQL.ExpireShortURL(ctx, "forevr", now.Add(24*time.Hour))
	require.NoError(t, err)
	require.False(t, expired, "codes without deadline never expire")
}
