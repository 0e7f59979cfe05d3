package storage

import (
	"context"
	"homoglyph/pkg/domain"
	"time"
)

// ShortURLStorage defines persistence of short URLs. Deletion is always soft:
// rows keep their data and only stop being visible to lookups.
type ShortURLStorage interface {
	// StoreShortURL inserts a short URL and returns the stored row including
	// generated fields. It returns ErrDuplicateCode when the code is taken by
	// another live short URL.
	StoreShortURL(ctx context.Context, shortURL domain.ShortURL) (*domain.ShortURL, error)
	// ResolveShortURL increments the hit counter of the live, unexpired short
	// URL with the given code and returns it. Returns nil when there is none.
	ResolveShortURL(ctx context.Context, code string, now time.Time) (*domain.ShortURL, error)
	// DeleteShortURL soft deletes the live short URL with the given code owned
	// by userID and returns it, or nil if it was not found.
	DeleteShortURL(ctx context.Context, userID domain.UserID, code string) (*domain.ShortURL, error)
	// ExpireShortURL soft deletes the live short URL with the given code if its
	// deadline is not after now. It reports whether a row was expired.
	ExpireShortURL(ctx context.Context, code string, now time.Time) (bool, error)
}
