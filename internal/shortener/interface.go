package shortener

import (
	"context"
	"homoglyph/pkg/domain"
	"time"
)

//go:generate mockgen -package mockshortener -source=interface.go -destination=mock/mockshortener.go *
type Shortener interface {
	Shorten(ctx context.Context, userID domain.UserID, rawURL string, ttl time.Duration) (*domain.ShortURL, error)
	Resolve(ctx context.Context, code string) (*domain.ShortURL, error)
	Delete(ctx context.Context, userID domain.UserID, code string) error
	Expire(ctx context.Context, code string) error
}
