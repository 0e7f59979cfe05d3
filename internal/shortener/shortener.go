// Package shortener maps long URLs to short random codes and expires them
// through background jobs.
package shortener

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"homoglyph/internal/config"
	"homoglyph/pkg/domain"
	"homoglyph/pkg/logger"
	"homoglyph/pkg/serrors"
	"homoglyph/pkg/storage"
	"time"

	"go.uber.org/zap"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// DefaultCodeLength is used when Options.CodeLength is not positive.
	DefaultCodeLength = 6
	// DefaultMaxAttempts is used when Options.MaxAttempts is not positive.
	DefaultMaxAttempts = 5
)

// Options configure code generation, lifetimes and expiry jobs.
type Options struct {
	// CodeLength is the number of characters of generated codes.
	CodeLength int
	// MaxAttempts bounds how many codes are tried before giving up with a conflict.
	MaxAttempts int
	// MaxTTL caps requested lifetimes. A zero TTL request gets MaxTTL; zero
	// MaxTTL means short URLs may live forever.
	MaxTTL time.Duration
	// JobMaxAttempts is the number of times the expiry job is retried.
	JobMaxAttempts int
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		CodeLength:     cfg.Shortener.CodeLength,
		MaxAttempts:    cfg.Shortener.MaxAttempts,
		MaxTTL:         cfg.Shortener.MaxTTL,
		JobMaxAttempts: cfg.Worker.MaxAttempts,
	}
}

type shortener struct {
	options Options
	storage storage.Storage
}

// New creates a new Shortener backed by the provided storage.
func New(storage storage.Storage, options Options) Shortener {
	if options.CodeLength <= 0 {
		options.CodeLength = DefaultCodeLength
	}
	if options.MaxAttempts <= 0 {
		options.MaxAttempts = DefaultMaxAttempts
	}
	if options.Clock == nil {
		options.Clock = time.Now
	}

	return &shortener{
		options: options,
		storage: storage,
	}
}

// Shorten normalizes rawURL and stores it under a fresh random code. When the
// short URL has a lifetime, an expiry job is enqueued in the same transaction.
func (s *shortener) Shorten(ctx context.Context,
	userID domain.UserID,
	rawURL string,
	ttl time.Duration) (*domain.ShortURL, error) {
	if ttl < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "ttl must not be negative")
	}
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid URL")
	}

	if s.options.MaxTTL > 0 && (ttl == 0 || ttl > s.options.MaxTTL) {
		ttl = s.options.MaxTTL
	}
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = s.options.Clock().Add(ttl).UTC()
	}

	for attempt := 1; attempt <= s.options.MaxAttempts; attempt++ {
		code, err := randomCode(s.options.CodeLength)
		if err != nil {
			return nil, fmt.Errorf("could not generate code: %w", err)
		}

		var stored *domain.ShortURL
		err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
			res, err := tx.StoreShortURL(ctx, domain.ShortURL{
				Code:        code,
				OriginalURL: normalized,
				CreatedBy:   userID,
				ExpiresAt:   expiresAt,
			})
			if err != nil {
				return fmt.Errorf("could not store short URL: %w", err)
			}
			stored = res

			if expiresAt.IsZero() {
				return nil
			}
			if _, err := tx.AddJob(ctx, ExpireJobArgs{
				Code:        code,
				ExpiresAt:   expiresAt,
				maxAttempts: s.options.JobMaxAttempts,
			}, nil); err != nil {
				return fmt.Errorf("could not add expiry job: %w", err)
			}

			return nil
		})
		if errors.Is(err, storage.ErrDuplicateCode) {
			logger.Debug(ctx, "short code collision", zap.String("code", code), zap.Int("attempt", attempt))

			continue
		}
		if err != nil {
			return nil, fmt.Errorf("could not shorten URL: %w", err)
		}

		return stored, nil
	}

	return nil, serrors.With(serrors.ErrConflict, "could not find a free short code after %d attempts",
		s.options.MaxAttempts)
}

// Resolve returns the live short URL for code and counts the hit.
func (s *shortener) Resolve(ctx context.Context, code string) (*domain.ShortURL, error) {
	res, err := s.storage.ResolveShortURL(ctx, code, s.options.Clock())
	if err != nil {
		return nil, fmt.Errorf("could not resolve short URL: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "short URL not found")
	}

	return res, nil
}

// Delete soft deletes a short URL owned by userID. Anonymous callers cannot
// delete anything since anonymous short URLs have no owner. The pending expiry
// job is left in the queue; expiring a deleted row is a no-op.
func (s *shortener) Delete(ctx context.Context, userID domain.UserID, code string) error {
	if userID.IsAnonymous() {
		return serrors.With(serrors.ErrUnauthorized, "authentication required")
	}

	res, err := s.storage.DeleteShortURL(ctx, userID, code)
	if err != nil {
		return fmt.Errorf("could not delete short URL: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "short URL not found")
	}

	return nil
}

// Expire soft deletes the short URL with code once its deadline has passed.
// Calling it again, or for a deleted code, does nothing.
func (s *shortener) Expire(ctx context.Context, code string) error {
	expired, err := s.storage.ExpireShortURL(ctx, code, s.options.Clock())
	if err != nil {
		return fmt.Errorf("could not expire short URL: %w", err)
	}

	logger.Info(ctx, "expire short URL", zap.String("code", code), zap.Bool("expired", expired))

	return nil
}

// randomCode draws n characters from alphabet using rejection sampling so
// every character is equally likely.
func randomCode(n int) (string, error) {
	const limit = 256 - 256%len(alphabet)

	out := make([]byte, 0, n)
	buf := make([]byte, n*2)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == n {
				break
			}
		}
	}

	return string(out), nil
}
