package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShortURLID uniquely identifies a stored short URL.
type ShortURLID uuid.UUID

// ShortURL maps a short code to the original URL it redirects to.
type ShortURL struct {
	// ID is the unique identifier of the row.
	ID ShortURLID
	// Code is the public short code, unique among live short URLs.
	Code string
	// OriginalURL is the normalized target of the redirect.
	OriginalURL string
	// CreatedBy is the owner; the zero value means anonymous.
	CreatedBy UserID
	// Hits counts successful resolutions.
	Hits uint

	// CreatedAt is the time when the short URL was created.
	CreatedAt time.Time
	// ExpiresAt is the deadline after which the code stops resolving; zero means never.
	ExpiresAt time.Time
	// DeletedAt marks when the short URL was soft-deleted; zero value means not deleted.
	DeletedAt time.Time
}

// Expired reports whether the short URL has a deadline that is not after now.
func (s ShortURL) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !s.ExpiresAt.After(now)
}
