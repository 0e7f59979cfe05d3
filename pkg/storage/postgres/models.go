package postgres

import (
	"database/sql"
	"homoglyph/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PgShortURL is the row layout of the short_urls table.
type PgShortURL struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Code        string    `db:"code"`
	OriginalURL string    `db:"original_url"`
	CreatedBy   uuid.UUID `db:"created_by"`
	Hits        int64     `db:"hits" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	ExpiresAt sql.NullTime `db:"expires_at"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgShortURL) ToDomain() *domain.ShortURL {
	return &domain.ShortURL{
		ID:          domain.ShortURLID(p.ID),
		Code:        p.Code,
		OriginalURL: p.OriginalURL,
		CreatedBy:   domain.UserID(p.CreatedBy),
		Hits:        uint(max(p.Hits, 0)),
		CreatedAt:   p.CreatedAt,
		ExpiresAt:   p.ExpiresAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}
}

func (p *PgShortURL) FromDomain(s domain.ShortURL) {
	*p = PgShortURL{
		ID:          uuid.UUID(s.ID),
		Code:        s.Code,
		OriginalURL: s.OriginalURL,
		CreatedBy:   uuid.UUID(s.CreatedBy),
		Hits:        int64(s.Hits), //nolint: gosec
		CreatedAt:   s.CreatedAt,
		ExpiresAt: sql.NullTime{
			Time:  s.ExpiresAt,
			Valid: !s.ExpiresAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  s.DeletedAt,
			Valid: !s.DeletedAt.IsZero(),
		},
	}
}
