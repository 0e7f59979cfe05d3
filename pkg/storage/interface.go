// Package storage is the persistence boundary of the URL shortener: short URL
// rows and the background jobs that expire them, written atomically.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is what callers can do with either a plain or a transactional handle.
type AllStorage interface {
	ShortURLStorage
	JobStorage
}

// TxStorage is a handle bound to one transaction. It must not be used after
// Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the long lived handle created at startup.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	// Begin opens a transaction. Nested transactions are not supported.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil and
	// rolling back otherwise. A short URL and its expiry job are stored this
	// way so neither exists without the other.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
