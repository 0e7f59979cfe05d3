package storage

import "errors"

var (
	// ErrAlreadyInTx: Begin or WithTx called on a transactional handle.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx: Commit or Rollback called outside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicateCode: the short code belongs to a live row. Callers retry
	// with a fresh code.
	ErrDuplicateCode = errors.New("short code already exists")
)
