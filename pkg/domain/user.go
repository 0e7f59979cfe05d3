package domain

import "github.com/google/uuid"

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
// The zero value stands for an anonymous caller.
type UserID uuid.UUID

// IsAnonymous reports whether id is the zero value.
func (id UserID) IsAnonymous() bool { return id == UserID{} }

func (id UserID) String() string { return uuid.UUID(id).String() }
