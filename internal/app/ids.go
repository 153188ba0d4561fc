package app

import "github.com/google/uuid"

// IDGenerator returns a fresh session id on every call.
type IDGenerator func() string

// newUUID generates a random UUIDv4 string.
func newUUID() string { return uuid.NewString() }
