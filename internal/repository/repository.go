package repository

import "context"

// Store is the persistence substrate: named string slots holding JSON
// snapshots. The chat history and the user profile each live in one slot
// and are replaced wholesale on every write.
//
// Keeping this an interface decouples the snapshot stores from the
// backing database and lets tests substitute an in-memory map.
type Store interface {
	// Get returns the value for key, or ErrNotFound if the slot has
	// never been written.
	Get(ctx context.Context, key string) (string, error)

	// Set replaces the value for key, creating the slot if needed.
	Set(ctx context.Context, key, value string) error
}
