package repository

import "errors"

// ErrNotFound is returned by Store.Get when a slot has no value. Callers
// treat it as "first run": the snapshot stores fall back to their zero
// state instead of surfacing it. It abstracts over the driver-level
// sentinel (sql.ErrNoRows, redis.Nil).
var ErrNotFound = errors.New("repository: not found")
