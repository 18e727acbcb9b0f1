package repository

import "errors"

// Sentinel errors returned by repository implementations so callers can
// tell a duplicate key from a missing row from a broken store without
// string-matching log lines.
var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicateID = errors.New("duplicate id")
)
