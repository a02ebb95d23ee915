package catalog

import "errors"

var (
	// ErrJobExists reports an import under a job name that is already taken.
	ErrJobExists = errors.New("job already exists")
	// ErrNotFound reports a lookup of an unknown job name.
	ErrNotFound = errors.New("job not found")
	// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
	ErrSchemaMismatch = errors.New("schema version mismatch")
	// ErrInvalidJobName reports an empty job name.
	ErrInvalidJobName = errors.New("invalid job name")
	// ErrLocked reports that another process held the catalog lock for too long.
	ErrLocked = errors.New("catalog is locked by another process")
)
