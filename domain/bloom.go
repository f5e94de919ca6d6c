package domain

import "context"

// BloomRepository is a probabilistic set of article ids used to answer
// lookups for ids that were never created without touching the database.
type BloomRepository interface {
	Add(ctx context.Context, id int64) error

	// Exists may return false positives but never false negatives.
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd seeds the filter at startup.
	BulkAdd(ctx context.Context, ids []int64) error
}
