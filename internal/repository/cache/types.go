package cache

import "time"

// Stale wraps a cached value with a soft deadline. Past SoftExpiry the value
// may still be served while a fresh copy is being built.
type Stale[T any] struct {
	Data       T         `json:"data"`
	SoftExpiry time.Time `json:"soft_expiry"`
	BuiltAt    time.Time `json:"built_at"`
}

// Expired reports whether the soft deadline has passed at now.
func (s *Stale[T]) Expired(now time.Time) bool {
	return now.After(s.SoftExpiry)
}

// NewStale stamps data as built now and fresh for ttl.
func NewStale[T any](data T, ttl time.Duration) *Stale[T] {
	now := time.Now()
	return &Stale[T]{
		Data:       data,
		SoftExpiry: now.Add(ttl),
		BuiltAt:    now,
	}
}
