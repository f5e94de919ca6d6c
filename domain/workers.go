package domain

import "context"

// Worker runs in the background until ctx is cancelled.
type Worker interface {
	Start(ctx context.Context)
}

// RankRefresher rebuilds the liked and commented ranks from storage and
// writes them back to the rank cache.
type RankRefresher interface {
	RefreshRanks(ctx context.Context) error
}

// BloomSyncer adds article ids missing from the bloom filter.
type BloomSyncer interface {
	SyncBloomFilter(ctx context.Context) error
}
