package cache

import (
	"context"
	"time"

	"github.com/open-textbook/anonboard/domain"
)

// nopRankCache is used when redis is disabled; every read is a miss.
type nopRankCache struct{}

var _ domain.RankCache = nopRankCache{}

func NewNopRankCache() domain.RankCache { return nopRankCache{} }

func (nopRankCache) GetRank(context.Context, domain.RankKind) ([]domain.Article, bool, error) {
	return nil, false, domain.ErrCacheMiss
}

func (nopRankCache) SetRank(context.Context, domain.RankKind, []domain.Article, time.Duration) error {
	return nil
}

func (nopRankCache) DeleteRank(context.Context, ...domain.RankKind) error { return nil }

// nopBloom answers "maybe" for every id so lookups always reach the database.
type nopBloom struct{}

var _ domain.BloomRepository = nopBloom{}

func NewNopBloom() domain.BloomRepository { return nopBloom{} }

func (nopBloom) Add(context.Context, int64) error            { return nil }
func (nopBloom) Exists(context.Context, int64) (bool, error) { return true, nil }
func (nopBloom) BulkAdd(context.Context, []int64) error      { return nil }
