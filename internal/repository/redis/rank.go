package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/open-textbook/anonboard/domain"
	"github.com/open-textbook/anonboard/internal/repository/cache"
)

const (
	KeyRank = "anonymouses:rank:%s"

	// stale entries stay readable this many logical TTLs after expiry
	physicalTTLFactor = 10
)

type rankCache struct {
	client *redis.Client
}

var _ domain.RankCache = (*rankCache)(nil)

func NewRankCache(client *redis.Client) *rankCache {
	return &rankCache{
		client,
	}
}

func rankKey(kind domain.RankKind) string {
	return fmt.Sprintf(KeyRank, kind)
}

func (c *rankCache) GetRank(ctx context.Context, kind domain.RankKind) ([]domain.Article, bool, error) {
	data, err := c.client.Get(ctx, rankKey(kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, domain.ErrCacheMiss
	} else if err != nil {
		return nil, false, err
	}

	var entry cache.Stale[[]domain.Article]
	if err = json.Unmarshal(data, &entry); err != nil {
		return nil, false, fmt.Errorf("decode rank %s: %w", kind, err)
	}
	return entry.Data, entry.Expired(time.Now()), nil
}

func (c *rankCache) SetRank(ctx context.Context, kind domain.RankKind, ars []domain.Article, ttl time.Duration) error {
	if ars == nil {
		ars = []domain.Article{}
	}
	data, err := json.Marshal(cache.NewStale(ars, ttl))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, rankKey(kind), string(data), ttl*physicalTTLFactor).Err()
}

func (c *rankCache) DeleteRank(ctx context.Context, kinds ...domain.RankKind) error {
	if len(kinds) == 0 {
		return nil
	}
	keys := make([]string, len(kinds))
	for i, kind := range kinds {
		keys[i] = rankKey(kind)
	}
	return c.client.Del(ctx, keys...).Err()
}
