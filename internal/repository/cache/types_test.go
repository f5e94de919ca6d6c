package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/open-textbook/anonboard/domain"
)

func TestStale(t *testing.T) {
	fresh := NewStale([]int{1, 2}, time.Minute)
	assert.False(t, fresh.Expired(time.Now()))
	assert.True(t, fresh.Expired(time.Now().Add(2*time.Minute)))
	assert.Equal(t, []int{1, 2}, fresh.Data)

	stale := NewStale("x", -time.Second)
	assert.True(t, stale.Expired(time.Now()))
}

func TestNopImplementations(t *testing.T) {
	ctx := context.Background()

	_, _, err := NewNopRankCache().GetRank(ctx, domain.RankLiked)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	ok, err := NewNopBloom().Exists(ctx, 123)
	assert.NoError(t, err)
	assert.True(t, ok)
}
