package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBloomPositions(t *testing.T) {
	b := NewRedisBloomRepo(nil, 1000)
	pos := b.positions(42)
	require.Len(t, pos, defaultBloomHashes)
	assert.Equal(t, pos, b.positions(42))
	for _, p := range pos {
		assert.GreaterOrEqual(t, p, int64(0))
		assert.Less(t, p, int64(1000))
	}
	assert.NotEqual(t, pos, b.positions(43))

	// negative and huge ids stay in range
	for _, p := range b.positions(-1) {
		assert.Less(t, p, int64(1000))
	}
}

func TestBloomBulkAdd(t *testing.T) {
	client, mock := redismock.NewClientMock()
	b := NewRedisBloomRepo(client, 1000)

	require.NoError(t, b.BulkAdd(context.Background(), nil))

	for _, id := range []int64{1, 2} {
		for _, p := range b.positions(id) {
			mock.ExpectSetBit(KeyArticleBloom, p, 1).SetVal(0)
		}
	}
	require.NoError(t, b.BulkAdd(context.Background(), []int64{1, 2}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBloomExists(t *testing.T) {
	client, mock := redismock.NewClientMock()
	b := NewRedisBloomRepo(client, 1000)
	pos := b.positions(7)

	for _, p := range pos {
		mock.ExpectGetBit(KeyArticleBloom, p).SetVal(1)
	}
	ok, err := b.Exists(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, ok)

	for i, p := range pos {
		val := int64(1)
		if i == 2 {
			val = 0
		}
		mock.ExpectGetBit(KeyArticleBloom, p).SetVal(val)
	}
	ok, err = b.Exists(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectGetBit(KeyArticleBloom, pos[0]).SetErr(errors.New("conn refused"))
	_, err = b.Exists(context.Background(), 7)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
