package redis

import (
	"context"
	"encoding/binary"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/open-textbook/anonboard/domain"
)

const (
	// KeyArticleBloom is the bitmap holding every article id ever created.
	KeyArticleBloom = "bloom:anonymouses:ids"

	// defaultBloomHashes keeps false positives near 1% at one id per ten bits.
	defaultBloomHashes = 7
)

// articleBloom is a bloom filter of article ids stored as a redis bitmap.
// Deleted articles stay in the filter; lookups for them fall through to
// the database, which answers not found.
type articleBloom struct {
	client *redis.Client
	bits   uint64
	hashes int
}

var _ domain.BloomRepository = (*articleBloom)(nil)

// NewRedisBloomRepo sizes the filter at bitSize bits. Changing bitSize on a
// populated key invalidates it; delete the key and let the bloom sync reseed.
func NewRedisBloomRepo(client *redis.Client, bitSize uint64) *articleBloom {
	return &articleBloom{
		client: client,
		bits:   max(bitSize, 1),
		hashes: defaultBloomHashes,
	}
}

func (b *articleBloom) Add(ctx context.Context, id int64) error {
	return b.BulkAdd(ctx, []int64{id})
}

func (b *articleBloom) BulkAdd(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := b.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range ids {
			for _, pos := range b.positions(id) {
				pipe.SetBit(ctx, KeyArticleBloom, pos, 1)
			}
		}
		return nil
	})
	return err
}

// Exists reports false as soon as one of the id's bits is unset.
func (b *articleBloom) Exists(ctx context.Context, id int64) (bool, error) {
	positions := b.positions(id)
	bits := make([]*redis.IntCmd, len(positions))
	_, err := b.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, pos := range positions {
			bits[i] = pipe.GetBit(ctx, KeyArticleBloom, pos)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	for _, bit := range bits {
		if bit.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}

// positions derives the id's bit offsets by double hashing: the two halves
// of a 64-bit FNV-1a digest give g(i) = h1 + i*h2 mod bits.
func (b *articleBloom) positions(id int64) []int64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	sum := h.Sum64()

	h1 := sum & 0xffffffff
	h2 := sum>>32 | 1
	res := make([]int64, b.hashes)
	for i := range res {
		res[i] = int64((h1 + uint64(i)*h2) % b.bits)
	}
	return res
}
