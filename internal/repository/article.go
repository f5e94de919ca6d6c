package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/open-textbook/anonboard/domain"
)

// articleRepository 协调层，协调缓存和数据库
type articleRepository struct {
	domain.ArticleRepository

	ranks     domain.RankCache
	rankTTL   time.Duration
	rankGroup singleflight.Group
}

var (
	_ domain.ArticleRepository = (*articleRepository)(nil)
	_ domain.RankRefresher     = (*articleRepository)(nil)
)

// NewArticleRepository wraps the database repository so that the ranked
// lists are served from the rank cache. Everything else passes through.
func NewArticleRepository(db domain.ArticleRepository, ranks domain.RankCache, rankTTL time.Duration) *articleRepository {
	return &articleRepository{
		ArticleRepository: db,
		ranks:             ranks,
		rankTTL:           rankTTL,
	}
}

func (r *articleRepository) Store(ctx context.Context, a *domain.Article) error {
	if err := r.ArticleRepository.Store(ctx, a); err != nil {
		return err
	}
	r.invalidate(ctx, domain.RankLiked, domain.RankCommented)
	return nil
}

func (r *articleRepository) Update(ctx context.Context, a *domain.Article) error {
	if err := r.ArticleRepository.Update(ctx, a); err != nil {
		return err
	}
	r.invalidate(ctx, domain.RankLiked, domain.RankCommented)
	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id int64) error {
	if err := r.ArticleRepository.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, domain.RankLiked, domain.RankCommented)
	return nil
}

func (r *articleRepository) ToggleLike(ctx context.Context, like domain.UserLike) (domain.LikeResult, error) {
	res, err := r.ArticleRepository.ToggleLike(ctx, like)
	if err != nil {
		return res, err
	}
	r.invalidate(ctx, domain.RankLiked)
	return res, nil
}

func (r *articleRepository) FetchTopLiked(ctx context.Context, limit int) ([]domain.Article, error) {
	return r.rank(ctx, domain.RankLiked, limit)
}

func (r *articleRepository) FetchTopCommented(ctx context.Context, limit int) ([]domain.Article, error) {
	return r.rank(ctx, domain.RankCommented, limit)
}

// RefreshRanks rebuilds every rank entry from the database.
func (r *articleRepository) RefreshRanks(ctx context.Context) error {
	var errs []error
	for _, kind := range []domain.RankKind{domain.RankLiked, domain.RankCommented} {
		if _, err := r.buildRank(ctx, kind); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// rank 读取热榜，逻辑过期时先返回旧数据再异步重建
func (r *articleRepository) rank(ctx context.Context, kind domain.RankKind, limit int) ([]domain.Article, error) {
	ars, expired, err := r.ranks.GetRank(ctx, kind)
	if err == nil {
		if expired {
			go r.rebuildRank(context.Background(), kind)
		}
		if len(ars) > limit {
			ars = ars[:limit]
		}
		return ars, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("rank cache %s unavailable: %v", kind, err)
	}

	result, err, _ := r.rankGroup.Do(string(kind), func() (any, error) {
		return r.buildRank(ctx, kind)
	})
	if err != nil {
		return nil, err
	}

	ars = result.([]domain.Article)
	if len(ars) > limit {
		ars = ars[:limit]
	}
	return ars, nil
}

// buildRank always loads RankLimit rows so one cache entry serves any limit up to it.
func (r *articleRepository) buildRank(ctx context.Context, kind domain.RankKind) ([]domain.Article, error) {
	var (
		ars []domain.Article
		err error
	)
	switch kind {
	case domain.RankLiked:
		ars, err = r.ArticleRepository.FetchTopLiked(ctx, domain.RankLimit)
	case domain.RankCommented:
		ars, err = r.ArticleRepository.FetchTopCommented(ctx, domain.RankLimit)
	default:
		return nil, domain.ErrBadParamInput
	}
	if err != nil {
		return nil, err
	}

	if err := r.ranks.SetRank(ctx, kind, ars, r.rankTTL); err != nil {
		logrus.Errorf("failed to set rank cache %s: %v", kind, err)
	}
	return ars, nil
}

func (r *articleRepository) rebuildRank(ctx context.Context, kind domain.RankKind) {
	_, err, _ := r.rankGroup.Do(string(kind), func() (any, error) {
		return r.buildRank(ctx, kind)
	})
	if err != nil {
		logrus.Errorf("rebuild rank %s failed: %v", kind, err)
	}
}

func (r *articleRepository) invalidate(ctx context.Context, kinds ...domain.RankKind) {
	if err := r.ranks.DeleteRank(ctx, kinds...); err != nil {
		logrus.Warnf("failed to invalidate ranks %v: %v", kinds, err)
	}
}
