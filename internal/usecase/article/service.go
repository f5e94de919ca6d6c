package article

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/open-textbook/anonboard/domain"
	"github.com/open-textbook/anonboard/internal/repository"
)

// bloomBatchSize is how many ids SyncBloomFilter loads per round trip.
const bloomBatchSize = 1000

type Service struct {
	articleRepo domain.ArticleRepository
	bloomRepo   domain.BloomRepository
	publisher   domain.EventPublisher

	// syncMu serialises SyncBloomFilter; bloomCursor is the highest id it has added.
	syncMu      sync.Mutex
	bloomCursor atomic.Int64
	// unsynced holds ids stored here whose bloom Add failed and that no
	// sync has covered yet.
	unsynced sync.Map
}

var _ domain.ArticleUsecase = (*Service)(nil)

// NewService will create a new article service object
func NewService(a domain.ArticleRepository, b domain.BloomRepository, p domain.EventPublisher) *Service {
	return &Service{
		articleRepo: a,
		bloomRepo:   b,
		publisher:   p,
	}
}

// List returns one board page. Count and rows are loaded concurrently; a
// page past the end comes back with no articles but valid navigation.
func (a *Service) List(ctx context.Context, keyword string, page int) (domain.Page, error) {
	keyword = repository.NormalizeText(keyword)
	if page < 1 {
		page = 1
	}

	var (
		total int64
		rows  []domain.Article
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = a.articleRepo.Count(gctx, keyword)
		return
	})
	g.Go(func() (err error) {
		rows, err = a.articleRepo.Fetch(gctx, keyword, (page-1)*domain.PageSize, domain.PageSize)
		return
	})
	if err := g.Wait(); err != nil {
		return domain.Page{}, err
	}

	res := domain.NewPage(page, total)
	res.Keyword = keyword
	res.Articles = []domain.Article{}
	if res.InRange() {
		res.Articles = append(res.Articles, rows...)
	}
	return res, nil
}

func (a *Service) TopLiked(ctx context.Context) ([]domain.Article, error) {
	res, err := a.articleRepo.FetchTopLiked(ctx, domain.RankLimit)
	if err != nil {
		return nil, err
	}
	return topN(res, func(ar domain.Article) int64 { return ar.Likes }), nil
}

func (a *Service) TopCommented(ctx context.Context) ([]domain.Article, error) {
	res, err := a.articleRepo.FetchTopCommented(ctx, domain.RankLimit)
	if err != nil {
		return nil, err
	}
	return topN(res, func(ar domain.Article) int64 { return ar.Comments }), nil
}

// topN orders a copy of ars by score desc, newer id first on ties, and keeps RankLimit.
func topN(ars []domain.Article, score func(domain.Article) int64) []domain.Article {
	res := slices.Clone(ars)
	slices.SortStableFunc(res, func(x, y domain.Article) int {
		if c := cmp.Compare(score(y), score(x)); c != 0 {
			return c
		}
		return cmp.Compare(y.ID, x.ID)
	})
	if len(res) > domain.RankLimit {
		res = res[:domain.RankLimit]
	}
	if res == nil {
		res = []domain.Article{}
	}
	return res
}

func (a *Service) Ranks(ctx context.Context) (res domain.Ranks, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.Liked, err = a.TopLiked(gctx)
		return
	})
	g.Go(func() (err error) {
		res.Commented, err = a.TopCommented(gctx)
		return
	})
	if err = g.Wait(); err != nil {
		return domain.Ranks{}, err
	}
	return res, nil
}

// mustExist rejects ids the bloom filter has never seen. Filter errors and
// ids whose Add failed fall through to the database.
func (a *Service) mustExist(ctx context.Context, id int64) error {
	exists, err := a.bloomRepo.Exists(ctx, id)
	if err != nil {
		logrus.Warnf("bloom filter check for article %d failed: %v", id, err)
		return nil
	}
	if exists {
		return nil
	}
	if _, ok := a.unsynced.Load(id); ok {
		return nil
	}
	return domain.ErrNotFound
}

func (a *Service) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	if id <= 0 {
		return domain.Article{}, domain.ErrNotFound
	}
	if err := a.mustExist(ctx, id); err != nil {
		return domain.Article{}, err
	}
	return a.articleRepo.GetByID(ctx, id)
}

func (a *Service) IsLiked(ctx context.Context, like domain.UserLike) (bool, error) {
	if like.UserID == 0 {
		return false, nil
	}
	return a.articleRepo.IsLiked(ctx, like)
}

// sanitize normalises title and content in place and validates their length.
func sanitize(ar *domain.Article) error {
	ar.Title = repository.NormalizeText(ar.Title)
	ar.Content = strings.TrimSpace(ar.Content)
	if ar.Title == "" || ar.Content == "" {
		return domain.ErrBadParamInput
	}
	if utf8.RuneCountInString(ar.Title) > domain.MaxTitleLength {
		return domain.ErrBadParamInput
	}
	return nil
}

func (a *Service) Store(ctx context.Context, ar *domain.Article) error {
	if ar.User.ID == 0 {
		return domain.ErrUnauthorized
	}
	if err := sanitize(ar); err != nil {
		return err
	}

	now := time.Now()
	ar.CreatedAt, ar.UpdatedAt = now, now
	ar.Likes = 0
	if err := a.articleRepo.Store(ctx, ar); err != nil {
		return err
	}

	if err := a.bloomRepo.Add(ctx, ar.ID); err != nil {
		// the next SyncBloomFilter picks it up
		a.unsynced.Store(ar.ID, struct{}{})
		logrus.Errorf("failed to add article %d to bloom filter: %v", ar.ID, err)
	}
	a.publish(ctx, domain.NewEvent(domain.EventArticleCreated, ar.ID, ar.User.ID))
	return nil
}

// Update rewrites title and content when actorID wrote the article.
func (a *Service) Update(ctx context.Context, actorID int64, ar *domain.Article) error {
	existed, err := a.GetByID(ctx, ar.ID)
	if err != nil {
		return err
	}
	if !existed.IsAuthor(actorID) {
		return domain.ErrForbidden
	}
	if err := sanitize(ar); err != nil {
		return err
	}

	ar.User = existed.User
	ar.CreatedAt = existed.CreatedAt
	ar.Likes = existed.Likes
	ar.UpdatedAt = time.Now()
	if err := a.articleRepo.Update(ctx, ar); err != nil {
		return err
	}

	a.publish(ctx, domain.NewEvent(domain.EventArticleUpdated, ar.ID, actorID))
	return nil
}

func (a *Service) Delete(ctx context.Context, actorID int64, id int64) error {
	existed, err := a.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !existed.IsAuthor(actorID) {
		return domain.ErrForbidden
	}
	if err := a.articleRepo.Delete(ctx, id); err != nil {
		return err
	}

	a.publish(ctx, domain.NewEvent(domain.EventArticleDeleted, id, actorID))
	return nil
}

func (a *Service) ToggleLike(ctx context.Context, like domain.UserLike) (domain.LikeResult, error) {
	if like.UserID == 0 {
		return domain.LikeResult{}, domain.ErrUnauthorized
	}
	if err := a.mustExist(ctx, like.ArticleID); err != nil {
		return domain.LikeResult{}, err
	}

	like.CreatedAt = time.Now()
	res, err := a.articleRepo.ToggleLike(ctx, like)
	if err != nil {
		return domain.LikeResult{}, err
	}

	t := domain.EventArticleUnliked
	if res.Liked {
		t = domain.EventArticleLiked
	}
	ev := domain.NewEvent(t, like.ArticleID, like.UserID)
	ev.Likes = res.Count
	a.publish(ctx, ev)
	return res, nil
}

// SyncBloomFilter adds every article id above the last synced one to the
// bloom filter. The first call loads all ids; later calls catch up on
// articles whose Add failed at creation time.
func (a *Service) SyncBloomFilter(ctx context.Context) error {
	a.syncMu.Lock()
	defer a.syncMu.Unlock()

	var total int
	cursor := a.bloomCursor.Load()
	for {
		ids, err := a.articleRepo.FetchIDs(ctx, cursor, bloomBatchSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err := a.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		for _, id := range ids {
			a.unsynced.Delete(id)
		}
		total += len(ids)
		cursor = ids[len(ids)-1]
		a.bloomCursor.Store(cursor)
		if len(ids) < bloomBatchSize {
			break
		}
	}
	if total > 0 {
		logrus.Infof("bloom filter synced %d article ids, cursor at %d", total, cursor)
	}
	return nil
}

func (a *Service) publish(ctx context.Context, ev domain.Event) {
	if err := a.publisher.Publish(ctx, ev); err != nil {
		logrus.WithField("event", ev.Type).Warnf("failed to publish event for article %d: %v", ev.ArticleID, err)
	}
}
