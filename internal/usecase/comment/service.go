package comment

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/open-textbook/anonboard/domain"
)

// articleFinder resolves the article a comment is posted under. The article
// usecase satisfies it and applies its bloom filter check.
type articleFinder interface {
	GetByID(ctx context.Context, id int64) (domain.Article, error)
}

type service struct {
	commentRepo domain.CommentRepository
	articles    articleFinder
	ranks       domain.RankCache
	publisher   domain.EventPublisher
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(
	commentRepo domain.CommentRepository,
	articles articleFinder,
	ranks domain.RankCache,
	publisher domain.EventPublisher,
) *service {
	return &service{
		commentRepo: commentRepo,
		articles:    articles,
		ranks:       ranks,
		publisher:   publisher,
	}
}

func (s *service) mustExist(ctx context.Context, id int64) error {
	_, err := s.articles.GetByID(ctx, id)
	return err
}

func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	if c.UserID == 0 {
		return domain.ErrUnauthorized
	}
	if err := s.mustExist(ctx, c.ArticleID); err != nil {
		return err
	}

	c.Content = strings.TrimSpace(c.Content)
	if c.Content == "" || utf8.RuneCountInString(c.Content) > domain.MaxCommentLength {
		return domain.ErrBadParamInput
	}

	c.CreatedAt = time.Now()
	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}

	s.invalidateRank(ctx)
	ev := domain.NewEvent(domain.EventCommentCreated, c.ArticleID, c.UserID)
	ev.CommentID = c.ID
	s.publish(ctx, ev)
	return nil
}

func (s *service) Delete(ctx context.Context, actorID, articleID, commentID int64) error {
	c, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if c.ArticleID != articleID {
		return domain.ErrNotFound
	}
	if !c.IsAuthor(actorID) {
		return domain.ErrForbidden
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}

	s.invalidateRank(ctx)
	ev := domain.NewEvent(domain.EventCommentDeleted, articleID, actorID)
	ev.CommentID = commentID
	s.publish(ctx, ev)
	return nil
}

func (s *service) FetchByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	res, err := s.commentRepo.FetchByArticle(ctx, articleID)
	if err != nil {
		return []domain.Comment{}, err
	}
	if res == nil {
		res = []domain.Comment{}
	}
	return res, nil
}

func (s *service) invalidateRank(ctx context.Context) {
	if err := s.ranks.DeleteRank(ctx, domain.RankCommented); err != nil {
		logrus.Warnf("failed to invalidate commented rank: %v", err)
	}
}

func (s *service) publish(ctx context.Context, ev domain.Event) {
	if err := s.publisher.Publish(ctx, ev); err != nil {
		logrus.WithField("event", ev.Type).Warnf("failed to publish event for article %d: %v", ev.ArticleID, err)
	}
}
