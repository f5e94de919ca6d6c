package domain

import (
	"context"
	"time"
)

// MaxCommentLength is the longest accepted comment body, in characters.
const MaxCommentLength = 500

// Comment is a reply under an article. The author is kept for ownership
// checks and never shown.
type Comment struct {
	ID        int64
	ArticleID int64
	UserID    int64
	Content   string
	CreatedAt time.Time
}

// IsAuthor reports whether uid wrote the comment.
func (c *Comment) IsAuthor(uid int64) bool {
	return uid != 0 && c.UserID == uid
}

type CommentUsecase interface {
	// Create stores c under an existing article and backfills its ID.
	Create(ctx context.Context, c *Comment) error
	// Delete removes the comment when actorID wrote it.
	// Returns ErrForbidden for anyone else.
	Delete(ctx context.Context, actorID, articleID, commentID int64) error
	FetchByArticle(ctx context.Context, articleID int64) ([]Comment, error)
}

type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Comment, error)
	// FetchByArticle returns every comment of the article, oldest first.
	FetchByArticle(ctx context.Context, articleID int64) ([]Comment, error)
}
