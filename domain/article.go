package domain

import (
	"context"
	"time"
)

const (
	// MaxTitleLength is the longest accepted article title, in characters.
	MaxTitleLength = 100
	// RankLimit is the size of the most-liked and most-commented lists.
	RankLimit = 5
)

// Article is representing the Article data struct
type Article struct {
	ID        int64     // Unique identifier for the article
	Title     string    // Article title
	Content   string    // Article body content
	User      User      // Author, never shown on the board
	UpdatedAt time.Time // Last update timestamp
	CreatedAt time.Time // Creation timestamp
	Likes     int64     // Cardinality of the like set
	Comments  int64     // Number of comments, filled by aggregation queries only
}

// IsAuthor reports whether uid wrote the article.
func (a *Article) IsAuthor(uid int64) bool {
	return uid != 0 && a.User.ID == uid
}

// Ranks holds the two sidebar lists rendered on every board page.
type Ranks struct {
	Liked     []Article
	Commented []Article
}

// RankKind names one of the ranked article lists.
type RankKind string

const (
	RankLiked     RankKind = "liked"
	RankCommented RankKind = "commented"
)

// ArticleRepository defines the contract for article data persistence
type ArticleRepository interface {
	// Count returns how many articles match keyword. An empty keyword matches all.
	Count(ctx context.Context, keyword string) (int64, error)

	// Fetch returns at most limit articles matching keyword, newest first,
	// skipping the first offset rows.
	Fetch(ctx context.Context, keyword string, offset, limit int) ([]Article, error)

	// GetByID retrieves a single article by its ID.
	// Returns ErrNotFound if the article doesn't exist.
	GetByID(ctx context.Context, id int64) (Article, error)

	// Store creates a new article and backfills ID and timestamps.
	Store(ctx context.Context, a *Article) error

	// Update modifies title and content of an existing article.
	// Returns ErrNotFound if the article doesn't exist.
	Update(ctx context.Context, a *Article) error

	// Delete removes an article together with its comments and likes.
	// Returns ErrNotFound if not exists
	Delete(ctx context.Context, id int64) error

	// ToggleLike adds the like when absent and removes it when present,
	// then stores the recounted total.
	ToggleLike(ctx context.Context, like UserLike) (LikeResult, error)

	// IsLiked reports whether the user currently likes the article.
	IsLiked(ctx context.Context, like UserLike) (bool, error)

	// FetchTopLiked returns up to limit articles ordered by likes desc.
	FetchTopLiked(ctx context.Context, limit int) ([]Article, error)

	// FetchTopCommented returns up to limit articles ordered by comment count desc.
	FetchTopCommented(ctx context.Context, limit int) ([]Article, error)

	// FetchIDs pages through all article ids greater than cursor.
	FetchIDs(ctx context.Context, cursor int64, limit int) ([]int64, error)
}

// RankCache stores the ranked lists with a logical expiry.
type RankCache interface {
	// GetRank returns ErrCacheMiss when nothing is stored. expired is true
	// when the entry is past its logical expiry but still usable.
	GetRank(ctx context.Context, kind RankKind) (res []Article, expired bool, err error)
	SetRank(ctx context.Context, kind RankKind, ars []Article, ttl time.Duration) error
	DeleteRank(ctx context.Context, kinds ...RankKind) error
}

type ArticleUsecase interface {
	List(ctx context.Context, keyword string, page int) (Page, error)
	TopLiked(ctx context.Context) ([]Article, error)
	TopCommented(ctx context.Context) ([]Article, error)
	Ranks(ctx context.Context) (Ranks, error)
	GetByID(ctx context.Context, id int64) (Article, error)
	IsLiked(ctx context.Context, like UserLike) (bool, error)
	Store(ctx context.Context, ar *Article) error
	Update(ctx context.Context, actorID int64, ar *Article) error
	Delete(ctx context.Context, actorID int64, id int64) error
	ToggleLike(ctx context.Context, like UserLike) (LikeResult, error)
	SyncBloomFilter(ctx context.Context) error
}
