package response

import (
	"github.com/open-textbook/anonboard/domain"
)

const DateTimeFormat = "2006-01-02 15:04:05"

// Article never carries the author; IsAuthor tells the viewer whether it is theirs.
type Article struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	IsAuthor  bool   `json:"is_author"`
	Likes     int64  `json:"likes"`
	Comments  int64  `json:"comments,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewArticleFromDomain: Domain -> Response, as seen by viewerID (0 when anonymous)
func NewArticleFromDomain(a *domain.Article, viewerID int64) Article {
	return Article{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		IsAuthor:  a.IsAuthor(viewerID),
		Likes:     a.Likes,
		Comments:  a.Comments,
		CreatedAt: a.CreatedAt.Format(DateTimeFormat),
		UpdatedAt: a.UpdatedAt.Format(DateTimeFormat),
	}
}

// NewArticleSummary drops the body for list rows.
func NewArticleSummary(a *domain.Article, viewerID int64) Article {
	res := NewArticleFromDomain(a, viewerID)
	res.Content = ""
	return res
}

func NewArticleList(ars []domain.Article, viewerID int64) []Article {
	res := make([]Article, len(ars))
	for i := range ars {
		res[i] = NewArticleSummary(&ars[i], viewerID)
	}
	return res
}

type Page struct {
	Articles    []Article `json:"articles"`
	Keyword     string    `json:"keyword"`
	Number      int       `json:"page"`
	TotalPages  int       `json:"total_pages"`
	TotalCount  int64     `json:"total_count"`
	PageNumbers []int     `json:"page_numbers"`
	PrevWindow  int       `json:"prev_window,omitempty"`
	NextWindow  int       `json:"next_window,omitempty"`
}

func NewPageFromDomain(p *domain.Page, viewerID int64) Page {
	nums := p.PageNumbers
	if nums == nil {
		nums = []int{}
	}
	return Page{
		Articles:    NewArticleList(p.Articles, viewerID),
		Keyword:     p.Keyword,
		Number:      p.Number,
		TotalPages:  p.TotalPages,
		TotalCount:  p.TotalCount,
		PageNumbers: nums,
		PrevWindow:  p.PrevWindow,
		NextWindow:  p.NextWindow,
	}
}

type Ranks struct {
	Liked     []Article `json:"liked"`
	Commented []Article `json:"commented"`
}

func NewRanksFromDomain(r *domain.Ranks, viewerID int64) Ranks {
	return Ranks{
		Liked:     NewArticleList(r.Liked, viewerID),
		Commented: NewArticleList(r.Commented, viewerID),
	}
}

// Detail is one article with its comments as seen by the viewer.
type Detail struct {
	Article  Article   `json:"article"`
	Comments []Comment `json:"comments"`
	Liked    bool      `json:"liked"`
}

func NewDetail(a *domain.Article, comments []domain.Comment, liked bool, viewerID int64) Detail {
	return Detail{
		Article:  NewArticleFromDomain(a, viewerID),
		Comments: NewCommentList(comments, viewerID),
		Liked:    liked,
	}
}
