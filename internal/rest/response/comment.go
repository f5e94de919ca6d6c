package response

import "github.com/open-textbook/anonboard/domain"

type Comment struct {
	ID        int64  `json:"id"`
	ArticleID int64  `json:"article_id"`
	Content   string `json:"content"`
	IsAuthor  bool   `json:"is_author"`
	CreatedAt string `json:"created_at"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment, viewerID int64) Comment {
	return Comment{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		Content:   c.Content,
		IsAuthor:  c.IsAuthor(viewerID),
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
	}
}

func NewCommentList(cs []domain.Comment, viewerID int64) []Comment {
	res := make([]Comment, len(cs))
	for i := range cs {
		res[i] = NewCommentFromDomain(&cs[i], viewerID)
	}
	return res
}
