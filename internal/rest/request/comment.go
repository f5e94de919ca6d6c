package request

import (
	"strings"

	"github.com/open-textbook/anonboard/domain"
)

// Comment is the reply form posted under an article.
type Comment struct {
	Content string `form:"content" json:"content" binding:"notblank,max=500"`
}

// ToDomain binds the form to the article and the signed-in author.
func (r *Comment) ToDomain(articleID, userID int64) domain.Comment {
	return domain.Comment{
		ArticleID: articleID,
		UserID:    userID,
		Content:   strings.TrimSpace(r.Content),
	}
}
