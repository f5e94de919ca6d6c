package request

import "github.com/open-textbook/anonboard/domain"

// Article is the create and update form. Title length is counted in characters.
type Article struct {
	Title   string `form:"title" json:"title" binding:"notblank,max=100"`
	Content string `form:"content" json:"content" binding:"notblank"`
}

// ToDomain: Request -> Domain
func (r *Article) ToDomain() domain.Article {
	return domain.Article{
		Title:   r.Title,
		Content: r.Content,
	}
}

// NewArticleFromDomain prefills the update form.
func NewArticleFromDomain(a *domain.Article) Article {
	return Article{
		Title:   a.Title,
		Content: a.Content,
	}
}
