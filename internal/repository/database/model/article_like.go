package model

import (
	"time"

	"github.com/open-textbook/anonboard/domain"
)

// ArticleLike is one edge of the article/user like relation.
// The composite primary key keeps a user to one like per article.
type ArticleLike struct {
	ArticleID int64     `gorm:"column:article_id;primaryKey;autoIncrement:false"`
	UserID    int64     `gorm:"column:user_id;primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (ArticleLike) TableName() string {
	return "article_likes"
}

func NewArticleLikeFromDomain(ul domain.UserLike) ArticleLike {
	return ArticleLike{
		ArticleID: ul.ArticleID,
		UserID:    ul.UserID,
		CreatedAt: ul.CreatedAt,
	}
}
