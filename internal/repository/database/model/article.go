package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/open-textbook/anonboard/domain"
	"github.com/open-textbook/anonboard/internal/repository"
)

type Article struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:varchar(100);not null"`
	TitleSearch string    `gorm:"column:title_search;type:varchar(400);not null;default:''"`
	Content     string    `gorm:"type:text;not null"`
	UserID      int64     `gorm:"column:user_id;not null;index"`
	Likes       int64     `gorm:"not null;default:0;index"`
	UpdatedAt   time.Time `gorm:"type:datetime"`
	CreatedAt   time.Time `gorm:"type:datetime;index"`
}

func (Article) TableName() string {
	return "article"
}

// BeforeCreate fills the folded title used by keyword search.
func (m *Article) BeforeCreate(*gorm.DB) error {
	m.TitleSearch = repository.SearchKey(m.Title)
	return nil
}

func (m *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
		User: domain.User{
			ID: m.UserID,
		},
		Likes: m.Likes,
	}
}

func NewArticleFromDomain(a *domain.Article) *Article {
	return &Article{
		ID:          a.ID,
		Title:       a.Title,
		TitleSearch: repository.SearchKey(a.Title),
		Content:     a.Content,
		UserID:      a.User.ID,
		UpdatedAt:   a.UpdatedAt,
		CreatedAt:   a.CreatedAt,
		Likes:       a.Likes,
	}
}
