package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/open-textbook/anonboard/domain"
	"github.com/open-textbook/anonboard/internal/repository"
	"github.com/open-textbook/anonboard/internal/repository/database/model"
)

type articleRepository struct {
	DB *gorm.DB
}

// database层只负责数据库操作
var _ domain.ArticleRepository = (*articleRepository)(nil)

// NewArticleRepository 创建数据库操作层
func NewArticleRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{db}
}

func (m *articleRepository) filtered(ctx context.Context, keyword string) *gorm.DB {
	q := m.DB.WithContext(ctx).Model(&model.Article{})
	if pattern := repository.KeywordPattern(keyword); pattern != "" {
		q = q.Where("title_search LIKE ? ESCAPE '!'", pattern)
	}
	return q
}

func (m *articleRepository) Count(ctx context.Context, keyword string) (total int64, err error) {
	err = m.filtered(ctx, keyword).Count(&total).Error
	return
}

func (m *articleRepository) Fetch(ctx context.Context, keyword string, offset, limit int) ([]domain.Article, error) {
	var articles []model.Article
	err := m.filtered(ctx, keyword).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).
		Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Article, len(articles))
	for i := range articles {
		res[i] = articles[i].ToDomain()
	}
	return res, nil
}

func (m *articleRepository) GetByID(ctx context.Context, id int64) (res domain.Article, err error) {
	var article model.Article
	err = m.DB.WithContext(ctx).First(&article, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return res, domain.ErrNotFound
	}
	if err != nil {
		return res, err
	}
	return article.ToDomain(), nil
}

func (m *articleRepository) Store(ctx context.Context, a *domain.Article) error {
	articleModel := model.NewArticleFromDomain(a)
	if err := m.DB.WithContext(ctx).Create(articleModel).Error; err != nil {
		return err
	}
	a.ID = articleModel.ID
	a.CreatedAt = articleModel.CreatedAt
	a.UpdatedAt = articleModel.UpdatedAt
	return nil
}

func (m *articleRepository) Update(ctx context.Context, a *domain.Article) error {
	result := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"title":        a.Title,
			"title_search": repository.SearchKey(a.Title),
			"content":      a.Content,
			"updated_at":   a.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *articleRepository) Delete(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&model.ArticleLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Article{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// ToggleLike removes the like if it exists and inserts it otherwise, then
// writes the recounted total back to the article row in the same transaction.
func (m *articleRepository) ToggleLike(ctx context.Context, like domain.UserLike) (domain.LikeResult, error) {
	var res domain.LikeResult
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&model.Article{}).Where("id = ?", like.ArticleID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return domain.ErrNotFound
		}

		removed := tx.Where("article_id = ? AND user_id = ?", like.ArticleID, like.UserID).
			Delete(&model.ArticleLike{})
		if removed.Error != nil {
			return removed.Error
		}

		if removed.RowsAffected == 0 {
			row := model.NewArticleLikeFromDomain(like)
			if row.CreatedAt.IsZero() {
				row.CreatedAt = time.Now()
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return err
			}
			res.Liked = true
		}

		if err := tx.Model(&model.ArticleLike{}).
			Where("article_id = ?", like.ArticleID).
			Count(&res.Count).Error; err != nil {
			return err
		}

		return tx.Model(&model.Article{}).
			Where("id = ?", like.ArticleID).
			UpdateColumn("likes", res.Count).Error
	})
	if err != nil {
		return domain.LikeResult{}, err
	}
	return res, nil
}

func (m *articleRepository) IsLiked(ctx context.Context, like domain.UserLike) (bool, error) {
	var n int64
	err := m.DB.WithContext(ctx).
		Model(&model.ArticleLike{}).
		Where("article_id = ? AND user_id = ?", like.ArticleID, like.UserID).
		Count(&n).Error
	return n > 0, err
}

func (m *articleRepository) FetchTopLiked(ctx context.Context, limit int) ([]domain.Article, error) {
	var res []model.Article
	err := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Order("likes DESC, id DESC").
		Limit(limit).
		Find(&res).Error
	if err != nil {
		return nil, err
	}
	ars := make([]domain.Article, len(res))
	for i := range res {
		ars[i] = res[i].ToDomain()
	}
	return ars, nil
}

type commentCount struct {
	ID           int64
	CommentCount int64
}

// FetchTopCommented aggregates comment counts per article (articles without
// comments count as zero) and loads the winning rows in rank order.
func (m *articleRepository) FetchTopCommented(ctx context.Context, limit int) ([]domain.Article, error) {
	var counts []commentCount
	err := m.DB.WithContext(ctx).
		Table("article").
		Select("article.id AS id, COUNT(comment.id) AS comment_count").
		Joins("LEFT JOIN comment ON comment.article_id = article.id").
		Group("article.id").
		Order("comment_count DESC, article.id DESC").
		Limit(limit).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return []domain.Article{}, nil
	}

	ids := make([]int64, len(counts))
	for i := range counts {
		ids[i] = counts[i].ID
	}
	var articles []model.Article
	if err := m.DB.WithContext(ctx).Where("id IN ?", ids).Find(&articles).Error; err != nil {
		return nil, err
	}
	byID := make(map[int64]model.Article, len(articles))
	for _, a := range articles {
		byID[a.ID] = a
	}

	res := make([]domain.Article, 0, len(counts))
	for _, c := range counts {
		a, ok := byID[c.ID]
		if !ok {
			// deleted between the two queries
			continue
		}
		ar := a.ToDomain()
		ar.Comments = c.CommentCount
		res = append(res, ar)
	}
	return res, nil
}

func (m *articleRepository) FetchIDs(ctx context.Context, cursor int64, limit int) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Where("id > ?", cursor).
		Order("id").
		Limit(limit).
		Pluck("id", &ids).Error
	return
}
