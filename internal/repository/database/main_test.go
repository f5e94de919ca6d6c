package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/open-textbook/anonboard/internal/repository/database/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func seedArticle(t *testing.T, db *gorm.DB, title string, userID int64, createdAt time.Time) model.Article {
	t.Helper()
	a := model.Article{
		Title:     title,
		Content:   "content of " + title,
		UserID:    userID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func seedComments(t *testing.T, db *gorm.DB, articleID int64, n int) {
	t.Helper()
	for i := range n {
		require.NoError(t, db.Create(&model.Comment{
			ArticleID: articleID,
			UserID:    int64(i + 1),
			Content:   "hi",
			CreatedAt: time.Now(),
		}).Error)
	}
}
