package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-textbook/anonboard/domain"
)

func TestCommentRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()
	a := seedArticle(t, db, "thread", 1, time.Now())

	first := domain.Comment{ArticleID: a.ID, UserID: 2, Content: "first"}
	require.NoError(t, repo.Store(ctx, &first))
	require.NotZero(t, first.ID)
	second := domain.Comment{ArticleID: a.ID, UserID: 3, Content: "second"}
	require.NoError(t, repo.Store(ctx, &second))

	list, err := repo.FetchByArticle(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Content)
	assert.Equal(t, "second", list[1].Content)

	got, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.UserID)

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), domain.ErrNotFound)
}
