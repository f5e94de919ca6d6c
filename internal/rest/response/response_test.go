package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-textbook/anonboard/domain"
	"github.com/open-textbook/anonboard/internal/rest/response"
)

func TestArticleHidesAuthor(t *testing.T) {
	ar := domain.Article{
		ID:        1,
		Title:     "t",
		Content:   "c",
		User:      domain.User{ID: 9, Name: "secret name", Username: "secret"},
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	res := response.NewArticleFromDomain(&ar, 9)
	assert.True(t, res.IsAuthor)
	assert.Equal(t, "2024-01-02 03:04:05", res.CreatedAt)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")

	assert.False(t, response.NewArticleFromDomain(&ar, 0).IsAuthor)
}

func TestPageFromDomain(t *testing.T) {
	p := domain.NewPage(1, 0)
	p.Articles = []domain.Article{}

	res := response.NewPageFromDomain(&p, 0)
	assert.NotNil(t, res.Articles)
	assert.Equal(t, []int{1}, res.PageNumbers)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "prev_window")
	assert.Contains(t, string(data), `"articles":[]`)
}

func TestDetail(t *testing.T) {
	ar := domain.Article{ID: 1, User: domain.User{ID: 2}}
	comments := []domain.Comment{{ID: 1, UserID: 3}, {ID: 2, UserID: 4}}

	d := response.NewDetail(&ar, comments, true, 3)
	assert.False(t, d.Article.IsAuthor)
	assert.True(t, d.Liked)
	require.Len(t, d.Comments, 2)
	assert.True(t, d.Comments[0].IsAuthor)
	assert.False(t, d.Comments[1].IsAuthor)
}
