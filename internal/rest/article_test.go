package rest_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/open-textbook/anonboard/domain"
	"github.com/open-textbook/anonboard/domain/mocks"
	"github.com/open-textbook/anonboard/internal/rest"
	"github.com/open-textbook/anonboard/internal/rest/response"
)

type articleFixture struct {
	articles *mocks.ArticleUsecase
	comments *mocks.CommentUsecase
	router   *gin.Engine
}

func newArticleFixture(t *testing.T, uid int64) *articleFixture {
	f := &articleFixture{
		articles: new(mocks.ArticleUsecase),
		comments: new(mocks.CommentUsecase),
		router:   newRouter(t, uid),
	}
	h := rest.NewArticleHandler(f.articles, f.comments)
	f.articles.On("Ranks", mock.Anything).Return(domain.Ranks{
		Liked: []domain.Article{{ID: 77, Title: "liked-rank", Likes: 9}},
	}, nil).Maybe()

	board := f.router.Group("/anonymouses")
	board.GET("/", h.Index)
	board.GET("/create", h.CreateForm)
	board.POST("/create", h.Create)
	board.GET("/:id", h.Detail)
	board.PUT("/:id", h.Update)
	board.GET("/:id/update", h.UpdateForm)
	board.POST("/:id/update", h.Update)
	board.POST("/:id/delete", h.Delete)
	board.POST("/:id/like", h.Like)

	api := f.router.Group("/api/anonymouses")
	api.GET("", h.FetchArticle)
	api.GET("/ranks", h.FetchRank)
	api.GET("/:id", h.GetByID)
	return f
}

func samplePage(number int, total int64, ars ...domain.Article) domain.Page {
	p := domain.NewPage(number, total)
	p.Articles = ars
	return p
}

func TestIndex(t *testing.T) {
	f := newArticleFixture(t, 0)
	page := samplePage(1, 1, domain.Article{ID: 1, Title: "first post", CreatedAt: time.Now()})
	f.articles.On("List", mock.Anything, "first", 1).Return(page, nil).Once()

	rec := serve(f.router, http.MethodGet, "/anonymouses/?keyword=first&page=abc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "first post")
	assert.Contains(t, body, "liked-rank")
	f.articles.AssertExpectations(t)
}

func TestIndexNegativePage(t *testing.T) {
	f := newArticleFixture(t, 0)
	f.articles.On("List", mock.Anything, "", 1).Return(samplePage(1, 0), nil).Once()

	rec := serve(f.router, http.MethodGet, "/anonymouses/?page=-4", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No articles.")
}

func TestFetchArticleJSON(t *testing.T) {
	f := newArticleFixture(t, 5)
	page := samplePage(30, 250)
	page.Articles = []domain.Article{}
	f.articles.On("List", mock.Anything, "", 30).Return(page, nil).Once()

	rec := serve(f.router, http.MethodGet, "/api/anonymouses?page=30", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res response.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Empty(t, res.Articles)
	assert.Equal(t, 13, res.TotalPages)
	assert.Equal(t, 10, res.PrevWindow)
}

func TestFetchRankJSON(t *testing.T) {
	f := newArticleFixture(t, 0)
	rec := serve(f.router, http.MethodGet, "/api/anonymouses/ranks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"liked-rank"`)
	assert.Contains(t, rec.Body.String(), `"commented":[]`)
}

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newArticleFixture(t, 4)
		f.articles.On("Store", mock.Anything, mock.MatchedBy(func(ar *domain.Article) bool {
			return ar.Title == "hello" && ar.User.ID == 4
		})).Run(func(args mock.Arguments) { args.Get(1).(*domain.Article).ID = 10 }).Return(nil).Once()

		rec := serve(f.router, http.MethodPost, "/anonymouses/create", url.Values{"title": {"hello"}, "content": {"world"}})
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/anonymouses/10", rec.Header().Get("Location"))
	})

	t.Run("invalid form is shown again", func(t *testing.T) {
		f := newArticleFixture(t, 4)
		rec := serve(f.router, http.MethodPost, "/anonymouses/create", url.Values{"title": {"  "}, "content": {"kept body"}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "kept body")
		f.articles.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})

	t.Run("title too long", func(t *testing.T) {
		f := newArticleFixture(t, 4)
		rec := serve(f.router, http.MethodPost, "/anonymouses/create", url.Values{"title": {strings.Repeat("가", 101)}, "content": {"c"}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		f := newArticleFixture(t, 0)
		f.articles.On("Store", mock.Anything, mock.Anything).Return(domain.ErrUnauthorized).Once()

		rec := serve(f.router, http.MethodPost, "/anonymouses/create", url.Values{"title": {"t"}, "content": {"c"}})
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/accounts/signin", rec.Header().Get("Location"))
	})
}

func TestDetail(t *testing.T) {
	ar := domain.Article{ID: 3, Title: "detail title", Content: "body", User: domain.User{ID: 4, Name: "hidden-author"}, Likes: 2}

	t.Run("author sees controls", func(t *testing.T) {
		f := newArticleFixture(t, 4)
		f.articles.On("GetByID", mock.Anything, int64(3)).Return(ar, nil).Once()
		f.comments.On("FetchByArticle", mock.Anything, int64(3)).Return([]domain.Comment{{ID: 1, ArticleID: 3, UserID: 9, Content: "a comment"}}, nil).Once()
		f.articles.On("IsLiked", mock.Anything, domain.UserLike{ArticleID: 3, UserID: 4}).Return(true, nil).Once()

		rec := serve(f.router, http.MethodGet, "/anonymouses/3", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "detail title")
		assert.Contains(t, body, "a comment")
		assert.Contains(t, body, "/anonymouses/3/delete")
		assert.Contains(t, body, "Unlike")
		assert.NotContains(t, body, "hidden-author")
		assert.NotContains(t, body, "/comments/1/delete")
	})

	t.Run("missing", func(t *testing.T) {
		f := newArticleFixture(t, 0)
		f.articles.On("GetByID", mock.Anything, int64(8)).Return(domain.Article{}, domain.ErrNotFound).Once()

		rec := serve(f.router, http.MethodGet, "/anonymouses/8", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("not a number", func(t *testing.T) {
		f := newArticleFixture(t, 0)
		rec := serve(f.router, http.MethodGet, "/anonymouses/abc", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("json", func(t *testing.T) {
		f := newArticleFixture(t, 0)
		f.articles.On("GetByID", mock.Anything, int64(3)).Return(ar, nil).Once()
		f.comments.On("FetchByArticle", mock.Anything, int64(3)).Return([]domain.Comment{}, nil).Once()
		f.articles.On("IsLiked", mock.Anything, domain.UserLike{ArticleID: 3}).Return(false, nil).Once()

		rec := serve(f.router, http.MethodGet, "/api/anonymouses/3", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var d response.Detail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
		assert.False(t, d.Article.IsAuthor)
		assert.Equal(t, int64(2), d.Article.Likes)
	})
}

func TestUpdateForm(t *testing.T) {
	ar := domain.Article{ID: 3, Title: "old title", Content: "old body", User: domain.User{ID: 4}}

	f := newArticleFixture(t, 4)
	f.articles.On("GetByID", mock.Anything, int64(3)).Return(ar, nil).Once()
	rec := serve(f.router, http.MethodGet, "/anonymouses/3/update", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "old title")

	other := newArticleFixture(t, 5)
	other.articles.On("GetByID", mock.Anything, int64(3)).Return(ar, nil).Once()
	rec = serve(other.router, http.MethodGet, "/anonymouses/3/update", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/anonymouses/", rec.Header().Get("Location"))
}

func TestUpdate(t *testing.T) {
	t.Run("author via form", func(t *testing.T) {
		f := newArticleFixture(t, 4)
		f.articles.On("Update", mock.Anything, int64(4), mock.MatchedBy(func(ar *domain.Article) bool {
			return ar.ID == 3 && ar.Title == "new"
		})).Return(nil).Once()

		rec := serve(f.router, http.MethodPost, "/anonymouses/3/update", url.Values{"title": {"new"}, "content": {"body"}})
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/anonymouses/3", rec.Header().Get("Location"))
	})

	t.Run("author via PUT json", func(t *testing.T) {
		f := newArticleFixture(t, 4)
		f.articles.On("Update", mock.Anything, int64(4), mock.Anything).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/anonymouses/3", strings.NewReader(`{"title":"new","content":"body"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusFound, rec.Code)
		f.articles.AssertExpectations(t)
	})

	t.Run("someone else", func(t *testing.T) {
		f := newArticleFixture(t, 5)
		f.articles.On("Update", mock.Anything, int64(5), mock.Anything).Return(domain.ErrForbidden).Once()

		rec := serve(f.router, http.MethodPut, "/anonymouses/3", url.Values{"title": {"new"}, "content": {"body"}})
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/anonymouses/", rec.Header().Get("Location"))
	})

	t.Run("invalid form by someone else", func(t *testing.T) {
		f := newArticleFixture(t, 5)
		f.articles.On("GetByID", mock.Anything, int64(3)).Return(domain.Article{ID: 3, User: domain.User{ID: 4}}, nil).Once()

		rec := serve(f.router, http.MethodPost, "/anonymouses/3/update", url.Values{"title": {""}})
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/anonymouses/", rec.Header().Get("Location"))
	})

	t.Run("invalid form by author", func(t *testing.T) {
		f := newArticleFixture(t, 4)
		f.articles.On("GetByID", mock.Anything, int64(3)).Return(domain.Article{ID: 3, User: domain.User{ID: 4}}, nil).Once()

		rec := serve(f.router, http.MethodPost, "/anonymouses/3/update", url.Values{"title": {""}, "content": {"draft"}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "draft")
	})
}

func TestDelete(t *testing.T) {
	t.Run("author", func(t *testing.T) {
		f := newArticleFixture(t, 4)
		f.articles.On("Delete", mock.Anything, int64(4), int64(3)).Return(nil).Once()

		rec := serve(f.router, http.MethodPost, "/anonymouses/3/delete", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/anonymouses/", rec.Header().Get("Location"))
	})

	t.Run("someone else", func(t *testing.T) {
		f := newArticleFixture(t, 0)
		f.articles.On("Delete", mock.Anything, int64(0), int64(3)).Return(domain.ErrForbidden).Once()

		rec := serve(f.router, http.MethodPost, "/anonymouses/3/delete", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/anonymouses/3", rec.Header().Get("Location"))
	})

	t.Run("server error", func(t *testing.T) {
		f := newArticleFixture(t, 4)
		f.articles.On("Delete", mock.Anything, int64(4), int64(3)).Return(errors.New("db gone")).Once()

		rec := serve(f.router, http.MethodPost, "/anonymouses/3/delete", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "db gone")
	})
}

func TestLike(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		f := newArticleFixture(t, 0)
		rec := serve(f.router, http.MethodPost, "/anonymouses/3/like", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		f.articles.AssertNotCalled(t, "ToggleLike", mock.Anything, mock.Anything)
	})

	t.Run("toggle", func(t *testing.T) {
		f := newArticleFixture(t, 4)
		f.articles.On("ToggleLike", mock.Anything, domain.UserLike{ArticleID: 3, UserID: 4}).
			Return(domain.LikeResult{Liked: true, Count: 7}, nil).Once()

		rec := serve(f.router, http.MethodPost, "/anonymouses/3/like", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"liked":true,"count":7}`, rec.Body.String())
	})

	t.Run("missing article", func(t *testing.T) {
		f := newArticleFixture(t, 4)
		f.articles.On("ToggleLike", mock.Anything, mock.Anything).Return(domain.LikeResult{}, domain.ErrNotFound).Once()

		rec := serve(f.router, http.MethodPost, "/anonymouses/3/like", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
