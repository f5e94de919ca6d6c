package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/open-textbook/anonboard/domain"
	"github.com/open-textbook/anonboard/internal/rest/middleware"
	"github.com/open-textbook/anonboard/internal/rest/request"
	"github.com/open-textbook/anonboard/internal/rest/response"
)

const (
	BoardPath  = "/anonymouses/"
	SigninPath = "/accounts/signin"
)

// ArticleHandler  represent the httphandler for article
type ArticleHandler struct {
	Service  domain.ArticleUsecase
	Comments domain.CommentUsecase
}

func NewArticleHandler(svc domain.ArticleUsecase, comments domain.CommentUsecase) *ArticleHandler {
	return &ArticleHandler{
		Service:  svc,
		Comments: comments,
	}
}

func detailPath(id int64) string {
	return fmt.Sprintf("%s%d", BoardPath, id)
}

func articleID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

// pageNumber falls back to 1 for a missing or malformed page parameter.
func pageNumber(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// render adds the sidebar ranks and the viewer state to data. A rank failure
// is logged and renders an empty sidebar.
func (a *ArticleHandler) render(c *gin.Context, status int, name string, data gin.H) {
	uid := middleware.UserID(c)
	ranks, err := a.Service.Ranks(c.Request.Context())
	if err != nil {
		middleware.Logger(c).Warnf("failed to load ranks: %v", err)
	}
	data["Ranks"] = response.NewRanksFromDomain(&ranks, uid)
	data["SignedIn"] = uid != 0
	c.HTML(status, name, data)
}

// Index lists the board with keyword search and pagination.
func (a *ArticleHandler) Index(c *gin.Context) {
	page, err := a.Service.List(c.Request.Context(), c.Query("keyword"), pageNumber(c))
	if err != nil {
		abortHTML(c, err)
		return
	}
	a.render(c, http.StatusOK, "index.html", gin.H{
		"Page": response.NewPageFromDomain(&page, middleware.UserID(c)),
	})
}

func (a *ArticleHandler) CreateForm(c *gin.Context) {
	a.render(c, http.StatusOK, "create.html", gin.H{
		"Title": "New article",
		"Form":  request.Article{},
	})
}

// Create stores the article and redirects to it. An invalid form is shown
// again with the submitted values.
func (a *ArticleHandler) Create(c *gin.Context) {
	var req request.Article
	if err := c.ShouldBind(&req); err != nil {
		a.render(c, http.StatusBadRequest, "create.html", gin.H{
			"Title": "New article",
			"Form":  req,
			"Error": "Title (up to 100 characters) and content are required.",
		})
		return
	}

	ar := req.ToDomain()
	ar.User.ID = middleware.UserID(c)
	err := a.Service.Store(c.Request.Context(), &ar)
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.Redirect(http.StatusFound, SigninPath)
		return
	case errors.Is(err, domain.ErrBadParamInput):
		a.render(c, http.StatusBadRequest, "create.html", gin.H{
			"Title": "New article",
			"Form":  req,
			"Error": "Title (up to 100 characters) and content are required.",
		})
		return
	case err != nil:
		abortHTML(c, err)
		return
	}

	c.Redirect(http.StatusFound, detailPath(ar.ID))
}

func (a *ArticleHandler) detail(c *gin.Context, id int64) (response.Detail, error) {
	ctx := c.Request.Context()
	uid := middleware.UserID(c)

	ar, err := a.Service.GetByID(ctx, id)
	if err != nil {
		return response.Detail{}, err
	}
	comments, err := a.Comments.FetchByArticle(ctx, id)
	if err != nil {
		return response.Detail{}, err
	}
	liked, err := a.Service.IsLiked(ctx, domain.UserLike{ArticleID: id, UserID: uid})
	if err != nil {
		return response.Detail{}, err
	}
	return response.NewDetail(&ar, comments, liked, uid), nil
}

// Detail shows one article with its comments.
func (a *ArticleHandler) Detail(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		abortHTML(c, domain.ErrNotFound)
		return
	}
	d, err := a.detail(c, id)
	if err != nil {
		abortHTML(c, err)
		return
	}
	a.render(c, http.StatusOK, "detail.html", gin.H{
		"Title":  d.Article.Title,
		"Detail": d,
	})
}

// UpdateForm is only shown to the author; everyone else goes back to the board.
func (a *ArticleHandler) UpdateForm(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		abortHTML(c, domain.ErrNotFound)
		return
	}
	ar, err := a.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		abortHTML(c, err)
		return
	}
	if !ar.IsAuthor(middleware.UserID(c)) {
		c.Redirect(http.StatusFound, BoardPath)
		return
	}
	a.render(c, http.StatusOK, "update.html", gin.H{
		"Title": "Edit article",
		"ID":    id,
		"Form":  request.NewArticleFromDomain(&ar),
	})
}

// Update serves both the form submit and PUT. Non-authors are redirected to
// the board without any change.
func (a *ArticleHandler) Update(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		abortHTML(c, domain.ErrNotFound)
		return
	}

	var req request.Article
	bindErr := c.ShouldBind(&req)
	ar := req.ToDomain()
	ar.ID = id

	var err error
	if bindErr != nil {
		err = a.checkAuthor(c, id)
		if err == nil {
			err = domain.ErrBadParamInput
		}
	} else {
		err = a.Service.Update(c.Request.Context(), middleware.UserID(c), &ar)
	}

	switch {
	case errors.Is(err, domain.ErrForbidden):
		c.Redirect(http.StatusFound, BoardPath)
	case errors.Is(err, domain.ErrBadParamInput):
		a.render(c, http.StatusBadRequest, "update.html", gin.H{
			"Title": "Edit article",
			"ID":    id,
			"Form":  req,
			"Error": "Title (up to 100 characters) and content are required.",
		})
	case err != nil:
		abortHTML(c, err)
	default:
		c.Redirect(http.StatusFound, detailPath(id))
	}
}

func (a *ArticleHandler) checkAuthor(c *gin.Context, id int64) error {
	ar, err := a.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		return err
	}
	if !ar.IsAuthor(middleware.UserID(c)) {
		return domain.ErrForbidden
	}
	return nil
}

// Delete removes the article when the viewer wrote it, otherwise goes back
// to the detail page.
func (a *ArticleHandler) Delete(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		abortHTML(c, domain.ErrNotFound)
		return
	}

	err := a.Service.Delete(c.Request.Context(), middleware.UserID(c), id)
	switch {
	case errors.Is(err, domain.ErrForbidden):
		c.Redirect(http.StatusFound, detailPath(id))
	case err != nil:
		abortHTML(c, err)
	default:
		c.Redirect(http.StatusFound, BoardPath)
	}
}

// Like toggles the viewer's like and reports the new state.
func (a *ArticleHandler) Like(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		abortJSON(c, domain.ErrNotFound)
		return
	}
	uid := middleware.UserID(c)
	if uid == 0 {
		abortJSON(c, domain.ErrUnauthorized)
		return
	}

	res, err := a.Service.ToggleLike(c.Request.Context(), domain.UserLike{
		ArticleID: id,
		UserID:    uid,
	})
	if err != nil {
		abortJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// FetchArticle is the JSON rendition of Index.
func (a *ArticleHandler) FetchArticle(c *gin.Context) {
	page, err := a.Service.List(c.Request.Context(), c.Query("keyword"), pageNumber(c))
	if err != nil {
		abortJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPageFromDomain(&page, middleware.UserID(c)))
}

func (a *ArticleHandler) FetchRank(c *gin.Context) {
	ranks, err := a.Service.Ranks(c.Request.Context())
	if err != nil {
		abortJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewRanksFromDomain(&ranks, middleware.UserID(c)))
}

// GetByID will get article by given id
func (a *ArticleHandler) GetByID(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		abortJSON(c, domain.ErrNotFound)
		return
	}
	d, err := a.detail(c, id)
	if err != nil {
		abortJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
