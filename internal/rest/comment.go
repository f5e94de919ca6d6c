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
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

// CreateComment adds a comment and returns to the article. An invalid body
// is dropped silently.
func (h *commentHandler) CreateComment(c *gin.Context) {
	aid, ok := articleID(c)
	if !ok {
		abortHTML(c, domain.ErrNotFound)
		return
	}

	var req request.Comment
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, detailPath(aid))
		return
	}

	comment := req.ToDomain(aid, middleware.UserID(c))
	err := h.Service.Create(c.Request.Context(), &comment)
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.Redirect(http.StatusFound, SigninPath)
	case errors.Is(err, domain.ErrBadParamInput):
		c.Redirect(http.StatusFound, detailPath(aid))
	case err != nil:
		abortHTML(c, err)
	default:
		c.Redirect(http.StatusFound, fmt.Sprintf("%s#comment-%d", detailPath(aid), comment.ID))
	}
}

// DeleteComment removes the comment when the viewer wrote it. Every other
// outcome except a server error just returns to the article.
func (h *commentHandler) DeleteComment(c *gin.Context) {
	aid, ok := articleID(c)
	if !ok {
		abortHTML(c, domain.ErrNotFound)
		return
	}
	cid, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, detailPath(aid))
		return
	}

	err = h.Service.Delete(c.Request.Context(), middleware.UserID(c), aid, cid)
	if err != nil && !errors.Is(err, domain.ErrForbidden) && !errors.Is(err, domain.ErrNotFound) {
		abortHTML(c, err)
		return
	}
	c.Redirect(http.StatusFound, detailPath(aid))
}
