package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/open-textbook/anonboard/domain"
	"github.com/open-textbook/anonboard/internal/rest/middleware"
	"github.com/open-textbook/anonboard/internal/rest/response"
)

// getStatusCode will get the code of the error from the usecases
func getStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage hides unexpected errors from clients.
func publicMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return domain.ErrInternalServerError.Error()
	}
	return err.Error()
}

func abortJSON(c *gin.Context, err error) {
	status := getStatusCode(err)
	if status >= http.StatusInternalServerError {
		middleware.Logger(c).Error(err)
	}
	c.AbortWithStatusJSON(status, response.ResponseError{Message: publicMessage(err, status)})
}

func abortHTML(c *gin.Context, err error) {
	status := getStatusCode(err)
	if status >= http.StatusInternalServerError {
		middleware.Logger(c).Error(err)
	}
	c.HTML(status, "error.html", gin.H{
		"Title":    http.StatusText(status),
		"Status":   status,
		"Message":  publicMessage(err, status),
		"SignedIn": middleware.UserID(c) != 0,
	})
	c.Abort()
}
