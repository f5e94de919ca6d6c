package rest

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/open-textbook/anonboard/domain"
	"github.com/open-textbook/anonboard/internal/rest/middleware"
	"github.com/open-textbook/anonboard/internal/rest/request"
)

type UserHandler struct {
	Service      domain.UserUsecase
	TokenTTL     time.Duration
	SecureCookie bool
}

func NewUserHandler(svc domain.UserUsecase, tokenTTL time.Duration, secureCookie bool) *UserHandler {
	return &UserHandler{
		Service:      svc,
		TokenTTL:     tokenTTL,
		SecureCookie: secureCookie,
	}
}

// safeNext only allows local absolute paths as post-login targets.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return BoardPath
	}
	return next
}

func (h *UserHandler) setToken(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", h.SecureCookie, true)
}

func (h *UserHandler) SignUpForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{"Title": "Sign up"})
}

// SignUp creates the account and signs the new user in.
func (h *UserHandler) SignUp(c *gin.Context) {
	var req request.SignUp
	if err := c.ShouldBind(&req); err != nil {
		h.signUpError(c, http.StatusBadRequest, req, "Username is required and passwords must match (6 characters or more).")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Service.Register(ctx, req.Name, req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			h.signUpError(c, http.StatusConflict, req, "That username is taken.")
		case errors.Is(err, domain.ErrBadParamInput):
			h.signUpError(c, http.StatusBadRequest, req, "Username is required and passwords must match (6 characters or more).")
		default:
			abortHTML(c, err)
		}
		return
	}

	token, err := h.Service.Login(ctx, req.Username, req.Password)
	if err != nil {
		abortHTML(c, err)
		return
	}
	h.setToken(c, token, int(h.TokenTTL.Seconds()))
	c.Redirect(http.StatusFound, BoardPath)
}

func (h *UserHandler) signUpError(c *gin.Context, status int, req request.SignUp, msg string) {
	c.HTML(status, "signup.html", gin.H{
		"Title":    "Sign up",
		"Name":     req.Name,
		"Username": req.Username,
		"Error":    msg,
	})
}

func (h *UserHandler) SignInForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signin.html", gin.H{
		"Title": "Sign in",
		"Next":  safeNext(c.Query("next")),
	})
}

func (h *UserHandler) SignIn(c *gin.Context) {
	var req request.SignIn
	if err := c.ShouldBind(&req); err != nil {
		h.signInError(c, http.StatusBadRequest, req)
		return
	}

	token, err := h.Service.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, domain.ErrUnauthorized) {
		h.signInError(c, http.StatusUnauthorized, req)
		return
	} else if err != nil {
		abortHTML(c, err)
		return
	}

	h.setToken(c, token, int(h.TokenTTL.Seconds()))
	c.Redirect(http.StatusFound, safeNext(req.Next))
}

func (h *UserHandler) signInError(c *gin.Context, status int, req request.SignIn) {
	c.HTML(status, "signin.html", gin.H{
		"Title":    "Sign in",
		"Username": req.Username,
		"Next":     safeNext(req.Next),
		"Error":    "Wrong username or password.",
	})
}

func (h *UserHandler) SignOut(c *gin.Context) {
	h.setToken(c, "", -1)
	c.Redirect(http.StatusFound, BoardPath)
}
