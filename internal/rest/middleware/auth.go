package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"github.com/open-textbook/anonboard/domain"
)

const (
	// TokenCookie holds the signed session token.
	TokenCookie = "token"
	// ContextUserID is the gin context key of the signed-in user id.
	ContextUserID = "user_id"
)

// ParseToken verifies an HS256 token and returns the user id it was issued for.
func ParseToken(secret, tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, domain.ErrUnauthorized
	}

	uid, ok := claims[domain.ClaimUserID].(float64)
	if !ok || uid <= 0 {
		return 0, errors.New("token has no user id")
	}
	return int64(uid), nil
}

func tokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if after, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(after)
		}
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}

// Authenticate stores the user id of a valid token in the context and lets
// every request through. Anonymous requests simply carry no user id.
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s := tokenFromRequest(c); s != "" {
			if uid, err := ParseToken(secret, s); err == nil {
				c.Set(ContextUserID, uid)
			}
		}
		c.Next()
	}
}

// AuthMiddleware rejects requests without a valid token with 401.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) == 0 {
			s := tokenFromRequest(c)
			uid, err := ParseToken(secret, s)
			if s == "" || err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": domain.ErrUnauthorized.Error()})
				return
			}
			c.Set(ContextUserID, uid)
		}
		c.Next()
	}
}

// LoginRequired sends anonymous visitors to signinPath, remembering where
// they came from. It relies on Authenticate running first.
func LoginRequired(signinPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) == 0 {
			next := c.Request.URL.Path
			if c.Request.Method != http.MethodGet {
				next = c.GetHeader("Referer")
				if u, err := url.Parse(next); err == nil {
					next = u.Path
				}
			}
			c.Redirect(http.StatusFound, signinPath+"?next="+url.QueryEscape(next))
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the signed-in user id, 0 for anonymous requests.
func UserID(c *gin.Context) int64 {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0
	}
	uid, _ := v.(int64)
	return uid
}
