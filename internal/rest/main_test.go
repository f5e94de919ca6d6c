package rest_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/open-textbook/anonboard/internal/rest/middleware"
	"github.com/open-textbook/anonboard/internal/rest/request"
	"github.com/open-textbook/anonboard/internal/rest/templates"
)

func init() {
	gin.SetMode(gin.TestMode)
	request.RegisterValidators()
}

// newRouter returns an engine with the pages loaded that acts as user uid
// (0 for anonymous).
func newRouter(t *testing.T, uid int64) *gin.Engine {
	t.Helper()
	tmpl, err := templates.Parse()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(func(c *gin.Context) {
		if uid != 0 {
			c.Set(middleware.ContextUserID, uid)
		}
		c.Next()
	})
	return r
}

func serve(r http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
