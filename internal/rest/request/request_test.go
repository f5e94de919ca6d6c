package request_test

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"

	"github.com/open-textbook/anonboard/internal/rest/request"
)

func TestArticleValidation(t *testing.T) {
	request.RegisterValidators()

	tests := []struct {
		name  string
		req   request.Article
		valid bool
	}{
		{"ok", request.Article{Title: "t", Content: "c"}, true},
		{"blank title", request.Article{Title: "   ", Content: "c"}, false},
		{"blank content", request.Article{Title: "t", Content: "\n\t"}, false},
		{"100 hangul characters", request.Article{Title: strings.Repeat("가", 100), Content: "c"}, true},
		{"101 characters", request.Article{Title: strings.Repeat("a", 101), Content: "c"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCommentValidation(t *testing.T) {
	request.RegisterValidators()

	assert.NoError(t, binding.Validator.ValidateStruct(&request.Comment{Content: "hi"}))
	assert.Error(t, binding.Validator.ValidateStruct(&request.Comment{Content: " "}))
	assert.Error(t, binding.Validator.ValidateStruct(&request.Comment{Content: strings.Repeat("x", 501)}))

	c := request.Comment{Content: "hi"}
	d := c.ToDomain(3, 4)
	assert.Equal(t, int64(3), d.ArticleID)
	assert.Equal(t, int64(4), d.UserID)
}

func TestSignUpValidation(t *testing.T) {
	request.RegisterValidators()

	ok := request.SignUp{Username: "u", Password: "secret1", PasswordConfirm: "secret1"}
	assert.NoError(t, binding.Validator.ValidateStruct(&ok))

	mismatch := ok
	mismatch.PasswordConfirm = "other"
	assert.Error(t, binding.Validator.ValidateStruct(&mismatch))

	short := request.SignUp{Username: "u", Password: "12345", PasswordConfirm: "12345"}
	assert.Error(t, binding.Validator.ValidateStruct(&short))
}
