package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/open-textbook/anonboard/domain"
	"github.com/open-textbook/anonboard/domain/mocks"
	"github.com/open-textbook/anonboard/internal/usecase/user"
)

var secret = []byte("test-secret")

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		username := faker.Username()
		repo.On("GetByUsername", mock.Anything, username).Return(domain.User{}, domain.ErrNotFound).Once()
		repo.On("Insert", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == username && bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")) == nil
		})).Run(func(args mock.Arguments) { args.Get(1).(*domain.User).ID = 10 }).Return(nil).Once()

		u, err := user.NewService(repo, secret, time.Hour).Register(context.TODO(), "", username, "secret1")
		require.NoError(t, err)
		assert.Equal(t, int64(10), u.ID)
		assert.Equal(t, username, u.Name)
		assert.Empty(t, u.Password)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("GetByUsername", mock.Anything, "taken").Return(domain.User{ID: 1}, nil).Once()

		_, err := user.NewService(repo, secret, time.Hour).Register(context.TODO(), "n", "taken", "secret1")
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("short password", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		_, err := user.NewService(repo, secret, time.Hour).Register(context.TODO(), "n", "u", "12345")
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})
}

func TestLogin(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("GetByUsername", mock.Anything, "alice").Return(domain.User{ID: 3, Username: "alice", Password: hashed(t, "secret1")}, nil)
	repo.On("GetByUsername", mock.Anything, "bob").Return(domain.User{}, domain.ErrNotFound)
	svc := user.NewService(repo, secret, time.Hour)

	token, err := svc.Login(context.TODO(), "alice", "secret1")
	require.NoError(t, err)
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) { return secret, nil })
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(3), claims[domain.ClaimUserID])

	_, err = svc.Login(context.TODO(), "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Login(context.TODO(), "bob", "secret1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestEditPassword(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("GetByID", mock.Anything, int64(3)).Return(domain.User{ID: 3, Password: hashed(t, "secret1")}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once()
	svc := user.NewService(repo, secret, time.Hour)

	assert.ErrorIs(t, svc.EditPassword(context.TODO(), 3, "nope", "secret2"), domain.ErrUnauthorized)
	require.NoError(t, svc.EditPassword(context.TODO(), 3, "secret1", "secret2"))
	repo.AssertExpectations(t)
}

func TestSetPassword(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("GetByUsername", mock.Anything, "alice").Return(domain.User{ID: 3}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("brand-new")) == nil
	})).Return(nil).Once()
	svc := user.NewService(repo, secret, time.Hour)

	assert.ErrorIs(t, svc.SetPassword(context.TODO(), "alice", "123"), domain.ErrBadParamInput)
	require.NoError(t, svc.SetPassword(context.TODO(), "alice", "brand-new"))
	repo.AssertExpectations(t)
}
