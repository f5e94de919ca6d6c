package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"

	"github.com/open-textbook/anonboard/domain"
)

type Service struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
	jwtTTL    time.Duration
}

var _ domain.UserUsecase = (*Service)(nil)

func NewService(u domain.UserRepository, jwtSecret []byte, jwtTTL time.Duration) *Service {
	return &Service{
		userRepo:  u,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

func validPassword(password string) bool {
	return len(password) >= domain.MinPasswordLength
}

func (s *Service) Register(ctx context.Context, name, username, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	username = strings.TrimSpace(username)
	if username == "" || !validPassword(password) {
		return domain.User{}, domain.ErrBadParamInput
	}
	if name == "" {
		name = username
	}

	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return domain.User{}, domain.ErrConflict
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now()
	u := domain.User{
		Name:      name,
		Username:  username,
		Password:  string(hashed),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userRepo.Insert(ctx, &u); err != nil {
		return domain.User{}, err
	}
	u.Password = ""
	return u, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrUnauthorized
	} else if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}
	return s.generateToken(u.ID)
}

func (s *Service) EditPassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	return s.storePassword(ctx, &u, newPassword)
}

func (s *Service) SetPassword(ctx context.Context, username, newPassword string) error {
	u, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return err
	}
	return s.storePassword(ctx, &u, newPassword)
}

func (s *Service) storePassword(ctx context.Context, u *domain.User, password string) error {
	if !validPassword(password) {
		return domain.ErrBadParamInput
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	u.UpdatedAt = time.Now()
	return s.userRepo.Update(ctx, u)
}

func (s *Service) generateToken(uid int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		domain.ClaimUserID: uid,
		"iat":              now.Unix(),
		"exp":              now.Add(s.jwtTTL).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}
