package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"leadgenie_backend/internal/auth/password"
	"leadgenie_backend/internal/auth/repository"
	"leadgenie_backend/internal/auth/token"
	"leadgenie_backend/internal/config"
	"leadgenie_backend/platform/apperr"
	"leadgenie_backend/platform/logger"
)

var (
	ErrInvalidCredentials = apperr.Unauthorized("invalid credentials")
	ErrTokenInvalid       = apperr.Unauthorized("token invalid")
	ErrTokenExpired       = apperr.Unauthorized("token expired")
	ErrEmailTaken         = apperr.Conflict("email already registered")
)

const refreshTokenSize = 32

type Service struct {
	repo *repository.Repository
	cfg  *config.Config
	log  *logger.Logger
}

func New(repo *repository.Repository, cfg *config.Config, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, log: log}
}

// TokenPair is the credential set returned to the client.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	User         repository.User
}

func (s *Service) SignUp(ctx context.Context, email, plainPassword, name string) (TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return TokenPair{}, err
	}

	user, err := s.repo.CreateUser(ctx, email, hash, name)
	if errors.Is(err, repository.ErrEmailTaken) {
		s.log.AuthEvent("signup", email, false, "email taken")
		return TokenPair{}, ErrEmailTaken
	}
	if err != nil {
		return TokenPair{}, err
	}

	s.log.AuthEvent("signup", email, true, "")
	return s.issueTokens(ctx, user)
}

func (s *Service) SignIn(ctx context.Context, email, plainPassword string) (TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		s.log.AuthEvent("signin", email, false, "unknown email")
		return TokenPair{}, ErrInvalidCredentials
	}

	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		s.log.AuthEvent("signin", email, false, "wrong password")
		return TokenPair{}, ErrInvalidCredentials
	}

	s.log.AuthEvent("signin", email, true, "")
	return s.issueTokens(ctx, user)
}

// Refresh rotates the refresh token: the presented token is revoked and a
// new pair is issued.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	hash := token.HashSHA256(refreshToken)
	userID, expiresAt, err := s.repo.GetRefreshToken(ctx, hash)
	if err != nil {
		return TokenPair{}, ErrTokenInvalid
	}

	if time.Now().After(expiresAt) {
		_ = s.repo.RevokeRefreshToken(ctx, hash)
		return TokenPair{}, ErrTokenExpired
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return TokenPair{}, ErrTokenInvalid
	}

	if err := s.repo.RevokeRefreshToken(ctx, hash); err != nil {
		return TokenPair{}, err
	}
	return s.issueTokens(ctx, user)
}

func (s *Service) SignOut(ctx context.Context, refreshToken string) error {
	return s.repo.RevokeRefreshToken(ctx, token.HashSHA256(refreshToken))
}

func (s *Service) issueTokens(ctx context.Context, user repository.User) (TokenPair, error) {
	access, err := token.NewAccessToken(s.cfg.JWTAccessSecret, user.ID, s.cfg.AccessTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := token.GenerateRandomToken(refreshTokenSize)
	if err != nil {
		return TokenPair{}, err
	}

	expiresAt := time.Now().Add(s.cfg.RefreshTokenTTL)
	if err := s.repo.CreateRefreshToken(ctx, user.ID, token.HashSHA256(refresh), expiresAt); err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh, User: user}, nil
}
