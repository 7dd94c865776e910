package service

import (
	"context"
	"errors"

	"equiptrack-backend/internal/config"
	"equiptrack-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type authService struct {
	admin        config.AdminConfig
	tokenManager security.TokenManager
}

func NewAuthService(admin config.AdminConfig, tokenManager security.TokenManager) AuthService {
	return &authService{admin: admin, tokenManager: tokenManager}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if email != s.admin.Email {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokenManager.GenerateAccessToken(1, email)
}
