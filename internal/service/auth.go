package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/avc/studyhub-backend/internal/repository/postgres"
	"github.com/avc/studyhub-backend/internal/utils/jwt"
	"github.com/avc/studyhub-backend/internal/utils/password"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo       domain.UserRepository
	passwordHasher password.Hasher
	jwtManager     *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo domain.UserRepository,
	passwordHasher password.Hasher,
	jwtManager *jwt.Manager,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
	}
}

// Register creates a member account and returns a signed token
func (s *AuthService) Register(ctx context.Context, login, userPassword, phone string) (string, error) {
	if login == "" || userPassword == "" {
		return "", domain.E(domain.CodeInvalidArgument, "login and password are required")
	}

	hash, err := s.passwordHasher.Hash(userPassword)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to hash password for user %q: %w", login, err)
	}

	user, err := s.userRepo.CreateUser(ctx, login, hash, domain.RoleMember, phone)
	if err != nil {
		if errors.Is(err, postgres.ErrUserExists) {
			return "", domain.ErrUserExists
		}
		return "", fmt.Errorf("auth service: failed to register user %q: %w", login, err)
	}

	token, err := s.jwtManager.Generate(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for user %d: %w", user.ID, err)
	}

	return token, nil
}

// Login authenticates a user and returns a signed token
func (s *AuthService) Login(ctx context.Context, login, userPassword string) (string, error) {
	if login == "" || userPassword == "" {
		return "", domain.E(domain.CodeInvalidArgument, "login and password are required")
	}

	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, postgres.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth service: failed to get user %q: %w", login, err)
	}

	if err := s.passwordHasher.Check(user.PasswordHash, userPassword); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for user %d: %w", user.ID, err)
	}

	return token, nil
}
