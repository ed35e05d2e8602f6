package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avc/studyhub-backend/internal/domain"
	domainmocks "github.com/avc/studyhub-backend/internal/domain/mocks"
	"github.com/avc/studyhub-backend/internal/repository/postgres"
	"github.com/avc/studyhub-backend/internal/utils/jwt"
	passwordmocks "github.com/avc/studyhub-backend/internal/utils/password/mocks"
)

func TestAuthService_Register(t *testing.T) {
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockHasher := passwordmocks.NewHasherMock(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(mockUserRepo, mockHasher, jwtManager)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		login := "testuser"
		pwd := "password123"
		passwordHash := "hashed_password"
		user := &domain.User{ID: 1, Login: login, PasswordHash: passwordHash, Role: domain.RoleMember}

		mockHasher.EXPECT().Hash(pwd).Return(passwordHash, nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, login, passwordHash, domain.RoleMember, "+15550001").Return(user, nil).Once()

		token, err := svc.Register(ctx, login, pwd, "+15550001")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Empty login", func(t *testing.T) {
		token, err := svc.Register(ctx, "", "password", "")
		assert.Error(t, err)
		assert.Empty(t, token)
		assert.Equal(t, domain.CodeInvalidArgument, domain.CodeOf(err))
	})

	t.Run("Empty password", func(t *testing.T) {
		token, err := svc.Register(ctx, "testuser", "", "")
		assert.Error(t, err)
		assert.Empty(t, token)
	})

	t.Run("Hash password error", func(t *testing.T) {
		login := "testuser"
		pwd := "password123"

		mockHasher.EXPECT().Hash(pwd).Return("", errors.New("hash error")).Once()

		token, err := svc.Register(ctx, login, pwd, "")
		assert.Error(t, err)
		assert.Empty(t, token)
	})

	t.Run("User already exists", func(t *testing.T) {
		login := "existinguser"
		pwd := "password123"
		passwordHash := "hashed_password"

		mockHasher.EXPECT().Hash(pwd).Return(passwordHash, nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, login, passwordHash, domain.RoleMember, "").Return(nil, postgres.ErrUserExists).Once()

		token, err := svc.Register(ctx, login, pwd, "")
		assert.ErrorIs(t, err, domain.ErrUserExists)
		assert.Empty(t, token)
	})

	t.Run("Database error", func(t *testing.T) {
		login := "testuser"
		pwd := "password123"
		passwordHash := "hashed_password"

		mockHasher.EXPECT().Hash(pwd).Return(passwordHash, nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, login, passwordHash, domain.RoleMember, "").Return(nil, errors.New("db error")).Once()

		token, err := svc.Register(ctx, login, pwd, "")
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}

func TestAuthService_Login(t *testing.T) {
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockHasher := passwordmocks.NewHasherMock(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(mockUserRepo, mockHasher, jwtManager)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		login := "testuser"
		pwd := "password123"
		passwordHash := "hashed_password"
		user := &domain.User{ID: 1, Login: login, PasswordHash: passwordHash, Role: domain.RoleMember}

		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, login).Return(user, nil).Once()
		mockHasher.EXPECT().Check(passwordHash, pwd).Return(nil).Once()

		token, err := svc.Login(ctx, login, pwd)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Empty login", func(t *testing.T) {
		token, err := svc.Login(ctx, "", "password")
		assert.Error(t, err)
		assert.Empty(t, token)
	})

	t.Run("User not found", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, "missing").Return(nil, postgres.ErrUserNotFound).Once()

		token, err := svc.Login(ctx, "missing", "password")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("Wrong password", func(t *testing.T) {
		login := "testuser"
		passwordHash := "hashed_password"
		user := &domain.User{ID: 1, Login: login, PasswordHash: passwordHash, Role: domain.RoleMember}

		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, login).Return(user, nil).Once()
		mockHasher.EXPECT().Check(passwordHash, "wrong").Return(errors.New("mismatch")).Once()

		token, err := svc.Login(ctx, login, "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("Database error", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, "testuser").Return(nil, errors.New("db error")).Once()

		token, err := svc.Login(ctx, "testuser", "password")
		assert.Error(t, err)
		assert.Empty(t, token)
	})

	t.Run("Token carries the user role", func(t *testing.T) {
		login := "operator"
		passwordHash := "hashed_password"
		user := &domain.User{ID: 7, Login: login, PasswordHash: passwordHash, Role: domain.RoleAdmin}

		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, login).Return(user, nil).Once()
		mockHasher.EXPECT().Check(passwordHash, "pwd").Return(nil).Once()

		token, err := svc.Login(ctx, login, "pwd")
		require.NoError(t, err)

		userID, role, err := jwtManager.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, int64(7), userID)
		assert.Equal(t, domain.RoleAdmin, role)
	})
}
