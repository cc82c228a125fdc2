package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tnmai/schoolhub-api/internal/config"
	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/repository"
)

type mockUserRepo struct {
	repository.UserRepository
	mockFindByEmail func(ctx context.Context, email string) (*models.User, error)
	mockFindByID    func(ctx context.Context, id uint) (*models.User, error)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.mockFindByEmail(ctx, email)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return m.mockFindByID(ctx, id)
}

type mockRefreshTokenRepo struct {
	repository.RefreshTokenRepository
	mockFindByToken func(ctx context.Context, token string) (*models.RefreshToken, error)
	mockCreate      func(ctx context.Context, rt *models.RefreshToken) error
	mockDelete      func(ctx context.Context, token string) error
}

func (m *mockRefreshTokenRepo) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	return m.mockFindByToken(ctx, token)
}

func (m *mockRefreshTokenRepo) Create(ctx context.Context, rt *models.RefreshToken) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, rt)
	}
	return nil
}

func (m *mockRefreshTokenRepo) Delete(ctx context.Context, token string) error {
	if m.mockDelete != nil {
		return m.mockDelete(ctx, token)
	}
	return nil
}

// countingHistoryRepo keeps the rows the login flow writes so tests can
// assert exactly one row per attempt.
type countingHistoryRepo struct {
	repository.LoginHistoryRepository
	rows []*models.LoginHistory
}

func (c *countingHistoryRepo) Create(ctx context.Context, record *models.LoginHistory) error {
	c.rows = append(c.rows, record)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
	}
}

func activeUser(password string) *models.User {
	hash, _ := HashPassword(password)
	return &models.User{
		ID:                1,
		Email:             "teacher@school.edu.vn",
		EncryptedPassword: hash,
		Role:              models.RoleTeacher,
		Status:            models.StatusActive,
	}
}

func TestAuthService_Login_Success_RecordsOneHistoryRow(t *testing.T) {
	user := activeUser("secret123")
	mockUsers := &mockUserRepo{
		mockFindByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return user, nil
		},
	}
	history := &countingHistoryRepo{}
	service := NewAuthService(mockUsers, &mockRefreshTokenRepo{}, NewLoginHistoryService(history), testConfig())

	result, err := service.Login(context.Background(), RequestMeta{IP: "192.0.2.1"}, user.Email, "secret123")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.RefreshToken)

	assert.Len(t, history.rows, 1)
	assert.Equal(t, models.LoginStatusSuccess, history.rows[0].Status)
	assert.Equal(t, user.ID, history.rows[0].UserID)
}

func TestAuthService_Login_WrongPassword_RecordsFailedRow(t *testing.T) {
	user := activeUser("secret123")
	mockUsers := &mockUserRepo{
		mockFindByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return user, nil
		},
	}
	history := &countingHistoryRepo{}
	service := NewAuthService(mockUsers, &mockRefreshTokenRepo{}, NewLoginHistoryService(history), testConfig())

	result, err := service.Login(context.Background(), RequestMeta{}, user.Email, "wrong")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Len(t, history.rows, 1)
	assert.Equal(t, models.LoginStatusFailed, history.rows[0].Status)
}

func TestAuthService_Login_InactiveUser_RecordsFailedRow(t *testing.T) {
	user := activeUser("secret123")
	user.Status = models.StatusInactive
	mockUsers := &mockUserRepo{
		mockFindByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return user, nil
		},
	}
	history := &countingHistoryRepo{}
	service := NewAuthService(mockUsers, &mockRefreshTokenRepo{}, NewLoginHistoryService(history), testConfig())

	result, err := service.Login(context.Background(), RequestMeta{}, user.Email, "secret123")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInactiveAccount)
	assert.Len(t, history.rows, 1)
	assert.Equal(t, models.LoginStatusFailed, history.rows[0].Status)
}

func TestAuthService_Login_UnknownAccount_RecordsNothing(t *testing.T) {
	mockUsers := &mockUserRepo{
		mockFindByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return nil, ErrNotFound
		},
	}
	history := &countingHistoryRepo{}
	service := NewAuthService(mockUsers, &mockRefreshTokenRepo{}, NewLoginHistoryService(history), testConfig())

	result, err := service.Login(context.Background(), RequestMeta{}, "nobody@school.edu.vn", "secret123")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, history.rows)
}

func TestAuthService_RefreshToken_RotatesToken(t *testing.T) {
	user := activeUser("secret123")
	deleted := ""
	mockUsers := &mockUserRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.User, error) {
			return user, nil
		},
	}
	mockRT := &mockRefreshTokenRepo{
		mockFindByToken: func(ctx context.Context, token string) (*models.RefreshToken, error) {
			return &models.RefreshToken{UserID: user.ID, Token: token}, nil
		},
		mockDelete: func(ctx context.Context, token string) error {
			deleted = token
			return nil
		},
	}
	service := NewAuthService(mockUsers, mockRT, NewLoginHistoryService(&countingHistoryRepo{}), testConfig())

	result, err := service.RefreshToken(context.Background(), "old-token")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "old-token", deleted)
	assert.NotEqual(t, "old-token", result.RefreshToken)
}

func TestAuthService_Logout_UnknownTokenSucceeds(t *testing.T) {
	mockRT := &mockRefreshTokenRepo{
		mockFindByToken: func(ctx context.Context, token string) (*models.RefreshToken, error) {
			return nil, ErrNotFound
		},
	}
	service := NewAuthService(&mockUserRepo{}, mockRT, NewLoginHistoryService(&countingHistoryRepo{}), testConfig())

	assert.NoError(t, service.Logout(context.Background(), "unknown"))
}
