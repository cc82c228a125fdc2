package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/repository"
)

type mockLoginHistoryRepo struct {
	repository.LoginHistoryRepository
	mockCreate          func(ctx context.Context, record *models.LoginHistory) error
	mockCloseLatestOpen func(ctx context.Context, userID uint, logoutAt time.Time) (int64, error)
}

func (m *mockLoginHistoryRepo) Create(ctx context.Context, record *models.LoginHistory) error {
	return m.mockCreate(ctx, record)
}

func (m *mockLoginHistoryRepo) CloseLatestOpen(ctx context.Context, userID uint, logoutAt time.Time) (int64, error) {
	return m.mockCloseLatestOpen(ctx, userID, logoutAt)
}

func TestLoginHistoryService_RecordLogin(t *testing.T) {
	var captured *models.LoginHistory
	mockRepo := &mockLoginHistoryRepo{
		mockCreate: func(ctx context.Context, record *models.LoginHistory) error {
			captured = record
			return nil
		},
	}
	service := NewLoginHistoryService(mockRepo)

	meta := RequestMeta{
		IP:        "198.51.100.7",
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
		Method:    "POST",
		URL:       "/api/v1/auth/login",
	}

	service.RecordLogin(context.Background(), meta, 5)

	assert.NotNil(t, captured)
	assert.Equal(t, uint(5), captured.UserID)
	assert.Equal(t, models.LoginStatusSuccess, captured.Status)
	assert.Nil(t, captured.LogoutAt)
	assert.False(t, captured.LoginAt.IsZero())
	assert.Equal(t, "198.51.100.7", *captured.IPAddress)
	assert.Equal(t, "Desktop", *captured.Device)
	assert.Equal(t, "Windows", *captured.Platform)
	assert.Equal(t, "Chrome", *captured.Browser)
	assert.JSONEq(t, `{"method":"POST","url":"/api/v1/auth/login"}`, string(captured.AdditionalInfo))
}

func TestLoginHistoryService_RecordFailedLogin(t *testing.T) {
	var captured *models.LoginHistory
	mockRepo := &mockLoginHistoryRepo{
		mockCreate: func(ctx context.Context, record *models.LoginHistory) error {
			captured = record
			return nil
		},
	}
	service := NewLoginHistoryService(mockRepo)

	service.RecordFailedLogin(context.Background(), RequestMeta{IP: "198.51.100.7"}, 5)

	assert.NotNil(t, captured)
	assert.Equal(t, models.LoginStatusFailed, captured.Status)
	assert.Nil(t, captured.LogoutAt)
}

func TestLoginHistoryService_EmptyUserAgentFallsBackToUnknown(t *testing.T) {
	var captured *models.LoginHistory
	mockRepo := &mockLoginHistoryRepo{
		mockCreate: func(ctx context.Context, record *models.LoginHistory) error {
			captured = record
			return nil
		},
	}
	service := NewLoginHistoryService(mockRepo)

	service.RecordLogin(context.Background(), RequestMeta{}, 5)

	assert.NotNil(t, captured)
	assert.Equal(t, "Unknown", *captured.Device)
	assert.Equal(t, "Unknown", *captured.Platform)
	assert.Equal(t, "Unknown", *captured.Browser)
	assert.Nil(t, captured.UserAgent)
	assert.Nil(t, captured.IPAddress)
}

func TestLoginHistoryService_WriteFailureIsSwallowed(t *testing.T) {
	mockRepo := &mockLoginHistoryRepo{
		mockCreate: func(ctx context.Context, record *models.LoginHistory) error {
			return errors.New("connection refused")
		},
	}
	service := NewLoginHistoryService(mockRepo)

	assert.NotPanics(t, func() {
		service.RecordLogin(context.Background(), RequestMeta{}, 5)
	})
}

func TestLoginHistoryService_RecordLogout_ClosesOpenSession(t *testing.T) {
	var closedUser uint
	mockRepo := &mockLoginHistoryRepo{
		mockCloseLatestOpen: func(ctx context.Context, userID uint, logoutAt time.Time) (int64, error) {
			closedUser = userID
			return 1, nil
		},
	}
	service := NewLoginHistoryService(mockRepo)

	service.RecordLogout(context.Background(), 5)
	assert.Equal(t, uint(5), closedUser)
}

func TestLoginHistoryService_RecordLogout_NoOpenSessionIsNoOp(t *testing.T) {
	calls := 0
	mockRepo := &mockLoginHistoryRepo{
		mockCloseLatestOpen: func(ctx context.Context, userID uint, logoutAt time.Time) (int64, error) {
			calls++
			return 0, nil
		},
	}
	service := NewLoginHistoryService(mockRepo)

	// Duplicate logout touches nothing and raises nothing
	service.RecordLogout(context.Background(), 5)
	service.RecordLogout(context.Background(), 5)
	assert.Equal(t, 2, calls)
}

func TestParseUserAgent_Bot(t *testing.T) {
	device, _, _ := parseUserAgent("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
	assert.Equal(t, "Bot", device)
}

func TestParseUserAgent_Mobile(t *testing.T) {
	device, platform, browser := parseUserAgent("Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1")
	assert.Equal(t, "Mobile", device)
	assert.NotEqual(t, "Unknown", platform)
	assert.Equal(t, "Safari", browser)
}
