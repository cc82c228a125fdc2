package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mssola/useragent"
	"github.com/tnmai/schoolhub-api/internal/metrics"
	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/repository"
	"github.com/tnmai/schoolhub-api/pkg/logger"
)

// unknownClient is the sentinel for user-agent fields the parser cannot fill
const unknownClient = "Unknown"

// LoginHistoryService records authentication events: one row per login
// attempt, a logout stamp on the newest open session. Like the audit
// observer it is best-effort; recording failures never reach the
// authentication flow.
type LoginHistoryService struct {
	repo repository.LoginHistoryRepository
}

// NewLoginHistoryService creates a new login history service
func NewLoginHistoryService(repo repository.LoginHistoryRepository) *LoginHistoryService {
	return &LoginHistoryService{repo: repo}
}

// RecordLogin appends a success row for the user. The user-agent string is
// parsed into device/platform/browser, each falling back to "Unknown".
func (s *LoginHistoryService) RecordLogin(ctx context.Context, meta RequestMeta, userID uint) {
	s.insert(ctx, meta, userID, models.LoginStatusSuccess)
}

// RecordFailedLogin appends a failed row for a known user. Failed rows never
// receive a logout timestamp. Attempts against unknown accounts carry no
// user id and are not recorded; callers simply don't invoke this for them.
func (s *LoginHistoryService) RecordFailedLogin(ctx context.Context, meta RequestMeta, userID uint) {
	s.insert(ctx, meta, userID, models.LoginStatusFailed)
}

// RecordLogout closes the user's most recent open session. A logout with no
// open session (duplicate or late event) is a silent no-op.
func (s *LoginHistoryService) RecordLogout(ctx context.Context, userID uint) {
	affected, err := s.repo.CloseLatestOpen(ctx, userID, time.Now())
	if err != nil {
		logger.Error("Failed to close login session", "user_id", userID, "error", err)
		return
	}
	if affected == 0 {
		logger.Debug("Logout without open session", "user_id", userID)
	}
}

func (s *LoginHistoryService) insert(ctx context.Context, meta RequestMeta, userID uint, status string) {
	device, platform, browser := parseUserAgent(meta.UserAgent)

	record := &models.LoginHistory{
		UserID:   userID,
		Device:   &device,
		Platform: &platform,
		Browser:  &browser,
		LoginAt:  time.Now(),
		Status:   status,
	}
	if meta.IP != "" {
		record.IPAddress = &meta.IP
	}
	if meta.UserAgent != "" {
		record.UserAgent = &meta.UserAgent
	}
	if info := s.additionalInfo(meta); info != nil {
		record.AdditionalInfo = info
	}

	if err := s.repo.Create(ctx, record); err != nil {
		logger.Error("Failed to write login history",
			"user_id", userID, "status", status, "error", err)
		return
	}
	metrics.LoginAttemptsTotal.WithLabelValues(status).Inc()
}

// additionalInfo captures request details (method, URL) as a JSON blob
func (s *LoginHistoryService) additionalInfo(meta RequestMeta) json.RawMessage {
	if meta.Method == "" && meta.URL == "" {
		return nil
	}
	data, err := json.Marshal(map[string]string{
		"method": meta.Method,
		"url":    meta.URL,
	})
	if err != nil {
		return nil
	}
	return data
}

// parseUserAgent classifies the raw user-agent string into device class,
// platform and browser. Every field independently falls back to "Unknown".
func parseUserAgent(raw string) (device, platform, browser string) {
	device, platform, browser = unknownClient, unknownClient, unknownClient
	if raw == "" {
		return
	}

	ua := useragent.New(raw)

	switch {
	case ua.Bot():
		device = "Bot"
	case ua.Mobile():
		device = "Mobile"
	default:
		device = "Desktop"
	}

	if os := ua.OSInfo().Name; os != "" {
		platform = os
	} else if p := ua.Platform(); p != "" {
		platform = p
	}

	if name, _ := ua.Browser(); name != "" {
		browser = name
	}

	return
}

// FindByUser lists a user's login history, newest first
func (s *LoginHistoryService) FindByUser(ctx context.Context, userID uint, query *repository.ListQuery) ([]models.LoginHistory, int64, error) {
	return s.repo.FindByUser(ctx, userID, query)
}

// List retrieves login history with filters
func (s *LoginHistoryService) List(ctx context.Context, query *repository.ListQuery) ([]models.LoginHistory, int64, error) {
	return s.repo.List(ctx, query)
}

// DeleteByUser removes all history rows of one user, returning the count
func (s *LoginHistoryService) DeleteByUser(ctx context.Context, userID uint) (int64, error) {
	return s.repo.DeleteByUser(ctx, userID)
}
