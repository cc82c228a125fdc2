package repository

import (
	"context"
	"time"

	"github.com/tnmai/schoolhub-api/internal/models"
	"gorm.io/gorm"
)

// LoginHistoryRepository defines the interface for login history data access
type LoginHistoryRepository interface {
	Create(ctx context.Context, record *models.LoginHistory) error
	// CloseLatestOpen stamps logoutAt on the user's most recent open session
	// (status success, logout_at null) and reports how many rows it touched.
	CloseLatestOpen(ctx context.Context, userID uint, logoutAt time.Time) (int64, error)
	FindByUser(ctx context.Context, userID uint, query *ListQuery) ([]models.LoginHistory, int64, error)
	List(ctx context.Context, query *ListQuery) ([]models.LoginHistory, int64, error)
	DeleteByUser(ctx context.Context, userID uint) (int64, error)
}

type loginHistoryRepository struct {
	db *gorm.DB
}

// NewLoginHistoryRepository creates a new login history repository
func NewLoginHistoryRepository(db *gorm.DB) LoginHistoryRepository {
	return &loginHistoryRepository{db: db}
}

func (r *loginHistoryRepository) Create(ctx context.Context, record *models.LoginHistory) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// CloseLatestOpen is a single conditional UPDATE: the newest open row is
// selected and stamped in one statement, so concurrent logout signals cannot
// race a separate read-then-write sequence.
func (r *loginHistoryRepository) CloseLatestOpen(ctx context.Context, userID uint, logoutAt time.Time) (int64, error) {
	sub := r.db.Model(&models.LoginHistory{}).
		Select("id").
		Where("user_id = ? AND status = ? AND logout_at IS NULL", userID, models.LoginStatusSuccess).
		Order("login_at DESC").
		Limit(1)

	result := r.db.WithContext(ctx).
		Model(&models.LoginHistory{}).
		Where("id = (?)", sub).
		Update("logout_at", logoutAt)
	return result.RowsAffected, result.Error
}

func (r *loginHistoryRepository) FindByUser(ctx context.Context, userID uint, query *ListQuery) ([]models.LoginHistory, int64, error) {
	if query == nil {
		query = NewListQuery()
	}

	var records []models.LoginHistory
	var total int64

	db := r.db.WithContext(ctx).Model(&models.LoginHistory{}).Where("user_id = ?", userID)
	db.Count(&total)

	db = db.Order("login_at DESC")
	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Find(&records).Error
	return records, total, err
}

func (r *loginHistoryRepository) List(ctx context.Context, query *ListQuery) ([]models.LoginHistory, int64, error) {
	var records []models.LoginHistory
	var total int64

	db := r.db.WithContext(ctx).Model(&models.LoginHistory{})

	if query.Filters["user_id"] != "" {
		db = db.Where("user_id = ?", query.Filters["user_id"])
	}
	if query.Filters["status"] != "" {
		db = db.Where("status = ?", query.Filters["status"])
	}

	db.Count(&total)

	db = db.Order("login_at DESC")

	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Preload("User").Find(&records).Error
	return records, total, err
}

func (r *loginHistoryRepository) DeleteByUser(ctx context.Context, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.LoginHistory{})
	return result.RowsAffected, result.Error
}
