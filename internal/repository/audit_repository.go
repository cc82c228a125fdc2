package repository

import (
	"context"

	"github.com/tnmai/schoolhub-api/internal/models"
	"gorm.io/gorm"
)

// AuditRepository defines the interface for audit log data access.
// The trail is append-only: there is deliberately no update or delete.
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	FindByRecord(ctx context.Context, tableName string, recordID uint) ([]models.AuditLog, error)
	List(ctx context.Context, query *ListQuery) ([]models.AuditLog, int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepository) FindByRecord(ctx context.Context, tableName string, recordID uint) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.db.WithContext(ctx).
		Where("table_name = ? AND record_id = ?", tableName, recordID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *auditRepository) List(ctx context.Context, query *ListQuery) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	var total int64

	db := r.db.WithContext(ctx).Model(&models.AuditLog{})

	if query.Filters["table_name"] != "" {
		db = db.Where("table_name = ?", query.Filters["table_name"])
	}
	if query.Filters["record_id"] != "" {
		db = db.Where("record_id = ?", query.Filters["record_id"])
	}
	if query.Filters["user_id"] != "" {
		db = db.Where("user_id = ?", query.Filters["user_id"])
	}
	if query.Filters["action"] != "" {
		db = db.Where("action = ?", query.Filters["action"])
	}

	db.Count(&total)

	db = db.Order("created_at DESC")

	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Preload("User").Find(&entries).Error
	return entries, total, err
}
