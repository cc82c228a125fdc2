package repository

import (
	"context"
	"errors"

	"github.com/tnmai/schoolhub-api/internal/models"
	"gorm.io/gorm"
)

// SubjectRepository defines the interface for subject data access
type SubjectRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Subject, error)
	FindAll(ctx context.Context) ([]models.Subject, error)
	Create(ctx context.Context, subject *models.Subject) error
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Subject, int64, error)
}

type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) FindByID(ctx context.Context, id uint) (*models.Subject, error) {
	var subject models.Subject
	err := r.db.WithContext(ctx).First(&subject, id).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepository) FindAll(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	err := r.db.WithContext(ctx).Order("name").Find(&subjects).Error
	return subjects, err
}

func (r *subjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	if err := r.db.WithContext(ctx).Create(subject).Error; err != nil {
		if isDuplicateKeyError(err, "subjects_code_key") {
			return errors.New("a subject with this code already exists")
		}
		return err
	}
	return nil
}

func (r *subjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	return r.db.WithContext(ctx).Save(subject).Error
}

func (r *subjectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Subject{}, id).Error
}

func (r *subjectRepository) List(ctx context.Context, query *ListQuery) ([]models.Subject, int64, error) {
	var subjects []models.Subject
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Subject{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("name ILIKE ? OR code ILIKE ?", search, search)
	}

	db.Count(&total)

	if query.SortBy != "" {
		order := query.SortBy
		if query.SortDir == "desc" {
			order += " DESC"
		}
		db = db.Order(order)
	} else {
		db = db.Order("name")
	}

	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Find(&subjects).Error
	return subjects, total, err
}
