package repository

import (
	"context"

	"github.com/tnmai/schoolhub-api/internal/models"
	"gorm.io/gorm"
)

// ClassRepository defines the interface for class data access
type ClassRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Class, error)
	FindAll(ctx context.Context) ([]models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Class, int64, error)
	SetStudentCount(ctx context.Context, id uint, count int64) error
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) FindByID(ctx context.Context, id uint) (*models.Class, error) {
	var class models.Class
	err := r.db.WithContext(ctx).Preload("HomeroomTeacher").First(&class, id).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) FindAll(ctx context.Context) ([]models.Class, error) {
	var classes []models.Class
	err := r.db.WithContext(ctx).Order("grade, name").Find(&classes).Error
	return classes, err
}

func (r *classRepository) Create(ctx context.Context, class *models.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) Update(ctx context.Context, class *models.Class) error {
	return r.db.WithContext(ctx).Save(class).Error
}

func (r *classRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Class{}, id).Error
}

func (r *classRepository) List(ctx context.Context, query *ListQuery) ([]models.Class, int64, error) {
	var classes []models.Class
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Class{})

	if query.Search != "" {
		db = db.Where("name ILIKE ?", "%"+query.Search+"%")
	}

	if query.Filters["grade"] != "" {
		db = db.Where("grade = ?", query.Filters["grade"])
	}

	if query.Filters["academic_year"] != "" {
		db = db.Where("academic_year = ?", query.Filters["academic_year"])
	}

	db.Count(&total)

	if query.SortBy != "" {
		order := query.SortBy
		if query.SortDir == "desc" {
			order += " DESC"
		}
		db = db.Order(order)
	} else {
		db = db.Order("grade, name")
	}

	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Preload("HomeroomTeacher").Find(&classes).Error
	return classes, total, err
}

func (r *classRepository) SetStudentCount(ctx context.Context, id uint, count int64) error {
	return r.db.WithContext(ctx).
		Model(&models.Class{}).
		Where("id = ?", id).
		Update("student_count", count).Error
}
