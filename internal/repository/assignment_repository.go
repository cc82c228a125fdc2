package repository

import (
	"context"
	"errors"

	"github.com/tnmai/schoolhub-api/internal/models"
	"gorm.io/gorm"
)

// AssignmentRepository defines the interface for teaching assignment data access
type AssignmentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.TeachingAssignment, error)
	FindByTeacher(ctx context.Context, teacherID uint, academicYear string) ([]models.TeachingAssignment, error)
	FindByClass(ctx context.Context, classID uint, academicYear string) ([]models.TeachingAssignment, error)
	Exists(ctx context.Context, teacherID, subjectID, classID uint, academicYear string) (bool, error)
	Create(ctx context.Context, assignment *models.TeachingAssignment) error
	Update(ctx context.Context, assignment *models.TeachingAssignment) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.TeachingAssignment, int64, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new teaching assignment repository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) FindByID(ctx context.Context, id uint) (*models.TeachingAssignment, error) {
	var assignment models.TeachingAssignment
	err := r.db.WithContext(ctx).
		Preload("Teacher").
		Preload("Subject").
		Preload("Class").
		First(&assignment, id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindByTeacher(ctx context.Context, teacherID uint, academicYear string) ([]models.TeachingAssignment, error) {
	var assignments []models.TeachingAssignment
	db := r.db.WithContext(ctx).Where("teacher_id = ?", teacherID)
	if academicYear != "" {
		db = db.Where("academic_year = ?", academicYear)
	}
	err := db.Preload("Subject").Preload("Class").Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepository) FindByClass(ctx context.Context, classID uint, academicYear string) ([]models.TeachingAssignment, error) {
	var assignments []models.TeachingAssignment
	db := r.db.WithContext(ctx).Where("class_id = ?", classID)
	if academicYear != "" {
		db = db.Where("academic_year = ?", academicYear)
	}
	err := db.Preload("Teacher").Preload("Subject").Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepository) Exists(ctx context.Context, teacherID, subjectID, classID uint, academicYear string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.TeachingAssignment{}).
		Where("teacher_id = ? AND subject_id = ? AND class_id = ? AND academic_year = ?",
			teacherID, subjectID, classID, academicYear).
		Count(&count).Error
	return count > 0, err
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.TeachingAssignment) error {
	if err := r.db.WithContext(ctx).Create(assignment).Error; err != nil {
		if isDuplicateKeyError(err, "idx_assignments_unique") {
			return errors.New("this teaching assignment already exists")
		}
		return err
	}
	return nil
}

func (r *assignmentRepository) Update(ctx context.Context, assignment *models.TeachingAssignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

func (r *assignmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.TeachingAssignment{}, id).Error
}

func (r *assignmentRepository) List(ctx context.Context, query *ListQuery) ([]models.TeachingAssignment, int64, error) {
	var assignments []models.TeachingAssignment
	var total int64

	db := r.db.WithContext(ctx).Model(&models.TeachingAssignment{})

	if query.Filters["teacher_id"] != "" {
		db = db.Where("teacher_id = ?", query.Filters["teacher_id"])
	}
	if query.Filters["class_id"] != "" {
		db = db.Where("class_id = ?", query.Filters["class_id"])
	}
	if query.Filters["academic_year"] != "" {
		db = db.Where("academic_year = ?", query.Filters["academic_year"])
	}

	db.Count(&total)

	db = db.Order("academic_year DESC, class_id")

	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Preload("Teacher").Preload("Subject").Preload("Class").Find(&assignments).Error
	return assignments, total, err
}
