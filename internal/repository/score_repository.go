package repository

import (
	"context"
	"errors"

	"github.com/tnmai/schoolhub-api/internal/models"
	"gorm.io/gorm"
)

// ScoreRepository defines the interface for score data access
type ScoreRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Score, error)
	FindByStudent(ctx context.Context, studentID uint, term int) ([]models.Score, error)
	FindByClassAndSubject(ctx context.Context, classID, subjectID uint, term int) ([]models.Score, error)
	Create(ctx context.Context, score *models.Score) error
	Update(ctx context.Context, score *models.Score) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Score, int64, error)
}

type scoreRepository struct {
	db *gorm.DB
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) FindByID(ctx context.Context, id uint) (*models.Score, error) {
	var score models.Score
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Subject").
		First(&score, id).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

func (r *scoreRepository) FindByStudent(ctx context.Context, studentID uint, term int) ([]models.Score, error) {
	var scores []models.Score
	db := r.db.WithContext(ctx).Where("student_id = ?", studentID)
	if term != 0 {
		db = db.Where("term = ?", term)
	}
	err := db.Preload("Subject").Order("subject_id").Find(&scores).Error
	return scores, err
}

func (r *scoreRepository) FindByClassAndSubject(ctx context.Context, classID, subjectID uint, term int) ([]models.Score, error) {
	var scores []models.Score
	err := r.db.WithContext(ctx).
		Joins("JOIN students ON students.id = scores.student_id").
		Where("students.class_id = ? AND scores.subject_id = ? AND scores.term = ?", classID, subjectID, term).
		Preload("Student").
		Order("students.full_name").
		Find(&scores).Error
	return scores, err
}

func (r *scoreRepository) Create(ctx context.Context, score *models.Score) error {
	if err := r.db.WithContext(ctx).Create(score).Error; err != nil {
		if isDuplicateKeyError(err, "idx_scores_student_subject_term") {
			return errors.New("a score for this student, subject and term already exists")
		}
		return err
	}
	return nil
}

func (r *scoreRepository) Update(ctx context.Context, score *models.Score) error {
	return r.db.WithContext(ctx).Save(score).Error
}

func (r *scoreRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Score{}, id).Error
}

func (r *scoreRepository) List(ctx context.Context, query *ListQuery) ([]models.Score, int64, error) {
	var scores []models.Score
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Score{})

	if query.Filters["student_id"] != "" {
		db = db.Where("student_id = ?", query.Filters["student_id"])
	}
	if query.Filters["subject_id"] != "" {
		db = db.Where("subject_id = ?", query.Filters["subject_id"])
	}
	if query.Filters["term"] != "" {
		db = db.Where("term = ?", query.Filters["term"])
	}

	db.Count(&total)

	db = db.Order("student_id, subject_id, term")

	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Preload("Student").Preload("Subject").Find(&scores).Error
	return scores, total, err
}
