package services

import (
	"context"

	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/repository"
)

// ClassService handles class management
type ClassService struct {
	repo        repository.ClassRepository
	studentRepo repository.StudentRepository
	audit       *AuditService
}

// NewClassService creates a new class service
func NewClassService(repo repository.ClassRepository, studentRepo repository.StudentRepository, audit *AuditService) *ClassService {
	return &ClassService{repo: repo, studentRepo: studentRepo, audit: audit}
}

func (s *ClassService) FindByID(ctx context.Context, id uint) (*models.Class, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClassService) FindAll(ctx context.Context) ([]models.Class, error) {
	return s.repo.FindAll(ctx)
}

func (s *ClassService) List(ctx context.Context, query *repository.ListQuery) ([]models.Class, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *ClassService) Create(ctx context.Context, meta RequestMeta, class *models.Class) error {
	if err := s.repo.Create(ctx, class); err != nil {
		return err
	}
	s.audit.RecordCreate(ctx, meta, AuditTableClasses, class.ID, class.Snapshot())
	return nil
}

func (s *ClassService) Update(ctx context.Context, meta RequestMeta, class *models.Class) error {
	existing, err := s.repo.FindByID(ctx, class.ID)
	if err != nil {
		return ErrNotFound
	}
	oldSnap := existing.Snapshot()

	// Student count is derived, never bound from input
	class.StudentCount = existing.StudentCount

	if err := s.repo.Update(ctx, class); err != nil {
		return err
	}
	s.audit.RecordUpdate(ctx, meta, AuditTableClasses, class.ID, oldSnap, class.Snapshot())
	return nil
}

func (s *ClassService) Delete(ctx context.Context, meta RequestMeta, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}

	// Refuse to drop a class that still has students in it
	count, err := s.studentRepo.CountByClass(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrInvalidState
	}

	oldSnap := existing.Snapshot()
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.RecordDelete(ctx, meta, AuditTableClasses, id, oldSnap)
	return nil
}

// RefreshStudentCounts recomputes the denormalized enrolled counts for all
// classes. Run periodically by the background worker.
func (s *ClassService) RefreshStudentCounts(ctx context.Context) error {
	classes, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, class := range classes {
		count, err := s.studentRepo.CountByClass(ctx, class.ID)
		if err != nil {
			return err
		}
		if int(count) != class.StudentCount {
			if err := s.repo.SetStudentCount(ctx, class.ID, count); err != nil {
				return err
			}
		}
	}
	return nil
}
