package services

import (
	"context"

	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/repository"
)

// AssignmentService handles teaching assignments
type AssignmentService struct {
	repo  repository.AssignmentRepository
	audit *AuditService
}

// NewAssignmentService creates a new teaching assignment service
func NewAssignmentService(repo repository.AssignmentRepository, audit *AuditService) *AssignmentService {
	return &AssignmentService{repo: repo, audit: audit}
}

func (s *AssignmentService) FindByID(ctx context.Context, id uint) (*models.TeachingAssignment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AssignmentService) FindByTeacher(ctx context.Context, teacherID uint, academicYear string) ([]models.TeachingAssignment, error) {
	return s.repo.FindByTeacher(ctx, teacherID, academicYear)
}

func (s *AssignmentService) FindByClass(ctx context.Context, classID uint, academicYear string) ([]models.TeachingAssignment, error) {
	return s.repo.FindByClass(ctx, classID, academicYear)
}

func (s *AssignmentService) List(ctx context.Context, query *repository.ListQuery) ([]models.TeachingAssignment, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *AssignmentService) Create(ctx context.Context, meta RequestMeta, assignment *models.TeachingAssignment) error {
	if err := s.repo.Create(ctx, assignment); err != nil {
		return err
	}
	s.audit.RecordCreate(ctx, meta, AuditTableAssignments, assignment.ID, assignment.Snapshot())
	return nil
}

func (s *AssignmentService) Update(ctx context.Context, meta RequestMeta, assignment *models.TeachingAssignment) error {
	existing, err := s.repo.FindByID(ctx, assignment.ID)
	if err != nil {
		return ErrNotFound
	}
	oldSnap := existing.Snapshot()

	if err := s.repo.Update(ctx, assignment); err != nil {
		return err
	}
	s.audit.RecordUpdate(ctx, meta, AuditTableAssignments, assignment.ID, oldSnap, assignment.Snapshot())
	return nil
}

func (s *AssignmentService) Delete(ctx context.Context, meta RequestMeta, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	oldSnap := existing.Snapshot()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.RecordDelete(ctx, meta, AuditTableAssignments, id, oldSnap)
	return nil
}
