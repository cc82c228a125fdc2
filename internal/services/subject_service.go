package services

import (
	"context"

	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/repository"
)

// SubjectService handles subject management
type SubjectService struct {
	repo  repository.SubjectRepository
	audit *AuditService
}

// NewSubjectService creates a new subject service
func NewSubjectService(repo repository.SubjectRepository, audit *AuditService) *SubjectService {
	return &SubjectService{repo: repo, audit: audit}
}

func (s *SubjectService) FindByID(ctx context.Context, id uint) (*models.Subject, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SubjectService) FindAll(ctx context.Context) ([]models.Subject, error) {
	return s.repo.FindAll(ctx)
}

func (s *SubjectService) List(ctx context.Context, query *repository.ListQuery) ([]models.Subject, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *SubjectService) Create(ctx context.Context, meta RequestMeta, subject *models.Subject) error {
	if err := s.repo.Create(ctx, subject); err != nil {
		return err
	}
	s.audit.RecordCreate(ctx, meta, AuditTableSubjects, subject.ID, subject.Snapshot())
	return nil
}

func (s *SubjectService) Update(ctx context.Context, meta RequestMeta, subject *models.Subject) error {
	existing, err := s.repo.FindByID(ctx, subject.ID)
	if err != nil {
		return ErrNotFound
	}
	oldSnap := existing.Snapshot()

	if err := s.repo.Update(ctx, subject); err != nil {
		return err
	}
	s.audit.RecordUpdate(ctx, meta, AuditTableSubjects, subject.ID, oldSnap, subject.Snapshot())
	return nil
}

func (s *SubjectService) Delete(ctx context.Context, meta RequestMeta, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	oldSnap := existing.Snapshot()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.RecordDelete(ctx, meta, AuditTableSubjects, id, oldSnap)
	return nil
}
