package services

import (
	"context"
	"mime/multipart"

	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/repository"
	"github.com/tnmai/schoolhub-api/internal/storage"
)

// TeacherService handles teaching staff management
type TeacherService struct {
	repo    repository.TeacherRepository
	audit   *AuditService
	storage *storage.LocalStorage
}

// NewTeacherService creates a new teacher service
func NewTeacherService(repo repository.TeacherRepository, audit *AuditService, store *storage.LocalStorage) *TeacherService {
	return &TeacherService{repo: repo, audit: audit, storage: store}
}

func (s *TeacherService) FindByID(ctx context.Context, id uint) (*models.Teacher, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TeacherService) FindByUserID(ctx context.Context, userID uint) (*models.Teacher, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *TeacherService) List(ctx context.Context, query *repository.ListQuery) ([]models.Teacher, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *TeacherService) Create(ctx context.Context, meta RequestMeta, teacher *models.Teacher) error {
	if err := s.repo.Create(ctx, teacher); err != nil {
		return err
	}
	s.audit.RecordCreate(ctx, meta, AuditTableTeachers, teacher.ID, teacher.Snapshot())
	return nil
}

func (s *TeacherService) Update(ctx context.Context, meta RequestMeta, teacher *models.Teacher) error {
	existing, err := s.repo.FindByID(ctx, teacher.ID)
	if err != nil {
		return ErrNotFound
	}
	oldSnap := existing.Snapshot()

	if teacher.AvatarPath == nil {
		teacher.AvatarPath = existing.AvatarPath
	}
	if teacher.UserID == nil {
		teacher.UserID = existing.UserID
	}

	if err := s.repo.Update(ctx, teacher); err != nil {
		return err
	}
	s.audit.RecordUpdate(ctx, meta, AuditTableTeachers, teacher.ID, oldSnap, teacher.Snapshot())
	return nil
}

func (s *TeacherService) Delete(ctx context.Context, meta RequestMeta, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	oldSnap := existing.Snapshot()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.RecordDelete(ctx, meta, AuditTableTeachers, id, oldSnap)
	return nil
}

// UploadAvatar stores a staff photo
func (s *TeacherService) UploadAvatar(ctx context.Context, id uint, file multipart.File, header *multipart.FileHeader) (string, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", ErrNotFound
	}

	path, err := s.storage.Upload(file, header, "teachers")
	if err != nil {
		return "", err
	}

	teacher.AvatarPath = &path
	if err := s.repo.Update(ctx, teacher); err != nil {
		return "", err
	}
	return path, nil
}
