package services

import (
	"context"
	"mime/multipart"

	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/repository"
	"github.com/tnmai/schoolhub-api/internal/statemachine"
	"github.com/tnmai/schoolhub-api/internal/storage"
)

// StudentService handles student management. Every successful mutation
// produces exactly one audit entry.
type StudentService struct {
	repo      repository.StudentRepository
	classRepo repository.ClassRepository
	audit     *AuditService
	storage   *storage.LocalStorage
}

// NewStudentService creates a new student service
func NewStudentService(repo repository.StudentRepository, classRepo repository.ClassRepository, audit *AuditService, store *storage.LocalStorage) *StudentService {
	return &StudentService{
		repo:      repo,
		classRepo: classRepo,
		audit:     audit,
		storage:   store,
	}
}

func (s *StudentService) FindByID(ctx context.Context, id uint) (*models.Student, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StudentService) FindByClass(ctx context.Context, classID uint) ([]models.Student, error) {
	return s.repo.FindByClass(ctx, classID)
}

func (s *StudentService) List(ctx context.Context, query *repository.ListQuery) ([]models.Student, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *StudentService) Create(ctx context.Context, meta RequestMeta, student *models.Student) error {
	if student.Status == "" {
		student.Status = models.StudentStatusEnrolled
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return err
	}
	s.audit.RecordCreate(ctx, meta, AuditTableStudents, student.ID, student.Snapshot())
	s.syncClassCount(ctx, student.ClassID)
	return nil
}

func (s *StudentService) Update(ctx context.Context, meta RequestMeta, student *models.Student) error {
	existing, err := s.repo.FindByID(ctx, student.ID)
	if err != nil {
		return ErrNotFound
	}
	oldSnap := existing.Snapshot()
	oldClassID := existing.ClassID

	// Status changes go through the state machine endpoints only
	student.Status = existing.Status
	if student.AvatarPath == nil {
		student.AvatarPath = existing.AvatarPath
	}

	if err := s.repo.Update(ctx, student); err != nil {
		return err
	}
	s.audit.RecordUpdate(ctx, meta, AuditTableStudents, student.ID, oldSnap, student.Snapshot())

	s.syncClassCount(ctx, oldClassID)
	if student.ClassID != nil && (oldClassID == nil || *student.ClassID != *oldClassID) {
		s.syncClassCount(ctx, student.ClassID)
	}
	return nil
}

func (s *StudentService) Delete(ctx context.Context, meta RequestMeta, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	oldSnap := existing.Snapshot()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.RecordDelete(ctx, meta, AuditTableStudents, id, oldSnap)
	s.syncClassCount(ctx, existing.ClassID)
	return nil
}

// Transition applies an enrollment status event (suspend, reinstate,
// graduate, withdraw) via the state machine and audits the change.
func (s *StudentService) Transition(ctx context.Context, meta RequestMeta, id uint, event string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	oldSnap := student.Snapshot()

	machine := statemachine.NewStudentFSM(student)
	if err := machine.Fire(ctx, event); err != nil {
		return nil, ErrInvalidState
	}

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, err
	}
	s.audit.RecordUpdate(ctx, meta, AuditTableStudents, student.ID, oldSnap, student.Snapshot())
	s.syncClassCount(ctx, student.ClassID)
	return student, nil
}

// UploadAvatar stores a student photo. Avatar files are not part of the
// audited field set.
func (s *StudentService) UploadAvatar(ctx context.Context, id uint, file multipart.File, header *multipart.FileHeader) (string, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", ErrNotFound
	}

	path, err := s.storage.Upload(file, header, "students")
	if err != nil {
		return "", err
	}

	student.AvatarPath = &path
	if err := s.repo.Update(ctx, student); err != nil {
		return "", err
	}
	return path, nil
}

// syncClassCount keeps the denormalized enrolled count on the class current
func (s *StudentService) syncClassCount(ctx context.Context, classID *uint) {
	if classID == nil {
		return
	}
	count, err := s.repo.CountByClass(ctx, *classID)
	if err != nil {
		return
	}
	s.classRepo.SetStudentCount(ctx, *classID, count)
}
