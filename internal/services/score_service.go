package services

import (
	"context"

	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/repository"
)

// ScoreService handles score entry. The weighted average is recomputed on
// every write; handlers never supply it.
type ScoreService struct {
	repo           repository.ScoreRepository
	assignmentRepo repository.AssignmentRepository
	studentRepo    repository.StudentRepository
	audit          *AuditService
}

// NewScoreService creates a new score service
func NewScoreService(repo repository.ScoreRepository, assignmentRepo repository.AssignmentRepository, studentRepo repository.StudentRepository, audit *AuditService) *ScoreService {
	return &ScoreService{
		repo:           repo,
		assignmentRepo: assignmentRepo,
		studentRepo:    studentRepo,
		audit:          audit,
	}
}

func (s *ScoreService) FindByID(ctx context.Context, id uint) (*models.Score, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ScoreService) FindByStudent(ctx context.Context, studentID uint, term int) ([]models.Score, error) {
	return s.repo.FindByStudent(ctx, studentID, term)
}

func (s *ScoreService) FindByClassAndSubject(ctx context.Context, classID, subjectID uint, term int) ([]models.Score, error) {
	return s.repo.FindByClassAndSubject(ctx, classID, subjectID, term)
}

func (s *ScoreService) List(ctx context.Context, query *repository.ListQuery) ([]models.Score, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *ScoreService) Create(ctx context.Context, meta RequestMeta, score *models.Score) error {
	if score.Term != models.TermFirst && score.Term != models.TermSecond {
		return ErrInvalidState
	}
	score.ComputeAverage()

	if err := s.repo.Create(ctx, score); err != nil {
		return err
	}
	s.audit.RecordCreate(ctx, meta, AuditTableScores, score.ID, score.Snapshot())
	return nil
}

func (s *ScoreService) Update(ctx context.Context, meta RequestMeta, score *models.Score) error {
	existing, err := s.repo.FindByID(ctx, score.ID)
	if err != nil {
		return ErrNotFound
	}
	oldSnap := existing.Snapshot()

	// The row's identity is fixed; only components change
	score.StudentID = existing.StudentID
	score.SubjectID = existing.SubjectID
	score.Term = existing.Term
	score.ComputeAverage()

	if err := s.repo.Update(ctx, score); err != nil {
		return err
	}
	s.audit.RecordUpdate(ctx, meta, AuditTableScores, score.ID, oldSnap, score.Snapshot())
	return nil
}

func (s *ScoreService) Delete(ctx context.Context, meta RequestMeta, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	oldSnap := existing.Snapshot()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.RecordDelete(ctx, meta, AuditTableScores, id, oldSnap)
	return nil
}

// CanTeacherGrade reports whether the teacher is assigned the student's
// class for the given subject in the academic year.
func (s *ScoreService) CanTeacherGrade(ctx context.Context, teacherID, studentID, subjectID uint, academicYear string) (bool, error) {
	student, err := s.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		return false, ErrNotFound
	}
	if student.ClassID == nil {
		return false, nil
	}
	return s.assignmentRepo.Exists(ctx, teacherID, subjectID, *student.ClassID, academicYear)
}
