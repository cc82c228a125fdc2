package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/repository"
	"github.com/tnmai/schoolhub-api/internal/services"
)

type mockScoreRepo struct {
	repository.ScoreRepository
	mockFindByID func(ctx context.Context, id uint) (*models.Score, error)
	mockDelete   func(ctx context.Context, id uint) error
}

func (m *mockScoreRepo) FindByID(ctx context.Context, id uint) (*models.Score, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockScoreRepo) Delete(ctx context.Context, id uint) error {
	return m.mockDelete(ctx, id)
}

type mockStudentRepo struct {
	repository.StudentRepository
	mockFindByID func(ctx context.Context, id uint) (*models.Student, error)
}

func (m *mockStudentRepo) FindByID(ctx context.Context, id uint) (*models.Student, error) {
	return m.mockFindByID(ctx, id)
}

type mockAssignmentRepo struct {
	repository.AssignmentRepository
	mockExists func(ctx context.Context, teacherID, subjectID, classID uint, academicYear string) (bool, error)
}

func (m *mockAssignmentRepo) Exists(ctx context.Context, teacherID, subjectID, classID uint, academicYear string) (bool, error) {
	return m.mockExists(ctx, teacherID, subjectID, classID, academicYear)
}

type mockTeacherRepo struct {
	repository.TeacherRepository
	mockFindByUserID func(ctx context.Context, userID uint) (*models.Teacher, error)
}

func (m *mockTeacherRepo) FindByUserID(ctx context.Context, userID uint) (*models.Teacher, error) {
	return m.mockFindByUserID(ctx, userID)
}

type noopAuditRepo struct {
	repository.AuditRepository
}

func (noopAuditRepo) Create(ctx context.Context, entry *models.AuditLog) error {
	return nil
}

// scoreHandlerFixture wires a ScoreHandler over mocked repositories. The
// score row 7 belongs to student 3 (class 5), subject 2.
func scoreHandlerFixture(assigned bool) (*ScoreHandler, *bool) {
	deleted := false
	classID := uint(5)

	scoreRepo := &mockScoreRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Score, error) {
			return &models.Score{ID: id, StudentID: 3, SubjectID: 2, Term: 1}, nil
		},
		mockDelete: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	studentRepo := &mockStudentRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Student, error) {
			return &models.Student{ID: id, ClassID: &classID}, nil
		},
	}
	assignmentRepo := &mockAssignmentRepo{
		mockExists: func(ctx context.Context, teacherID, subjectID, classID uint, academicYear string) (bool, error) {
			return assigned, nil
		},
	}
	teacherRepo := &mockTeacherRepo{
		mockFindByUserID: func(ctx context.Context, userID uint) (*models.Teacher, error) {
			return &models.Teacher{ID: 11}, nil
		},
	}

	audit := services.NewAuditService(noopAuditRepo{})
	scoreService := services.NewScoreService(scoreRepo, assignmentRepo, studentRepo, audit)
	teacherService := services.NewTeacherService(teacherRepo, audit, nil)

	return NewScoreHandler(scoreService, teacherService), &deleted
}

func deleteScoreContext(t *testing.T, userID uint, role string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("DELETE", "/api/v1/scores/7", nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Set("userID", userID)
	c.Set("userRole", role)
	return c, w
}

func TestScoreHandler_Delete_UnassignedTeacherForbidden(t *testing.T) {
	h, deleted := scoreHandlerFixture(false)
	c, w := deleteScoreContext(t, 42, models.RoleTeacher)

	h.Delete(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, *deleted)
}

func TestScoreHandler_Delete_AssignedTeacherSucceeds(t *testing.T) {
	h, deleted := scoreHandlerFixture(true)
	c, w := deleteScoreContext(t, 42, models.RoleTeacher)

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *deleted)
}

func TestScoreHandler_Delete_AdminBypassesAssignmentCheck(t *testing.T) {
	h, deleted := scoreHandlerFixture(false)
	c, w := deleteScoreContext(t, 1, models.RoleAdmin)

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *deleted)
}
