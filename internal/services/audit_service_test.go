package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/repository"
)

type mockAuditRepo struct {
	repository.AuditRepository
	mockCreate func(ctx context.Context, entry *models.AuditLog) error
}

func (m *mockAuditRepo) Create(ctx context.Context, entry *models.AuditLog) error {
	return m.mockCreate(ctx, entry)
}

func TestAuditService_RecordCreate(t *testing.T) {
	var captured *models.AuditLog
	mockRepo := &mockAuditRepo{
		mockCreate: func(ctx context.Context, entry *models.AuditLog) error {
			captured = entry
			return nil
		},
	}
	service := NewAuditService(mockRepo)

	actorID := uint(7)
	meta := RequestMeta{
		UserID:    &actorID,
		IP:        "203.0.113.10",
		UserAgent: "Mozilla/5.0",
	}
	student := &models.Student{Code: "HS001", FullName: "Nguyễn Văn Ánh", Status: models.StudentStatusEnrolled}

	service.RecordCreate(context.Background(), meta, AuditTableStudents, 42, student.Snapshot())

	assert.NotNil(t, captured)
	assert.Equal(t, "students", captured.TableName)
	assert.Equal(t, uint(42), captured.RecordID)
	assert.Equal(t, models.AuditActionCreate, captured.Action)
	assert.Equal(t, &actorID, captured.UserID)
	assert.Equal(t, "203.0.113.10", *captured.IPAddress)
	assert.Nil(t, captured.OldValues)
	assert.NotNil(t, captured.NewValues)

	var snap models.StudentSnapshot
	assert.NoError(t, json.Unmarshal(captured.NewValues, &snap))
	assert.Equal(t, "Nguyễn Văn Ánh", snap.FullName)
}

func TestAuditService_RecordUpdate_CarriesBothSnapshots(t *testing.T) {
	var captured *models.AuditLog
	mockRepo := &mockAuditRepo{
		mockCreate: func(ctx context.Context, entry *models.AuditLog) error {
			captured = entry
			return nil
		},
	}
	service := NewAuditService(mockRepo)

	before := models.StudentSnapshot{Code: "HS001", FullName: "Trần Thị Bích", Status: models.StudentStatusEnrolled}
	after := before
	after.Status = models.StudentStatusSuspended

	service.RecordUpdate(context.Background(), RequestMeta{}, AuditTableStudents, 42, before, after)

	assert.NotNil(t, captured)
	assert.Equal(t, models.AuditActionUpdate, captured.Action)
	assert.Nil(t, captured.UserID)
	assert.Nil(t, captured.IPAddress)

	var oldSnap, newSnap models.StudentSnapshot
	assert.NoError(t, json.Unmarshal(captured.OldValues, &oldSnap))
	assert.NoError(t, json.Unmarshal(captured.NewValues, &newSnap))
	assert.Equal(t, models.StudentStatusEnrolled, oldSnap.Status)
	assert.Equal(t, models.StudentStatusSuspended, newSnap.Status)
	assert.Equal(t, "Trần Thị Bích", newSnap.FullName)
}

func TestAuditService_RecordDelete(t *testing.T) {
	var captured *models.AuditLog
	mockRepo := &mockAuditRepo{
		mockCreate: func(ctx context.Context, entry *models.AuditLog) error {
			captured = entry
			return nil
		},
	}
	service := NewAuditService(mockRepo)

	subject := models.SubjectSnapshot{Code: "TOAN", Name: "Toán", Periods: 5}
	service.RecordDelete(context.Background(), RequestMeta{}, AuditTableSubjects, 3, subject)

	assert.NotNil(t, captured)
	assert.Equal(t, models.AuditActionDelete, captured.Action)
	assert.NotNil(t, captured.OldValues)
	assert.Nil(t, captured.NewValues)
}

func TestAuditService_WriteFailureIsSwallowed(t *testing.T) {
	mockRepo := &mockAuditRepo{
		mockCreate: func(ctx context.Context, entry *models.AuditLog) error {
			return errors.New("connection refused")
		},
	}
	service := NewAuditService(mockRepo)

	// Recording must never panic or surface the error to the caller
	assert.NotPanics(t, func() {
		service.RecordCreate(context.Background(), RequestMeta{}, AuditTableClasses, 1, models.ClassSnapshot{Name: "10A1"})
	})
}
