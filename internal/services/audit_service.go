package services

import (
	"context"
	"encoding/json"

	"github.com/tnmai/schoolhub-api/internal/metrics"
	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/repository"
	"github.com/tnmai/schoolhub-api/pkg/logger"
)

// Audited table names
const (
	AuditTableStudents    = "students"
	AuditTableTeachers    = "teachers"
	AuditTableClasses     = "classes"
	AuditTableSubjects    = "subjects"
	AuditTableScores      = "scores"
	AuditTableAssignments = "teaching_assignments"
)

// RequestMeta carries the request-scoped identity and client details an
// audit or login record needs. Handlers build it from the HTTP request and
// pass it down explicitly; services never reach into ambient state.
type RequestMeta struct {
	UserID    *uint
	IP        string
	UserAgent string
	Method    string
	URL       string
}

// AuditService turns entity mutations into immutable audit_logs rows.
// Recording is best-effort: a failed write is logged and swallowed, never
// surfaced to the mutation that triggered it.
type AuditService struct {
	repo repository.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(repo repository.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// RecordCreate writes a CREATE entry with the post-state snapshot
func (s *AuditService) RecordCreate(ctx context.Context, meta RequestMeta, tableName string, recordID uint, newValues any) {
	s.record(ctx, meta, tableName, recordID, models.AuditActionCreate, nil, newValues)
}

// RecordUpdate writes an UPDATE entry with both pre- and post-state snapshots
func (s *AuditService) RecordUpdate(ctx context.Context, meta RequestMeta, tableName string, recordID uint, oldValues, newValues any) {
	s.record(ctx, meta, tableName, recordID, models.AuditActionUpdate, oldValues, newValues)
}

// RecordDelete writes a DELETE entry with the pre-state snapshot
func (s *AuditService) RecordDelete(ctx context.Context, meta RequestMeta, tableName string, recordID uint, oldValues any) {
	s.record(ctx, meta, tableName, recordID, models.AuditActionDelete, oldValues, nil)
}

func (s *AuditService) record(ctx context.Context, meta RequestMeta, tableName string, recordID uint, action string, oldValues, newValues any) {
	entry := &models.AuditLog{
		TableName: tableName,
		RecordID:  recordID,
		Action:    action,
		UserID:    meta.UserID,
		OldValues: s.snapshot(tableName, oldValues),
		NewValues: s.snapshot(tableName, newValues),
	}
	if meta.IP != "" {
		entry.IPAddress = &meta.IP
	}
	if meta.UserAgent != "" {
		entry.UserAgent = &meta.UserAgent
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		logger.Error("Failed to write audit entry",
			"table", tableName, "record_id", recordID, "action", action, "error", err)
		return
	}
	metrics.AuditEntriesTotal.WithLabelValues(tableName, action).Inc()
}

// snapshot serializes a field snapshot to JSON. encoding/json leaves
// non-ASCII text alone, so multi-byte names survive a round trip intact.
// A marshalling failure degrades to a null snapshot.
func (s *AuditService) snapshot(tableName string, values any) json.RawMessage {
	if values == nil {
		return nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		logger.Warn("Failed to serialize audit snapshot", "table", tableName, "error", err)
		return nil
	}
	return data
}

// FindByRecord returns the audit trail of one record, newest first
func (s *AuditService) FindByRecord(ctx context.Context, tableName string, recordID uint) ([]models.AuditLog, error) {
	return s.repo.FindByRecord(ctx, tableName, recordID)
}

// List retrieves audit entries with filters
func (s *AuditService) List(ctx context.Context, query *repository.ListQuery) ([]models.AuditLog, int64, error) {
	return s.repo.List(ctx, query)
}
