package models

import (
	"encoding/json"
	"time"
)

// Audit action constants
const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
)

// AuditLog is one immutable record of a create/update/delete on a tracked
// entity, with before/after field snapshots. Rows are only ever inserted;
// no update or delete path exists in the application.
type AuditLog struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	TableName string          `gorm:"size:50;not null;index:idx_audit_logs_record,priority:1" json:"table_name"`
	RecordID  uint            `gorm:"not null;index:idx_audit_logs_record,priority:2" json:"record_id"`
	Action    string          `gorm:"size:10;not null" json:"action"`
	UserID    *uint           `gorm:"index" json:"user_id"`
	OldValues json.RawMessage `gorm:"type:jsonb" json:"old_values,omitempty"`
	NewValues json.RawMessage `gorm:"type:jsonb" json:"new_values,omitempty"`
	IPAddress *string         `gorm:"size:45" json:"ip_address"`
	UserAgent *string         `gorm:"type:text" json:"user_agent"`
	CreatedAt time.Time       `gorm:"index" json:"created_at"`

	// Deleting a user keeps their audit trail; the actor reference goes null.
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}

// AuditLogResponse is the JSON response format for audit entries
type AuditLogResponse struct {
	ID        uint            `json:"id"`
	TableName string          `json:"table_name"`
	RecordID  uint            `json:"record_id"`
	Action    string          `json:"action"`
	UserID    *uint           `json:"user_id"`
	UserEmail string          `json:"user_email,omitempty"`
	OldValues json.RawMessage `json:"old_values,omitempty"`
	NewValues json.RawMessage `json:"new_values,omitempty"`
	IPAddress *string         `json:"ip_address"`
	UserAgent *string         `json:"user_agent"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToResponse converts AuditLog to AuditLogResponse
func (a *AuditLog) ToResponse() AuditLogResponse {
	resp := AuditLogResponse{
		ID:        a.ID,
		TableName: a.TableName,
		RecordID:  a.RecordID,
		Action:    a.Action,
		UserID:    a.UserID,
		OldValues: a.OldValues,
		NewValues: a.NewValues,
		IPAddress: a.IPAddress,
		UserAgent: a.UserAgent,
		CreatedAt: a.CreatedAt,
	}
	if a.User != nil {
		resp.UserEmail = a.User.Email
	}
	return resp
}
