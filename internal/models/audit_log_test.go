package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuditLog_ToResponse(t *testing.T) {
	actorID := uint(7)
	ip := "203.0.113.10"
	entry := &AuditLog{
		ID:        1,
		TableName: "students",
		RecordID:  42,
		Action:    AuditActionUpdate,
		UserID:    &actorID,
		OldValues: json.RawMessage(`{"status":"enrolled"}`),
		NewValues: json.RawMessage(`{"status":"suspended"}`),
		IPAddress: &ip,
		CreatedAt: time.Now(),
		User:      &User{Email: "admin@school.edu.vn"},
	}

	resp := entry.ToResponse()

	assert.Equal(t, "students", resp.TableName)
	assert.Equal(t, uint(42), resp.RecordID)
	assert.Equal(t, AuditActionUpdate, resp.Action)
	assert.Equal(t, &actorID, resp.UserID)
	assert.Equal(t, "admin@school.edu.vn", resp.UserEmail)
	assert.JSONEq(t, `{"status":"suspended"}`, string(resp.NewValues))
}

func TestAuditLog_ToResponse_WithoutActor(t *testing.T) {
	entry := &AuditLog{TableName: "scores", RecordID: 3, Action: AuditActionDelete}

	resp := entry.ToResponse()

	assert.Equal(t, "scores", resp.TableName)
	assert.Nil(t, resp.UserID)
	assert.Empty(t, resp.UserEmail)
}
