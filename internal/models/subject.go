package models

import (
	"time"
)

// Subject represents a taught subject
type Subject struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Periods   int       `gorm:"default:0" json:"periods"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Subject
func (Subject) TableName() string {
	return "subjects"
}

// SubjectSnapshot is the audited field set for a subject
type SubjectSnapshot struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Periods int    `json:"periods"`
}

// Snapshot captures the auditable fields of the subject
func (s *Subject) Snapshot() SubjectSnapshot {
	return SubjectSnapshot{
		Code:    s.Code,
		Name:    s.Name,
		Periods: s.Periods,
	}
}
