package models

import (
	"time"
)

// TeachingAssignment links a teacher to a subject taught in one class for
// one academic year. The triple (teacher, subject, class) is unique per year.
type TeachingAssignment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TeacherID    uint      `gorm:"not null;uniqueIndex:idx_assignments_unique,priority:1" json:"teacher_id"`
	SubjectID    uint      `gorm:"not null;uniqueIndex:idx_assignments_unique,priority:2" json:"subject_id"`
	ClassID      uint      `gorm:"not null;uniqueIndex:idx_assignments_unique,priority:3" json:"class_id"`
	AcademicYear string    `gorm:"size:20;not null;uniqueIndex:idx_assignments_unique,priority:4" json:"academic_year"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Associations
	Teacher *Teacher `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	Subject *Subject `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Class   *Class   `gorm:"foreignKey:ClassID" json:"class,omitempty"`
}

// TableName specifies the table name for TeachingAssignment
func (TeachingAssignment) TableName() string {
	return "teaching_assignments"
}

// AssignmentSnapshot is the audited field set for a teaching assignment
type AssignmentSnapshot struct {
	TeacherID    uint   `json:"teacher_id"`
	SubjectID    uint   `json:"subject_id"`
	ClassID      uint   `json:"class_id"`
	AcademicYear string `json:"academic_year"`
}

// Snapshot captures the auditable fields of the assignment
func (a *TeachingAssignment) Snapshot() AssignmentSnapshot {
	return AssignmentSnapshot{
		TeacherID:    a.TeacherID,
		SubjectID:    a.SubjectID,
		ClassID:      a.ClassID,
		AcademicYear: a.AcademicYear,
	}
}
