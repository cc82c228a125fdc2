package models

import (
	"time"
)

// Class represents a homeroom class within an academic year
type Class struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"size:50;not null" json:"name"`
	Grade             int       `gorm:"not null" json:"grade"`
	AcademicYear      string    `gorm:"size:20;not null;index" json:"academic_year"`
	HomeroomTeacherID *uint     `gorm:"index" json:"homeroom_teacher_id"`
	StudentCount      int       `gorm:"default:0" json:"student_count"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Associations
	HomeroomTeacher *Teacher  `gorm:"foreignKey:HomeroomTeacherID" json:"homeroom_teacher,omitempty"`
	Students        []Student `gorm:"foreignKey:ClassID" json:"students,omitempty"`
}

// TableName specifies the table name for Class
func (Class) TableName() string {
	return "classes"
}

// ClassSnapshot is the audited field set for a class
type ClassSnapshot struct {
	Name              string `json:"name"`
	Grade             int    `json:"grade"`
	AcademicYear      string `json:"academic_year"`
	HomeroomTeacherID *uint  `json:"homeroom_teacher_id"`
}

// Snapshot captures the auditable fields of the class
func (c *Class) Snapshot() ClassSnapshot {
	return ClassSnapshot{
		Name:              c.Name,
		Grade:             c.Grade,
		AcademicYear:      c.AcademicYear,
		HomeroomTeacherID: c.HomeroomTeacherID,
	}
}

// ClassResponse is the JSON response format for classes
type ClassResponse struct {
	ID                  uint      `json:"id"`
	Name                string    `json:"name"`
	Grade               int       `json:"grade"`
	AcademicYear        string    `json:"academic_year"`
	HomeroomTeacherID   *uint     `json:"homeroom_teacher_id"`
	HomeroomTeacherName string    `json:"homeroom_teacher_name,omitempty"`
	StudentCount        int       `json:"student_count"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ToResponse converts Class to ClassResponse
func (c *Class) ToResponse() ClassResponse {
	resp := ClassResponse{
		ID:                c.ID,
		Name:              c.Name,
		Grade:             c.Grade,
		AcademicYear:      c.AcademicYear,
		HomeroomTeacherID: c.HomeroomTeacherID,
		StudentCount:      c.StudentCount,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
	if c.HomeroomTeacher != nil {
		resp.HomeroomTeacherName = c.HomeroomTeacher.FullName
	}
	return resp
}
