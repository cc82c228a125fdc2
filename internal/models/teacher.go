package models

import (
	"time"
)

// Teacher represents a member of the teaching staff
type Teacher struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Code        string     `gorm:"size:20;uniqueIndex;not null" json:"code"`
	FullName    string     `gorm:"not null" json:"full_name"`
	Gender      string     `gorm:"size:10" json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Degree      *string    `gorm:"size:100" json:"degree"`
	Address     *string    `json:"address"`
	Phone       *string    `gorm:"size:20" json:"phone"`
	Email       *string    `gorm:"size:100" json:"email"`
	AvatarPath  *string    `json:"avatar_path"`
	UserID      *uint      `gorm:"index" json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Associations
	User        *User                `gorm:"foreignKey:UserID" json:"-"`
	Assignments []TeachingAssignment `gorm:"foreignKey:TeacherID" json:"assignments,omitempty"`
}

// TableName specifies the table name for Teacher
func (Teacher) TableName() string {
	return "teachers"
}

// TeacherSnapshot is the audited field set for a teacher
type TeacherSnapshot struct {
	Code        string     `json:"code"`
	FullName    string     `json:"full_name"`
	Gender      string     `json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Degree      *string    `json:"degree"`
	Address     *string    `json:"address"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email"`
	UserID      *uint      `json:"user_id"`
}

// Snapshot captures the auditable fields of the teacher
func (t *Teacher) Snapshot() TeacherSnapshot {
	return TeacherSnapshot{
		Code:        t.Code,
		FullName:    t.FullName,
		Gender:      t.Gender,
		DateOfBirth: t.DateOfBirth,
		Degree:      t.Degree,
		Address:     t.Address,
		Phone:       t.Phone,
		Email:       t.Email,
		UserID:      t.UserID,
	}
}

// TeacherResponse is the JSON response format for teachers
type TeacherResponse struct {
	ID          uint       `json:"id"`
	Code        string     `json:"code"`
	FullName    string     `json:"full_name"`
	Gender      string     `json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Degree      *string    `json:"degree"`
	Address     *string    `json:"address"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email"`
	AvatarPath  *string    `json:"avatar_path"`
	UserID      *uint      `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToResponse converts Teacher to TeacherResponse
func (t *Teacher) ToResponse() TeacherResponse {
	return TeacherResponse{
		ID:          t.ID,
		Code:        t.Code,
		FullName:    t.FullName,
		Gender:      t.Gender,
		DateOfBirth: t.DateOfBirth,
		Degree:      t.Degree,
		Address:     t.Address,
		Phone:       t.Phone,
		Email:       t.Email,
		AvatarPath:  t.AvatarPath,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
