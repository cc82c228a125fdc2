package models

import (
	"time"
)

// Enrollment status constants
const (
	StudentStatusEnrolled  = "enrolled"
	StudentStatusSuspended = "suspended"
	StudentStatusGraduated = "graduated"
	StudentStatusWithdrawn = "withdrawn"
)

// Student represents a pupil enrolled in a class
type Student struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Code        string     `gorm:"size:20;uniqueIndex;not null" json:"code"`
	FullName    string     `gorm:"not null" json:"full_name"`
	Gender      string     `gorm:"size:10" json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Address     *string    `json:"address"`
	Phone       *string    `gorm:"size:20" json:"phone"`
	Email       *string    `gorm:"size:100" json:"email"`
	AvatarPath  *string    `json:"avatar_path"`
	ClassID     *uint      `gorm:"index" json:"class_id"`
	Status      string     `gorm:"size:20;default:enrolled" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Associations
	Class  *Class  `gorm:"foreignKey:ClassID" json:"class,omitempty"`
	Scores []Score `gorm:"foreignKey:StudentID" json:"scores,omitempty"`
}

// TableName specifies the table name for Student
func (Student) TableName() string {
	return "students"
}

// IsEnrolled returns true if the student is currently enrolled
func (s *Student) IsEnrolled() bool {
	return s.Status == StudentStatusEnrolled
}

// MaySuspend returns true if the student can be suspended
func (s *Student) MaySuspend() bool {
	return s.Status == StudentStatusEnrolled
}

// MayReinstate returns true if the student can return to enrolled
func (s *Student) MayReinstate() bool {
	return s.Status == StudentStatusSuspended
}

// MayGraduate returns true if the student can graduate
func (s *Student) MayGraduate() bool {
	return s.Status == StudentStatusEnrolled
}

// MayWithdraw returns true if the student can be withdrawn
func (s *Student) MayWithdraw() bool {
	return s.Status == StudentStatusEnrolled || s.Status == StudentStatusSuspended
}

// StudentSnapshot is the audited field set for a student
type StudentSnapshot struct {
	Code        string     `json:"code"`
	FullName    string     `json:"full_name"`
	Gender      string     `json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Address     *string    `json:"address"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email"`
	ClassID     *uint      `json:"class_id"`
	Status      string     `json:"status"`
}

// Snapshot captures the auditable fields of the student
func (s *Student) Snapshot() StudentSnapshot {
	return StudentSnapshot{
		Code:        s.Code,
		FullName:    s.FullName,
		Gender:      s.Gender,
		DateOfBirth: s.DateOfBirth,
		Address:     s.Address,
		Phone:       s.Phone,
		Email:       s.Email,
		ClassID:     s.ClassID,
		Status:      s.Status,
	}
}

// StudentResponse is the JSON response format for students
type StudentResponse struct {
	ID          uint       `json:"id"`
	Code        string     `json:"code"`
	FullName    string     `json:"full_name"`
	Gender      string     `json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Address     *string    `json:"address"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email"`
	AvatarPath  *string    `json:"avatar_path"`
	ClassID     *uint      `json:"class_id"`
	ClassName   string     `json:"class_name,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToResponse converts Student to StudentResponse
func (s *Student) ToResponse() StudentResponse {
	resp := StudentResponse{
		ID:          s.ID,
		Code:        s.Code,
		FullName:    s.FullName,
		Gender:      s.Gender,
		DateOfBirth: s.DateOfBirth,
		Address:     s.Address,
		Phone:       s.Phone,
		Email:       s.Email,
		AvatarPath:  s.AvatarPath,
		ClassID:     s.ClassID,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.Class != nil {
		resp.ClassName = s.Class.Name
	}
	return resp
}
