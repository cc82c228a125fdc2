package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	User         UserRepository
	Student      StudentRepository
	Teacher      TeacherRepository
	Class        ClassRepository
	Subject      SubjectRepository
	Score        ScoreRepository
	Assignment   AssignmentRepository
	Audit        AuditRepository
	LoginHistory LoginHistoryRepository
	RefreshToken RefreshTokenRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Student:      NewStudentRepository(db),
		Teacher:      NewTeacherRepository(db),
		Class:        NewClassRepository(db),
		Subject:      NewSubjectRepository(db),
		Score:        NewScoreRepository(db),
		Assignment:   NewAssignmentRepository(db),
		Audit:        NewAuditRepository(db),
		LoginHistory: NewLoginHistoryRepository(db),
		RefreshToken: NewRefreshTokenRepository(db),
	}
}

// ListQuery represents common query parameters
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
	SortBy  string
	SortDir string
	Filters map[string]string
}

// NewListQuery creates a ListQuery with defaults
func NewListQuery() *ListQuery {
	return &ListQuery{
		Page:    1,
		PerPage: 20,
		Filters: make(map[string]string),
	}
}
