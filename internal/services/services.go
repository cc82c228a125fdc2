package services

import (
	"github.com/tnmai/schoolhub-api/internal/config"
	"github.com/tnmai/schoolhub-api/internal/repository"
	"github.com/tnmai/schoolhub-api/internal/storage"
)

// Services holds all service instances
type Services struct {
	Auth         *AuthService
	User         *UserService
	Student      *StudentService
	Teacher      *TeacherService
	Class        *ClassService
	Subject      *SubjectService
	Score        *ScoreService
	Assignment   *AssignmentService
	Audit        *AuditService
	LoginHistory *LoginHistoryService
	Export       *ExportService
	Report       *ReportService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, store *storage.LocalStorage, cfg *config.Config) *Services {
	auditSvc := NewAuditService(repos.Audit)
	loginHistorySvc := NewLoginHistoryService(repos.LoginHistory)
	scoreSvc := NewScoreService(repos.Score, repos.Assignment, repos.Student, auditSvc)

	return &Services{
		Auth:         NewAuthService(repos.User, repos.RefreshToken, loginHistorySvc, cfg),
		User:         NewUserService(repos.User, repos.RefreshToken, store),
		Student:      NewStudentService(repos.Student, repos.Class, auditSvc, store),
		Teacher:      NewTeacherService(repos.Teacher, auditSvc, store),
		Class:        NewClassService(repos.Class, repos.Student, auditSvc),
		Subject:      NewSubjectService(repos.Subject, auditSvc),
		Score:        scoreSvc,
		Assignment:   NewAssignmentService(repos.Assignment, auditSvc),
		Audit:        auditSvc,
		LoginHistory: loginHistorySvc,
		Export:       NewExportService(loginHistorySvc, scoreSvc, repos.Class, repos.Subject),
		Report:       NewReportService(repos.Student, repos.Score),
	}
}
