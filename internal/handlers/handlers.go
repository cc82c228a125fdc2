package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tnmai/schoolhub-api/internal/jobs"
	"github.com/tnmai/schoolhub-api/internal/middleware"
	"github.com/tnmai/schoolhub-api/internal/repository"
	"github.com/tnmai/schoolhub-api/internal/services"
	"github.com/tnmai/schoolhub-api/internal/storage"
)

// Handlers holds all handler instances
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	User         *UserHandler
	Student      *StudentHandler
	Teacher      *TeacherHandler
	Class        *ClassHandler
	Subject      *SubjectHandler
	Score        *ScoreHandler
	Assignment   *AssignmentHandler
	Audit        *AuditHandler
	LoginHistory *LoginHistoryHandler
	Job          *JobHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services, store *storage.LocalStorage, worker *jobs.Worker) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(),
		Auth:         NewAuthHandler(svcs.Auth),
		User:         NewUserHandler(svcs.User, svcs.LoginHistory),
		Student:      NewStudentHandler(svcs.Student, svcs.Report, svcs.Score),
		Teacher:      NewTeacherHandler(svcs.Teacher, svcs.Assignment),
		Class:        NewClassHandler(svcs.Class, svcs.Student, svcs.Export),
		Subject:      NewSubjectHandler(svcs.Subject),
		Score:        NewScoreHandler(svcs.Score, svcs.Teacher),
		Assignment:   NewAssignmentHandler(svcs.Assignment),
		Audit:        NewAuditHandler(svcs.Audit),
		LoginHistory: NewLoginHistoryHandler(svcs.LoginHistory, svcs.Export),
		Job:          NewJobHandler(worker),
	}
}

// requestMeta builds the request-scoped metadata audit and login records
// carry. The actor comes from the auth middleware when present.
func requestMeta(c *gin.Context) services.RequestMeta {
	meta := services.RequestMeta{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Method:    c.Request.Method,
		URL:       c.Request.URL.RequestURI(),
	}
	if userID := middleware.GetUserID(c); userID > 0 {
		meta.UserID = &userID
	}
	return meta
}

// paginationQuery builds a ListQuery from the page and per_page query
// params. Missing, non-numeric or non-positive values keep the defaults.
func paginationQuery(c *gin.Context) *repository.ListQuery {
	query := repository.NewListQuery()
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		query.Page = page
	}
	if perPage, err := strconv.Atoi(c.Query("per_page")); err == nil && perPage > 0 {
		query.PerPage = perPage
	}
	return query
}
