package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/services"
)

type StudentHandler struct {
	studentService *services.StudentService
	reportService  *services.ReportService
	scoreService   *services.ScoreService
}

func NewStudentHandler(studentService *services.StudentService, reportService *services.ReportService, scoreService *services.ScoreService) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		reportService:  reportService,
		scoreService:   scoreService,
	}
}

// @Summary List Students
// @Description Get a paginated list of students
// @Tags Students
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name or code"
// @Param class_id query int false "Filter by class"
// @Param status query string false "Filter by enrollment status"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /students [get]
func (h *StudentHandler) Index(c *gin.Context) {
	query := paginationQuery(c)
	query.Search = c.Query("search_term")
	query.Filters["class_id"] = c.Query("class_id")
	query.Filters["status"] = c.Query("status")

	students, total, err := h.studentService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var responses []models.StudentResponse
	for _, s := range students {
		responses = append(responses, s.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"students": responses,
		"pagination": gin.H{
			"page":        query.Page,
			"per_page":    query.PerPage,
			"total":       total,
			"total_pages": (total + int64(query.PerPage) - 1) / int64(query.PerPage),
		},
	})
}

// @Summary Get Student
// @Description Get a student by ID
// @Tags Students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.StudentResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /students/{id} [get]
func (h *StudentHandler) Show(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	student, err := h.studentService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": student.ToResponse()})
}

type StudentRequest struct {
	Code        string     `json:"code" binding:"required"`
	FullName    string     `json:"full_name" binding:"required"`
	Gender      string     `json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Address     *string    `json:"address"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email"`
	ClassID     *uint      `json:"class_id"`
}

// @Summary Create Student
// @Description Enroll a new student
// @Tags Students
// @Accept json
// @Produce json
// @Param request body StudentRequest true "Student Data"
// @Success 201 {object} models.StudentResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student := &models.Student{
		Code:        req.Code,
		FullName:    req.FullName,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		ClassID:     req.ClassID,
	}

	if err := h.studentService.Create(c.Request.Context(), requestMeta(c), student); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"student": student.ToResponse(), "message": "Student created successfully"})
}

// @Summary Update Student
// @Description Update student details
// @Tags Students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body StudentRequest true "Student Data"
// @Success 200 {object} models.StudentResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	student, err := h.studentService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student.Code = req.Code
	student.FullName = req.FullName
	student.Gender = req.Gender
	student.DateOfBirth = req.DateOfBirth
	student.Address = req.Address
	student.Phone = req.Phone
	student.Email = req.Email
	student.ClassID = req.ClassID

	if err := h.studentService.Update(c.Request.Context(), requestMeta(c), student); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"student": student.ToResponse(), "message": "Student updated successfully"})
}

// @Summary Delete Student
// @Description Remove a student record
// @Tags Students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	if err := h.studentService.Delete(c.Request.Context(), requestMeta(c), uint(id)); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}

type TransitionRequest struct {
	Event string `json:"event" binding:"required"`
}

// @Summary Transition Student Status
// @Description Fire an enrollment status event (suspend, reinstate, graduate, withdraw)
// @Tags Students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body TransitionRequest true "Transition Event"
// @Success 200 {object} models.StudentResponse
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /students/{id}/transition [post]
func (h *StudentHandler) Transition(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.studentService.Transition(c.Request.Context(), requestMeta(c), uint(id), req.Event)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"student": student.ToResponse(), "message": "Status updated"})
}

// @Summary Upload Student Avatar
// @Description Upload an avatar image for a student
// @Tags Students
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Student ID"
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /students/{id}/avatar [post]
func (h *StudentHandler) UploadAvatar(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar file is required"})
		return
	}
	defer file.Close()

	path, err := h.studentService.UploadAvatar(c.Request.Context(), uint(id), file, header)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_path": path, "message": "Avatar uploaded successfully"})
}

// @Summary Student Scores
// @Description List a student's scores for a term
// @Tags Students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param term query int false "Term (1 or 2)" default(1)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /students/{id}/scores [get]
func (h *StudentHandler) Scores(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	term, _ := strconv.Atoi(c.DefaultQuery("term", "1"))

	scores, err := h.scoreService.FindByStudent(c.Request.Context(), uint(id), term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	average, err := h.reportService.TermAverage(c.Request.Context(), uint(id), term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scores":       scores,
		"term":         term,
		"term_average": average,
	})
}

// @Summary Report Card PDF
// @Description Generate a report card PDF for a student and term
// @Tags Students
// @Produce application/pdf
// @Param id path int true "Student ID"
// @Param term query int false "Term (1 or 2)" default(1)
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /students/{id}/report_card [get]
func (h *StudentHandler) ReportCard(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	term, _ := strconv.Atoi(c.DefaultQuery("term", "1"))

	buf, err := h.reportService.GenerateReportCardPDF(c.Request.Context(), uint(id), term)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("report_card_%d_term%d.pdf", id, term)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
