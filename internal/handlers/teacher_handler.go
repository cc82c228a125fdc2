package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/services"
)

type TeacherHandler struct {
	teacherService    *services.TeacherService
	assignmentService *services.AssignmentService
}

func NewTeacherHandler(teacherService *services.TeacherService, assignmentService *services.AssignmentService) *TeacherHandler {
	return &TeacherHandler{
		teacherService:    teacherService,
		assignmentService: assignmentService,
	}
}

// @Summary List Teachers
// @Description Get a paginated list of teachers
// @Tags Teachers
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name or code"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /teachers [get]
func (h *TeacherHandler) Index(c *gin.Context) {
	query := paginationQuery(c)
	query.Search = c.Query("search_term")

	teachers, total, err := h.teacherService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var responses []models.TeacherResponse
	for _, t := range teachers {
		responses = append(responses, t.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"teachers": responses,
		"pagination": gin.H{
			"page":        query.Page,
			"per_page":    query.PerPage,
			"total":       total,
			"total_pages": (total + int64(query.PerPage) - 1) / int64(query.PerPage),
		},
	})
}

// @Summary Get Teacher
// @Description Get a teacher by ID
// @Tags Teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} models.TeacherResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /teachers/{id} [get]
func (h *TeacherHandler) Show(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	teacher, err := h.teacherService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Teacher not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teacher": teacher.ToResponse()})
}

type TeacherRequest struct {
	Code        string     `json:"code" binding:"required"`
	FullName    string     `json:"full_name" binding:"required"`
	Gender      string     `json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Degree      *string    `json:"degree"`
	Address     *string    `json:"address"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email"`
	UserID      *uint      `json:"user_id"`
}

// @Summary Create Teacher
// @Description Register a new teacher
// @Tags Teachers
// @Accept json
// @Produce json
// @Param request body TeacherRequest true "Teacher Data"
// @Success 201 {object} models.TeacherResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /teachers [post]
func (h *TeacherHandler) Create(c *gin.Context) {
	var req TeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	teacher := &models.Teacher{
		Code:        req.Code,
		FullName:    req.FullName,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		Degree:      req.Degree,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		UserID:      req.UserID,
	}

	if err := h.teacherService.Create(c.Request.Context(), requestMeta(c), teacher); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"teacher": teacher.ToResponse(), "message": "Teacher created successfully"})
}

// @Summary Update Teacher
// @Description Update teacher details
// @Tags Teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Param request body TeacherRequest true "Teacher Data"
// @Success 200 {object} models.TeacherResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /teachers/{id} [put]
func (h *TeacherHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	teacher, err := h.teacherService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Teacher not found"})
		return
	}

	var req TeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	teacher.Code = req.Code
	teacher.FullName = req.FullName
	teacher.Gender = req.Gender
	teacher.DateOfBirth = req.DateOfBirth
	teacher.Degree = req.Degree
	teacher.Address = req.Address
	teacher.Phone = req.Phone
	teacher.Email = req.Email
	teacher.UserID = req.UserID

	if err := h.teacherService.Update(c.Request.Context(), requestMeta(c), teacher); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"teacher": teacher.ToResponse(), "message": "Teacher updated successfully"})
}

// @Summary Delete Teacher
// @Description Remove a teacher record
// @Tags Teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /teachers/{id} [delete]
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	if err := h.teacherService.Delete(c.Request.Context(), requestMeta(c), uint(id)); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Teacher deleted successfully"})
}

// @Summary Upload Teacher Avatar
// @Description Upload an avatar image for a teacher
// @Tags Teachers
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Teacher ID"
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /teachers/{id}/avatar [post]
func (h *TeacherHandler) UploadAvatar(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar file is required"})
		return
	}
	defer file.Close()

	path, err := h.teacherService.UploadAvatar(c.Request.Context(), uint(id), file, header)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_path": path, "message": "Avatar uploaded successfully"})
}

// @Summary Teacher Assignments
// @Description List teaching assignments for a teacher
// @Tags Teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Param academic_year query string false "Filter by academic year"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /teachers/{id}/assignments [get]
func (h *TeacherHandler) Assignments(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	assignments, err := h.assignmentService.FindByTeacher(c.Request.Context(), uint(id), c.Query("academic_year"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}
