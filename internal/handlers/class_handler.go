package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ClassHandler struct {
	classService   *services.ClassService
	studentService *services.StudentService
	exportService  *services.ExportService
}

func NewClassHandler(classService *services.ClassService, studentService *services.StudentService, exportService *services.ExportService) *ClassHandler {
	return &ClassHandler{
		classService:   classService,
		studentService: studentService,
		exportService:  exportService,
	}
}

// @Summary List Classes
// @Description Get a paginated list of classes
// @Tags Classes
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param academic_year query string false "Filter by academic year"
// @Param grade query int false "Filter by grade"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /classes [get]
func (h *ClassHandler) Index(c *gin.Context) {
	query := paginationQuery(c)
	query.Search = c.Query("search_term")
	query.Filters["academic_year"] = c.Query("academic_year")
	query.Filters["grade"] = c.Query("grade")

	classes, total, err := h.classService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var responses []models.ClassResponse
	for _, cl := range classes {
		responses = append(responses, cl.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"classes": responses,
		"pagination": gin.H{
			"page":        query.Page,
			"per_page":    query.PerPage,
			"total":       total,
			"total_pages": (total + int64(query.PerPage) - 1) / int64(query.PerPage),
		},
	})
}

// @Summary Get Class
// @Description Get a class by ID
// @Tags Classes
// @Accept json
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} models.ClassResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /classes/{id} [get]
func (h *ClassHandler) Show(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	class, err := h.classService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"class": class.ToResponse()})
}

type ClassRequest struct {
	Name              string `json:"name" binding:"required"`
	Grade             int    `json:"grade" binding:"required"`
	AcademicYear      string `json:"academic_year" binding:"required"`
	HomeroomTeacherID *uint  `json:"homeroom_teacher_id"`
}

// @Summary Create Class
// @Description Create a new class
// @Tags Classes
// @Accept json
// @Produce json
// @Param request body ClassRequest true "Class Data"
// @Success 201 {object} models.ClassResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	var req ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class := &models.Class{
		Name:              req.Name,
		Grade:             req.Grade,
		AcademicYear:      req.AcademicYear,
		HomeroomTeacherID: req.HomeroomTeacherID,
	}

	if err := h.classService.Create(c.Request.Context(), requestMeta(c), class); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"class": class.ToResponse(), "message": "Class created successfully"})
}

// @Summary Update Class
// @Description Update class details
// @Tags Classes
// @Accept json
// @Produce json
// @Param id path int true "Class ID"
// @Param request body ClassRequest true "Class Data"
// @Success 200 {object} models.ClassResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /classes/{id} [put]
func (h *ClassHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	class, err := h.classService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		return
	}

	var req ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class.Name = req.Name
	class.Grade = req.Grade
	class.AcademicYear = req.AcademicYear
	class.HomeroomTeacherID = req.HomeroomTeacherID

	if err := h.classService.Update(c.Request.Context(), requestMeta(c), class); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"class": class.ToResponse(), "message": "Class updated successfully"})
}

// @Summary Delete Class
// @Description Remove a class; refused while students are still assigned
// @Tags Classes
// @Accept json
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /classes/{id} [delete]
func (h *ClassHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	if err := h.classService.Delete(c.Request.Context(), requestMeta(c), uint(id)); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class deleted successfully"})
}

// @Summary Class Students
// @Description List students assigned to a class
// @Tags Classes
// @Accept json
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /classes/{id}/students [get]
func (h *ClassHandler) Students(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	students, err := h.studentService.FindByClass(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var responses []models.StudentResponse
	for _, s := range students {
		responses = append(responses, s.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{"students": responses})
}

// @Summary Export Score Sheet
// @Description Export the class score sheet for a subject and term as XLSX
// @Tags Classes
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Class ID"
// @Param subject_id query int true "Subject ID"
// @Param term query int false "Term (1 or 2)" default(1)
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /classes/{id}/score_sheet [get]
func (h *ClassHandler) ScoreSheet(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	subjectID, err := strconv.ParseUint(c.Query("subject_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject_id is required"})
		return
	}
	term, _ := strconv.Atoi(c.DefaultQuery("term", "1"))

	data, filename, err := h.exportService.ExportClassScoreSheetXLSX(c.Request.Context(), uint(id), uint(subjectID), term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
