package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/services"
)

type AssignmentHandler struct {
	assignmentService *services.AssignmentService
}

func NewAssignmentHandler(assignmentService *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// @Summary List Teaching Assignments
// @Description Get a paginated list of teaching assignments
// @Tags Assignments
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param teacher_id query int false "Filter by teacher"
// @Param class_id query int false "Filter by class"
// @Param academic_year query string false "Filter by academic year"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /assignments [get]
func (h *AssignmentHandler) Index(c *gin.Context) {
	query := paginationQuery(c)
	query.Filters["teacher_id"] = c.Query("teacher_id")
	query.Filters["class_id"] = c.Query("class_id")
	query.Filters["academic_year"] = c.Query("academic_year")

	assignments, total, err := h.assignmentService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignments": assignments,
		"pagination": gin.H{
			"page":        query.Page,
			"per_page":    query.PerPage,
			"total":       total,
			"total_pages": (total + int64(query.PerPage) - 1) / int64(query.PerPage),
		},
	})
}

type AssignmentRequest struct {
	TeacherID    uint   `json:"teacher_id" binding:"required"`
	SubjectID    uint   `json:"subject_id" binding:"required"`
	ClassID      uint   `json:"class_id" binding:"required"`
	AcademicYear string `json:"academic_year" binding:"required"`
}

// @Summary Create Teaching Assignment
// @Description Assign a teacher to a subject and class for an academic year
// @Tags Assignments
// @Accept json
// @Produce json
// @Param request body AssignmentRequest true "Assignment Data"
// @Success 201 {object} models.TeachingAssignment
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /assignments [post]
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment := &models.TeachingAssignment{
		TeacherID:    req.TeacherID,
		SubjectID:    req.SubjectID,
		ClassID:      req.ClassID,
		AcademicYear: req.AcademicYear,
	}

	if err := h.assignmentService.Create(c.Request.Context(), requestMeta(c), assignment); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"assignment": assignment, "message": "Assignment created successfully"})
}

// @Summary Update Teaching Assignment
// @Description Reassign a teaching assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param request body AssignmentRequest true "Assignment Data"
// @Success 200 {object} models.TeachingAssignment
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /assignments/{id} [put]
func (h *AssignmentHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	assignment, err := h.assignmentService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		return
	}

	var req AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment.TeacherID = req.TeacherID
	assignment.SubjectID = req.SubjectID
	assignment.ClassID = req.ClassID
	assignment.AcademicYear = req.AcademicYear

	if err := h.assignmentService.Update(c.Request.Context(), requestMeta(c), assignment); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignment": assignment, "message": "Assignment updated successfully"})
}

// @Summary Delete Teaching Assignment
// @Description Remove a teaching assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	if err := h.assignmentService.Delete(c.Request.Context(), requestMeta(c), uint(id)); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assignment deleted successfully"})
}
