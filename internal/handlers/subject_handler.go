package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/services"
)

type SubjectHandler struct {
	subjectService *services.SubjectService
}

func NewSubjectHandler(subjectService *services.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// @Summary List Subjects
// @Description Get a paginated list of subjects
// @Tags Subjects
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name or code"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /subjects [get]
func (h *SubjectHandler) Index(c *gin.Context) {
	query := paginationQuery(c)
	query.Search = c.Query("search_term")

	subjects, total, err := h.subjectService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subjects": subjects,
		"pagination": gin.H{
			"page":        query.Page,
			"per_page":    query.PerPage,
			"total":       total,
			"total_pages": (total + int64(query.PerPage) - 1) / int64(query.PerPage),
		},
	})
}

// @Summary Get Subject
// @Description Get a subject by ID
// @Tags Subjects
// @Accept json
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {object} models.Subject
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /subjects/{id} [get]
func (h *SubjectHandler) Show(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	subject, err := h.subjectService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subject not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subject": subject})
}

type SubjectRequest struct {
	Code    string `json:"code" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Periods int    `json:"periods"`
}

// @Summary Create Subject
// @Description Create a new subject
// @Tags Subjects
// @Accept json
// @Produce json
// @Param request body SubjectRequest true "Subject Data"
// @Success 201 {object} models.Subject
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /subjects [post]
func (h *SubjectHandler) Create(c *gin.Context) {
	var req SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject := &models.Subject{
		Code:    req.Code,
		Name:    req.Name,
		Periods: req.Periods,
	}

	if err := h.subjectService.Create(c.Request.Context(), requestMeta(c), subject); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"subject": subject, "message": "Subject created successfully"})
}

// @Summary Update Subject
// @Description Update subject details
// @Tags Subjects
// @Accept json
// @Produce json
// @Param id path int true "Subject ID"
// @Param request body SubjectRequest true "Subject Data"
// @Success 200 {object} models.Subject
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /subjects/{id} [put]
func (h *SubjectHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	subject, err := h.subjectService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subject not found"})
		return
	}

	var req SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject.Code = req.Code
	subject.Name = req.Name
	subject.Periods = req.Periods

	if err := h.subjectService.Update(c.Request.Context(), requestMeta(c), subject); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subject": subject, "message": "Subject updated successfully"})
}

// @Summary Delete Subject
// @Description Remove a subject
// @Tags Subjects
// @Accept json
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /subjects/{id} [delete]
func (h *SubjectHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	if err := h.subjectService.Delete(c.Request.Context(), requestMeta(c), uint(id)); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subject deleted successfully"})
}
