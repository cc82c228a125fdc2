package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tnmai/schoolhub-api/internal/middleware"
	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/services"
)

type ScoreHandler struct {
	scoreService   *services.ScoreService
	teacherService *services.TeacherService
}

func NewScoreHandler(scoreService *services.ScoreService, teacherService *services.TeacherService) *ScoreHandler {
	return &ScoreHandler{
		scoreService:   scoreService,
		teacherService: teacherService,
	}
}

// @Summary List Scores
// @Description List scores for a class and subject in a term
// @Tags Scores
// @Accept json
// @Produce json
// @Param class_id query int false "Class ID"
// @Param subject_id query int false "Subject ID"
// @Param term query int false "Term (1 or 2)" default(1)
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /scores [get]
func (h *ScoreHandler) Index(c *gin.Context) {
	term, _ := strconv.Atoi(c.DefaultQuery("term", "1"))

	// Class+subject selection returns the full roster without pagination
	if c.Query("class_id") != "" && c.Query("subject_id") != "" {
		classID, _ := strconv.ParseUint(c.Query("class_id"), 10, 32)
		subjectID, _ := strconv.ParseUint(c.Query("subject_id"), 10, 32)

		scores, err := h.scoreService.FindByClassAndSubject(c.Request.Context(), uint(classID), uint(subjectID), term)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"scores": scores, "term": term})
		return
	}

	query := paginationQuery(c)
	query.Filters["student_id"] = c.Query("student_id")
	query.Filters["subject_id"] = c.Query("subject_id")
	query.Filters["term"] = c.Query("term")

	scores, total, err := h.scoreService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scores": scores,
		"pagination": gin.H{
			"page":        query.Page,
			"per_page":    query.PerPage,
			"total":       total,
			"total_pages": (total + int64(query.PerPage) - 1) / int64(query.PerPage),
		},
	})
}

type ScoreRequest struct {
	StudentID    uint     `json:"student_id" binding:"required"`
	SubjectID    uint     `json:"subject_id" binding:"required"`
	Term         int      `json:"term" binding:"required"`
	AcademicYear string   `json:"academic_year"`
	OralScore    *float64 `json:"oral_score"`
	QuizScore    *float64 `json:"quiz_score"`
	TestScore    *float64 `json:"test_score"`
	FinalScore   *float64 `json:"final_score"`
}

// authorizeGrading enforces that teachers only grade subjects assigned to
// them for the student's class. Admins grade anything.
func (h *ScoreHandler) authorizeGrading(c *gin.Context, studentID, subjectID uint, academicYear string) bool {
	if middleware.IsAdmin(c) {
		return true
	}

	teacher, err := h.teacherService.FindByUserID(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No teacher profile linked to this account"})
		return false
	}

	allowed, err := h.scoreService.CanTeacherGrade(c.Request.Context(), teacher.ID, studentID, subjectID, academicYear)
	if err != nil || !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not assigned to grade this subject for this student"})
		return false
	}
	return true
}

// @Summary Record Score
// @Description Record component scores for a student, subject and term
// @Tags Scores
// @Accept json
// @Produce json
// @Param request body ScoreRequest true "Score Data"
// @Success 201 {object} models.Score
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /scores [post]
func (h *ScoreHandler) Create(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.authorizeGrading(c, req.StudentID, req.SubjectID, req.AcademicYear) {
		return
	}

	score := &models.Score{
		StudentID:  req.StudentID,
		SubjectID:  req.SubjectID,
		Term:       req.Term,
		OralScore:  req.OralScore,
		QuizScore:  req.QuizScore,
		TestScore:  req.TestScore,
		FinalScore: req.FinalScore,
	}

	if err := h.scoreService.Create(c.Request.Context(), requestMeta(c), score); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"score": score, "message": "Score recorded successfully"})
}

// @Summary Update Score
// @Description Update component scores; the average is recomputed
// @Tags Scores
// @Accept json
// @Produce json
// @Param id path int true "Score ID"
// @Param request body ScoreRequest true "Score Data"
// @Success 200 {object} models.Score
// @Failure 404 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /scores/{id} [put]
func (h *ScoreHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	existing, err := h.scoreService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Score not found"})
		return
	}

	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.authorizeGrading(c, existing.StudentID, existing.SubjectID, req.AcademicYear) {
		return
	}

	existing.OralScore = req.OralScore
	existing.QuizScore = req.QuizScore
	existing.TestScore = req.TestScore
	existing.FinalScore = req.FinalScore

	if err := h.scoreService.Update(c.Request.Context(), requestMeta(c), existing); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"score": existing, "message": "Score updated successfully"})
}

// @Summary Delete Score
// @Description Remove a score row
// @Tags Scores
// @Accept json
// @Produce json
// @Param id path int true "Score ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /scores/{id} [delete]
func (h *ScoreHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	existing, err := h.scoreService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Score not found"})
		return
	}

	if !h.authorizeGrading(c, existing.StudentID, existing.SubjectID, c.Query("academic_year")) {
		return
	}

	if err := h.scoreService.Delete(c.Request.Context(), requestMeta(c), uint(id)); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Score deleted successfully"})
}
