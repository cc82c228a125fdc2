package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tnmai/schoolhub-api/internal/repository"
	"github.com/tnmai/schoolhub-api/internal/services"
)

type LoginHistoryHandler struct {
	loginHistoryService *services.LoginHistoryService
	exportService       *services.ExportService
}

func NewLoginHistoryHandler(loginHistoryService *services.LoginHistoryService, exportService *services.ExportService) *LoginHistoryHandler {
	return &LoginHistoryHandler{
		loginHistoryService: loginHistoryService,
		exportService:       exportService,
	}
}

// @Summary List Login History
// @Description Get a paginated list of login history entries, newest first
// @Tags LoginHistory
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param user_id query int false "Filter by user"
// @Param status query string false "Filter by status (success, failed)"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /login_history [get]
func (h *LoginHistoryHandler) Index(c *gin.Context) {
	query := paginationQuery(c)
	query.Filters["user_id"] = c.Query("user_id")
	query.Filters["status"] = c.Query("status")

	entries, total, err := h.loginHistoryService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"login_history": entries,
		"pagination": gin.H{
			"page":        query.Page,
			"per_page":    query.PerPage,
			"total":       total,
			"total_pages": (total + int64(query.PerPage) - 1) / int64(query.PerPage),
		},
	})
}

// @Summary Export Login History
// @Description Export login history entries as an XLSX spreadsheet
// @Tags LoginHistory
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param user_id query int false "Filter by user"
// @Param status query string false "Filter by status"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /login_history/export [get]
func (h *LoginHistoryHandler) Export(c *gin.Context) {
	query := repository.NewListQuery()
	query.Filters["user_id"] = c.Query("user_id")
	query.Filters["status"] = c.Query("status")

	data, filename, err := h.exportService.ExportLoginHistoryXLSX(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// @Summary Delete User Login History
// @Description Remove all login history rows for one user
// @Tags LoginHistory
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /login_history/users/{user_id} [delete]
func (h *LoginHistoryHandler) DeleteByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	deleted, err := h.loginHistoryService.DeleteByUser(c.Request.Context(), uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted, "message": "Login history deleted"})
}
