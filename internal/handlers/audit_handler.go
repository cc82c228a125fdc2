package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/services"
)

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// @Summary List Audit Logs
// @Description Get a paginated list of audit entries, newest first
// @Tags Audit
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param table_name query string false "Filter by audited table"
// @Param record_id query int false "Filter by record ID"
// @Param user_id query int false "Filter by acting user"
// @Param action query string false "Filter by action (CREATE, UPDATE, DELETE)"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /audit_logs [get]
func (h *AuditHandler) Index(c *gin.Context) {
	query := paginationQuery(c)
	query.Filters["table_name"] = c.Query("table_name")
	query.Filters["record_id"] = c.Query("record_id")
	query.Filters["user_id"] = c.Query("user_id")
	query.Filters["action"] = c.Query("action")

	logs, total, err := h.auditService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var responses []models.AuditLogResponse
	for _, l := range logs {
		responses = append(responses, l.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"audit_logs": responses,
		"pagination": gin.H{
			"page":        query.Page,
			"per_page":    query.PerPage,
			"total":       total,
			"total_pages": (total + int64(query.PerPage) - 1) / int64(query.PerPage),
		},
	})
}

// @Summary Record History
// @Description Get the full audit trail for one record, newest first
// @Tags Audit
// @Accept json
// @Produce json
// @Param table_name path string true "Audited table name"
// @Param record_id path int true "Record ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /audit_logs/{table_name}/{record_id} [get]
func (h *AuditHandler) History(c *gin.Context) {
	tableName := c.Param("table_name")
	recordID, err := strconv.ParseUint(c.Param("record_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID"})
		return
	}

	logs, err := h.auditService.FindByRecord(c.Request.Context(), tableName, uint(recordID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var responses []models.AuditLogResponse
	for _, l := range logs {
		responses = append(responses, l.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{"audit_logs": responses})
}
