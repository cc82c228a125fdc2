package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/repository"
	"github.com/tnmai/schoolhub-api/internal/services"
)

func listContext(t *testing.T, rawQuery string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/?"+rawQuery, nil)
	return c, w
}

func TestPaginationQuery_Defaults(t *testing.T) {
	c, _ := listContext(t, "")
	query := paginationQuery(c)
	assert.Equal(t, 1, query.Page)
	assert.Equal(t, 20, query.PerPage)
}

func TestPaginationQuery_ParsesValues(t *testing.T) {
	c, _ := listContext(t, "page=3&per_page=50")
	query := paginationQuery(c)
	assert.Equal(t, 3, query.Page)
	assert.Equal(t, 50, query.PerPage)
}

func TestPaginationQuery_RejectsNonPositiveValues(t *testing.T) {
	c, _ := listContext(t, "page=0&per_page=0")
	query := paginationQuery(c)
	assert.Equal(t, 1, query.Page)
	assert.Equal(t, 20, query.PerPage)

	c, _ = listContext(t, "page=-2&per_page=-10")
	query = paginationQuery(c)
	assert.Equal(t, 1, query.Page)
	assert.Equal(t, 20, query.PerPage)
}

func TestPaginationQuery_RejectsNonNumericValues(t *testing.T) {
	c, _ := listContext(t, "page=abc&per_page=lots")
	query := paginationQuery(c)
	assert.Equal(t, 1, query.Page)
	assert.Equal(t, 20, query.PerPage)
}

type listAuditRepo struct {
	repository.AuditRepository
	mockList func(ctx context.Context, query *repository.ListQuery) ([]models.AuditLog, int64, error)
}

func (m *listAuditRepo) List(ctx context.Context, query *repository.ListQuery) ([]models.AuditLog, int64, error) {
	return m.mockList(ctx, query)
}

func TestAuditHandler_Index_ZeroPerPageRespondsOK(t *testing.T) {
	repo := &listAuditRepo{
		mockList: func(ctx context.Context, query *repository.ListQuery) ([]models.AuditLog, int64, error) {
			return []models.AuditLog{}, 45, nil
		},
	}
	h := NewAuditHandler(services.NewAuditService(repo))

	c, w := listContext(t, "per_page=0")
	h.Index(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Pagination struct {
			Page       int   `json:"page"`
			PerPage    int   `json:"per_page"`
			Total      int64 `json:"total"`
			TotalPages int64 `json:"total_pages"`
		} `json:"pagination"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 20, body.Pagination.PerPage)
	assert.Equal(t, int64(45), body.Pagination.Total)
	assert.Equal(t, int64(3), body.Pagination.TotalPages)
}
