package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func bindJSON(t *testing.T, payload map[string]interface{}, obj interface{}) error {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	jsonBytes, _ := json.Marshal(payload)
	c.Request, _ = http.NewRequest("POST", "/", bytes.NewBuffer(jsonBytes))
	c.Request.Header.Set("Content-Type", "application/json")

	return c.ShouldBindJSON(obj)
}

func TestLoginRequestBinding(t *testing.T) {
	var req LoginRequest
	err := bindJSON(t, map[string]interface{}{
		"email":    "admin@school.edu.vn",
		"password": "secret123",
	}, &req)
	assert.NoError(t, err)
	assert.Equal(t, "admin@school.edu.vn", req.Email)

	err = bindJSON(t, map[string]interface{}{"email": "not-an-email", "password": "x"}, &LoginRequest{})
	assert.Error(t, err)

	err = bindJSON(t, map[string]interface{}{"email": "admin@school.edu.vn"}, &LoginRequest{})
	assert.Error(t, err)
}

func TestScoreRequestBinding(t *testing.T) {
	var req ScoreRequest
	err := bindJSON(t, map[string]interface{}{
		"student_id": 1,
		"subject_id": 2,
		"term":       1,
		"oral_score": 8.5,
	}, &req)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), req.StudentID)
	assert.NotNil(t, req.OralScore)
	assert.Equal(t, 8.5, *req.OralScore)
	assert.Nil(t, req.FinalScore)

	// Identity fields are mandatory
	err = bindJSON(t, map[string]interface{}{"oral_score": 8.5}, &ScoreRequest{})
	assert.Error(t, err)
}

func TestTransitionRequestBinding(t *testing.T) {
	var req TransitionRequest
	err := bindJSON(t, map[string]interface{}{"event": "suspend"}, &req)
	assert.NoError(t, err)
	assert.Equal(t, "suspend", req.Event)

	err = bindJSON(t, map[string]interface{}{}, &TransitionRequest{})
	assert.Error(t, err)
}
