package submissions

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/projectjoined", JoinProject)
	r.PUT("/projectjoined/:id/status", UpdateJoinedProjectStatus)
	return r
}

func postJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJoinProjectReportsAllFieldErrorsAtOnce(t *testing.T) {
	r := newTestRouter()

	// Short description and no submission at all: both problems must be
	// reported in a single response.
	w := postJSON(r, http.MethodPost, "/projectjoined", gin.H{
		"projectId":   "p1",
		"userId":      "u1",
		"userEmail":   "u1@example.com",
		"description": "too short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Message)
	assert.Contains(t, body.Errors, "description")
	assert.Contains(t, body.Errors, "submission")
	assert.NotContains(t, body.Errors, "projectId")
}

func TestJoinProjectRequiresIdentityFields(t *testing.T) {
	r := newTestRouter()

	w := postJSON(r, http.MethodPost, "/projectjoined", gin.H{
		"description":   strings.Repeat("a", 20),
		"submissionUrl": "https://github.com/u1/solution",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "projectId")
	assert.Contains(t, body.Errors, "userId")
	assert.Contains(t, body.Errors, "userEmail")
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	r := newTestRouter()

	w := postJSON(r, http.MethodPut, "/projectjoined/s1/status", gin.H{
		"status": "Approved",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrInvalidStatusValue)
}

func TestUpdateStatusRequiresBody(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPut, "/projectjoined/s1/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
