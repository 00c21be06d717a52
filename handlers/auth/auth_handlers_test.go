package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", Login)
	r.POST("/register", Register)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginRequiresEmailAndPassword(t *testing.T) {
	r := newTestRouter()

	w := postJSON(r, "/login", gin.H{"email": "u1@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/login", gin.H{"password": "secret"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/login", gin.H{"email": "not-an-email", "password": "secret"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	r := newTestRouter()

	w := postJSON(r, "/register", gin.H{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRequiresName(t *testing.T) {
	r := newTestRouter()

	w := postJSON(r, "/register", gin.H{
		"email":    "alice@example.com",
		"password": "longenoughpassword",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
