package uploads

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"api/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/upload", UploadFile)
	return r
}

func multipartUpload(t *testing.T, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadStoresFileAndReturnsURL(t *testing.T) {
	config.UploadDir = t.TempDir()
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "notes.txt", "text/plain", []byte("solution notes")))
	assert.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Message string `json:"message"`
		FileURL string `json:"fileUrl"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.FileURL, "/uploads/file-")
	assert.Contains(t, body.FileURL, ".txt")

	stored, err := filepath.Glob(filepath.Join(config.UploadDir, "file-*.txt"))
	require.NoError(t, err)
	require.Len(t, stored, 1)

	content, err := os.ReadFile(stored[0])
	require.NoError(t, err)
	assert.Equal(t, "solution notes", string(content))
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	config.UploadDir = t.TempDir()
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "video.mp4", "video/mp4", []byte("not really a video")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	stored, _ := filepath.Glob(filepath.Join(config.UploadDir, "file-*"))
	assert.Empty(t, stored)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	config.UploadDir = t.TempDir()
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "big.txt", "text/plain", make([]byte, config.MaxUploadSize+1)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadRequiresFileField(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
