package projects

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"api/database"
	"api/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		sqlDB.Close()
	})
	return mock
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/projects", CreateProject)
	r.GET("/projects/:id", GetProjectByID)
	return r
}

func TestCreateProjectThenFetchReturnsSameFields(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(`INSERT INTO "projects"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	r := newTestRouter()

	payload := gin.H{
		"_id":         "p1",
		"title":       "Build a CLI",
		"location":    "Remote",
		"difficulty":  "Medium",
		"companyId":   "acme",
		"description": "Ship a working command line tool",
		"prize":       "500",
		"duration":    "2 weeks",
		"postedDate":  int64(1700000000000),
		"category":    "Backend",
		"visible":     true,
	}
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "title", "location", "difficulty", "company_id",
				"description", "prize", "duration", "posted_date", "category", "visible"}).
			AddRow(created.ID, created.Title, created.Location, created.Difficulty,
				created.CompanyID, created.Description, created.Prize, created.Duration,
				created.PostedDate, created.Category, created.Visible))

	req = httptest.NewRequest(http.MethodGet, "/projects/p1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))

	assert.Equal(t, created, fetched)
	assert.Equal(t, "Build a CLI", fetched.Title)
	assert.Equal(t, "Remote", fetched.Location)
	assert.Equal(t, "Medium", fetched.Difficulty)
	assert.Equal(t, "500", fetched.Prize)
	assert.Equal(t, "2 weeks", fetched.Duration)
	assert.Equal(t, "Backend", fetched.Category)
	assert.Equal(t, "acme", fetched.CompanyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProjectRejectsUnknownCompany(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	r := newTestRouter()

	raw, _ := json.Marshal(gin.H{
		"title":       "Build a CLI",
		"location":    "Remote",
		"difficulty":  "Medium",
		"companyId":   "ghost",
		"description": "Ship a working command line tool",
		"prize":       "500",
		"duration":    "2 weeks",
		"category":    "Backend",
	})
	req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrCompanyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
