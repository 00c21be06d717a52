package companies

import (
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
	r.GET("/companies", GetCompanies)
	r.GET("/companies/:id", GetCompanyByID)
	return r
}

func TestGetCompaniesListsAll(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow("acme", "Acme", "jobs@acme.dev").
			AddRow("hirenextlabs", "Hire Next Labs", "talent@hirenext.dev"))

	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var companies []models.Company
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &companies))
	require.Len(t, companies, 2)
	assert.Equal(t, "acme", companies[0].ID)
	assert.Equal(t, "Hire Next Labs", companies[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCompanyByIDNotFound(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/companies/ghost", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrCompanyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
