package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyIDFromName(t *testing.T) {
	testCases := []struct {
		name string
		want string
	}{
		{"Acme", "acme"},
		{"Hire Next Labs", "hirenextlabs"},
		{"ALLCAPS", "allcaps"},
		{"", ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, CompanyIDFromName(tc.name), tc.name)
	}
}

func TestCompanyExists(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := CompanyExists("acme")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleProjectVisibilityFlips(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "visible"}).AddRow("p1", true))
	mock.ExpectExec(`UPDATE "projects" SET "visible"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	project, err := ToggleProjectVisibility("p1", nil)
	require.NoError(t, err)
	assert.False(t, project.Visible)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleProjectVisibilityExplicit(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "visible"}).AddRow("p1", true))
	mock.ExpectExec(`UPDATE "projects" SET "visible"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	visible := true
	project, err := ToggleProjectVisibility("p1", &visible)
	require.NoError(t, err)
	assert.True(t, project.Visible)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleProjectVisibilityNotFound(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := ToggleProjectVisibility("missing", nil)
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetManagedProjectsCountsParticipants(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT projects\.id`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "title", "date", "location", "company_id", "visible", "participants"}).
			AddRow("p1", "Build a CLI", int64(1700000000000), "Remote", "acme", true, int64(3)).
			AddRow("p2", "Design an API", int64(1690000000000), "Paris", "acme", false, int64(0)))

	rows, err := GetManagedProjects("acme")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(3), rows[0].Participants)
	assert.Equal(t, "acme", rows[0].CompanyID)
	assert.False(t, rows[1].Visible)
	assert.NoError(t, mock.ExpectationsWereMet())
}
