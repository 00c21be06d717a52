package submissions

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportJoinedProjects writes all submissions to an XLSX workbook
// @Summary Export joined projects as XLSX
// @Description Download every submission (optionally filtered by project) as a spreadsheet
// @Tags ProjectJoined
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param projectId query string false "Limit to one project"
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string
// @Router /projectjoined/export [get]
// @Security Bearer
func ExportJoinedProjects(c *gin.Context) {
	var (
		submissions []models.Submission
		err         error
	)

	if projectID := c.Query("projectId"); projectID != "" {
		submissions, err = services.GetProjectSubmissions(projectID)
	} else {
		submissions, err = services.GetAllSubmissions()
	}
	if err != nil {
		log.Printf("Failed to export joined projects: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedExport)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Submissions"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Project", "Company", "User Email", "Status", "Submitted", "Solution URL", "Solution File"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, s := range submissions {
		values := []interface{}{
			s.ID, s.Title, s.CompanyID, s.UserEmail, s.Status,
			s.Date.Format(time.RFC3339), s.SubmissionUrl, s.SubmissionFile,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="submissions-%s.xlsx"`, time.Now().Format("2006-01-02")))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		log.Printf("Failed to write XLSX response: %v", err)
	}
}
