package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"jobify/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheet    = "Applications"
	exportFilename = "applications.xlsx"
	xlsxMIME       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var exportHeader = []any{"ID", "Job Title", "Applicant", "Email", "Status", "Resume URL", "Submitted At"}

// ExportApplications streams every application as an XLSX workbook.
func (h *Handler) ExportApplications(c *gin.Context) {
	var apps []models.Application
	if err := h.DB.Order("id asc").Find(&apps).Error; err != nil {
		log.Printf("[export] list: %v", err)
		abortError(c, http.StatusInternalServerError, "Failed to export applications")
		return
	}

	c.Header("Content-Type", xlsxMIME)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename))
	c.Status(http.StatusOK)
	if err := writeApplicationsXLSX(c.Writer, apps); err != nil {
		log.Printf("[export] write workbook: %v", err)
	}
}

func writeApplicationsXLSX(w io.Writer, apps []models.Application) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}
	for i, a := range apps {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			a.ID,
			a.JobTitle,
			a.UserName,
			a.Email,
			string(a.Status),
			a.Resume,
			a.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}
