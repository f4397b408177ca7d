package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"cashtrack/database"
	"cashtrack/middleware"
	"cashtrack/store"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler serves transaction-history downloads.
type ExportHandler struct{}

// NewExportHandler creates an ExportHandler.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

var exportHeaders = []string{"ID", "Type", "Amount", "Date", "Channel/Category", "Note"}

func exportRow(tx store.Transaction) []string {
	kindField := tx.PaymentChannel
	if tx.Type == store.KindOutflow {
		kindField = tx.Category
	}
	return []string{
		fmt.Sprintf("%d", tx.ID),
		tx.Type,
		fmt.Sprintf("%.2f", tx.Amount),
		tx.Date.Format("2006-01-02 15:04:05"),
		kindField,
		tx.Note,
	}
}

func (h *ExportHandler) loadRange(c *gin.Context) ([]store.Transaction, string, string, bool) {
	userID := middleware.GetCurrentUserID(c)

	startStr := c.Query("startDate")
	endStr := c.Query("endDate")

	start, err := store.ParseDay("startDate", startStr)
	if err != nil {
		BadRequest(c, err.Error())
		return nil, "", "", false
	}
	end, err := store.ParseDay("endDate", endStr)
	if err != nil {
		BadRequest(c, err.Error())
		return nil, "", "", false
	}

	transactions, err := store.New(database.DB).TransactionsInRange(userID, start, end)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to load transactions"))
		return nil, "", "", false
	}
	return transactions, startStr, endStr, true
}

// CSV downloads the merged history as CSV
// @Summary Export transactions as CSV
// @Tags export
// @Produce text/csv
// @Security BearerAuth
// @Param startDate query string true "Start day (YYYY-MM-DD)"
// @Param endDate query string true "End day (YYYY-MM-DD)"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} Response "Missing or malformed bounds"
// @Failure 401 {object} Response "Unauthorized"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	transactions, startStr, endStr, ok := h.loadRange(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// BOM so Excel opens the file as UTF-8.
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write(exportHeaders); err != nil {
		InternalError(c, "Failed to generate CSV")
		return
	}
	for _, tx := range transactions {
		if err := writer.Write(exportRow(tx)); err != nil {
			InternalError(c, "Failed to generate CSV")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "Failed to generate CSV")
		return
	}

	filename := fmt.Sprintf("transactions_%s_%s.csv", startStr, endStr)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Excel downloads the merged history as XLSX
// @Summary Export transactions as Excel
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param startDate query string true "Start day (YYYY-MM-DD)"
// @Param endDate query string true "End day (YYYY-MM-DD)"
// @Success 200 {file} file "XLSX file"
// @Failure 400 {object} Response "Missing or malformed bounds"
// @Failure 401 {object} Response "Unauthorized"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) Excel(c *gin.Context) {
	transactions, startStr, endStr, ok := h.loadRange(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transactions"
	f.SetSheetName("Sheet1", sheet)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	for row, tx := range transactions {
		for col, value := range exportRow(tx) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("transactions_%s_%s.xlsx", startStr, endStr)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
