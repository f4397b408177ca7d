package api

import (
	"cashtrack/database"
	"cashtrack/middleware"
	"cashtrack/store"

	"github.com/gin-gonic/gin"
)

// SummaryHandler serves the aggregation endpoints.
type SummaryHandler struct{}

// NewSummaryHandler creates a SummaryHandler.
func NewSummaryHandler() *SummaryHandler {
	return &SummaryHandler{}
}

// Daily aggregates one calendar day
// @Summary Daily cash summary
// @Description Sums and counts the caller's live inflows and outflows over one day.
// @Tags summary
// @Produce json
// @Security BearerAuth
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} Response "Daily summary retrieved successfully"
// @Failure 400 {object} Response "Missing or malformed date"
// @Failure 401 {object} Response "Unauthorized"
// @Router /api/v1/summary/daily [get]
func (h *SummaryHandler) Daily(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	day, err := store.ParseDay("date", c.Query("date"))
	if err != nil {
		StoreError(c, err, "Record not found", "Failed to compute summary")
		return
	}

	summary, err := store.New(database.DB).DailySummary(userID, day)
	if err != nil {
		StoreError(c, err, "Record not found", "Failed to compute summary")
		return
	}

	Success(c, "Daily summary retrieved successfully", gin.H{
		"date":    c.Query("date"),
		"summary": summary,
	})
}

// Range aggregates a date range
// @Summary Range cash summary
// @Description Sums and counts over [startDate 00:00, endDate 23:59:59.999]. An inverted range yields zeros.
// @Tags summary
// @Produce json
// @Security BearerAuth
// @Param startDate query string true "Start day (YYYY-MM-DD)"
// @Param endDate query string true "End day (YYYY-MM-DD)"
// @Success 200 {object} Response "Range summary retrieved successfully"
// @Failure 400 {object} Response "Missing or malformed bounds"
// @Failure 401 {object} Response "Unauthorized"
// @Router /api/v1/summary/range [get]
func (h *SummaryHandler) Range(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	start, err := store.ParseDay("startDate", c.Query("startDate"))
	if err != nil {
		StoreError(c, err, "Record not found", "Failed to compute summary")
		return
	}
	end, err := store.ParseDay("endDate", c.Query("endDate"))
	if err != nil {
		StoreError(c, err, "Record not found", "Failed to compute summary")
		return
	}

	summary, err := store.New(database.DB).RangeSummary(userID, start, end)
	if err != nil {
		StoreError(c, err, "Record not found", "Failed to compute summary")
		return
	}

	Success(c, "Range summary retrieved successfully", gin.H{
		"startDate": c.Query("startDate"),
		"endDate":   c.Query("endDate"),
		"summary":   summary,
	})
}

// History returns the merged transaction feed
// @Summary Transaction history
// @Description Merged inflow/outflow sequence ordered by date descending, paginated after the global sort.
// @Tags summary
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (1-indexed)" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} Response "Transaction history retrieved successfully"
// @Failure 401 {object} Response "Unauthorized"
// @Router /api/v1/summary/history [get]
func (h *SummaryHandler) History(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	page := intQuery(c, "page", store.DefaultPage)
	limit := intQuery(c, "limit", store.DefaultHistoryLimit)

	transactions, pagination, err := store.New(database.DB).TransactionHistory(userID, page, limit)
	if err != nil {
		StoreError(c, err, "Record not found", "Failed to load transaction history")
		return
	}

	Success(c, "Transaction history retrieved successfully", gin.H{
		"transactions": transactions,
		"pagination":   pagination,
	})
}
