package api

import (
	"strconv"
	"time"

	"cashtrack/database"
	"cashtrack/middleware"
	"cashtrack/store"

	"github.com/gin-gonic/gin"
)

// InflowHandler serves inflow record endpoints.
type InflowHandler struct{}

// NewInflowHandler creates an InflowHandler.
func NewInflowHandler() *InflowHandler {
	return &InflowHandler{}
}

// CreateInflowRequest is the inflow creation payload. Amount is validated
// by the store so a missing or non-positive value reports the field.
type CreateInflowRequest struct {
	Amount         float64 `json:"amount" example:"1500.00"`
	Date           string  `json:"date" example:"2024-01-15"`
	PaymentChannel string  `json:"paymentChannel" example:"cash"`
	Note           string  `json:"note" example:"morning sales"`
}

// UpdateInflowRequest is a partial update; omitted fields stay unchanged.
type UpdateInflowRequest struct {
	Amount         *float64 `json:"amount"`
	Date           *string  `json:"date"`
	PaymentChannel *string  `json:"paymentChannel"`
	Note           *string  `json:"note"`
}

// Create records a received-cash event
// @Summary Create an inflow
// @Tags inflows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateInflowRequest true "Inflow details"
// @Success 201 {object} Response{data=models.Inflow} "Inflow created successfully"
// @Failure 400 {object} Response "Invalid amount, channel or note"
// @Failure 401 {object} Response "Unauthorized"
// @Router /api/v1/inflows [post]
func (h *InflowHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateInflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid payload")
		return
	}

	input := store.CreateInflowInput{
		Amount:         req.Amount,
		PaymentChannel: req.PaymentChannel,
		Note:           req.Note,
	}
	if req.Date != "" {
		t, err := parseDate(req.Date)
		if err != nil {
			BadRequest(c, "date must be a valid timestamp")
			return
		}
		input.Date = &t
	}

	inflow, err := store.New(database.DB).CreateInflow(userID, input)
	if err != nil {
		StoreError(c, err, "Inflow not found", "Failed to create inflow")
		return
	}

	Created(c, "Inflow created successfully", inflow)
}

// List returns the caller's inflows
// @Summary List inflows
// @Description Live inflows newest first, optionally filtered to one day and/or one payment channel.
// @Tags inflows
// @Produce json
// @Security BearerAuth
// @Param date query string false "Exact day (YYYY-MM-DD)"
// @Param channel query string false "Payment channel filter" Enums(cash,transfer,online)
// @Param page query int false "Page (1-indexed)" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} Response "Inflows retrieved successfully"
// @Failure 400 {object} Response "Malformed date filter"
// @Failure 401 {object} Response "Unauthorized"
// @Router /api/v1/inflows [get]
func (h *InflowHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	day, err := optionalDay(c, "date")
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	filter := store.InflowFilter{
		Day:     day,
		Channel: c.Query("channel"),
	}
	page := intQuery(c, "page", store.DefaultPage)
	limit := intQuery(c, "limit", store.DefaultLimit)

	inflows, pagination, err := store.New(database.DB).ListInflows(userID, filter, page, limit)
	if err != nil {
		StoreError(c, err, "Inflow not found", "Failed to list inflows")
		return
	}

	Success(c, "Inflows retrieved successfully", gin.H{
		"inflows":    inflows,
		"pagination": pagination,
	})
}

// Get returns one inflow
// @Summary Get an inflow by id
// @Tags inflows
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inflow id"
// @Success 200 {object} Response{data=models.Inflow} "Inflow retrieved successfully"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "Inflow not found"
// @Router /api/v1/inflows/{id} [get]
func (h *InflowHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Inflow not found")
		return
	}

	inflow, err := store.New(database.DB).InflowByID(userID, uint(id))
	if err != nil {
		StoreError(c, err, "Inflow not found", "Failed to load inflow")
		return
	}

	Success(c, "Inflow retrieved successfully", inflow)
}

// Update edits an inflow
// @Summary Update an inflow
// @Description Applies only the fields present in the payload.
// @Tags inflows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inflow id"
// @Param request body UpdateInflowRequest true "Fields to update"
// @Success 200 {object} Response{data=models.Inflow} "Inflow updated successfully"
// @Failure 400 {object} Response "Invalid amount, channel or note"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "Inflow not found"
// @Router /api/v1/inflows/{id} [put]
func (h *InflowHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Inflow not found")
		return
	}

	var req UpdateInflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid payload")
		return
	}

	input := store.UpdateInflowInput{
		Amount:         req.Amount,
		PaymentChannel: req.PaymentChannel,
		Note:           req.Note,
	}
	if req.Date != nil {
		var t time.Time
		if t, err = parseDate(*req.Date); err != nil {
			BadRequest(c, "date must be a valid timestamp")
			return
		}
		input.Date = &t
	}

	inflow, err := store.New(database.DB).UpdateInflow(userID, uint(id), input)
	if err != nil {
		StoreError(c, err, "Inflow not found", "Failed to update inflow")
		return
	}

	Success(c, "Inflow updated successfully", inflow)
}

// Delete soft-deletes an inflow
// @Summary Delete an inflow
// @Description Marks the record deleted; it disappears from every read but is never physically removed.
// @Tags inflows
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inflow id"
// @Success 200 {object} Response "Inflow deleted successfully"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "Inflow not found"
// @Router /api/v1/inflows/{id} [delete]
func (h *InflowHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Inflow not found")
		return
	}

	if err := store.New(database.DB).SoftDeleteInflow(userID, uint(id)); err != nil {
		StoreError(c, err, "Inflow not found", "Failed to delete inflow")
		return
	}

	Success(c, "Inflow deleted successfully", nil)
}
