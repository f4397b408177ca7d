package api

import (
	"strconv"
	"time"

	"cashtrack/database"
	"cashtrack/middleware"
	"cashtrack/store"

	"github.com/gin-gonic/gin"
)

// OutflowHandler serves outflow record endpoints.
type OutflowHandler struct{}

// NewOutflowHandler creates an OutflowHandler.
func NewOutflowHandler() *OutflowHandler {
	return &OutflowHandler{}
}

// CreateOutflowRequest is the outflow creation payload.
type CreateOutflowRequest struct {
	Amount   float64 `json:"amount" example:"250.00"`
	Date     string  `json:"date" example:"2024-01-15"`
	Category string  `json:"category" example:"restocking"`
	Note     string  `json:"note" example:"weekly stock"`
}

// UpdateOutflowRequest is a partial update; omitted fields stay unchanged.
type UpdateOutflowRequest struct {
	Amount   *float64 `json:"amount"`
	Date     *string  `json:"date"`
	Category *string  `json:"category"`
	Note     *string  `json:"note"`
}

// Create records a spent-cash event
// @Summary Create an outflow
// @Tags outflows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateOutflowRequest true "Outflow details"
// @Success 201 {object} Response{data=models.Outflow} "Outflow created successfully"
// @Failure 400 {object} Response "Invalid amount, category or note"
// @Failure 401 {object} Response "Unauthorized"
// @Router /api/v1/outflows [post]
func (h *OutflowHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateOutflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid payload")
		return
	}

	input := store.CreateOutflowInput{
		Amount:   req.Amount,
		Category: req.Category,
		Note:     req.Note,
	}
	if req.Date != "" {
		t, err := parseDate(req.Date)
		if err != nil {
			BadRequest(c, "date must be a valid timestamp")
			return
		}
		input.Date = &t
	}

	outflow, err := store.New(database.DB).CreateOutflow(userID, input)
	if err != nil {
		StoreError(c, err, "Outflow not found", "Failed to create outflow")
		return
	}

	Created(c, "Outflow created successfully", outflow)
}

// List returns the caller's outflows
// @Summary List outflows
// @Description Live outflows newest first, optionally filtered to one day and/or one category.
// @Tags outflows
// @Produce json
// @Security BearerAuth
// @Param date query string false "Exact day (YYYY-MM-DD)"
// @Param category query string false "Category filter" Enums(restocking,delivery,utilities,rent,salaries,other)
// @Param page query int false "Page (1-indexed)" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} Response "Outflows retrieved successfully"
// @Failure 400 {object} Response "Malformed date filter"
// @Failure 401 {object} Response "Unauthorized"
// @Router /api/v1/outflows [get]
func (h *OutflowHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	day, err := optionalDay(c, "date")
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	filter := store.OutflowFilter{
		Day:      day,
		Category: c.Query("category"),
	}
	page := intQuery(c, "page", store.DefaultPage)
	limit := intQuery(c, "limit", store.DefaultLimit)

	outflows, pagination, err := store.New(database.DB).ListOutflows(userID, filter, page, limit)
	if err != nil {
		StoreError(c, err, "Outflow not found", "Failed to list outflows")
		return
	}

	Success(c, "Outflows retrieved successfully", gin.H{
		"outflows":   outflows,
		"pagination": pagination,
	})
}

// Get returns one outflow
// @Summary Get an outflow by id
// @Tags outflows
// @Produce json
// @Security BearerAuth
// @Param id path int true "Outflow id"
// @Success 200 {object} Response{data=models.Outflow} "Outflow retrieved successfully"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "Outflow not found"
// @Router /api/v1/outflows/{id} [get]
func (h *OutflowHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Outflow not found")
		return
	}

	outflow, err := store.New(database.DB).OutflowByID(userID, uint(id))
	if err != nil {
		StoreError(c, err, "Outflow not found", "Failed to load outflow")
		return
	}

	Success(c, "Outflow retrieved successfully", outflow)
}

// Update edits an outflow
// @Summary Update an outflow
// @Description Applies only the fields present in the payload.
// @Tags outflows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Outflow id"
// @Param request body UpdateOutflowRequest true "Fields to update"
// @Success 200 {object} Response{data=models.Outflow} "Outflow updated successfully"
// @Failure 400 {object} Response "Invalid amount, category or note"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "Outflow not found"
// @Router /api/v1/outflows/{id} [put]
func (h *OutflowHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Outflow not found")
		return
	}

	var req UpdateOutflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid payload")
		return
	}

	input := store.UpdateOutflowInput{
		Amount:   req.Amount,
		Category: req.Category,
		Note:     req.Note,
	}
	if req.Date != nil {
		var t time.Time
		if t, err = parseDate(*req.Date); err != nil {
			BadRequest(c, "date must be a valid timestamp")
			return
		}
		input.Date = &t
	}

	outflow, err := store.New(database.DB).UpdateOutflow(userID, uint(id), input)
	if err != nil {
		StoreError(c, err, "Outflow not found", "Failed to update outflow")
		return
	}

	Success(c, "Outflow updated successfully", outflow)
}

// Delete soft-deletes an outflow
// @Summary Delete an outflow
// @Description Marks the record deleted; it disappears from every read but is never physically removed.
// @Tags outflows
// @Produce json
// @Security BearerAuth
// @Param id path int true "Outflow id"
// @Success 200 {object} Response "Outflow deleted successfully"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "Outflow not found"
// @Router /api/v1/outflows/{id} [delete]
func (h *OutflowHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Outflow not found")
		return
	}

	if err := store.New(database.DB).SoftDeleteOutflow(userID, uint(id)); err != nil {
		StoreError(c, err, "Outflow not found", "Failed to delete outflow")
		return
	}

	Success(c, "Outflow deleted successfully", nil)
}
