package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"weddingplanner/internal/delivery/http/helpers"
	"weddingplanner/internal/domain"
)

// CreateTableRequest is the request body for POST /tables.
type CreateTableRequest struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Capacity int               `json:"capacity"`
	Shape    domain.TableShape `json:"shape"`
}

// Validate implements Validator.
func (c CreateTableRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if c.Capacity <= 0 {
		errs = append(errs, "capacity must be positive")
	}
	if c.Shape != "" && c.Shape != domain.ShapeRound && c.Shape != domain.ShapeRectangular {
		errs = append(errs, "shape must be Round or Rectangular")
	}
	return errs
}

// AssignSeatRequest is the request body for PUT /seating/{guestID}. An empty tableId unseats the guest.
type AssignSeatRequest struct {
	TableID string `json:"tableId"`
}

// ListTablesSuccessResponse is the success envelope for GET /tables.
type ListTablesSuccessResponse struct {
	Data  []domain.Table    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TableSuccessResponse is the success envelope for POST /tables.
type TableSuccessResponse struct {
	Data  domain.Table      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type TableController struct {
	Logger  *slog.Logger
	Service domain.PlannerService
}

func NewTableController(logger *slog.Logger, svc domain.PlannerService) *TableController {
	return &TableController{
		Logger:  logger,
		Service: svc,
	}
}

// ListTables godoc
// @Summary List tables
// @Tags seating
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListTablesSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /tables [get]
func (c *TableController) ListTables(w http.ResponseWriter, r *http.Request) {
	tables, err := c.Service.ListTables()
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if tables == nil {
		tables = []domain.Table{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tables)
}

// CreateTable godoc
// @Summary Add a table
// @Tags seating
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param table body CreateTableRequest true "Table data"
// @Success 201 {object} controllers.TableSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /tables [post]
func (c *TableController) CreateTable(w http.ResponseWriter, r *http.Request) {
	var req CreateTableRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	t, err := c.Service.AddTable(r.Context(), domain.Table{
		ID:       req.ID,
		Name:     strings.TrimSpace(req.Name),
		Capacity: req.Capacity,
		Shape:    req.Shape,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, t)
}

// AssignSeat godoc
// @Summary Seat or unseat a guest
// @Description Seating never checks capacity, so a table can be overbooked.
// @Tags seating
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param guestID path string true "Guest ID"
// @Param body body AssignSeatRequest true "Target table, empty to unseat"
// @Success 200 {object} controllers.GuestSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /seating/{guestID} [put]
func (c *TableController) AssignSeat(w http.ResponseWriter, r *http.Request) {
	guestID := r.PathValue("guestID")
	if guestID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing guestID")
		return
	}
	var req AssignSeatRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	g, err := c.Service.AssignSeat(r.Context(), guestID, req.TableID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, g)
}
