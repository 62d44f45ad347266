package controllers

import (
	"log/slog"
	"net/http"

	"weddingplanner/internal/delivery/http/helpers"
	"weddingplanner/internal/domain"
)

// DashboardSuccessResponse is the success envelope for GET /dashboard.
type DashboardSuccessResponse struct {
	Data  *domain.Dashboard `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SeatingSuccessResponse is the success envelope for GET /seating.
type SeatingSuccessResponse struct {
	Data  *domain.SeatingView `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// VisitorsSuccessResponse is the success envelope for GET /visitors.
type VisitorsSuccessResponse struct {
	Data  []domain.Viewer   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type DashboardController struct {
	Logger  *slog.Logger
	Service domain.PlannerService
}

func NewDashboardController(logger *slog.Logger, svc domain.PlannerService) *DashboardController {
	return &DashboardController{
		Logger:  logger,
		Service: svc,
	}
}

// GetDashboard godoc
// @Summary Get the dashboard
// @Description Stats, RSVP histogram, budget by vendor category and recent visitors, recomputed on each call.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.DashboardSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := c.Service.Dashboard()
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, d)
}

// GetSeating godoc
// @Summary Get the seating plan
// @Description Unseated guests and per-table occupancy in table creation order.
// @Tags seating
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.SeatingSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /seating [get]
func (c *DashboardController) GetSeating(w http.ResponseWriter, r *http.Request) {
	v, err := c.Service.Seating()
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, v)
}

// ListVisitors godoc
// @Summary List recent visitors
// @Description One entry per name, most recent visit first.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.VisitorsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /visitors [get]
func (c *DashboardController) ListVisitors(w http.ResponseWriter, r *http.Request) {
	v, err := c.Service.Visitors()
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if v == nil {
		v = []domain.Viewer{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, v)
}
