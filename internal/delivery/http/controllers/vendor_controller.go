package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"weddingplanner/internal/delivery/http/helpers"
	"weddingplanner/internal/domain"
)

// CreateVendorRequest is the request body for POST /vendors.
type CreateVendorRequest struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Category    domain.VendorCategory `json:"category"`
	Status      domain.VendorStatus   `json:"status"`
	Cost        float64               `json:"cost"`
	Paid        float64               `json:"paid"`
	DueDate     string                `json:"dueDate"`
	ContactName string                `json:"contactName"`
	Phone       string                `json:"phone"`
	Email       string                `json:"email"`
}

// Validate implements Validator.
func (c CreateVendorRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if c.Cost < 0 || c.Paid < 0 {
		errs = append(errs, "cost and paid must be non-negative")
	}
	if c.Category != "" && !c.Category.Valid() {
		errs = append(errs, "unknown category")
	}
	if c.Status != "" && !c.Status.Valid() {
		errs = append(errs, "status must be Draft, Signed or Paid")
	}
	return errs
}

// UpdateVendorRequest is the request body for PATCH /vendors/{id}.
type UpdateVendorRequest struct {
	domain.VendorPatch
}

// Validate implements Validator.
func (u UpdateVendorRequest) Validate() []string {
	if err := u.VendorPatch.Validate(); err != nil {
		return []string{err.Error()}
	}
	return nil
}

// ListVendorsResponse is the response body for GET /vendors.
type ListVendorsResponse struct {
	Items  []domain.Vendor     `json:"items"`
	Totals domain.VendorTotals `json:"totals"`
}

// ListVendorsSuccessResponse is the success envelope for GET /vendors.
type ListVendorsSuccessResponse struct {
	Data  ListVendorsResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// VendorSuccessResponse is the success envelope for single-vendor endpoints.
type VendorSuccessResponse struct {
	Data  domain.Vendor     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type VendorController struct {
	Logger    *slog.Logger
	Service   domain.PlannerService
	Reminders domain.ReminderService
}

func NewVendorController(logger *slog.Logger, svc domain.PlannerService, reminders domain.ReminderService) *VendorController {
	return &VendorController{
		Logger:    logger,
		Service:   svc,
		Reminders: reminders,
	}
}

// ListVendors godoc
// @Summary List vendors with money totals
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListVendorsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /vendors [get]
func (c *VendorController) ListVendors(w http.ResponseWriter, r *http.Request) {
	items, totals, err := c.Service.ListVendors()
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if items == nil {
		items = []domain.Vendor{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListVendorsResponse{Items: items, Totals: totals})
}

// GetVendor godoc
// @Summary Get a vendor
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Success 200 {object} controllers.VendorSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /vendors/{id} [get]
func (c *VendorController) GetVendor(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	v, err := c.Service.GetVendor(id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, v)
}

// CreateVendor godoc
// @Summary Add a vendor
// @Description Paid may exceed cost; the balance then goes negative.
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vendor body CreateVendorRequest true "Vendor data"
// @Success 201 {object} controllers.VendorSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /vendors [post]
func (c *VendorController) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var req CreateVendorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	v, err := c.Service.AddVendor(r.Context(), domain.Vendor{
		ID:          req.ID,
		Name:        strings.TrimSpace(req.Name),
		Category:    req.Category,
		Status:      req.Status,
		Cost:        req.Cost,
		Paid:        req.Paid,
		DueDate:     req.DueDate,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, v)
}

// UpdateVendor godoc
// @Summary Update a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Param vendor body UpdateVendorRequest true "Fields to change"
// @Success 200 {object} controllers.VendorSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /vendors/{id} [patch]
func (c *VendorController) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	var req UpdateVendorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	v, err := c.Service.UpdateVendor(r.Context(), id, req.VendorPatch)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, v)
}

// DeleteVendor godoc
// @Summary Delete a vendor
// @Tags vendors
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Success 204 "No Content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /vendors/{id} [delete]
func (c *VendorController) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Service.DeleteVendor(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DraftVendorReminder godoc
// @Summary Draft a payment reminder for a vendor
// @Description Generates a payment reminder with the outstanding balance and due date, plus contact links.
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Param body body ReminderDraftRequest true "Output language, English when empty"
// @Success 200 {object} controllers.ReminderDraftSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /vendors/{id}/reminder [post]
func (c *VendorController) DraftVendorReminder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	var req ReminderDraftRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draft, err := c.Reminders.DraftVendorReminder(r.Context(), id, req.language())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, draft)
}
