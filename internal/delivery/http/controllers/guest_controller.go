package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"weddingplanner/internal/delivery/http/helpers"
	"weddingplanner/internal/delivery/http/middleware"
	"weddingplanner/internal/domain"
	"weddingplanner/internal/usecase"
)

// CreateGuestRequest is the request body for POST /guests. Id is optional and generated when empty.
// With suggest set the guest is stored as a suggestion attributed to the token's user.
type CreateGuestRequest struct {
	ID            string            `json:"id"`
	FullName      string            `json:"fullName"`
	Relation      domain.Relation   `json:"relation"`
	RSVPStatus    domain.RSVPStatus `json:"rsvpStatus"`
	MenCount      int               `json:"menCount"`
	WomenCount    int               `json:"womenCount"`
	ChildrenCount int               `json:"childrenCount"`
	MealChoice    domain.MealChoice `json:"mealChoice"`
	TableID       string            `json:"tableId"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Description   string            `json:"description"`
	DietaryNotes  string            `json:"dietaryNotes"`
	Notes         string            `json:"notes"`
	Village       string            `json:"village"`
	Suggest       bool              `json:"suggest"`
}

// Validate implements Validator.
func (c CreateGuestRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.FullName) == "" {
		errs = append(errs, "fullName is required")
	}
	if c.MenCount < 0 || c.WomenCount < 0 || c.ChildrenCount < 0 {
		errs = append(errs, "party counts must be non-negative")
	}
	if c.Relation != "" && !c.Relation.Valid() {
		errs = append(errs, "relation must be one of Family, Friend, VIP, Colleague")
	}
	if c.RSVPStatus != "" && !c.RSVPStatus.Valid() {
		errs = append(errs, "rsvpStatus is not a known status")
	}
	return errs
}

func (c CreateGuestRequest) guest() domain.Guest {
	return domain.Guest{
		ID:            c.ID,
		FullName:      strings.TrimSpace(c.FullName),
		Relation:      c.Relation,
		RSVPStatus:    c.RSVPStatus,
		PartySize:     c.MenCount + c.WomenCount + c.ChildrenCount,
		MenCount:      c.MenCount,
		WomenCount:    c.WomenCount,
		ChildrenCount: c.ChildrenCount,
		MealChoice:    c.MealChoice,
		TableID:       c.TableID,
		Email:         c.Email,
		Phone:         c.Phone,
		Description:   c.Description,
		DietaryNotes:  c.DietaryNotes,
		Notes:         c.Notes,
		Village:       c.Village,
	}
}

// UpdateGuestRequest is the request body for PATCH /guests/{id}. Only present fields change.
type UpdateGuestRequest struct {
	domain.GuestPatch
}

// Validate implements Validator.
func (u UpdateGuestRequest) Validate() []string {
	if err := u.GuestPatch.Validate(); err != nil {
		return []string{err.Error()}
	}
	return nil
}

// CheckInRequest is the request body for POST /guests/{id}/checkin.
type CheckInRequest struct {
	CheckedIn bool `json:"checkedIn"`
}

// ReminderDraftRequest is the request body for reminder drafts.
type ReminderDraftRequest struct {
	Language domain.Language `json:"language"`
}

// Validate implements Validator.
func (d ReminderDraftRequest) Validate() []string {
	switch d.Language {
	case "", domain.LanguageEnglish, domain.LanguageUrdu:
		return nil
	}
	return []string{"language must be English or Urdu"}
}

func (d ReminderDraftRequest) language() domain.Language {
	if d.Language == "" {
		return domain.LanguageEnglish
	}
	return d.Language
}

// ListGuestsResponse is the response body for GET /guests. Villages lists every known village
// of invited guests for the filter dropdown.
type ListGuestsResponse struct {
	Items    []domain.Guest `json:"items"`
	Villages []string       `json:"villages"`
}

// ListGuestsSuccessResponse is the success envelope for GET /guests.
type ListGuestsSuccessResponse struct {
	Data  ListGuestsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// GuestSuccessResponse is the success envelope for single-guest endpoints.
type GuestSuccessResponse struct {
	Data  domain.Guest      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CheckInListResponse is the response body for GET /guests/checkin.
type CheckInListResponse struct {
	Items   []domain.Guest        `json:"items"`
	Summary domain.CheckInSummary `json:"summary"`
}

// CheckInListSuccessResponse is the success envelope for GET /guests/checkin.
type CheckInListSuccessResponse struct {
	Data  CheckInListResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ReminderDraftSuccessResponse is the success envelope for reminder drafts.
type ReminderDraftSuccessResponse struct {
	Data  *domain.ReminderDraft `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

type GuestController struct {
	Logger    *slog.Logger
	Service   domain.PlannerService
	Reminders domain.ReminderService
}

func NewGuestController(logger *slog.Logger, svc domain.PlannerService, reminders domain.ReminderService) *GuestController {
	return &GuestController{
		Logger:    logger,
		Service:   svc,
		Reminders: reminders,
	}
}

// ListGuests godoc
// @Summary List guests
// @Description Main tab lists invitations filtered by search, status and village. Suggestions tab lists pending suggestions filtered by search only.
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param tab query string false "Main (default) or Suggestions"
// @Param search query string false "Name (case-insensitive) or phone substring"
// @Param status query string false "RSVP status"
// @Param village query string false "Village"
// @Success 200 {object} controllers.ListGuestsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /guests [get]
func (c *GuestController) ListGuests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.GuestFilter{
		Tab:     domain.GuestTab(q.Get("tab")),
		Search:  strings.TrimSpace(q.Get("search")),
		Status:  domain.RSVPStatus(q.Get("status")),
		Village: q.Get("village"),
	}
	switch filter.Tab {
	case "":
		filter.Tab = domain.TabMain
	case domain.TabMain, domain.TabSuggestions:
	default:
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "tab must be Main or Suggestions")
		return
	}
	if filter.Status != "" && !filter.Status.Valid() {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "unknown status")
		return
	}

	items, err := c.Service.ListGuests(filter)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	invited, err := c.Service.ListGuests(domain.GuestFilter{Tab: domain.TabMain})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if items == nil {
		items = []domain.Guest{}
	}
	villages := usecase.Villages(invited)
	if villages == nil {
		villages = []string{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListGuestsResponse{Items: items, Villages: villages})
}

// GetGuest godoc
// @Summary Get a guest
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 200 {object} controllers.GuestSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /guests/{id} [get]
func (c *GuestController) GetGuest(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	g, err := c.Service.GetGuest(id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, g)
}

// CreateGuest godoc
// @Summary Add a guest or a suggestion
// @Description Stores the guest locally and syncs it in the background. Party size is the sum of the breakdown counts.
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param guest body CreateGuestRequest true "Guest data"
// @Success 201 {object} controllers.GuestSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /guests [post]
func (c *GuestController) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req CreateGuestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	var (
		g   domain.Guest
		err error
	)
	if req.Suggest {
		var addedBy string
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			addedBy = claims.UserName
		}
		g, err = c.Service.SuggestGuest(r.Context(), req.guest(), addedBy)
	} else {
		g, err = c.Service.AddGuest(r.Context(), req.guest())
	}
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, g)
}

// UpdateGuest godoc
// @Summary Update a guest
// @Description Merges the given fields into the guest. Changing any breakdown count recomputes party size. An empty tableId unseats the guest.
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Param guest body UpdateGuestRequest true "Fields to change"
// @Success 200 {object} controllers.GuestSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /guests/{id} [patch]
func (c *GuestController) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	var req UpdateGuestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	g, err := c.Service.UpdateGuest(r.Context(), id, req.GuestPatch)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, g)
}

// DeleteGuest godoc
// @Summary Delete a guest
// @Tags guests
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 204 "No Content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /guests/{id} [delete]
func (c *GuestController) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Service.DeleteGuest(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ApproveGuest godoc
// @Summary Approve a suggestion
// @Description Turns a suggested guest into an invitation in place.
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 200 {object} controllers.GuestSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /guests/{id}/approve [post]
func (c *GuestController) ApproveGuest(w http.ResponseWriter, r *http.Request) {
	c.guestAction(w, r, c.Service.ApproveSuggestion)
}

// CycleRSVP godoc
// @Summary Advance the RSVP status
// @Description Accepted becomes Declined, Declined becomes Invited, anything else becomes Accepted. Suggestions are rejected.
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 200 {object} controllers.GuestSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /guests/{id}/rsvp/cycle [post]
func (c *GuestController) CycleRSVP(w http.ResponseWriter, r *http.Request) {
	c.guestAction(w, r, c.Service.CycleRSVP)
}

func (c *GuestController) guestAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id string) (domain.Guest, error)) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	g, err := action(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, g)
}

// SetCheckedIn godoc
// @Summary Check a guest in or out
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Param body body CheckInRequest true "Check-in flag"
// @Success 200 {object} controllers.GuestSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /guests/{id}/checkin [post]
func (c *GuestController) SetCheckedIn(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	var req CheckInRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	g, err := c.Service.SetCheckedIn(r.Context(), id, req.CheckedIn)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, g)
}

// CheckInList godoc
// @Summary Search guests at the door
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param q query string false "Name substring"
// @Success 200 {object} controllers.CheckInListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /guests/checkin [get]
func (c *GuestController) CheckInList(w http.ResponseWriter, r *http.Request) {
	items, summary, err := c.Service.CheckIn(strings.TrimSpace(r.URL.Query().Get("q")))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if items == nil {
		items = []domain.Guest{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CheckInListResponse{Items: items, Summary: summary})
}

// DraftGuestReminder godoc
// @Summary Draft an RSVP reminder for a guest
// @Description Generates the message and returns WhatsApp, SMS and email links when the guest has contact details.
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Param body body ReminderDraftRequest true "Output language, English when empty"
// @Success 200 {object} controllers.ReminderDraftSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /guests/{id}/reminder [post]
func (c *GuestController) DraftGuestReminder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	var req ReminderDraftRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draft, err := c.Reminders.DraftGuestReminder(r.Context(), id, req.language())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, draft)
}
