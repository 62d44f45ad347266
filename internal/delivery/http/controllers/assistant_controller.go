package controllers

import (
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"weddingplanner/internal/delivery/http/helpers"
	"weddingplanner/internal/domain"
)

// InviteTextRequest is the request body for POST /assistant/invite.
type InviteTextRequest struct {
	CoupleNames string          `json:"coupleNames"`
	Venue       string          `json:"venue"`
	Date        string          `json:"date"`
	Tone        domain.Tone     `json:"tone"`
	Language    domain.Language `json:"language"`
}

// Validate implements Validator.
func (i InviteTextRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(i.CoupleNames) == "" {
		errs = append(errs, "coupleNames is required")
	}
	switch i.Tone {
	case "", domain.ToneFormal, domain.ToneCasual, domain.TonePoetic, domain.ToneUrdu:
	default:
		errs = append(errs, "tone must be Formal, Casual, Poetic or Urdu")
	}
	switch i.Language {
	case "", domain.LanguageEnglish, domain.LanguageUrdu:
	default:
		errs = append(errs, "language must be English or Urdu")
	}
	return errs
}

// BudgetAdviceRequest is the request body for POST /assistant/budget. Missing values default to
// the event's total budget and total headcount.
type BudgetAdviceRequest struct {
	Amount     *float64 `json:"amount"`
	GuestCount *int     `json:"guestCount"`
}

// Validate implements Validator.
func (b BudgetAdviceRequest) Validate() []string {
	var errs []string
	if b.Amount != nil && *b.Amount < 0 {
		errs = append(errs, "amount must be non-negative")
	}
	if b.GuestCount != nil && *b.GuestCount < 0 {
		errs = append(errs, "guestCount must be non-negative")
	}
	return errs
}

// SendReminderRequest is the request body for POST /reminders/send.
type SendReminderRequest struct {
	Email     string              `json:"email"`
	Recipient string              `json:"recipient"`
	Kind      domain.ReminderKind `json:"kind"`
	Message   string              `json:"message"`
}

// Validate implements Validator.
func (s SendReminderRequest) Validate() []string {
	var errs []string
	if s.Email == "" {
		errs = append(errs, "email is required")
	} else if _, err := mail.ParseAddress(s.Email); err != nil {
		errs = append(errs, "email must be a valid address")
	}
	if strings.TrimSpace(s.Recipient) == "" {
		errs = append(errs, "recipient is required")
	}
	if strings.TrimSpace(s.Message) == "" {
		errs = append(errs, "message is required")
	}
	switch s.Kind {
	case domain.ReminderPayment, domain.ReminderRSVP:
	default:
		errs = append(errs, "kind must be Payment or RSVP")
	}
	return errs
}

// TextResponse carries generated text.
type TextResponse struct {
	Text string `json:"text"`
}

// TextSuccessResponse is the success envelope for assistant endpoints.
type TextSuccessResponse struct {
	Data  TextResponse      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AssistantController struct {
	Logger    *slog.Logger
	Service   domain.PlannerService
	Assistant domain.AssistantService
	Reminders domain.ReminderService
}

func NewAssistantController(logger *slog.Logger, svc domain.PlannerService, assistant domain.AssistantService, reminders domain.ReminderService) *AssistantController {
	return &AssistantController{
		Logger:    logger,
		Service:   svc,
		Assistant: assistant,
		Reminders: reminders,
	}
}

// GenerateInvite godoc
// @Summary Draft invitation text
// @Description Never fails on generator errors: a fixed fallback text is returned instead.
// @Tags assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body InviteTextRequest true "Invitation details"
// @Success 200 {object} controllers.TextSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /assistant/invite [post]
func (c *AssistantController) GenerateInvite(w http.ResponseWriter, r *http.Request) {
	var req InviteTextRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if req.Tone == "" {
		req.Tone = domain.ToneFormal
	}
	if req.Language == "" {
		req.Language = domain.LanguageEnglish
	}
	text := c.Assistant.GenerateInviteText(r.Context(), domain.InviteRequest(req))
	helpers.WriteJSONSuccess(w, http.StatusOK, TextResponse{Text: text})
}

// AnalyzeBudget godoc
// @Summary Suggest a budget allocation
// @Tags assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BudgetAdviceRequest true "Budget and headcount, both optional"
// @Success 200 {object} controllers.TextSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /assistant/budget [post]
func (c *AssistantController) AnalyzeBudget(w http.ResponseWriter, r *http.Request) {
	var req BudgetAdviceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if req.Amount == nil || req.GuestCount == nil {
		d, err := c.Service.Dashboard()
		if err != nil {
			helpers.WriteServiceError(w, r, c.Logger, err)
			return
		}
		if req.Amount == nil {
			req.Amount = &d.Stats.TotalBudget
		}
		if req.GuestCount == nil {
			req.GuestCount = &d.Stats.TotalGuests
		}
	}
	text := c.Assistant.AnalyzeBudget(r.Context(), *req.Amount, *req.GuestCount)
	helpers.WriteJSONSuccess(w, http.StatusOK, TextResponse{Text: text})
}

// SendReminder godoc
// @Summary Email a reminder
// @Description Renders the reminder email template and sends it through the configured mailer.
// @Tags reminders
// @Accept json
// @Security BearerAuth
// @Param body body SendReminderRequest true "Recipient and message"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reminders/send [post]
func (c *AssistantController) SendReminder(w http.ResponseWriter, r *http.Request) {
	var req SendReminderRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sess, err := c.Service.Session()
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	err = c.Reminders.SendReminderEmail(r.Context(), &domain.ReminderEmailData{
		Email:      req.Email,
		Recipient:  strings.TrimSpace(req.Recipient),
		Kind:       req.Kind,
		Message:    req.Message,
		CoupleName: sess.CoupleName,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
