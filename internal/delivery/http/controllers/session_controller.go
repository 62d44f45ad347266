package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"weddingplanner/internal/delivery/http/helpers"
	"weddingplanner/internal/domain"
)

// CreateSessionRequest is the request body for POST /session/create.
type CreateSessionRequest struct {
	CoupleName string `json:"coupleName"`
	UserName   string `json:"userName"`
}

// Validate implements Validator.
func (c CreateSessionRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.CoupleName) == "" {
		errs = append(errs, "coupleName is required")
	}
	if strings.TrimSpace(c.UserName) == "" {
		errs = append(errs, "userName is required")
	}
	return errs
}

// JoinSessionRequest is the request body for POST /session/join.
type JoinSessionRequest struct {
	WeddingID string `json:"weddingId"`
	UserName  string `json:"userName"`
}

// Validate implements Validator.
func (j JoinSessionRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(j.WeddingID) == "" {
		errs = append(errs, "weddingId is required")
	}
	if strings.TrimSpace(j.UserName) == "" {
		errs = append(errs, "userName is required")
	}
	return errs
}

// SessionResponse carries the active session and the bearer token for later requests.
type SessionResponse struct {
	Session   *domain.Session `json:"session"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

// SessionSuccessResponse is the success envelope for session create/join.
type SessionSuccessResponse struct {
	Data  SessionResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetSessionSuccessResponse is the success envelope for GET /session.
type GetSessionSuccessResponse struct {
	Data  *domain.Session   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type SessionController struct {
	Logger  *slog.Logger
	Service domain.PlannerService
	Tokens  domain.TokenIssuer
}

func NewSessionController(logger *slog.Logger, svc domain.PlannerService, tokens domain.TokenIssuer) *SessionController {
	return &SessionController{
		Logger:  logger,
		Service: svc,
		Tokens:  tokens,
	}
}

// CreateSession godoc
// @Summary Create a new wedding
// @Description Registers a new wedding on the remote store, loads it as the active event and returns a session token.
// @Tags session
// @Accept json
// @Produce json
// @Param body body CreateSessionRequest true "Couple and user name"
// @Success 201 {object} controllers.SessionSuccessResponse "data contains the session and token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /session/create [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sess, err := c.Service.CreateEvent(r.Context(), req.CoupleName, req.UserName)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	c.writeSession(w, r, http.StatusCreated, sess)
}

// JoinSession godoc
// @Summary Join an existing wedding
// @Description Loads the wedding with the given id as the active event, records a visit and returns a session token.
// @Tags session
// @Accept json
// @Produce json
// @Param body body JoinSessionRequest true "Wedding id and user name"
// @Success 200 {object} controllers.SessionSuccessResponse "data contains the session and token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /session/join [post]
func (c *SessionController) JoinSession(w http.ResponseWriter, r *http.Request) {
	var req JoinSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sess, err := c.Service.JoinEvent(r.Context(), req.WeddingID, req.UserName)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	c.writeSession(w, r, http.StatusOK, sess)
}

func (c *SessionController) writeSession(w http.ResponseWriter, r *http.Request, status int, sess *domain.Session) {
	token, expiresAt, err := c.Tokens.Issue(sess.EventID, sess.UserName)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, status, SessionResponse{Session: sess, Token: token, ExpiresAt: expiresAt})
}

// GetSession godoc
// @Summary Get the active session
// @Tags session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.GetSessionSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /session [get]
func (c *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := c.Service.Session()
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sess)
}

// Logout godoc
// @Summary End the active session
// @Description Clears the active event and all loaded collections. Background syncs already started still complete.
// @Tags session
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /session/logout [post]
func (c *SessionController) Logout(w http.ResponseWriter, r *http.Request) {
	c.Service.Logout()
	w.WriteHeader(http.StatusNoContent)
}
