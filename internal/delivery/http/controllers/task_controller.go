package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"weddingplanner/internal/delivery/http/helpers"
	"weddingplanner/internal/domain"
)

// CreateTaskRequest is the request body for POST /tasks.
type CreateTaskRequest struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	DueDate    string          `json:"dueDate"`
	AssignedTo string          `json:"assignedTo"`
	Priority   domain.Priority `json:"priority"`
}

// Validate implements Validator.
func (c CreateTaskRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	switch c.Priority {
	case "", domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow:
	default:
		errs = append(errs, "priority must be High, Medium or Low")
	}
	return errs
}

// UpdateTaskRequest is the request body for PATCH /tasks/{id}.
type UpdateTaskRequest struct {
	domain.TaskPatch
}

// Validate implements Validator.
func (u UpdateTaskRequest) Validate() []string {
	var errs []string
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		errs = append(errs, "title must not be empty")
	}
	if u.Priority != nil {
		switch *u.Priority {
		case domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow:
		default:
			errs = append(errs, "priority must be High, Medium or Low")
		}
	}
	return errs
}

// ListTasksResponse is the response body for GET /tasks. Progress is computed over all tasks.
type ListTasksResponse struct {
	Items    []domain.Task `json:"items"`
	Progress int           `json:"progress"`
}

// ListTasksSuccessResponse is the success envelope for GET /tasks.
type ListTasksSuccessResponse struct {
	Data  ListTasksResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TaskSuccessResponse is the success envelope for single-task endpoints.
type TaskSuccessResponse struct {
	Data  domain.Task       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type TaskController struct {
	Logger  *slog.Logger
	Service domain.PlannerService
}

func NewTaskController(logger *slog.Logger, svc domain.PlannerService) *TaskController {
	return &TaskController{
		Logger:  logger,
		Service: svc,
	}
}

// ListTasks godoc
// @Summary List checklist tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param filter query string false "All (default), Pending or Completed"
// @Success 200 {object} controllers.ListTasksSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /tasks [get]
func (c *TaskController) ListTasks(w http.ResponseWriter, r *http.Request) {
	filter := domain.TaskFilter(r.URL.Query().Get("filter"))
	switch filter {
	case "":
		filter = domain.TasksAll
	case domain.TasksAll, domain.TasksPending, domain.TasksCompleted:
	default:
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "filter must be All, Pending or Completed")
		return
	}
	items, progress, err := c.Service.ListTasks(filter)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if items == nil {
		items = []domain.Task{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListTasksResponse{Items: items, Progress: progress})
}

// CreateTask godoc
// @Summary Add a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param task body CreateTaskRequest true "Task data"
// @Success 201 {object} controllers.TaskSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /tasks [post]
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	t, err := c.Service.AddTask(r.Context(), domain.Task{
		ID:         req.ID,
		Title:      strings.TrimSpace(req.Title),
		DueDate:    req.DueDate,
		AssignedTo: req.AssignedTo,
		Priority:   req.Priority,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, t)
}

// UpdateTask godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param task body UpdateTaskRequest true "Fields to change"
// @Success 200 {object} controllers.TaskSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /tasks/{id} [patch]
func (c *TaskController) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	var req UpdateTaskRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	t, err := c.Service.UpdateTask(r.Context(), id, req.TaskPatch)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, t)
}

// ToggleTask godoc
// @Summary Flip a task's completed flag
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} controllers.TaskSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /tasks/{id}/toggle [post]
func (c *TaskController) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	t, err := c.Service.ToggleTask(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, t)
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 204 "No Content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /tasks/{id} [delete]
func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Service.DeleteTask(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
