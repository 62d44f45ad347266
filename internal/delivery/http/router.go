package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"weddingplanner/internal/delivery/http/controllers"
	"weddingplanner/internal/delivery/http/middleware"
	"weddingplanner/internal/domain"
)

// Controllers groups the HTTP controllers mounted by NewRouter.
type Controllers struct {
	Session   *controllers.SessionController
	Dashboard *controllers.DashboardController
	Guests    *controllers.GuestController
	Tables    *controllers.TableController
	Vendors   *controllers.VendorController
	Tasks     *controllers.TaskController
	Assistant *controllers.AssistantController
}

// RouterConfig holds what NewRouter needs besides the controllers.
type RouterConfig struct {
	Logger         *slog.Logger
	Verifier       domain.TokenVerifier
	Planner        domain.PlannerService
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes, wrapped in CORS and
// request logging.
func NewRouter(cfg RouterConfig, c Controllers) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireSession(cfg.Verifier, cfg.Planner, cfg.Logger)

	// Session
	mux.HandleFunc("POST /session/create", c.Session.CreateSession)
	mux.HandleFunc("POST /session/join", c.Session.JoinSession)
	mux.HandleFunc("POST /session/logout", auth(c.Session.Logout))
	mux.HandleFunc("GET /session", auth(c.Session.GetSession))

	// Dashboard
	mux.HandleFunc("GET /dashboard", auth(c.Dashboard.GetDashboard))
	mux.HandleFunc("GET /visitors", auth(c.Dashboard.ListVisitors))

	// Guests
	mux.HandleFunc("GET /guests", auth(c.Guests.ListGuests))
	mux.HandleFunc("POST /guests", auth(c.Guests.CreateGuest))
	mux.HandleFunc("GET /guests/checkin", auth(c.Guests.CheckInList))
	mux.HandleFunc("GET /guests/{id}", auth(c.Guests.GetGuest))
	mux.HandleFunc("PATCH /guests/{id}", auth(c.Guests.UpdateGuest))
	mux.HandleFunc("DELETE /guests/{id}", auth(c.Guests.DeleteGuest))
	mux.HandleFunc("POST /guests/{id}/approve", auth(c.Guests.ApproveGuest))
	mux.HandleFunc("POST /guests/{id}/rsvp/cycle", auth(c.Guests.CycleRSVP))
	mux.HandleFunc("POST /guests/{id}/checkin", auth(c.Guests.SetCheckedIn))
	mux.HandleFunc("POST /guests/{id}/reminder", auth(c.Guests.DraftGuestReminder))

	// Seating
	mux.HandleFunc("GET /tables", auth(c.Tables.ListTables))
	mux.HandleFunc("POST /tables", auth(c.Tables.CreateTable))
	mux.HandleFunc("GET /seating", auth(c.Dashboard.GetSeating))
	mux.HandleFunc("PUT /seating/{guestID}", auth(c.Tables.AssignSeat))

	// Vendors
	mux.HandleFunc("GET /vendors", auth(c.Vendors.ListVendors))
	mux.HandleFunc("POST /vendors", auth(c.Vendors.CreateVendor))
	mux.HandleFunc("GET /vendors/{id}", auth(c.Vendors.GetVendor))
	mux.HandleFunc("PATCH /vendors/{id}", auth(c.Vendors.UpdateVendor))
	mux.HandleFunc("DELETE /vendors/{id}", auth(c.Vendors.DeleteVendor))
	mux.HandleFunc("POST /vendors/{id}/reminder", auth(c.Vendors.DraftVendorReminder))

	// Tasks
	mux.HandleFunc("GET /tasks", auth(c.Tasks.ListTasks))
	mux.HandleFunc("POST /tasks", auth(c.Tasks.CreateTask))
	mux.HandleFunc("PATCH /tasks/{id}", auth(c.Tasks.UpdateTask))
	mux.HandleFunc("DELETE /tasks/{id}", auth(c.Tasks.DeleteTask))
	mux.HandleFunc("POST /tasks/{id}/toggle", auth(c.Tasks.ToggleTask))

	// Assistant
	mux.HandleFunc("POST /assistant/invite", auth(c.Assistant.GenerateInvite))
	mux.HandleFunc("POST /assistant/budget", auth(c.Assistant.AnalyzeBudget))
	mux.HandleFunc("POST /reminders/send", auth(c.Assistant.SendReminder))

	// Metrics
	if cfg.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.LoggingMiddleware(cfg.Logger, middleware.CORS(cfg.AllowedOrigins, mux))
}
