// Package main starts the wedding planner API.
//
// @title Wedding Planner API
// @version 1.0
// @description Guests, seating, vendors, checklist and AI drafting for one wedding at a time.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"weddingplanner/config"
	_ "weddingplanner/docs"
	"weddingplanner/internal/adapters/auth"
	"weddingplanner/internal/adapters/email"
	"weddingplanner/internal/adapters/gemini"
	"weddingplanner/internal/adapters/sheets"
	deliveryhttp "weddingplanner/internal/delivery/http"
	"weddingplanner/internal/delivery/http/controllers"
	"weddingplanner/internal/domain"
	"weddingplanner/internal/metrics"
	"weddingplanner/internal/repository/postgres"
	"weddingplanner/internal/services"
	"weddingplanner/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	remote, closeRemote, err := newPersistence(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRemote()

	planner := services.NewPlannerService(store.New(), remote, services.PlannerConfig{
		TotalBudget:    cfg.TotalBudget,
		DaysToGo:       cfg.DaysToGo,
		Currency:       cfg.Currency,
		ContextTimeout: cfg.RequestTimeout,
		SyncTimeout:    cfg.SyncTimeout,
	}, logger, m)

	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set, assistant will return fallback text")
	}
	generator := gemini.NewClient(gemini.Config{
		APIKey:     cfg.GeminiAPIKey,
		Model:      cfg.GeminiModel,
		BaseURL:    cfg.GeminiBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
	})
	assistant := services.NewAssistantService(generator, cfg.Currency, cfg.RequestTimeout, logger, m)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("load email templates: %w", err)
	}
	reminders := services.NewReminderService(planner, assistant, mailer, renderer, cfg.Currency, logger)
	tokens := auth.NewJWTSessions(cfg.SessionSecret, cfg.SessionTTL)

	router := deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		Logger:         logger,
		Verifier:       tokens,
		Planner:        planner,
		Gatherer:       reg,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}, deliveryhttp.Controllers{
		Session:   controllers.NewSessionController(logger, planner, tokens),
		Dashboard: controllers.NewDashboardController(logger, planner),
		Guests:    controllers.NewGuestController(logger, planner, reminders),
		Tables:    controllers.NewTableController(logger, planner),
		Vendors:   controllers.NewVendorController(logger, planner, reminders),
		Tasks:     controllers.NewTaskController(logger, planner),
		Assistant: controllers.NewAssistantController(logger, planner, assistant, reminders),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "backend", cfg.PersistenceBackend, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	planner.Wait()
	return nil
}

// newPersistence builds the remote store for the configured backend. The returned func
// releases its resources.
func newPersistence(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.Persistence, func(), error) {
	switch cfg.PersistenceBackend {
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		logger.Info("using postgres persistence")
		return postgres.NewPersistence(db), func() { _ = db.Close() }, nil
	default:
		if cfg.SheetsAPIURL == "" {
			logger.Warn("SHEETS_API_URL is not set, running in demo mode")
		}
		return sheets.NewClient(cfg.SheetsAPIURL, &http.Client{Timeout: cfg.RequestTimeout}), func() {}, nil
	}
}
