package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"weddingplanner/internal/domain"
	"weddingplanner/internal/metrics"
	"weddingplanner/internal/store"
	"weddingplanner/internal/usecase"
)

// PlannerConfig holds the tunables of the planner service.
type PlannerConfig struct {
	TotalBudget    float64
	DaysToGo       int
	Currency       string
	ContextTimeout time.Duration
	SyncTimeout    time.Duration
}

type plannerService struct {
	// mu guards session. Mutations hold it for reading so a logout cannot interleave
	// between the session check and the store write.
	mu      sync.RWMutex
	session *domain.Session

	store   *store.Store
	remote  domain.Persistence
	syncer  *syncDispatcher
	logger  *slog.Logger
	metrics *metrics.Metrics

	stats          usecase.StatsConfig
	currency       string
	contextTimeout time.Duration
	now            func() time.Time
	newID          func() string
}

// NewPlannerService returns a PlannerService over st that syncs changes to remote.
func NewPlannerService(st *store.Store, remote domain.Persistence, cfg PlannerConfig, logger *slog.Logger, m *metrics.Metrics) domain.PlannerService {
	if cfg.ContextTimeout <= 0 {
		cfg.ContextTimeout = 10 * time.Second
	}
	if cfg.SyncTimeout <= 0 {
		cfg.SyncTimeout = 15 * time.Second
	}
	return &plannerService{
		store:          st,
		remote:         remote,
		syncer:         newSyncDispatcher(logger, m, cfg.SyncTimeout),
		logger:         logger,
		metrics:        m,
		stats:          usecase.StatsConfig{TotalBudget: cfg.TotalBudget, DaysToGo: cfg.DaysToGo},
		currency:       cfg.Currency,
		contextTimeout: cfg.ContextTimeout,
		now:            time.Now,
		newID:          uuid.NewString,
	}
}

// Wait blocks until all background syncs have finished.
func (s *plannerService) Wait() {
	s.syncer.wait()
}

func (s *plannerService) CreateEvent(ctx context.Context, coupleName, userName string) (*domain.Session, error) {
	coupleName = strings.TrimSpace(coupleName)
	userName = strings.TrimSpace(userName)
	if coupleName == "" || userName == "" {
		return nil, fmt.Errorf("%w: couple name and user name are required", domain.ErrInvalidInput)
	}

	cctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	eventID, err := s.remote.CreateEvent(cctx, coupleName)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.metrics.Session("create")
	return s.startSession(ctx, eventID, userName, coupleName), nil
}

func (s *plannerService) JoinEvent(ctx context.Context, eventID, userName string) (*domain.Session, error) {
	eventID = strings.TrimSpace(eventID)
	userName = strings.TrimSpace(userName)
	if eventID == "" || userName == "" {
		return nil, fmt.Errorf("%w: event id and user name are required", domain.ErrInvalidInput)
	}

	cctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	coupleName, err := s.remote.JoinEvent(cctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("join event: %w", err)
	}
	s.metrics.Session("join")
	return s.startSession(ctx, eventID, userName, coupleName), nil
}

// startSession makes eventID the active event. The event data is fetched outside the session
// lock; a failed fetch leaves the collections empty. Re-joining the event that is already
// loaded keeps the local collections so changes still syncing are not lost.
func (s *plannerService) startSession(ctx context.Context, eventID, userName, coupleName string) *domain.Session {
	var (
		snap     domain.Snapshot
		fetchErr error
		fetched  bool
	)
	for {
		s.mu.Lock()
		if fetched || s.loaded(eventID) {
			break
		}
		s.mu.Unlock()
		snap, fetchErr = s.fetchAll(ctx, eventID)
		fetched = true
	}
	defer s.mu.Unlock()

	switch {
	case s.loaded(eventID):
	case fetchErr != nil:
		s.logger.ErrorContext(ctx, "load event data failed", "event_id", eventID, "err", fetchErr)
		s.store.Clear()
	default:
		s.store.Load(snap)
	}

	now := s.now()
	s.session = &domain.Session{
		EventID:    eventID,
		UserName:   userName,
		CoupleName: coupleName,
		StartedAt:  now,
	}

	s.store.AppendVisit(domain.Viewer{EventID: eventID, Name: userName, Timestamp: now})
	s.syncer.dispatch(ctx, "logVisit", eventID, userName, func(ctx context.Context) error {
		return s.remote.LogVisit(ctx, eventID, userName)
	})

	s.logger.InfoContext(ctx, "session started", "event_id", eventID, "user", userName)
	sess := *s.session
	return &sess
}

// loaded reports whether eventID is the active event. Callers hold mu.
func (s *plannerService) loaded(eventID string) bool {
	return s.session != nil && s.session.EventID == eventID
}

func (s *plannerService) fetchAll(ctx context.Context, eventID string) (domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.remote.FetchAll(ctx, eventID)
}

// Logout ends the session and empties every collection. In-flight syncs keep running.
func (s *plannerService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		s.logger.Info("session ended", "event_id", s.session.EventID, "user", s.session.UserName)
		s.metrics.Session("logout")
	}
	s.session = nil
	s.store.Clear()
}

func (s *plannerService) Session() (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, domain.ErrNoSession
	}
	sess := *s.session
	return &sess, nil
}

// withSession runs fn while holding the session read lock.
func (s *plannerService) withSession(fn func(sess domain.Session) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return domain.ErrNoSession
	}
	return fn(*s.session)
}

func (s *plannerService) Dashboard() (*domain.Dashboard, error) {
	var d *domain.Dashboard
	err := s.withSession(func(domain.Session) error {
		d = usecase.BuildDashboard(s.store.Snapshot(), s.stats, s.currency)
		return nil
	})
	return d, err
}

func (s *plannerService) Seating() (*domain.SeatingView, error) {
	var v *domain.SeatingView
	err := s.withSession(func(domain.Session) error {
		snap := s.store.Snapshot()
		v = usecase.BuildSeatingView(snap.Guests, snap.Tables)
		return nil
	})
	return v, err
}

func (s *plannerService) Visitors() ([]domain.Viewer, error) {
	var out []domain.Viewer
	err := s.withSession(func(domain.Session) error {
		out = usecase.DedupeVisitors(s.store.Visitors())
		return nil
	})
	return out, err
}
