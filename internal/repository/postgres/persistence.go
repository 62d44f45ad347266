package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"weddingplanner/internal/domain"
)

//go:embed schema.sql
var schema string

// Migrate creates the tables if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

type persistence struct {
	DB  *sql.DB
	now func() time.Time
}

// NewPersistence returns a domain.Persistence that keeps every event in PostgreSQL.
func NewPersistence(db *sql.DB) domain.Persistence {
	return &persistence{
		DB:  db,
		now: time.Now,
	}
}

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var perr *pq.Error
	return errors.As(err, &perr) && perr.Code == "23505"
}

// expectOne turns a zero-row write into ErrNotFound.
func expectOne(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *persistence) CreateEvent(ctx context.Context, coupleName string) (string, error) {
	query := `
		INSERT INTO events (couple_name, created_at)
		VALUES ($1, $2)
		RETURNING id
	`
	var id string
	if err := r.DB.QueryRowContext(ctx, query, coupleName, r.now()).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (r *persistence) JoinEvent(ctx context.Context, eventID string) (string, error) {
	var coupleName string
	err := r.DB.QueryRowContext(ctx, `SELECT couple_name FROM events WHERE id = $1`, eventID).Scan(&coupleName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return coupleName, nil
}

func (r *persistence) LogVisit(ctx context.Context, eventID, name string) error {
	query := `
		INSERT INTO visits (event_id, name, visited_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.DB.ExecContext(ctx, query, eventID, name, r.now())
	return err
}

// FetchAll loads every collection of the event in insertion order.
func (r *persistence) FetchAll(ctx context.Context, eventID string) (domain.Snapshot, error) {
	var (
		snap domain.Snapshot
		err  error
	)
	if snap.Guests, err = r.listGuests(ctx, eventID); err != nil {
		return domain.Snapshot{}, fmt.Errorf("list guests: %w", err)
	}
	if snap.Tables, err = r.listTables(ctx, eventID); err != nil {
		return domain.Snapshot{}, fmt.Errorf("list tables: %w", err)
	}
	if snap.Vendors, err = r.listVendors(ctx, eventID); err != nil {
		return domain.Snapshot{}, fmt.Errorf("list vendors: %w", err)
	}
	if snap.Tasks, err = r.listTasks(ctx, eventID); err != nil {
		return domain.Snapshot{}, fmt.Errorf("list tasks: %w", err)
	}
	if snap.Visitors, err = r.listVisits(ctx, eventID); err != nil {
		return domain.Snapshot{}, fmt.Errorf("list visits: %w", err)
	}
	return snap, nil
}

func (r *persistence) listVisits(ctx context.Context, eventID string) ([]domain.Viewer, error) {
	query := `
		SELECT event_id, name, visited_at
		FROM visits
		WHERE event_id = $1
		ORDER BY position
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	visits := make([]domain.Viewer, 0)
	for rows.Next() {
		var v domain.Viewer
		if err := rows.Scan(&v.EventID, &v.Name, &v.Timestamp); err != nil {
			return nil, err
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}
