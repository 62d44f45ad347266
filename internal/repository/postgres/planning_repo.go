package postgres

import (
	"context"

	"weddingplanner/internal/domain"
)

func (r *persistence) AddTable(ctx context.Context, t domain.Table) error {
	query := `
		INSERT INTO seating_tables (id, event_id, name, capacity, shape)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.DB.ExecContext(ctx, query, t.ID, t.EventID, t.Name, t.Capacity, t.Shape); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateID
		}
		return err
	}
	return nil
}

func (r *persistence) listTables(ctx context.Context, eventID string) ([]domain.Table, error) {
	query := `
		SELECT id, event_id, name, capacity, shape
		FROM seating_tables
		WHERE event_id = $1
		ORDER BY position
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]domain.Table, 0)
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.EventID, &t.Name, &t.Capacity, &t.Shape); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func vendorArgs(v domain.Vendor) []any {
	return []any{v.ID, v.EventID, v.Name, v.Category, v.Status, v.Cost, v.Paid, v.DueDate, v.ContactName, v.Phone, v.Email}
}

func (r *persistence) AddVendor(ctx context.Context, v domain.Vendor) error {
	query := `
		INSERT INTO vendors (id, event_id, name, category, status, cost, paid, due_date, contact_name, phone, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	if _, err := r.DB.ExecContext(ctx, query, vendorArgs(v)...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateID
		}
		return err
	}
	return nil
}

func (r *persistence) UpdateVendor(ctx context.Context, v domain.Vendor) error {
	query := `
		UPDATE vendors SET name = $3, category = $4, status = $5, cost = $6, paid = $7, due_date = $8,
			contact_name = $9, phone = $10, email = $11
		WHERE id = $1 AND event_id = $2
	`
	return expectOne(r.DB.ExecContext(ctx, query, vendorArgs(v)...))
}

func (r *persistence) DeleteVendor(ctx context.Context, id, eventID string) error {
	return expectOne(r.DB.ExecContext(ctx, `DELETE FROM vendors WHERE id = $1 AND event_id = $2`, id, eventID))
}

func (r *persistence) listVendors(ctx context.Context, eventID string) ([]domain.Vendor, error) {
	query := `
		SELECT id, event_id, name, category, status, cost, paid, due_date, contact_name, phone, email
		FROM vendors
		WHERE event_id = $1
		ORDER BY position
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := make([]domain.Vendor, 0)
	for rows.Next() {
		var v domain.Vendor
		if err := rows.Scan(&v.ID, &v.EventID, &v.Name, &v.Category, &v.Status, &v.Cost, &v.Paid,
			&v.DueDate, &v.ContactName, &v.Phone, &v.Email); err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func (r *persistence) AddTask(ctx context.Context, t domain.Task) error {
	query := `
		INSERT INTO tasks (id, event_id, title, due_date, completed, assigned_to, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := r.DB.ExecContext(ctx, query, t.ID, t.EventID, t.Title, t.DueDate, t.Completed, t.AssignedTo, t.Priority); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateID
		}
		return err
	}
	return nil
}

func (r *persistence) UpdateTask(ctx context.Context, t domain.Task) error {
	query := `
		UPDATE tasks SET title = $3, due_date = $4, completed = $5, assigned_to = $6, priority = $7
		WHERE id = $1 AND event_id = $2
	`
	return expectOne(r.DB.ExecContext(ctx, query, t.ID, t.EventID, t.Title, t.DueDate, t.Completed, t.AssignedTo, t.Priority))
}

func (r *persistence) DeleteTask(ctx context.Context, id, eventID string) error {
	return expectOne(r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND event_id = $2`, id, eventID))
}

func (r *persistence) listTasks(ctx context.Context, eventID string) ([]domain.Task, error) {
	query := `
		SELECT id, event_id, title, due_date, completed, assigned_to, priority
		FROM tasks
		WHERE event_id = $1
		ORDER BY position
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.EventID, &t.Title, &t.DueDate, &t.Completed, &t.AssignedTo, &t.Priority); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
