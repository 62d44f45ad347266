package postgres

import (
	"context"
	"database/sql"

	"weddingplanner/internal/domain"
)

const guestColumns = `id, event_id, full_name, relation, rsvp_status, party_size, men_count, women_count,
	children_count, meal_choice, table_id, email, phone, description, dietary_notes, checked_in, notes,
	added_by, village`

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func guestArgs(g domain.Guest) []any {
	return []any{
		g.ID, g.EventID, g.FullName, g.Relation, g.RSVPStatus, g.PartySize, g.MenCount, g.WomenCount,
		g.ChildrenCount, g.MealChoice, nullString(g.TableID), g.Email, g.Phone, g.Description,
		g.DietaryNotes, g.CheckedIn, g.Notes, g.AddedBy, g.Village,
	}
}

func (r *persistence) AddGuest(ctx context.Context, g domain.Guest) error {
	query := `
		INSERT INTO guests (` + guestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`
	if _, err := r.DB.ExecContext(ctx, query, guestArgs(g)...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateID
		}
		return err
	}
	return nil
}

func (r *persistence) UpdateGuest(ctx context.Context, g domain.Guest) error {
	query := `
		UPDATE guests SET full_name = $3, relation = $4, rsvp_status = $5, party_size = $6, men_count = $7,
			women_count = $8, children_count = $9, meal_choice = $10, table_id = $11, email = $12, phone = $13,
			description = $14, dietary_notes = $15, checked_in = $16, notes = $17, added_by = $18, village = $19
		WHERE id = $1 AND event_id = $2
	`
	return expectOne(r.DB.ExecContext(ctx, query, guestArgs(g)...))
}

func (r *persistence) DeleteGuest(ctx context.Context, id, eventID string) error {
	return expectOne(r.DB.ExecContext(ctx, `DELETE FROM guests WHERE id = $1 AND event_id = $2`, id, eventID))
}

func (r *persistence) listGuests(ctx context.Context, eventID string) ([]domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE event_id = $1 ORDER BY position`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guests := make([]domain.Guest, 0)
	for rows.Next() {
		var (
			g       domain.Guest
			tableID sql.NullString
		)
		if err := rows.Scan(
			&g.ID, &g.EventID, &g.FullName, &g.Relation, &g.RSVPStatus, &g.PartySize, &g.MenCount,
			&g.WomenCount, &g.ChildrenCount, &g.MealChoice, &tableID, &g.Email, &g.Phone, &g.Description,
			&g.DietaryNotes, &g.CheckedIn, &g.Notes, &g.AddedBy, &g.Village,
		); err != nil {
			return nil, err
		}
		g.TableID = tableID.String
		guests = append(guests, g)
	}
	return guests, rows.Err()
}
