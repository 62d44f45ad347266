package services

import (
	"context"

	"weddingplanner/internal/domain"
)

func (s *plannerService) ListTables() ([]domain.Table, error) {
	var out []domain.Table
	err := s.withSession(func(domain.Session) error {
		out = s.store.Tables()
		return nil
	})
	return out, err
}

func (s *plannerService) AddTable(ctx context.Context, t domain.Table) (domain.Table, error) {
	err := s.withSession(func(sess domain.Session) error {
		if t.ID == "" {
			t.ID = s.newID()
		}
		t.EventID = sess.EventID
		if t.Shape == "" {
			t.Shape = domain.ShapeRound
		}
		if err := t.Validate(); err != nil {
			return err
		}
		if err := s.store.AddTable(t); err != nil {
			return err
		}
		added := t
		s.syncer.dispatch(ctx, "addTable", sess.EventID, t.ID, func(ctx context.Context) error {
			return s.remote.AddTable(ctx, added)
		})
		return nil
	})
	if err != nil {
		return domain.Table{}, err
	}
	return t, nil
}

// AssignSeat seats a guest at tableID, or clears the seat when tableID is empty. A guest
// seated elsewhere is moved. Capacity is not enforced; over-booking only shows in the
// seating view.
func (s *plannerService) AssignSeat(ctx context.Context, guestID, tableID string) (domain.Guest, error) {
	return s.UpdateGuest(ctx, guestID, domain.GuestPatch{TableID: &tableID})
}
