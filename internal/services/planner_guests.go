package services

import (
	"context"
	"fmt"
	"strings"

	"weddingplanner/internal/domain"
	"weddingplanner/internal/usecase"
)

func (s *plannerService) ListGuests(filter domain.GuestFilter) ([]domain.Guest, error) {
	var out []domain.Guest
	err := s.withSession(func(domain.Session) error {
		out = usecase.FilterGuests(s.store.Guests(), filter)
		return nil
	})
	return out, err
}

func (s *plannerService) GetGuest(id string) (domain.Guest, error) {
	var g domain.Guest
	err := s.withSession(func(domain.Session) (err error) {
		g, err = s.store.Guest(id)
		return err
	})
	return g, err
}

// AddGuest stores a new invitation. Missing id, status and meal are filled in and the party
// size is derived from the breakdown when it is not given.
func (s *plannerService) AddGuest(ctx context.Context, g domain.Guest) (domain.Guest, error) {
	return s.addGuest(ctx, g, false)
}

// SuggestGuest stores a proposal attributed to addedBy. An empty addedBy falls back to the
// user who started the session.
func (s *plannerService) SuggestGuest(ctx context.Context, g domain.Guest, addedBy string) (domain.Guest, error) {
	g.AddedBy = strings.TrimSpace(addedBy)
	return s.addGuest(ctx, g, true)
}

func (s *plannerService) addGuest(ctx context.Context, g domain.Guest, suggestion bool) (domain.Guest, error) {
	err := s.withSession(func(sess domain.Session) error {
		if g.ID == "" {
			g.ID = s.newID()
		}
		g.EventID = sess.EventID
		if g.PartySize == 0 {
			g.PartySize = g.MenCount + g.WomenCount + g.ChildrenCount
		}
		if g.MealChoice == "" {
			g.MealChoice = domain.MealNone
		}
		switch {
		case suggestion:
			g.RSVPStatus = domain.RSVPSuggested
			if g.AddedBy == "" {
				g.AddedBy = sess.UserName
			}
		case g.RSVPStatus == "":
			g.RSVPStatus = domain.RSVPInvited
		}
		if err := g.Validate(); err != nil {
			return err
		}
		if err := s.store.AddGuest(g); err != nil {
			return err
		}
		added := g
		s.syncer.dispatch(ctx, "addGuest", sess.EventID, g.ID, func(ctx context.Context) error {
			return s.remote.AddGuest(ctx, added)
		})
		return nil
	})
	if err != nil {
		return domain.Guest{}, err
	}
	return g, nil
}

// UpdateGuest merges patch into the guest. A non-empty table id must name a known table.
func (s *plannerService) UpdateGuest(ctx context.Context, id string, patch domain.GuestPatch) (domain.Guest, error) {
	if err := patch.Validate(); err != nil {
		return domain.Guest{}, err
	}
	var tableID string
	if patch.TableID != nil {
		tableID = *patch.TableID
	}
	return s.mutateGuestAt(ctx, id, tableID, func(g *domain.Guest) error {
		patch.Apply(g)
		return nil
	})
}

// mutateGuest applies fn locally and then syncs the merged record.
func (s *plannerService) mutateGuest(ctx context.Context, id string, fn func(*domain.Guest) error) (domain.Guest, error) {
	return s.mutateGuestAt(ctx, id, "", fn)
}

// mutateGuestAt is mutateGuest for changes that seat the guest at tableID.
func (s *plannerService) mutateGuestAt(ctx context.Context, id, tableID string, fn func(*domain.Guest) error) (domain.Guest, error) {
	var updated domain.Guest
	err := s.withSession(func(sess domain.Session) (err error) {
		if tableID != "" {
			if _, err := s.store.Table(tableID); err != nil {
				return err
			}
		}
		updated, err = s.store.UpdateGuest(id, fn)
		if err != nil {
			return err
		}
		rec := updated
		s.syncer.dispatch(ctx, "updateGuest", sess.EventID, id, func(ctx context.Context) error {
			return s.remote.UpdateGuest(ctx, rec)
		})
		return nil
	})
	return updated, err
}

func (s *plannerService) DeleteGuest(ctx context.Context, id string) error {
	return s.withSession(func(sess domain.Session) error {
		if err := s.store.RemoveGuest(id); err != nil {
			return err
		}
		s.syncer.dispatch(ctx, "deleteGuest", sess.EventID, id, func(ctx context.Context) error {
			return s.remote.DeleteGuest(ctx, id, sess.EventID)
		})
		return nil
	})
}

// ApproveSuggestion promotes a suggested guest to Invited in place.
func (s *plannerService) ApproveSuggestion(ctx context.Context, id string) (domain.Guest, error) {
	return s.mutateGuest(ctx, id, func(g *domain.Guest) error {
		if !g.IsSuggestion() {
			return fmt.Errorf("%w: guest %q is not a suggestion", domain.ErrInvalidInput, id)
		}
		g.RSVPStatus = domain.RSVPInvited
		return nil
	})
}

// CycleRSVP advances the guest's status one step. Suggestions must be approved first.
func (s *plannerService) CycleRSVP(ctx context.Context, id string) (domain.Guest, error) {
	return s.mutateGuest(ctx, id, func(g *domain.Guest) error {
		if g.IsSuggestion() {
			return fmt.Errorf("%w: approve suggestion %q before changing its rsvp", domain.ErrInvalidInput, id)
		}
		g.RSVPStatus = usecase.NextRSVPStatus(g.RSVPStatus)
		return nil
	})
}

func (s *plannerService) SetCheckedIn(ctx context.Context, id string, checkedIn bool) (domain.Guest, error) {
	return s.mutateGuest(ctx, id, func(g *domain.Guest) error {
		g.CheckedIn = checkedIn
		return nil
	})
}

// CheckIn returns the guests matching search and the check-in counts over all guests.
func (s *plannerService) CheckIn(search string) ([]domain.Guest, domain.CheckInSummary, error) {
	var (
		matches []domain.Guest
		summary domain.CheckInSummary
	)
	err := s.withSession(func(domain.Session) error {
		all := s.store.Guests()
		matches = usecase.SearchGuests(all, search)
		summary = usecase.SummarizeCheckIn(all)
		return nil
	})
	return matches, summary, err
}
