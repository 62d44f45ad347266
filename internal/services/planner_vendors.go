package services

import (
	"context"

	"weddingplanner/internal/domain"
	"weddingplanner/internal/usecase"
)

func (s *plannerService) ListVendors() ([]domain.Vendor, domain.VendorTotals, error) {
	var (
		out    []domain.Vendor
		totals domain.VendorTotals
	)
	err := s.withSession(func(domain.Session) error {
		out = s.store.Vendors()
		totals = usecase.SumVendors(out)
		return nil
	})
	return out, totals, err
}

func (s *plannerService) GetVendor(id string) (domain.Vendor, error) {
	var v domain.Vendor
	err := s.withSession(func(domain.Session) (err error) {
		v, err = s.store.Vendor(id)
		return err
	})
	return v, err
}

func (s *plannerService) AddVendor(ctx context.Context, v domain.Vendor) (domain.Vendor, error) {
	err := s.withSession(func(sess domain.Session) error {
		if v.ID == "" {
			v.ID = s.newID()
		}
		v.EventID = sess.EventID
		if v.Category == "" {
			v.Category = domain.CategoryOther
		}
		if v.Status == "" {
			v.Status = domain.VendorDraft
		}
		if err := v.Validate(); err != nil {
			return err
		}
		if err := s.store.AddVendor(v); err != nil {
			return err
		}
		added := v
		s.syncer.dispatch(ctx, "addVendor", sess.EventID, v.ID, func(ctx context.Context) error {
			return s.remote.AddVendor(ctx, added)
		})
		return nil
	})
	if err != nil {
		return domain.Vendor{}, err
	}
	return v, nil
}

// UpdateVendor merges patch into the vendor. Paid is not capped at cost.
func (s *plannerService) UpdateVendor(ctx context.Context, id string, patch domain.VendorPatch) (domain.Vendor, error) {
	if err := patch.Validate(); err != nil {
		return domain.Vendor{}, err
	}
	var updated domain.Vendor
	err := s.withSession(func(sess domain.Session) (err error) {
		updated, err = s.store.UpdateVendor(id, func(v *domain.Vendor) error {
			patch.Apply(v)
			return nil
		})
		if err != nil {
			return err
		}
		rec := updated
		s.syncer.dispatch(ctx, "updateVendor", sess.EventID, id, func(ctx context.Context) error {
			return s.remote.UpdateVendor(ctx, rec)
		})
		return nil
	})
	return updated, err
}

func (s *plannerService) DeleteVendor(ctx context.Context, id string) error {
	return s.withSession(func(sess domain.Session) error {
		if err := s.store.RemoveVendor(id); err != nil {
			return err
		}
		s.syncer.dispatch(ctx, "deleteVendor", sess.EventID, id, func(ctx context.Context) error {
			return s.remote.DeleteVendor(ctx, id, sess.EventID)
		})
		return nil
	})
}
