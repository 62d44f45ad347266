package sheets

import (
	"context"

	"weddingplanner/internal/domain"
)

// Demo values returned when no web app is configured.
const (
	DemoEventID    = "W1000"
	DemoCoupleName = "Demo Wedding"
)

// demoPersistence accepts everything and stores nothing.
type demoPersistence struct{}

// NewDemo returns the offline backend: every event exists and starts empty.
func NewDemo() domain.Persistence {
	return demoPersistence{}
}

func (demoPersistence) CreateEvent(context.Context, string) (string, error) {
	return DemoEventID, nil
}

func (demoPersistence) JoinEvent(context.Context, string) (string, error) {
	return DemoCoupleName, nil
}

func (demoPersistence) FetchAll(context.Context, string) (domain.Snapshot, error) {
	return domain.Snapshot{}, nil
}

func (demoPersistence) LogVisit(context.Context, string, string) error {
	return nil
}

func (demoPersistence) AddGuest(context.Context, domain.Guest) error {
	return nil
}

func (demoPersistence) UpdateGuest(context.Context, domain.Guest) error {
	return nil
}

func (demoPersistence) DeleteGuest(context.Context, string, string) error {
	return nil
}

func (demoPersistence) AddTable(context.Context, domain.Table) error {
	return nil
}

func (demoPersistence) AddVendor(context.Context, domain.Vendor) error {
	return nil
}

func (demoPersistence) UpdateVendor(context.Context, domain.Vendor) error {
	return nil
}

func (demoPersistence) DeleteVendor(context.Context, string, string) error {
	return nil
}

func (demoPersistence) AddTask(context.Context, domain.Task) error {
	return nil
}

func (demoPersistence) UpdateTask(context.Context, domain.Task) error {
	return nil
}

func (demoPersistence) DeleteTask(context.Context, string, string) error {
	return nil
}
