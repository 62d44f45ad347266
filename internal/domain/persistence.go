package domain

import "context"

// EventDirectory creates and resolves events on the remote store.
type EventDirectory interface {
	// CreateEvent registers a new event and returns its identifier.
	CreateEvent(ctx context.Context, coupleName string) (eventID string, err error)
	// JoinEvent checks the event exists and returns its couple name. Unknown ids return ErrNotFound.
	JoinEvent(ctx context.Context, eventID string) (coupleName string, err error)
}

// GuestRepository syncs guest records to the remote store.
type GuestRepository interface {
	AddGuest(ctx context.Context, g Guest) error
	UpdateGuest(ctx context.Context, g Guest) error
	DeleteGuest(ctx context.Context, id, eventID string) error
}

// TableRepository syncs tables. Tables are append-only.
type TableRepository interface {
	AddTable(ctx context.Context, t Table) error
}

// VendorRepository syncs vendor records.
type VendorRepository interface {
	AddVendor(ctx context.Context, v Vendor) error
	UpdateVendor(ctx context.Context, v Vendor) error
	DeleteVendor(ctx context.Context, id, eventID string) error
}

// TaskRepository syncs task records.
type TaskRepository interface {
	AddTask(ctx context.Context, t Task) error
	UpdateTask(ctx context.Context, t Task) error
	DeleteTask(ctx context.Context, id, eventID string) error
}

// Persistence is the remote persistence collaborator. Every call is a single request/response;
// callers log failures and never retry.
type Persistence interface {
	EventDirectory
	GuestRepository
	TableRepository
	VendorRepository
	TaskRepository
	FetchAll(ctx context.Context, eventID string) (Snapshot, error)
	LogVisit(ctx context.Context, eventID, name string) error
}
