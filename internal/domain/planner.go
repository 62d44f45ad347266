package domain

import "context"

// TaskFilter selects tasks by completion.
type TaskFilter string

const (
	TasksAll       TaskFilter = "All"
	TasksPending   TaskFilter = "Pending"
	TasksCompleted TaskFilter = "Completed"
)

// GuestTab selects between invitations and suggestions.
type GuestTab string

const (
	TabMain        GuestTab = "Main"
	TabSuggestions GuestTab = "Suggestions"
)

// GuestFilter narrows the guest list. Empty Status or Village means all.
type GuestFilter struct {
	Tab     GuestTab
	Search  string
	Status  RSVPStatus
	Village string
}

// CheckInSummary counts checked-in guest records.
type CheckInSummary struct {
	CheckedIn int `json:"checkedIn"`
	Remaining int `json:"remaining"`
}

// PlannerService owns the active event session. Mutations apply locally first and then sync
// to the remote store in the background; remote failures never undo local changes.
type PlannerService interface {
	CreateEvent(ctx context.Context, coupleName, userName string) (*Session, error)
	JoinEvent(ctx context.Context, eventID, userName string) (*Session, error)
	Logout()
	Session() (*Session, error)
	// Wait blocks until background syncs have finished.
	Wait()

	Dashboard() (*Dashboard, error)
	Seating() (*SeatingView, error)
	Visitors() ([]Viewer, error)

	ListGuests(filter GuestFilter) ([]Guest, error)
	GetGuest(id string) (Guest, error)
	AddGuest(ctx context.Context, g Guest) (Guest, error)
	SuggestGuest(ctx context.Context, g Guest, addedBy string) (Guest, error)
	UpdateGuest(ctx context.Context, id string, patch GuestPatch) (Guest, error)
	DeleteGuest(ctx context.Context, id string) error
	ApproveSuggestion(ctx context.Context, id string) (Guest, error)
	CycleRSVP(ctx context.Context, id string) (Guest, error)
	SetCheckedIn(ctx context.Context, id string, checkedIn bool) (Guest, error)
	CheckIn(search string) ([]Guest, CheckInSummary, error)

	ListTables() ([]Table, error)
	AddTable(ctx context.Context, t Table) (Table, error)
	AssignSeat(ctx context.Context, guestID, tableID string) (Guest, error)

	ListVendors() ([]Vendor, VendorTotals, error)
	GetVendor(id string) (Vendor, error)
	AddVendor(ctx context.Context, v Vendor) (Vendor, error)
	UpdateVendor(ctx context.Context, id string, patch VendorPatch) (Vendor, error)
	DeleteVendor(ctx context.Context, id string) error

	ListTasks(filter TaskFilter) ([]Task, int, error)
	AddTask(ctx context.Context, t Task) (Task, error)
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (Task, error)
	ToggleTask(ctx context.Context, id string) (Task, error)
	DeleteTask(ctx context.Context, id string) error
}
