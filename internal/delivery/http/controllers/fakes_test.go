package controllers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"weddingplanner/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakePlanner implements domain.PlannerService for handler tests. err is returned by every
// method; the last* fields record the arguments of the most recent call.
type fakePlanner struct {
	err error

	session   *domain.Session
	dashboard *domain.Dashboard
	seating   *domain.SeatingView
	visitors  []domain.Viewer
	guests    []domain.Guest
	guest     domain.Guest
	summary   domain.CheckInSummary
	tables    []domain.Table
	vendors   []domain.Vendor
	totals    domain.VendorTotals
	vendor    domain.Vendor
	tasks     []domain.Task
	progress  int
	task      domain.Task

	loggedOut       bool
	lastCoupleName  string
	lastUserName    string
	lastEventID     string
	lastID          string
	lastTableID     string
	lastCheckedIn   bool
	lastSearch      string
	lastFilters     []domain.GuestFilter
	lastTaskFilter  domain.TaskFilter
	lastGuest       domain.Guest
	lastSuggested   bool
	lastAddedBy     string
	lastGuestPatch  domain.GuestPatch
	lastTable       domain.Table
	lastVendor      domain.Vendor
	lastVendorPatch domain.VendorPatch
	lastTask        domain.Task
	lastTaskPatch   domain.TaskPatch
}

func (f *fakePlanner) CreateEvent(_ context.Context, coupleName, userName string) (*domain.Session, error) {
	f.lastCoupleName, f.lastUserName = coupleName, userName
	return f.session, f.err
}

func (f *fakePlanner) JoinEvent(_ context.Context, eventID, userName string) (*domain.Session, error) {
	f.lastEventID, f.lastUserName = eventID, userName
	return f.session, f.err
}

func (f *fakePlanner) Logout() { f.loggedOut = true }

func (f *fakePlanner) Session() (*domain.Session, error) {
	if f.session == nil {
		return nil, domain.ErrNoSession
	}
	return f.session, nil
}

func (f *fakePlanner) Wait() {}

func (f *fakePlanner) Dashboard() (*domain.Dashboard, error) { return f.dashboard, f.err }

func (f *fakePlanner) Seating() (*domain.SeatingView, error) { return f.seating, f.err }

func (f *fakePlanner) Visitors() ([]domain.Viewer, error) { return f.visitors, f.err }

func (f *fakePlanner) ListGuests(filter domain.GuestFilter) ([]domain.Guest, error) {
	f.lastFilters = append(f.lastFilters, filter)
	return f.guests, f.err
}

func (f *fakePlanner) GetGuest(id string) (domain.Guest, error) {
	f.lastID = id
	return f.guest, f.err
}

func (f *fakePlanner) AddGuest(_ context.Context, g domain.Guest) (domain.Guest, error) {
	f.lastGuest = g
	return g, f.err
}

func (f *fakePlanner) SuggestGuest(_ context.Context, g domain.Guest, addedBy string) (domain.Guest, error) {
	f.lastGuest, f.lastSuggested, f.lastAddedBy = g, true, addedBy
	g.AddedBy = addedBy
	g.RSVPStatus = domain.RSVPSuggested
	return g, f.err
}

func (f *fakePlanner) UpdateGuest(_ context.Context, id string, patch domain.GuestPatch) (domain.Guest, error) {
	f.lastID, f.lastGuestPatch = id, patch
	return f.guest, f.err
}

func (f *fakePlanner) DeleteGuest(_ context.Context, id string) error {
	f.lastID = id
	return f.err
}

func (f *fakePlanner) ApproveSuggestion(_ context.Context, id string) (domain.Guest, error) {
	f.lastID = id
	return f.guest, f.err
}

func (f *fakePlanner) CycleRSVP(_ context.Context, id string) (domain.Guest, error) {
	f.lastID = id
	return f.guest, f.err
}

func (f *fakePlanner) SetCheckedIn(_ context.Context, id string, checkedIn bool) (domain.Guest, error) {
	f.lastID, f.lastCheckedIn = id, checkedIn
	return f.guest, f.err
}

func (f *fakePlanner) CheckIn(search string) ([]domain.Guest, domain.CheckInSummary, error) {
	f.lastSearch = search
	return f.guests, f.summary, f.err
}

func (f *fakePlanner) ListTables() ([]domain.Table, error) { return f.tables, f.err }

func (f *fakePlanner) AddTable(_ context.Context, t domain.Table) (domain.Table, error) {
	f.lastTable = t
	return t, f.err
}

func (f *fakePlanner) AssignSeat(_ context.Context, guestID, tableID string) (domain.Guest, error) {
	f.lastID, f.lastTableID = guestID, tableID
	return f.guest, f.err
}

func (f *fakePlanner) ListVendors() ([]domain.Vendor, domain.VendorTotals, error) {
	return f.vendors, f.totals, f.err
}

func (f *fakePlanner) GetVendor(id string) (domain.Vendor, error) {
	f.lastID = id
	return f.vendor, f.err
}

func (f *fakePlanner) AddVendor(_ context.Context, v domain.Vendor) (domain.Vendor, error) {
	f.lastVendor = v
	return v, f.err
}

func (f *fakePlanner) UpdateVendor(_ context.Context, id string, patch domain.VendorPatch) (domain.Vendor, error) {
	f.lastID, f.lastVendorPatch = id, patch
	return f.vendor, f.err
}

func (f *fakePlanner) DeleteVendor(_ context.Context, id string) error {
	f.lastID = id
	return f.err
}

func (f *fakePlanner) ListTasks(filter domain.TaskFilter) ([]domain.Task, int, error) {
	f.lastTaskFilter = filter
	return f.tasks, f.progress, f.err
}

func (f *fakePlanner) AddTask(_ context.Context, t domain.Task) (domain.Task, error) {
	f.lastTask = t
	return t, f.err
}

func (f *fakePlanner) UpdateTask(_ context.Context, id string, patch domain.TaskPatch) (domain.Task, error) {
	f.lastID, f.lastTaskPatch = id, patch
	return f.task, f.err
}

func (f *fakePlanner) ToggleTask(_ context.Context, id string) (domain.Task, error) {
	f.lastID = id
	return f.task, f.err
}

func (f *fakePlanner) DeleteTask(_ context.Context, id string) error {
	f.lastID = id
	return f.err
}

// fakeTokens implements domain.TokenIssuer.
type fakeTokens struct {
	token string
	err   error
}

func (f *fakeTokens) Issue(eventID, userName string) (string, time.Time, error) {
	if f.err != nil {
		return "", time.Time{}, f.err
	}
	return f.token, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), nil
}

// fakeReminders implements domain.ReminderService.
type fakeReminders struct {
	draft    *domain.ReminderDraft
	err      error
	lastID   string
	lastLang domain.Language
	lastSent *domain.ReminderEmailData
}

func (f *fakeReminders) DraftVendorReminder(_ context.Context, vendorID string, lang domain.Language) (*domain.ReminderDraft, error) {
	f.lastID, f.lastLang = vendorID, lang
	return f.draft, f.err
}

func (f *fakeReminders) DraftGuestReminder(_ context.Context, guestID string, lang domain.Language) (*domain.ReminderDraft, error) {
	f.lastID, f.lastLang = guestID, lang
	return f.draft, f.err
}

func (f *fakeReminders) SendReminderEmail(_ context.Context, data *domain.ReminderEmailData) error {
	f.lastSent = data
	return f.err
}

// fakeAssistant implements domain.AssistantService.
type fakeAssistant struct {
	text           string
	lastInvite     domain.InviteRequest
	lastAmount     float64
	lastGuestCount int
}

func (f *fakeAssistant) GenerateInviteText(_ context.Context, req domain.InviteRequest) string {
	f.lastInvite = req
	return f.text
}

func (f *fakeAssistant) GenerateReminderText(_ context.Context, _ domain.ReminderRequest) string {
	return f.text
}

func (f *fakeAssistant) AnalyzeBudget(_ context.Context, amount float64, guestCount int) string {
	f.lastAmount, f.lastGuestCount = amount, guestCount
	return f.text
}
