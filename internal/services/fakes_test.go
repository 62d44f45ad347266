package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"weddingplanner/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

type remoteCall struct {
	action   string
	eventID  string
	entityID string
	record   any
}

// fakePersistence records every call. err, if set, fails all sync calls.
type fakePersistence struct {
	mu          sync.Mutex
	calls       []remoteCall
	snapshot    domain.Snapshot
	fetchErr    error
	err         error
	createdID   string
	coupleName  string
	joinErr     error
	createErr   error
	blockSyncCh chan struct{}

	// fetchStarted, if set, is signalled when FetchAll begins; FetchAll then waits on fetchGate.
	fetchStarted chan struct{}
	fetchGate    chan struct{}
	fetches      int
}

func (f *fakePersistence) record(action, eventID, entityID string, rec any) error {
	if f.blockSyncCh != nil {
		<-f.blockSyncCh
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, remoteCall{action: action, eventID: eventID, entityID: entityID, record: rec})
	return f.err
}

func (f *fakePersistence) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func (f *fakePersistence) callsFor(action string) []remoteCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []remoteCall
	for _, c := range f.calls {
		if c.action == action {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakePersistence) CreateEvent(ctx context.Context, coupleName string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.createdID, nil
}

func (f *fakePersistence) JoinEvent(ctx context.Context, eventID string) (string, error) {
	if f.joinErr != nil {
		return "", f.joinErr
	}
	return f.coupleName, nil
}

func (f *fakePersistence) FetchAll(ctx context.Context, eventID string) (domain.Snapshot, error) {
	f.mu.Lock()
	f.fetches++
	f.mu.Unlock()
	if f.fetchStarted != nil {
		f.fetchStarted <- struct{}{}
		<-f.fetchGate
	}
	if f.fetchErr != nil {
		return domain.Snapshot{}, f.fetchErr
	}
	return f.snapshot, nil
}

func (f *fakePersistence) LogVisit(ctx context.Context, eventID, name string) error {
	return f.record("logVisit", eventID, name, nil)
}

func (f *fakePersistence) AddGuest(ctx context.Context, g domain.Guest) error {
	return f.record("addGuest", g.EventID, g.ID, g)
}

func (f *fakePersistence) UpdateGuest(ctx context.Context, g domain.Guest) error {
	return f.record("updateGuest", g.EventID, g.ID, g)
}

func (f *fakePersistence) DeleteGuest(ctx context.Context, id, eventID string) error {
	return f.record("deleteGuest", eventID, id, nil)
}

func (f *fakePersistence) AddTable(ctx context.Context, t domain.Table) error {
	return f.record("addTable", t.EventID, t.ID, t)
}

func (f *fakePersistence) AddVendor(ctx context.Context, v domain.Vendor) error {
	return f.record("addVendor", v.EventID, v.ID, v)
}

func (f *fakePersistence) UpdateVendor(ctx context.Context, v domain.Vendor) error {
	return f.record("updateVendor", v.EventID, v.ID, v)
}

func (f *fakePersistence) DeleteVendor(ctx context.Context, id, eventID string) error {
	return f.record("deleteVendor", eventID, id, nil)
}

func (f *fakePersistence) AddTask(ctx context.Context, t domain.Task) error {
	return f.record("addTask", t.EventID, t.ID, t)
}

func (f *fakePersistence) UpdateTask(ctx context.Context, t domain.Task) error {
	return f.record("updateTask", t.EventID, t.ID, t)
}

func (f *fakePersistence) DeleteTask(ctx context.Context, id, eventID string) error {
	return f.record("deleteTask", eventID, id, nil)
}

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (m *fakeMailer) Send(to, subject, html, text string) error {
	m.to, m.subject, m.html, m.text = to, subject, html, text
	return m.err
}

type fakeRenderer struct {
	name string
	err  error
}

func (r *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	r.name = name
	if r.err != nil {
		return "", "", "", r.err
	}
	return "subject", "<p>html</p>", "text", nil
}
