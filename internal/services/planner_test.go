package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"weddingplanner/internal/domain"
	"weddingplanner/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlanner(t *testing.T, remote *fakePersistence) (*plannerService, *store.Store) {
	t.Helper()
	st := store.New()
	svc := NewPlannerService(st, remote, PlannerConfig{
		TotalBudget: 5000000,
		DaysToGo:    45,
		Currency:    "PKR",
		SyncTimeout: time.Second,
	}, discardLogger(), nil).(*plannerService)
	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return svc, st
}

func joined(t *testing.T, remote *fakePersistence) (*plannerService, *store.Store) {
	t.Helper()
	if remote.coupleName == "" {
		remote.coupleName = "Ali & Sara"
	}
	svc, st := newTestPlanner(t, remote)
	_, err := svc.JoinEvent(context.Background(), "W1", "Ammi")
	require.NoError(t, err)
	svc.Wait()
	return svc, st
}

func TestPlanner_JoinEvent_LoadsSnapshotAndLogsVisit(t *testing.T) {
	remote := &fakePersistence{
		coupleName: "Ali & Sara",
		snapshot: domain.Snapshot{
			Guests: []domain.Guest{*domain.NewGuest("g1", "W1", "Uncle", domain.RelationFamily, domain.RSVPAccepted, 2, 2, 0)},
			Tables: []domain.Table{{ID: "t1", EventID: "W1", Name: "T1", Capacity: 8}},
		},
	}
	svc, st := newTestPlanner(t, remote)

	sess, err := svc.JoinEvent(context.Background(), " W1 ", "Ammi")
	require.NoError(t, err)
	svc.Wait()

	assert.Equal(t, "W1", sess.EventID)
	assert.Equal(t, "Ammi", sess.UserName)
	assert.Equal(t, "Ali & Sara", sess.CoupleName)
	assert.Len(t, st.Guests(), 1)
	assert.Len(t, st.Tables(), 1)

	visits := st.Visitors()
	require.Len(t, visits, 1)
	assert.Equal(t, "Ammi", visits[0].Name)
	assert.Len(t, remote.callsFor("logVisit"), 1)
}

func TestPlanner_JoinEvent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		remote  *fakePersistence
		eventID string
		user    string
		wantErr error
	}{
		{"unknown event", &fakePersistence{joinErr: domain.ErrNotFound}, "W9", "Ammi", domain.ErrNotFound},
		{"missing user", &fakePersistence{}, "W1", " ", domain.ErrInvalidInput},
		{"missing event", &fakePersistence{}, "", "Ammi", domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestPlanner(t, tt.remote)
			_, err := svc.JoinEvent(context.Background(), tt.eventID, tt.user)
			require.ErrorIs(t, err, tt.wantErr)
			_, err = svc.Session()
			require.ErrorIs(t, err, domain.ErrNoSession)
		})
	}
}

func TestPlanner_JoinEvent_FetchFailureStartsEmpty(t *testing.T) {
	remote := &fakePersistence{coupleName: "Demo", fetchErr: errors.New("network down")}
	svc, st := newTestPlanner(t, remote)

	_, err := svc.JoinEvent(context.Background(), "W1", "Ammi")
	require.NoError(t, err)
	svc.Wait()

	assert.Empty(t, st.Guests())
	assert.Len(t, st.Visitors(), 1)
}

func TestPlanner_CreateEvent(t *testing.T) {
	remote := &fakePersistence{createdID: "W1000"}
	svc, _ := newTestPlanner(t, remote)

	sess, err := svc.CreateEvent(context.Background(), "Ali & Sara", "Abbu")
	require.NoError(t, err)
	svc.Wait()
	assert.Equal(t, "W1000", sess.EventID)
	assert.Equal(t, "Ali & Sara", sess.CoupleName)

	remote.createErr = errors.New("quota")
	_, err = svc.CreateEvent(context.Background(), "X", "Y")
	require.Error(t, err)
}

func TestPlanner_MutationsRequireSession(t *testing.T) {
	svc, _ := newTestPlanner(t, &fakePersistence{})
	ctx := context.Background()

	_, err := svc.AddGuest(ctx, domain.Guest{FullName: "x", MenCount: 1})
	require.ErrorIs(t, err, domain.ErrNoSession)
	_, err = svc.Dashboard()
	require.ErrorIs(t, err, domain.ErrNoSession)
	require.ErrorIs(t, svc.DeleteTask(ctx, "k1"), domain.ErrNoSession)
}

func TestPlanner_AddGuest_DefaultsAndSync(t *testing.T) {
	remote := &fakePersistence{}
	svc, st := joined(t, remote)

	g, err := svc.AddGuest(context.Background(), domain.Guest{
		FullName: "Khala", Relation: domain.RelationFamily, MenCount: 1, WomenCount: 2, ChildrenCount: 1,
	})
	require.NoError(t, err)
	svc.Wait()

	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "W1", g.EventID)
	assert.Equal(t, 4, g.PartySize)
	assert.Equal(t, domain.RSVPInvited, g.RSVPStatus)
	assert.Equal(t, domain.MealNone, g.MealChoice)

	stored, err := st.Guest(g.ID)
	require.NoError(t, err)
	assert.Equal(t, g, stored)

	calls := remote.callsFor("addGuest")
	require.Len(t, calls, 1)
	assert.Equal(t, g, calls[0].record)
}

func TestPlanner_AddGuest_Invalid(t *testing.T) {
	svc, _ := joined(t, &fakePersistence{})
	ctx := context.Background()

	_, err := svc.AddGuest(ctx, domain.Guest{FullName: "x", MenCount: -1, WomenCount: 2})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.AddGuest(ctx, domain.Guest{FullName: "x", PartySize: 5, MenCount: 1})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.AddGuest(ctx, domain.Guest{ID: "dup", FullName: "x", MenCount: 1})
	require.NoError(t, err)
	_, err = svc.AddGuest(ctx, domain.Guest{ID: "dup", FullName: "y", MenCount: 1})
	require.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestPlanner_SuggestAndApprove(t *testing.T) {
	svc, _ := joined(t, &fakePersistence{})
	ctx := context.Background()

	g, err := svc.SuggestGuest(ctx, domain.Guest{FullName: "Neighbour", MenCount: 2, RSVPStatus: domain.RSVPAccepted}, "")
	require.NoError(t, err)
	assert.Equal(t, domain.RSVPSuggested, g.RSVPStatus)
	assert.Equal(t, "Ammi", g.AddedBy)

	d, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, 0, d.Stats.TotalGuests)

	_, err = svc.CycleRSVP(ctx, g.ID)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	approved, err := svc.ApproveSuggestion(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RSVPInvited, approved.RSVPStatus)
	assert.Equal(t, g.ID, approved.ID)

	d, err = svc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, 2, d.Stats.TotalGuests)

	_, err = svc.ApproveSuggestion(ctx, g.ID)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlanner_UpdateGuest_SyncsMergedRecord(t *testing.T) {
	remote := &fakePersistence{}
	svc, _ := joined(t, remote)
	ctx := context.Background()

	g, err := svc.AddGuest(ctx, domain.Guest{FullName: "Phuppo", WomenCount: 1, Phone: "0300"})
	require.NoError(t, err)

	children := 2
	updated, err := svc.UpdateGuest(ctx, g.ID, domain.GuestPatch{ChildrenCount: &children})
	require.NoError(t, err)
	svc.Wait()

	assert.Equal(t, 3, updated.PartySize)
	assert.Equal(t, "0300", updated.Phone)
	calls := remote.callsFor("updateGuest")
	require.Len(t, calls, 1)
	assert.Equal(t, updated, calls[0].record)

	_, err = svc.UpdateGuest(ctx, "missing", domain.GuestPatch{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlanner_RemoteFailureKeepsLocalState(t *testing.T) {
	remote := &fakePersistence{}
	svc, st := joined(t, remote)
	remote.err = errors.New("500 from sheet")

	g, err := svc.AddGuest(context.Background(), domain.Guest{FullName: "Taya", MenCount: 1})
	require.NoError(t, err)
	svc.Wait()

	_, err = st.Guest(g.ID)
	require.NoError(t, err)
	assert.Len(t, remote.callsFor("addGuest"), 1)
}

func TestPlanner_LocalChangeVisibleBeforeSync(t *testing.T) {
	remote := &fakePersistence{}
	svc, _ := joined(t, remote)
	remote.blockSyncCh = make(chan struct{})

	_, err := svc.AddVendor(context.Background(), domain.Vendor{Name: "Caterer", Cost: 100, Paid: 40})
	require.NoError(t, err)

	d, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, 40.0, d.Stats.SpentBudget)
	assert.Empty(t, remote.callsFor("addVendor"))

	close(remote.blockSyncCh)
	svc.Wait()
	assert.Len(t, remote.callsFor("addVendor"), 1)
}

func TestPlanner_AssignSeat_ScenarioE(t *testing.T) {
	svc, _ := joined(t, &fakePersistence{})
	ctx := context.Background()

	_, err := svc.AddTable(ctx, domain.Table{ID: "T1", Name: "One", Capacity: 8})
	require.NoError(t, err)
	_, err = svc.AddTable(ctx, domain.Table{ID: "T2", Name: "Two", Capacity: 8})
	require.NoError(t, err)
	g, err := svc.AddGuest(ctx, domain.Guest{FullName: "Cousin", MenCount: 1})
	require.NoError(t, err)

	_, err = svc.AssignSeat(ctx, g.ID, "T1")
	require.NoError(t, err)
	_, err = svc.AssignSeat(ctx, g.ID, "T2")
	require.NoError(t, err)

	view, err := svc.Seating()
	require.NoError(t, err)
	require.Len(t, view.Tables, 2)
	assert.Empty(t, view.Tables[0].Guests)
	require.Len(t, view.Tables[1].Guests, 1)
	assert.Equal(t, g.ID, view.Tables[1].Guests[0].ID)
	assert.Empty(t, view.Unseated)

	cleared, err := svc.AssignSeat(ctx, g.ID, "")
	require.NoError(t, err)
	assert.False(t, cleared.Seated())

	_, err = svc.AssignSeat(ctx, g.ID, "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlanner_UpdateGuest_UnknownTable(t *testing.T) {
	svc, _ := joined(t, &fakePersistence{})
	ctx := context.Background()

	_, err := svc.AddTable(ctx, domain.Table{ID: "T1", Name: "One", Capacity: 8})
	require.NoError(t, err)
	g, err := svc.AddGuest(ctx, domain.Guest{FullName: "Cousin", MenCount: 1})
	require.NoError(t, err)

	nope, t1, none := "nope", "T1", ""
	_, err = svc.UpdateGuest(ctx, g.ID, domain.GuestPatch{TableID: &nope})
	require.ErrorIs(t, err, domain.ErrNotFound)
	got, err := svc.GetGuest(g.ID)
	require.NoError(t, err)
	assert.False(t, got.Seated())

	seated, err := svc.UpdateGuest(ctx, g.ID, domain.GuestPatch{TableID: &t1})
	require.NoError(t, err)
	assert.Equal(t, "T1", seated.TableID)

	cleared, err := svc.UpdateGuest(ctx, g.ID, domain.GuestPatch{TableID: &none})
	require.NoError(t, err)
	assert.False(t, cleared.Seated())
}

func TestPlanner_AssignSeat_AllowsOverbooking(t *testing.T) {
	svc, _ := joined(t, &fakePersistence{})
	ctx := context.Background()

	_, err := svc.AddTable(ctx, domain.Table{ID: "T1", Name: "Small", Capacity: 2})
	require.NoError(t, err)
	g, err := svc.AddGuest(ctx, domain.Guest{FullName: "Big family", MenCount: 3, WomenCount: 3})
	require.NoError(t, err)

	_, err = svc.AssignSeat(ctx, g.ID, "T1")
	require.NoError(t, err)

	view, err := svc.Seating()
	require.NoError(t, err)
	assert.Equal(t, 6, view.Tables[0].Occupancy)
	assert.Equal(t, domain.SeatFull, view.Tables[0].Status)
}

func TestPlanner_Vendors(t *testing.T) {
	remote := &fakePersistence{}
	svc, _ := joined(t, remote)
	ctx := context.Background()

	v, err := svc.AddVendor(ctx, domain.Vendor{Name: "Marquee", Cost: 100000, Paid: 30000})
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryOther, v.Category)
	assert.Equal(t, domain.VendorDraft, v.Status)

	paid := 120000.0
	v, err = svc.UpdateVendor(ctx, v.ID, domain.VendorPatch{Paid: &paid})
	require.NoError(t, err)
	assert.Equal(t, -20000.0, v.Balance())

	_, totals, err := svc.ListVendors()
	require.NoError(t, err)
	assert.Equal(t, -20000.0, totals.Balance)

	require.NoError(t, svc.DeleteVendor(ctx, v.ID))
	require.ErrorIs(t, svc.DeleteVendor(ctx, v.ID), domain.ErrNotFound)
	svc.Wait()

	deletes := remote.callsFor("deleteVendor")
	require.Len(t, deletes, 1)
	assert.Equal(t, "W1", deletes[0].eventID)
}

func TestPlanner_Tasks(t *testing.T) {
	svc, _ := joined(t, &fakePersistence{})
	ctx := context.Background()

	k, err := svc.AddTask(ctx, domain.Task{Title: "Book mehndi artist"})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, k.Priority)
	_, err = svc.AddTask(ctx, domain.Task{Title: "Print cards"})
	require.NoError(t, err)

	k, err = svc.ToggleTask(ctx, k.ID)
	require.NoError(t, err)
	assert.True(t, k.Completed)

	pending, progress, err := svc.ListTasks(domain.TasksPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, 50, progress)

	k, err = svc.ToggleTask(ctx, k.ID)
	require.NoError(t, err)
	assert.False(t, k.Completed)

	high := domain.PriorityHigh
	k, err = svc.UpdateTask(ctx, k.ID, domain.TaskPatch{Priority: &high})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, k.Priority)
	assert.Equal(t, "Book mehndi artist", k.Title)

	bogus := domain.Priority("Urgent")
	_, err = svc.UpdateTask(ctx, k.ID, domain.TaskPatch{Priority: &bogus})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlanner_CheckIn(t *testing.T) {
	svc, _ := joined(t, &fakePersistence{})
	ctx := context.Background()

	g, err := svc.AddGuest(ctx, domain.Guest{FullName: "Nani", WomenCount: 1})
	require.NoError(t, err)
	_, err = svc.AddGuest(ctx, domain.Guest{FullName: "Nana", MenCount: 1})
	require.NoError(t, err)

	_, err = svc.SetCheckedIn(ctx, g.ID, true)
	require.NoError(t, err)

	matches, summary, err := svc.CheckIn("nan")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
	assert.Equal(t, domain.CheckInSummary{CheckedIn: 1, Remaining: 1}, summary)
}

func TestPlanner_Logout_ClearsEverything(t *testing.T) {
	remote := &fakePersistence{}
	svc, st := joined(t, remote)
	ctx := context.Background()

	_, err := svc.AddGuest(ctx, domain.Guest{FullName: "x", MenCount: 1})
	require.NoError(t, err)

	svc.Logout()
	svc.Wait()

	snap := st.Snapshot()
	assert.Empty(t, snap.Guests)
	assert.Empty(t, snap.Visitors)
	_, err = svc.Session()
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestPlanner_Visitors_Deduped(t *testing.T) {
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	remote := &fakePersistence{
		coupleName: "A & B",
		snapshot: domain.Snapshot{Visitors: []domain.Viewer{
			{Name: "ammi", Timestamp: base},
			{Name: "Abbu", Timestamp: base.Add(time.Hour)},
		}},
	}
	svc, _ := joined(t, remote)

	visitors, err := svc.Visitors()
	require.NoError(t, err)
	require.Len(t, visitors, 2)
	assert.Equal(t, "Ammi", visitors[0].Name, "current login is the newest entry")
	assert.Equal(t, "Abbu", visitors[1].Name)
}

func TestPlanner_SuggestGuest_AttributedToCaller(t *testing.T) {
	svc, _ := joined(t, &fakePersistence{})
	ctx := context.Background()

	_, err := svc.JoinEvent(ctx, "W1", "Abbu")
	require.NoError(t, err)
	svc.Wait()

	tests := []struct {
		name    string
		addedBy string
		want    string
	}{
		{"first organizer", "Ammi", "Ammi"},
		{"second organizer", " Abbu ", "Abbu"},
		{"no caller falls back to session user", "", "Abbu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := svc.SuggestGuest(ctx, domain.Guest{FullName: "Neighbour", MenCount: 1}, tt.addedBy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.AddedBy)
		})
	}
}

func TestPlanner_JoinEvent_SameEventKeepsLocalChanges(t *testing.T) {
	remote := &fakePersistence{}
	svc, _ := joined(t, remote)
	ctx := context.Background()
	require.Equal(t, 1, remote.fetchCount())

	remote.blockSyncCh = make(chan struct{})
	g, err := svc.AddGuest(ctx, domain.Guest{FullName: "Phuppo", WomenCount: 1})
	require.NoError(t, err)

	_, err = svc.JoinEvent(ctx, "W1", "Abbu")
	require.NoError(t, err)

	_, err = svc.GetGuest(g.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, remote.fetchCount())

	visitors, err := svc.Visitors()
	require.NoError(t, err)
	assert.Len(t, visitors, 2)
	sess, err := svc.Session()
	require.NoError(t, err)
	assert.Equal(t, "Abbu", sess.UserName)

	close(remote.blockSyncCh)
	svc.Wait()
}

func TestPlanner_JoinEvent_FetchDoesNotBlockSession(t *testing.T) {
	remote := &fakePersistence{}
	svc, _ := joined(t, remote)
	remote.fetchStarted = make(chan struct{})
	remote.fetchGate = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := svc.JoinEvent(context.Background(), "W2", "Khala")
		done <- err
	}()
	<-remote.fetchStarted

	sess, err := svc.Session()
	require.NoError(t, err)
	assert.Equal(t, "W1", sess.EventID)
	_, err = svc.Dashboard()
	require.NoError(t, err)

	close(remote.fetchGate)
	require.NoError(t, <-done)
	svc.Wait()

	sess, err = svc.Session()
	require.NoError(t, err)
	assert.Equal(t, "W2", sess.EventID)
	assert.Equal(t, 2, remote.fetchCount())
}
