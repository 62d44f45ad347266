package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weddingplanner/internal/delivery/http/helpers"
	"weddingplanner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardController_GetDashboard(t *testing.T) {
	fake := &fakePlanner{dashboard: &domain.Dashboard{
		Stats:    domain.WeddingStats{TotalGuests: 4, ConfirmedGuests: 4, TotalBudget: 5000000, DaysToGo: 45},
		Currency: "PKR",
	}}
	ctrl := NewDashboardController(testLogger, fake)
	rr := httptest.NewRecorder()

	ctrl.GetDashboard(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope[domain.Dashboard](t, rr)
	assert.Equal(t, 4, env.Data.Stats.TotalGuests)
	assert.Equal(t, "PKR", env.Data.Currency)
}

func TestDashboardController_NoSession(t *testing.T) {
	ctrl := NewDashboardController(testLogger, &fakePlanner{err: domain.ErrNoSession})
	for name, handler := range map[string]http.HandlerFunc{
		"dashboard": ctrl.GetDashboard,
		"seating":   ctrl.GetSeating,
		"visitors":  ctrl.ListVisitors,
	} {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler(rr, httptest.NewRequest(http.MethodGet, "/"+name, nil))
			require.Equal(t, http.StatusUnauthorized, rr.Code)
			env := decodeEnvelope[any](t, rr)
			require.NotNil(t, env.Error)
			assert.Equal(t, helpers.ErrCodeUnauthorized, env.Error.Code)
		})
	}
}

func TestDashboardController_GetSeating(t *testing.T) {
	table := domain.Table{ID: "t1", Name: "Family", Capacity: 10}
	fake := &fakePlanner{seating: &domain.SeatingView{
		Unseated: []domain.Guest{{ID: "g2", FullName: "B", PartySize: 2}},
		Tables: []domain.TableOccupancy{
			{Table: table, Guests: []domain.Guest{{ID: "g1", PartySize: 9}}, Occupancy: 9, Status: domain.SeatNearFull},
		},
	}}
	ctrl := NewDashboardController(testLogger, fake)
	rr := httptest.NewRecorder()

	ctrl.GetSeating(rr, httptest.NewRequest(http.MethodGet, "/seating", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope[domain.SeatingView](t, rr)
	require.Len(t, env.Data.Tables, 1)
	assert.Equal(t, domain.SeatNearFull, env.Data.Tables[0].Status)
	assert.Equal(t, 9, env.Data.Tables[0].Occupancy)
	assert.Len(t, env.Data.Unseated, 1)
}

func TestDashboardController_ListVisitors(t *testing.T) {
	t.Run("empty list encodes as array", func(t *testing.T) {
		ctrl := NewDashboardController(testLogger, &fakePlanner{})
		rr := httptest.NewRecorder()
		ctrl.ListVisitors(rr, httptest.NewRequest(http.MethodGet, "/visitors", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"data":[]`)
	})
	t.Run("visitors", func(t *testing.T) {
		ts := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
		ctrl := NewDashboardController(testLogger, &fakePlanner{visitors: []domain.Viewer{{Name: "Ammi", Timestamp: ts}}})
		rr := httptest.NewRecorder()
		ctrl.ListVisitors(rr, httptest.NewRequest(http.MethodGet, "/visitors", nil))
		env := decodeEnvelope[[]domain.Viewer](t, rr)
		require.Len(t, env.Data, 1)
		assert.Equal(t, "Ammi", env.Data[0].Name)
		assert.True(t, ts.Equal(env.Data[0].Timestamp))
	})
}
