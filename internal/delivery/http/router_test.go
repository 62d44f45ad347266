package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddingplanner/internal/adapters/auth"
	"weddingplanner/internal/adapters/sheets"
	"weddingplanner/internal/delivery/http/controllers"
	"weddingplanner/internal/metrics"
	"weddingplanner/internal/services"
	"weddingplanner/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	planner := services.NewPlannerService(store.New(), sheets.NewDemo(), services.PlannerConfig{
		TotalBudget: 5000000,
		DaysToGo:    45,
		Currency:    "PKR",
	}, logger, m)
	t.Cleanup(planner.Wait)
	assistant := services.NewAssistantService(nil, "PKR", time.Second, logger, m)
	reminders := services.NewReminderService(planner, assistant, nil, nil, "PKR", logger)
	tokens := auth.NewJWTSessions("test-secret", time.Hour)

	handler := NewRouter(RouterConfig{
		Logger:         logger,
		Verifier:       tokens,
		Planner:        planner,
		Gatherer:       reg,
		AllowedOrigins: []string{"*"},
	}, Controllers{
		Session:   controllers.NewSessionController(logger, planner, tokens),
		Dashboard: controllers.NewDashboardController(logger, planner),
		Guests:    controllers.NewGuestController(logger, planner, reminders),
		Tables:    controllers.NewTableController(logger, planner),
		Vendors:   controllers.NewVendorController(logger, planner, reminders),
		Tasks:     controllers.NewTaskController(logger, planner),
		Assistant: controllers.NewAssistantController(logger, planner, assistant, reminders),
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, token, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, r)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeData(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	env := struct {
		Data  any `json:"data"`
		Error any `json:"error"`
	}{Data: dest}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.Nil(t, env.Error)
}

func TestRouter_SessionFlow(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodGet, "/dashboard", "", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, srv, http.MethodPost, "/session/create", "", `{"coupleName":"Ali & Sara","userName":"Ammi"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created controllers.SessionResponse
	decodeData(t, resp, &created)
	require.NotEmpty(t, created.Token)
	assert.Equal(t, sheets.DemoEventID, created.Session.EventID)
	token := created.Token

	resp = do(t, srv, http.MethodPost, "/tables", token, `{"id":"t1","name":"Family","capacity":10}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = do(t, srv, http.MethodPost, "/guests", token, `{"id":"g1","fullName":"Ali Khan","menCount":5,"womenCount":4}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = do(t, srv, http.MethodPut, "/seating/g1", token, `{"tableId":"t1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, srv, http.MethodGet, "/seating", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var seating struct {
		Unseated []any `json:"unseated"`
		Tables   []struct {
			Occupancy int    `json:"occupancy"`
			Status    string `json:"status"`
		} `json:"tables"`
	}
	decodeData(t, resp, &seating)
	require.Len(t, seating.Tables, 1)
	assert.Equal(t, 9, seating.Tables[0].Occupancy)
	assert.Equal(t, "near_full", seating.Tables[0].Status)
	assert.Empty(t, seating.Unseated)

	resp = do(t, srv, http.MethodGet, "/dashboard", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var dash struct {
		Stats struct {
			TotalGuests int `json:"totalGuests"`
		} `json:"stats"`
		RecentVisitors []struct {
			Name string `json:"name"`
		} `json:"recentVisitors"`
	}
	decodeData(t, resp, &dash)
	assert.Equal(t, 9, dash.Stats.TotalGuests)
	require.Len(t, dash.RecentVisitors, 1)
	assert.Equal(t, "Ammi", dash.RecentVisitors[0].Name)

	resp = do(t, srv, http.MethodPost, "/session/logout", token, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = do(t, srv, http.MethodGet, "/dashboard", token, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_SuggestionsKeepTheirAuthor(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/session/create", "", `{"coupleName":"Ali & Sara","userName":"Ammi"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var ammi controllers.SessionResponse
	decodeData(t, resp, &ammi)

	resp = do(t, srv, http.MethodPost, "/guests", ammi.Token, `{"id":"g1","fullName":"Chacha","menCount":1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, srv, http.MethodPost, "/session/join", "", `{"weddingId":"`+sheets.DemoEventID+`","userName":"Abbu"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var abbu controllers.SessionResponse
	decodeData(t, resp, &abbu)

	for _, tc := range []struct{ token, id, want string }{
		{ammi.Token, "s1", "Ammi"},
		{abbu.Token, "s2", "Abbu"},
	} {
		resp = do(t, srv, http.MethodPost, "/guests", tc.token, `{"id":"`+tc.id+`","fullName":"Neighbour","menCount":1,"suggest":true}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var g struct {
			AddedBy string `json:"addedBy"`
		}
		decodeData(t, resp, &g)
		assert.Equal(t, tc.want, g.AddedBy)
	}

	resp = do(t, srv, http.MethodGet, "/guests/g1", abbu.Token, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_MetricsAndPreflight(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/session/join", "", `{"weddingId":"W1000","userName":"Khala"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, srv, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `weddingplanner_sessions_total{event="join"} 1`)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/guests", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	preflight, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer preflight.Body.Close()
	assert.Equal(t, http.StatusNoContent, preflight.StatusCode)
	assert.Equal(t, "http://localhost:5173", preflight.Header.Get("Access-Control-Allow-Origin"))
}
