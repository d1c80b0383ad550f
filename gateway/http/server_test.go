package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"guildhall/adapter/session"
	"guildhall/core/types"
)

func newTestServer(t *testing.T, limit RateLimit) *httptest.Server {
	t.Helper()
	cfg := Config{Session: session.New(42)}
	if limit.RatePerSecond > 0 {
		cfg.RateLimiter = NewRateLimiter()
		cfg.CommandRate = limit
	}
	srv := httptest.NewServer(NewRouter(cfg))
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, RateLimit{})
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStateReturnsCanonicalJSON(t *testing.T) {
	srv := newTestServer(t, RateLimit{})
	resp, err := http.Get(srv.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded struct {
		Meta struct {
			SaveVersion int    `json:"save_version"`
			Seed        uint32 `json:"seed"`
		} `json:"meta"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	require.Equal(t, 1, decoded.Meta.SaveVersion)
	require.Equal(t, uint32(42), decoded.Meta.Seed)
}

func TestPostCommandAppliesAndReturnsEvents(t *testing.T) {
	srv := newTestServer(t, RateLimit{})

	body := `{"kind":"AdvanceDay","cmd_id":1}`
	resp, err := http.Post(srv.URL+"/commands", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded struct {
		RequestID string              `json:"request_id"`
		Events    []types.EventRecord `json:"events"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	require.NotEmpty(t, decoded.RequestID)
	require.NotEmpty(t, decoded.Events)
	require.Equal(t, "day.started", decoded.Events[0].Type)
	require.Equal(t, "day.ended", decoded.Events[len(decoded.Events)-1].Type)
}

func TestPostCommandRejectsUnknownKind(t *testing.T) {
	srv := newTestServer(t, RateLimit{})
	resp, err := http.Post(srv.URL+"/commands", "application/json", strings.NewReader(`{"kind":"Nope","cmd_id":1}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPostCommandRejectsMalformedBody(t *testing.T) {
	srv := newTestServer(t, RateLimit{})
	resp, err := http.Post(srv.URL+"/commands", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEventsSinceParamValidation(t *testing.T) {
	srv := newTestServer(t, RateLimit{})
	resp, err := http.Get(srv.URL + "/events?since=notanumber")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCommandRouteIsRateLimited(t *testing.T) {
	srv := newTestServer(t, RateLimit{RatePerSecond: 0.0001, Burst: 1})

	first, err := http.Post(srv.URL+"/commands", "application/json", strings.NewReader(`{"kind":"AdvanceDay","cmd_id":1}`))
	require.NoError(t, err)
	first.Body.Close()
	require.Equal(t, http.StatusOK, first.StatusCode)

	second, err := http.Post(srv.URL+"/commands", "application/json", strings.NewReader(`{"kind":"AdvanceDay","cmd_id":2}`))
	require.NoError(t, err)
	second.Body.Close()
	require.Equal(t, http.StatusTooManyRequests, second.StatusCode)

	// Read routes sit outside the limited group.
	health, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	health.Body.Close()
	require.Equal(t, http.StatusOK, health.StatusCode)
}
