package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"travelplanner/internal/ai"
	"travelplanner/internal/ai/aitest"
	"travelplanner/internal/http/middleware"
	"travelplanner/internal/modules/assistant"
	"travelplanner/internal/modules/itinerary"
	"travelplanner/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	stub   *aitest.Stub
	router http.Handler
}

func newTestEnv(t *testing.T, stub *aitest.Stub, limiter *middleware.RateLimiter) testEnv {
	t.Helper()
	log := zaptest.NewLogger(t)
	planner := service.NewTripPlanner(itinerary.NewService(stub, "well-organized"), log)
	srv := NewServer(ServerDeps{
		Planner:   planner,
		Assistant: assistant.NewService(stub),
		Log:       log,
		Theme:     "classic",
		AITimeout: time.Second,
		Limiter:   limiter,
	})
	return testEnv{stub: stub, router: srv.Routes()}
}

func doJSON(h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func doForm(h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestPlanAPI_Success(t *testing.T) {
	env := newTestEnv(t, &aitest.Stub{Reply: "Day 1: Louvre\nDay 2: Montmartre"}, nil)

	w := doJSON(env.router, http.MethodPost, "/api/itineraries", map[string]any{
		"city": "Paris", "interests": "Museums, Food", "days": 5, "budget": "Mid-Range",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, "Paris", body["city"])
	assert.Equal(t, []any{"Museums", "Food"}, body["interests"])
	assert.EqualValues(t, 5, body["days"])
	assert.Equal(t, "Mid-Range", body["budget"])
	assert.EqualValues(t, 800, body["total_cost"])
	assert.Equal(t, "USD", body["currency"])
	assert.Equal(t, "Day 1: Louvre\nDay 2: Montmartre", body["itinerary"])
	assert.Contains(t, body["display"], "💰 **Estimated Cost:** $800")

	prompts := env.stub.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0].System, "Create a 5-day itinerary for Paris based on Museums, Food with a Mid-Range budget")
}

func TestPlanAPI_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{name: "unknown tier", body: map[string]any{"city": "Paris", "days": 3, "budget": "Premium"}},
		{name: "zero days", body: map[string]any{"city": "Paris", "days": 0, "budget": "Budget"}},
		{name: "too many days", body: map[string]any{"city": "Paris", "days": 15, "budget": "Budget"}},
		{name: "missing city", body: map[string]any{"days": 3, "budget": "Budget"}},
		{name: "days not a number", body: map[string]any{"city": "Paris", "days": "five", "budget": "Budget"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, &aitest.Stub{Reply: "unused"}, nil)
			w := doJSON(env.router, http.MethodPost, "/api/itineraries", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decode(t, w)["error"])
			assert.Zero(t, env.stub.Calls(), "no provider call on invalid input")
		})
	}
}

func TestPlanAPI_ProviderErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: ai.ErrUnauthorized, want: http.StatusBadGateway},
		{err: ai.ErrTimeout, want: http.StatusGatewayTimeout},
		{err: ai.ErrProvider, want: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			env := newTestEnv(t, &aitest.Stub{Err: fmt.Errorf("%w: simulated", tt.err)}, nil)
			w := doJSON(env.router, http.MethodPost, "/api/itineraries", map[string]any{
				"city": "Rome", "days": 2, "budget": "Luxury",
			})
			assert.Equal(t, tt.want, w.Code)
			body := decode(t, w)
			assert.NotEmpty(t, body["error"])
			assert.NotContains(t, body, "itinerary")
		})
	}
}

func TestEstimateAPI(t *testing.T) {
	env := newTestEnv(t, &aitest.Stub{}, nil)

	w := doJSON(env.router, http.MethodPost, "/api/estimates", map[string]any{"days": 5, "budget": "mid-range"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Mid-Range", body["budget"])
	assert.EqualValues(t, 160, body["per_day"])
	assert.EqualValues(t, 800, body["total"])
	assert.Equal(t, map[string]any{
		"Hotel": 400.0, "Food": 125.0, "Transport": 75.0, "Attractions": 125.0, "Misc": 75.0,
	}, body["breakdown"])
	assert.Zero(t, env.stub.Calls())

	w = doJSON(env.router, http.MethodPost, "/api/estimates", map[string]any{"days": 0, "budget": "Budget"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(env.router, http.MethodPost, "/api/estimates", map[string]any{"days": 2, "budget": "Invalid budget category"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBudgetTiersAPI(t *testing.T) {
	env := newTestEnv(t, &aitest.Stub{}, nil)
	w := doJSON(env.router, http.MethodGet, "/api/budget-tiers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Currency string `json:"currency"`
		Tiers    []struct {
			Name   string `json:"name"`
			PerDay int64  `json:"per_day"`
		} `json:"tiers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "USD", body.Currency)
	require.Len(t, body.Tiers, 3)
	assert.Equal(t, "Budget", body.Tiers[0].Name)
	assert.EqualValues(t, 60, body.Tiers[0].PerDay)
	assert.EqualValues(t, 160, body.Tiers[1].PerDay)
	assert.EqualValues(t, 400, body.Tiers[2].PerDay)
}

func TestAskAPI(t *testing.T) {
	env := newTestEnv(t, &aitest.Stub{Reply: "Kyoto and Tokyo."}, nil)

	w := doJSON(env.router, http.MethodPost, "/api/ask", map[string]any{"query": "Best places in Japan?"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Kyoto and Tokyo.", decode(t, w)["answer"])

	prompts := env.stub.Prompts()
	require.Len(t, prompts, 1)
	assert.Empty(t, prompts[0].System)
	require.Len(t, prompts[0].Messages, 1)
	assert.Equal(t, "Best places in Japan?", prompts[0].Messages[0].Content)

	w = doJSON(env.router, http.MethodPost, "/api/ask", map[string]any{"query": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1, env.stub.Calls())
}

func TestPages(t *testing.T) {
	env := newTestEnv(t, &aitest.Stub{Reply: "Day 1: Colosseum"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `class="theme-classic"`)
	assert.Contains(t, w.Body.String(), `<option value="Mid-Range" selected>`)

	w = doForm(env.router, "/plan", url.Values{
		"city": {"Rome"}, "interests": {"History"}, "days": {"2"}, "budget": {"Budget"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Day 1: Colosseum")
	assert.Contains(t, w.Body.String(), "Estimated cost $120")

	w = doForm(env.router, "/plan", url.Values{"city": {"Rome"}, "days": {"abc"}, "budget": {"Budget"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `class="error"`)

	w = doForm(env.router, "/ask", url.Values{"query": {"Is Rome walkable?"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AI Travel Assistant:")
}

func TestPages_ProviderFailureShowsError(t *testing.T) {
	env := newTestEnv(t, &aitest.Stub{Err: fmt.Errorf("%w: boom", ai.ErrProvider)}, nil)
	w := doForm(env.router, "/plan", url.Values{"city": {"Oslo"}, "days": {"3"}, "budget": {"Luxury"}})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "the AI provider request failed")
	assert.NotContains(t, w.Body.String(), "Itinerary Ready")
}

func TestRateLimitedRoutes(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := middleware.NewRateLimiter(client, 1, time.Minute, zaptest.NewLogger(t))
	env := newTestEnv(t, &aitest.Stub{Reply: "ok"}, limiter)

	assert.Equal(t, http.StatusOK, doJSON(env.router, http.MethodPost, "/api/ask", map[string]any{"query": "q"}).Code)
	assert.Equal(t, http.StatusTooManyRequests, doJSON(env.router, http.MethodPost, "/api/ask", map[string]any{"query": "q"}).Code)
	assert.Equal(t, 1, env.stub.Calls())

	// Estimates make no provider call and are not limited.
	for i := 0; i < 3; i++ {
		w := doJSON(env.router, http.MethodPost, "/api/estimates", map[string]any{"days": 1, "budget": "Budget"})
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	env := newTestEnv(t, &aitest.Stub{}, nil)

	w := doJSON(env.router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = doJSON(env.router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "travel_http_requests_total")

	w = doJSON(env.router, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
