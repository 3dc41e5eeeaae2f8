// README: Smoke cases for the planner API; covers estimates, validation, LLM routes, the limiter and throughput.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
	StatusSkip = "SKIP"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	redis *redis.Client
}

type Result struct {
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

// check inspects a decoded JSON body; a non-empty return is the failure note.
type check func(body map[string]any) string

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 45 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
		defer r.redis.Close()
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))
	for _, tc := range tests {
		res := tc.Run(ctx, r)
		results = append(results, res)
		fmt.Printf("%-5s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency.Round(time.Millisecond))
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}
	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name: "Env: Redis connect",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: StatusSkip, Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: StatusFail, Note: err.Error()}
				}
				return Result{Status: StatusPass}
			},
		},
		httpCase("API: health", http.MethodGet, base+"/health", nil, http.StatusOK, wantField("status", "ok")),
		httpCase("API: budget tiers", http.MethodGet, base+"/api/budget-tiers", nil, http.StatusOK, wantLen("tiers", 3)),

		httpCase("Estimate: Paris 5 days Mid-Range = 800", http.MethodPost, base+"/api/estimates",
			map[string]any{"days": 5, "budget": "Mid-Range"}, http.StatusOK, wantNumber("total", 800)),
		httpCase("Estimate: Luxury 14 days = 5600", http.MethodPost, base+"/api/estimates",
			map[string]any{"days": 14, "budget": "Luxury"}, http.StatusOK, wantNumber("total", 5600)),
		httpCase("Estimate: unknown tier -> 400", http.MethodPost, base+"/api/estimates",
			map[string]any{"days": 3, "budget": "Invalid budget category"}, http.StatusBadRequest, nil),
		httpCase("Estimate: zero days -> 400", http.MethodPost, base+"/api/estimates",
			map[string]any{"days": 0, "budget": "Budget"}, http.StatusBadRequest, nil),

		httpCase("Itinerary: 15 days -> 400", http.MethodPost, base+"/api/itineraries",
			map[string]any{"city": "Paris", "days": 15, "budget": "Budget"}, http.StatusBadRequest, nil),
		httpCase("Itinerary: missing city -> 400", http.MethodPost, base+"/api/itineraries",
			map[string]any{"days": 3, "budget": "Budget"}, http.StatusBadRequest, nil),
		httpCase("Ask: empty query -> 400", http.MethodPost, base+"/api/ask",
			map[string]any{"query": "  "}, http.StatusBadRequest, nil),

		liveCase(httpCase("Itinerary: Paris 5 days (live)", http.MethodPost, base+"/api/itineraries",
			map[string]any{"city": "Paris", "interests": "Museums, Food", "days": 5, "budget": "Mid-Range"},
			http.StatusOK, wantNumber("total_cost", 800))),
		liveCase(httpCase("Ask: free-form question (live)", http.MethodPost, base+"/api/ask",
			map[string]any{"query": "What are the best places to visit in Japan?"}, http.StatusOK, wantNonEmpty("answer"))),

		{
			Name: "RateLimit: burst eventually -> 429",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: StatusSkip, Note: "redis not configured"}
				}
				return burstUntilLimited(ctx, r, base+"/api/ask")
			},
		},
		{
			Name: "Perf: estimate throughput",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/api/estimates", map[string]any{"days": 7, "budget": "Budget"})
			},
		},
	}
}

func liveCase(tc TestCase) TestCase {
	run := tc.Run
	tc.Run = func(ctx context.Context, r *Runner) Result {
		if !r.cfg.Live {
			return Result{Status: StatusSkip, Note: "live=false"}
		}
		return run(ctx, r)
	}
	return tc
}

func httpCase(name, method, url string, body any, wantStatus int, verify check) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			start := time.Now()
			status, decoded, err := r.do(ctx, method, url, body)
			latency := time.Since(start)
			if err != nil {
				return Result{Status: StatusFail, Latency: latency, Note: err.Error()}
			}
			if status != wantStatus {
				return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("status=%d want=%d", status, wantStatus)}
			}
			if verify != nil {
				if note := verify(decoded); note != "" {
					return Result{Status: StatusFail, Latency: latency, Note: note}
				}
			}
			return Result{Status: StatusPass, Latency: latency, Note: fmt.Sprintf("status=%d", status)}
		},
	}
}

func (r *Runner) do(ctx context.Context, method, url string, body any) (int, map[string]any, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded, nil
}

func wantField(key, want string) check {
	return func(body map[string]any) string {
		if got, _ := body[key].(string); got != want {
			return fmt.Sprintf("%s=%q want %q", key, got, want)
		}
		return ""
	}
}

func wantNonEmpty(key string) check {
	return func(body map[string]any) string {
		if got, _ := body[key].(string); got == "" {
			return key + " is empty"
		}
		return ""
	}
}

func wantNumber(key string, want float64) check {
	return func(body map[string]any) string {
		if got, _ := body[key].(float64); got != want {
			return fmt.Sprintf("%s=%v want %v", key, body[key], want)
		}
		return ""
	}
}

func wantLen(key string, n int) check {
	return func(body map[string]any) string {
		if got, _ := body[key].([]any); len(got) != n {
			return fmt.Sprintf("len(%s)=%d want %d", key, len(got), n)
		}
		return ""
	}
}

// burstUntilLimited sends empty questions, which the limiter counts before validation rejects them.
func burstUntilLimited(ctx context.Context, r *Runner, url string) Result {
	start := time.Now()
	for i := 1; i <= 500; i++ {
		status, _, err := r.do(ctx, http.MethodPost, url, map[string]any{"query": ""})
		if err != nil {
			return Result{Status: StatusFail, Note: err.Error()}
		}
		if status == http.StatusTooManyRequests {
			return Result{Status: StatusPass, Latency: time.Since(start), Note: fmt.Sprintf("limited after %d requests", i)}
		}
	}
	return Result{Status: StatusFail, Note: "no 429 after 500 requests"}
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	end := time.Now().Add(r.cfg.Duration)
	var (
		mu       sync.Mutex
		count    int64
		errCount int64
		wg       sync.WaitGroup
	)

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				status, _, err := r.do(ctx, http.MethodPost, url, payload)
				mu.Lock()
				if err != nil || status != http.StatusOK {
					errCount++
				} else {
					count++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: StatusFail, Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: StatusPass, Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount)}
}
