package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestLimiterBlocksAfterMax(t *testing.T) {
	app := fiber.New()
	app.Get("/x", newLimiter(limiterConfig{max: 2, window: time.Minute, message: "slow down"}), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("Request %d: expected 200, got %d", i, resp.StatusCode)
		}
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Errorf("Expected 429, got %d", resp.StatusCode)
	}
}

func TestMetricsMiddlewareCounts(t *testing.T) {
	app := fiber.New()
	app.Use(MetricsMiddleware())
	app.Get("/api/routes/search", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Post("/api/routes/enrich", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/api/routes/bad", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusBadRequest) })

	searches0, enrich0 := Counts()

	requests := []struct{ method, path string }{
		{"GET", "/api/routes/search?origin=A&destination=B"},
		{"GET", "/api/routes/search?origin=A&destination=B&enrich=true"},
		{"POST", "/api/routes/enrich"},
		{"GET", "/api/routes/bad"},
	}
	for _, r := range requests {
		if _, err := app.Test(httptest.NewRequest(r.method, r.path, strings.NewReader(""))); err != nil {
			t.Fatal(err)
		}
	}

	searches, enrichments := Counts()
	if searches-searches0 != 2 {
		t.Errorf("Expected 2 searches, got %d", searches-searches0)
	}
	if enrichments-enrich0 != 2 {
		t.Errorf("Expected 2 enrichments, got %d", enrichments-enrich0)
	}
}

func TestLogSourceAndLevel(t *testing.T) {
	sources := map[string]string{
		"/api/routes/enrich":    "enrichment",
		"/api/stats/enrichment": "enrichment",
		"/api/routes/search":    "routing",
		"/api/health":           "backend",
	}
	for path, want := range sources {
		if got := logSource(path); got != want {
			t.Errorf("logSource(%q) = %q, want %q", path, got, want)
		}
	}

	levels := map[int]string{200: "info", 404: "warn", 429: "warn", 503: "error"}
	for status, want := range levels {
		if got := logLevel(status); got != want {
			t.Errorf("logLevel(%d) = %q, want %q", status, got, want)
		}
	}
}

func TestWhenEnrichingOnlyLimitsEnrichedSearches(t *testing.T) {
	limited := 0
	limit := func(c *fiber.Ctx) error {
		limited++
		return c.Next()
	}

	app := fiber.New()
	app.Get("/search", WhenEnriching(limit), func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Post("/search", WhenEnriching(limit), func(c *fiber.Ctx) error { return c.SendString("ok") })

	tests := []struct {
		name        string
		method      string
		target      string
		body        string
		wantLimited bool
	}{
		{"query flag", "GET", "/search?enrich=true", "", true},
		{"query off", "GET", "/search?enrich=false", "", false},
		{"no flag", "GET", "/search", "", false},
		{"body flag", "POST", "/search", `{"origin":"Arusha","destination":"Moshi","enrich":true}`, true},
		{"body off", "POST", "/search", `{"origin":"Arusha","destination":"Moshi"}`, false},
		{"invalid body", "POST", "/search", `{"enrich":`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := limited
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			if _, err := app.Test(req); err != nil {
				t.Fatal(err)
			}
			if got := limited > before; got != tt.wantLimited {
				t.Errorf("Expected limited=%t, got %t", tt.wantLimited, got)
			}
		})
	}
}
