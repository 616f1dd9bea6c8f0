package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/rajasatyajit/ReputationCheck/internal/checker"
	"github.com/rajasatyajit/ReputationCheck/internal/logger"
	"github.com/rajasatyajit/ReputationCheck/internal/models"
)

func TestMain(m *testing.M) {
	logger.Init("error", "text")
	os.Exit(m.Run())
}

type stubNews struct{}

func (stubNews) Run(ctx context.Context, name string) ([]models.NewsFinding, models.NewsSummary, models.SourceStatus) {
	return []models.NewsFinding{
			{Title: "Subject cited in industry report", Sentiment: models.SentimentNeutral},
		},
		models.NewsSummary{RealCount: 1, Average: 0},
		models.SourceStatus{Name: "NewsAPI Search", Count: 1, Status: models.StatusCompleted}
}

type stubSocial struct{}

func (stubSocial) Run(ctx context.Context, name string) (models.SocialFinding, models.SourceStatus) {
	return models.SocialFinding{
			Platform:       "Reddit Philippines",
			Mentions:       3,
			Sentiment:      models.SentimentMixed,
			SampleComments: []models.SampleComment{},
		},
		models.SourceStatus{Name: "Reddit Sentiment Scan", Count: 3, Status: models.StatusCompleted}
}

func newTestRouter() *chi.Mux {
	c := checker.New(stubNews{}, stubSocial{}, nil, nil)
	handler := NewHandler(c, "test", "now", "abc123")

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestBackgroundCheckHandler(t *testing.T) {
	router := newTestRouter()

	t.Run("Successful check", func(t *testing.T) {
		body := bytes.NewBufferString(`{"name": "Juan Dela Cruz"}`)
		req := httptest.NewRequest("POST", "/api/background-check", body)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var result models.CheckResult
		if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if result.Subject != "Juan Dela Cruz" {
			t.Errorf("Expected subject echoed back, got %q", result.Subject)
		}
		if result.ID == "" {
			t.Error("Expected a check ID")
		}
		if len(result.News) == 0 {
			t.Error("Expected news findings")
		}
		if len(result.Social) != 1 {
			t.Errorf("Expected 1 social finding, got %d", len(result.Social))
		}
		if result.Risk.Level == "" {
			t.Error("Expected a risk level")
		}
		if result.Risk.Recommendation == "" {
			t.Error("Expected a recommendation")
		}
	})

	t.Run("Missing name", func(t *testing.T) {
		body := bytes.NewBufferString(`{}`)
		req := httptest.NewRequest("POST", "/api/background-check", body)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assertNameRequired(t, rec)
	})

	t.Run("Blank name", func(t *testing.T) {
		body := bytes.NewBufferString(`{"name": "   "}`)
		req := httptest.NewRequest("POST", "/api/background-check", body)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assertNameRequired(t, rec)
	})

	t.Run("Malformed body", func(t *testing.T) {
		body := bytes.NewBufferString(`{not json`)
		req := httptest.NewRequest("POST", "/api/background-check", body)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assertNameRequired(t, rec)
	})
}

func assertNameRequired(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	if resp["error"] != "Name is required" {
		t.Errorf("Expected fixed error message, got %q", resp["error"])
	}
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/health", "/health/ready", "/health/live"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("Expected 200, got %d", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected JSON content type, got %q", ct)
			}
		})
	}
}

func TestVersionEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/version", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp["version"] != "test" {
		t.Errorf("Expected version test, got %q", resp["version"])
	}
	if resp["git_commit"] != "abc123" {
		t.Errorf("Expected git commit abc123, got %q", resp["git_commit"])
	}
}
