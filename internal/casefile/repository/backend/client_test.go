package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"school-case-management/internal/casefile/repository"
	"school-case-management/internal/casefile/repository/backend"
	"school-case-management/pkg/log"
)

func strPtr(s string) *string { return &s }

func newBackendServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/cases", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("status") == "error" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
			return
		}
		cases := []backend.CaseDTO{
			{
				ID:        "c-1",
				Folio:     "2024-001",
				Title:     "Conflicto en recreo",
				Status:    "OPEN",
				CreatedAt: "2024-06-03T09:00:00Z",
				ProtocolSteps: []backend.ProtocolStepDTO{
					{ID: "s-2", Name: "Entrevista apoderado", Order: 2, EstimatedTime: "5 días hábiles"},
					{ID: "s-1", Name: "Registro", Order: 1, Deadline: strPtr("2024-06-04T18:00:00Z"), Completed: true},
				},
			},
			{ID: "c-bad", CreatedAt: "yesterday-ish"},
		}
		json.NewEncoder(w).Encode(map[string]any{"cases": cases})
	})

	mux.HandleFunc("/api/cases/c-1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(backend.CaseDTO{
			ID:        "c-1",
			Status:    "in_progress",
			CreatedAt: "2024-06-03 09:00:00",
			ProtocolSteps: []backend.ProtocolStepDTO{
				{ID: "s-1", Order: 1, Deadline: strPtr("")},
			},
		})
	})

	mux.HandleFunc("/api/cases/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	return httptest.NewServer(mux)
}

func TestBackendRepository(t *testing.T) {
	ts := newBackendServer(t)
	defer ts.Close()

	repo := backend.New(backend.NewClient(ts.URL, "secret", 5*time.Second), log.NewNop())
	ctx := context.Background()

	t.Run("ListCases skips malformed records", func(t *testing.T) {
		cases, err := repo.ListCases(ctx, repository.ListCasesOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cases) != 1 {
			t.Fatalf("expected 1 case, got %d", len(cases))
		}
		c := cases[0]
		if c.Status != "open" {
			t.Errorf("expected status to be lower-cased, got %q", c.Status)
		}
		if !c.CreatedAt.Equal(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected created_at %v", c.CreatedAt)
		}
		if len(c.Steps) != 2 || c.Steps[0].ID != "s-1" {
			t.Fatalf("expected steps ordered by Order, got %+v", c.Steps)
		}
		if c.Steps[0].Deadline == nil || !c.Steps[0].Completed {
			t.Errorf("expected explicit deadline and completed flag on first step")
		}
		if c.Steps[1].Deadline != nil || c.Steps[1].EstimatedTime != "5 días hábiles" {
			t.Errorf("unexpected second step %+v", c.Steps[1])
		}
	})

	t.Run("ListCases backend error", func(t *testing.T) {
		_, err := repo.ListCases(ctx, repository.ListCasesOptions{Status: "error"})
		if !errors.Is(err, repository.ErrFailedToList) {
			t.Errorf("expected ErrFailedToList, got %v", err)
		}
	})

	t.Run("GetCase", func(t *testing.T) {
		c, err := repo.GetCase(ctx, "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Status != "in_progress" {
			t.Errorf("unexpected status %q", c.Status)
		}
		if c.Steps[0].Deadline != nil {
			t.Errorf("blank deadline should be treated as absent")
		}
	})

	t.Run("GetCase not found", func(t *testing.T) {
		_, err := repo.GetCase(ctx, "missing")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestBackendClient_Unauthorized(t *testing.T) {
	ts := newBackendServer(t)
	defer ts.Close()

	client := backend.NewClient(ts.URL, "wrong", time.Second)
	if _, err := client.ListCases(context.Background(), ""); err == nil {
		t.Error("expected error for rejected token")
	}
}

func TestBackendClient_Breaker(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/api/cases/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := backend.NewClient(ts.URL, "", time.Second, backend.WithBreaker(2, time.Minute))
	ctx := context.Background()

	t.Run("Not found does not trip", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			if _, err := client.GetCase(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		}
	})

	t.Run("Cancelled requests do not trip", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		for i := 0; i < 5; i++ {
			if _, err := client.ListCases(cancelled, ""); !errors.Is(err, context.Canceled) {
				t.Fatalf("expected context.Canceled, got %v", err)
			}
		}
		if client.State() != gobreaker.StateClosed {
			t.Fatalf("expected closed breaker, got %s", client.State())
		}

		before := hits.Load()
		if _, err := client.GetCase(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if hits.Load() != before+1 {
			t.Error("expected the call to reach the backend")
		}
	})

	t.Run("Opens after consecutive failures", func(t *testing.T) {
		if err := client.Ready(); err != nil {
			t.Fatalf("expected ready before failures, got %v", err)
		}
		for i := 0; i < 2; i++ {
			if _, err := client.ListCases(ctx, ""); err == nil {
				t.Fatal("expected backend error")
			}
		}

		before := hits.Load()
		_, err := client.ListCases(ctx, "")
		if !errors.Is(err, gobreaker.ErrOpenState) {
			t.Errorf("expected ErrOpenState, got %v", err)
		}
		if hits.Load() != before {
			t.Errorf("open breaker should not reach the backend")
		}
		if err := client.Ready(); !errors.Is(err, gobreaker.ErrOpenState) {
			t.Errorf("expected Ready to report ErrOpenState, got %v", err)
		}
	})
}
