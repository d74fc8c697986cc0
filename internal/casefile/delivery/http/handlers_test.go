package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"school-case-management/internal/casefile/repository"
	caseUC "school-case-management/internal/casefile/usecase"
	"school-case-management/internal/model"
	"school-case-management/pkg/datemath"
	"school-case-management/pkg/log"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type fakeRepo struct {
	cases []model.Case
	err   error
}

func (f *fakeRepo) ListCases(ctx context.Context, opt repository.ListCasesOptions) ([]model.Case, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cases, nil
}

func (f *fakeRepo) GetCase(ctx context.Context, id string) (model.Case, error) {
	if f.err != nil {
		return model.Case{}, f.err
	}
	for _, c := range f.cases {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Case{}, repository.ErrNotFound
}

func testCases() []model.Case {
	due := time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC)
	return []model.Case{
		{
			ID:          "c-1",
			Folio:       "F-001",
			StudentName: "Ana Pérez",
			Status:      model.CaseStatusOpen,
			CreatedAt:   time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC),
			Steps:       []model.ProtocolStep{{ID: "s-1", Name: "Entrevista", Order: 1, EstimatedTime: "10 días"}},
		},
		{
			ID:        "c-2",
			Folio:     "F-002",
			Status:    model.CaseStatusInProgress,
			CreatedAt: time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC),
			Steps: []model.ProtocolStep{
				{ID: "s-1", Name: "Notificación", Order: 1, Deadline: &due},
				{ID: "s-2", Name: "Cierre", Order: 2, EstimatedTime: "sin plazo"},
			},
		},
		{
			ID:        "c-3",
			Status:    model.CaseStatusClosed,
			CreatedAt: time.Date(2024, 5, 3, 8, 0, 0, 0, time.UTC),
		},
	}
}

func newTestRouter(t *testing.T, repo repository.CaseRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	now := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	parser, err := datemath.NewParser("UTC", datemath.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), caseUC.New(log.NewNop(), repo, parser)))
	return r
}

func doGet(t *testing.T, r *gin.Engine, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v (body=%s)", err, w.Body.String())
	}
	return w, env
}

func TestListHandler(t *testing.T) {
	r := newTestRouter(t, &fakeRepo{cases: testCases()})

	t.Run("Sorted by urgency", func(t *testing.T) {
		w, env := doGet(t, r, "/api/v1/cases")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}

		var data listResp
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("unmarshal data: %v", err)
		}
		if data.Total != 2 || len(data.Cases) != 2 {
			t.Fatalf("expected 2 open cases, got total=%d len=%d", data.Total, len(data.Cases))
		}
		if data.Cases[0].ID != "c-2" || data.Cases[0].Urgency != "critical" || data.Cases[0].Color != "red" {
			t.Errorf("unexpected first case %+v", data.Cases[0])
		}
		if data.Cases[1].ID != "c-1" || data.Cases[1].Urgency != "on_time" {
			t.Errorf("unexpected second case %+v", data.Cases[1])
		}
		if data.Cases[0].Steps != nil {
			t.Error("list should not embed steps")
		}
	})

	t.Run("Urgency filter", func(t *testing.T) {
		w, env := doGet(t, r, "/api/v1/cases?urgency=on_time")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var data listResp
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("unmarshal data: %v", err)
		}
		if data.Total != 1 || data.Cases[0].ID != "c-1" {
			t.Errorf("unexpected filtered list %+v", data)
		}
	})

	t.Run("Include closed", func(t *testing.T) {
		_, env := doGet(t, r, "/api/v1/cases?include_closed=true")
		var data listResp
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("unmarshal data: %v", err)
		}
		if data.Total != 3 {
			t.Errorf("expected 3 cases, got %d", data.Total)
		}
	})

	t.Run("Invalid urgency", func(t *testing.T) {
		w, _ := doGet(t, r, "/api/v1/cases?urgency=purple")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Invalid status", func(t *testing.T) {
		w, _ := doGet(t, r, "/api/v1/cases?status=archived")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestListHandler_BackendDown(t *testing.T) {
	r := newTestRouter(t, &fakeRepo{err: errors.New("connection refused")})

	w, env := doGet(t, r, "/api/v1/cases")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	if env.ErrorCode != errCodeBackendUnavailable {
		t.Errorf("expected error code %d, got %d", errCodeBackendUnavailable, env.ErrorCode)
	}
}

func TestDetailHandler(t *testing.T) {
	r := newTestRouter(t, &fakeRepo{cases: testCases()})

	t.Run("OK", func(t *testing.T) {
		w, env := doGet(t, r, "/api/v1/cases/c-2")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}

		var data struct {
			Case struct {
				ID    string           `json:"id"`
				Steps []map[string]any `json:"steps"`
			} `json:"case"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("unmarshal data: %v", err)
		}
		if len(data.Case.Steps) != 2 {
			t.Fatalf("expected 2 steps, got %d", len(data.Case.Steps))
		}
		first := data.Case.Steps[0]
		if first["deadline_date"] != "2024-06-11" || first["deadline_source"] != "explicit" {
			t.Errorf("unexpected first step %v", first)
		}
		second := data.Case.Steps[1]
		if second["urgency"] != "none" || second["deadline"] != nil || second["days_remaining"] != nil {
			t.Errorf("unexpected second step %v", second)
		}
	})

	t.Run("Not found", func(t *testing.T) {
		w, env := doGet(t, r, "/api/v1/cases/missing")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if env.ErrorCode != errCodeCaseNotFound {
			t.Errorf("expected error code %d, got %d", errCodeCaseNotFound, env.ErrorCode)
		}
	})
}

func TestSummaryHandler(t *testing.T) {
	r := newTestRouter(t, &fakeRepo{cases: testCases()})

	w, env := doGet(t, r, "/api/v1/cases/summary")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var data map[string]any
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	want := map[string]float64{"total": 2, "critical": 1, "warning": 0, "on_time": 1, "none": 0}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("%s: expected %v, got %v", k, v, data[k])
		}
	}
	if data["generated_at"] != "2024-06-10 10:00:00" {
		t.Errorf("unexpected generated_at %v", data["generated_at"])
	}
}
