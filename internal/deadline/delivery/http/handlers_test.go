package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	deadlineUC "school-case-management/internal/deadline/usecase"
	"school-case-management/pkg/datemath"
	"school-case-management/pkg/log"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	now := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	parser, err := datemath.NewParser("UTC", datemath.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), deadlineUC.New(log.NewNop(), parser)))
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string, query url.Values) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path+"?"+query.Encode(), nil)
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v (body=%s)", err, w.Body.String())
	}
	return w, env
}

func TestComputeHandler(t *testing.T) {
	r := newTestRouter(t)

	t.Run("OK", func(t *testing.T) {
		w, env := doGet(t, r, "/api/v1/deadlines/compute", url.Values{
			"duration": {"3 días hábiles"},
			"start":    {"2024-06-07"},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}

		var raw map[string]any
		if err := json.Unmarshal(env.Data, &raw); err != nil {
			t.Fatalf("unmarshal data: %v", err)
		}
		if raw["deadline_date"] != "2024-06-12" {
			t.Errorf("unexpected deadline_date %v", raw["deadline_date"])
		}
		if raw["urgency"] != "critical" || raw["color"] != "red" {
			t.Errorf("unexpected urgency/color %v/%v", raw["urgency"], raw["color"])
		}
	})

	t.Run("Missing duration", func(t *testing.T) {
		w, _ := doGet(t, r, "/api/v1/deadlines/compute", url.Values{})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Unparsable duration", func(t *testing.T) {
		w, env := doGet(t, r, "/api/v1/deadlines/compute", url.Values{"duration": {"pronto"}})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if env.ErrorCode != errCodeUnparsableDuration {
			t.Errorf("expected error code %d, got %d", errCodeUnparsableDuration, env.ErrorCode)
		}
	})

	t.Run("Invalid start", func(t *testing.T) {
		_, env := doGet(t, r, "/api/v1/deadlines/compute", url.Values{"duration": {"5 días"}, "start": {"whenever"}})
		if env.ErrorCode != errCodeInvalidStart {
			t.Errorf("expected error code %d, got %d", errCodeInvalidStart, env.ErrorCode)
		}
	})
}

func TestClassifyHandler(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name     string
		deadline string
		wantCode int
		urgency  string
	}{
		{name: "None", deadline: "", wantCode: http.StatusOK, urgency: "none"},
		{name: "Warning", deadline: "2024-06-15", wantCode: http.StatusOK, urgency: "warning"},
		{name: "On time", deadline: "2024-06-16", wantCode: http.StatusOK, urgency: "on_time"},
		{name: "Invalid", deadline: "tomorrowish", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doGet(t, r, "/api/v1/deadlines/classify", url.Values{"deadline": {tt.deadline}})
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d (%s)", tt.wantCode, w.Code, w.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				if env.ErrorCode != errCodeInvalidDeadline {
					t.Errorf("expected error code %d, got %d", errCodeInvalidDeadline, env.ErrorCode)
				}
				return
			}
			var data classifyResp
			if err := json.Unmarshal(env.Data, &data); err != nil {
				t.Fatalf("unmarshal data: %v", err)
			}
			if data.Urgency != tt.urgency {
				t.Errorf("urgency = %s, want %s", data.Urgency, tt.urgency)
			}
			if tt.urgency == "none" && data.Deadline != nil {
				t.Errorf("expected nil deadline for none tier")
			}
		})
	}
}
