package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"school-case-management/internal/casefile/repository"
)

const (
	defaultBreakerFailures = 5
	defaultBreakerTimeout  = 30 * time.Second
)

// Client is the HTTP wrapper for the school backend REST API.
// Calls go through a circuit breaker that opens after consecutive
// transport errors or 5xx responses.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	breaker     *gobreaker.CircuitBreaker
}

// ClientOption configures a Client.
type ClientOption func(*gobreaker.Settings)

// WithBreaker sets how many consecutive failures open the breaker and how
// long it stays open before letting a trial request through.
func WithBreaker(failures uint32, openTimeout time.Duration) ClientOption {
	return func(st *gobreaker.Settings) {
		if failures > 0 {
			st.ReadyToTrip = func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			}
		}
		if openTimeout > 0 {
			st.Timeout = openTimeout
		}
	}
}

// NewClient creates a new backend HTTP client.
func NewClient(baseURL, accessToken string, timeout time.Duration, opts ...ClientOption) *Client {
	st := gobreaker.Settings{
		Name:    "school-backend",
		Timeout: defaultBreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= defaultBreakerFailures
		},
		IsSuccessful: isBreakerSuccess,
	}
	for _, opt := range opts {
		opt(&st)
	}

	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
		breaker:     gobreaker.NewCircuitBreaker(st),
	}
}

// Name identifies the backend in readiness reports.
func (c *Client) Name() string {
	return "school_backend"
}

// State reports the state of the breaker guarding the backend.
func (c *Client) State() gobreaker.State {
	return c.breaker.State()
}

// Ready fails while the breaker is open and calls are being rejected.
func (c *Client) Ready() error {
	if c.breaker.State() == gobreaker.StateOpen {
		return fmt.Errorf("%s: %w", c.Name(), gobreaker.ErrOpenState)
	}
	return nil
}

// statusError is a non-200 answer from the backend.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("backend API error %d: %s", e.code, e.body)
}

// isBreakerSuccess counts client-side rejections (4xx, including not found)
// and requests abandoned by their caller as healthy backend answers.
func isBreakerSuccess(err error) bool {
	if err == nil || errors.Is(err, repository.ErrNotFound) || errors.Is(err, context.Canceled) {
		return true
	}
	var se *statusError
	return errors.As(err, &se) && se.code < http.StatusInternalServerError
}

// ListCases fetches cases via GET /api/cases with an optional status filter.
func (c *Client) ListCases(ctx context.Context, status string) ([]CaseDTO, error) {
	endpoint := fmt.Sprintf("%s/api/cases", c.baseURL)
	if status != "" {
		endpoint += "?status=" + url.QueryEscape(status)
	}

	var listResp struct {
		Cases []CaseDTO `json:"cases"`
	}
	if err := c.get(ctx, endpoint, &listResp); err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	return listResp.Cases, nil
}

// GetCase fetches a single case via GET /api/cases/{id}.
func (c *Client) GetCase(ctx context.Context, id string) (*CaseDTO, error) {
	endpoint := fmt.Sprintf("%s/api/cases/%s", c.baseURL, url.PathEscape(id))

	var dto CaseDTO
	if err := c.get(ctx, endpoint, &dto); err != nil {
		return nil, fmt.Errorf("get case %s: %w", id, err)
	}
	return &dto, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.do(ctx, endpoint, out)
	})
	return err
}

func (c *Client) do(ctx context.Context, endpoint string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return repository.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &statusError{code: resp.StatusCode, body: string(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}

// ---- Request/Response types scoped to this package ----

// CaseDTO is the backend's case object.
type CaseDTO struct {
	ID            string            `json:"id"`
	Folio         string            `json:"folio"`
	StudentName   string            `json:"student_name"`
	Title         string            `json:"title"`
	Status        string            `json:"status"`
	CreatedAt     string            `json:"created_at"`
	ProtocolSteps []ProtocolStepDTO `json:"protocol_steps"`
}

// ProtocolStepDTO is one step in a case's protocol.
type ProtocolStepDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Order         int     `json:"order"`
	EstimatedTime string  `json:"estimated_time"`
	Deadline      *string `json:"deadline"`
	Completed     bool    `json:"completed"`
}
