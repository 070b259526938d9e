package rollsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to a Rollcall service. It provides unauthenticated
// operations and creates authenticated Sessions via Login.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new Rollcall client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session is an authenticated client scoped to the logged-in identity's
// city and role. The service re-validates the token on every call.
type Session struct {
	client    *Client
	token     string
	identity  Identity
	expiresAt time.Time
}

// Identity returns the identity the session was issued for.
func (s *Session) Identity() Identity { return s.identity }

// Token returns the raw bearer token, e.g. for storage between runs.
func (s *Session) Token() string { return s.token }

// Expired reports whether the session token has passed its lifetime.
func (s *Session) Expired() bool { return time.Now().After(s.expiresAt) }

// Login authenticates and returns a Session on success.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var data LoginData
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", "",
		LoginRequest{Username: username, Password: password}, &data)
	if err != nil {
		return nil, err
	}

	return &Session{
		client:    c,
		token:     data.Token,
		identity:  data.Identity,
		expiresAt: time.Now().Add(time.Duration(data.ExpiresIn) * time.Second),
	}, nil
}

// Bootstrap creates the first administrator credential. It fails with a
// conflict once any credential exists.
func (c *Client) Bootstrap(ctx context.Context, req BootstrapRequest) error {
	return c.do(ctx, http.MethodPost, "/v1/bootstrap", "", req, nil)
}

// GetLiveness checks the service liveness probe.
func (c *Client) GetLiveness(ctx context.Context) (HealthResponse, error) {
	var health HealthResponse
	err := c.doPlain(ctx, http.MethodGet, "/livez", &health)
	return health, err
}

// GetReadiness checks the service readiness probe.
func (c *Client) GetReadiness(ctx context.Context) (HealthResponse, error) {
	var health HealthResponse
	err := c.doPlain(ctx, http.MethodGet, "/readyz", &health)
	return health, err
}

// ListPersonnel returns the active roster for a city. Fails with
// forbidden when the session is scoped to a different city.
func (s *Session) ListPersonnel(ctx context.Context, city string) ([]Person, error) {
	people := []Person{}
	path := "/v1/personnel?city=" + url.QueryEscape(city)
	err := s.client.do(ctx, http.MethodGet, path, s.token, nil, &people)
	return people, err
}

// RegisterAttendance registers a single entry/exit record for a person on
// a date. A second call for the same person and date fails with
// duplicate_registration.
func (s *Session) RegisterAttendance(ctx context.Context, req RegisterAttendanceRequest) (AttendanceEntry, error) {
	var entry AttendanceEntry
	err := s.client.do(ctx, http.MethodPost, "/v1/attendance", s.token, req, &entry)
	return entry, err
}

// ListAttendanceForDay returns all entries registered for a city and date.
func (s *Session) ListAttendanceForDay(ctx context.Context, city, date string) ([]AttendanceEntry, error) {
	entries := []AttendanceEntry{}
	path := "/v1/attendance?city=" + url.QueryEscape(city) + "&date=" + url.QueryEscape(date)
	err := s.client.do(ctx, http.MethodGet, path, s.token, nil, &entries)
	return entries, err
}

// CreateCredential provisions a login (administrator only).
func (s *Session) CreateCredential(ctx context.Context, req CreateCredentialRequest) (CreateCredentialData, error) {
	var data CreateCredentialData
	err := s.client.do(ctx, http.MethodPost, "/v1/credentials", s.token, req, &data)
	return data, err
}

// CreatePerson provisions a roster record (administrator only).
func (s *Session) CreatePerson(ctx context.Context, req CreatePersonRequest) (Person, error) {
	var person Person
	err := s.client.do(ctx, http.MethodPost, "/v1/personnel", s.token, req, &person)
	return person, err
}

// do performs a request against an envelope endpoint and decodes the
// data payload into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("rollsdk: encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("rollsdk: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("rollsdk: send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("rollsdk: read response: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// Not an envelope (e.g. a bare 401 from the authn middleware).
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       codeForStatus(resp.StatusCode),
			Message:    strings.TrimSpace(string(raw)),
		}
	}

	if !env.Success {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       codeForStatus(resp.StatusCode),
			Message:    env.Message,
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("rollsdk: decode data: %w", err)
		}
	}
	return nil
}

// doPlain performs a request against a non-envelope endpoint.
func (c *Client) doPlain(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("rollsdk: create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("rollsdk: send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("rollsdk: decode response: %w", err)
		}
	}
	return nil
}

// codeForStatus recovers the failure class from the HTTP status when the
// response body does not carry one.
func codeForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return ErrorCodeInvalidCredentials
	case http.StatusForbidden:
		return ErrorCodeForbidden
	case http.StatusNotFound:
		return ErrorCodePersonNotFound
	case http.StatusBadRequest:
		return ErrorCodeInvalidInput
	case http.StatusConflict:
		return ErrorCodeDuplicateRegistration
	case http.StatusServiceUnavailable:
		return ErrorCodeUnavailable
	default:
		return ErrorCodeServerError
	}
}
