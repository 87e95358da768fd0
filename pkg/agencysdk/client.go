package agencysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError is a non-2xx response decoded into the uniform error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("agencysdk: %d %s", e.Status, e.Message)
}

// SDKClient talks to an AgencyRoom server. Unauthenticated operations live
// here; operations requiring a session are methods on Session.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client with sane timeouts.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// do performs one JSON round trip. A non-nil out must be a pointer; token is
// attached as a bearer header when present.
func (c *SDKClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// doRaw performs a round trip whose body is returned verbatim (exports).
func (c *SDKClient) doRaw(ctx context.Context, method, path, token string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, nil)
	if err != nil {
		return nil, "", err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, "", decodeError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func decodeError(resp *http.Response) error {
	var envelope ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error == "" {
		return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return &APIError{Status: resp.StatusCode, Message: envelope.Error}
}

// RegisterAgency creates a new agency tenant and returns a live session for
// its owner.
func (c *SDKClient) RegisterAgency(ctx context.Context, req RegisterAgencyRequest) (*Session, error) {
	var resp SessionResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register-agency", "", req, &resp); err != nil {
		return nil, err
	}
	return newSession(c, resp), nil
}

// Login authenticates an existing user (staff or portal).
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	var resp SessionResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return newSession(c, resp), nil
}

// InviteDetails previews an invite before acceptance.
func (c *SDKClient) InviteDetails(ctx context.Context, token string) (InvitePreviewResponse, error) {
	var resp InvitePreviewResponse
	err := c.do(ctx, http.MethodGet, "/client/invites/"+token, "", nil, &resp)
	return resp, err
}

// AcceptInvite redeems an invite, creating the portal account and returning
// its first session.
func (c *SDKClient) AcceptInvite(ctx context.Context, token string, req AcceptInviteRequest) (*Session, error) {
	var resp SessionResponse
	if err := c.do(ctx, http.MethodPost, "/client/invites/"+token+"/accept", "", req, &resp); err != nil {
		return nil, err
	}
	return newSession(c, resp), nil
}

// PublicReport fetches the anonymous snapshot behind a public link.
func (c *SDKClient) PublicReport(ctx context.Context, publicID string) (PublicReportResponse, error) {
	var resp PublicReportResponse
	err := c.do(ctx, http.MethodGet, "/public/reports/"+publicID, "", nil, &resp)
	return resp, err
}

// Livez hits the liveness probe.
func (c *SDKClient) Livez(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", "", nil, &resp)
	return resp, err
}

// Readyz hits the readiness probe.
func (c *SDKClient) Readyz(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", "", nil, &resp)
	return resp, err
}
