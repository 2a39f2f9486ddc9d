package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/roomatch/roomatch-cli/internal/client/models"
	"github.com/roomatch/roomatch-cli/internal/logging"
)

// detail text the auth service uses for a duplicate sign-up email
const detailEmailRegistered = "Email already registered"

// HTTPClient talks JSON over HTTP to the matching service.
//
// The underlying http.Client carries no deadline of its own: the matching
// pipeline has no latency bound, and ctx cancellation is the only limit a
// caller can impose.
type HTTPClient struct {
	baseURL     string
	httpClient  *http.Client
	log         logging.Logger
	accessToken string
}

func NewHTTPClient(baseURL string, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        log,
	}
}

// SetToken adopts a bearer token issued earlier (e.g. restored from the
// local session database).
func (c *HTTPClient) SetToken(token string) {
	c.accessToken = token
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type authResponse struct {
	Status      string       `json:"status"`
	Message     string       `json:"message"`
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

type searchResponse struct {
	Status  string                `json:"status"`
	Query   string                `json:"query"`
	Results []models.SearchResult `json:"results"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Login authenticates with email/password and returns the new session.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.Session, error) {
	var resp authResponse
	if err := c.post(ctx, "/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return models.Session{}, err
	}
	return c.adoptSession(resp)
}

// SignUp registers a new account and returns the session for it. A 400
// response with the duplicate-email detail maps to ErrEmailTaken.
func (c *HTTPClient) SignUp(ctx context.Context, name, email, phone, password string) (models.Session, error) {
	req := signUpRequest{Name: name, Email: email, Phone: phone, Password: password}
	var resp authResponse
	if err := c.post(ctx, "/signup", req, &resp); err != nil {
		return models.Session{}, err
	}
	if resp.Status != "success" {
		msg := resp.Message
		if msg == "" {
			msg = "signup failed"
		}
		return models.Session{}, &StatusError{Status: http.StatusOK, Detail: msg}
	}
	return c.adoptSession(resp)
}

// Search forwards the query and returns results in the order the server
// ranked them.
func (c *HTTPClient) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	var resp searchResponse
	if err := c.post(ctx, "/search", searchRequest{Query: query}, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *HTTPClient) adoptSession(resp authResponse) (models.Session, error) {
	if resp.AccessToken == "" {
		return models.Session{}, ErrNoToken
	}
	c.accessToken = resp.AccessToken
	return models.NewSession(resp.User, resp.AccessToken), nil
}

// post sends a JSON body and decodes a JSON response into out.
// Transport-level failures collapse to ErrUnavailable; non-2xx statuses are
// mapped via decodeError.
func (c *HTTPClient) post(ctx context.Context, path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	c.log.Info(ctx, "api request", "path", path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error(ctx, "api request failed", "path", path, "request_id", requestID, "error", err)
		return ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := c.decodeError(resp)
		c.log.Warn(ctx, "api error response", "path", path, "request_id", requestID, "status", resp.StatusCode)
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Error(ctx, "api response decode failed", "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError maps a non-2xx response to a sentinel where the detail is
// recognizable, otherwise to a StatusError carrying the detail text.
func (c *HTTPClient) decodeError(resp *http.Response) error {
	var er errorResponse
	data, readErr := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if readErr == nil {
		_ = json.Unmarshal(data, &er)
	}

	if resp.StatusCode == http.StatusBadRequest && er.Detail == detailEmailRegistered {
		return ErrEmailTaken
	}
	return &StatusError{Status: resp.StatusCode, Detail: er.Detail}
}
