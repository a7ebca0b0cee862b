// Package client is a typed client for the bankroll REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/http/handlers"
	"github.com/shopspring/decimal"
)

const apiPrefix = "/api/v1"

// APIError is a non 2xx answer carrying the server's error envelope
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msgs := range e.Fields {
		parts = append(parts, field+": "+strings.Join(msgs, " "))
	}
	return fmt.Sprintf("%s (%d): %s [%s]", e.Code, e.StatusCode, e.Message, strings.Join(parts, "; "))
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to one bankroll server
type Client struct {
	baseURL string
	token   string
	http    *retryablehttp.Client
}

// Option configures a Client
type Option func(*Client)

// WithToken sets the bearer token sent with every request
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithRetry bounds retries of idempotent reads
func WithRetry(max int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.http.RetryMax = max
		c.http.RetryWaitMin = waitMin
		c.http.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the per attempt timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.HTTPClient.Timeout = d }
}

// New returns a client for baseURL, e.g. http://localhost:8080
func New(baseURL string, opts ...Option) *Client {
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.RetryMax = 3
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = 30 * time.Second
	rc.CheckRetry = retryIdempotent
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	c := &Client{baseURL: strings.TrimRight(baseURL, "/"), http: rc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type methodKey struct{}

// retryIdempotent retries transport failures and 5xx/429 answers of GET requests only.
// Writes move money and are never replayed.
func retryIdempotent(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if method, _ := ctx.Value(methodKey{}).(string); method != http.MethodGet {
		return false, ctx.Err()
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// Token returns the bearer token in use
func (c *Client) Token() string {
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, expected int) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(context.WithValue(ctx, methodKey{}, method), method, u, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != expected {
		return decodeError(resp.StatusCode, respBody)
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(status int, body []byte) error {
	var envelope domain.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		return &APIError{
			StatusCode: status,
			Code:       envelope.Error.Code,
			Message:    envelope.Error.Message,
			Fields:     envelope.Error.Fields,
		}
	}
	return &APIError{
		StatusCode: status,
		Code:       http.StatusText(status),
		Message:    strings.TrimSpace(string(body)),
	}
}

func periodQuery(period string) url.Values {
	if period == "" {
		return nil
	}
	return url.Values{"period": {period}}
}

// SignUp registers a player
func (c *Client) SignUp(ctx context.Context, username, password string) (*handlers.UserResponse, error) {
	var out handlers.UserResponse
	err := c.do(ctx, http.MethodPost, "/auth/signup", nil,
		handlers.CredentialsRequest{Username: username, Password: password}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token and keeps it for later calls
func (c *Client) Login(ctx context.Context, username, password string) (*handlers.LoginResponse, error) {
	var out handlers.LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil,
		handlers.CredentialsRequest{Username: username, Password: password}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// Me returns the authenticated player
func (c *Client) Me(ctx context.Context) (*handlers.UserResponse, error) {
	var out handlers.UserResponse
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dashboard returns the overview for period
func (c *Client) Dashboard(ctx context.Context, period string) (*handlers.DashboardResponse, error) {
	var out handlers.DashboardResponse
	if err := c.do(ctx, http.MethodGet, "/users/dashboard", periodQuery(period), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// History returns the daily balance series; days <= 0 uses the server default
func (c *Client) History(ctx context.Context, days int) (*handlers.HistoryResponse, error) {
	var q url.Values
	if days > 0 {
		q = url.Values{"days": {strconv.Itoa(days)}}
	}
	var out handlers.HistoryResponse
	if err := c.do(ctx, http.MethodGet, "/users/bankroll_history", q, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// TournamentParams are the attributes of a result; nil fields are omitted
type TournamentParams struct {
	Date          *time.Time
	BuyIn         *decimal.Decimal
	CashedFor     *decimal.Decimal
	PlaceFinished *int
}

func (p TournamentParams) request() handlers.TournamentRequest {
	r := handlers.TournamentRequest{BuyIn: p.BuyIn, CashedFor: p.CashedFor, PlaceFinished: p.PlaceFinished}
	if p.Date != nil {
		d := p.Date.Format(time.DateOnly)
		r.Date = &d
	}
	return r
}

// Tournaments lists results of period
func (c *Client) Tournaments(ctx context.Context, period string) (*handlers.TournamentListResponse, error) {
	var out handlers.TournamentListResponse
	if err := c.do(ctx, http.MethodGet, "/tournaments", periodQuery(period), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTournament logs a result
func (c *Client) CreateTournament(ctx context.Context, p TournamentParams) (*handlers.TournamentResponse, error) {
	var out handlers.TournamentResponse
	if err := c.do(ctx, http.MethodPost, "/tournaments", nil, p.request(), &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTournament patches the given attributes of a result
func (c *Client) UpdateTournament(ctx context.Context, id int64, p TournamentParams) (*handlers.TournamentResponse, error) {
	var out handlers.TournamentResponse
	path := "/tournaments/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodPatch, path, nil, p.request(), &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTournament removes a result and reverses its effect on the bankroll
func (c *Client) DeleteTournament(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/tournaments/"+strconv.FormatInt(id, 10), nil, nil, nil, http.StatusNoContent)
}

// Stats returns tournament statistics of period
func (c *Client) Stats(ctx context.Context, period string) (*handlers.StatsResponse, error) {
	var out handlers.StatsResponse
	if err := c.do(ctx, http.MethodGet, "/tournaments/stats", periodQuery(period), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Adjust applies a deposit, withdrawal or correction
func (c *Client) Adjust(ctx context.Context, kind domain.TransactionType, amount decimal.Decimal, description string) (*handlers.AdjustmentResponse, error) {
	var out handlers.AdjustmentResponse
	req := handlers.AdjustmentRequest{Amount: &amount, TransactionType: string(kind), Description: description}
	if err := c.do(ctx, http.MethodPost, "/adjustments", nil, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Adjustments lists adjustments of period
func (c *Client) Adjustments(ctx context.Context, period string) (*handlers.AdjustmentListResponse, error) {
	var out handlers.AdjustmentListResponse
	if err := c.do(ctx, http.MethodGet, "/adjustments", periodQuery(period), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
