// Copyright Inventory Capture Inc., 2026. All rights reserved.

// Package api implements the HTTP client for the component-distributor
// aggregation service: search, authentication, supplier records,
// subscriptions, and presigned pricing uploads.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inventorycapture/partscout/internal/httputil"
	"github.com/inventorycapture/partscout/pkg/types"
)

// ErrUnauthorized is returned when the server rejects the bearer token.
// The stored credentials have already been cleared when this is returned.
var ErrUnauthorized = errors.New("unauthorized: session expired or invalid")

// CredentialSource supplies the bearer token for outgoing requests. Token is
// called once per request; implementations must not hand out cached values,
// because Clear may run concurrently from the 401 handler.
type CredentialSource interface {
	Token() string
	Clear() error
}

// anonymous is the CredentialSource used when none is configured.
type anonymous struct{}

func (anonymous) Token() string { return "" }
func (anonymous) Clear() error  { return nil }

// APIError carries a non-2xx response status and any server-provided detail.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("API error (HTTP %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("API error (HTTP %d)", e.Status)
}

// Client talks to the aggregation API. The base URL is a plain field so
// tests point it at an httptest server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Creds      CredentialSource
	UserAgent  string
	MaxRetries int

	logger *zap.Logger
}

// NewClient builds a client from configuration. creds may be nil for an
// anonymous client.
func NewClient(cfg types.APIConfig, creds CredentialSource, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if creds == nil {
		creds = anonymous{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		BaseURL:    cfg.BaseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		Creds:      creds,
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

// do issues one API request. The bearer token is read fresh from the
// credential source for every call; a 401 response clears the stored
// credentials and returns ErrUnauthorized.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if token := c.Creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, req, c.MaxRetries)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		if clearErr := c.Creds.Clear(); clearErr != nil {
			c.logger.Warn("clearing credentials after 401", zap.Error(clearErr))
		}
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Detail: errorDetail(resp.Body)}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing %s response: %w", path, err)
	}
	return nil
}

// errorDetail extracts a server-provided message from an error body.
// The API uses both "message" and "error" keys depending on the endpoint.
func errorDetail(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

// Search runs a full search. source tags where the query originated
// ("search_page", "search_bar", ...), which the backend records.
func (c *Client) Search(ctx context.Context, q types.Query, source string) (types.SearchResponse, error) {
	var resp types.SearchResponse
	if err := q.Validate(); err != nil {
		return resp, err
	}
	req := types.SearchRequest{
		SearchType:   q.Match,
		SearchSource: source,
		Field:        q.Field,
		FieldValue:   q.Value,
	}
	err := c.do(ctx, http.MethodPost, "/search", req, &resp)
	return resp, err
}

// Suggest runs a search-bar query and returns dropdown candidates.
func (c *Client) Suggest(ctx context.Context, q types.Query) ([]types.Suggestion, error) {
	resp, err := c.Search(ctx, q, "search_bar")
	if err != nil {
		return nil, err
	}
	suggestions := make([]types.Suggestion, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.PartNumber == "" {
			continue
		}
		suggestions = append(suggestions, types.Suggestion{
			PartNumber: item.PartNumber,
			NumResults: item.NumResults,
		})
	}
	return suggestions, nil
}

// SignIn exchanges credentials for a session.
func (c *Client) SignIn(ctx context.Context, username, password string) (types.Session, error) {
	var resp types.SignInResponse
	err := c.do(ctx, http.MethodPost, "/user/signin", types.SignInRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return types.Session{}, err
	}
	return types.Session{Username: resp.User, Token: resp.Token}, nil
}

// Register creates a user account.
func (c *Client) Register(ctx context.Context, req types.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/user/register", req, nil)
}

// Verify checks that the stored token is still accepted.
func (c *Client) Verify(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/user/verify", nil, nil)
}

// SupplierDetails fetches one supplier's profile.
func (c *Client) SupplierDetails(ctx context.Context, id string) (types.SupplierInfo, error) {
	var resp types.SupplierDetailsResponse
	if err := c.do(ctx, http.MethodGet, "/supplier/details/"+id, nil, &resp); err != nil {
		return types.SupplierInfo{}, err
	}
	return resp.Supplier.SupplierInfo, nil
}

// CreateSupplier registers a supplier. Blank optional fields are omitted by
// the request type's omitempty tags.
func (c *Client) CreateSupplier(ctx context.Context, reg types.SupplierRegistration) error {
	if reg.CompanyName == "" || reg.ContactEmail == "" {
		return fmt.Errorf("company name and contact email are required")
	}
	return c.do(ctx, http.MethodPost, "/supplier/create", reg, nil)
}

// Subscriptions lists the part numbers the current identity follows.
func (c *Client) Subscriptions(ctx context.Context) ([]string, error) {
	var resp types.SubscriptionsResponse
	if err := c.do(ctx, http.MethodGet, "/user/subscriptions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.SubscribedParts, nil
}

type subscribeRequest struct {
	PartNumber string `json:"part_number"`
}

// Subscribe follows a part number for the current identity.
func (c *Client) Subscribe(ctx context.Context, partNumber string) error {
	return c.do(ctx, http.MethodPost, "/user/subscribe", subscribeRequest{PartNumber: partNumber}, nil)
}

// Unsubscribe stops following a part number.
func (c *Client) Unsubscribe(ctx context.Context, partNumber string) error {
	return c.do(ctx, http.MethodPost, "/user/unsubscribe", subscribeRequest{PartNumber: partNumber}, nil)
}

// PresignPricingUpload requests a time-limited upload URL for a pricing file.
func (c *Client) PresignPricingUpload(ctx context.Context, req types.PricingPresignRequest) (string, error) {
	var resp types.PricingPresignResponse
	if err := c.do(ctx, http.MethodPost, "/get-pricing-presigned-url", req, &resp); err != nil {
		return "", err
	}
	if resp.PresignedURL == "" {
		return "", fmt.Errorf("backend returned no upload URL")
	}
	return resp.PresignedURL, nil
}

// UploadToPresigned PUTs the file body directly to the presigned URL. The
// URL embeds its own authorization, so no bearer token is attached.
func (c *Client) UploadToPresigned(ctx context.Context, url, contentType string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return fmt.Errorf("creating upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("uploading file: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Detail: "upload rejected"}
	}
	return nil
}
