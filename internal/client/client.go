// Copyright (c) 2026 EventInc. All rights reserved.

/*
Package client is the Go SDK for the EventInc API.

It mirrors the admin frontend's behavior: a thin HTTP client for the API
endpoints, a durable token store, a session holding the authenticated user,
and a route guard deciding access to admin paths.
*/
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/eventinc/api/internal/auth"
	"github.com/eventinc/api/internal/events"
	"github.com/eventinc/api/pkg/pagination"
)

// ErrNoToken is returned when an operation needs a session token and the
// store holds none.
var ErrNoToken = errors.New("client: no token stored")

// APIError is an error response decoded from the API's error envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("client: api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Client is a thin HTTP client for the EventInc API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given base URL (e.g. "https://api.eventinc.com").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// LoginResult is the decoded POST /api/auth/login payload.
type LoginResult struct {
	Token string     `json:"token"`
	User  *auth.User `json:"user"`
}

// Login exchanges credentials for a session token.
func (client *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result LoginResult
	if err := client.do(ctx, http.MethodPost, "/api/auth/login", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Verify checks a session token against the API and returns the account.
func (client *Client) Verify(ctx context.Context, token string) (*auth.User, error) {
	var result struct {
		User *auth.User `json:"user"`
	}
	if err := client.do(ctx, http.MethodGet, "/api/auth/verify", token, nil, &result); err != nil {
		return nil, err
	}
	return result.User, nil
}

// EventPage is the decoded GET /api/admin/events payload.
type EventPage struct {
	Events     []*events.Event `json:"events"`
	Pagination pagination.Meta `json:"pagination"`
}

// ListEvents fetches a page of the admin event catalogue.
func (client *Client) ListEvents(ctx context.Context, token string, filter events.Filter, page, limit int) (*EventPage, error) {
	values := url.Values{}
	if filter.Status != "" {
		values.Set("status", filter.Status)
	}
	if filter.Type != "" {
		values.Set("type", filter.Type)
	}
	if filter.Search != "" {
		values.Set("search", filter.Search)
	}
	if len(filter.Tags) > 0 {
		values.Set("tags", strings.Join(filter.Tags, ","))
	}
	if page > 0 {
		values.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/admin/events"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var result EventPage
	if err := client.do(ctx, http.MethodGet, path, token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateEvent creates a new event in the catalogue.
func (client *Client) CreateEvent(ctx context.Context, token string, input events.CreateInput) (*events.Event, error) {
	var result struct {
		Event *events.Event `json:"event"`
	}
	if err := client.do(ctx, http.MethodPost, "/api/admin/events", token, input, &result); err != nil {
		return nil, err
	}
	return result.Event, nil
}

// UpdateEventStatus transitions an event to a new publication status.
func (client *Client) UpdateEventStatus(ctx context.Context, token, id, status string) (*events.Event, error) {
	var result struct {
		Event *events.Event `json:"event"`
	}
	path := "/api/admin/events/" + url.PathEscape(id) + "/status"
	body := map[string]string{"status": status}
	if err := client.do(ctx, http.MethodPatch, path, token, body, &result); err != nil {
		return nil, err
	}
	return result.Event, nil
}

// do executes one API round trip: encode body, attach bearer token, decode
// either the success payload or the error envelope.
func (client *Client) do(ctx context.Context, method, path, token string, body, target any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("client: failed to build request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("client: request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode >= 400 {
		return decodeAPIError(response)
	}

	if target != nil {
		if err := json.NewDecoder(response.Body).Decode(target); err != nil {
			return fmt.Errorf("client: failed to decode response: %w", err)
		}
	}

	return nil
}

// decodeAPIError turns a non-2xx response into an [*APIError].
func decodeAPIError(response *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		envelope.Error = http.StatusText(response.StatusCode)
	}

	return &APIError{
		StatusCode: response.StatusCode,
		Code:       envelope.Code,
		Message:    envelope.Error,
	}
}
