// Package api is the HTTP client for the remote fleet service.
//
// The service owns all durable data and business rules; this client only
// moves JSON. A cookie jar is attached so session-scoped requests carry the
// credentials the server set at login.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"github.com/techteamdev9/Fleet-Manager/internal/models"
)

// ErrUnauthorized is returned when the server rejects the login credentials.
var ErrUnauthorized = errors.New("api: invalid credentials")

// StatusError reports a non-success HTTP response.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: %s returned status %d", e.Path, e.Code)
}

// Client talks to the fleet service at a fixed base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL. The timeout applies per
// request; there is no retry policy anywhere in the console.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("api: base URL is required")
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("api: cookie jar: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
	}, nil
}

// Login exchanges credentials for a session identity. A 401 maps to
// ErrUnauthorized so callers can tell a rejection from a transport failure.
func (c *Client) Login(ctx context.Context, username, password string) (models.Session, error) {
	body := map[string]string{"username": username, "password": password}
	var session models.Session
	err := c.do(ctx, http.MethodPost, "/login", nil, body, &session)
	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusUnauthorized {
		return models.Session{}, ErrUnauthorized
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// Vehicles fetches the vehicle list, filtered server-side by the free-text
// query. An empty query means no filter; the client never filters locally.
func (c *Client) Vehicles(ctx context.Context, query string) ([]models.Vehicle, error) {
	params := url.Values{}
	params.Set("q", query)
	var vehicles []models.Vehicle
	if err := c.do(ctx, http.MethodGet, "/vehicles", params, nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// CreateVehicle posts a new vehicle record.
func (c *Client) CreateVehicle(ctx context.Context, payload models.VehiclePayload) (models.Vehicle, error) {
	var created models.Vehicle
	if err := c.do(ctx, http.MethodPost, "/vehicles", nil, payload, &created); err != nil {
		return models.Vehicle{}, err
	}
	return created, nil
}

// UpdateVehicle sends the full replacement payload for a vehicle.
func (c *Client) UpdateVehicle(ctx context.Context, id int, payload models.VehiclePayload) error {
	return c.do(ctx, http.MethodPut, "/vehicles/"+strconv.Itoa(id), nil, payload, nil)
}

// DeleteVehicle removes a vehicle and its history.
func (c *Client) DeleteVehicle(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/vehicles/"+strconv.Itoa(id), nil, nil, nil)
}

// History fetches the status-change log for a vehicle, in server order.
func (c *Client) History(ctx context.Context, id int) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	if err := c.do(ctx, http.MethodGet, "/vehicles/"+strconv.Itoa(id)+"/history", nil, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Stats fetches aggregate per-status counts keyed by username.
func (c *Client) Stats(ctx context.Context, username string) (models.StatsSnapshot, error) {
	params := url.Values{}
	params.Set("username", username)
	var snapshot models.StatsSnapshot
	if err := c.do(ctx, http.MethodGet, "/stats", params, nil, &snapshot); err != nil {
		return models.StatsSnapshot{}, err
	}
	return snapshot, nil
}

// Reports fetches the report set, date-bounded when both bounds are given.
// Passing only one bound fetches the full set, matching the original console.
func (c *Client) Reports(ctx context.Context, fromDate, toDate string) ([]models.ReportRecord, error) {
	var params url.Values
	if fromDate != "" && toDate != "" {
		params = url.Values{}
		params.Set("from_date", fromDate)
		params.Set("to_date", toDate)
	}
	var records []models.ReportRecord
	if err := c.do(ctx, http.MethodGet, "/reports", params, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// do issues one JSON request and decodes the response into out (when out is
// non-nil). Non-2xx responses become a *StatusError.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("api: build %s request: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode, Path: path}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s response: %w", path, err)
	}
	return nil
}
