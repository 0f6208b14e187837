// Package client is the HTTP client for the activity signup API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"activityboard/internal/domain"
)

// APIError is an application-level rejection: the backend answered with a
// non-2xx status and a structured error body. Detail may be empty when the
// body carried no detail field.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Detail)
}

// Client calls the activity signup backend. All other failures returned by
// its methods (connection errors, undecodable bodies) are plain wrapped
// errors, distinguishing transport failures from *APIError rejections.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the backend at baseURL (e.g. "http://localhost:8080").
// httpClient may be nil, in which case http.DefaultClient is used.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// List fetches all activities. The returned map is keyed by activity name;
// each Activity has its Name field populated from the key.
func (c *Client) List(ctx context.Context) (map[string]domain.Activity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activities", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("activities endpoint returned status: %d", resp.StatusCode)
	}

	var activities map[string]domain.Activity
	if err := json.NewDecoder(resp.Body).Decode(&activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	for name, a := range activities {
		a.Name = name
		activities[name] = a
	}
	return activities, nil
}

// Signup registers email for the named activity and returns the backend's
// confirmation message.
func (c *Client) Signup(ctx context.Context, activity, email string) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, activity, "signup", email)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	// The body is parsed regardless of status: error bodies carry a
	// detail field, success bodies a message field.
	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode signup response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Detail: body.Detail}
	}
	return body.Message, nil
}

// Unregister removes email from the named activity's roster. The success
// body is not parsed; only the status matters.
func (c *Client) Unregister(ctx context.Context, activity, email string) error {
	resp, err := c.do(ctx, http.MethodDelete, activity, "unregister", email)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode unregister response: %w", err)
	}
	return &APIError{StatusCode: resp.StatusCode, Detail: body.Detail}
}

// do issues a mutating request to /activities/{activity}/{action}?email=...
// with both the activity path segment and the email query value
// percent-encoded.
func (c *Client) do(ctx context.Context, method, activity, action, email string) (*http.Response, error) {
	q := url.Values{}
	q.Set("email", email)
	u := fmt.Sprintf("%s/activities/%s/%s?%s", c.baseURL, url.PathEscape(activity), action, q.Encode())
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach backend: %w", err)
	}
	return resp, nil
}
