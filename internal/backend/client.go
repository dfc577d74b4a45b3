package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/asalah03/educate-app-frontend/internal/domain"
)

// Client talks to the remote lessons API. It deliberately carries no
// timeout and no retry policy: every call runs until it completes or the
// caller's context is cancelled, and a failed call is only repeated when
// the user re-triggers the action.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// ListLessons fetches the full lesson list.
//
// Parameters:
//   - ctx: request-scoped context.
//
// Returns:
//   - []domain.Lesson: the decoded lessons in backend order.
//   - error: backend.ErrUnexpectedStatus on a non-2xx response.
func (c *Client) ListLessons(ctx context.Context) ([]domain.Lesson, error) {
	const op = "backend.ListLessons"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/lessons", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, fmt.Errorf("%s: %w", op, &StatusError{Code: resp.StatusCode})
	}

	var lessons []domain.Lesson
	if err := json.NewDecoder(resp.Body).Decode(&lessons); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}

	return lessons, nil
}

// SubmitOrder posts a completed order.
//
// Parameters:
//   - ctx: request-scoped context.
//   - order: the order payload (name, phone, items, total).
//
// Returns:
//   - error: backend.ErrUnexpectedStatus if the backend rejects the order.
func (c *Client) SubmitOrder(ctx context.Context, order domain.Order) error {
	const op = "backend.SubmitOrder"

	if err := c.send(ctx, http.MethodPost, "/order", order); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateLessonSpaces pushes one lesson's availability to the backend. The
// wire contract identifies the lesson by its (subject, location) pair.
//
// Parameters:
//   - ctx: request-scoped context.
//   - subject, location: the lesson's natural key.
//   - spaces: the availability value to store.
//
// Returns:
//   - error: backend.ErrUnexpectedStatus if the update is rejected.
func (c *Client) UpdateLessonSpaces(ctx context.Context, subject, location string, spaces int) error {
	const op = "backend.UpdateLessonSpaces"

	body := struct {
		Subject  string `json:"subject"`
		Location string `json:"location"`
		Spaces   int    `json:"spaces"`
	}{Subject: subject, Location: location, Spaces: spaces}

	if err := c.send(ctx, http.MethodPut, "/lessons", body); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return &StatusError{Code: resp.StatusCode}
	}

	return nil
}

func is2xx(code int) bool {
	return code >= 200 && code < 300
}
