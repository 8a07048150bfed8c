package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Client talks to the Director API. No retries and no client-side timeout;
// whatever governs the model call upstream governs here too.
type Client struct {
	http *resty.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{http: resty.New().SetBaseURL(baseURL)}
}

type chatResponse struct {
	OK    bool   `json:"ok"`
	Text  string `json:"text"`
	Error string `json:"error"`
}

// Send posts one prompt and returns the Director's reply text. mode is the
// canonical specialist tag, or empty for automatic routing.
func (c *Client) Send(ctx context.Context, message, mode string) (string, error) {
	body := map[string]string{"message": message}
	if mode != "" {
		body["mode"] = mode
	}

	var out chatResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&out).
		SetError(&out).
		Post("/api/chat")
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}

	if !res.IsSuccess() || !out.OK {
		if out.Error != "" {
			return "", errors.New(out.Error)
		}
		return "", fmt.Errorf("chat request failed with status %d", res.StatusCode())
	}

	return out.Text, nil
}
