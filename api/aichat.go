package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hausasoft/hausasoft-go/core"
)

// SendAIMessage proxies a chat prompt to the AI tutor via
// GET /api/learn-with-ai/?prompt=. The backend replies 200 with either
// {text} or {error} (provider failures keep the 200), so both shapes are
// handled on the happy path.
func (c *Client) SendAIMessage(ctx context.Context, prompt string) (string, error) {
	query := url.Values{"prompt": {prompt}}
	status, body, err := c.call(ctx, http.MethodGet, "/api/learn-with-ai/", query, nil, "")
	if err != nil {
		return "", err
	}
	if !ok(status) {
		return "", apiError(status, body, "Failed to get AI response")
	}

	var out struct {
		Text  string `json:"text"`
		Error string `json:"error"`
	}
	if err := decode(body, &out); err != nil {
		return "", err
	}
	if out.Error != "" {
		return "", core.NewAPIError(core.ErrUnknown, out.Error)
	}
	return out.Text, nil
}
