package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hausasoft/hausasoft-go/core"
	"github.com/hausasoft/hausasoft-go/core/session"
)

const (
	msgNetworkError   = "Network error occurred. Please try again."
	msgSessionExpired = "Your session has expired. Please log in again."
	msgGenericError   = "An error occurred"
)

type (
	Options struct {
		BaseURL string
		Timeout time.Duration
		// Transport usually is an *Authenticator; defaults to http.DefaultTransport.
		Transport http.RoundTripper
		Logger    core.Logger
	}

	// Client talks to the Hausasoft backend REST API. It performs exactly one
	// attempt per call; retry policy belongs to the caller.
	Client struct {
		base string
		hc   *http.Client
		log  core.Logger
	}
)

var _ session.Transport = (*Client)(nil)

func NewClient(opts *Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = core.NopLogger{}
	}
	return &Client{
		base: strings.TrimRight(opts.BaseURL, "/"),
		hc:   &http.Client{Timeout: opts.Timeout, Transport: opts.Transport},
		log:  opts.Logger,
	}
}

// NewClientFromConfig wires a Client from app config, normally with an
// Authenticator as transport.
func NewClientFromConfig(conf *core.Config, transport http.RoundTripper, logger core.Logger) *Client {
	return NewClient(&Options{
		BaseURL:   conf.API.BaseURL,
		Timeout:   conf.API.Timeout,
		Transport: transport,
		Logger:    logger,
	})
}

// call performs one round-trip and hands back the status code and raw body.
// Endpoint methods own the status-to-taxonomy mapping; transport-level
// failures are already normalized here.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, payload interface{}, bearer string) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, errors.Wrap(err, "marshalling request payload")
		}
		body = bytes.NewReader(data)
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return 0, nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Debug("api: transport failure", err)
		return 0, nil, core.NewAPIError(core.ErrNetworkFailure, msgNetworkError)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, core.NewAPIError(core.ErrNetworkFailure, msgNetworkError)
	}
	return resp.StatusCode, data, nil
}

func ok(status int) bool { return status >= 200 && status < 300 }

func decode(data []byte, out interface{}) error {
	if err := json.Unmarshal(data, out); err != nil {
		return core.NewAPIError(core.ErrUnknown, msgGenericError)
	}
	return nil
}
