package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type Notification struct {
	ID        int       `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	Type      string    `json:"type"`
}

// Notifications lists the authenticated user's notifications.
func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	status, body, err := c.call(ctx, http.MethodGet, "/api/notifications/", nil, nil, "")
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, apiError(status, body, msgGenericError)
	}
	var out []Notification
	if err := decode(body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkNotificationRead flags one notification as read and returns its
// updated representation.
func (c *Client) MarkNotificationRead(ctx context.Context, id int) (Notification, error) {
	path := fmt.Sprintf("/api/notifications/%d/mark_read/", id)
	status, body, err := c.call(ctx, http.MethodPost, path, nil, nil, "")
	if err != nil {
		return Notification{}, err
	}
	if !ok(status) {
		return Notification{}, apiError(status, body, msgGenericError)
	}
	var out Notification
	if err := decode(body, &out); err != nil {
		return Notification{}, err
	}
	return out, nil
}
