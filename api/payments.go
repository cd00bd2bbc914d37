package apiclient

import (
	"context"
	"fmt"
	"net/http"
)

// Payment statuses as reported by the backend.
const (
	PaymentPending = "pending"
	PaymentSuccess = "success"
	PaymentFailed  = "failed"
)

type (
	// Payment points the user at the provider's checkout page; the actual
	// payment processing is entirely the backend's business.
	Payment struct {
		PaymentURL string `json:"payment_url"`
		PaymentID  string `json:"payment_id"`
	}

	PaymentStatus struct {
		Status  string `json:"status"`
		Message string `json:"message,omitempty"`
	}
)

// InitiatePayment starts a payment for a course and returns the checkout
// hand-off.
func (c *Client) InitiatePayment(ctx context.Context, courseID int) (Payment, error) {
	payload := struct {
		Course int `json:"course"`
	}{courseID}

	status, body, err := c.call(ctx, http.MethodPost, "/api/payments/", nil, payload, "")
	if err != nil {
		return Payment{}, err
	}
	if !ok(status) {
		return Payment{}, apiError(status, body, msgGenericError)
	}
	var out Payment
	if err := decode(body, &out); err != nil {
		return Payment{}, err
	}
	return out, nil
}

// CheckPaymentStatus polls the state of a previously initiated payment.
func (c *Client) CheckPaymentStatus(ctx context.Context, paymentID string) (PaymentStatus, error) {
	path := fmt.Sprintf("/api/payments/%s/status/", paymentID)
	status, body, err := c.call(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return PaymentStatus{}, err
	}
	if !ok(status) {
		return PaymentStatus{}, apiError(status, body, msgGenericError)
	}
	var out PaymentStatus
	if err := decode(body, &out); err != nil {
		return PaymentStatus{}, err
	}
	return out, nil
}
