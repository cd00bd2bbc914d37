package apiclient

import (
	"context"
	"net/http"

	"github.com/hausasoft/hausasoft-go/core"
	"github.com/hausasoft/hausasoft-go/core/session"
)

const (
	msgLoginFailed    = "Invalid email or password."
	msgRegisterFailed = "Registration failed. Please try again."
)

// Login exchanges credentials for a bearer token via POST /api/auth/token/.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	status, body, err := c.call(ctx, http.MethodPost, "/api/auth/token/", nil, payload, "")
	if err != nil {
		return "", err
	}
	if !ok(status) {
		// the backend signals a bad credential pair with either 400 or 401
		if status == http.StatusBadRequest || status == http.StatusUnauthorized {
			return "", core.NewAPIError(core.ErrInvalidCredentials, normalizeMessage(body, msgLoginFailed))
		}
		return "", apiError(status, body, msgLoginFailed)
	}

	var out struct {
		Access string `json:"access"`
	}
	if err := decode(body, &out); err != nil {
		return "", err
	}
	if out.Access == "" {
		return "", core.NewAPIError(core.ErrUnknown, msgLoginFailed)
	}
	return out.Access, nil
}

// Register creates an account via POST /api/auth/register/. The backend
// reads the camelCase confirmPassword key; registration never yields a
// session, only a message instructing the user to log in.
func (c *Client) Register(ctx context.Context, acc session.NewAccount) (string, error) {
	status, body, err := c.call(ctx, http.MethodPost, "/api/auth/register/", nil, acc, "")
	if err != nil {
		return "", err
	}
	if !ok(status) {
		return "", apiError(status, body, msgRegisterFailed)
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := decode(body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// FetchProfile resolves a token to its user via GET /api/users/me/. The
// token is passed explicitly: during login it is not yet the session token
// the Authenticator would attach.
func (c *Client) FetchProfile(ctx context.Context, token string) (session.User, error) {
	status, body, err := c.call(ctx, http.MethodGet, "/api/users/me/", nil, nil, token)
	if err != nil {
		return session.User{}, err
	}
	if !ok(status) {
		return session.User{}, apiError(status, body, msgSessionExpired)
	}

	var usr session.User
	if err := decode(body, &usr); err != nil {
		return session.User{}, err
	}
	if !usr.Role.Valid() {
		c.log.Warn("api: profile carries unknown role", string(usr.Role))
		return session.User{}, core.NewAPIError(core.ErrDataIntegrity, msgGenericError)
	}
	return usr, nil
}
