package session

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/hausasoft/hausasoft-go/core"
)

// User-facing messages. The backend's own message wins whenever one is
// available; these are the fallbacks the front-end shipped with.
const (
	msgInvalidLogin    = "Please enter a valid email and password (min 8 characters)."
	msgLoginOK         = "Login successful!"
	msgLoginFailed     = "Invalid email or password."
	msgRegisterOK      = "Registration successful! You can now log in."
	msgRegisterFailed  = "Registration failed. Please try again."
	msgSessionNotSaved = "Could not save your session. Please try again."
)

// Result is the structured outcome of Login and Register. Those two never
// return an error past this boundary; the UI only ever branches on Success
// and shows Message.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Transport performs the credential calls. A single attempt per call, no
// retries; retry policy belongs to the caller.
type Transport interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	Register(ctx context.Context, acc NewAccount) (message string, err error)
	FetchProfile(ctx context.Context, token string) (User, error)
}

// Manager owns the in-memory session and orchestrates login, register and
// logout against the Transport and the Store. The Store remains the source
// of truth across restarts; the constructor rehydrates from it synchronously
// so no consumer ever observes a pre-rehydration state.
//
// Overlapping session-mutating calls are not serialized: the final state is
// whichever completes last, each attempt being independently consistent via
// the Store's atomic Save.
type Manager struct {
	transport Transport
	store     Store
	log       core.Logger

	mu   sync.RWMutex
	cur  Session
	subs []func(Session)
}

func NewManager(transport Transport, store Store, logger core.Logger) *Manager {
	if logger == nil {
		logger = core.NopLogger{}
	}
	m := &Manager{transport: transport, store: store, log: logger}
	m.rehydrate()
	return m
}

// rehydrate restores a persisted session without a network round-trip;
// validity is re-checked lazily on the next authenticated request. A role
// outside the closed set is a data-integrity case: the entry is cleared and
// the session stays unauthenticated.
func (m *Manager) rehydrate() {
	entry, ok := m.store.Load()
	if !ok {
		return
	}
	if !entry.User.Role.Valid() {
		m.log.Warn("session: persisted user has unknown role; clearing", string(entry.User.Role))
		if err := m.store.Clear(); err != nil {
			m.log.Error("session: clearing corrupt entry", err)
		}
		return
	}
	m.cur = Session{Token: entry.Token, User: entry.User, Status: Authenticated}
}

// Current returns a snapshot of the session.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur
}

// Token returns the current bearer token, or "" when unauthenticated.
func (m *Manager) Token() string {
	return m.Current().Token
}

// OnChange registers fn to be called with a snapshot after every session
// transition. Callbacks run synchronously on the mutating goroutine.
func (m *Manager) OnChange(fn func(Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Login exchanges credentials for a token, fetches the profile and persists
// both before the in-memory transition completes. Obviously invalid input is
// rejected before any network call.
func (m *Manager) Login(ctx context.Context, email, password string) Result {
	creds := Credentials{Email: email, Password: password}
	if err := creds.Validate(); err != nil {
		return Result{Success: false, Message: msgInvalidLogin}
	}

	m.set(Session{Status: Authenticating})

	token, err := m.transport.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		m.set(Session{})
		return Result{Success: false, Message: core.ErrorMessage(err, msgLoginFailed)}
	}

	usr, err := m.transport.FetchProfile(ctx, token)
	if err != nil {
		m.set(Session{})
		return Result{Success: false, Message: core.ErrorMessage(err, msgLoginFailed)}
	}

	if err := m.store.Save(Entry{Token: token, User: usr}); err != nil {
		m.log.Error("session: persisting session", err)
		m.set(Session{})
		return Result{Success: false, Message: msgSessionNotSaved}
	}
	m.set(Session{Token: token, User: usr, Status: Authenticated})
	return Result{Success: true, Message: msgLoginOK}
}

// Register creates an account. It is a two-step contract: the backend
// requires a separate login afterwards, so a successful registration never
// mutates session state.
func (m *Manager) Register(ctx context.Context, acc NewAccount) Result {
	if err := acc.Validate(); err != nil {
		return Result{Success: false, Message: validationMessage(err)}
	}
	message, err := m.transport.Register(ctx, acc)
	if err != nil {
		return Result{Success: false, Message: core.ErrorMessage(err, msgRegisterFailed)}
	}
	if message == "" {
		message = msgRegisterOK
	}
	return Result{Success: true, Message: message}
}

// Logout clears the Store first, then memory, so a crash in between can
// never resurrect a session the user asked to end.
func (m *Manager) Logout() error {
	err := m.store.Clear()
	if err != nil {
		m.log.Error("session: clearing store on logout", err)
	}
	m.set(Session{})
	return err
}

// HandleUnauthorized is the forced-logout path, fired by the request
// authenticator when the backend rejects a call as unauthorized. It only
// acts when the rejected token is still the current one, which makes
// concurrent rejections (and rejections racing a fresh login) no-ops.
func (m *Manager) HandleUnauthorized(rejectedToken string) {
	m.mu.Lock()
	if !m.cur.Authenticated() || m.cur.Token != rejectedToken {
		m.mu.Unlock()
		return
	}
	m.cur = Session{}
	subs := append([]func(Session){}, m.subs...)
	m.mu.Unlock()

	m.log.Info("session: backend rejected token; session ended")
	if err := m.store.Clear(); err != nil {
		m.log.Error("session: clearing store on forced logout", err)
	}
	for _, fn := range subs {
		fn(Session{})
	}
}

func (m *Manager) set(s Session) {
	m.mu.Lock()
	m.cur = s
	subs := append([]func(Session){}, m.subs...)
	m.mu.Unlock()
	for _, fn := range subs {
		fn(s)
	}
}

// validationMessage flattens a client-side validation failure into one
// readable line, mirroring how the backend words its own rejections.
func validationMessage(err error) string {
	if vErrs, ok := err.(validator.ValidationErrors); ok {
		if flds := core.TranslateFieldErrors(vErrs); len(flds) > 0 {
			return flds[0].Field + ": " + flds[0].Error
		}
	}
	return msgRegisterFailed
}
