package apiclient

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// fakeBackend mimics the deployed Django backend closely enough for
// integration tests: same routes, same token scheme, same error bodies.
type fakeBackend struct {
	srv *httptest.Server

	secret   []byte
	users    map[string]*backendUser // by email
	notifs   map[int]*Notification
	payments map[string]*PaymentStatus
	nextID   int

	// when set, every authenticated route rejects its token, as if the
	// backend had revoked the session
	revoked bool
}

type backendUser struct {
	id, name, email, role, avatar string
	passwordHash                  []byte
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{
		secret:   []byte("secret"),
		users:    make(map[string]*backendUser),
		notifs:   make(map[int]*Notification),
		payments: make(map[string]*PaymentStatus),
		nextID:   1,
	}

	app := echo.New()
	app.POST("/api/auth/token/", b.obtainToken)
	app.POST("/api/auth/register/", b.register)
	app.GET("/api/learn-with-ai/", b.learnWithAI)

	authed := app.Group("/api", b.requireToken)
	authed.GET("/users/me/", b.me)
	authed.GET("/notifications/", b.listNotifications)
	authed.POST("/notifications/:id/mark_read/", b.markNotificationRead)
	authed.POST("/payments/", b.initiatePayment)
	authed.GET("/payments/:id/status/", b.paymentStatus)

	b.srv = httptest.NewServer(app)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) addUser(t *testing.T, name, email, password, role string) *backendUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("addUser() failed: %v", err)
	}
	usr := &backendUser{
		id:           strconv.Itoa(b.nextID),
		name:         name,
		email:        email,
		role:         role,
		passwordHash: hash,
	}
	b.nextID++
	b.users[email] = usr
	return usr
}

func (b *fakeBackend) addNotification(msg, typ string, read bool) *Notification {
	n := &Notification{
		ID:        b.nextID,
		Message:   msg,
		Read:      read,
		CreatedAt: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
		Type:      typ,
	}
	b.nextID++
	b.notifs[n.ID] = n
	return n
}

func (b *fakeBackend) mintToken(t *testing.T, usr *backendUser) string {
	t.Helper()
	claims := &jwt.StandardClaims{
		Subject:   usr.id,
		ExpiresAt: time.Now().Add(10 * time.Minute).Unix(),
		IssuedAt:  time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(b.secret)
	if err != nil {
		t.Fatalf("mintToken() failed: %v", err)
	}
	return token
}

// handlers

func (b *fakeBackend) obtainToken(ctx echo.Context) error {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.Bind(&in); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request"})
	}
	usr, ok := b.users[in.Email]
	if !ok || bcrypt.CompareHashAndPassword(usr.passwordHash, []byte(in.Password)) != nil {
		return ctx.JSON(http.StatusUnauthorized, echo.Map{"detail": "No active account found with the given credentials"})
	}
	claims := &jwt.StandardClaims{
		Subject:   usr.id,
		ExpiresAt: time.Now().Add(10 * time.Minute).Unix(),
		IssuedAt:  time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(b.secret)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"access": token})
}

func (b *fakeBackend) register(ctx echo.Context) error {
	var in map[string]interface{}
	if err := ctx.Bind(&in); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	str := func(key string) string {
		s, _ := in[key].(string)
		return s
	}
	for _, field := range []string{"name", "email", "password", "confirmPassword", "role"} {
		if str(field) == "" {
			return ctx.JSON(http.StatusBadRequest, echo.Map{"error": field + " is required."})
		}
	}
	if str("password") != str("confirmPassword") {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "Passwords do not match."})
	}
	if _, exists := b.users[str("email")]; exists {
		return ctx.JSON(http.StatusBadRequest, echo.Map{
			"error": "This email is already registered. Please use a different email or try logging in.",
		})
	}
	if role := str("role"); role != "student" && role != "instructor" {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid role selected."})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(str("password")), bcrypt.MinCost)
	if err != nil {
		return err
	}
	usr := &backendUser{
		id:           strconv.Itoa(b.nextID),
		name:         str("name"),
		email:        str("email"),
		role:         str("role"),
		passwordHash: hash,
	}
	b.nextID++
	b.users[usr.email] = usr
	return ctx.JSON(http.StatusCreated, echo.Map{
		"message": "Registration successful! You can now log in with your email and password.",
	})
}

func (b *fakeBackend) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reject := func() error {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"detail": "Given token not valid for any token type"})
		}
		header := ctx.Request().Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") || b.revoked {
			return reject()
		}
		claims := new(jwt.StandardClaims)
		_, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims, func(*jwt.Token) (interface{}, error) {
			return b.secret, nil
		})
		if err != nil {
			return reject()
		}
		for _, usr := range b.users {
			if usr.id == claims.Subject {
				ctx.Set("user", usr)
				return next(ctx)
			}
		}
		return reject()
	}
}

func (b *fakeBackend) me(ctx echo.Context) error {
	usr := ctx.Get("user").(*backendUser)
	return ctx.JSON(http.StatusOK, echo.Map{
		"id":     usr.id,
		"name":   usr.name,
		"email":  usr.email,
		"role":   usr.role,
		"avatar": usr.avatar,
	})
}

func (b *fakeBackend) listNotifications(ctx echo.Context) error {
	out := make([]*Notification, 0, len(b.notifs))
	for _, n := range b.notifs {
		out = append(out, n)
	}
	return ctx.JSON(http.StatusOK, out)
}

func (b *fakeBackend) markNotificationRead(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid id"})
	}
	n, ok := b.notifs[id]
	if !ok {
		return ctx.JSON(http.StatusNotFound, echo.Map{"detail": "Not found."})
	}
	n.Read = true
	return ctx.JSON(http.StatusOK, n)
}

func (b *fakeBackend) initiatePayment(ctx echo.Context) error {
	var in struct {
		Course int `json:"course"`
	}
	if err := ctx.Bind(&in); err != nil || in.Course <= 0 {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid course"})
	}
	id := "pay-" + strconv.Itoa(b.nextID)
	b.nextID++
	b.payments[id] = &PaymentStatus{Status: PaymentPending}
	return ctx.JSON(http.StatusCreated, echo.Map{
		"payment_url": b.srv.URL + "/checkout/" + id,
		"payment_id":  id,
	})
}

func (b *fakeBackend) paymentStatus(ctx echo.Context) error {
	st, ok := b.payments[ctx.Param("id")]
	if !ok {
		return ctx.JSON(http.StatusNotFound, echo.Map{"detail": "Payment not found."})
	}
	return ctx.JSON(http.StatusOK, st)
}

func (b *fakeBackend) learnWithAI(ctx echo.Context) error {
	prompt := ctx.QueryParam("prompt")
	if prompt == "" {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "No prompt provided."})
	}
	// provider failures keep the 200, like the real proxy
	if prompt == "break the model" {
		return ctx.JSON(http.StatusOK, echo.Map{"error": "upstream quota exceeded"})
	}
	return ctx.JSON(http.StatusOK, echo.Map{"text": "Sannu! You asked: " + prompt})
}

// newTestClient wires a Client at the fake backend, optionally through an
// Authenticator-driven transport.
func newTestClient(b *fakeBackend, transport http.RoundTripper) *Client {
	return NewClient(&Options{
		BaseURL:   b.srv.URL,
		Timeout:   5 * time.Second,
		Transport: transport,
	})
}

func staticToken(token string) TokenSource {
	return TokenSourceFunc(func() string { return token })
}
