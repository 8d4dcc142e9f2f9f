package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/saunova/saunova-server/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TokenFor signs an HS256 token the LocalVerifier accepts, with the auth ID
// as the subject.
func TokenFor(t *testing.T, ts *TestServer, authID string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": authID,
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(ts.Config.AuthLocalSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	authID string
	email  string
	image  *string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		authID: fmt.Sprintf("auth_%s", suffix),
		email:  fmt.Sprintf("user_%s@example.com", suffix),
	}
}

// WithAuthID sets the auth ID
func (b *UserBuilder) WithAuthID(authID string) *UserBuilder {
	b.authID = authID
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithImage sets the profile image URL
func (b *UserBuilder) WithImage(url string) *UserBuilder {
	b.image = &url
	return b
}

// Build creates the user in the database
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()

	user := &domain.User{
		AuthID: b.authID,
		Email:  b.email,
		Gender: "empty",
		Goals:  datatypes.JSON([]byte("[]")),
		Image:  b.image,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// BuildAndAuthenticate creates the user via the signup API and returns the
// user's auth ID together with a bearer token for it.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (string, string) {
	t.Helper()

	token := TokenFor(t, ts, b.authID)

	body := map[string]interface{}{"email": b.email}
	if b.image != nil {
		body["image"] = *b.image
	}

	resp := DoAuthenticated(t, ts, http.MethodPost, "/auth/signup", body, token)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		t.Fatalf("signup failed with status %d: %s", resp.StatusCode, string(data))
	}

	return b.authID, token
}

// SessionBuilder creates sauna session rows
type SessionBuilder struct {
	userID    string
	duration  int
	temp      float64
	humidity  float64
	createdAt time.Time
}

// NewSessionBuilder creates a new SessionBuilder with default values
func NewSessionBuilder(userID string) *SessionBuilder {
	return &SessionBuilder{
		userID:   userID,
		duration: 900,
		temp:     80,
		humidity: 20,
	}
}

// WithCreatedAt pins the creation timestamp
func (b *SessionBuilder) WithCreatedAt(ts time.Time) *SessionBuilder {
	b.createdAt = ts
	return b
}

// WithDuration sets the duration in seconds
func (b *SessionBuilder) WithDuration(seconds int) *SessionBuilder {
	b.duration = seconds
	return b
}

// Build creates the session in the database
func (b *SessionBuilder) Build(t *testing.T, db *gorm.DB) *domain.SaunaSession {
	t.Helper()

	now := time.Now()
	session := &domain.SaunaSession{
		UserID:          b.userID,
		DurationSeconds: b.duration,
		TemperatureC:    b.temp,
		HumidityPercent: b.humidity,
		StartedAt:       now.Add(-time.Duration(b.duration) * time.Second),
		StoppedAt:       now,
		Brief:           "test session",
		AxisData:        datatypes.JSON([]byte(`[]`)),
		CreatedAt:       b.createdAt,
	}
	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return session
}

// DoAuthenticated performs a request with an optional bearer token and JSON body.
func DoAuthenticated(t *testing.T, ts *TestServer, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = strings.NewReader(string(data))
	}

	req, err := http.NewRequest(method, ts.URL(path), reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

// DoRaw performs a request with a raw string body, for malformed-payload cases.
func DoRaw(t *testing.T, ts *TestServer, method, path, rawBody, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL(path), strings.NewReader(rawBody))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}
