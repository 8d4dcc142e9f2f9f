package handlers_test

import (
	"net/http"
	"testing"

	"github.com/saunova/saunova-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountPayload struct {
	User struct {
		AuthID              string   `json:"authId"`
		Email               string   `json:"email"`
		Gender              string   `json:"gender"`
		Height              float64  `json:"height"`
		Weight              float64  `json:"weight"`
		Age                 int      `json:"age"`
		Goals               []string `json:"goals"`
		OnboardingCompleted bool     `json:"onboardingCompleted"`
		Image               *string  `json:"image"`
	} `json:"user"`
	Sessions []map[string]interface{} `json:"sessions"`
	Badges   []map[string]interface{} `json:"badges"`
	Friends  []map[string]interface{} `json:"friends"`
}

func TestAuthRoutes_RequireBearer(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"login", http.MethodGet, "/auth/login"},
		{"signup", http.MethodPost, "/auth/signup"},
		{"finish setup", http.MethodPost, "/auth/finish-setup"},
		{"set image", http.MethodPost, "/image/profile"},
		{"recommendations", http.MethodGet, "/sauna/recommendations"},
		{"start session", http.MethodPost, "/sauna/start_session"},
		{"end session", http.MethodPost, "/sauna/end_session"},
		{"ask", http.MethodPost, "/chat/ask"},
	}

	for _, tt := range tests {
		t.Run(tt.name+" without header", func(t *testing.T) {
			resp := testutil.DoAuthenticated(t, ts, tt.method, tt.path, nil, "")
			defer resp.Body.Close()
			testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Missing authorization header")
		})
	}

	t.Run("garbage token", func(t *testing.T) {
		resp := testutil.DoAuthenticated(t, ts, http.MethodGet, "/auth/login", nil, "not.a.jwt")
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Invalid token")
	})
}

func TestAuthHandler_Signup(t *testing.T) {
	ts := testutil.NewTestServer(t)

	token := testutil.TokenFor(t, ts, "auth_signup_x")

	resp := testutil.DoAuthenticated(t, ts, http.MethodPost, "/auth/signup",
		map[string]string{"email": "a@b.com"}, token)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload accountPayload
	testutil.AssertJSONResponse(t, resp, &payload)

	// new users start with zero-valued profile attributes
	assert.Equal(t, "auth_signup_x", payload.User.AuthID)
	assert.Equal(t, "a@b.com", payload.User.Email)
	assert.Equal(t, 0.0, payload.User.Height)
	assert.Equal(t, 0.0, payload.User.Weight)
	assert.Equal(t, 0, payload.User.Age)
	assert.Empty(t, payload.User.Goals)
	assert.False(t, payload.User.OnboardingCompleted)

	assert.Empty(t, payload.Sessions)
	assert.Len(t, payload.Badges, 3)
	assert.NotEmpty(t, payload.Friends)
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("unknown identity", func(t *testing.T) {
		token := testutil.TokenFor(t, ts, "auth_never_signed_up")
		resp := testutil.DoAuthenticated(t, ts, http.MethodGet, "/auth/login", nil, token)
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "User not found")
	})

	t.Run("registered identity", func(t *testing.T) {
		authID, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

		resp := testutil.DoAuthenticated(t, ts, http.MethodGet, "/auth/login", nil, token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var payload accountPayload
		testutil.AssertJSONResponse(t, resp, &payload)
		assert.Equal(t, authID, payload.User.AuthID)
		assert.Len(t, payload.Badges, 3)
	})
}

func TestAuthHandler_FinishSetup(t *testing.T) {
	ts := testutil.NewTestServer(t)

	authID, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	body := map[string]interface{}{
		"gender": "female",
		"height": 168.0,
		"weight": 62.0,
		"age":    28,
		"goals":  []string{"sleep", "stress"},
	}

	resp := testutil.DoAuthenticated(t, ts, http.MethodPost, "/auth/finish-setup", body, token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload accountPayload
	testutil.AssertJSONResponse(t, resp, &payload)
	assert.True(t, payload.User.OnboardingCompleted)
	assert.Equal(t, "female", payload.User.Gender)
	assert.Equal(t, []string{"sleep", "stress"}, payload.User.Goals)

	// a fresh read reflects the same attributes
	login := testutil.DoAuthenticated(t, ts, http.MethodGet, "/auth/login", nil, token)
	defer login.Body.Close()
	require.Equal(t, http.StatusOK, login.StatusCode)

	var after accountPayload
	testutil.AssertJSONResponse(t, login, &after)
	assert.Equal(t, authID, after.User.AuthID)
	assert.True(t, after.User.OnboardingCompleted)
	assert.Equal(t, 168.0, after.User.Height)
	assert.Equal(t, 62.0, after.User.Weight)
	assert.Equal(t, 28, after.User.Age)

	t.Run("repeated identical call", func(t *testing.T) {
		again := testutil.DoAuthenticated(t, ts, http.MethodPost, "/auth/finish-setup", body, token)
		defer again.Body.Close()
		require.Equal(t, http.StatusOK, again.StatusCode)

		var repeat accountPayload
		testutil.AssertJSONResponse(t, again, &repeat)
		assert.True(t, repeat.User.OnboardingCompleted)
		assert.Equal(t, "female", repeat.User.Gender)
	})

	t.Run("identity without a user document", func(t *testing.T) {
		stranger := testutil.TokenFor(t, ts, "auth_stranger")
		resp := testutil.DoAuthenticated(t, ts, http.MethodPost, "/auth/finish-setup", body, stranger)
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "User not found")
	})
}
