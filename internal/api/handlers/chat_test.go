package handlers_test

import (
	"net/http"
	"testing"

	"github.com/saunova/saunova-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHandler_Ask(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	t.Run("missing question", func(t *testing.T) {
		resp := testutil.DoAuthenticated(t, ts, http.MethodPost, "/chat/ask",
			map[string]string{}, token)
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Question is required")
	})

	t.Run("relays bridge answer", func(t *testing.T) {
		resp := testutil.DoAuthenticated(t, ts, http.MethodPost, "/chat/ask",
			map[string]string{"question": "how hot is too hot?"}, token)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		testutil.AssertJSONResponse(t, resp, &body)
		assert.Contains(t, body["answer"], "how hot is too hot?")
	})

	t.Run("bridge failure surfaces as 500", func(t *testing.T) {
		ts.Bridge.SetFailing(true)
		defer ts.Bridge.SetFailing(false)

		resp := testutil.DoAuthenticated(t, ts, http.MethodPost, "/chat/ask",
			map[string]string{"question": "anyone there?"}, token)
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusInternalServerError, "Internal server error")
	})
}
