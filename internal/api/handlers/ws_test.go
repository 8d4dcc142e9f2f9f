package handlers_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/saunova/saunova-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wsReply struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content"`
	Error   string          `json:"error"`
}

func TestChatSocketHandler(t *testing.T) {
	ts := testutil.NewTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.BaseURL(), "http") + "/chat/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	t.Run("question gets an answer frame", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(map[string]string{"question": "steam or dry?"}))

		var reply wsReply
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, "answer", reply.Type)
		assert.Contains(t, string(reply.Content), "steam or dry?")
	})

	t.Run("empty question gets an error frame", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(map[string]string{"question": ""}))

		var reply wsReply
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, "error", reply.Type)
	})

	t.Run("non-json frame gets an error frame and keeps the connection", func(t *testing.T) {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

		var reply wsReply
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, "error", reply.Type)

		// connection still usable
		require.NoError(t, conn.WriteJSON(map[string]string{"question": "still there?"}))
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, "answer", reply.Type)
	})
}
