package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saunova/saunova-server/internal/bridge"
	"go.uber.org/zap"
)

const askTimeout = 60 * time.Second

// ChatSocketHandler relays websocket chat frames to the bridge service.
// One connection, one read loop; each question is forwarded synchronously.
type ChatSocketHandler struct {
	bridge   *bridge.Client
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewChatSocketHandler(bridgeClient *bridge.Client, logger *zap.Logger) *ChatSocketHandler {
	return &ChatSocketHandler{
		bridge: bridgeClient,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

type chatFrame struct {
	Question string `json:"question"`
}

type chatReply struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func (h *ChatSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var frame chatFrame
		if err := json.Unmarshal(msg, &frame); err != nil {
			h.writeReply(conn, chatReply{Type: "error", Error: "Invalid message format. Expected JSON."})
			continue
		}
		if frame.Question == "" {
			h.writeReply(conn, chatReply{Type: "error", Error: "Question is required"})
			continue
		}

		ctx, cancel := context.WithTimeout(r.Context(), askTimeout)
		data, err := h.bridge.Ask(ctx, frame.Question)
		cancel()
		if err != nil {
			h.logger.Warn("bridge ask over websocket failed", zap.Error(err))
			h.writeReply(conn, chatReply{Type: "error", Error: "Chat service unavailable"})
			continue
		}

		h.writeReply(conn, chatReply{Type: "answer", Content: data})
	}
}

func (h *ChatSocketHandler) writeReply(conn *websocket.Conn, reply chatReply) {
	if err := conn.WriteJSON(reply); err != nil {
		h.logger.Warn("websocket write failed", zap.Error(err))
	}
}
