package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/saunova/saunova-server/internal/api/middleware"
	"github.com/saunova/saunova-server/internal/api/response"
	"github.com/saunova/saunova-server/internal/bridge"
	"go.uber.org/zap"
)

type ChatHandler struct {
	bridge *bridge.Client
	logger *zap.Logger
}

func NewChatHandler(bridgeClient *bridge.Client, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{bridge: bridgeClient, logger: logger}
}

type AskRequest struct {
	Question string `json:"question"`
}

func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetAuthID(r.Context()); !ok {
		response.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == "" {
		response.Error(w, "Question is required", http.StatusBadRequest)
		return
	}

	data, err := h.bridge.Ask(r.Context(), req.Question)
	if err != nil {
		h.logger.Error("bridge ask failed", zap.Error(err))
		response.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response.Success(w, data)
}
