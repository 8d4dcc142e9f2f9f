package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saunova/saunova-server/internal/api/middleware"
	"github.com/saunova/saunova-server/internal/api/response"
	"github.com/saunova/saunova-server/internal/bridge"
	"github.com/saunova/saunova-server/internal/domain"
	"github.com/saunova/saunova-server/internal/repository"
	"go.uber.org/zap"
)

type SaunaHandler struct {
	userRepo repository.UserRepository
	bridge   *bridge.Client
	logger   *zap.Logger
}

func NewSaunaHandler(userRepo repository.UserRepository, bridgeClient *bridge.Client, logger *zap.Logger) *SaunaHandler {
	return &SaunaHandler{userRepo: userRepo, bridge: bridgeClient, logger: logger}
}

// StartSessionRequest fields are pointers so missing keys and wrong JSON types
// are both rejected before any bridge call happens.
type StartSessionRequest struct {
	Temperature   *float64 `json:"temperature"`
	Humidity      *float64 `json:"humidity"`
	SessionLength *float64 `json:"session_length"`
}

func (h *SaunaHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	authID, ok := middleware.GetAuthID(r.Context())
	if !ok {
		response.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.userRepo.GetByAuthID(r.Context(), authID)
	if err != nil {
		h.logger.Error("loading user for recommendations failed", zap.Error(err))
		response.Error(w, "Failed to get sauna recommendations", http.StatusInternalServerError)
		return
	}
	if user == nil {
		response.Error(w, "No recommendations found", http.StatusNotFound)
		return
	}

	var goals []string
	if user.Goals != nil {
		// Stored as jsonb; a decode failure just forwards an empty goal list.
		_ = json.Unmarshal(user.Goals, &goals)
	}

	data, err := h.bridge.Recommendations(r.Context(), bridge.RecommendationRequest{
		Age:    user.Age,
		Gender: user.Gender,
		Height: user.Height,
		Weight: user.Weight,
		Goals:  goals,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoData) {
			response.Error(w, "No recommendations found", http.StatusNotFound)
			return
		}
		h.logger.Error("bridge recommendations failed", zap.Error(err))
		response.Error(w, "Failed to get sauna recommendations", http.StatusInternalServerError)
		return
	}

	response.Success(w, data)
}

func (h *SaunaHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	authID, ok := middleware.GetAuthID(r.Context())
	if !ok {
		response.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Temperature == nil || req.Humidity == nil || req.SessionLength == nil {
		response.Error(w, "Invalid input data", http.StatusBadRequest)
		return
	}

	// Fire-and-forget; the response does not wait for bridge acknowledgment.
	h.bridge.NotifySessionStart(*req.Temperature, *req.Humidity, *req.SessionLength, authID)

	response.Success(w, map[string]string{"status": "sauna session started"})
}

func (h *SaunaHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetAuthID(r.Context()); !ok {
		response.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := h.bridge.EndSession(r.Context())
	if err != nil {
		h.logger.Error("bridge end session failed", zap.Error(err))
		response.Error(w, "Failed to end sauna session", http.StatusInternalServerError)
		return
	}

	response.Success(w, data)
}
