package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/saunova/saunova-server/internal/api/response"
	"github.com/saunova/saunova-server/internal/service"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// IngestHandler receives completed-session measurements from the measurement
// pipeline. The route is unauthenticated and meant to be reachable only from
// inside the deployment.
type IngestHandler struct {
	sessions *service.SessionService
	logger   *zap.Logger
}

func NewIngestHandler(sessions *service.SessionService, logger *zap.Logger) *IngestHandler {
	return &IngestHandler{sessions: sessions, logger: logger}
}

type SessionLogRequest struct {
	Start       time.Time      `json:"start"`
	Stop        time.Time      `json:"stop"`
	Humidity    float64        `json:"humidity"`
	Elapsed     float64        `json:"elapsed"`
	UID         string         `json:"uid"`
	Temperature float64        `json:"temperature"`
	Brief       string         `json:"brief"`
	AxisData    datatypes.JSON `json:"axis_data"`
}

func (h *IngestHandler) LogSession(w http.ResponseWriter, r *http.Request) {
	var req SessionLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("malformed session log payload", zap.Error(err))
		response.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	_, err := h.sessions.Log(r.Context(), service.SessionLogInput{
		AuthID:          req.UID,
		DurationSeconds: int(req.Elapsed),
		TemperatureC:    req.Temperature,
		HumidityPercent: req.Humidity,
		StartedAt:       req.Start,
		StoppedAt:       req.Stop,
		Brief:           req.Brief,
		AxisData:        req.AxisData,
	})
	if err != nil {
		h.logger.Error("logging session failed", zap.Error(err))
		response.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	response.Success(w, map[string]string{"status": "session logged"})
}
