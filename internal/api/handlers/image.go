package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/saunova/saunova-server/internal/api/middleware"
	"github.com/saunova/saunova-server/internal/api/response"
	"github.com/saunova/saunova-server/internal/service"
	"go.uber.org/zap"
)

type ImageHandler struct {
	accounts *service.AccountService
	logger   *zap.Logger
}

func NewImageHandler(accounts *service.AccountService, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{accounts: accounts, logger: logger}
}

type SetProfileImageRequest struct {
	ImageURL string `json:"image_url"`
}

func (h *ImageHandler) SetProfileImage(w http.ResponseWriter, r *http.Request) {
	authID, ok := middleware.GetAuthID(r.Context())
	if !ok {
		response.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SetProfileImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ImageURL == "" {
		response.Error(w, "Image URL is required", http.StatusBadRequest)
		return
	}

	if err := h.accounts.SetProfileImage(r.Context(), authID, req.ImageURL); err != nil {
		h.logger.Error("set profile image failed", zap.Error(err))
		response.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response.Message(w, "Profile image updated successfully")
}

func (h *ImageHandler) DeleteProfileImage(w http.ResponseWriter, r *http.Request) {
	authID, ok := middleware.GetAuthID(r.Context())
	if !ok {
		response.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.accounts.ClearProfileImage(r.Context(), authID); err != nil {
		h.logger.Error("delete profile image failed", zap.Error(err))
		response.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response.Message(w, "Profile image deleted successfully")
}
