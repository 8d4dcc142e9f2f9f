package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saunova/saunova-server/internal/api/middleware"
	"github.com/saunova/saunova-server/internal/api/response"
	"github.com/saunova/saunova-server/internal/domain"
	"github.com/saunova/saunova-server/internal/service"
	"go.uber.org/zap"
)

type AuthHandler struct {
	accounts *service.AccountService
	logger   *zap.Logger
}

func NewAuthHandler(accounts *service.AccountService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, logger: logger}
}

type SignupRequest struct {
	Email string  `json:"email"`
	Image *string `json:"image"`
}

type FinishSetupRequest struct {
	Gender string   `json:"gender"`
	Height float64  `json:"height"`
	Weight float64  `json:"weight"`
	Age    int      `json:"age"`
	Goals  []string `json:"goals"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	authID, ok := middleware.GetAuthID(r.Context())
	if !ok {
		response.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	payload, err := h.accounts.Login(r.Context(), authID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			response.Error(w, "User not found", http.StatusNotFound)
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		response.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response.Success(w, payload)
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	authID, ok := middleware.GetAuthID(r.Context())
	if !ok {
		response.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	payload, err := h.accounts.Signup(r.Context(), authID, req.Email, req.Image)
	if err != nil {
		h.logger.Error("signup failed", zap.Error(err))
		response.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response.Success(w, payload)
}

func (h *AuthHandler) FinishSetup(w http.ResponseWriter, r *http.Request) {
	authID, ok := middleware.GetAuthID(r.Context())
	if !ok {
		response.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req FinishSetupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	payload, err := h.accounts.FinishSetup(r.Context(), authID, domain.ProfileSetup{
		Gender: req.Gender,
		Height: req.Height,
		Weight: req.Weight,
		Age:    req.Age,
		Goals:  req.Goals,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			response.Error(w, "User not found", http.StatusNotFound)
			return
		}
		h.logger.Error("finish setup failed", zap.Error(err))
		response.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response.Success(w, payload)
}
