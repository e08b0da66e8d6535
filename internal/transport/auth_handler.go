package transport

import (
	"net/http"

	"tendas-backend/internal/middleware"
	"tendas-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LoginRequest carries the admin password.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the admin token.
type LoginResponse struct {
	Token string `json:"token"`
}

// AuthHandler handles admin login for the image-management surface.
type AuthHandler struct {
	auth   service.AuthService
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger,
	}
}

// RegisterRoutes registers the login route.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/admin/login", h.Login)
}

// Login verifies the admin password and issues a token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Login validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.auth.Login(req.Password)
	if err != nil {
		h.logger.Warn("Admin login rejected")
		middleware.RespondWithError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	h.logger.Info("Admin logged in")
	middleware.RespondWithJSON(w, http.StatusOK, LoginResponse{Token: token})
}
