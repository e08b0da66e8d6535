package transport

import (
	"net/http"

	"tendas-backend/internal/domain"
	"tendas-backend/internal/middleware"
	"tendas-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// QuotePayload is a quote or rental inquiry from the site's forms.
type QuotePayload struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Message     string `json:"message" validate:"required"`
	ProductName string `json:"product_name" validate:"required"`
}

// ContactPayload is a general contact-form submission.
type ContactPayload struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// RequestHandler handles quote and contact submissions. Submissions are
// stateless: the response carries the terminal result and nothing is stored,
// so a failed submission is retried by simply posting again.
type RequestHandler struct {
	requests service.RequestService
	logger   *zap.Logger
}

// NewRequestHandler creates a new RequestHandler
func NewRequestHandler(requests service.RequestService, logger *zap.Logger) *RequestHandler {
	return &RequestHandler{
		requests: requests,
		logger:   logger,
	}
}

// RegisterRoutes registers the submission routes behind the given
// rate-limiting middleware chain.
func (h *RequestHandler) RegisterRoutes(r chi.Router, limit func(http.Handler) http.Handler) {
	r.Route("/api/requests", func(r chi.Router) {
		if limit != nil {
			r.Use(limit)
		}
		r.Post("/quote", h.SubmitQuote)
		r.Post("/contact", h.SubmitContact)
	})
}

// SubmitQuote handles a quote/rental inquiry.
func (h *RequestHandler) SubmitQuote(w http.ResponseWriter, r *http.Request) {
	var payload QuotePayload
	if err := middleware.DecodeAndValidate(r, &payload); err != nil {
		h.logger.Debug("Quote validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := h.requests.SubmitQuote(r.Context(), domain.QuoteRequest{
		Name:        payload.Name,
		Email:       payload.Email,
		Phone:       payload.Phone,
		Message:     payload.Message,
		ProductName: payload.ProductName,
	})

	// The result is data, not a transport error: the form UI decides how to
	// surface a failed dispatch and keeps its fields for retry.
	middleware.RespondWithJSON(w, http.StatusOK, result)
}

// SubmitContact handles a contact-form submission.
func (h *RequestHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var payload ContactPayload
	if err := middleware.DecodeAndValidate(r, &payload); err != nil {
		h.logger.Debug("Contact validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := h.requests.SubmitContact(r.Context(), domain.ContactRequest{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	})

	middleware.RespondWithJSON(w, http.StatusOK, result)
}
