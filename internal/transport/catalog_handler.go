package transport

import (
	"io"
	"net/http"
	"strconv"

	"tendas-backend/internal/middleware"
	"tendas-backend/internal/repository"
	"tendas-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UpdateImagesRequest carries a full replacement image list for a product.
type UpdateImagesRequest struct {
	Images []string `json:"images" validate:"required,min=1"`
}

// AddImageURLRequest adds one external image URL to a product.
type AddImageURLRequest struct {
	URL string `json:"url" validate:"required"`
}

// UploadResponse reports the outcome of a file batch plus the resulting list.
type UploadResponse struct {
	service.BatchResult
	Saved  bool     `json:"saved"`
	Images []string `json:"images"`
}

// CatalogHandler handles HTTP requests for the product catalog.
type CatalogHandler struct {
	repo   repository.CatalogRepository
	logger *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(repo repository.CatalogRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		repo:   repo,
		logger: logger,
	}
}

// RegisterRoutes registers the catalog routes. Image mutation is gated by
// the admin middleware chain.
func (h *CatalogHandler) RegisterRoutes(r chi.Router, adminOnly func(http.Handler) http.Handler) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Put("/{id}/images", h.UpdateImages)
			r.Post("/{id}/images/url", h.AddImageURL)
			r.Post("/{id}/images/files", h.UploadImages)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(adminOnly)
		r.Post("/api/catalog/reset", h.Reset)
	})
}

// List returns the catalog, optionally filtered by category.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	products := h.repo.Load(r.Context())

	if category := r.URL.Query().Get("category"); category != "" {
		filtered := products[:0]
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// Get returns a single product by id.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	for _, p := range h.repo.Load(r.Context()) {
		if p.ID == id {
			middleware.RespondWithJSON(w, http.StatusOK, p)
			return
		}
	}

	middleware.RespondWithError(w, http.StatusNotFound, "product not found")
}

// UpdateImages commits a full replacement image list for a product.
func (h *CatalogHandler) UpdateImages(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	var req UpdateImagesRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Image update validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !h.repo.UpdateImages(r.Context(), id, req.Images) {
		// The repository rejects unknown ids, all-blank lists and
		// persistence failures the same way; none of them changed state.
		middleware.RespondWithError(w, http.StatusUnprocessableEntity, "images were not saved")
		return
	}

	h.logger.Info("Product images updated", zap.Int("product_id", id))
	h.Get(w, r)
}

// AddImageURL probes an external URL and appends it to the product's images.
func (h *CatalogHandler) AddImageURL(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	var req AddImageURLRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Image URL validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	editor, err := service.NewImageSetEditor(r.Context(), h.repo, id, h.logger)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	if err := editor.AddExternal(r.Context(), req.URL); err != nil {
		middleware.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := editor.Commit(r.Context()); err != nil {
		middleware.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.logger.Info("External image added", zap.Int("product_id", id))
	middleware.RespondWithJSON(w, http.StatusOK, editor.Images())
}

// UploadImages stages a multipart batch of image files and commits the
// accepted ones. Files are settled independently: a rejected file never
// blocks the rest of the batch.
func (h *CatalogHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}

	headers := r.MultipartForm.File["images"]
	if len(headers) == 0 {
		middleware.RespondWithError(w, http.StatusBadRequest, "no files provided")
		return
	}

	editor, err := service.NewImageSetEditor(r.Context(), h.repo, id, h.logger)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	var files []service.FileUpload
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			files = append(files, service.FileUpload{Name: header.Filename})
			continue
		}
		// Read one byte past the ceiling so oversized files are detected
		// without buffering arbitrarily large bodies.
		data, err := io.ReadAll(io.LimitReader(file, service.MaxUploadBytes+1))
		file.Close()
		if err != nil {
			files = append(files, service.FileUpload{Name: header.Filename})
			continue
		}
		files = append(files, service.FileUpload{Name: header.Filename, Data: data})
	}

	result := editor.AddFiles(files)

	resp := UploadResponse{BatchResult: result}
	if result.Accepted > 0 {
		if err := editor.Commit(r.Context()); err != nil {
			middleware.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		resp.Saved = true
	}
	resp.Images = editor.Images()

	h.logger.Info("Image upload settled",
		zap.Int("product_id", id),
		zap.Int("accepted", result.Accepted),
		zap.Int("rejected", len(result.Rejected)),
	)
	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// Reset restores the built-in default catalog.
func (h *CatalogHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if !h.repo.Reset(r.Context()) {
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to reset catalog")
		return
	}

	h.logger.Info("Catalog reset to defaults")
	middleware.RespondWithJSON(w, http.StatusOK, h.repo.Load(r.Context()))
}

func (h *CatalogHandler) productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return 0, false
	}
	return id, true
}
