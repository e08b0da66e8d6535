package repository

import (
	"context"
	"encoding/json"
	"strings"

	"tendas-backend/internal/domain"
	"tendas-backend/internal/storage"

	"go.uber.org/zap"
)

// CatalogKey is the storage key holding the full catalog as a JSON array.
const CatalogKey = "catalog:products"

// CatalogRepository is the single source of truth for the product collection.
//
// Every operation is total: failures are reported through the boolean result
// (or by substituting the default catalog on load), never by panicking or
// bubbling an error to the caller. A failed operation leaves the persisted
// collection untouched, so the blast radius of any failure is one user action.
type CatalogRepository interface {
	// Load returns the persisted catalog, or the default seed when nothing
	// is persisted or the persisted value cannot be parsed. The fallback is
	// not written back.
	Load(ctx context.Context) []domain.Product
	// Save persists the full collection, overwriting any prior value.
	Save(ctx context.Context, products []domain.Product) bool
	// UpdateImages replaces one product's image list. Entries are trimmed
	// and blanks dropped; the operation is rejected when the filtered list
	// is empty or no product matches id. On success the primary image is
	// the first filtered entry.
	UpdateImages(ctx context.Context, id int, images []string) bool
	// Reset overwrites the persisted catalog with the default seed.
	Reset(ctx context.Context) bool
}

type catalogRepository struct {
	kv     storage.KV
	logger *zap.Logger
}

// NewCatalogRepository creates a CatalogRepository backed by the given KV.
func NewCatalogRepository(kv storage.KV, logger *zap.Logger) CatalogRepository {
	return &catalogRepository{kv: kv, logger: logger}
}

func (r *catalogRepository) Load(ctx context.Context) []domain.Product {
	raw, ok, err := r.kv.Get(ctx, CatalogKey)
	if err != nil {
		r.logger.Error("Failed to read catalog from storage, serving defaults", zap.Error(err))
		return DefaultProducts()
	}
	if !ok {
		return DefaultProducts()
	}

	var products []domain.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		r.logger.Error("Failed to parse persisted catalog, serving defaults", zap.Error(err))
		return DefaultProducts()
	}

	return products
}

func (r *catalogRepository) Save(ctx context.Context, products []domain.Product) bool {
	raw, err := json.Marshal(products)
	if err != nil {
		r.logger.Error("Failed to serialize catalog", zap.Error(err))
		return false
	}

	if err := r.kv.Set(ctx, CatalogKey, string(raw)); err != nil {
		r.logger.Error("Failed to persist catalog", zap.Error(err))
		return false
	}

	return true
}

func (r *catalogRepository) UpdateImages(ctx context.Context, id int, images []string) bool {
	valid := FilterImageRefs(images)
	if len(valid) == 0 {
		r.logger.Warn("Rejected image update with no valid image references", zap.Int("product_id", id))
		return false
	}

	products := r.Load(ctx)
	for i := range products {
		if products[i].ID != id {
			continue
		}
		products[i].Image = valid[0]
		products[i].Images = valid
		return r.Save(ctx, products)
	}

	r.logger.Warn("Rejected image update for unknown product", zap.Int("product_id", id))
	return false
}

func (r *catalogRepository) Reset(ctx context.Context) bool {
	return r.Save(ctx, DefaultProducts())
}

// FilterImageRefs trims entries and drops blanks. Empty or whitespace-only
// strings are never valid image references.
func FilterImageRefs(images []string) []string {
	var valid []string
	for _, img := range images {
		if trimmed := strings.TrimSpace(img); trimmed != "" {
			valid = append(valid, trimmed)
		}
	}
	return valid
}
