package domain

// Product represents one catalog entry (tent, cover, shade port, etc.).
// The Image field is the primary image and always mirrors Images[0] after
// any mutation; a persisted product carries at least one image.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Capacity    string   `json:"capacity,omitempty"`
	Weight      string   `json:"weight,omitempty"`
	Seasonality string   `json:"seasonality,omitempty"`
}

// Clone returns a deep copy so callers can mutate image lists without
// aliasing the source slice.
func (p Product) Clone() Product {
	out := p
	out.Images = append([]string(nil), p.Images...)
	return out
}

// CloneProducts deep-copies a catalog collection.
func CloneProducts(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}
