package repo

import (
	"context"
	"slices"
	"sync"

	"github.com/mdshopp/storefront/internal/models"
)

// CatalogRepo keeps the product list in process memory. Edits last until
// the process exits.
type CatalogRepo struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewCatalogRepo(seed []models.Product) *CatalogRepo {
	return &CatalogRepo{products: slices.Clone(seed)}
}

func matchesCategory(p models.Product, category string) bool {
	return category == "" || category == models.CategoryAll || p.Category == category
}

// GetProducts returns the products of a category in list order, paged.
func (r *CatalogRepo) GetProducts(_ context.Context, category string, offset, limit int) (int64, []models.Product) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if matchesCategory(p, category) {
			filtered = append(filtered, p)
		}
	}

	total := int64(len(filtered))
	if offset < 0 {
		offset = 0
	}
	if offset >= len(filtered) {
		return total, []models.Product{}
	}
	end := len(filtered)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	return total, slices.Clone(filtered[offset:end])
}

func (r *CatalogRepo) All(_ context.Context) []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.products)
}

func (r *CatalogRepo) GetProduct(_ context.Context, id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// CreateProduct appends p with id = max(existing) + 1, or 1 for an empty catalog.
func (r *CatalogRepo) CreateProduct(_ context.Context, p models.Product) models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := 1
	for _, existing := range r.products {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}
	p.ID = next
	r.products = append(r.products, p)
	return p
}

func (r *CatalogRepo) PatchProduct(_ context.Context, id int, apply func(*models.Product)) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			apply(&r.products[i])
			r.products[i].ID = id
			return r.products[i], nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (r *CatalogRepo) DeleteProduct(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = slices.Delete(r.products, i, i+1)
			return nil
		}
	}
	return ErrNotFound
}
