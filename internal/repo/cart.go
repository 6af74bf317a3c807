package repo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mdshopp/storefront/internal/models"
)

// CartRepo holds one cart per visitor session.
type CartRepo struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*models.Cart
}

func NewCartRepo() *CartRepo {
	return &CartRepo{carts: make(map[uuid.UUID]*models.Cart)}
}

// GetCart returns a copy of the cart, empty when the session has none yet.
func (r *CartRepo) GetCart(_ context.Context, id uuid.UUID) *models.Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.carts[id]; ok {
		return c.Clone()
	}
	return &models.Cart{ID: id, Items: []models.CartItem{}}
}

// UpdateCart applies fn to the stored cart under the repo lock. The cart is
// left untouched when fn fails.
func (r *CartRepo) UpdateCart(_ context.Context, id uuid.UUID, fn func(*models.Cart) error) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.carts[id]
	if !ok {
		cur = &models.Cart{ID: id, Items: []models.CartItem{}}
	}
	work := cur.Clone()
	if err := fn(work); err != nil {
		return nil, err
	}
	r.carts[id] = work
	return work.Clone(), nil
}

func (r *CartRepo) DeleteCart(_ context.Context, id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, id)
}
