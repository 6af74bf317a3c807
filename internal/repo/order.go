package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mdshopp/storefront/internal/models"
	"github.com/mdshopp/storefront/pkg/kvstore"
)

// OrdersKey is the storage key of the order blob: one JSON array holding
// every order ever placed, oldest first.
const OrdersKey = "md-shopp-orders"

type OrderRepo struct {
	Store kvstore.Store
}

func decodeOrders(raw string, found bool) ([]models.Order, error) {
	if !found || raw == "" {
		return []models.Order{}, nil
	}
	var orders []models.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, OrdersKey, err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

func encodeOrders(orders []models.Order) (string, error) {
	b, err := json.Marshal(orders)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CreateOrder appends order to the blob. Ids are unique and increasing: an
// id not above the newest stored one is bumped past it, and order.ID is
// updated to the stored value.
func (r *OrderRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.Store.Update(ctx, OrdersKey, func(raw string, found bool) (string, error) {
		orders, err := decodeOrders(raw, found)
		if err != nil {
			return "", err
		}
		if n := len(orders); n > 0 && order.ID <= orders[n-1].ID {
			order.ID = orders[n-1].ID + 1
		}
		return encodeOrders(append(orders, *order))
	})
}

func (r *OrderRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	raw, found, err := r.Store.Get(ctx, OrdersKey)
	if err != nil {
		return nil, err
	}
	return decodeOrders(raw, found)
}

func (r *OrderRepo) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	orders, err := r.ListOrders(ctx)
	if err != nil {
		return models.Order{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

// UpdateStatus rewrites the status of one order and leaves the rest of the
// blob as it was.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (models.Order, error) {
	var updated models.Order
	err := r.Store.Update(ctx, OrdersKey, func(raw string, found bool) (string, error) {
		orders, err := decodeOrders(raw, found)
		if err != nil {
			return "", err
		}
		idx := -1
		for i := range orders {
			if orders[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return "", ErrNotFound
		}
		orders[idx].Status = status
		updated = orders[idx]
		return encodeOrders(orders)
	})
	if err != nil {
		return models.Order{}, err
	}
	return updated, nil
}
