package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/mdshopp/storefront/internal/models"
	"github.com/mdshopp/storefront/internal/repo"
	"github.com/mdshopp/storefront/pkg/events"
	"github.com/mdshopp/storefront/pkg/logging"
)

const NoticeItemRemoved = "The product was removed from your cart"

type CartService struct {
	Repo    *repo.CartRepo
	Catalog *repo.CatalogRepo
	Events  events.Publisher
}

func (s *CartService) GetCart(ctx context.Context, cartID uuid.UUID) *models.Cart {
	return s.Repo.GetCart(ctx, cartID)
}

// AddToCart merges by product id: an existing entry gains one unit, a new
// product is appended with quantity 1. Returns the notice shown to the shopper.
func (s *CartService) AddToCart(ctx context.Context, cartID uuid.UUID, productID int) (*models.Cart, string, error) {
	l := logging.FromContext(ctx).With("svc", "cart.add_to_cart")

	product, err := s.Catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, "", notFound(err, "product "+strconv.Itoa(productID))
	}

	cart, err := s.Repo.UpdateCart(ctx, cartID, func(c *models.Cart) error {
		if i := c.Index(productID); i >= 0 {
			c.Items[i].Quantity++
			return nil
		}
		c.Items = append(c.Items, models.CartItem{Product: product, Quantity: 1})
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	notice := fmt.Sprintf("%s was added to your cart", product.Name)
	l.Info("item_added", "cart_id", cartID, "product_id", productID)
	publish(ctx, s.Events, events.TopicCarts, cartID.String(), map[string]any{
		"type":      "item_added",
		"cartID":    cartID.String(),
		"productID": productID,
	})
	return cart, notice, nil
}

// UpdateQuantity sets the quantity of an entry. Quantities below 1 are
// clamped to 1; removal goes through RemoveItem.
func (s *CartService) UpdateQuantity(ctx context.Context, cartID uuid.UUID, productID, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}
	return s.Repo.UpdateCart(ctx, cartID, func(c *models.Cart) error {
		i := c.Index(productID)
		if i < 0 {
			return fmt.Errorf("%w: product %d is not in the cart", ErrNotFound, productID)
		}
		c.Items[i].Quantity = quantity
		return nil
	})
}

// RemoveItem drops the entry for productID. Removing an absent product is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, cartID uuid.UUID, productID int) (*models.Cart, string, error) {
	cart, err := s.Repo.UpdateCart(ctx, cartID, func(c *models.Cart) error {
		if i := c.Index(productID); i >= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	publish(ctx, s.Events, events.TopicCarts, cartID.String(), map[string]any{
		"type":      "item_removed",
		"cartID":    cartID.String(),
		"productID": productID,
	})
	return cart, NoticeItemRemoved, nil
}

func (s *CartService) ClearCart(ctx context.Context, cartID uuid.UUID) *models.Cart {
	s.Repo.DeleteCart(ctx, cartID)
	publish(ctx, s.Events, events.TopicCarts, cartID.String(), map[string]any{
		"type":   "cart_cleared",
		"cartID": cartID.String(),
	})
	return s.Repo.GetCart(ctx, cartID)
}
