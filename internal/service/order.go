package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mdshopp/storefront/internal/models"
	"github.com/mdshopp/storefront/internal/repo"
	"github.com/mdshopp/storefront/pkg/events"
	"github.com/mdshopp/storefront/pkg/logging"
)

type OrderService struct {
	Repo   *repo.OrderRepo
	Events events.Publisher
}

// PlaceOrder appends order to the persisted order list. order.ID may be
// moved forward to stay unique.
func (s *OrderService) PlaceOrder(ctx context.Context, order *models.Order) error {
	l := logging.FromContext(ctx).With("svc", "order.place_order")

	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		l.Error("place_order_error", "reason", "cannot append order", "error", err)
		return err
	}

	l.Info("order_placed", "order_id", order.ID, "total", order.Total, "payment_method", order.PaymentMethod)
	publish(ctx, s.Events, events.TopicOrders, strconv.FormatInt(order.ID, 10), map[string]any{
		"type":          "order_created",
		"orderID":       order.ID,
		"total":         order.Total,
		"paymentMethod": order.PaymentMethod,
		"items":         len(order.Items),
	})
	return nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx)
}

func (s *OrderService) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	o, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return models.Order{}, notFound(err, "order "+strconv.FormatInt(id, 10))
	}
	return o, nil
}

// UpdateOrderStatus sets any of the four statuses on one order; no
// transition rules are enforced.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	o, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return models.Order{}, notFound(err, "order "+strconv.FormatInt(id, 10))
	}

	publish(ctx, s.Events, events.TopicOrders, strconv.FormatInt(id, 10), map[string]any{
		"type":    "order_status_updated",
		"orderID": id,
		"status":  status,
	})
	return o, nil
}
