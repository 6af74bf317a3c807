package transport

import (
	"github.com/mdshopp/storefront/internal/models"
)

type ProductForm struct {
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	OriginalPrice *int64 `json:"originalPrice"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	Image         string `json:"image"`
}

type AddToCartRequest struct {
	ProductID int `json:"product_id"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	ID      string            `json:"id"`
	Items   []models.CartItem `json:"items"`
	Total   int64             `json:"total"`
	Count   int               `json:"count"`
	Message string            `json:"message,omitempty"`
}

func NewCartResponse(c *models.Cart, message string) CartResponse {
	return CartResponse{
		ID:      c.ID.String(),
		Items:   c.Items,
		Total:   c.Total(),
		Count:   c.Count(),
		Message: message,
	}
}

type CheckoutForm struct {
	Customer      models.CustomerInfo  `json:"customer"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	PhoneNumber   string               `json:"phoneNumber"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

type LabelRequest struct {
	Label string `json:"label"`
}

type SocialLinkRequest struct {
	URL string `json:"url"`
}
