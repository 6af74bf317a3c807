package models

import "github.com/google/uuid"

type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

type Cart struct {
	ID    uuid.UUID  `json:"id"`
	Items []CartItem `json:"items"`
}

func (c *Cart) Total() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}

// Count is the number of units in the cart, shown as the header badge.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Index(productID int) int {
	for i, it := range c.Items {
		if it.ID == productID {
			return i
		}
	}
	return -1
}

// Snapshot copies the cart into the minimal item form stored on orders.
func (c *Cart) Snapshot() []OrderItem {
	out := make([]OrderItem, len(c.Items))
	for i, it := range c.Items {
		out[i] = OrderItem{ID: it.ID, Name: it.Name, Price: it.Price, Quantity: it.Quantity}
	}
	return out
}

func (c *Cart) Clone() *Cart {
	cp := &Cart{ID: c.ID, Items: make([]CartItem, len(c.Items))}
	copy(cp.Items, c.Items)
	return cp
}
