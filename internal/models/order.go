package models

type PaymentMethod string

const (
	PaymentWave           PaymentMethod = "wave"
	PaymentOrange         PaymentMethod = "orange"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentWave, PaymentOrange, PaymentCashOnDelivery:
		return true
	}
	return false
}

// MobileMoney reports whether the method needs a phone number.
func (m PaymentMethod) MobileMoney() bool {
	return m == PaymentWave || m == PaymentOrange
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

var statusLabels = map[OrderStatus]string{
	StatusPending:   "Pending",
	StatusConfirmed: "Confirmed",
	StatusDelivered: "Delivered",
	StatusCancelled: "Cancelled",
}

func (s OrderStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s OrderStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type OrderItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// Order is stored verbatim inside the persisted order blob.
type Order struct {
	ID            int64         `json:"id"`
	Items         []OrderItem   `json:"items"`
	Total         int64         `json:"total"`
	Customer      CustomerInfo  `json:"customer"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PhoneNumber   string        `json:"phoneNumber"`
	Status        OrderStatus   `json:"status"`
	Date          string        `json:"date"`
}

func ItemsTotal(items []OrderItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}
