package models

import "time"

// Order status lifecycle: pending until the admin marks it delivered.
const (
	StatusPending   = "pending"
	StatusDelivered = "delivered"
)

// Delivery slots offered by the storefront.
const (
	DeliveryMorning = "morning"
	DeliveryEvening = "evening"
)

// Payment methods recorded on an order. Nothing is charged here; the value
// only tells the delivery person whether to collect cash.
const (
	PaymentCOD    = "cod"
	PaymentOnline = "online"
)

type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type DeliveryInfo struct {
	Address      string `json:"address"`
	Landmark     string `json:"landmark"`
	DeliveryTime string `json:"deliveryTime"`
}

// Order is the frozen record of one checkout. Items and Total are snapshots
// taken at creation time; later cart activity never touches them.
type Order struct {
	OrderID             string       `json:"orderId"`
	CustomerInfo        CustomerInfo `json:"customerInfo"`
	DeliveryInfo        DeliveryInfo `json:"deliveryInfo"`
	Items               []CartItem   `json:"items"`
	Total               float64      `json:"total"`
	PaymentMethod       string       `json:"paymentMethod"`
	SpecialInstructions string       `json:"specialInstructions,omitempty"`
	Status              string       `json:"status"`
	OrderDate           time.Time    `json:"orderDate"`
	DeliveredDate       *time.Time   `json:"deliveredDate,omitempty"`
}
