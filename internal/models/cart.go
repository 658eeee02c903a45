package models

// CartItem is one line of the shopper's cart. The cart holds at most one
// entry per product id; a repeat add bumps Quantity instead.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
