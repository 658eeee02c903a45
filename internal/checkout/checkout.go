package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Aravindhan20041506/Lacto-hub/internal/cart"
	"github.com/Aravindhan20041506/Lacto-hub/internal/models"
	"github.com/Aravindhan20041506/Lacto-hub/internal/orders"
)

// ErrEmptyCart rejects a checkout with nothing to order.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// ValidationError carries the full list of messages for a rejected form.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "checkout: " + strings.Join(e.Messages, "; ")
}

type Service struct {
	cart   *cart.Service
	orders *orders.Service
}

func NewService(cartSvc *cart.Service, orderSvc *orders.Service) *Service {
	return &Service{cart: cartSvc, orders: orderSvc}
}

// PlaceOrder validates the form, snapshots the cart into a new order and
// clears the cart. A rejected form or an empty cart leaves every collection
// untouched; the cart is only cleared after the order has been persisted.
func (s *Service) PlaceOrder(ctx context.Context, f Form) (models.Order, error) {
	if msgs := Validate(f); len(msgs) > 0 {
		return models.Order{}, &ValidationError{Messages: msgs}
	}

	items, err := s.cart.Items(ctx)
	if err != nil {
		return models.Order{}, err
	}
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	customer := models.CustomerInfo{
		Name:  strings.TrimSpace(f.Name),
		Phone: strings.TrimSpace(f.Phone),
		Email: strings.TrimSpace(f.Email),
	}
	delivery := models.DeliveryInfo{
		Address:      strings.TrimSpace(f.Address),
		Landmark:     strings.TrimSpace(f.Landmark),
		DeliveryTime: f.DeliveryTime,
	}

	order, err := s.orders.Create(ctx, customer, delivery, items, f.PaymentMethod, strings.TrimSpace(f.SpecialInstructions))
	if err != nil {
		return models.Order{}, err
	}

	if err := s.cart.Clear(ctx); err != nil {
		// The order is already saved; surface the half-done state instead of
		// pretending the checkout failed.
		return order, fmt.Errorf("order %s saved but cart not cleared: %w", order.OrderID, err)
	}
	return order, nil
}
