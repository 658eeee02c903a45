// Package cart owns the shopper's in-progress cart: a collection of line
// items persisted as one JSON document in the store.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/Aravindhan20041506/Lacto-hub/internal/models"
	"github.com/Aravindhan20041506/Lacto-hub/internal/storage"
)

// Key is the store collection that holds the cart.
const Key = "lactohub_cart"

// ErrBadPrice rejects negative or non-finite prices instead of silently
// recording them as 0.
var ErrBadPrice = errors.New("cart: price must be a non-negative number")

// Service owns the cart collection. Every mutation reads the full
// collection, applies the change and writes it back.
type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

func (s *Service) load(ctx context.Context) ([]models.CartItem, error) {
	data, err := s.store.Load(ctx, Key)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

func (s *Service) save(ctx context.Context, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.store.Save(ctx, Key, data); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Add puts one unit of the product in the cart. A repeat add of the same id
// bumps the quantity instead of creating a second line.
func (s *Service) Add(ctx context.Context, id, name string, price float64) error {
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return ErrBadPrice
	}
	items, err := s.load(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{ID: id, Name: name, Price: price, Quantity: 1})
	}
	return s.save(ctx, items)
}

// SetQuantity overwrites the stored quantity for a line. Zero or less
// removes the line; an id that is not in the cart is ignored.
func (s *Service) SetQuantity(ctx context.Context, id string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, id)
	}
	items, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			return s.save(ctx, items)
		}
	}
	return nil
}

// Remove deletes the line with the given id. Removing an absent id is a
// no-op.
func (s *Service) Remove(ctx context.Context, id string) error {
	items, err := s.load(ctx)
	if err != nil {
		return err
	}
	next := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	return s.save(ctx, next)
}

// Items returns the current cart contents.
func (s *Service) Items(ctx context.Context) ([]models.CartItem, error) {
	return s.load(ctx)
}

// Total returns the cart value.
func (s *Service) Total(ctx context.Context) (float64, error) {
	items, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return Total(items), nil
}

// Count returns the number of units across all lines (the cart badge).
func (s *Service) Count(ctx context.Context) (int, error) {
	items, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, it := range items {
		count += it.Quantity
	}
	return count, nil
}

// Clear empties the cart by deleting its collection.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Total sums price × quantity over a set of items.
func Total(items []models.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
