// Package orders owns the persisted order collection: creation at checkout,
// the delivery lifecycle, admin deletion, and the read-side helpers the
// dashboard is built from.
package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Aravindhan20041506/Lacto-hub/internal/cart"
	"github.com/Aravindhan20041506/Lacto-hub/internal/models"
	"github.com/Aravindhan20041506/Lacto-hub/internal/storage"
)

// Key is the store collection that holds all orders.
const Key = "lactohub_orders"

// ErrOrderNotFound reports a stale order id, e.g. a row deleted by another
// admin action and clicked again.
var ErrOrderNotFound = errors.New("orders: order not found")

const maxIDAttempts = 5

type Service struct {
	store storage.Store
	newID IDGenerator
	now   func() time.Time
}

type Option func(*Service)

// WithIDGenerator swaps the order id scheme.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Service) { s.newID = gen }
}

// WithClock fixes the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{store: store, newID: LactoID, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) load(ctx context.Context) ([]models.Order, error) {
	data, err := s.store.Load(ctx, Key)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	var all []models.Order
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return all, nil
}

func (s *Service) save(ctx context.Context, all []models.Order) error {
	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := s.store.Save(ctx, Key, data); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}

// Create appends a new pending order built from a snapshot of the given
// items. The total is computed here and never recomputed; the caller's slice
// is copied so later cart mutations cannot reach into the order.
func (s *Service) Create(ctx context.Context, customer models.CustomerInfo, delivery models.DeliveryInfo, items []models.CartItem, paymentMethod, specialInstructions string) (models.Order, error) {
	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)

	all, err := s.load(ctx)
	if err != nil {
		return models.Order{}, err
	}

	id, err := s.uniqueID(all)
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		OrderID:             id,
		CustomerInfo:        customer,
		DeliveryInfo:        delivery,
		Items:               snapshot,
		Total:               cart.Total(snapshot),
		PaymentMethod:       paymentMethod,
		SpecialInstructions: specialInstructions,
		Status:              models.StatusPending,
		OrderDate:           s.now(),
	}

	all = append(all, order)
	if err := s.save(ctx, all); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// uniqueID draws ids until one is unused. The schemes make collisions
// vanishingly rare, but a same-millisecond clock plus bad luck is possible,
// so the registry check closes that hole.
func (s *Service) uniqueID(all []models.Order) (string, error) {
	taken := make(map[string]struct{}, len(all))
	for _, o := range all {
		taken[o.OrderID] = struct{}{}
	}
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := s.newID()
		if err != nil {
			return "", err
		}
		if _, dup := taken[id]; !dup {
			return id, nil
		}
	}
	return "", fmt.Errorf("orders: could not generate a unique id in %d attempts", maxIDAttempts)
}

// List returns every order, unfiltered. Sorting and filtering are read-side
// concerns; see NewestFirst and FilterByStatus.
func (s *Service) List(ctx context.Context) ([]models.Order, error) {
	return s.load(ctx)
}

// Find returns the order with the given id.
func (s *Service) Find(ctx context.Context, orderID string) (models.Order, error) {
	all, err := s.load(ctx)
	if err != nil {
		return models.Order{}, err
	}
	for _, o := range all {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// MarkDelivered moves a pending order to delivered and stamps the delivery
// time. Calling it on an already-delivered order changes nothing, not even
// the stamp. Absent ids report ErrOrderNotFound.
func (s *Service) MarkDelivered(ctx context.Context, orderID string) (models.Order, error) {
	all, err := s.load(ctx)
	if err != nil {
		return models.Order{}, err
	}
	for i := range all {
		if all[i].OrderID != orderID {
			continue
		}
		if all[i].Status == models.StatusDelivered {
			return all[i], nil
		}
		delivered := s.now()
		all[i].Status = models.StatusDelivered
		all[i].DeliveredDate = &delivered
		if err := s.save(ctx, all); err != nil {
			return models.Order{}, err
		}
		return all[i], nil
	}
	return models.Order{}, ErrOrderNotFound
}

// Delete removes an order for good. No tombstone is kept.
func (s *Service) Delete(ctx context.Context, orderID string) error {
	all, err := s.load(ctx)
	if err != nil {
		return err
	}
	next := make([]models.Order, 0, len(all))
	for _, o := range all {
		if o.OrderID != orderID {
			next = append(next, o)
		}
	}
	if len(next) == len(all) {
		return ErrOrderNotFound
	}
	return s.save(ctx, next)
}
