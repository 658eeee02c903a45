// Package catalog holds the product line-up shoppers browse and add to the
// cart by id.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Aravindhan20041506/Lacto-hub/internal/models"
	"github.com/Aravindhan20041506/Lacto-hub/internal/storage"
)

// Key is the store collection that holds the catalog.
const Key = "lactohub_products"

var ErrProductNotFound = errors.New("catalog: product not found")

// Default is the dairy line-up the storefront ships with. It seeds the store
// on first run; edits to the stored collection stick after that.
var Default = []models.Product{
	{ID: "milk1", Name: "Milk", Price: 60, Unit: "1 L"},
	{ID: "milk2", Name: "Toned Milk", Price: 48, Unit: "1 L"},
	{ID: "curd1", Name: "Curd", Price: 50, Unit: "500 g"},
	{ID: "paneer1", Name: "Paneer", Price: 120, Unit: "200 g"},
	{ID: "butter1", Name: "Butter", Price: 55, Unit: "100 g"},
	{ID: "ghee1", Name: "Pure Ghee", Price: 450, Unit: "500 ml"},
}

type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Products(ctx context.Context) ([]models.Product, error) {
	data, err := s.store.Load(ctx, Key)
	if errors.Is(err, storage.ErrNotFound) {
		if err := s.seed(ctx); err != nil {
			return nil, err
		}
		return append([]models.Product(nil), Default...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return products, nil
}

// Find returns the product with the given id, seeding the catalog first if
// it has never been written.
func (s *Service) Find(ctx context.Context, id string) (models.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (s *Service) seed(ctx context.Context) error {
	data, err := json.Marshal(Default)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := s.store.Save(ctx, Key, data); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}
