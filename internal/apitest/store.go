package apitest

import (
	"errors"
	"sync"

	"github.com/rogerio-castellano/inventory-console/internal/models"
)

// ErrProductNotFound is returned when a product is not found in the store.
var ErrProductNotFound = errors.New("product not found")

// Store is an in-memory product collection that assigns ids on create.
type Store struct {
	mu       sync.Mutex
	products []models.Product
	nextID   int
}

func NewStore() *Store {
	return &Store{
		products: []models.Product{},
		nextID:   1,
	}
}

// Seed adds products keeping their ids.
func (s *Store) Seed(products ...models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range products {
		s.products = append(s.products, p)
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
}

// Create adds a new product to the store.
func (s *Store) Create(d models.Draft) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := models.Product{
		ID:         s.nextID,
		Name:       d.Name,
		Quantity:   d.Quantity,
		Unit:       d.Unit,
		AlertLevel: d.AlertLevel,
	}
	s.nextID++
	s.products = append(s.products, product)
	return product
}

// GetAll returns a copy of every stored product.
func (s *Store) GetAll() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Delete removes a product from the store by its ID.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}
