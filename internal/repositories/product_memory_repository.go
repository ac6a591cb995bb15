package repositories

import (
	"sync"

	"catalog/internal/models"

	"github.com/google/uuid"
)

// InMemoryProductRepository is a map-backed implementation of ProductRepository.
type InMemoryProductRepository struct {
	products map[uuid.UUID]models.Product
	mu       sync.RWMutex
}

// NewInMemoryProductRepository creates an empty InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make(map[uuid.UUID]models.Product),
	}
}

// FindByID returns the product stored under id. The nil UUID is never stored,
// so looking it up always reports absence.
func (r *InMemoryProductRepository) FindByID(id uuid.UUID) (models.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	return product, ok
}

// FindAll returns all products in no particular order.
func (r *InMemoryProductRepository) FindAll() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList
}

// Save inserts the product, or replaces the one stored under the same ID.
// A product without an ID gets a freshly generated one.
func (r *InMemoryProductRepository) Save(product models.Product) models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.ID] = product
	return product
}

// Delete removes a product by its ID. Unknown IDs are ignored.
func (r *InMemoryProductRepository) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
}
