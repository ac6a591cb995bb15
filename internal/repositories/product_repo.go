package repositories

import (
	"catalog/internal/models"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	FindByID(id uuid.UUID) (models.Product, bool)
	FindAll() []models.Product
	Save(product models.Product) models.Product
	Delete(id uuid.UUID)
}
