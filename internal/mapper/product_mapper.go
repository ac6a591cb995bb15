// Package mapper converts between stored products and their transfer shapes.
package mapper

import (
	"time"

	"catalog/internal/dto"
	"catalog/internal/models"

	"github.com/google/uuid"
)

// ProductMapper converts between models.Product and the dto shapes.
type ProductMapper interface {
	ToProduct(productDto dto.Product) models.Product
	ToInfoProduct(product models.Product) dto.InfoProduct
	ToInfoProducts(products []models.Product) []dto.InfoProduct
	Merge(product models.Product, productDto dto.Product) models.Product
}

type productMapper struct {
	now func() time.Time
}

// NewProductMapper creates a ProductMapper stamping new products with time.Now.
func NewProductMapper() ProductMapper {
	return NewProductMapperWithClock(time.Now)
}

// NewProductMapperWithClock creates a ProductMapper that takes creation times from now.
func NewProductMapperWithClock(now func() time.Time) ProductMapper {
	return &productMapper{now: now}
}

// ToProduct builds a product that has not been stored yet: no ID, fresh creation time.
func (m *productMapper) ToProduct(productDto dto.Product) models.Product {
	return models.Product{
		ID:          uuid.Nil,
		Name:        productDto.Name,
		Price:       productDto.Price,
		Description: productDto.Description,
		Created:     m.now(),
	}
}

func (m *productMapper) ToInfoProduct(product models.Product) dto.InfoProduct {
	return dto.InfoProduct{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
	}
}

func (m *productMapper) ToInfoProducts(products []models.Product) []dto.InfoProduct {
	infos := make([]dto.InfoProduct, 0, len(products))
	for _, p := range products {
		infos = append(infos, m.ToInfoProduct(p))
	}
	return infos
}

// Merge replaces the editable fields of product with those of productDto.
// ID and Created are kept.
func (m *productMapper) Merge(product models.Product, productDto dto.Product) models.Product {
	product.Name = productDto.Name
	product.Price = productDto.Price
	product.Description = productDto.Description
	return product
}
