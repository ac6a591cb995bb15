// Package testutil provides product fixtures shared by package tests.
package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"catalog/internal/dto"
	"catalog/internal/models"
)

var (
	DefaultID      = uuid.MustParse("a5e2f58e-3c5b-4f8e-9d0b-7f3a2c1d9e40")
	DefaultCreated = time.Date(2023, time.October, 29, 12, 0, 0, 0, time.UTC)
)

// ProductBuilder builds product fixtures. The zero-argument form yields a laptop
// with a fixed id and creation time; the With* methods override single fields.
type ProductBuilder struct {
	id          uuid.UUID
	name        string
	price       decimal.Decimal
	description string
	created     time.Time
}

func NewProductBuilder() ProductBuilder {
	return ProductBuilder{
		id:          DefaultID,
		name:        "Laptop",
		price:       decimal.RequireFromString("1500.50"),
		description: "14 inch ultrabook",
		created:     DefaultCreated,
	}
}

func (b ProductBuilder) WithID(id uuid.UUID) ProductBuilder {
	b.id = id
	return b
}

func (b ProductBuilder) WithName(name string) ProductBuilder {
	b.name = name
	return b
}

func (b ProductBuilder) WithPrice(price string) ProductBuilder {
	b.price = decimal.RequireFromString(price)
	return b
}

func (b ProductBuilder) WithDescription(description string) ProductBuilder {
	b.description = description
	return b
}

func (b ProductBuilder) ID() uuid.UUID {
	return b.id
}

func (b ProductBuilder) Product() models.Product {
	return models.Product{
		ID:          b.id,
		Name:        b.name,
		Price:       b.price,
		Description: b.description,
		Created:     b.created,
	}
}

func (b ProductBuilder) ProductDto() dto.Product {
	return dto.Product{
		Name:        b.name,
		Price:       b.price,
		Description: b.description,
	}
}

func (b ProductBuilder) InfoProduct() dto.InfoProduct {
	return dto.InfoProduct{
		ID:          b.id,
		Name:        b.name,
		Price:       b.price,
		Description: b.description,
	}
}

// Products returns three distinct products sharing the builder's created time.
func (b ProductBuilder) Products() []models.Product {
	return []models.Product{
		b.Product(),
		b.WithID(uuid.MustParse("0b7d1c2e-6a4f-4b1e-8f3d-2c9e5a7b1d60")).WithName("Monitor").WithPrice("320.00").Product(),
		b.WithID(uuid.MustParse("e3c9a1b4-7d2f-4e6a-9b8c-5f1d3a2e7c80")).WithName("Keyboard").WithPrice("75.99").Product(),
	}
}

func (b ProductBuilder) InfoProducts() []dto.InfoProduct {
	products := b.Products()
	infos := make([]dto.InfoProduct, 0, len(products))
	for _, p := range products {
		infos = append(infos, dto.InfoProduct{ID: p.ID, Name: p.Name, Price: p.Price, Description: p.Description})
	}
	return infos
}
