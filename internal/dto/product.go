// Package dto holds the transfer shapes exchanged with callers of the catalog.
package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the input shape used to create or update a product.
type Product struct {
	Name        string          `json:"name" validate:"required,min=3,max=100"`
	Price       decimal.Decimal `json:"price" validate:"required,gt=0"`
	Description string          `json:"description" validate:"omitempty,max=500"`
}

// InfoProduct is the read-only projection of a stored product.
type InfoProduct struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}
