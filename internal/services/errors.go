package services

import (
	"errors"
	"fmt"

	"catalog/internal/repositories"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is matched by every *ProductNotFoundError.
	ErrProductNotFound = errors.New("product not found")

	// Duplicate registration errors are the repository's own sentinels.
	ErrUsernameTaken   = repositories.ErrUsernameTaken
	ErrEmailRegistered = repositories.ErrEmailRegistered

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// ProductNotFoundError reports a lookup of an unknown product.
type ProductNotFoundError struct {
	ID uuid.UUID
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product with uuid: %s not found", e.ID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}
