package repositories

import (
	"errors"

	"catalog/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned by UserRepository lookups that match nothing.
	ErrUserNotFound = errors.New("user not found")

	ErrUsernameTaken   = errors.New("username already taken")
	ErrEmailRegistered = errors.New("email already registered")
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id uuid.UUID) (*models.User, error)
}
