package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a catalog operator allowed to modify products.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username" validate:"required,min=3,max=100"`
	Email    string    `json:"email" validate:"required,email"`
	Password string    `json:"password,omitempty" validate:"required,min=6"` // bcrypt hash once stored
	Created  time.Time `json:"created"`
}
