package repositories

import (
	"fmt"
	"sync"
	"time"

	"catalog/internal/models"

	"github.com/google/uuid"
)

// InMemoryUserRepository is a map-backed implementation of UserRepository.
type InMemoryUserRepository struct {
	users map[uuid.UUID]models.User
	mu    sync.RWMutex
}

// NewInMemoryUserRepository creates an empty InMemoryUserRepository.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[uuid.UUID]models.User),
	}
}

// Create stores a new user. The repository always assigns the ID and creation
// time; usernames and emails must be unique.
func (r *InMemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return fmt.Errorf("username '%s': %w", user.Username, ErrUsernameTaken)
		}
		if u.Email == user.Email {
			return fmt.Errorf("email '%s': %w", user.Email, ErrEmailRegistered)
		}
	}

	user.ID = uuid.New()
	user.Created = time.Now()
	r.users[user.ID] = *user
	return nil
}

// GetByUsername retrieves a user by username.
func (r *InMemoryUserRepository) GetByUsername(username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username }, "username", username)
}

// GetByEmail retrieves a user by email.
func (r *InMemoryUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email }, "email", email)
}

// GetByID retrieves a user by ID.
func (r *InMemoryUserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id, ErrUserNotFound)
	}
	return &user, nil
}

func (r *InMemoryUserRepository) find(match func(models.User) bool, field, value string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with %s %s: %w", field, value, ErrUserNotFound)
}
