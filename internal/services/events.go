package services

import (
	"time"

	"catalog/internal/dto"

	"github.com/google/uuid"
)

const (
	EventsExchange = "catalog"

	ProductCreated = "product.created"
	ProductUpdated = "product.updated"
	ProductDeleted = "product.deleted"
)

// EventPublisher delivers a message body to an exchange under a routing key.
// *rabbitmq.Client satisfies it.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// ProductEvent is the message published after a product changes.
type ProductEvent struct {
	Type       string           `json:"type"`
	ProductID  uuid.UUID        `json:"product_id"`
	Product    *dto.InfoProduct `json:"product,omitempty"` // nil for deletions
	OccurredAt time.Time        `json:"occurred_at"`
}
