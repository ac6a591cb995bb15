package services

import (
	"encoding/json"
	"time"

	"catalog/internal/dto"
	"catalog/internal/logger"
	"catalog/internal/mapper"
	"catalog/internal/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	mapper    mapper.ProductMapper
	publisher EventPublisher // optional
	log       zerolog.Logger
}

// NewProductService creates a new ProductService. publisher may be nil, in which
// case no product events are emitted.
func NewProductService(repo repositories.ProductRepository, mapper mapper.ProductMapper, publisher EventPublisher, log zerolog.Logger) *ProductService {
	return &ProductService{
		repo:      repo,
		mapper:    mapper,
		publisher: publisher,
		log:       log.With().Str(logger.KeyTag, "ProductService").Logger(),
	}
}

// Get retrieves a single product by its ID.
func (s *ProductService) Get(id uuid.UUID) (dto.InfoProduct, error) {
	product, ok := s.repo.FindByID(id)
	if !ok {
		return dto.InfoProduct{}, &ProductNotFoundError{ID: id}
	}
	return s.mapper.ToInfoProduct(product), nil
}

// GetAll retrieves all products.
func (s *ProductService) GetAll() []dto.InfoProduct {
	return s.mapper.ToInfoProducts(s.repo.FindAll())
}

// Create stores a new product and returns its generated ID.
func (s *ProductService) Create(productDto dto.Product) uuid.UUID {
	product := s.repo.Save(s.mapper.ToProduct(productDto))
	s.log.Info().Str(logger.KeyProductID, product.ID.String()).Msg("product created")

	info := s.mapper.ToInfoProduct(product)
	s.publish(ProductCreated, product.ID, &info)
	return product.ID
}

// Update replaces the name, price and description of an existing product.
func (s *ProductService) Update(id uuid.UUID, productDto dto.Product) error {
	existing, ok := s.repo.FindByID(id)
	if !ok {
		return &ProductNotFoundError{ID: id}
	}

	product := s.repo.Save(s.mapper.Merge(existing, productDto))
	s.log.Info().Str(logger.KeyProductID, id.String()).Msg("product updated")

	info := s.mapper.ToInfoProduct(product)
	s.publish(ProductUpdated, product.ID, &info)
	return nil
}

// Delete removes a product. Unknown IDs are ignored.
func (s *ProductService) Delete(id uuid.UUID) {
	s.repo.Delete(id)
	s.log.Info().Str(logger.KeyProductID, id.String()).Msg("product deleted")
	s.publish(ProductDeleted, id, nil)
}

// publish emits a product event. Failures are logged only: the change is
// already stored at this point.
func (s *ProductService) publish(eventType string, id uuid.UUID, product *dto.InfoProduct) {
	if s.publisher == nil {
		return
	}

	log := s.log.With().
		Str(logger.KeyProductID, id.String()).
		Str(logger.KeyRoutingKey, eventType).
		Logger()

	body, err := json.Marshal(ProductEvent{
		Type:       eventType,
		ProductID:  id,
		Product:    product,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal product event")
		return
	}

	if err := s.publisher.Publish(EventsExchange, eventType, body); err != nil {
		log.Warn().Err(err).Msg("failed to publish product event")
		return
	}
	log.Debug().Msg("published product event")
}
