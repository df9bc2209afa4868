package services

import (
	"encoding/json"
	"log"

	"shoestore/internal/models"
	"shoestore/internal/repositories"
	"shoestore/pkg/rabbitmq"
)

// ShoeService handles business logic related to shoes. Every operation
// is a direct delegation to the repository; mutations that change
// availability additionally publish an inventory event when a RabbitMQ
// client is configured.
type ShoeService struct {
	repo     repositories.ShoeRepository
	mqClient *rabbitmq.Client // may be nil, which disables event publication
}

// NewShoeService creates a new ShoeService.
func NewShoeService(repo repositories.ShoeRepository, mqClient *rabbitmq.Client) *ShoeService {
	return &ShoeService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllShoes retrieves all shoes.
func (s *ShoeService) GetAllShoes() ([]models.Shoe, error) {
	return s.repo.GetAll()
}

// GetShoeByID retrieves a single shoe by its ID.
func (s *ShoeService) GetShoeByID(id string) (*models.Shoe, error) {
	return s.repo.GetByID(id)
}

// GetTrendingShoes retrieves all shoes flagged as trending.
func (s *ShoeService) GetTrendingShoes() ([]models.Shoe, error) {
	return s.repo.GetTrending()
}

// GetSoldOutShoes retrieves all shoes flagged as sold out.
func (s *ShoeService) GetSoldOutShoes() ([]models.Shoe, error) {
	return s.repo.GetSoldOut()
}

// CreateShoe creates a new shoe and publishes a shoe.created event.
func (s *ShoeService) CreateShoe(shoe *models.Shoe) error {
	if err := s.repo.Create(shoe); err != nil {
		return err
	}
	s.publishEvent("shoe.created", shoe)
	return nil
}

// UpdateShoe applies a partial update to an existing shoe.
func (s *ShoeService) UpdateShoe(id string, updates models.ShoeUpdates) (*models.Shoe, error) {
	return s.repo.Update(id, updates)
}

// MarkShoeSoldOut sets the sold-out flag on a shoe and publishes a
// shoe.sold_out event.
func (s *ShoeService) MarkShoeSoldOut(id string) (*models.Shoe, error) {
	shoe, err := s.repo.MarkSoldOut(id)
	if err != nil {
		return nil, err
	}
	s.publishEvent("shoe.sold_out", shoe)
	return shoe, nil
}

// DeleteShoe deletes a shoe by its ID and returns its prior state.
func (s *ShoeService) DeleteShoe(id string) (*models.Shoe, error) {
	return s.repo.Delete(id)
}

// publishEvent sends an inventory event to RabbitMQ. Publication
// failures are logged and never fail the originating mutation.
func (s *ShoeService) publishEvent(event string, shoe *models.Shoe) {
	if s.mqClient == nil {
		return
	}

	message := map[string]interface{}{
		"event":     event,
		"shoeId":    shoe.ShoeID,
		"name":      shoe.Name,
		"isSoldOut": shoe.IsSoldOut,
	}
	body, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to marshal %s event for shoe %s: %v", event, shoe.ShoeID, err)
		return
	}
	if err := s.mqClient.Publish(body); err != nil {
		log.Printf("Warning: failed to publish %s event for shoe %s: %v", event, shoe.ShoeID, err)
	}
}
