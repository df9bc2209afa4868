package repositories

import (
	"shoestore/internal/models"
)

// ShoeRepository defines the interface for shoe data access.
type ShoeRepository interface {
	GetAll() ([]models.Shoe, error)
	GetByID(id string) (*models.Shoe, error)
	GetTrending() ([]models.Shoe, error)
	GetSoldOut() ([]models.Shoe, error)
	Create(shoe *models.Shoe) error
	Update(id string, updates models.ShoeUpdates) (*models.Shoe, error)
	MarkSoldOut(id string) (*models.Shoe, error)
	Delete(id string) (*models.Shoe, error)
}
