package repositories

import (
	"fmt"
	"shoestore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMShoeRepository is a GORM implementation of ShoeRepository.
type GORMShoeRepository struct {
	db *gorm.DB
}

// NewGORMShoeRepository creates a new instance of GORMShoeRepository.
func NewGORMShoeRepository(db *gorm.DB) *GORMShoeRepository {
	return &GORMShoeRepository{
		db: db,
	}
}

// GetAll retrieves all shoes from the database.
func (r *GORMShoeRepository) GetAll() ([]models.Shoe, error) {
	var shoes []models.Shoe
	if err := r.db.Find(&shoes).Error; err != nil {
		return nil, fmt.Errorf("failed to get all shoes: %w", err)
	}
	return shoes, nil
}

// GetByID retrieves a single shoe by its ID from the database.
func (r *GORMShoeRepository) GetByID(id string) (*models.Shoe, error) {
	var shoe models.Shoe
	if err := r.db.First(&shoe, "shoe_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("shoe with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get shoe by ID %s: %w", id, err)
	}
	return &shoe, nil
}

// GetTrending retrieves all shoes currently flagged as trending.
func (r *GORMShoeRepository) GetTrending() ([]models.Shoe, error) {
	var shoes []models.Shoe
	if err := r.db.Where("is_trending = ?", true).Find(&shoes).Error; err != nil {
		return nil, fmt.Errorf("failed to get trending shoes: %w", err)
	}
	return shoes, nil
}

// GetSoldOut retrieves all shoes currently flagged as sold out.
func (r *GORMShoeRepository) GetSoldOut() ([]models.Shoe, error) {
	var shoes []models.Shoe
	if err := r.db.Where("is_sold_out = ?", true).Find(&shoes).Error; err != nil {
		return nil, fmt.Errorf("failed to get sold out shoes: %w", err)
	}
	return shoes, nil
}

// Create creates a new shoe in the database, generating an ID when none is set.
func (r *GORMShoeRepository) Create(shoe *models.Shoe) error {
	if shoe.ShoeID == "" {
		shoe.ShoeID = uuid.New().String()
	}
	if err := r.db.Create(shoe).Error; err != nil {
		return fmt.Errorf("failed to create shoe: %w", err)
	}
	return nil
}

// Update applies a partial update to an existing shoe and returns the
// updated record. Nil fields in updates are left untouched.
func (r *GORMShoeRepository) Update(id string, updates models.ShoeUpdates) (*models.Shoe, error) {
	shoe, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if updates.Name != nil {
		fields["name"] = *updates.Name
	}
	if updates.Price != nil {
		fields["price"] = *updates.Price
	}
	if updates.IsTrending != nil {
		fields["is_trending"] = *updates.IsTrending
	}
	if updates.IsSoldOut != nil {
		fields["is_sold_out"] = *updates.IsSoldOut
	}
	if len(fields) == 0 {
		// Nothing to change; return the current record.
		return shoe, nil
	}

	if err := r.db.Model(shoe).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("failed to update shoe %s: %w", id, err)
	}
	return shoe, nil
}

// MarkSoldOut sets the sold-out flag on a shoe regardless of its prior value.
func (r *GORMShoeRepository) MarkSoldOut(id string) (*models.Shoe, error) {
	shoe, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(shoe).Update("is_sold_out", true).Error; err != nil {
		return nil, fmt.Errorf("failed to mark shoe %s as sold out: %w", id, err)
	}
	return shoe, nil
}

// Delete removes a shoe by its ID and returns the record as it was
// before deletion.
func (r *GORMShoeRepository) Delete(id string) (*models.Shoe, error) {
	shoe, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	res := r.db.Delete(&models.Shoe{}, "shoe_id = ?", id)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to delete shoe %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("shoe with ID %s not found for deletion", id)
	}
	return shoe, nil
}
