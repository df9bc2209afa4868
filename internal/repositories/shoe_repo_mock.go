package repositories

import (
	"fmt"
	"sync"

	"shoestore/internal/models"

	"github.com/google/uuid"
)

// MockShoeRepository is an in-memory implementation of ShoeRepository.
type MockShoeRepository struct {
	shoes map[string]models.Shoe
	mu    sync.RWMutex
}

// NewMockShoeRepository creates a new instance of MockShoeRepository.
func NewMockShoeRepository() *MockShoeRepository {
	return &MockShoeRepository{
		shoes: make(map[string]models.Shoe),
	}
}

// GetAll returns all shoes.
func (r *MockShoeRepository) GetAll() ([]models.Shoe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shoeList := make([]models.Shoe, 0, len(r.shoes))
	for _, s := range r.shoes {
		shoeList = append(shoeList, s)
	}
	return shoeList, nil
}

// GetByID returns a shoe by its ID.
func (r *MockShoeRepository) GetByID(id string) (*models.Shoe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shoe, ok := r.shoes[id]
	if !ok {
		return nil, fmt.Errorf("shoe with ID %s not found", id)
	}
	return &shoe, nil
}

// GetTrending returns all shoes flagged as trending.
func (r *MockShoeRepository) GetTrending() ([]models.Shoe, error) {
	return r.filter(func(s models.Shoe) bool { return s.IsTrending })
}

// GetSoldOut returns all shoes flagged as sold out.
func (r *MockShoeRepository) GetSoldOut() ([]models.Shoe, error) {
	return r.filter(func(s models.Shoe) bool { return s.IsSoldOut })
}

func (r *MockShoeRepository) filter(keep func(models.Shoe) bool) ([]models.Shoe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shoeList := make([]models.Shoe, 0)
	for _, s := range r.shoes {
		if keep(s) {
			shoeList = append(shoeList, s)
		}
	}
	return shoeList, nil
}

// Create adds a new shoe, generating an ID when none is set.
func (r *MockShoeRepository) Create(shoe *models.Shoe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if shoe.ShoeID == "" {
		shoe.ShoeID = uuid.New().String()
	}
	r.shoes[shoe.ShoeID] = *shoe
	return nil
}

// Update applies a partial update to an existing shoe.
func (r *MockShoeRepository) Update(id string, updates models.ShoeUpdates) (*models.Shoe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	shoe, ok := r.shoes[id]
	if !ok {
		return nil, fmt.Errorf("shoe with ID %s not found", id)
	}
	if updates.Name != nil {
		shoe.Name = *updates.Name
	}
	if updates.Price != nil {
		shoe.Price = *updates.Price
	}
	if updates.IsTrending != nil {
		shoe.IsTrending = *updates.IsTrending
	}
	if updates.IsSoldOut != nil {
		shoe.IsSoldOut = *updates.IsSoldOut
	}
	r.shoes[id] = shoe
	return &shoe, nil
}

// MarkSoldOut sets the sold-out flag on a shoe.
func (r *MockShoeRepository) MarkSoldOut(id string) (*models.Shoe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	shoe, ok := r.shoes[id]
	if !ok {
		return nil, fmt.Errorf("shoe with ID %s not found", id)
	}
	shoe.IsSoldOut = true
	r.shoes[id] = shoe
	return &shoe, nil
}

// Delete removes a shoe by its ID and returns its prior state.
func (r *MockShoeRepository) Delete(id string) (*models.Shoe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	shoe, ok := r.shoes[id]
	if !ok {
		return nil, fmt.Errorf("shoe with ID %s not found for deletion", id)
	}
	delete(r.shoes, id)
	return &shoe, nil
}
