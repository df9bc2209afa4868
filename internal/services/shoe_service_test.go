package services_test

import (
	"fmt"
	"testing"

	"shoestore/internal/models"
	"shoestore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockShoeRepository is a mock implementation of repositories.ShoeRepository
type MockShoeRepository struct {
	mock.Mock
}

func (m *MockShoeRepository) GetAll() ([]models.Shoe, error) {
	args := m.Called()
	return args.Get(0).([]models.Shoe), args.Error(1)
}

func (m *MockShoeRepository) GetByID(id string) (*models.Shoe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shoe), args.Error(1)
}

func (m *MockShoeRepository) GetTrending() ([]models.Shoe, error) {
	args := m.Called()
	return args.Get(0).([]models.Shoe), args.Error(1)
}

func (m *MockShoeRepository) GetSoldOut() ([]models.Shoe, error) {
	args := m.Called()
	return args.Get(0).([]models.Shoe), args.Error(1)
}

func (m *MockShoeRepository) Create(shoe *models.Shoe) error {
	args := m.Called(shoe)
	return args.Error(0)
}

func (m *MockShoeRepository) Update(id string, updates models.ShoeUpdates) (*models.Shoe, error) {
	args := m.Called(id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shoe), args.Error(1)
}

func (m *MockShoeRepository) MarkSoldOut(id string) (*models.Shoe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shoe), args.Error(1)
}

func (m *MockShoeRepository) Delete(id string) (*models.Shoe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shoe), args.Error(1)
}

func TestShoeService_GetAllShoes(t *testing.T) {
	mockRepo := new(MockShoeRepository)
	service := services.NewShoeService(mockRepo, nil)

	expectedShoes := []models.Shoe{
		{ShoeID: "1", Name: "Air Max 90", Price: 140, IsTrending: true},
		{ShoeID: "2", Name: "Classic Leather", Price: 90, IsSoldOut: true},
	}

	mockRepo.On("GetAll").Return(expectedShoes, nil).Once()

	shoes, err := service.GetAllShoes()

	assert.NoError(t, err)
	assert.Len(t, shoes, 2)
	assert.Equal(t, expectedShoes, shoes)
	mockRepo.AssertExpectations(t)
}

func TestShoeService_GetShoeByID(t *testing.T) {
	mockRepo := new(MockShoeRepository)
	service := services.NewShoeService(mockRepo, nil)

	expectedShoe := &models.Shoe{ShoeID: "1", Name: "Air Max 90", Price: 140}

	// Test successful retrieval
	mockRepo.On("GetByID", "1").Return(expectedShoe, nil).Once()
	shoe, err := service.GetShoeByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedShoe, shoe)
	mockRepo.AssertExpectations(t)

	// Test shoe not found
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("shoe with ID 99 not found")).Once()
	shoe, err = service.GetShoeByID("99")
	assert.Error(t, err)
	assert.Nil(t, shoe)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestShoeService_GetTrendingShoes(t *testing.T) {
	mockRepo := new(MockShoeRepository)
	service := services.NewShoeService(mockRepo, nil)

	trending := []models.Shoe{
		{ShoeID: "1", Name: "Air Max 90", Price: 140, IsTrending: true},
	}

	mockRepo.On("GetTrending").Return(trending, nil).Once()

	shoes, err := service.GetTrendingShoes()
	assert.NoError(t, err)
	assert.Equal(t, trending, shoes)
	mockRepo.AssertExpectations(t)
}

func TestShoeService_GetSoldOutShoes(t *testing.T) {
	mockRepo := new(MockShoeRepository)
	service := services.NewShoeService(mockRepo, nil)

	soldOut := []models.Shoe{
		{ShoeID: "2", Name: "Classic Leather", Price: 90, IsSoldOut: true},
	}

	mockRepo.On("GetSoldOut").Return(soldOut, nil).Once()

	shoes, err := service.GetSoldOutShoes()
	assert.NoError(t, err)
	assert.Equal(t, soldOut, shoes)
	mockRepo.AssertExpectations(t)
}

func TestShoeService_CreateShoe(t *testing.T) {
	mockRepo := new(MockShoeRepository)
	service := services.NewShoeService(mockRepo, nil)

	newShoe := &models.Shoe{Name: "Gel-Kayano", Price: 160, IsTrending: false, IsSoldOut: false}

	// Test successful creation
	mockRepo.On("Create", newShoe).Return(nil).Once()
	err := service.CreateShoe(newShoe)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test creation failure (e.g., database error)
	mockRepo.On("Create", newShoe).Return(fmt.Errorf("database error")).Once()
	err = service.CreateShoe(newShoe)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestShoeService_UpdateShoe(t *testing.T) {
	mockRepo := new(MockShoeRepository)
	service := services.NewShoeService(mockRepo, nil)

	newName := "Air Max 95"
	updates := models.ShoeUpdates{Name: &newName}
	updated := &models.Shoe{ShoeID: "1", Name: newName, Price: 140}

	// Test successful update
	mockRepo.On("Update", "1", updates).Return(updated, nil).Once()
	shoe, err := service.UpdateShoe("1", updates)
	assert.NoError(t, err)
	assert.Equal(t, updated, shoe)
	mockRepo.AssertExpectations(t)

	// Test update failure (shoe not found in repo)
	mockRepo.On("Update", "99", updates).Return(nil, fmt.Errorf("shoe with ID 99 not found")).Once()
	shoe, err = service.UpdateShoe("99", updates)
	assert.Error(t, err)
	assert.Nil(t, shoe)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestShoeService_MarkShoeSoldOut(t *testing.T) {
	mockRepo := new(MockShoeRepository)
	service := services.NewShoeService(mockRepo, nil)

	soldOut := &models.Shoe{ShoeID: "1", Name: "Air Max 90", Price: 140, IsSoldOut: true}

	// Test successful mark
	mockRepo.On("MarkSoldOut", "1").Return(soldOut, nil).Once()
	shoe, err := service.MarkShoeSoldOut("1")
	assert.NoError(t, err)
	assert.True(t, shoe.IsSoldOut)
	mockRepo.AssertExpectations(t)

	// Test failure (shoe not found)
	mockRepo.On("MarkSoldOut", "99").Return(nil, fmt.Errorf("shoe with ID 99 not found")).Once()
	shoe, err = service.MarkShoeSoldOut("99")
	assert.Error(t, err)
	assert.Nil(t, shoe)
	mockRepo.AssertExpectations(t)
}

func TestShoeService_DeleteShoe(t *testing.T) {
	mockRepo := new(MockShoeRepository)
	service := services.NewShoeService(mockRepo, nil)

	prior := &models.Shoe{ShoeID: "1", Name: "Air Max 90", Price: 140}

	// Test successful deletion returns the prior state
	mockRepo.On("Delete", "1").Return(prior, nil).Once()
	shoe, err := service.DeleteShoe("1")
	assert.NoError(t, err)
	assert.Equal(t, prior, shoe)
	mockRepo.AssertExpectations(t)

	// Test deletion failure (shoe not found)
	mockRepo.On("Delete", "99").Return(nil, fmt.Errorf("shoe with ID 99 not found for deletion")).Once()
	shoe, err = service.DeleteShoe("99")
	assert.Error(t, err)
	assert.Nil(t, shoe)
	assert.Contains(t, err.Error(), "not found for deletion")
	mockRepo.AssertExpectations(t)
}
