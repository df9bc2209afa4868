package models

import "time"

// Shoe represents a single shoe product in the inventory.
type Shoe struct {
	ShoeID     string    `json:"shoeId" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string    `json:"name" validate:"required,min=1,max=100"`
	Price      int       `json:"price" validate:"gte=0"`
	IsTrending bool      `json:"isTrending"`
	IsSoldOut  bool      `json:"isSoldOut"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// ShoeUpdates carries the optional fields of a partial update.
// A nil pointer means "leave this field unchanged".
type ShoeUpdates struct {
	Name       *string `validate:"omitempty,min=1,max=100"`
	Price      *int    `validate:"omitempty,gte=0"`
	IsTrending *bool
	IsSoldOut  *bool
}
