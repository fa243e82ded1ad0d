package models

import "time"

// Product is a menu item owned by exactly one restaurant account.
// RestaurantID never changes after creation; deletion is a hard delete.
type Product struct {
	ID           string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name         string  `json:"name" validate:"required,min=2,max=100"`
	Description  string  `json:"description" validate:"omitempty,max=500"`
	Price        float64 `json:"price" validate:"gte=0"`
	Category     string  `json:"category" validate:"omitempty,max=100"`
	ImageURL     string  `json:"imageUrl" validate:"omitempty,max=500"`
	RestaurantID string  `json:"restaurantId" gorm:"index;type:varchar(36)"`
	IsAvailable  bool    `json:"isAvailable" gorm:"default:true"`

	// Display-only expansion, filled by repositories on reads.
	RestaurantName    string `json:"restaurantName,omitempty" gorm:"-"`
	RestaurantCuisine string `json:"restaurantCuisine,omitempty" gorm:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
