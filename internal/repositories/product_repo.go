package repositories

import "sbfoods/internal/models"

// ProductFilter narrows catalog reads.
type ProductFilter struct {
	Category      string
	RestaurantID  string
	Search        string
	OnlyAvailable bool
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Find(filter ProductFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetByIDs(ids []string) ([]models.Product, error)
	GetOwned(id, restaurantID string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	DeleteOwned(id, restaurantID string) error
	CountByRestaurant(restaurantID string) (int64, error)
}
