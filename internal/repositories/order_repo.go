package repositories

import "sbfoods/internal/models"

// OrderRepository defines the interface for order data access. Scoped getters
// apply the requester restriction in the query itself, never as a post-filter.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetOwnedByCustomer(id, customerID string) (*models.Order, error)
	GetOwnedByRestaurant(id, restaurantID string) (*models.Order, error)
	FindByCustomer(customerID string) ([]models.Order, error)
	FindByRestaurant(restaurantID string) ([]models.Order, error)
	FindAll() ([]models.Order, error)
	UpdateStatus(id, restaurantID, status string) error
	CountAll() (int64, error)
	CountByRestaurant(restaurantID string) (int64, error)
	SumRevenue() (float64, error)
	SumRevenueByRestaurant(restaurantID string) (float64, error)
}
