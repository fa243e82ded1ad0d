package repositories

import "sbfoods/internal/models"

// RestaurantFilter narrows public restaurant listings.
type RestaurantFilter struct {
	Search  string
	Cuisine string
}

// UserRepository defines the interface for user and restaurant data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	GetByIDs(ids []string) ([]models.User, error)

	FindRestaurants(filter RestaurantFilter) ([]models.User, error)
	FindPromotedRestaurants() ([]models.User, error)
	FindTopRestaurants(limit int) ([]models.User, error)
	FindPendingRestaurants() ([]models.User, error)
	ListNonAdmin() ([]models.User, error)

	CountByRole(role string) (int64, error)
	CountApprovedRestaurants() (int64, error)

	SetRestaurantApproval(id string, approved bool) error
	ReplacePromotions(ids []string) error
}
