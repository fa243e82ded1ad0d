package services

import (
	"errors"

	"sbfoods/internal/apperrors"
	"sbfoods/internal/models"
	"sbfoods/internal/repositories"

	"gorm.io/gorm"
)

// RestaurantDetail is a public restaurant page: the account plus its
// available products.
type RestaurantDetail struct {
	Restaurant models.User      `json:"restaurant"`
	Products   []models.Product `json:"products"`
}

// RestaurantStats is the owner-facing dashboard summary.
type RestaurantStats struct {
	ProductsCount int64   `json:"productsCount"`
	OrdersCount   int64   `json:"ordersCount"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// RestaurantService handles public restaurant reads and the owner dashboard.
type RestaurantService struct {
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
}

// NewRestaurantService creates a new RestaurantService.
func NewRestaurantService(userRepo repositories.UserRepository, productRepo repositories.ProductRepository, orderRepo repositories.OrderRepository) *RestaurantService {
	return &RestaurantService{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// List returns approved restaurants, promoted first.
func (s *RestaurantService) List(filter repositories.RestaurantFilter) ([]models.User, error) {
	restaurants, err := s.userRepo.FindRestaurants(filter)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return sanitize(restaurants), nil
}

// Promoted returns the homepage restaurant set: the promoted restaurants,
// or the four newest approved ones when nothing is promoted.
func (s *RestaurantService) Promoted() ([]models.User, error) {
	restaurants, err := s.userRepo.FindPromotedRestaurants()
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if len(restaurants) == 0 {
		restaurants, err = s.userRepo.FindTopRestaurants(4)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
	}
	return sanitize(restaurants), nil
}

// GetWithProducts returns an approved restaurant and its available products.
// Unapproved or non-restaurant accounts read as not found.
func (s *RestaurantService) GetWithProducts(id string) (*RestaurantDetail, error) {
	restaurant, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Restaurant not found")
		}
		return nil, apperrors.Internal(err)
	}
	if restaurant.Role != models.RoleRestaurant || !restaurant.IsApproved {
		return nil, apperrors.NotFound("Restaurant not found")
	}

	products, err := s.productRepo.Find(repositories.ProductFilter{
		RestaurantID:  restaurant.ID,
		OnlyAvailable: true,
	})
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &RestaurantDetail{
		Restaurant: restaurant.Sanitized(),
		Products:   products,
	}, nil
}

// DashboardStats summarizes the calling restaurant's catalog and orders.
func (s *RestaurantService) DashboardStats(restaurantID string) (*RestaurantStats, error) {
	productsCount, err := s.productRepo.CountByRestaurant(restaurantID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	ordersCount, err := s.orderRepo.CountByRestaurant(restaurantID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	revenue, err := s.orderRepo.SumRevenueByRestaurant(restaurantID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &RestaurantStats{
		ProductsCount: productsCount,
		OrdersCount:   ordersCount,
		TotalRevenue:  revenue,
	}, nil
}

func sanitize(users []models.User) []models.User {
	out := make([]models.User, len(users))
	for i, u := range users {
		out[i] = u.Sanitized()
	}
	return out
}
