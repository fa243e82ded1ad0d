package services

import (
	"errors"

	"sbfoods/internal/apperrors"
	"sbfoods/internal/models"
	"sbfoods/internal/repositories"

	"gorm.io/gorm"
)

// PlatformStats is the admin dashboard aggregate. Revenue sums totalPrice
// over every order regardless of status.
type PlatformStats struct {
	TotalUsers       int64   `json:"totalUsers"`
	TotalRestaurants int64   `json:"totalRestaurants"`
	TotalOrders      int64   `json:"totalOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

// AdminService handles platform-wide aggregation and restaurant state
// toggles.
type AdminService struct {
	userRepo  repositories.UserRepository
	orderRepo repositories.OrderRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(userRepo repositories.UserRepository, orderRepo repositories.OrderRepository) *AdminService {
	return &AdminService{
		userRepo:  userRepo,
		orderRepo: orderRepo,
	}
}

// Stats returns the platform aggregate counts.
func (s *AdminService) Stats() (*PlatformStats, error) {
	totalUsers, err := s.userRepo.CountByRole(models.RoleCustomer)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	totalRestaurants, err := s.userRepo.CountApprovedRestaurants()
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	totalOrders, err := s.orderRepo.CountAll()
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	totalRevenue, err := s.orderRepo.SumRevenue()
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &PlatformStats{
		TotalUsers:       totalUsers,
		TotalRestaurants: totalRestaurants,
		TotalOrders:      totalOrders,
		TotalRevenue:     totalRevenue,
	}, nil
}

// PendingRestaurants lists restaurants awaiting approval.
func (s *AdminService) PendingRestaurants() ([]models.User, error) {
	restaurants, err := s.userRepo.FindPendingRestaurants()
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return sanitize(restaurants), nil
}

// SetApproval grants or revokes a restaurant's approval and returns the
// updated record.
func (s *AdminService) SetApproval(id string, approved bool) (*models.User, error) {
	if err := s.userRepo.SetRestaurantApproval(id, approved); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Restaurant not found")
		}
		return nil, apperrors.Internal(err)
	}
	restaurant, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	sanitized := restaurant.Sanitized()
	return &sanitized, nil
}

// SetPromotions replaces the promoted restaurant set with exactly the given
// IDs.
func (s *AdminService) SetPromotions(ids []string) error {
	if err := s.userRepo.ReplacePromotions(ids); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// ListUsers lists every non-admin account.
func (s *AdminService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.ListNonAdmin()
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return sanitize(users), nil
}
