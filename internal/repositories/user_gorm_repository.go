package repositories

import (
	"fmt"

	"sbfoods/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{db: db}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by their email.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, fmt.Errorf("user with email %s: %w", email, err)
	}
	return &user, nil
}

// GetByID retrieves a user by their ID.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("user with ID %s: %w", id, err)
	}
	return &user, nil
}

// GetByIDs retrieves users for a set of IDs. Missing IDs are simply absent
// from the result.
func (r *GORMUserRepository) GetByIDs(ids []string) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.Find(&users, "id IN ?", ids).Error; err != nil {
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}
	return users, nil
}

// FindRestaurants lists approved restaurants, promoted first, newest first.
func (r *GORMUserRepository) FindRestaurants(filter RestaurantFilter) ([]models.User, error) {
	q := r.db.Where("role = ? AND is_approved = ?", models.RoleRestaurant, true)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR cuisine_type LIKE ?", pattern, pattern)
	}
	if filter.Cuisine != "" && filter.Cuisine != "all" {
		q = q.Where("cuisine_type LIKE ?", "%"+filter.Cuisine+"%")
	}
	var restaurants []models.User
	if err := q.Order("is_promoted DESC, created_at DESC").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to find restaurants: %w", err)
	}
	return restaurants, nil
}

// FindPromotedRestaurants lists approved restaurants flagged for the homepage.
func (r *GORMUserRepository) FindPromotedRestaurants() ([]models.User, error) {
	var restaurants []models.User
	err := r.db.
		Where("role = ? AND is_approved = ? AND is_promoted = ?", models.RoleRestaurant, true, true).
		Order("created_at DESC").
		Find(&restaurants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find promoted restaurants: %w", err)
	}
	return restaurants, nil
}

// FindTopRestaurants lists the newest approved restaurants up to limit.
func (r *GORMUserRepository) FindTopRestaurants(limit int) ([]models.User, error) {
	var restaurants []models.User
	err := r.db.
		Where("role = ? AND is_approved = ?", models.RoleRestaurant, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&restaurants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find top restaurants: %w", err)
	}
	return restaurants, nil
}

// FindPendingRestaurants lists restaurants awaiting approval.
func (r *GORMUserRepository) FindPendingRestaurants() ([]models.User, error) {
	var restaurants []models.User
	err := r.db.
		Where("role = ? AND is_approved = ?", models.RoleRestaurant, false).
		Order("created_at DESC").
		Find(&restaurants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find pending restaurants: %w", err)
	}
	return restaurants, nil
}

// ListNonAdmin lists every customer and restaurant account, newest first.
func (r *GORMUserRepository) ListNonAdmin() ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("role <> ?", models.RoleAdmin).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CountByRole counts users with the given role.
func (r *GORMUserRepository) CountByRole(role string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users by role %s: %w", role, err)
	}
	return count, nil
}

// CountApprovedRestaurants counts restaurants with approval granted.
func (r *GORMUserRepository) CountApprovedRestaurants() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("role = ? AND is_approved = ?", models.RoleRestaurant, true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count approved restaurants: %w", err)
	}
	return count, nil
}

// SetRestaurantApproval sets the approval flag on a restaurant account.
func (r *GORMUserRepository) SetRestaurantApproval(id string, approved bool) error {
	res := r.db.Model(&models.User{}).
		Where("id = ? AND role = ?", id, models.RoleRestaurant).
		Update("is_approved", approved)
	if res.Error != nil {
		return fmt.Errorf("failed to update restaurant approval: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("restaurant with ID %s: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// ReplacePromotions clears the promoted flag on every restaurant, then sets
// it on exactly the supplied set. Full replacement, not incremental.
func (r *GORMUserRepository) ReplacePromotions(ids []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.User{}).
			Where("role = ?", models.RoleRestaurant).
			Update("is_promoted", false).Error
		if err != nil {
			return fmt.Errorf("failed to clear promotions: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}
		err = tx.Model(&models.User{}).
			Where("id IN ? AND role = ?", ids, models.RoleRestaurant).
			Update("is_promoted", true).Error
		if err != nil {
			return fmt.Errorf("failed to set promotions: %w", err)
		}
		return nil
	})
}
