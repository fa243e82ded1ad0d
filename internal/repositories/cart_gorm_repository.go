package repositories

import (
	"fmt"

	"sbfoods/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{db: db}
}

// GetItems returns the customer's cart lines, oldest first.
func (r *GORMCartRepository) GetItems(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	return items, nil
}

// GetItem returns a single cart line.
func (r *GORMCartRepository) GetItem(userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		return nil, fmt.Errorf("cart item for product %s: %w", productID, err)
	}
	return &item, nil
}

// AddQuantity inserts a cart line or increments an existing one. The
// conflict target is the (user_id, product_id) unique index, so two
// concurrent adds both land as increments on the same row.
func (r *GORMCartRepository) AddQuantity(userID, productID string, quantity int) error {
	item := models.CartItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + ?", quantity),
		}),
	}).Create(&item).Error
	if err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

// SetQuantity sets a line's quantity absolutely. The line must exist.
func (r *GORMCartRepository) SetQuantity(userID, productID string, quantity int) error {
	res := r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item for product %s: %w", productID, gorm.ErrRecordNotFound)
	}
	return nil
}

// Remove deletes a line if present. Removing an absent line is not an error.
func (r *GORMCartRepository) Remove(userID, productID string) error {
	err := r.db.Delete(&models.CartItem{}, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// Clear deletes every line in the customer's cart.
func (r *GORMCartRepository) Clear(userID string) error {
	if err := r.db.Delete(&models.CartItem{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
