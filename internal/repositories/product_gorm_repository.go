package repositories

import (
	"fmt"

	"sbfoods/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// Find retrieves products matching the filter, newest first.
func (r *GORMProductRepository) Find(filter ProductFilter) ([]models.Product, error) {
	q := r.db.Model(&models.Product{})
	if filter.OnlyAvailable {
		q = q.Where("is_available = ?", true)
	}
	if filter.Category != "" && filter.Category != "all" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.RestaurantID != "" {
		q = q.Where("restaurant_id = ?", filter.RestaurantID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	var products []models.Product
	if err := q.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("product with ID %s: %w", id, err)
	}
	return &product, nil
}

// GetByIDs retrieves products for a set of IDs. Missing IDs are simply
// absent from the result.
func (r *GORMProductRepository) GetByIDs(ids []string) ([]models.Product, error) {
	var products []models.Product
	if len(ids) == 0 {
		return products, nil
	}
	if err := r.db.Find(&products, "id IN ?", ids).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by IDs: %w", err)
	}
	return products, nil
}

// GetOwned retrieves a product only when it belongs to the given restaurant.
func (r *GORMProductRepository) GetOwned(id, restaurantID string) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "id = ? AND restaurant_id = ?", id, restaurantID).Error
	if err != nil {
		return nil, fmt.Errorf("product with ID %s for restaurant %s: %w", id, restaurantID, err)
	}
	return &product, nil
}

// Create creates a new product.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists all fields of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", product.ID, gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteOwned hard-deletes a product only when it belongs to the restaurant.
func (r *GORMProductRepository) DeleteOwned(id, restaurantID string) error {
	res := r.db.Delete(&models.Product{}, "id = ? AND restaurant_id = ?", id, restaurantID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s for restaurant %s: %w", id, restaurantID, gorm.ErrRecordNotFound)
	}
	return nil
}

// CountByRestaurant counts products owned by the restaurant.
func (r *GORMProductRepository) CountByRestaurant(restaurantID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}
