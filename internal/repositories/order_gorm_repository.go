package repositories

import (
	"fmt"

	"sbfoods/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

// Create persists an order together with its item rows.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves an order with its items, unscoped.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("order with ID %s: %w", id, err)
	}
	return &order, nil
}

// GetOwnedByCustomer retrieves an order only when the customer placed it.
func (r *GORMOrderRepository) GetOwnedByCustomer(id, customerID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").
		First(&order, "id = ? AND customer_id = ?", id, customerID).Error
	if err != nil {
		return nil, fmt.Errorf("order with ID %s for customer %s: %w", id, customerID, err)
	}
	return &order, nil
}

// GetOwnedByRestaurant retrieves an order only when it targets the restaurant.
func (r *GORMOrderRepository) GetOwnedByRestaurant(id, restaurantID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").
		First(&order, "id = ? AND restaurant_id = ?", id, restaurantID).Error
	if err != nil {
		return nil, fmt.Errorf("order with ID %s for restaurant %s: %w", id, restaurantID, err)
	}
	return &order, nil
}

// FindByCustomer lists the customer's orders, newest first.
func (r *GORMOrderRepository) FindByCustomer(customerID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find customer orders: %w", err)
	}
	return orders, nil
}

// FindByRestaurant lists the restaurant's incoming orders, newest first.
func (r *GORMOrderRepository) FindByRestaurant(restaurantID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find restaurant orders: %w", err)
	}
	return orders, nil
}

// FindAll lists every order, newest first.
func (r *GORMOrderRepository) FindAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus updates the status of an order owned by the restaurant.
func (r *GORMOrderRepository) UpdateStatus(id, restaurantID, status string) error {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s for restaurant %s: %w", id, restaurantID, gorm.ErrRecordNotFound)
	}
	return nil
}

// CountAll counts every order on the platform.
func (r *GORMOrderRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// CountByRestaurant counts orders targeting the restaurant.
func (r *GORMOrderRepository) CountByRestaurant(restaurantID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count restaurant orders: %w", err)
	}
	return count, nil
}

// SumRevenue sums totalPrice over every order, regardless of status.
func (r *GORMOrderRepository) SumRevenue() (float64, error) {
	var total float64
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return total, nil
}

// SumRevenueByRestaurant sums totalPrice over the restaurant's orders.
func (r *GORMOrderRepository) SumRevenueByRestaurant(restaurantID string) (float64, error) {
	var total float64
	err := r.db.Model(&models.Order{}).
		Where("restaurant_id = ?", restaurantID).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum restaurant revenue: %w", err)
	}
	return total, nil
}
