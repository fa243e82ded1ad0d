package models

import "time"

// CartItem is one (product, quantity) line in a customer's cart. The cart is
// its own table keyed by (user, product) rather than a list embedded in the
// user record, so concurrent adds upsert a single row instead of racing on a
// whole-list rewrite.
type CartItem struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string `json:"userId" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)"`
	ProductID string `json:"productId" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)"`
	Quantity  int    `json:"quantity" validate:"gte=1"`

	// Display-only expansion, filled by repositories on reads.
	ProductName    string  `json:"productName,omitempty" gorm:"-"`
	ProductPrice   float64 `json:"productPrice,omitempty" gorm:"-"`
	ProductImage   string  `json:"productImage,omitempty" gorm:"-"`
	RestaurantID   string  `json:"restaurantId,omitempty" gorm:"-"`
	RestaurantName string  `json:"restaurantName,omitempty" gorm:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
