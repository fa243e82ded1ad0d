package repositories

import "sbfoods/internal/models"

// CartRepository defines the interface for cart line access. Lines are
// individual rows keyed by (user, product), so adds and updates touch a
// single row instead of rewriting a whole list.
type CartRepository interface {
	GetItems(userID string) ([]models.CartItem, error)
	GetItem(userID, productID string) (*models.CartItem, error)
	AddQuantity(userID, productID string, quantity int) error
	SetQuantity(userID, productID string, quantity int) error
	Remove(userID, productID string) error
	Clear(userID string) error
}
