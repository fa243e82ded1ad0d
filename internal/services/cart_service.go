package services

import (
	"errors"

	"sbfoods/internal/apperrors"
	"sbfoods/internal/models"
	"sbfoods/internal/repositories"

	"gorm.io/gorm"
)

// CartService handles a customer's cart lines. All operations are scoped to
// the authenticated customer's own cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, userRepo repositories.UserRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// Get returns the cart with each line expanded for display.
func (s *CartService) Get(userID string) ([]models.CartItem, error) {
	items, err := s.cartRepo.GetItems(userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if err := s.expand(items); err != nil {
		return nil, apperrors.Internal(err)
	}
	return items, nil
}

// Add puts quantity of a product into the cart. A line that already exists
// is incremented, not duplicated.
func (s *CartService) Add(userID, productID string, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	if _, err := s.productRepo.GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, apperrors.Internal(err)
	}
	if err := s.cartRepo.AddQuantity(userID, productID, quantity); err != nil {
		return nil, apperrors.Internal(err)
	}
	return s.Get(userID)
}

// Update sets a line's quantity absolutely. A quantity of zero or less
// removes the line. The line must already exist.
func (s *CartService) Update(userID, productID string, quantity int) ([]models.CartItem, error) {
	if _, err := s.cartRepo.GetItem(userID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Item not found in cart")
		}
		return nil, apperrors.Internal(err)
	}

	if quantity <= 0 {
		if err := s.cartRepo.Remove(userID, productID); err != nil {
			return nil, apperrors.Internal(err)
		}
		return s.Get(userID)
	}

	if err := s.cartRepo.SetQuantity(userID, productID, quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Item not found in cart")
		}
		return nil, apperrors.Internal(err)
	}
	return s.Get(userID)
}

// Remove drops a line from the cart. Removing an absent line succeeds.
func (s *CartService) Remove(userID, productID string) ([]models.CartItem, error) {
	if err := s.cartRepo.Remove(userID, productID); err != nil {
		return nil, apperrors.Internal(err)
	}
	return s.Get(userID)
}

// Clear unconditionally empties the cart.
func (s *CartService) Clear(userID string) error {
	if err := s.cartRepo.Clear(userID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// expand fills product and restaurant display fields on cart lines.
func (s *CartService) expand(items []models.CartItem) error {
	if len(items) == 0 {
		return nil
	}

	productIDs := make([]string, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.productRepo.GetByIDs(productIDs)
	if err != nil {
		return err
	}
	productsByID := make(map[string]models.Product, len(products))
	restaurantIDs := make([]string, 0, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
		restaurantIDs = append(restaurantIDs, p.RestaurantID)
	}

	restaurants, err := s.userRepo.GetByIDs(restaurantIDs)
	if err != nil {
		return err
	}
	restaurantNames := make(map[string]string, len(restaurants))
	for _, r := range restaurants {
		restaurantNames[r.ID] = r.Name
	}

	for i := range items {
		if p, ok := productsByID[items[i].ProductID]; ok {
			items[i].ProductName = p.Name
			items[i].ProductPrice = p.Price
			items[i].ProductImage = p.ImageURL
			items[i].RestaurantID = p.RestaurantID
			items[i].RestaurantName = restaurantNames[p.RestaurantID]
		}
	}
	return nil
}
