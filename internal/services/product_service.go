package services

import (
	"errors"

	"sbfoods/internal/apperrors"
	"sbfoods/internal/models"
	"sbfoods/internal/repositories"

	"gorm.io/gorm"
)

// ProductUpdate carries a partial product edit; nil fields are left as-is.
type ProductUpdate struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,max=500"`
	IsAvailable *bool    `json:"isAvailable"`
}

// ProductService handles catalog reads and restaurant-owned menu writes.
type ProductService struct {
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, userRepo repositories.UserRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// List returns available products matching the filter, with owning
// restaurant names expanded.
func (s *ProductService) List(filter repositories.ProductFilter) ([]models.Product, error) {
	filter.OnlyAvailable = true
	products, err := s.productRepo.Find(filter)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if err := s.expand(products); err != nil {
		return nil, apperrors.Internal(err)
	}
	return products, nil
}

// Get returns one product by ID.
func (s *ProductService) Get(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, apperrors.Internal(err)
	}
	single := []models.Product{*product}
	if err := s.expand(single); err != nil {
		return nil, apperrors.Internal(err)
	}
	return &single[0], nil
}

// Create adds a product owned by the calling restaurant.
func (s *ProductService) Create(restaurantID string, product *models.Product) error {
	product.RestaurantID = restaurantID
	product.IsAvailable = true
	if err := s.productRepo.Create(product); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// Update applies a partial edit to a product the restaurant owns. A product
// owned by someone else reads as not found.
func (s *ProductService) Update(restaurantID, id string, update ProductUpdate) (*models.Product, error) {
	product, err := s.productRepo.GetOwned(id, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, apperrors.Internal(err)
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.ImageURL != nil {
		product.ImageURL = *update.ImageURL
	}
	if update.IsAvailable != nil {
		product.IsAvailable = *update.IsAvailable
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, apperrors.Internal(err)
	}
	return product, nil
}

// Delete hard-deletes a product the restaurant owns.
func (s *ProductService) Delete(restaurantID, id string) error {
	if err := s.productRepo.DeleteOwned(id, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Product not found")
		}
		return apperrors.Internal(err)
	}
	return nil
}

// expand fills owning restaurant display fields.
func (s *ProductService) expand(products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	idSet := make(map[string]struct{})
	for _, p := range products {
		idSet[p.RestaurantID] = struct{}{}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	restaurants, err := s.userRepo.GetByIDs(ids)
	if err != nil {
		return err
	}
	byID := make(map[string]models.User, len(restaurants))
	for _, r := range restaurants {
		byID[r.ID] = r
	}
	for i := range products {
		if r, ok := byID[products[i].RestaurantID]; ok {
			products[i].RestaurantName = r.Name
			products[i].RestaurantCuisine = r.CuisineType
		}
	}
	return nil
}
