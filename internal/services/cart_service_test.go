package services_test

import (
	"testing"

	"sbfoods/internal/apperrors"
	"sbfoods/internal/models"
	"sbfoods/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCartServiceForTest() (*services.CartService, *MockCartRepository, *MockProductRepository, *MockUserRepository) {
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	svc := services.NewCartService(cartRepo, productRepo, userRepo)
	return svc, cartRepo, productRepo, userRepo
}

func TestCartService_Add(t *testing.T) {
	svc, cartRepo, productRepo, userRepo := newCartServiceForTest()

	product := &models.Product{ID: "p1", Name: "Burger", Price: 100, RestaurantID: "rest-1"}
	restaurant := models.User{ID: "rest-1", Name: "Burger Barn", Role: models.RoleRestaurant}

	productRepo.On("GetByID", "p1").Return(product, nil).Once()
	cartRepo.On("AddQuantity", "cust-1", "p1", 2).Return(nil).Once()
	cartRepo.On("GetItems", "cust-1").Return([]models.CartItem{
		{ID: "line-1", UserID: "cust-1", ProductID: "p1", Quantity: 2},
	}, nil).Once()
	productRepo.On("GetByIDs", []string{"p1"}).Return([]models.Product{*product}, nil).Once()
	userRepo.On("GetByIDs", []string{"rest-1"}).Return([]models.User{restaurant}, nil).Once()

	items, err := svc.Add("cust-1", "p1", 2)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Burger", items[0].ProductName)
	assert.Equal(t, 100.0, items[0].ProductPrice)
	assert.Equal(t, "Burger Barn", items[0].RestaurantName)
	cartRepo.AssertExpectations(t)
}

func TestCartService_Add_UnknownProduct(t *testing.T) {
	svc, cartRepo, productRepo, _ := newCartServiceForTest()

	productRepo.On("GetByID", "ghost").Return(nil, notFoundErr("product")).Once()

	_, err := svc.Add("cust-1", "ghost", 1)
	assert.Error(t, err)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	cartRepo.AssertNotCalled(t, "AddQuantity")
}

func TestCartService_Add_NormalizesQuantity(t *testing.T) {
	svc, cartRepo, productRepo, _ := newCartServiceForTest()

	productRepo.On("GetByID", "p1").Return(&models.Product{ID: "p1"}, nil).Once()
	// Zero and negative quantities are treated as one.
	cartRepo.On("AddQuantity", "cust-1", "p1", 1).Return(nil).Once()
	cartRepo.On("GetItems", "cust-1").Return([]models.CartItem{}, nil).Once()

	_, err := svc.Add("cust-1", "p1", -3)
	assert.NoError(t, err)
	cartRepo.AssertExpectations(t)
}

func TestCartService_Update_SetsQuantity(t *testing.T) {
	svc, cartRepo, _, _ := newCartServiceForTest()

	line := &models.CartItem{ID: "line-1", UserID: "cust-1", ProductID: "p1", Quantity: 1}
	cartRepo.On("GetItem", "cust-1", "p1").Return(line, nil).Once()
	cartRepo.On("SetQuantity", "cust-1", "p1", 5).Return(nil).Once()
	cartRepo.On("GetItems", "cust-1").Return([]models.CartItem{}, nil).Once()

	_, err := svc.Update("cust-1", "p1", 5)
	assert.NoError(t, err)
	cartRepo.AssertExpectations(t)
}

func TestCartService_Update_ZeroRemovesLine(t *testing.T) {
	svc, cartRepo, _, _ := newCartServiceForTest()

	line := &models.CartItem{ID: "line-1", UserID: "cust-1", ProductID: "p1", Quantity: 3}
	cartRepo.On("GetItem", "cust-1", "p1").Return(line, nil).Once()
	cartRepo.On("Remove", "cust-1", "p1").Return(nil).Once()
	cartRepo.On("GetItems", "cust-1").Return([]models.CartItem{}, nil).Once()

	_, err := svc.Update("cust-1", "p1", 0)
	assert.NoError(t, err)
	cartRepo.AssertExpectations(t)
	cartRepo.AssertNotCalled(t, "SetQuantity")
}

func TestCartService_Update_MissingLine(t *testing.T) {
	svc, cartRepo, _, _ := newCartServiceForTest()

	cartRepo.On("GetItem", "cust-1", "p1").Return(nil, notFoundErr("cart item")).Once()

	_, err := svc.Update("cust-1", "p1", 2)
	assert.Error(t, err)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	assert.Equal(t, "Item not found in cart", appErr.Message)
}

func TestCartService_Remove_AbsentLineSucceeds(t *testing.T) {
	svc, cartRepo, _, _ := newCartServiceForTest()

	cartRepo.On("Remove", "cust-1", "never-added").Return(nil).Once()
	cartRepo.On("GetItems", "cust-1").Return([]models.CartItem{}, nil).Once()

	items, err := svc.Remove("cust-1", "never-added")
	assert.NoError(t, err)
	assert.Empty(t, items)
}
