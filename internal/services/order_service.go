package services

import (
	"errors"
	"fmt"
	"log"

	"sbfoods/internal/apperrors"
	"sbfoods/internal/models"
	"sbfoods/internal/repositories"
	"sbfoods/internal/statemachine"
	"sbfoods/pkg/rabbitmq"

	"gorm.io/gorm"
)

// OrderItemRequest is one requested (product, quantity) pair.
type OrderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// CreateOrderRequest is the input to order assembly.
type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress string             `json:"deliveryAddress" validate:"omitempty,max=500"`
	PaymentMethod   string             `json:"paymentMethod" validate:"omitempty,max=100"`
}

// OrderService handles order assembly and the order lifecycle.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
	cartRepo    repositories.CartRepository
	mqClient    *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil; event
// publication is then skipped.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository,
	cartRepo repositories.CartRepository,
	mqClient *rabbitmq.Client,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		cartRepo:    cartRepo,
		mqClient:    mqClient,
	}
}

// Create assembles and persists an order for the customer. Every item must
// resolve to an existing product and all items must belong to one
// restaurant; prices are captured at call time. The customer's cart is
// cleared after the order persists, and a cart-clear failure never unwinds
// the order.
func (s *OrderService) Create(customer *models.User, req CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.InvalidRequest("Order items are required")
	}

	var restaurantID string
	var totalPrice float64
	orderItems := make([]models.OrderItem, 0, len(req.Items))

	for _, item := range req.Items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound(fmt.Sprintf("Product %s not found", item.ProductID))
			}
			return nil, apperrors.Internal(err)
		}

		if restaurantID == "" {
			restaurantID = product.RestaurantID
		} else if restaurantID != product.RestaurantID {
			return nil, apperrors.InvalidRequest("All items must be from the same restaurant")
		}

		totalPrice += product.Price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
	}

	deliveryAddress := req.DeliveryAddress
	if deliveryAddress == "" {
		deliveryAddress = customer.Address
	}

	order := &models.Order{
		CustomerID:      customer.ID,
		RestaurantID:    restaurantID,
		Items:           orderItems,
		TotalPrice:      totalPrice,
		DeliveryAddress: deliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		Status:          models.StatusPending,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, apperrors.Internal(err)
	}

	// The order is placed at this point. Clearing the cart is a separate
	// write with no compensating action.
	if err := s.cartRepo.Clear(customer.ID); err != nil {
		log.Printf("Warning: failed to clear cart for customer %s after order %s: %v", customer.ID, order.ID, err)
	}

	s.publishEvent(rabbitmq.EventOrderCreated, map[string]interface{}{
		"orderId":      order.ID,
		"customerId":   order.CustomerID,
		"restaurantId": order.RestaurantID,
		"totalPrice":   order.TotalPrice,
		"status":       order.Status,
	})

	if err := s.expandOrders(nil, order); err != nil {
		log.Printf("Warning: failed to expand order %s for display: %v", order.ID, err)
	}
	return order, nil
}

// ListForCustomer lists the customer's own orders, newest first.
func (s *OrderService) ListForCustomer(customerID string) ([]models.Order, error) {
	orders, err := s.orderRepo.FindByCustomer(customerID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if err := s.expandOrders(orders, nil); err != nil {
		return nil, apperrors.Internal(err)
	}
	return orders, nil
}

// ListForRestaurant lists orders targeting the restaurant, newest first.
func (s *OrderService) ListForRestaurant(restaurantID string) ([]models.Order, error) {
	orders, err := s.orderRepo.FindByRestaurant(restaurantID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if err := s.expandOrders(orders, nil); err != nil {
		return nil, apperrors.Internal(err)
	}
	return orders, nil
}

// ListAll lists every order on the platform, newest first.
func (s *OrderService) ListAll() ([]models.Order, error) {
	orders, err := s.orderRepo.FindAll()
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if err := s.expandOrders(orders, nil); err != nil {
		return nil, apperrors.Internal(err)
	}
	return orders, nil
}

// GetScoped fetches a single order under the requester's visibility rules:
// customers see their own, restaurants see their own, admins see all. An
// existing order outside the requester's scope reads as not found.
func (s *OrderService) GetScoped(requester *models.User, orderID string) (*models.Order, error) {
	var order *models.Order
	var err error
	switch requester.Role {
	case models.RoleCustomer:
		order, err = s.orderRepo.GetOwnedByCustomer(orderID, requester.ID)
	case models.RoleRestaurant:
		order, err = s.orderRepo.GetOwnedByRestaurant(orderID, requester.ID)
	default:
		order, err = s.orderRepo.GetByID(orderID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Order not found")
		}
		return nil, apperrors.Internal(err)
	}
	if err := s.expandOrders(nil, order); err != nil {
		return nil, apperrors.Internal(err)
	}
	return order, nil
}

// UpdateStatus advances an order owned by the restaurant one step through
// pending, confirmed, preparing, ready, delivered.
func (s *OrderService) UpdateStatus(restaurantID, orderID, newStatus string) (*models.Order, error) {
	order, err := s.orderRepo.GetOwnedByRestaurant(orderID, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Order not found")
		}
		return nil, apperrors.Internal(err)
	}

	if err := statemachine.CanTransition(order.Status, newStatus); err != nil {
		return nil, apperrors.InvalidRequest(err.Error())
	}

	if err := s.orderRepo.UpdateStatus(orderID, restaurantID, newStatus); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Order not found")
		}
		return nil, apperrors.Internal(err)
	}
	order.Status = newStatus

	s.publishEvent(rabbitmq.EventOrderStatusChanged, map[string]interface{}{
		"orderId":      order.ID,
		"restaurantId": order.RestaurantID,
		"status":       newStatus,
	})

	if err := s.expandOrders(nil, order); err != nil {
		return nil, apperrors.Internal(err)
	}
	return order, nil
}

// publishEvent sends an order event when a broker is configured. Publish
// failures are logged and never surfaced to the caller.
func (s *OrderService) publishEvent(event string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishOrderEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}

// expandOrders fills customer, restaurant, and product display fields on the
// given orders (plus one optional extra order).
func (s *OrderService) expandOrders(orders []models.Order, extra *models.Order) error {
	all := make([]*models.Order, 0, len(orders)+1)
	for i := range orders {
		all = append(all, &orders[i])
	}
	if extra != nil {
		all = append(all, extra)
	}
	if len(all) == 0 {
		return nil
	}

	userIDSet := make(map[string]struct{})
	productIDSet := make(map[string]struct{})
	for _, o := range all {
		userIDSet[o.CustomerID] = struct{}{}
		userIDSet[o.RestaurantID] = struct{}{}
		for _, item := range o.Items {
			productIDSet[item.ProductID] = struct{}{}
		}
	}

	userIDs := make([]string, 0, len(userIDSet))
	for id := range userIDSet {
		userIDs = append(userIDs, id)
	}
	users, err := s.userRepo.GetByIDs(userIDs)
	if err != nil {
		return err
	}
	usersByID := make(map[string]models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	productIDs := make([]string, 0, len(productIDSet))
	for id := range productIDSet {
		productIDs = append(productIDs, id)
	}
	products, err := s.productRepo.GetByIDs(productIDs)
	if err != nil {
		return err
	}
	productsByID := make(map[string]models.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	for _, o := range all {
		if customer, ok := usersByID[o.CustomerID]; ok {
			o.CustomerName = customer.Name
			o.CustomerPhone = customer.Phone
		}
		if restaurant, ok := usersByID[o.RestaurantID]; ok {
			o.RestaurantName = restaurant.Name
		}
		for i := range o.Items {
			if p, ok := productsByID[o.Items[i].ProductID]; ok {
				o.Items[i].ProductName = p.Name
				o.Items[i].ProductImage = p.ImageURL
			}
		}
	}
	return nil
}
