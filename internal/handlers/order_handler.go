package handlers

import (
	"sbfoods/internal/middleware"
	"sbfoods/internal/models"
	"sbfoods/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for order placement and lifecycle.
type OrderHandler struct {
	orderService *services.OrderService
	validate     *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the order routes.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	orderRoutes := router.Group("/orders", authRequired)
	orderRoutes.Post("/", middleware.RoleRequired(models.RoleCustomer), h.HandleCreate)
	orderRoutes.Get("/my-orders", middleware.RoleRequired(models.RoleCustomer), h.HandleMyOrders)
	orderRoutes.Get("/restaurant-orders", middleware.RoleRequired(models.RoleRestaurant), h.HandleRestaurantOrders)
	orderRoutes.Patch("/:id/status", middleware.RoleRequired(models.RoleRestaurant), h.HandleUpdateStatus)
	orderRoutes.Get("/:id", h.HandleGet)
}

// HandleCreate assembles an order from the request items and clears the
// caller's cart.
func (h *OrderHandler) HandleCreate(c *fiber.Ctx) error {
	var req services.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if len(req.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Order items are required",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	user := middleware.CurrentUser(c)
	order, err := h.orderService.Create(user, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleMyOrders lists the calling customer's orders.
func (h *OrderHandler) HandleMyOrders(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	orders, err := h.orderService.ListForCustomer(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleRestaurantOrders lists orders targeting the calling restaurant.
func (h *OrderHandler) HandleRestaurantOrders(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	orders, err := h.orderService.ListForRestaurant(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// UpdateStatusRequest represents the request body for a status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandleUpdateStatus advances one of the restaurant's orders through the
// fulfillment states.
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	user := middleware.CurrentUser(c)
	order, err := h.orderService.UpdateStatus(user.ID, c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// HandleGet returns a single order within the requester's visibility scope.
func (h *OrderHandler) HandleGet(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	order, err := h.orderService.GetScoped(user, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}
