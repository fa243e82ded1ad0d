package handlers

import (
	"sbfoods/internal/middleware"
	"sbfoods/internal/models"
	"sbfoods/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the customer cart.
type CartHandler struct {
	cartService *services.CartService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes. All of them are customer-only.
func (h *CartHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	cartRoutes := router.Group("/cart", authRequired, middleware.RoleRequired(models.RoleCustomer))
	cartRoutes.Get("/", h.HandleGet)
	cartRoutes.Post("/add", h.HandleAdd)
	cartRoutes.Put("/update", h.HandleUpdate)
	cartRoutes.Delete("/remove/:productId", h.HandleRemove)
	cartRoutes.Delete("/clear", h.HandleClear)
}

// HandleGet returns the expanded cart.
func (h *CartHandler) HandleGet(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	items, err := h.cartService.Get(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// AddToCartRequest represents the request body for adding a cart line.
// Quantity defaults to 1 when omitted.
type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

// HandleAdd upserts a cart line for the product.
func (h *CartHandler) HandleAdd(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	user := middleware.CurrentUser(c)
	items, err := h.cartService.Add(user.ID, req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// UpdateCartRequest represents the request body for setting a line quantity.
// A quantity of zero or less removes the line.
type UpdateCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// HandleUpdate sets a line's quantity absolutely.
func (h *CartHandler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	user := middleware.CurrentUser(c)
	items, err := h.cartService.Update(user.ID, req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// HandleRemove drops a line from the cart, succeeding even if it is absent.
func (h *CartHandler) HandleRemove(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	items, err := h.cartService.Remove(user.ID, c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// HandleClear empties the cart.
func (h *CartHandler) HandleClear(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := h.cartService.Clear(user.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Cart cleared successfully"})
}
