package handlers

import (
	"sbfoods/internal/middleware"
	"sbfoods/internal/models"
	"sbfoods/internal/repositories"
	"sbfoods/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	productService *services.ProductService
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the product routes. Reads are public; writes are
// restaurant-only and require an approved account.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Get("/:id", h.HandleGet)

	restaurantOnly := []fiber.Handler{authRequired, middleware.RoleRequired(models.RoleRestaurant)}
	productRoutes.Post("/", append(restaurantOnly, h.HandleCreate)...)
	productRoutes.Put("/:id", append(restaurantOnly, h.HandleUpdate)...)
	productRoutes.Delete("/:id", append(restaurantOnly, h.HandleDelete)...)
}

// HandleList returns available products, optionally filtered by category,
// restaurant, and a name/description search.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		Category:     c.Query("category"),
		RestaurantID: c.Query("restaurant"),
		Search:       c.Query("search"),
	}
	products, err := h.productService.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleGet returns one product.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	product, err := h.productService.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// CreateProductRequest represents the request body for product creation.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"omitempty,max=100"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,max=500"`
}

// HandleCreate adds a product owned by the calling restaurant.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	user := middleware.CurrentUser(c)
	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
	if err := h.productService.Create(user.ID, &product); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdate applies a partial edit to an owned product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var req services.ProductUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	user := middleware.CurrentUser(c)
	product, err := h.productService.Update(user.ID, c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleDelete hard-deletes an owned product.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := h.productService.Delete(user.ID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
