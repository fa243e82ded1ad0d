package handlers

import (
	"sbfoods/internal/middleware"
	"sbfoods/internal/models"
	"sbfoods/internal/repositories"
	"sbfoods/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RestaurantHandler handles HTTP requests for public restaurant pages and
// the owner dashboard.
type RestaurantHandler struct {
	restaurantService *services.RestaurantService
}

// NewRestaurantHandler creates a new RestaurantHandler.
func NewRestaurantHandler(restaurantService *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// RegisterRoutes registers the restaurant routes. The dashboard route is
// registered before "/:id" so it is not captured as an ID.
func (h *RestaurantHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	restaurantRoutes := router.Group("/restaurants")
	restaurantRoutes.Get("/", h.HandleList)
	restaurantRoutes.Get("/promoted", h.HandlePromoted)
	restaurantRoutes.Get("/dashboard/stats", authRequired, middleware.RoleRequired(models.RoleRestaurant), h.HandleDashboardStats)
	restaurantRoutes.Get("/:id", h.HandleGet)
}

// HandleList returns approved restaurants, promoted first.
func (h *RestaurantHandler) HandleList(c *fiber.Ctx) error {
	filter := repositories.RestaurantFilter{
		Search:  c.Query("search"),
		Cuisine: c.Query("cuisine"),
	}
	restaurants, err := h.restaurantService.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(restaurants)
}

// HandlePromoted returns the homepage restaurant set.
func (h *RestaurantHandler) HandlePromoted(c *fiber.Ctx) error {
	restaurants, err := h.restaurantService.Promoted()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(restaurants)
}

// HandleGet returns one approved restaurant with its available products.
func (h *RestaurantHandler) HandleGet(c *fiber.Ctx) error {
	detail, err := h.restaurantService.GetWithProducts(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

// HandleDashboardStats summarizes the calling restaurant's business.
func (h *RestaurantHandler) HandleDashboardStats(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	stats, err := h.restaurantService.DashboardStats(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
