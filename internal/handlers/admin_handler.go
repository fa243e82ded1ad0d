package handlers

import (
	"fmt"

	"sbfoods/internal/middleware"
	"sbfoods/internal/models"
	"sbfoods/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles HTTP requests for platform administration.
type AdminHandler struct {
	adminService *services.AdminService
	orderService *services.OrderService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *services.AdminService, orderService *services.OrderService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		orderService: orderService,
	}
}

// RegisterRoutes registers the admin routes. All of them are admin-only.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	adminRoutes := router.Group("/admin", authRequired, middleware.RoleRequired(models.RoleAdmin))
	adminRoutes.Get("/stats", h.HandleStats)
	adminRoutes.Get("/restaurants/pending", h.HandlePendingRestaurants)
	adminRoutes.Patch("/restaurants/promotions", h.HandleSetPromotions)
	adminRoutes.Patch("/restaurants/:id/approval", h.HandleSetApproval)
	adminRoutes.Get("/users", h.HandleListUsers)
	adminRoutes.Get("/orders", h.HandleListOrders)
}

// HandleStats returns platform-wide aggregate counts.
func (h *AdminHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.adminService.Stats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// HandlePendingRestaurants lists restaurants awaiting approval.
func (h *AdminHandler) HandlePendingRestaurants(c *fiber.Ctx) error {
	restaurants, err := h.adminService.PendingRestaurants()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(restaurants)
}

// ApprovalRequest represents the request body for an approval toggle.
type ApprovalRequest struct {
	IsApproved bool `json:"isApproved"`
}

// HandleSetApproval grants or revokes a restaurant's approval.
func (h *AdminHandler) HandleSetApproval(c *fiber.Ctx) error {
	var req ApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	restaurant, err := h.adminService.SetApproval(c.Params("id"), req.IsApproved)
	if err != nil {
		return respondError(c, err)
	}

	verdict := "rejected"
	if req.IsApproved {
		verdict = "approved"
	}
	return c.JSON(fiber.Map{
		"message":    fmt.Sprintf("Restaurant %s successfully", verdict),
		"restaurant": restaurant,
	})
}

// PromotionsRequest represents the request body for replacing the promoted
// restaurant set.
type PromotionsRequest struct {
	PromotedRestaurants []string `json:"promotedRestaurants"`
}

// HandleSetPromotions replaces the promoted set with exactly the given IDs.
func (h *AdminHandler) HandleSetPromotions(c *fiber.Ctx) error {
	var req PromotionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.adminService.SetPromotions(req.PromotedRestaurants); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Restaurant promotions updated successfully"})
}

// HandleListUsers lists every non-admin account.
func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.adminService.ListUsers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// HandleListOrders lists every order on the platform.
func (h *AdminHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}
