package handlers

import (
	"strconv"

	"RecipeShare-Backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// actorFromContext rebuilds the authenticated actor from the locals the
// auth middleware sets. Routes without the middleware must not call it.
func actorFromContext(c *fiber.Ctx) (domain.Actor, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return domain.Actor{}, domain.ErrTokenNotFound
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return domain.Actor{}, domain.ErrParseUUID
	}

	role, _ := c.Locals("role").(string)

	return domain.Actor{UserID: userID, Admin: role == domain.RoleAdmin}, nil
}

func paginationQuery(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	return page, limit
}

func paginationMeta(page, limit int, total int64) fiber.Map {
	return fiber.Map{
		"page":  page,
		"limit": limit,
		"total": total,
	}
}
