package presenters

import (
	"errors"
	"testing"

	"RecipeShare-Backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.ErrSearchTermRequired, fiber.StatusBadRequest},
		{"unauthenticated", domain.ErrWrongCredentials, fiber.StatusUnauthorized},
		{"forbidden", domain.ErrForbiddenUpdateRecipe, fiber.StatusForbidden},
		{"not found", domain.ErrRecipeNotFound, fiber.StatusNotFound},
		{"relation not found", domain.ErrRecipeNotCreatedByUser, fiber.StatusNotFound},
		{"conflict", domain.ErrUsernameTaken, fiber.StatusConflict},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}
