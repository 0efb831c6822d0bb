package handlers

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/internal/api/presenters"
	"RecipeShare-Backend/pkg/activity"

	"github.com/gofiber/fiber/v2"
)

type (
	ActivityHandler interface {
		GetFinishedRecipes(c *fiber.Ctx) error
		FinishRecipe(c *fiber.Ctx) error
		GetStartedRecipes(c *fiber.Ctx) error
		StartRecipe(c *fiber.Ctx) error
		StopRecipe(c *fiber.Ctx) error
	}

	activityHandler struct {
		activityService activity.ActivityService
	}
)

func NewActivityHandler(activityService activity.ActivityService) ActivityHandler {
	return &activityHandler{activityService: activityService}
}

func (h *activityHandler) GetFinishedRecipes(c *fiber.Ctx) error {
	res, err := h.activityService.GetFinishedRecipes(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetFinishedRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFinishedRecipes)
}

func (h *activityHandler) FinishRecipe(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedFinishRecipe, err)
	}

	err = h.activityService.FinishRecipe(c.Context(), c.Params("userID"), c.Params("recipeID"), actor)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedFinishRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessFinishRecipe)
}

func (h *activityHandler) GetStartedRecipes(c *fiber.Ctx) error {
	res, err := h.activityService.GetStartedRecipes(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetStartedRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStartedRecipes)
}

func (h *activityHandler) StartRecipe(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedStartRecipe, err)
	}

	err = h.activityService.StartRecipe(c.Context(), c.Params("userID"), c.Params("recipeID"), actor)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedStartRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessStartRecipe)
}

func (h *activityHandler) StopRecipe(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedStopRecipe, err)
	}

	err = h.activityService.StopRecipe(c.Context(), c.Params("userID"), c.Params("recipeID"), actor)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedStopRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessStopRecipe)
}
