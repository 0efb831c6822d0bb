package handlers

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/internal/api/presenters"
	"RecipeShare-Backend/pkg/like"

	"github.com/gofiber/fiber/v2"
)

type (
	LikeHandler interface {
		GetLikes(c *fiber.Ctx) error
		GetLike(c *fiber.Ctx) error
		GetRecipeLikers(c *fiber.Ctx) error
		GetRecipesUserLikes(c *fiber.Ctx) error
		LikeRecipe(c *fiber.Ctx) error
		UnlikeRecipe(c *fiber.Ctx) error
	}

	likeHandler struct {
		likeService like.LikeService
	}
)

func NewLikeHandler(likeService like.LikeService) LikeHandler {
	return &likeHandler{likeService: likeService}
}

func (h *likeHandler) GetLikes(c *fiber.Ctx) error {
	res, err := h.likeService.GetLikes(c.Context())
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetLikes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLikes)
}

func (h *likeHandler) GetLike(c *fiber.Ctx) error {
	res, err := h.likeService.GetLike(c.Context(), c.Params("userID"), c.Params("recipeID"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetLike, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLike)
}

func (h *likeHandler) GetRecipeLikers(c *fiber.Ctx) error {
	res, err := h.likeService.GetRecipeLikers(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRecipeLikers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeLikers)
}

func (h *likeHandler) GetRecipesUserLikes(c *fiber.Ctx) error {
	res, err := h.likeService.GetRecipesUserLikes(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetLikedRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLikedRecipes)
}

func (h *likeHandler) LikeRecipe(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedLikeRecipe, err)
	}

	err = h.likeService.LikeRecipe(c.Context(), c.Params("userID"), c.Params("recipeID"), actor)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedLikeRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessLikeRecipe)
}

func (h *likeHandler) UnlikeRecipe(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUnlikeRecipe, err)
	}

	err = h.likeService.UnlikeRecipe(c.Context(), c.Params("userID"), c.Params("recipeID"), actor)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUnlikeRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessUnlikeRecipe)
}
