package handlers

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/internal/api/presenters"
	"RecipeShare-Backend/pkg/rating"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RatingHandler interface {
		GetRatings(c *fiber.Ctx) error
		GetRecipeRatings(c *fiber.Ctx) error
		GetRecipeRatingsStripped(c *fiber.Ctx) error
		GetRecipeRaters(c *fiber.Ctx) error
		GetUserRatings(c *fiber.Ctx) error
		GetRecipesUserRated(c *fiber.Ctx) error
		CreateRating(c *fiber.Ctx) error
		UpdateRating(c *fiber.Ctx) error
		DeleteRating(c *fiber.Ctx) error
	}

	ratingHandler struct {
		ratingService rating.RatingService
		validator     *validator.Validate
	}
)

func NewRatingHandler(ratingService rating.RatingService, validator *validator.Validate) RatingHandler {
	return &ratingHandler{
		ratingService: ratingService,
		validator:     validator,
	}
}

func (h *ratingHandler) GetRatings(c *fiber.Ctx) error {
	res, err := h.ratingService.GetRatings(c.Context())
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRatings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRatings)
}

func (h *ratingHandler) GetRecipeRatings(c *fiber.Ctx) error {
	res, err := h.ratingService.GetRecipeRatings(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRatings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRatings)
}

// GetRecipeRatingsStripped returns ratings for a recipe reduced to the
// rating value and the rater, without the pivot bookkeeping columns.
func (h *ratingHandler) GetRecipeRatingsStripped(c *fiber.Ctx) error {
	res, err := h.ratingService.GetRecipeRatingsStripped(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRatings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRatings)
}

func (h *ratingHandler) GetRecipeRaters(c *fiber.Ctx) error {
	res, err := h.ratingService.GetRecipeRaters(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRecipeRaters, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeRaters)
}

func (h *ratingHandler) GetUserRatings(c *fiber.Ctx) error {
	res, err := h.ratingService.GetUserRatings(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRatings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRatings)
}

func (h *ratingHandler) GetRecipesUserRated(c *fiber.Ctx) error {
	res, err := h.ratingService.GetRecipesUserRated(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRatedRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRatedRecipes)
}

func (h *ratingHandler) CreateRating(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedCreateRating, err)
	}

	req := new(domain.RatingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRating, err)
	}

	err = h.ratingService.CreateRating(c.Context(), c.Params("userID"), c.Params("recipeID"), *req, actor)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedCreateRating, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessCreateRating)
}

func (h *ratingHandler) UpdateRating(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateRating, err)
	}

	req := new(domain.RatingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRating, err)
	}

	if err := h.ratingService.UpdateRating(c.Context(), c.Params("id"), *req, actor); err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateRating, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessUpdateRating)
}

func (h *ratingHandler) DeleteRating(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteRating, err)
	}

	err = h.ratingService.DeleteRating(c.Context(), c.Params("userID"), c.Params("recipeID"), actor)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteRating, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessDeleteRating)
}
