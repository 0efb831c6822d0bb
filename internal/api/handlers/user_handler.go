package handlers

import (
	"encoding/base64"
	"strings"

	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/internal/api/presenters"
	"RecipeShare-Backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		GetUsers(c *fiber.Ctx) error
		GetUser(c *fiber.Ctx) error
		GetMe(c *fiber.Ctx) error
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		DeleteUser(c *fiber.Ctx) error
		GetUserRecipes(c *fiber.Ctx) error
		GetUserRecipe(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) GetUsers(c *fiber.Ctx) error {
	page, limit := paginationQuery(c)

	users, total, err := h.userService.GetUsers(c.Context(), page, limit)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetUsers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"users":      users,
		"pagination": paginationMeta(page, limit, total),
	}, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *userHandler) GetUser(c *fiber.Ctx) error {
	res, err := h.userService.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUser)
}

func (h *userHandler) GetMe(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetMe, err)
	}

	res, err := h.userService.GetUser(c.Context(), actor.UserID.String())
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetMe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMe)
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

// Login reads credentials from the Basic scheme of the Authorization
// header and exchanges them for a bearer token.
func (h *userHandler) Login(c *fiber.Ctx) error {
	username, password, err := basicCredentials(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedLogin, err)
	}

	res, err := h.userService.Login(c.Context(), username, password)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func basicCredentials(header string) (string, string, error) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", domain.ErrCredentialsNotFound
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, prefix))
	if err != nil {
		return "", "", domain.ErrCredentialsNotFound
	}

	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok || username == "" {
		return "", "", domain.ErrCredentialsNotFound
	}

	return username, password, nil
}

func (h *userHandler) DeleteUser(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteUser, err)
	}

	if err := h.userService.DeleteUser(c.Context(), c.Params("id"), actor); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteUser, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessDeleteUser)
}

func (h *userHandler) GetUserRecipes(c *fiber.Ctx) error {
	res, err := h.userService.GetUserRecipes(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetUserRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUserRecipes)
}

func (h *userHandler) GetUserRecipe(c *fiber.Ctx) error {
	res, err := h.userService.GetUserRecipe(c.Context(), c.Params("id"), c.Params("recipeID"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetUserRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUserRecipes)
}
