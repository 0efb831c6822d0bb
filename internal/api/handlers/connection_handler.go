package handlers

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/internal/api/presenters"
	"RecipeShare-Backend/pkg/connection"

	"github.com/gofiber/fiber/v2"
)

type (
	ConnectionHandler interface {
		GetConnections(c *fiber.Ctx) error
		GetFollowers(c *fiber.Ctx) error
		GetFollowed(c *fiber.Ctx) error
		FollowUser(c *fiber.Ctx) error
		Unfollow(c *fiber.Ctx) error
	}

	connectionHandler struct {
		connectionService connection.ConnectionService
	}
)

func NewConnectionHandler(connectionService connection.ConnectionService) ConnectionHandler {
	return &connectionHandler{connectionService: connectionService}
}

func (h *connectionHandler) GetConnections(c *fiber.Ctx) error {
	res, err := h.connectionService.GetConnections(c.Context())
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetConnections, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetConnections)
}

func (h *connectionHandler) GetFollowers(c *fiber.Ctx) error {
	res, err := h.connectionService.GetFollowers(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetFollowers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFollowers)
}

func (h *connectionHandler) GetFollowed(c *fiber.Ctx) error {
	res, err := h.connectionService.GetFollowed(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetFollowed, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFollowed)
}

func (h *connectionHandler) FollowUser(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedFollowUser, err)
	}

	err = h.connectionService.FollowUser(c.Context(), c.Params("followerID"), c.Params("followedID"), actor)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedFollowUser, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessFollowUser)
}

func (h *connectionHandler) Unfollow(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUnfollowUser, err)
	}

	if err := h.connectionService.Unfollow(c.Context(), c.Params("id"), actor); err != nil {
		return presenters.HandleError(c, domain.MessageFailedUnfollowUser, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessUnfollowUser)
}
