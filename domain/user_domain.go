package domain

import (
	"fmt"

	"RecipeShare-Backend/entities"

	"github.com/google/uuid"
)

var (
	MessageSuccessGetUsers       = "success get users"
	MessageSuccessGetUser        = "success get user detail"
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login success"
	MessageSuccessDeleteUser     = "user deleted successfully"
	MessageSuccessGetMe          = "success get profile"
	MessageSuccessGetUserRecipes = "success get recipes user created"

	MessageFailedGetUsers       = "failed to get users"
	MessageFailedGetUser        = "failed to get user detail"
	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedDeleteUser     = "failed to delete user"
	MessageFailedGetMe          = "failed to get profile"
	MessageFailedGetUserRecipes = "failed to get recipes user created"

	ErrUserNotFound           = fmt.Errorf("%w: a user with this ID does not exist", ErrNotFound)
	ErrRecipeNotCreatedByUser = fmt.Errorf("%w: the recipe exists but the specified user did not create it", ErrNotFound)
	ErrUsernameTaken          = fmt.Errorf("%w: username is already taken", ErrConflict)
	ErrWrongCredentials       = fmt.Errorf("%w: wrong username or password", ErrUnauthenticated)
	ErrCredentialsNotFound    = fmt.Errorf("%w: basic credentials missing", ErrUnauthenticated)
	ErrForbiddenDeleteUser    = fmt.Errorf("%w: you must be logged in as the user of the account or an admin to delete it", ErrForbidden)
)

type (
	RegisterUserRequest struct {
		Name     string `json:"name" validate:"required"`
		Username string `json:"username" validate:"required,min=3"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	// PublicUser is the only shape a user is ever serialized in. The
	// password never leaves the persistence layer.
	PublicUser struct {
		ID       uuid.UUID `json:"id"`
		Name     string    `json:"name"`
		Username string    `json:"username"`
	}
)

func ToPublicUser(user *entities.User) PublicUser {
	return PublicUser{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
	}
}

// ToPublicUsers composes ToPublicUser over a collection.
func ToPublicUsers(users []*entities.User) []PublicUser {
	publicUsers := make([]PublicUser, 0, len(users))
	for _, user := range users {
		publicUsers = append(publicUsers, ToPublicUser(user))
	}
	return publicUsers
}
