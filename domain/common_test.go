package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"RecipeShare-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorCanModify(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	tests := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"owner", Actor{UserID: owner}, true},
		{"admin", Actor{UserID: other, Admin: true}, true},
		{"admin owner", Actor{UserID: owner, Admin: true}, true},
		{"stranger", Actor{UserID: other}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.CanModify(owner))
		})
	}
}

func TestFeatureErrorsWrapBaseKinds(t *testing.T) {
	tests := []struct {
		err  error
		kind error
	}{
		{ErrUserNotFound, ErrNotFound},
		{ErrRecipeNotCreatedByUser, ErrNotFound},
		{ErrUsernameTaken, ErrConflict},
		{ErrWrongCredentials, ErrUnauthenticated},
		{ErrCredentialsNotFound, ErrUnauthenticated},
		{ErrForbiddenDeleteUser, ErrForbidden},
		{ErrRatingOutOfRange, ErrValidation},
		{ErrAlreadyRated, ErrConflict},
		{ErrCategoryNotAttached, ErrNotFound},
		{ErrCategoryAlreadyAttached, ErrConflict},
		{ErrAlreadyFollowing, ErrConflict},
		{ErrParseUUID, ErrValidation},
		{ErrTokenExpired, ErrUnauthenticated},
	}
	for _, tt := range tests {
		assert.True(t, errors.Is(tt.err, tt.kind), "%v should wrap %v", tt.err, tt.kind)
	}
}

func TestToPublicUserOmitsPassword(t *testing.T) {
	user := &entities.User{
		ID:       uuid.New(),
		Name:     "Grace",
		Username: "grace",
		Password: "$2a$10$secrethash",
		Admin:    true,
	}

	public := ToPublicUser(user)
	raw, err := json.Marshal(public)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secrethash")
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "admin")
	assert.Equal(t, user.ID, public.ID)
	assert.Equal(t, "grace", public.Username)
}

func TestToPublicUsers(t *testing.T) {
	users := []*entities.User{
		{ID: uuid.New(), Name: "A", Username: "a"},
		{ID: uuid.New(), Name: "B", Username: "b"},
	}

	public := ToPublicUsers(users)
	require.Len(t, public, 2)
	assert.Equal(t, users[0].ID, public[0].ID)
	assert.Equal(t, "b", public[1].Username)

	assert.NotNil(t, ToPublicUsers(nil))
	assert.Empty(t, ToPublicUsers(nil))
}

// The entity itself must never leak the hash either, pivots and recipes
// serialize their preloaded user directly.
func TestUserEntityJSONOmitsPassword(t *testing.T) {
	raw, err := json.Marshal(entities.User{Username: "grace", Password: "hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
}
