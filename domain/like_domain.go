package domain

import (
	"fmt"
)

var (
	MessageSuccessGetLikes        = "success get likes"
	MessageSuccessLikeRecipe      = "recipe liked successfully"
	MessageSuccessUnlikeRecipe    = "recipe unliked successfully"
	MessageSuccessGetLikedRecipes = "success get recipes user likes"
	MessageSuccessGetRecipeLikers = "success get users that like recipe"
	MessageSuccessGetLike         = "success get like"

	MessageFailedGetLikes        = "failed to get likes"
	MessageFailedLikeRecipe      = "failed to like recipe"
	MessageFailedUnlikeRecipe    = "failed to unlike recipe"
	MessageFailedGetLikedRecipes = "failed to get recipes user likes"
	MessageFailedGetRecipeLikers = "failed to get users that like recipe"
	MessageFailedGetLike         = "failed to get like"

	ErrLikeNotFound          = fmt.Errorf("%w: the recipe exists but the specified user did not save it", ErrNotFound)
	ErrAlreadyLiked          = fmt.Errorf("%w: the user already likes this recipe", ErrConflict)
	ErrForbiddenLikeRecipe   = fmt.Errorf("%w: you must be logged in as the user of the account to save a recipe", ErrForbidden)
	ErrForbiddenUnlikeRecipe = fmt.Errorf("%w: you must be logged in as the user of the account to unsave a recipe", ErrForbidden)
)
