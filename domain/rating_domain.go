package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Rating values are bounded to 0.0-5.0 inclusive. Anything outside the
// range is rejected before touching the database.
const (
	RatingMin = 0.0
	RatingMax = 5.0
)

var (
	MessageSuccessGetRatings      = "success get ratings"
	MessageSuccessCreateRating    = "recipe rated successfully"
	MessageSuccessUpdateRating    = "rating updated successfully"
	MessageSuccessDeleteRating    = "rating removed successfully"
	MessageSuccessGetRatedRecipes = "success get recipes user rated"
	MessageSuccessGetRecipeRaters = "success get users that rated recipe"

	MessageFailedGetRatings      = "failed to get ratings"
	MessageFailedCreateRating    = "failed to rate recipe"
	MessageFailedUpdateRating    = "failed to update rating"
	MessageFailedDeleteRating    = "failed to remove rating"
	MessageFailedGetRatedRecipes = "failed to get recipes user rated"
	MessageFailedGetRecipeRaters = "failed to get users that rated recipe"

	ErrRatingRequired        = fmt.Errorf("%w: a rating value is required", ErrValidation)
	ErrRatingNotFound        = fmt.Errorf("%w: a rating with this ID does not exist", ErrNotFound)
	ErrRatingNotAttached     = fmt.Errorf("%w: the recipe exists but the specified user did not rate it", ErrNotFound)
	ErrAlreadyRated          = fmt.Errorf("%w: the user already rated this recipe", ErrConflict)
	ErrRatingOutOfRange      = fmt.Errorf("%w: rating must be between 0.0 and 5.0", ErrValidation)
	ErrForbiddenRateRecipe   = fmt.Errorf("%w: you must be logged in as the user of the account to rate a recipe", ErrForbidden)
	ErrForbiddenUpdateRating = fmt.Errorf("%w: you must be logged in as the user of the account to update a rating of a recipe", ErrForbidden)
	ErrForbiddenDeleteRating = fmt.Errorf("%w: you must be logged in as the user of the account or an admin to remove the rating of a recipe", ErrForbidden)
)

type (
	// Rating is a pointer so a body that omits the field fails the
	// required check instead of decoding to a legitimate 0.0 rating.
	RatingRequest struct {
		Rating *float64 `json:"rating" validate:"required"`
	}

	// StrippedRating mirrors a rating row without the recipe reference,
	// used by the per-recipe listing.
	StrippedRating struct {
		ID     uuid.UUID `json:"id"`
		UserID uuid.UUID `json:"user_id"`
		Rating float64   `json:"rating"`
	}
)
