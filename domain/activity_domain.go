package domain

import (
	"fmt"
)

var (
	MessageSuccessFinishRecipe       = "recipe marked as finished successfully"
	MessageSuccessStartRecipe        = "recipe marked as in progress successfully"
	MessageSuccessStopRecipe         = "recipe removed from in progress successfully"
	MessageSuccessGetFinishedRecipes = "success get recipes user finished"
	MessageSuccessGetStartedRecipes  = "success get recipes user is working on"

	MessageFailedFinishRecipe       = "failed to mark recipe as finished"
	MessageFailedStartRecipe        = "failed to mark recipe as in progress"
	MessageFailedStopRecipe         = "failed to remove recipe from in progress"
	MessageFailedGetFinishedRecipes = "failed to get recipes user finished"
	MessageFailedGetStartedRecipes  = "failed to get recipes user is working on"

	ErrAlreadyFinished         = fmt.Errorf("%w: the user already finished this recipe", ErrConflict)
	ErrAlreadyStarted          = fmt.Errorf("%w: the user is already working on this recipe", ErrConflict)
	ErrNotWorkingOn            = fmt.Errorf("%w: the recipe exists but the specified user is not working on it", ErrNotFound)
	ErrForbiddenRecipeActivity = fmt.Errorf("%w: you must be logged in as the user of the account to start working on a recipe", ErrForbidden)
)
