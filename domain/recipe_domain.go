package domain

import (
	"fmt"
)

var (
	MessageSuccessGetRecipes          = "success get recipes"
	MessageSuccessGetRecipeDetail     = "success get recipe detail"
	MessageSuccessCreateRecipe        = "recipe created successfully"
	MessageSuccessUpdateRecipe        = "recipe updated successfully"
	MessageSuccessDeleteRecipe        = "recipe deleted successfully"
	MessageSuccessSearchRecipes       = "success search recipes"
	MessageSuccessGetRecipeOwner      = "success get recipe owner"
	MessageSuccessUploadPicture       = "recipe picture uploaded successfully"
	MessageSuccessAttachCategory      = "category attached to recipe successfully"
	MessageSuccessDetachCategory      = "category detached from recipe successfully"
	MessageSuccessGetRecipeCategories = "success get recipe categories"

	MessageFailedGetRecipes          = "failed to get recipes"
	MessageFailedGetRecipeDetail     = "failed to get recipe detail"
	MessageFailedCreateRecipe        = "failed to create recipe"
	MessageFailedUpdateRecipe        = "failed to update recipe"
	MessageFailedDeleteRecipe        = "failed to delete recipe"
	MessageFailedSearchRecipes       = "failed to search recipes"
	MessageFailedGetRecipeOwner      = "failed to get recipe owner"
	MessageFailedUploadPicture       = "failed to upload recipe picture"
	MessageFailedAttachCategory      = "failed to attach category to recipe"
	MessageFailedDetachCategory      = "failed to detach category from recipe"
	MessageFailedGetRecipeCategories = "failed to get recipe categories"

	ErrRecipeNotFound          = fmt.Errorf("%w: a recipe with this ID does not exist", ErrNotFound)
	ErrForbiddenUpdateRecipe   = fmt.Errorf("%w: you must have created the recipe or be an admin to update the recipe", ErrForbidden)
	ErrForbiddenDeleteRecipe   = fmt.Errorf("%w: you must have created the recipe or be an admin to delete the recipe", ErrForbidden)
	ErrForbiddenRecipeCategory = fmt.Errorf("%w: you must have created the recipe or be an admin to change its categories", ErrForbidden)
	ErrCategoryAlreadyAttached = fmt.Errorf("%w: the recipe already belongs to this category", ErrConflict)
	ErrCategoryNotAttached     = fmt.Errorf("%w: the recipe does not belong to this category", ErrNotFound)
	ErrSearchTermRequired      = fmt.Errorf("%w: query parameter term is required", ErrValidation)
)

type (
	CreateRecipeRequest struct {
		Name        string   `json:"name" validate:"required"`
		Ingredients []string `json:"ingredients" validate:"required,min=1"`
		Directions  []string `json:"directions" validate:"required,min=1"`
		Servings    int      `json:"servings" validate:"required,min=1"`
		PrepTime    string   `json:"prep_time" validate:"required"`
		CookTime    string   `json:"cook_time" validate:"required"`
	}

	// UpdateRecipeRequest deliberately has no owner field. Ownership is
	// captured at creation and never transferred.
	UpdateRecipeRequest struct {
		Name        string   `json:"name" validate:"required"`
		Ingredients []string `json:"ingredients" validate:"required,min=1"`
		Directions  []string `json:"directions" validate:"required,min=1"`
		Servings    int      `json:"servings" validate:"required,min=1"`
		PrepTime    string   `json:"prep_time" validate:"required"`
		CookTime    string   `json:"cook_time" validate:"required"`
	}
)
