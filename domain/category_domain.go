package domain

import (
	"fmt"
)

var (
	MessageSuccessGetCategories      = "success get categories"
	MessageSuccessGetCategoryDetail  = "success get category detail"
	MessageSuccessCreateCategory     = "category created successfully"
	MessageSuccessUpdateCategory     = "category updated successfully"
	MessageSuccessDeleteCategory     = "category deleted successfully"
	MessageSuccessGetCategoryRecipes = "success get recipes in category"

	MessageFailedGetCategories      = "failed to get categories"
	MessageFailedGetCategoryDetail  = "failed to get category detail"
	MessageFailedCreateCategory     = "failed to create category"
	MessageFailedUpdateCategory     = "failed to update category"
	MessageFailedDeleteCategory     = "failed to delete category"
	MessageFailedGetCategoryRecipes = "failed to get recipes in category"

	ErrCategoryNotFound        = fmt.Errorf("%w: a category with this ID does not exist", ErrNotFound)
	ErrCategoryNameTaken       = fmt.Errorf("%w: a category with this name already exists", ErrConflict)
	ErrForbiddenManageCategory = fmt.Errorf("%w: you must be an admin to manage categories", ErrForbidden)
)

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}
