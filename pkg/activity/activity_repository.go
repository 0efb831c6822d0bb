package activity

import (
	"context"

	"RecipeShare-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ActivityRepository interface {
		CreateFinished(ctx context.Context, finished *entities.UserFinishedRecipe) error
		IsRecipeFinishedByUser(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
		GetRecipesFinishedByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error)

		CreateWorkingOn(ctx context.Context, workingOn *entities.UserWorkingOnRecipe) error
		DeleteWorkingOnByPair(ctx context.Context, userID, recipeID uuid.UUID) (int64, error)
		IsUserWorkingOnRecipe(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
		GetRecipesUserWorkingOn(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error)
	}

	activityRepository struct {
		db *gorm.DB
	}
)

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) CreateFinished(ctx context.Context, finished *entities.UserFinishedRecipe) error {
	return r.db.WithContext(ctx).Create(finished).Error
}

func (r *activityRepository) IsRecipeFinishedByUser(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.UserFinishedRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *activityRepository) GetRecipesFinishedByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN user_finished_recipes ON recipes.id = user_finished_recipes.recipe_id").
		Where("user_finished_recipes.user_id = ?", userID).
		Order("user_finished_recipes.created_at asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *activityRepository) CreateWorkingOn(ctx context.Context, workingOn *entities.UserWorkingOnRecipe) error {
	return r.db.WithContext(ctx).Create(workingOn).Error
}

func (r *activityRepository) DeleteWorkingOnByPair(ctx context.Context, userID, recipeID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.UserWorkingOnRecipe{})
	return result.RowsAffected, result.Error
}

func (r *activityRepository) IsUserWorkingOnRecipe(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.UserWorkingOnRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *activityRepository) GetRecipesUserWorkingOn(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN user_working_on_recipes ON recipes.id = user_working_on_recipes.recipe_id").
		Where("user_working_on_recipes.user_id = ?", userID).
		Order("user_working_on_recipes.created_at asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
