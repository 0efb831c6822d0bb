package recipe

import (
	"context"

	"RecipeShare-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error)
		GetFirstRecipe(ctx context.Context) (*entities.Recipe, error)
		GetRecipesByName(ctx context.Context, name string) ([]*entities.Recipe, error)
		GetRecipesSortedByName(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error)
		SaveRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id uuid.UUID) error

		AttachCategory(ctx context.Context, pivot *entities.RecipeCategory) error
		DetachCategory(ctx context.Context, recipeID, categoryID uuid.UUID) (int64, error)
		IsCategoryAttached(ctx context.Context, recipeID, categoryID uuid.UUID) (bool, error)
		GetRecipeCategories(ctx context.Context, recipeID uuid.UUID) ([]*entities.Category, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(limit).
		Order("created_at asc, id asc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

// GetFirstRecipe returns the oldest recipe. Ordering is explicit so the
// result does not depend on storage insertion order.
func (r *recipeRepository) GetFirstRecipe(ctx context.Context) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Order("created_at asc, id asc").
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipesByName(ctx context.Context, name string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("created_at asc, id asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesSortedByName(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc, id asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) SaveRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) AttachCategory(ctx context.Context, pivot *entities.RecipeCategory) error {
	return r.db.WithContext(ctx).Create(pivot).Error
}

func (r *recipeRepository) DetachCategory(ctx context.Context, recipeID, categoryID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("recipe_id = ? AND category_id = ?", recipeID, categoryID).
		Delete(&entities.RecipeCategory{})
	return result.RowsAffected, result.Error
}

func (r *recipeRepository) IsCategoryAttached(ctx context.Context, recipeID, categoryID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeCategory{}).
		Where("recipe_id = ? AND category_id = ?", recipeID, categoryID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) GetRecipeCategories(ctx context.Context, recipeID uuid.UUID) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Joins("JOIN recipe_categories ON categories.id = recipe_categories.category_id").
		Where("recipe_categories.recipe_id = ?", recipeID).
		Order("categories.name asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
