package rating

import (
	"context"

	"RecipeShare-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RatingRepository interface {
		GetRatings(ctx context.Context) ([]*entities.UserRatesRecipe, error)
		GetRatingByID(ctx context.Context, id uuid.UUID) (*entities.UserRatesRecipe, error)
		GetRatingsByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entities.UserRatesRecipe, error)
		GetRatingsByUser(ctx context.Context, userID uuid.UUID) ([]*entities.UserRatesRecipe, error)
		CreateRating(ctx context.Context, rating *entities.UserRatesRecipe) error
		SaveRating(ctx context.Context, rating *entities.UserRatesRecipe) error
		DeleteRatingByPair(ctx context.Context, userID, recipeID uuid.UUID) (int64, error)
		IsRecipeRatedByUser(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
		GetRecipesRatedByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error)
		GetUsersThatRatedRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entities.User, error)
	}

	ratingRepository struct {
		db *gorm.DB
	}
)

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) GetRatings(ctx context.Context) ([]*entities.UserRatesRecipe, error) {
	var ratings []*entities.UserRatesRecipe
	if err := r.db.WithContext(ctx).
		Order("created_at asc, id asc").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) GetRatingByID(ctx context.Context, id uuid.UUID) (*entities.UserRatesRecipe, error) {
	var rating entities.UserRatesRecipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetRatingsByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entities.UserRatesRecipe, error) {
	var ratings []*entities.UserRatesRecipe
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at asc, id asc").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) GetRatingsByUser(ctx context.Context, userID uuid.UUID) ([]*entities.UserRatesRecipe, error) {
	var ratings []*entities.UserRatesRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc, id asc").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) CreateRating(ctx context.Context, rating *entities.UserRatesRecipe) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) SaveRating(ctx context.Context, rating *entities.UserRatesRecipe) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *ratingRepository) DeleteRatingByPair(ctx context.Context, userID, recipeID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.UserRatesRecipe{})
	return result.RowsAffected, result.Error
}

func (r *ratingRepository) IsRecipeRatedByUser(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.UserRatesRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ratingRepository) GetRecipesRatedByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN user_rates_recipes ON recipes.id = user_rates_recipes.recipe_id").
		Where("user_rates_recipes.user_id = ?", userID).
		Order("user_rates_recipes.created_at asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *ratingRepository) GetUsersThatRatedRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Joins("JOIN user_rates_recipes ON users.id = user_rates_recipes.user_id").
		Where("user_rates_recipes.recipe_id = ?", recipeID).
		Order("user_rates_recipes.created_at asc").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
