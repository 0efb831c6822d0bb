package like

import (
	"context"

	"RecipeShare-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	LikeRepository interface {
		GetLikes(ctx context.Context) ([]*entities.UserLikesRecipe, error)
		GetLikeByPair(ctx context.Context, userID, recipeID uuid.UUID) (*entities.UserLikesRecipe, error)
		CreateLike(ctx context.Context, like *entities.UserLikesRecipe) error
		DeleteLikeByPair(ctx context.Context, userID, recipeID uuid.UUID) (int64, error)
		GetRecipesLikedByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error)
		GetUsersThatLikeRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entities.User, error)
	}

	likeRepository struct {
		db *gorm.DB
	}
)

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) GetLikes(ctx context.Context) ([]*entities.UserLikesRecipe, error) {
	var likes []*entities.UserLikesRecipe
	if err := r.db.WithContext(ctx).
		Order("created_at asc, id asc").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *likeRepository) GetLikeByPair(ctx context.Context, userID, recipeID uuid.UUID) (*entities.UserLikesRecipe, error) {
	var like entities.UserLikesRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) CreateLike(ctx context.Context, like *entities.UserLikesRecipe) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likeRepository) DeleteLikeByPair(ctx context.Context, userID, recipeID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.UserLikesRecipe{})
	return result.RowsAffected, result.Error
}

func (r *likeRepository) GetRecipesLikedByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN user_likes_recipes ON recipes.id = user_likes_recipes.recipe_id").
		Where("user_likes_recipes.user_id = ?", userID).
		Order("user_likes_recipes.created_at asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *likeRepository) GetUsersThatLikeRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Joins("JOIN user_likes_recipes ON users.id = user_likes_recipes.user_id").
		Where("user_likes_recipes.recipe_id = ?", recipeID).
		Order("user_likes_recipes.created_at asc").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
