package like

import (
	"context"
	"errors"

	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserGetter interface {
		GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	}

	RecipeGetter interface {
		GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
	}

	LikeService interface {
		GetLikes(ctx context.Context) ([]*entities.UserLikesRecipe, error)
		GetLike(ctx context.Context, userID, recipeID string) (*entities.UserLikesRecipe, error)
		GetRecipeLikers(ctx context.Context, recipeID string) ([]domain.PublicUser, error)
		GetRecipesUserLikes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		LikeRecipe(ctx context.Context, userID, recipeID string, actor domain.Actor) error
		UnlikeRecipe(ctx context.Context, userID, recipeID string, actor domain.Actor) error
	}

	likeService struct {
		likeRepository   LikeRepository
		userRepository   UserGetter
		recipeRepository RecipeGetter
	}
)

func NewLikeService(
	likeRepository LikeRepository,
	userRepository UserGetter,
	recipeRepository RecipeGetter,
) LikeService {
	return &likeService{
		likeRepository:   likeRepository,
		userRepository:   userRepository,
		recipeRepository: recipeRepository,
	}
}

func (s *likeService) GetLikes(ctx context.Context) ([]*entities.UserLikesRecipe, error) {
	return s.likeRepository.GetLikes(ctx)
}

// GetLike answers "did this user save this recipe". A missing pair is a
// relation-specific not found, distinct from a missing user or recipe.
func (s *likeService) GetLike(ctx context.Context, userID, recipeID string) (*entities.UserLikesRecipe, error) {
	targetUser, targetRecipe, err := s.findUserAndRecipe(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}

	like, err := s.likeRepository.GetLikeByPair(ctx, targetUser.ID, targetRecipe.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLikeNotFound
		}
		return nil, err
	}
	return like, nil
}

func (s *likeService) GetRecipeLikers(ctx context.Context, recipeID string) ([]domain.PublicUser, error) {
	targetRecipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	likers, err := s.likeRepository.GetUsersThatLikeRecipe(ctx, targetRecipe.ID)
	if err != nil {
		return nil, err
	}
	return domain.ToPublicUsers(likers), nil
}

func (s *likeService) GetRecipesUserLikes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	targetUser, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.likeRepository.GetRecipesLikedByUser(ctx, targetUser.ID)
}

func (s *likeService) LikeRecipe(ctx context.Context, userID, recipeID string, actor domain.Actor) error {
	targetUser, targetRecipe, err := s.findUserAndRecipe(ctx, userID, recipeID)
	if err != nil {
		return err
	}

	if !actor.CanModify(targetUser.ID) {
		return domain.ErrForbiddenLikeRecipe
	}

	if _, err := s.likeRepository.GetLikeByPair(ctx, targetUser.ID, targetRecipe.ID); err == nil {
		return domain.ErrAlreadyLiked
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	newLike := &entities.UserLikesRecipe{
		ID:       uuid.New(),
		UserID:   targetUser.ID,
		RecipeID: targetRecipe.ID,
	}
	if err := s.likeRepository.CreateLike(ctx, newLike); err != nil {
		if utils.IsUniqueViolation(err) {
			return domain.ErrAlreadyLiked
		}
		return err
	}
	return nil
}

func (s *likeService) UnlikeRecipe(ctx context.Context, userID, recipeID string, actor domain.Actor) error {
	targetUser, targetRecipe, err := s.findUserAndRecipe(ctx, userID, recipeID)
	if err != nil {
		return err
	}

	if !actor.CanModify(targetUser.ID) {
		return domain.ErrForbiddenUnlikeRecipe
	}

	affected, err := s.likeRepository.DeleteLikeByPair(ctx, targetUser.ID, targetRecipe.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrLikeNotFound
	}
	return nil
}

func (s *likeService) findUser(ctx context.Context, userID string) (*entities.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	targetUser, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return targetUser, nil
}

func (s *likeService) findRecipe(ctx context.Context, recipeID string) (*entities.Recipe, error) {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	targetRecipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return targetRecipe, nil
}

func (s *likeService) findUserAndRecipe(ctx context.Context, userID, recipeID string) (*entities.User, *entities.Recipe, error) {
	targetUser, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	targetRecipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, nil, err
	}
	return targetUser, targetRecipe, nil
}
