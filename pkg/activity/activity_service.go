package activity

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

	ActivityService interface {
		GetFinishedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		FinishRecipe(ctx context.Context, userID, recipeID string, actor domain.Actor) error
		GetStartedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		StartRecipe(ctx context.Context, userID, recipeID string, actor domain.Actor) error
		StopRecipe(ctx context.Context, userID, recipeID string, actor domain.Actor) error
	}

	activityService struct {
		activityRepository ActivityRepository
		userRepository     UserGetter
		recipeRepository   RecipeGetter
	}
)

func NewActivityService(
	activityRepository ActivityRepository,
	userRepository UserGetter,
	recipeRepository RecipeGetter,
) ActivityService {
	return &activityService{
		activityRepository: activityRepository,
		userRepository:     userRepository,
		recipeRepository:   recipeRepository,
	}
}

func (s *activityService) GetFinishedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	targetUser, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.activityRepository.GetRecipesFinishedByUser(ctx, targetUser.ID)
}

func (s *activityService) FinishRecipe(ctx context.Context, userID, recipeID string, actor domain.Actor) error {
	targetUser, targetRecipe, err := s.findUserAndRecipe(ctx, userID, recipeID)
	if err != nil {
		return err
	}

	if !actor.CanModify(targetUser.ID) {
		return domain.ErrForbiddenRecipeActivity
	}

	finished, err := s.activityRepository.IsRecipeFinishedByUser(ctx, targetUser.ID, targetRecipe.ID)
	if err != nil {
		return err
	}
	if finished {
		return domain.ErrAlreadyFinished
	}

	pivot := &entities.UserFinishedRecipe{
		ID:       uuid.New(),
		UserID:   targetUser.ID,
		RecipeID: targetRecipe.ID,
	}
	if err := s.activityRepository.CreateFinished(ctx, pivot); err != nil {
		if utils.IsUniqueViolation(err) {
			return domain.ErrAlreadyFinished
		}
		return err
	}
	return nil
}

func (s *activityService) GetStartedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	targetUser, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.activityRepository.GetRecipesUserWorkingOn(ctx, targetUser.ID)
}

func (s *activityService) StartRecipe(ctx context.Context, userID, recipeID string, actor domain.Actor) error {
	targetUser, targetRecipe, err := s.findUserAndRecipe(ctx, userID, recipeID)
	if err != nil {
		return err
	}

	if !actor.CanModify(targetUser.ID) {
		return domain.ErrForbiddenRecipeActivity
	}

	started, err := s.activityRepository.IsUserWorkingOnRecipe(ctx, targetUser.ID, targetRecipe.ID)
	if err != nil {
		return err
	}
	if started {
		return domain.ErrAlreadyStarted
	}

	pivot := &entities.UserWorkingOnRecipe{
		ID:       uuid.New(),
		UserID:   targetUser.ID,
		RecipeID: targetRecipe.ID,
	}
	if err := s.activityRepository.CreateWorkingOn(ctx, pivot); err != nil {
		if utils.IsUniqueViolation(err) {
			return domain.ErrAlreadyStarted
		}
		return err
	}
	return nil
}

func (s *activityService) StopRecipe(ctx context.Context, userID, recipeID string, actor domain.Actor) error {
	targetUser, targetRecipe, err := s.findUserAndRecipe(ctx, userID, recipeID)
	if err != nil {
		return err
	}

	if !actor.CanModify(targetUser.ID) {
		return domain.ErrForbiddenRecipeActivity
	}

	affected, err := s.activityRepository.DeleteWorkingOnByPair(ctx, targetUser.ID, targetRecipe.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotWorkingOn
	}
	return nil
}

func (s *activityService) findUser(ctx context.Context, userID string) (*entities.User, error) {
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

func (s *activityService) findUserAndRecipe(ctx context.Context, userID, recipeID string) (*entities.User, *entities.Recipe, error) {
	targetUser, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	rid, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, nil, domain.ErrParseUUID
	}

	targetRecipe, err := s.recipeRepository.GetRecipeByID(ctx, rid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrRecipeNotFound
		}
		return nil, nil, err
	}
	return targetUser, targetRecipe, nil
}
