package rating

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

	RatingService interface {
		GetRatings(ctx context.Context) ([]*entities.UserRatesRecipe, error)
		GetRecipeRatings(ctx context.Context, recipeID string) ([]*entities.UserRatesRecipe, error)
		GetRecipeRatingsStripped(ctx context.Context, recipeID string) ([]domain.StrippedRating, error)
		GetRecipeRaters(ctx context.Context, recipeID string) ([]domain.PublicUser, error)
		GetUserRatings(ctx context.Context, userID string) ([]*entities.UserRatesRecipe, error)
		GetRecipesUserRated(ctx context.Context, userID string) ([]*entities.Recipe, error)
		CreateRating(ctx context.Context, userID, recipeID string, req domain.RatingRequest, actor domain.Actor) error
		UpdateRating(ctx context.Context, ratingID string, req domain.RatingRequest, actor domain.Actor) error
		DeleteRating(ctx context.Context, userID, recipeID string, actor domain.Actor) error
	}

	ratingService struct {
		ratingRepository RatingRepository
		userRepository   UserGetter
		recipeRepository RecipeGetter
	}
)

func NewRatingService(
	ratingRepository RatingRepository,
	userRepository UserGetter,
	recipeRepository RecipeGetter,
) RatingService {
	return &ratingService{
		ratingRepository: ratingRepository,
		userRepository:   userRepository,
		recipeRepository: recipeRepository,
	}
}

func (s *ratingService) GetRatings(ctx context.Context) ([]*entities.UserRatesRecipe, error) {
	return s.ratingRepository.GetRatings(ctx)
}

func (s *ratingService) GetRecipeRatings(ctx context.Context, recipeID string) ([]*entities.UserRatesRecipe, error) {
	targetRecipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return s.ratingRepository.GetRatingsByRecipe(ctx, targetRecipe.ID)
}

func (s *ratingService) GetRecipeRatingsStripped(ctx context.Context, recipeID string) ([]domain.StrippedRating, error) {
	ratings, err := s.GetRecipeRatings(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	stripped := make([]domain.StrippedRating, 0, len(ratings))
	for _, r := range ratings {
		stripped = append(stripped, domain.StrippedRating{
			ID:     r.ID,
			UserID: r.UserID,
			Rating: r.Rating,
		})
	}
	return stripped, nil
}

func (s *ratingService) GetRecipeRaters(ctx context.Context, recipeID string) ([]domain.PublicUser, error) {
	targetRecipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	raters, err := s.ratingRepository.GetUsersThatRatedRecipe(ctx, targetRecipe.ID)
	if err != nil {
		return nil, err
	}
	return domain.ToPublicUsers(raters), nil
}

func (s *ratingService) GetUserRatings(ctx context.Context, userID string) ([]*entities.UserRatesRecipe, error) {
	targetUser, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.ratingRepository.GetRatingsByUser(ctx, targetUser.ID)
}

func (s *ratingService) GetRecipesUserRated(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	targetUser, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.ratingRepository.GetRecipesRatedByUser(ctx, targetUser.ID)
}

func ratingValue(req domain.RatingRequest) (float64, error) {
	if req.Rating == nil {
		return 0, domain.ErrRatingRequired
	}
	if *req.Rating < domain.RatingMin || *req.Rating > domain.RatingMax {
		return 0, domain.ErrRatingOutOfRange
	}
	return *req.Rating, nil
}

func (s *ratingService) CreateRating(ctx context.Context, userID, recipeID string, req domain.RatingRequest, actor domain.Actor) error {
	value, err := ratingValue(req)
	if err != nil {
		return err
	}

	targetUser, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	targetRecipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return err
	}

	if !actor.CanModify(targetUser.ID) {
		return domain.ErrForbiddenRateRecipe
	}

	rated, err := s.ratingRepository.IsRecipeRatedByUser(ctx, targetUser.ID, targetRecipe.ID)
	if err != nil {
		return err
	}
	if rated {
		return domain.ErrAlreadyRated
	}

	newRating := &entities.UserRatesRecipe{
		ID:       uuid.New(),
		UserID:   targetUser.ID,
		RecipeID: targetRecipe.ID,
		Rating:   value,
	}
	if err := s.ratingRepository.CreateRating(ctx, newRating); err != nil {
		if utils.IsUniqueViolation(err) {
			return domain.ErrAlreadyRated
		}
		return err
	}
	return nil
}

func (s *ratingService) UpdateRating(ctx context.Context, ratingID string, req domain.RatingRequest, actor domain.Actor) error {
	value, err := ratingValue(req)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ratingID)
	if err != nil {
		return domain.ErrParseUUID
	}

	targetRating, err := s.ratingRepository.GetRatingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRatingNotFound
		}
		return err
	}

	// Authorization is against the original rater, not any id in the body.
	if !actor.CanModify(targetRating.UserID) {
		return domain.ErrForbiddenUpdateRating
	}

	targetRating.Rating = value
	return s.ratingRepository.SaveRating(ctx, targetRating)
}

func (s *ratingService) DeleteRating(ctx context.Context, userID, recipeID string, actor domain.Actor) error {
	targetUser, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	targetRecipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return err
	}

	if !actor.CanModify(targetUser.ID) {
		return domain.ErrForbiddenDeleteRating
	}

	affected, err := s.ratingRepository.DeleteRatingByPair(ctx, targetUser.ID, targetRecipe.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRatingNotAttached
	}
	return nil
}

func (s *ratingService) findUser(ctx context.Context, userID string) (*entities.User, error) {
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

func (s *ratingService) findRecipe(ctx context.Context, recipeID string) (*entities.Recipe, error) {
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
