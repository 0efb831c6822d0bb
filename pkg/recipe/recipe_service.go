package recipe

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/internal/utils"
	"RecipeShare-Backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// UserGetter is the slice of the user repository this service needs.
	UserGetter interface {
		GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	}

	// CategoryGetter is the slice of the category repository this service needs.
	CategoryGetter interface {
		GetCategoryByID(ctx context.Context, id uuid.UUID) (*entities.Category, error)
	}

	RecipeService interface {
		GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error)
		GetRecipeDetail(ctx context.Context, recipeID string) (*entities.Recipe, error)
		GetRecipeOwner(ctx context.Context, recipeID string) (domain.PublicUser, error)
		GetFirstRecipe(ctx context.Context) (*entities.Recipe, error)
		SearchRecipes(ctx context.Context, term string) ([]*entities.Recipe, error)
		GetRecipesSorted(ctx context.Context) ([]*entities.Recipe, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, actor domain.Actor) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, actor domain.Actor) (*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, recipeID string, actor domain.Actor) error
		UploadPicture(ctx context.Context, recipeID string, fileHeader *multipart.FileHeader, actor domain.Actor) (*entities.Recipe, error)
		GetRecipeCategories(ctx context.Context, recipeID string) ([]*entities.Category, error)
		AttachCategory(ctx context.Context, recipeID, categoryID string, actor domain.Actor) error
		DetachCategory(ctx context.Context, recipeID, categoryID string, actor domain.Actor) error
	}

	recipeService struct {
		recipeRepository   RecipeRepository
		userRepository     UserGetter
		categoryRepository CategoryGetter
		s3                 storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	userRepository UserGetter,
	categoryRepository CategoryGetter,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:   recipeRepository,
		userRepository:     userRepository,
		categoryRepository: categoryRepository,
		s3:                 s3,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error) {
	return s.recipeRepository.GetRecipes(ctx, page, limit)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string) (*entities.Recipe, error) {
	return s.findRecipe(ctx, recipeID)
}

func (s *recipeService) GetRecipeOwner(ctx context.Context, recipeID string) (domain.PublicUser, error) {
	targetRecipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return domain.PublicUser{}, err
	}

	owner, err := s.userRepository.GetUserByID(ctx, targetRecipe.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PublicUser{}, domain.ErrUserNotFound
		}
		return domain.PublicUser{}, err
	}

	return domain.ToPublicUser(owner), nil
}

func (s *recipeService) GetFirstRecipe(ctx context.Context) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetFirstRecipe(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// SearchRecipes filters on the exact recipe name. Substring matching was
// considered and deliberately not introduced, clients depend on exact
// lookups for duplicate detection.
func (s *recipeService) SearchRecipes(ctx context.Context, term string) ([]*entities.Recipe, error) {
	if term == "" {
		return nil, domain.ErrSearchTermRequired
	}
	return s.recipeRepository.GetRecipesByName(ctx, term)
}

func (s *recipeService) GetRecipesSorted(ctx context.Context) ([]*entities.Recipe, error) {
	return s.recipeRepository.GetRecipesSortedByName(ctx)
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, actor domain.Actor) (*entities.Recipe, error) {
	// Owner is always the acting user, never taken from the body.
	newRecipe := &entities.Recipe{
		ID:          uuid.New(),
		UserID:      actor.UserID,
		Name:        req.Name,
		Ingredients: req.Ingredients,
		Directions:  req.Directions,
		Servings:    req.Servings,
		PrepTime:    req.PrepTime,
		CookTime:    req.CookTime,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, newRecipe); err != nil {
		return nil, err
	}
	return newRecipe, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, actor domain.Actor) (*entities.Recipe, error) {
	targetRecipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if !actor.CanModify(targetRecipe.UserID) {
		return nil, domain.ErrForbiddenUpdateRecipe
	}

	// UserID is left untouched, ownership never transfers.
	targetRecipe.Name = req.Name
	targetRecipe.Ingredients = req.Ingredients
	targetRecipe.Directions = req.Directions
	targetRecipe.Servings = req.Servings
	targetRecipe.PrepTime = req.PrepTime
	targetRecipe.CookTime = req.CookTime

	if err := s.recipeRepository.SaveRecipe(ctx, targetRecipe); err != nil {
		return nil, err
	}
	return targetRecipe, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, actor domain.Actor) error {
	targetRecipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return err
	}

	if !actor.CanModify(targetRecipe.UserID) {
		return domain.ErrForbiddenDeleteRecipe
	}

	return s.recipeRepository.DeleteRecipe(ctx, targetRecipe.ID)
}

func (s *recipeService) UploadPicture(ctx context.Context, recipeID string, fileHeader *multipart.FileHeader, actor domain.Actor) (*entities.Recipe, error) {
	targetRecipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if !actor.CanModify(targetRecipe.UserID) {
		return nil, domain.ErrForbiddenUpdateRecipe
	}

	key := fmt.Sprintf("recipes/%s/%s", targetRecipe.ID, fileHeader.Filename)
	url, err := s.s3.UploadFile(ctx, fileHeader, key)
	if err != nil {
		return nil, err
	}

	targetRecipe.RecipePicture = url
	if err := s.recipeRepository.SaveRecipe(ctx, targetRecipe); err != nil {
		return nil, err
	}
	return targetRecipe, nil
}

func (s *recipeService) GetRecipeCategories(ctx context.Context, recipeID string) ([]*entities.Category, error) {
	targetRecipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return s.recipeRepository.GetRecipeCategories(ctx, targetRecipe.ID)
}

func (s *recipeService) AttachCategory(ctx context.Context, recipeID, categoryID string, actor domain.Actor) error {
	targetRecipe, targetCategory, err := s.findRecipeAndCategory(ctx, recipeID, categoryID)
	if err != nil {
		return err
	}

	if !actor.CanModify(targetRecipe.UserID) {
		return domain.ErrForbiddenRecipeCategory
	}

	attached, err := s.recipeRepository.IsCategoryAttached(ctx, targetRecipe.ID, targetCategory.ID)
	if err != nil {
		return err
	}
	if attached {
		return domain.ErrCategoryAlreadyAttached
	}

	pivot := &entities.RecipeCategory{
		ID:         uuid.New(),
		RecipeID:   targetRecipe.ID,
		CategoryID: targetCategory.ID,
	}
	if err := s.recipeRepository.AttachCategory(ctx, pivot); err != nil {
		if utils.IsUniqueViolation(err) {
			return domain.ErrCategoryAlreadyAttached
		}
		return err
	}
	return nil
}

func (s *recipeService) DetachCategory(ctx context.Context, recipeID, categoryID string, actor domain.Actor) error {
	targetRecipe, targetCategory, err := s.findRecipeAndCategory(ctx, recipeID, categoryID)
	if err != nil {
		return err
	}

	if !actor.CanModify(targetRecipe.UserID) {
		return domain.ErrForbiddenRecipeCategory
	}

	affected, err := s.recipeRepository.DetachCategory(ctx, targetRecipe.ID, targetCategory.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCategoryNotAttached
	}
	return nil
}

func (s *recipeService) findRecipe(ctx context.Context, recipeID string) (*entities.Recipe, error) {
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

func (s *recipeService) findRecipeAndCategory(ctx context.Context, recipeID, categoryID string) (*entities.Recipe, *entities.Category, error) {
	targetRecipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, nil, err
	}

	cid, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, nil, domain.ErrParseUUID
	}

	targetCategory, err := s.categoryRepository.GetCategoryByID(ctx, cid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrCategoryNotFound
		}
		return nil, nil, err
	}
	return targetRecipe, targetCategory, nil
}
