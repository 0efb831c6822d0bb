package category

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
	CategoryService interface {
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetCategory(ctx context.Context, categoryID string) (*entities.Category, error)
		GetCategoryRecipes(ctx context.Context, categoryID string) ([]*entities.Recipe, error)
		CreateCategory(ctx context.Context, req domain.CategoryRequest, actor domain.Actor) (*entities.Category, error)
		UpdateCategory(ctx context.Context, categoryID string, req domain.CategoryRequest, actor domain.Actor) (*entities.Category, error)
		DeleteCategory(ctx context.Context, categoryID string, actor domain.Actor) error
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	return s.categoryRepository.GetCategories(ctx)
}

func (s *categoryService) GetCategory(ctx context.Context, categoryID string) (*entities.Category, error) {
	return s.findCategory(ctx, categoryID)
}

func (s *categoryService) GetCategoryRecipes(ctx context.Context, categoryID string) ([]*entities.Recipe, error) {
	category, err := s.findCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return s.categoryRepository.GetRecipesByCategory(ctx, category.ID)
}

// CreateCategory is admin only. Categories have no owner, the admin flag
// is the sole capability that matters.
func (s *categoryService) CreateCategory(ctx context.Context, req domain.CategoryRequest, actor domain.Actor) (*entities.Category, error) {
	if !actor.Admin {
		return nil, domain.ErrForbiddenManageCategory
	}

	if _, err := s.categoryRepository.GetCategoryByName(ctx, req.Name); err == nil {
		return nil, domain.ErrCategoryNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &entities.Category{
		ID:   uuid.New(),
		Name: req.Name,
	}
	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, domain.ErrCategoryNameTaken
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req domain.CategoryRequest, actor domain.Actor) (*entities.Category, error) {
	if !actor.Admin {
		return nil, domain.ErrForbiddenManageCategory
	}

	category, err := s.findCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	if err := s.categoryRepository.SaveCategory(ctx, category); err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, domain.ErrCategoryNameTaken
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string, actor domain.Actor) error {
	if !actor.Admin {
		return domain.ErrForbiddenManageCategory
	}

	category, err := s.findCategory(ctx, categoryID)
	if err != nil {
		return err
	}

	return s.categoryRepository.DeleteCategory(ctx, category.ID)
}

func (s *categoryService) findCategory(ctx context.Context, categoryID string) (*entities.Category, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}
