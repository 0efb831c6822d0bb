package recipe

import (
	"context"
	"mime/multipart"
	"sort"
	"testing"

	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecipeRepository struct {
	recipes map[uuid.UUID]*entities.Recipe
	pivots  map[uuid.UUID]*entities.RecipeCategory
}

func newFakeRecipeRepository(recipes ...*entities.Recipe) *fakeRecipeRepository {
	repo := &fakeRecipeRepository{
		recipes: map[uuid.UUID]*entities.Recipe{},
		pivots:  map[uuid.UUID]*entities.RecipeCategory{},
	}
	for _, r := range recipes {
		repo.recipes[r.ID] = r
	}
	return repo
}

func (f *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	f.recipes[recipe.ID] = recipe
	return nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id uuid.UUID) (*entities.Recipe, error) {
	r, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeRecipeRepository) GetRecipes(_ context.Context, page, limit int) ([]*entities.Recipe, int64, error) {
	return f.all(), int64(len(f.recipes)), nil
}

func (f *fakeRecipeRepository) GetFirstRecipe(_ context.Context) (*entities.Recipe, error) {
	all := f.all()
	if len(all) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return all[0], nil
}

func (f *fakeRecipeRepository) GetRecipesByName(_ context.Context, name string) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, r := range f.all() {
		if r.Name == name {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepository) GetRecipesSortedByName(_ context.Context) ([]*entities.Recipe, error) {
	all := f.all()
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (f *fakeRecipeRepository) GetRecipesByUser(_ context.Context, userID uuid.UUID) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, r := range f.all() {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepository) SaveRecipe(_ context.Context, recipe *entities.Recipe) error {
	f.recipes[recipe.ID] = recipe
	return nil
}

func (f *fakeRecipeRepository) DeleteRecipe(_ context.Context, id uuid.UUID) error {
	delete(f.recipes, id)
	return nil
}

func (f *fakeRecipeRepository) AttachCategory(_ context.Context, pivot *entities.RecipeCategory) error {
	f.pivots[pivot.ID] = pivot
	return nil
}

func (f *fakeRecipeRepository) DetachCategory(_ context.Context, recipeID, categoryID uuid.UUID) (int64, error) {
	for id, p := range f.pivots {
		if p.RecipeID == recipeID && p.CategoryID == categoryID {
			delete(f.pivots, id)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeRecipeRepository) IsCategoryAttached(_ context.Context, recipeID, categoryID uuid.UUID) (bool, error) {
	for _, p := range f.pivots {
		if p.RecipeID == recipeID && p.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRecipeRepository) GetRecipeCategories(_ context.Context, recipeID uuid.UUID) ([]*entities.Category, error) {
	return nil, nil
}

func (f *fakeRecipeRepository) all() []*entities.Recipe {
	out := make([]*entities.Recipe, 0, len(f.recipes))
	for _, r := range f.recipes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out
}

type fakeUserGetter map[uuid.UUID]*entities.User

func (f fakeUserGetter) GetUserByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := f[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

type fakeCategoryGetter map[uuid.UUID]*entities.Category

func (f fakeCategoryGetter) GetCategoryByID(_ context.Context, id uuid.UUID) (*entities.Category, error) {
	c, ok := f[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

type fakeS3 struct{ uploads []string }

func (f *fakeS3) UploadFile(_ context.Context, _ *multipart.FileHeader, key string) (string, error) {
	f.uploads = append(f.uploads, key)
	return "https://bucket.s3.test.amazonaws.com/" + key, nil
}

func validRequest(name string) domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Name:        name,
		Ingredients: []string{"flour", "water"},
		Directions:  []string{"mix", "bake"},
		Servings:    4,
		PrepTime:    "10m",
		CookTime:    "40m",
	}
}

func TestCreateRecipeOwnerIsActor(t *testing.T) {
	repo := newFakeRecipeRepository()
	actor := domain.Actor{UserID: uuid.New()}
	service := NewRecipeService(repo, fakeUserGetter{}, fakeCategoryGetter{}, nil)

	created, err := service.CreateRecipe(context.Background(), validRequest("Bread"), actor)
	require.NoError(t, err)
	assert.Equal(t, actor.UserID, created.UserID)
	assert.Equal(t, "Bread", created.Name)
}

func TestUpdateRecipeAuthorization(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name    string
		actor   domain.Actor
		wantErr error
	}{
		{"owner", domain.Actor{UserID: owner}, nil},
		{"admin", domain.Actor{UserID: uuid.New(), Admin: true}, nil},
		{"stranger", domain.Actor{UserID: uuid.New()}, domain.ErrForbiddenUpdateRecipe},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &entities.Recipe{ID: uuid.New(), UserID: owner, Name: "Bread"}
			repo := newFakeRecipeRepository(target)
			service := NewRecipeService(repo, fakeUserGetter{}, fakeCategoryGetter{}, nil)

			updated, err := service.UpdateRecipe(
				context.Background(),
				target.ID.String(),
				domain.UpdateRecipeRequest(validRequest("Sourdough")),
				tt.actor,
			)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Sourdough", updated.Name)
			assert.Equal(t, owner, updated.UserID, "ownership must never transfer on update")
		})
	}
}

func TestDeleteRecipeAuthorization(t *testing.T) {
	owner := uuid.New()
	target := &entities.Recipe{ID: uuid.New(), UserID: owner}
	repo := newFakeRecipeRepository(target)
	service := NewRecipeService(repo, fakeUserGetter{}, fakeCategoryGetter{}, nil)

	err := service.DeleteRecipe(context.Background(), target.ID.String(), domain.Actor{UserID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrForbiddenDeleteRecipe)

	err = service.DeleteRecipe(context.Background(), target.ID.String(), domain.Actor{UserID: owner})
	require.NoError(t, err)

	_, err = service.GetRecipeDetail(context.Background(), target.ID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestSearchRecipes(t *testing.T) {
	owner := uuid.New()
	bread := &entities.Recipe{ID: uuid.New(), UserID: owner, Name: "Bread"}
	breadSticks := &entities.Recipe{ID: uuid.New(), UserID: owner, Name: "Bread Sticks"}
	repo := newFakeRecipeRepository(bread, breadSticks)
	service := NewRecipeService(repo, fakeUserGetter{}, fakeCategoryGetter{}, nil)

	_, err := service.SearchRecipes(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrSearchTermRequired)

	// Exact match only, "Bread" must not return "Bread Sticks".
	found, err := service.SearchRecipes(context.Background(), "Bread")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, bread.ID, found[0].ID)

	none, err := service.SearchRecipes(context.Background(), "bread")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAttachCategory(t *testing.T) {
	owner := uuid.New()
	target := &entities.Recipe{ID: uuid.New(), UserID: owner}
	cat := &entities.Category{ID: uuid.New(), Name: "Baking"}
	repo := newFakeRecipeRepository(target)
	categories := fakeCategoryGetter{cat.ID: cat}
	service := NewRecipeService(repo, fakeUserGetter{}, categories, nil)

	err := service.AttachCategory(context.Background(), target.ID.String(), cat.ID.String(), domain.Actor{UserID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrForbiddenRecipeCategory)

	err = service.AttachCategory(context.Background(), target.ID.String(), cat.ID.String(), domain.Actor{UserID: owner})
	require.NoError(t, err)

	err = service.AttachCategory(context.Background(), target.ID.String(), cat.ID.String(), domain.Actor{UserID: owner})
	assert.ErrorIs(t, err, domain.ErrCategoryAlreadyAttached)

	err = service.AttachCategory(context.Background(), target.ID.String(), uuid.New().String(), domain.Actor{UserID: owner})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestDetachCategory(t *testing.T) {
	owner := uuid.New()
	target := &entities.Recipe{ID: uuid.New(), UserID: owner}
	cat := &entities.Category{ID: uuid.New(), Name: "Baking"}
	repo := newFakeRecipeRepository(target)
	categories := fakeCategoryGetter{cat.ID: cat}
	service := NewRecipeService(repo, fakeUserGetter{}, categories, nil)

	err := service.DetachCategory(context.Background(), target.ID.String(), cat.ID.String(), domain.Actor{UserID: owner})
	assert.ErrorIs(t, err, domain.ErrCategoryNotAttached)

	require.NoError(t, service.AttachCategory(context.Background(), target.ID.String(), cat.ID.String(), domain.Actor{UserID: owner}))

	err = service.DetachCategory(context.Background(), target.ID.String(), cat.ID.String(), domain.Actor{UserID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrForbiddenRecipeCategory)

	err = service.DetachCategory(context.Background(), target.ID.String(), cat.ID.String(), domain.Actor{UserID: uuid.New(), Admin: true})
	require.NoError(t, err)
}

func TestUploadPicture(t *testing.T) {
	owner := uuid.New()
	target := &entities.Recipe{ID: uuid.New(), UserID: owner}
	repo := newFakeRecipeRepository(target)
	s3 := &fakeS3{}
	service := NewRecipeService(repo, fakeUserGetter{}, fakeCategoryGetter{}, s3)
	header := &multipart.FileHeader{Filename: "bread.jpg"}

	_, err := service.UploadPicture(context.Background(), target.ID.String(), header, domain.Actor{UserID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrForbiddenUpdateRecipe)
	assert.Empty(t, s3.uploads)

	updated, err := service.UploadPicture(context.Background(), target.ID.String(), header, domain.Actor{UserID: owner})
	require.NoError(t, err)
	assert.Contains(t, updated.RecipePicture, "bread.jpg")
	require.Len(t, s3.uploads, 1)
	assert.Equal(t, "recipes/"+target.ID.String()+"/bread.jpg", s3.uploads[0])
}

func TestGetRecipeOwner(t *testing.T) {
	owner := &entities.User{ID: uuid.New(), Name: "Grace", Username: "grace", Password: "hash"}
	target := &entities.Recipe{ID: uuid.New(), UserID: owner.ID}
	repo := newFakeRecipeRepository(target)
	service := NewRecipeService(repo, fakeUserGetter{owner.ID: owner}, fakeCategoryGetter{}, nil)

	public, err := service.GetRecipeOwner(context.Background(), target.ID.String())
	require.NoError(t, err)
	assert.Equal(t, owner.ID, public.ID)
	assert.Equal(t, "grace", public.Username)
}
