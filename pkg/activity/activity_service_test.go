package activity

import (
	"context"
	"testing"

	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeActivityRepository struct {
	ActivityRepository
	finished  map[uuid.UUID]*entities.UserFinishedRecipe
	workingOn map[uuid.UUID]*entities.UserWorkingOnRecipe
}

func newFakeActivityRepository() *fakeActivityRepository {
	return &fakeActivityRepository{
		finished:  map[uuid.UUID]*entities.UserFinishedRecipe{},
		workingOn: map[uuid.UUID]*entities.UserWorkingOnRecipe{},
	}
}

func (f *fakeActivityRepository) CreateFinished(_ context.Context, finished *entities.UserFinishedRecipe) error {
	f.finished[finished.ID] = finished
	return nil
}

func (f *fakeActivityRepository) IsRecipeFinishedByUser(_ context.Context, userID, recipeID uuid.UUID) (bool, error) {
	for _, p := range f.finished {
		if p.UserID == userID && p.RecipeID == recipeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeActivityRepository) CreateWorkingOn(_ context.Context, workingOn *entities.UserWorkingOnRecipe) error {
	f.workingOn[workingOn.ID] = workingOn
	return nil
}

func (f *fakeActivityRepository) DeleteWorkingOnByPair(_ context.Context, userID, recipeID uuid.UUID) (int64, error) {
	for id, p := range f.workingOn {
		if p.UserID == userID && p.RecipeID == recipeID {
			delete(f.workingOn, id)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeActivityRepository) IsUserWorkingOnRecipe(_ context.Context, userID, recipeID uuid.UUID) (bool, error) {
	for _, p := range f.workingOn {
		if p.UserID == userID && p.RecipeID == recipeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserGetter map[uuid.UUID]*entities.User

func (f fakeUserGetter) GetUserByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := f[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

type fakeRecipeGetter map[uuid.UUID]*entities.Recipe

func (f fakeRecipeGetter) GetRecipeByID(_ context.Context, id uuid.UUID) (*entities.Recipe, error) {
	r, ok := f[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

type activityFixture struct {
	repo    *fakeActivityRepository
	service ActivityService
	user    *entities.User
	recipe  *entities.Recipe
}

func newActivityFixture() activityFixture {
	cook := &entities.User{ID: uuid.New(), Username: "grace"}
	target := &entities.Recipe{ID: uuid.New(), UserID: uuid.New(), Name: "Bread"}
	repo := newFakeActivityRepository()
	service := NewActivityService(
		repo,
		fakeUserGetter{cook.ID: cook},
		fakeRecipeGetter{target.ID: target},
	)
	return activityFixture{repo: repo, service: service, user: cook, recipe: target}
}

func TestFinishRecipe(t *testing.T) {
	fx := newActivityFixture()
	actor := domain.Actor{UserID: fx.user.ID}

	err := fx.service.FinishRecipe(context.Background(), fx.user.ID.String(), fx.recipe.ID.String(), domain.Actor{UserID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrForbiddenRecipeActivity)

	err = fx.service.FinishRecipe(context.Background(), fx.user.ID.String(), fx.recipe.ID.String(), actor)
	require.NoError(t, err)
	assert.Len(t, fx.repo.finished, 1)

	err = fx.service.FinishRecipe(context.Background(), fx.user.ID.String(), fx.recipe.ID.String(), actor)
	assert.ErrorIs(t, err, domain.ErrAlreadyFinished)
}

func TestStartRecipe(t *testing.T) {
	fx := newActivityFixture()
	actor := domain.Actor{UserID: fx.user.ID}

	err := fx.service.StartRecipe(context.Background(), fx.user.ID.String(), fx.recipe.ID.String(), actor)
	require.NoError(t, err)

	err = fx.service.StartRecipe(context.Background(), fx.user.ID.String(), fx.recipe.ID.String(), actor)
	assert.ErrorIs(t, err, domain.ErrAlreadyStarted)

	err = fx.service.StartRecipe(context.Background(), fx.user.ID.String(), uuid.New().String(), actor)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestStopRecipe(t *testing.T) {
	fx := newActivityFixture()
	actor := domain.Actor{UserID: fx.user.ID}

	err := fx.service.StopRecipe(context.Background(), fx.user.ID.String(), fx.recipe.ID.String(), actor)
	assert.ErrorIs(t, err, domain.ErrNotWorkingOn)

	require.NoError(t, fx.service.StartRecipe(context.Background(), fx.user.ID.String(), fx.recipe.ID.String(), actor))

	err = fx.service.StopRecipe(context.Background(), fx.user.ID.String(), fx.recipe.ID.String(), domain.Actor{UserID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrForbiddenRecipeActivity)

	err = fx.service.StopRecipe(context.Background(), fx.user.ID.String(), fx.recipe.ID.String(), domain.Actor{UserID: uuid.New(), Admin: true})
	require.NoError(t, err)
	assert.Empty(t, fx.repo.workingOn)
}

// Finishing is permanent, there is no undo pivot and stopping an already
// finished recipe leaves the finished row alone.
func TestFinishThenStopAreIndependent(t *testing.T) {
	fx := newActivityFixture()
	actor := domain.Actor{UserID: fx.user.ID}

	require.NoError(t, fx.service.StartRecipe(context.Background(), fx.user.ID.String(), fx.recipe.ID.String(), actor))
	require.NoError(t, fx.service.FinishRecipe(context.Background(), fx.user.ID.String(), fx.recipe.ID.String(), actor))
	require.NoError(t, fx.service.StopRecipe(context.Background(), fx.user.ID.String(), fx.recipe.ID.String(), actor))

	assert.Len(t, fx.repo.finished, 1)
	assert.Empty(t, fx.repo.workingOn)
}
