package user

import (
	"context"
	"testing"

	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/recipe"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users   map[uuid.UUID]*entities.User
	deleted []uuid.UUID
}

func newFakeUserRepository(users ...*entities.User) *fakeUserRepository {
	repo := &fakeUserRepository{users: map[uuid.UUID]*entities.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepository) GetUsers(_ context.Context, page, limit int) ([]*entities.User, int64, error) {
	out := make([]*entities.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, int64(len(f.users)), nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) DeleteUser(_ context.Context, id uuid.UUID) error {
	delete(f.users, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeRecipeRepository only implements what the user service touches.
type fakeRecipeRepository struct {
	recipe.RecipeRepository
	recipes map[uuid.UUID]*entities.Recipe
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id uuid.UUID) (*entities.Recipe, error) {
	r, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeRecipeRepository) GetRecipesByUser(_ context.Context, userID uuid.UUID) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, r := range f.recipes {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type stubJWT struct{}

func (stubJWT) GenerateTokenUser(userID string, role string) string { return "token:" + role }
func (stubJWT) ValidateTokenUser(string) (*jwtlib.Token, error)     { return nil, nil }
func (stubJWT) GetUserIDByToken(string) (string, string, error)     { return "", "", nil }

func newService(userRepo *fakeUserRepository, recipeRepo *fakeRecipeRepository) UserService {
	if recipeRepo == nil {
		recipeRepo = &fakeRecipeRepository{recipes: map[uuid.UUID]*entities.Recipe{}}
	}
	return NewUserService(userRepo, recipeRepo, stubJWT{}, nil)
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepository()
	service := newService(repo, nil)

	public, err := service.Register(context.Background(), domain.RegisterUserRequest{
		Name:     "Grace",
		Username: "grace",
		Password: "correcthorse",
	})
	require.NoError(t, err)
	assert.Equal(t, "grace", public.Username)

	stored, err := repo.GetUserByUsername(context.Background(), "grace")
	require.NoError(t, err)
	assert.False(t, stored.Admin, "registration must never grant the admin flag")
	assert.NotEqual(t, "correcthorse", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("correcthorse")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepository(&entities.User{ID: uuid.New(), Username: "grace"})
	service := newService(repo, nil)

	_, err := service.Register(context.Background(), domain.RegisterUserRequest{
		Name:     "Other Grace",
		Username: "grace",
		Password: "correcthorse",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correcthorse"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo := newFakeUserRepository(&entities.User{
		ID:       uuid.New(),
		Username: "grace",
		Password: string(hashed),
	})
	service := newService(repo, nil)

	res, err := service.Login(context.Background(), "grace", "correcthorse")
	require.NoError(t, err)
	assert.Equal(t, "token:user", res.Token)

	_, err = service.Login(context.Background(), "grace", "wrong")
	assert.ErrorIs(t, err, domain.ErrWrongCredentials)

	_, err = service.Login(context.Background(), "nobody", "correcthorse")
	assert.ErrorIs(t, err, domain.ErrWrongCredentials)
}

func TestLoginAdminRole(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correcthorse"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo := newFakeUserRepository(&entities.User{
		ID:       uuid.New(),
		Username: "root",
		Password: string(hashed),
		Admin:    true,
	})
	service := newService(repo, nil)

	res, err := service.Login(context.Background(), "root", "correcthorse")
	require.NoError(t, err)
	assert.Equal(t, "token:admin", res.Token)
}

func TestDeleteUser(t *testing.T) {
	target := &entities.User{ID: uuid.New(), Username: "grace"}

	tests := []struct {
		name    string
		actor   domain.Actor
		wantErr error
	}{
		{"self", domain.Actor{UserID: target.ID}, nil},
		{"admin", domain.Actor{UserID: uuid.New(), Admin: true}, nil},
		{"stranger", domain.Actor{UserID: uuid.New()}, domain.ErrForbiddenDeleteUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepository(target)
			service := newService(repo, nil)

			err := service.DeleteUser(context.Background(), target.ID.String(), tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.deleted)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []uuid.UUID{target.ID}, repo.deleted)
		})
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	service := newService(newFakeUserRepository(), nil)
	err := service.DeleteUser(context.Background(), uuid.New().String(), domain.Actor{Admin: true})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetUserRecipe(t *testing.T) {
	owner := &entities.User{ID: uuid.New(), Username: "grace"}
	stranger := &entities.User{ID: uuid.New(), Username: "mallory"}
	ownedRecipe := &entities.Recipe{ID: uuid.New(), UserID: owner.ID, Name: "Bread"}

	userRepo := newFakeUserRepository(owner, stranger)
	recipeRepo := &fakeRecipeRepository{recipes: map[uuid.UUID]*entities.Recipe{ownedRecipe.ID: ownedRecipe}}
	service := newService(userRepo, recipeRepo)

	got, err := service.GetUserRecipe(context.Background(), owner.ID.String(), ownedRecipe.ID.String())
	require.NoError(t, err)
	assert.Equal(t, ownedRecipe.ID, got.ID)

	_, err = service.GetUserRecipe(context.Background(), stranger.ID.String(), ownedRecipe.ID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotCreatedByUser)

	_, err = service.GetUserRecipe(context.Background(), owner.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	_, err = service.GetUserRecipe(context.Background(), uuid.New().String(), ownedRecipe.ID.String())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetUserParseError(t *testing.T) {
	service := newService(newFakeUserRepository(), nil)
	_, err := service.GetUser(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}
