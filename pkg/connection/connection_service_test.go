package connection

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

type fakeConnectionRepository struct {
	ConnectionRepository
	connections map[uuid.UUID]*entities.UserConnection
}

func newFakeConnectionRepository() *fakeConnectionRepository {
	return &fakeConnectionRepository{connections: map[uuid.UUID]*entities.UserConnection{}}
}

func (f *fakeConnectionRepository) GetConnectionByID(_ context.Context, id uuid.UUID) (*entities.UserConnection, error) {
	c, ok := f.connections[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeConnectionRepository) IsFollowing(_ context.Context, followerID, followedID uuid.UUID) (bool, error) {
	for _, c := range f.connections {
		if c.FollowerID == followerID && c.FollowedID == followedID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeConnectionRepository) CreateConnection(_ context.Context, connection *entities.UserConnection) error {
	f.connections[connection.ID] = connection
	return nil
}

func (f *fakeConnectionRepository) DeleteConnection(_ context.Context, id uuid.UUID) error {
	delete(f.connections, id)
	return nil
}

type fakeUserGetter map[uuid.UUID]*entities.User

func (f fakeUserGetter) GetUserByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := f[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func TestFollowUser(t *testing.T) {
	follower := &entities.User{ID: uuid.New(), Username: "grace"}
	followed := &entities.User{ID: uuid.New(), Username: "ada"}
	repo := newFakeConnectionRepository()
	service := NewConnectionService(repo, fakeUserGetter{follower.ID: follower, followed.ID: followed})

	err := service.FollowUser(context.Background(), follower.ID.String(), followed.ID.String(), domain.Actor{UserID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrForbiddenFollowUser)

	err = service.FollowUser(context.Background(), follower.ID.String(), followed.ID.String(), domain.Actor{UserID: follower.ID})
	require.NoError(t, err)
	assert.Len(t, repo.connections, 1)

	err = service.FollowUser(context.Background(), follower.ID.String(), followed.ID.String(), domain.Actor{UserID: follower.ID})
	assert.ErrorIs(t, err, domain.ErrAlreadyFollowing)

	err = service.FollowUser(context.Background(), follower.ID.String(), uuid.New().String(), domain.Actor{UserID: follower.ID})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Following is personal, the admin flag grants no bypass here.
func TestFollowUserNoAdminBypass(t *testing.T) {
	follower := &entities.User{ID: uuid.New(), Username: "grace"}
	followed := &entities.User{ID: uuid.New(), Username: "ada"}
	repo := newFakeConnectionRepository()
	service := NewConnectionService(repo, fakeUserGetter{follower.ID: follower, followed.ID: followed})

	admin := domain.Actor{UserID: uuid.New(), Admin: true}
	err := service.FollowUser(context.Background(), follower.ID.String(), followed.ID.String(), admin)
	assert.ErrorIs(t, err, domain.ErrForbiddenFollowUser)
	assert.Empty(t, repo.connections)
}

func TestUnfollow(t *testing.T) {
	follower := &entities.User{ID: uuid.New(), Username: "grace"}
	followed := &entities.User{ID: uuid.New(), Username: "ada"}
	existing := &entities.UserConnection{
		ID:         uuid.New(),
		FollowerID: follower.ID,
		FollowedID: followed.ID,
	}

	tests := []struct {
		name    string
		actor   domain.Actor
		wantErr error
	}{
		{"follower", domain.Actor{UserID: follower.ID}, nil},
		{"admin", domain.Actor{UserID: uuid.New(), Admin: true}, nil},
		{"followed party", domain.Actor{UserID: followed.ID}, domain.ErrForbiddenUnfollowUser},
		{"stranger", domain.Actor{UserID: uuid.New()}, domain.ErrForbiddenUnfollowUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeConnectionRepository()
			repo.connections[existing.ID] = existing
			service := NewConnectionService(repo, fakeUserGetter{})

			err := service.Unfollow(context.Background(), existing.ID.String(), tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, repo.connections, 1)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, repo.connections)
		})
	}
}

func TestUnfollowNotFound(t *testing.T) {
	service := NewConnectionService(newFakeConnectionRepository(), fakeUserGetter{})
	err := service.Unfollow(context.Background(), uuid.New().String(), domain.Actor{Admin: true})
	assert.ErrorIs(t, err, domain.ErrConnectionNotFound)
}
