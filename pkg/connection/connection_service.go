package connection

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

	ConnectionService interface {
		GetConnections(ctx context.Context) ([]*entities.UserConnection, error)
		GetFollowers(ctx context.Context, userID string) ([]domain.PublicUser, error)
		GetFollowed(ctx context.Context, userID string) ([]domain.PublicUser, error)
		FollowUser(ctx context.Context, followerID, followedID string, actor domain.Actor) error
		Unfollow(ctx context.Context, connectionID string, actor domain.Actor) error
	}

	connectionService struct {
		connectionRepository ConnectionRepository
		userRepository       UserGetter
	}
)

func NewConnectionService(
	connectionRepository ConnectionRepository,
	userRepository UserGetter,
) ConnectionService {
	return &connectionService{
		connectionRepository: connectionRepository,
		userRepository:       userRepository,
	}
}

func (s *connectionService) GetConnections(ctx context.Context) ([]*entities.UserConnection, error) {
	return s.connectionRepository.GetConnections(ctx)
}

func (s *connectionService) GetFollowers(ctx context.Context, userID string) ([]domain.PublicUser, error) {
	targetUser, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	followers, err := s.connectionRepository.GetFollowers(ctx, targetUser.ID)
	if err != nil {
		return nil, err
	}
	return domain.ToPublicUsers(followers), nil
}

func (s *connectionService) GetFollowed(ctx context.Context, userID string) ([]domain.PublicUser, error) {
	targetUser, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	followed, err := s.connectionRepository.GetFollowed(ctx, targetUser.ID)
	if err != nil {
		return nil, err
	}
	return domain.ToPublicUsers(followed), nil
}

// FollowUser requires the actor to be the follower themselves. Unlike the
// other attach operations there is no admin bypass, an admin cannot make
// someone else follow an account.
func (s *connectionService) FollowUser(ctx context.Context, followerID, followedID string, actor domain.Actor) error {
	follower, err := s.findUser(ctx, followerID)
	if err != nil {
		return err
	}
	followed, err := s.findUser(ctx, followedID)
	if err != nil {
		return err
	}

	if follower.ID != actor.UserID {
		return domain.ErrForbiddenFollowUser
	}

	following, err := s.connectionRepository.IsFollowing(ctx, follower.ID, followed.ID)
	if err != nil {
		return err
	}
	if following {
		return domain.ErrAlreadyFollowing
	}

	newConnection := &entities.UserConnection{
		ID:         uuid.New(),
		FollowerID: follower.ID,
		FollowedID: followed.ID,
	}
	if err := s.connectionRepository.CreateConnection(ctx, newConnection); err != nil {
		if utils.IsUniqueViolation(err) {
			return domain.ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (s *connectionService) Unfollow(ctx context.Context, connectionID string, actor domain.Actor) error {
	id, err := uuid.Parse(connectionID)
	if err != nil {
		return domain.ErrParseUUID
	}

	connection, err := s.connectionRepository.GetConnectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrConnectionNotFound
		}
		return err
	}

	if !actor.CanModify(connection.FollowerID) {
		return domain.ErrForbiddenUnfollowUser
	}

	return s.connectionRepository.DeleteConnection(ctx, connection.ID)
}

func (s *connectionService) findUser(ctx context.Context, userID string) (*entities.User, error) {
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
