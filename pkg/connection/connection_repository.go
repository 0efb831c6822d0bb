package connection

import (
	"context"

	"RecipeShare-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ConnectionRepository interface {
		GetConnections(ctx context.Context) ([]*entities.UserConnection, error)
		GetConnectionByID(ctx context.Context, id uuid.UUID) (*entities.UserConnection, error)
		IsFollowing(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
		CreateConnection(ctx context.Context, connection *entities.UserConnection) error
		DeleteConnection(ctx context.Context, id uuid.UUID) error
		GetFollowers(ctx context.Context, userID uuid.UUID) ([]*entities.User, error)
		GetFollowed(ctx context.Context, userID uuid.UUID) ([]*entities.User, error)
	}

	connectionRepository struct {
		db *gorm.DB
	}
)

func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) GetConnections(ctx context.Context) ([]*entities.UserConnection, error) {
	var connections []*entities.UserConnection
	if err := r.db.WithContext(ctx).
		Order("created_at asc, id asc").
		Find(&connections).Error; err != nil {
		return nil, err
	}
	return connections, nil
}

func (r *connectionRepository) GetConnectionByID(ctx context.Context, id uuid.UUID) (*entities.UserConnection, error) {
	var connection entities.UserConnection
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&connection).Error; err != nil {
		return nil, err
	}
	return &connection, nil
}

func (r *connectionRepository) IsFollowing(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.UserConnection{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *connectionRepository) CreateConnection(ctx context.Context, connection *entities.UserConnection) error {
	return r.db.WithContext(ctx).Create(connection).Error
}

func (r *connectionRepository) DeleteConnection(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.UserConnection{}).Error
}

func (r *connectionRepository) GetFollowers(ctx context.Context, userID uuid.UUID) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Joins("JOIN user_connections ON users.id = user_connections.follower_id").
		Where("user_connections.followed_id = ?", userID).
		Order("user_connections.created_at asc").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *connectionRepository) GetFollowed(ctx context.Context, userID uuid.UUID) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Joins("JOIN user_connections ON users.id = user_connections.followed_id").
		Where("user_connections.follower_id = ?", userID).
		Order("user_connections.created_at asc").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
