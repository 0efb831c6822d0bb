package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Username string    `gorm:"uniqueIndex" json:"username"`
	Password string    `json:"-"`
	Admin    bool      `gorm:"default:false" json:"admin"`

	Recipes []*Recipe `gorm:"foreignKey:UserID" json:"recipes,omitempty"`
	Timestamp
}

// UserConnection records that Follower follows Followed. It is addressable
// by its own id so a single connection can be deleted directly.
type UserConnection struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FollowerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_follower_followed" json:"follower_id"`
	FollowedID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_follower_followed" json:"followed_id"`

	Follower *User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"follower,omitempty"`
	Followed *User `gorm:"foreignKey:FollowedID;constraint:OnDelete:CASCADE" json:"followed,omitempty"`
	Timestamp
}
