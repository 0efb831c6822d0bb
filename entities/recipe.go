package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Name          string    `json:"name"`
	Ingredients   []string  `gorm:"serializer:json;type:jsonb" json:"ingredients"`
	Directions    []string  `gorm:"serializer:json;type:jsonb" json:"directions"`
	Servings      int       `json:"servings"`
	PrepTime      string    `json:"prep_time"`
	CookTime      string    `json:"cook_time"`
	RecipePicture string    `json:"recipe_picture,omitempty"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Timestamp
}

type RecipeCategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_recipe_category_pair" json:"recipe_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_recipe_category_pair" json:"category_id"`

	Recipe   *Recipe   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipe,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
	Timestamp
}
