package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrFavoriteTarget is returned when a favorite does not reference exactly
// one of planet or character.
var ErrFavoriteTarget = errors.New("favorite must reference exactly one of planet or character")

// Favorite - a user's saved reference to exactly one planet or character.
// Both FK columns exist; the exactly-one rule is enforced in BeforeCreate.
type Favorite struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	PlanetID    *uint     `json:"planet_id"`
	CharacterID *uint     `json:"character_id"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Deleting a user removes their favorites at the schema level
	User      User       `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Planet    *Planet    `json:"-" gorm:"foreignKey:PlanetID"`
	Character *Character `json:"-" gorm:"foreignKey:CharacterID"`
}

func (Favorite) TableName() string {
	return "favorites"
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if (f.PlanetID == nil) == (f.CharacterID == nil) {
		return ErrFavoriteTarget
	}
	return nil
}

func PlanetFavorite(userID, planetID uint) Favorite {
	return Favorite{UserID: userID, PlanetID: &planetID}
}

func CharacterFavorite(userID, characterID uint) Favorite {
	return Favorite{UserID: userID, CharacterID: &characterID}
}

// FavoriteView is one entry of GET /users/favorites. Planet favorites carry
// planet_id/planet_name, character favorites character_id/character_name.
type FavoriteView struct {
	ID            uint    `json:"id"`
	PlanetID      *uint   `json:"planet_id,omitempty"`
	PlanetName    *string `json:"planet_name,omitempty"`
	CharacterID   *uint   `json:"character_id,omitempty"`
	CharacterName *string `json:"character_name,omitempty"`
}
