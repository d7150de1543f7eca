package migrations

import (
	"github.com/titobalza/apirest-starwars/models"

	"gorm.io/gorm"
)

// createFavoritesTable creates the favorites table with foreign keys to
// users, planets and characters. The user FK cascades on delete so a
// removed user takes their favorites with them.
var createFavoritesTable = Migration{
	Revision:     "2023_create_favorites_table",
	DownRevision: "2023_create_catalog_tables",
	Up: func(db *gorm.DB) error {
		if err := db.Migrator().CreateTable(&models.Favorite{}); err != nil {
			return err
		}
		return db.Exec(`CREATE INDEX IF NOT EXISTS idx_favorites_created_at ON favorites(created_at)`).Error
	},
	Down: func(db *gorm.DB) error {
		return db.Migrator().DropTable(&models.Favorite{})
	},
}
