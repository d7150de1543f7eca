package migrations

import (
	"github.com/titobalza/apirest-starwars/models"

	"gorm.io/gorm"
)

// createCatalogTables creates the users, characters and planets tables.
// The unique index on users.email comes from the model tags.
var createCatalogTables = Migration{
	Revision: "2023_create_catalog_tables",
	Up: func(db *gorm.DB) error {
		return db.Migrator().CreateTable(&models.User{}, &models.Character{}, &models.Planet{})
	},
	Down: func(db *gorm.DB) error {
		return db.Migrator().DropTable(&models.Planet{}, &models.Character{}, &models.User{})
	},
}
