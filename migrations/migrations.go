package migrations

import "gorm.io/gorm"

// Migration is one versioned, reversible schema step. Steps form a single
// chain: DownRevision names the step that must be applied immediately
// before this one (empty for the first step).
type Migration struct {
	Revision     string
	DownRevision string
	Up           func(db *gorm.DB) error
	Down         func(db *gorm.DB) error
}

// All returns the full migration history, oldest first.
func All() []Migration {
	return []Migration{
		createCatalogTables,
		createFavoritesTable,
	}
}
