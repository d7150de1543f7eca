package database

import (
	"fmt"
	"time"

	"github.com/titobalza/apirest-starwars/migrations"

	"gorm.io/gorm"
)

// schemaMigration records one applied revision. The applied revisions must
// always form a prefix of the migration chain.
type schemaMigration struct {
	Revision  string    `gorm:"primaryKey;type:varchar(100)"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

// Migrate applies every pending migration step in chain order. Each step
// runs inside a transaction together with its bookkeeping row, so a failed
// step leaves the recorded revision untouched. A recorded revision that is
// unknown, duplicated or out of chain order aborts before anything runs.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	steps := migrations.All()
	if err := validateChain(steps); err != nil {
		return err
	}

	pending, err := pendingSteps(db, steps)
	if err != nil {
		return err
	}

	for _, step := range pending {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := step.Up(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{Revision: step.Revision}).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %s: %w", step.Revision, err)
		}
	}
	return nil
}

// Rollback reverses the most recently applied step and rewinds the
// recorded revision. Returns an error when nothing has been applied.
func Rollback(db *gorm.DB) error {
	steps := migrations.All()
	if err := validateChain(steps); err != nil {
		return err
	}

	applied, err := appliedCount(db, steps)
	if err != nil {
		return err
	}
	if applied == 0 {
		return fmt.Errorf("nothing to roll back")
	}

	step := steps[applied-1]
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := step.Down(tx); err != nil {
			return err
		}
		return tx.Where("revision = ?", step.Revision).Delete(&schemaMigration{}).Error
	})
	if err != nil {
		return fmt.Errorf("roll back migration %s: %w", step.Revision, err)
	}
	return nil
}

// validateChain checks that the steps form one linked history: the first
// step has no parent and every later step points at its predecessor.
func validateChain(steps []migrations.Migration) error {
	seen := make(map[string]bool, len(steps))
	for i, step := range steps {
		if step.Revision == "" {
			return fmt.Errorf("migration %d has an empty revision", i)
		}
		if seen[step.Revision] {
			return fmt.Errorf("duplicate migration revision %s", step.Revision)
		}
		seen[step.Revision] = true

		if i == 0 {
			if step.DownRevision != "" {
				return fmt.Errorf("first migration %s must not have a down revision", step.Revision)
			}
			continue
		}
		if step.DownRevision != steps[i-1].Revision {
			return fmt.Errorf("migration %s points at %q, expected %s",
				step.Revision, step.DownRevision, steps[i-1].Revision)
		}
	}
	return nil
}

// pendingSteps returns the steps that still have to run, after checking
// that the recorded revisions are a prefix of the chain.
func pendingSteps(db *gorm.DB, steps []migrations.Migration) ([]migrations.Migration, error) {
	applied, err := appliedCount(db, steps)
	if err != nil {
		return nil, err
	}
	return steps[applied:], nil
}

func appliedCount(db *gorm.DB, steps []migrations.Migration) (int, error) {
	var records []schemaMigration
	if err := db.Find(&records).Error; err != nil {
		return 0, fmt.Errorf("read schema_migrations: %w", err)
	}

	recorded := make(map[string]bool, len(records))
	for _, rec := range records {
		recorded[rec.Revision] = true
	}

	applied := 0
	for i, step := range steps {
		if !recorded[step.Revision] {
			continue
		}
		if i != applied {
			return 0, fmt.Errorf("migration %s applied out of order", step.Revision)
		}
		applied++
		delete(recorded, step.Revision)
	}
	for revision := range recorded {
		return 0, fmt.Errorf("database at unknown revision %s", revision)
	}
	return applied, nil
}
