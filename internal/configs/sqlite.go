package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "bounty-ledger.com/bounty-ledger/internal/models"
)

// New opens the keyed store. TranslateError is required so that creating a
// record at an occupied address surfaces gorm.ErrDuplicatedKey.
func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(
		&model.ProgramConfig{},
		&model.TaskAccount{},
		&model.ActionCounter{},
		&model.LedgerAccount{},
		&model.TransferEntry{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
