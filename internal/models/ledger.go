package model

import "time"

// LedgerAccount holds the balance for one identity. Task custody accounts
// use the task's storage key as their identity.
type LedgerAccount struct {
	Identity string `gorm:"primaryKey;size:128" json:"identity"`
	Balance  uint64 `gorm:"not null;default:0" json:"balance"`
}

// TransferEntry is the journal row written for every balance movement.
type TransferEntry struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	FromAccount string    `gorm:"not null;index" json:"from_account"`
	ToAccount   string    `gorm:"not null;index" json:"to_account"`
	Amount      uint64    `gorm:"not null" json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}
