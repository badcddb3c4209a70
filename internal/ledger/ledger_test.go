package ledger

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apperrors "bounty-ledger.com/bounty-ledger/internal/errors"
	model "bounty-ledger.com/bounty-ledger/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&model.LedgerAccount{}, &model.TransferEntry{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func TestDepositAndBalance(t *testing.T) {
	l := New(setupTestDB(t))
	ctx := context.Background()

	if err := l.Deposit(ctx, "alice", 100); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if err := l.Deposit(ctx, "alice", 50); err != nil {
		t.Fatalf("second deposit failed: %v", err)
	}

	b, err := l.Balance(ctx, "alice")
	if err != nil {
		t.Fatalf("balance failed: %v", err)
	}
	if b != 150 {
		t.Errorf("expected balance 150, got %d", b)
	}
}

func TestBalance_UnknownAccount(t *testing.T) {
	l := New(setupTestDB(t))

	_, err := l.Balance(context.Background(), "nobody")
	if !errors.Is(err, apperrors.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestTransferSigned(t *testing.T) {
	l := New(setupTestDB(t))
	ctx := context.Background()

	if err := l.Deposit(ctx, "alice", 100); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	if err := l.TransferSigned(ctx, "alice", "bob", 60); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	a, _ := l.Balance(ctx, "alice")
	b, _ := l.Balance(ctx, "bob")
	if a != 40 || b != 60 {
		t.Errorf("expected 40/60, got %d/%d", a, b)
	}
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	l := New(setupTestDB(t))
	ctx := context.Background()

	if err := l.Deposit(ctx, "alice", 10); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	err := l.TransferSigned(ctx, "alice", "bob", 11)
	if !errors.Is(err, apperrors.ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}

	err = l.TransferSigned(ctx, "ghost", "bob", 1)
	if !errors.Is(err, apperrors.ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds for missing source, got %v", err)
	}
}

func TestTransfer_ZeroAmount(t *testing.T) {
	l := New(setupTestDB(t))
	ctx := context.Background()

	if err := l.Deposit(ctx, "custody", 0); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	// a zero-amount movement from an existing account succeeds
	if err := l.TransferFromCustody(ctx, "custody", "alice", 0); err != nil {
		t.Errorf("zero transfer failed: %v", err)
	}
}

func TestTransfer_WritesJournal(t *testing.T) {
	db := setupTestDB(t)
	l := New(db)
	ctx := context.Background()

	if err := l.Deposit(ctx, "alice", 100); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if err := l.TransferSigned(ctx, "alice", "bob", 25); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	var entries []model.TransferEntry
	if err := db.Find(&entries).Error; err != nil {
		t.Fatalf("failed to read journal: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 journal entries, got %d", len(entries))
	}
}
