// Package ledger moves balance units between identity accounts. Every
// movement debits the source before crediting the destination inside the
// caller's transaction, so a failed debit leaves nothing behind.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "bounty-ledger.com/bounty-ledger/internal/errors"
	model "bounty-ledger.com/bounty-ledger/internal/models"
)

type Ledger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

func (l *Ledger) WithTx(tx *gorm.DB) *Ledger {
	return &Ledger{db: tx}
}

// TransferSigned moves amount out of the verified caller's own account.
// The caller funds the transfer, so the source is always the caller.
func (l *Ledger) TransferSigned(ctx context.Context, caller, to string, amount uint64) error {
	return l.transfer(ctx, caller, to, amount)
}

// TransferFromCustody moves amount out of a task custody account. Custody
// accounts have no signing caller; only the lifecycle engine's transition
// code calls this, and it is never reachable as a standalone operation.
func (l *Ledger) TransferFromCustody(ctx context.Context, custodyKey, to string, amount uint64) error {
	return l.transfer(ctx, custodyKey, to, amount)
}

// Deposit credits an identity's account, creating it if absent.
func (l *Ledger) Deposit(ctx context.Context, identity string, amount uint64) error {
	if err := l.credit(ctx, identity, amount); err != nil {
		return err
	}
	return l.journal(ctx, "", identity, amount)
}

func (l *Ledger) Balance(ctx context.Context, identity string) (uint64, error) {
	var account model.LedgerAccount
	err := l.db.WithContext(ctx).First(&account, "identity = ?", identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrAccountNotFound
		}
		return 0, err
	}
	return account.Balance, nil
}

func (l *Ledger) transfer(ctx context.Context, from, to string, amount uint64) error {
	if err := l.debit(ctx, from, amount); err != nil {
		return err
	}
	if err := l.credit(ctx, to, amount); err != nil {
		return err
	}
	return l.journal(ctx, from, to, amount)
}

// debit is funding-checked: it only lands if the account exists and holds
// at least amount.
func (l *Ledger) debit(ctx context.Context, identity string, amount uint64) error {
	res := l.db.WithContext(ctx).Model(&model.LedgerAccount{}).
		Where("identity = ? AND balance >= ?", identity, amount).
		Update("balance", gorm.Expr("balance - ?", amount))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrInsufficientFunds
	}
	return nil
}

func (l *Ledger) credit(ctx context.Context, identity string, amount uint64) error {
	return l.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identity"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"balance": gorm.Expr("balance + ?", amount),
		}),
	}).Create(&model.LedgerAccount{Identity: identity, Balance: amount}).Error
}

func (l *Ledger) journal(ctx context.Context, from, to string, amount uint64) error {
	entry := &model.TransferEntry{
		ID:          uuid.NewString(),
		FromAccount: from,
		ToAccount:   to,
		Amount:      amount,
		CreatedAt:   time.Now().UTC(),
	}
	return l.db.WithContext(ctx).Create(entry).Error
}
