package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bounty-ledger.com/bounty-ledger/internal/keys"
	model "bounty-ledger.com/bounty-ledger/internal/models"
)

type CounterRepository struct {
	db *gorm.DB
}

func NewCounterRepository(db *gorm.DB) *CounterRepository {
	return &CounterRepository{db: db}
}

func (r *CounterRepository) WithTx(tx *gorm.DB) *CounterRepository {
	return &CounterRepository{db: tx}
}

// Ensure returns the consigner's counter, creating it with both counts at
// zero on first use.
func (r *CounterRepository) Ensure(ctx context.Context, consigner string) (*model.ActionCounter, error) {
	var counter model.ActionCounter
	err := r.db.WithContext(ctx).First(&counter, "key = ?", keys.Counter(consigner)).Error
	if err == nil {
		return &counter, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	counter = model.ActionCounter{
		Key:   keys.Counter(consigner),
		Admin: consigner,
	}
	if err := r.db.WithContext(ctx).Create(&counter).Error; err != nil {
		return nil, err
	}

	return &counter, nil
}

func (r *CounterRepository) Save(ctx context.Context, counter *model.ActionCounter) error {
	return r.db.WithContext(ctx).Save(counter).Error
}
