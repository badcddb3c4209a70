package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "bounty-ledger.com/bounty-ledger/internal/errors"
	"bounty-ledger.com/bounty-ledger/internal/keys"
	model "bounty-ledger.com/bounty-ledger/internal/models"
)

type ConfigRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

func (r *ConfigRepository) WithTx(tx *gorm.DB) *ConfigRepository {
	return &ConfigRepository{db: tx}
}

// Initialize writes the singleton configuration record. The store's
// uniqueness-on-create is the only guard against double initialization.
func (r *ConfigRepository) Initialize(ctx context.Context, cfg *model.ProgramConfig) error {
	cfg.Key = keys.Config()
	cfg.IsInitialized = true

	if err := r.db.WithContext(ctx).Create(cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyInitialized
		}
		return err
	}

	return nil
}

func (r *ConfigRepository) Get(ctx context.Context) (*model.ProgramConfig, error) {
	var cfg model.ProgramConfig
	err := r.db.WithContext(ctx).First(&cfg, "key = ?", keys.Config()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotInitialized
		}
		return nil, err
	}
	return &cfg, nil
}
