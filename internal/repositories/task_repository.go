package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "bounty-ledger.com/bounty-ledger/internal/errors"
	"bounty-ledger.com/bounty-ledger/internal/keys"
	model "bounty-ledger.com/bounty-ledger/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) WithTx(tx *gorm.DB) *TaskRepository {
	return &TaskRepository{db: tx}
}

// Create fails if a record already occupies the task's address.
func (r *TaskRepository) Create(ctx context.Context, task *model.TaskAccount) error {
	task.Key = keys.Task(task.ConsignerWallet, task.TaskID)

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrTaskAlreadyExists
		}
		return err
	}

	return nil
}

func (r *TaskRepository) Find(ctx context.Context, consigner string, taskID uint64) (*model.TaskAccount, error) {
	var task model.TaskAccount
	err := r.db.WithContext(ctx).First(&task, "key = ?", keys.Task(consigner, taskID)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByConsigner(ctx context.Context, consigner string) ([]model.TaskAccount, error) {
	var tasks []model.TaskAccount
	err := r.db.WithContext(ctx).
		Where("consigner_wallet = ?", consigner).
		Order("creation_timestamp desc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Update(ctx context.Context, task *model.TaskAccount) error {
	return r.db.WithContext(ctx).Save(task).Error
}
