package services

import (
	"context"
	"log"
	"math"

	"gorm.io/gorm"

	"bounty-ledger.com/bounty-ledger/internal/constants"
	apperrors "bounty-ledger.com/bounty-ledger/internal/errors"
	"bounty-ledger.com/bounty-ledger/internal/keys"
	"bounty-ledger.com/bounty-ledger/internal/ledger"
	"bounty-ledger.com/bounty-ledger/internal/locks"
	model "bounty-ledger.com/bounty-ledger/internal/models"
	repository "bounty-ledger.com/bounty-ledger/internal/repositories"
)

// LifecycleService is the task lifecycle engine. Each operation runs as one
// database transaction under a per-record lock, reads the clock once, and
// either commits every fund movement and field mutation together or none
// of them.
type LifecycleService struct {
	db       *gorm.DB
	configs  *repository.ConfigRepository
	tasks    *repository.TaskRepository
	counters *repository.CounterRepository
	ledger   *ledger.Ledger
	locks    locks.Manager
	clock    Clock
}

func NewLifecycleService(
	db *gorm.DB,
	configs *repository.ConfigRepository,
	tasks *repository.TaskRepository,
	counters *repository.CounterRepository,
	ldg *ledger.Ledger,
	lockManager locks.Manager,
	clock Clock,
) *LifecycleService {
	return &LifecycleService{
		db:       db,
		configs:  configs,
		tasks:    tasks,
		counters: counters,
		ledger:   ldg,
		locks:    lockManager,
		clock:    clock,
	}
}

type InitializeParams struct {
	Admin                 string
	TreasuryAddress       string
	GovernanceTokenRef    string
	MinimumRewardAmount   uint64
	FeePercentage         uint8
	DenialPenaltyDuration int64
	PatrollerTokenAmount  uint64
}

// Record builds the configuration row the params describe.
func (p InitializeParams) Record() *model.ProgramConfig {
	return &model.ProgramConfig{
		Admin:                 p.Admin,
		TreasuryAddress:       p.TreasuryAddress,
		GovernanceTokenRef:    p.GovernanceTokenRef,
		MinimumRewardAmount:   p.MinimumRewardAmount,
		FeePercentage:         p.FeePercentage,
		DenialPenaltyDuration: p.DenialPenaltyDuration,
		PatrollerTokenAmount:  p.PatrollerTokenAmount,
	}
}

// InitializeProgram writes the global configuration exactly once. A second
// call fails because the record's fixed address is already occupied.
func (s *LifecycleService) InitializeProgram(ctx context.Context, params InitializeParams) (*model.ProgramConfig, error) {
	cfg := params.Record()

	if err := s.configs.Initialize(ctx, cfg); err != nil {
		return nil, err
	}

	log.Printf("program initialized: admin=%s denial_penalty_duration=%d", cfg.Admin, cfg.DenialPenaltyDuration)
	return cfg, nil
}

// CreateTask locks reward funds out of the caller's balance into the task's
// custody account and opens the record, all in one atomic step.
func (s *LifecycleService) CreateTask(
	ctx context.Context,
	caller string,
	taskID uint64,
	rewardAmount uint64,
	durationSeconds int64,
) (*model.TaskAccount, error) {
	now := s.clock.Now()
	taskKey := keys.Task(caller, taskID)

	if err := s.locks.Acquire(ctx, taskKey); err != nil {
		return nil, err
	}
	defer s.releaseLock(ctx, taskKey)

	var task *model.TaskAccount
	err := s.db.Transaction(func(tx *gorm.DB) error {
		cfg, err := s.configs.WithTx(tx).Get(ctx)
		if err != nil {
			return err
		}

		if rewardAmount < cfg.MinimumRewardAmount {
			return apperrors.ErrRewardAmountTooLow
		}

		expiration, ok := checkedAddInt64(now, durationSeconds)
		if !ok {
			return apperrors.ErrTimestampOverflow
		}

		if err := s.ledger.WithTx(tx).TransferSigned(ctx, caller, taskKey, rewardAmount); err != nil {
			return err
		}

		task = &model.TaskAccount{
			TaskID:                taskID,
			ConsignerWallet:       caller,
			RewardAmountLocked:    rewardAmount,
			CreationTimestamp:     now,
			DurationSeconds:       durationSeconds,
			ExpirationTimestamp:   expiration,
			Status:                constants.StatusOpen,
			StatusUpdateTimestamp: now,
			IsInitialized:         true,
		}
		return s.tasks.WithTx(tx).Create(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("task %d created by %s: reward=%d expiration=%d", taskID, caller, rewardAmount, task.ExpirationTimestamp)
	return task, nil
}

// AcceptTask pays the locked reward out to the recipient and closes the
// record as approved. Only the stored consigner may accept, and only while
// the task is open and unexpired.
func (s *LifecycleService) AcceptTask(
	ctx context.Context,
	caller string,
	consigner string,
	taskID uint64,
	recipient string,
) (*model.TaskAccount, error) {
	now := s.clock.Now()
	taskKey := keys.Task(consigner, taskID)

	if err := s.locks.Acquire(ctx, taskKey); err != nil {
		return nil, err
	}
	defer s.releaseLock(ctx, taskKey)

	var task *model.TaskAccount
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		task, err = s.tasks.WithTx(tx).Find(ctx, consigner, taskID)
		if err != nil {
			return err
		}

		if task.ConsignerWallet != caller {
			return apperrors.ErrNotTaskConsigner
		}
		if task.Status != constants.StatusOpen {
			return apperrors.ErrTaskNotOpen
		}
		if now > task.ExpirationTimestamp {
			return apperrors.ErrTaskExpired
		}

		amount := task.RewardAmountLocked
		if err := s.ledger.WithTx(tx).TransferFromCustody(ctx, task.Key, recipient, amount); err != nil {
			return err
		}
		log.Printf("task %d: reward %d paid out to %s", taskID, amount, recipient)

		task.Status = constants.StatusApproved
		task.StatusUpdateTimestamp = now
		task.AssignedReporter = &recipient
		if err := s.tasks.WithTx(tx).Update(ctx, task); err != nil {
			return err
		}

		return s.bumpAcceptCount(ctx, tx, caller)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("task %d accepted by %s, recipient %s", taskID, caller, recipient)
	return task, nil
}

// RejectTask marks the record rejected; the reward stays in custody until
// the denial lockup elapses.
func (s *LifecycleService) RejectTask(
	ctx context.Context,
	caller string,
	consigner string,
	taskID uint64,
) (*model.TaskAccount, error) {
	now := s.clock.Now()
	taskKey := keys.Task(consigner, taskID)

	if err := s.locks.Acquire(ctx, taskKey); err != nil {
		return nil, err
	}
	defer s.releaseLock(ctx, taskKey)

	var task *model.TaskAccount
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		task, err = s.tasks.WithTx(tx).Find(ctx, consigner, taskID)
		if err != nil {
			return err
		}

		if task.ConsignerWallet != caller {
			return apperrors.ErrNotTaskConsigner
		}
		if task.Status != constants.StatusOpen {
			return apperrors.ErrTaskNotOpen
		}
		if now > task.ExpirationTimestamp {
			return apperrors.ErrTaskExpired
		}

		task.Status = constants.StatusRejected
		task.StatusUpdateTimestamp = now
		if err := s.tasks.WithTx(tx).Update(ctx, task); err != nil {
			return err
		}

		return s.bumpRejectCount(ctx, tx, caller)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("task %d rejected by %s at %d", taskID, caller, now)
	return task, nil
}

// ReclaimTaskFunds returns the locked reward to the consigner. A rejected
// task is reclaimable only after the denial lockup; an open task only after
// its expiration; approved and already-reclaimed tasks never.
func (s *LifecycleService) ReclaimTaskFunds(
	ctx context.Context,
	caller string,
	consigner string,
	taskID uint64,
) (*model.TaskAccount, error) {
	now := s.clock.Now()
	taskKey := keys.Task(consigner, taskID)

	if err := s.locks.Acquire(ctx, taskKey); err != nil {
		return nil, err
	}
	defer s.releaseLock(ctx, taskKey)

	var task *model.TaskAccount
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		task, err = s.tasks.WithTx(tx).Find(ctx, consigner, taskID)
		if err != nil {
			return err
		}

		if task.ConsignerWallet != caller {
			return apperrors.ErrNotConsigner
		}

		cfg, err := s.configs.WithTx(tx).Get(ctx)
		if err != nil {
			return err
		}

		switch {
		case task.Status == constants.StatusRejected:
			reclaimAllowedAt, ok := checkedAddInt64(task.StatusUpdateTimestamp, cfg.DenialPenaltyDuration)
			if !ok {
				return apperrors.ErrTimestampOverflow
			}
			if now < reclaimAllowedAt {
				return apperrors.ErrDenialLockupActive
			}
		case task.Status == constants.StatusOpen && now > task.ExpirationTimestamp:
			// expired without anyone acting on it, no lockup applies
		default:
			return apperrors.ErrCannotReclaimFunds
		}

		amount := task.RewardAmountLocked
		if err := s.ledger.WithTx(tx).TransferFromCustody(ctx, task.Key, task.ConsignerWallet, amount); err != nil {
			return err
		}
		log.Printf("task %d: reward %d reclaimed to consigner %s", taskID, amount, task.ConsignerWallet)

		task.Status = constants.StatusReclaimed
		task.StatusUpdateTimestamp = now
		task.RewardAmountLocked = 0
		return s.tasks.WithTx(tx).Update(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *LifecycleService) GetTask(ctx context.Context, consigner string, taskID uint64) (*model.TaskAccount, error) {
	return s.tasks.Find(ctx, consigner, taskID)
}

func (s *LifecycleService) ListTasks(ctx context.Context, consigner string) ([]model.TaskAccount, error) {
	return s.tasks.ListByConsigner(ctx, consigner)
}

func (s *LifecycleService) GetCounter(ctx context.Context, consigner string) (*model.ActionCounter, error) {
	return s.counters.Ensure(ctx, consigner)
}

func (s *LifecycleService) GetConfig(ctx context.Context) (*model.ProgramConfig, error) {
	return s.configs.Get(ctx)
}

func (s *LifecycleService) Deposit(ctx context.Context, caller string, amount uint64) (uint64, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.ledger.WithTx(tx).Deposit(ctx, caller, amount)
	})
	if err != nil {
		return 0, err
	}
	return s.ledger.Balance(ctx, caller)
}

func (s *LifecycleService) Balance(ctx context.Context, identity string) (uint64, error) {
	return s.ledger.Balance(ctx, identity)
}

func (s *LifecycleService) bumpAcceptCount(ctx context.Context, tx *gorm.DB, consigner string) error {
	counter, err := s.counters.WithTx(tx).Ensure(ctx, consigner)
	if err != nil {
		return err
	}

	counter.AcceptCount, err = checkedIncrement(counter.AcceptCount)
	if err != nil {
		return err
	}
	counter.Admin = consigner

	return s.counters.WithTx(tx).Save(ctx, counter)
}

func (s *LifecycleService) bumpRejectCount(ctx context.Context, tx *gorm.DB, consigner string) error {
	counter, err := s.counters.WithTx(tx).Ensure(ctx, consigner)
	if err != nil {
		return err
	}

	counter.RejectCount, err = checkedIncrement(counter.RejectCount)
	if err != nil {
		return err
	}
	counter.Admin = consigner

	return s.counters.WithTx(tx).Save(ctx, counter)
}

func (s *LifecycleService) releaseLock(ctx context.Context, key string) {
	if err := s.locks.Release(ctx, key); err != nil {
		log.Printf("failed to release lock for %s: %v", key, err)
	}
}

func checkedIncrement(count uint64) (uint64, error) {
	if count == math.MaxUint64 {
		return 0, apperrors.ErrCounterOverflow
	}
	return count + 1, nil
}

func checkedAddInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}
