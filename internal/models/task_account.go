package model

import (
	"bounty-ledger.com/bounty-ledger/internal/constants"
)

// TaskAccount is the escrow unit: one record per (consigner, task id),
// addressed by its deterministic key. RewardAmountLocked mirrors the
// balance held by the task's custody account and is zeroed only on reclaim.
type TaskAccount struct {
	Key                   string               `gorm:"primaryKey;size:128" json:"-"`
	TaskID                uint64               `gorm:"not null" json:"task_id"`
	ConsignerWallet       string               `gorm:"not null;index" json:"consigner_wallet"`
	RewardAmountLocked    uint64               `gorm:"not null" json:"reward_amount_locked"`
	CreationTimestamp     int64                `gorm:"not null" json:"creation_timestamp"`
	DurationSeconds       int64                `gorm:"not null" json:"duration_seconds"`
	ExpirationTimestamp   int64                `gorm:"not null" json:"expiration_timestamp"`
	Status                constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	StatusUpdateTimestamp int64                `gorm:"not null" json:"status_update_timestamp"`
	AssignedReporter      *string              `json:"assigned_reporter,omitempty"`
	ReportRef             *string              `json:"report_ref,omitempty"`
	IsInitialized         bool                 `gorm:"not null" json:"is_initialized"`
}
