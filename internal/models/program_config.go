package model

// ProgramConfig is the write-once global configuration record. The
// governance token, fee percentage, and patroller amount are stored but
// never read by any lifecycle transition.
type ProgramConfig struct {
	Key                   string `gorm:"primaryKey;size:64" json:"-"`
	Admin                 string `gorm:"not null" json:"admin"`
	TreasuryAddress       string `gorm:"not null" json:"treasury_address"`
	GovernanceTokenRef    string `json:"governance_token_ref"`
	MinimumRewardAmount   uint64 `gorm:"not null" json:"minimum_reward_amount"`
	FeePercentage         uint8  `json:"fee_percentage"`
	DenialPenaltyDuration int64  `gorm:"not null" json:"denial_penalty_duration"`
	PatrollerTokenAmount  uint64 `json:"patroller_token_amount"`
	IsInitialized         bool   `gorm:"not null" json:"is_initialized"`
}
