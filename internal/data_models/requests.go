package dto

type InitializeRequest struct {
	Admin                 string `json:"admin"`
	TreasuryAddress       string `json:"treasury_address"`
	GovernanceTokenRef    string `json:"governance_token_ref"`
	MinimumRewardAmount   uint64 `json:"minimum_reward_amount"`
	FeePercentage         uint8  `json:"fee_percentage"`
	DenialPenaltyDuration int64  `json:"denial_penalty_duration"`
	PatrollerTokenAmount  uint64 `json:"patroller_token_amount"`
}

type CreateTaskRequest struct {
	TaskID          uint64 `json:"task_id"`
	RewardAmount    uint64 `json:"reward_amount"`
	DurationSeconds int64  `json:"duration_seconds"`
}

// Consigner is optional on the transition requests; it defaults to the
// caller, which is the only identity the self-authorization checks accept.
type AcceptTaskRequest struct {
	Recipient string `json:"recipient"`
	Consigner string `json:"consigner,omitempty"`
}

type RejectTaskRequest struct {
	Consigner string `json:"consigner,omitempty"`
}

type ReclaimTaskRequest struct {
	Consigner string `json:"consigner,omitempty"`
}

type DepositRequest struct {
	Amount uint64 `json:"amount"`
}
