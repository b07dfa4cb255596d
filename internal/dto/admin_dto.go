package dto

import "time"

type WithdrawResponse struct {
	WithdrawnMicros int64 `json:"withdrawn_micros"`
	RemainingMicros int64 `json:"remaining_micros"`
}

type OwnerStatsResponse struct {
	TotalCount    uint64 `json:"total_count"`
	BalanceMicros int64  `json:"balance_micros"`
}

type LedgerEventDTO struct {
	ID           uint      `json:"id"`
	Kind         string    `json:"kind"`
	AssessmentID uint64    `json:"assessment_id"`
	Submitter    string    `json:"submitter"`
	AmountMicros int64     `json:"amount_micros,omitempty"`
	EmittedAt    time.Time `json:"emitted_at"`
}
