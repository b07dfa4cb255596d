package model

import (
	"time"
)

// LedgerEvent is one journaled notification, in commit order. The journal is
// append-only; rows are never updated or deleted.
type LedgerEvent struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Kind         string    `json:"kind" gorm:"not null;index"` // "Submitted", "RevealRequested" or "Withdrawn"
	AssessmentID uint64    `json:"assessment_id" gorm:"index"` // zero for Withdrawn
	Submitter    string    `json:"submitter" gorm:"not null;index"`
	AmountMicros int64     `json:"amount_micros,omitempty"` // Withdrawn only
	EmittedAt    time.Time `json:"emitted_at" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}
