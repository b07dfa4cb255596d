package model

import (
	"time"
)

// AssessmentRecord is the durable copy of one accepted submission. The
// in-memory ledger stays authoritative at request time; these rows exist so
// a restart can replay the ledger in id order.
type AssessmentRecord struct {
	ID              uint64    `gorm:"primarykey;autoIncrement:false" json:"id"`
	Submitter       string    `json:"submitter" gorm:"not null;index"`
	Scheme          string    `json:"scheme" gorm:"not null"`
	Packed          uint8     `json:"-"`
	Digest          []byte    `json:"-"`
	Nonce           string    `json:"-"`
	Handle          []byte    `json:"-"`
	GuidanceScore   int       `json:"guidance_score" gorm:"not null"`
	FeePaidMicros   int64     `json:"fee_paid_micros" gorm:"not null"`
	RevealRequested bool      `json:"reveal_requested" gorm:"not null;default:false"`
	SubmittedAt     time.Time `json:"submitted_at" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
