package dto

// SubmitAssessmentRequest carries the three preference signals and the fee.
// Booleans default to false when omitted, matching the contract surface.
type SubmitAssessmentRequest struct {
	CareerGoal        bool  `json:"career_goal"`
	SkillLevel        bool  `json:"skill_level"`
	EducationPriority bool  `json:"education_priority"`
	PaymentMicros     int64 `json:"payment_micros" binding:"min=0"`
}

// TokenRequest asks for a demo bearer token for an address. Identity is
// self-asserted, as in the original wallet-signed demo.
type TokenRequest struct {
	Address string `json:"address" binding:"required"`
}

type WithdrawRequest struct {
	AmountMicros int64 `json:"amount_micros" binding:"required,min=1"`
}
