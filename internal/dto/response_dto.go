package dto

import "time"

// SubmitAssessmentResponse deliberately omits the guidance score; the score
// is only readable through the reveal flow.
type SubmitAssessmentResponse struct {
	ID          uint64    `json:"id"`
	Submitter   string    `json:"submitter"`
	Scheme      string    `json:"scheme"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type AssessmentStatusResponse struct {
	ID              uint64    `json:"id"`
	RevealRequested bool      `json:"reveal_requested"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

type GuidanceResponse struct {
	ID            uint64 `json:"id"`
	GuidanceScore int    `json:"guidance_score"`
}

// SignalsDTO is included in advice responses only when the commitment
// scheme can be opened.
type SignalsDTO struct {
	CareerGoal        bool `json:"career_goal"`
	SkillLevel        bool `json:"skill_level"`
	EducationPriority bool `json:"education_priority"`
}

type AdviceResponse struct {
	ID            uint64      `json:"id"`
	GuidanceScore int         `json:"guidance_score"`
	Advice        string      `json:"advice"`
	Signals       *SignalsDTO `json:"signals,omitempty"`
}

type MyAssessmentsResponse struct {
	Submitter string   `json:"submitter"`
	Count     int      `json:"count"`
	IDs       []uint64 `json:"ids"`
}

type StatsResponse struct {
	TotalCount     uint64 `json:"total_count"`
	MinFeeMicros   int64  `json:"min_fee_micros"`
	TwoPhaseReveal bool   `json:"two_phase_reveal"`
	Scheme         string `json:"scheme"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
