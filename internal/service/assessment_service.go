package service

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tdhoang/careerledger/internal/dto"
	"github.com/tdhoang/careerledger/internal/ledger"
	"github.com/tdhoang/careerledger/internal/model"
	"github.com/tdhoang/careerledger/internal/repository"
)

// AssessmentService is the write and read surface over the ledger core. It
// also mirrors every accepted mutation into the durable archive the ledger
// is replayed from at startup.
type AssessmentService interface {
	Submit(caller string, req dto.SubmitAssessmentRequest) (*dto.SubmitAssessmentResponse, error)
	RequestReveal(caller string, id uint64) error
	ReadGuidance(caller string, id uint64) (*dto.GuidanceResponse, error)
	Status(caller string, id uint64) (*dto.AssessmentStatusResponse, error)
	MyAssessments(caller string) (*dto.MyAssessmentsResponse, error)
	Stats() *dto.StatsResponse
}

type assessmentService struct {
	ldg            *ledger.Ledger
	assessmentRepo repository.AssessmentRepository
}

func NewAssessmentService(ldg *ledger.Ledger, assessmentRepo repository.AssessmentRepository) AssessmentService {
	return &assessmentService{ldg: ldg, assessmentRepo: assessmentRepo}
}

func (s *assessmentService) Submit(caller string, req dto.SubmitAssessmentRequest) (*dto.SubmitAssessmentResponse, error) {
	in := ledger.Inputs{
		CareerGoal:        req.CareerGoal,
		SkillLevel:        req.SkillLevel,
		EducationPriority: req.EducationPriority,
	}

	a, err := s.ldg.Submit(caller, in, req.PaymentMicros)
	if err != nil {
		return nil, fmt.Errorf("submit rejected: %w", err)
	}

	// The ledger has committed; an archive failure degrades restart replay
	// but must not fail the accepted submission.
	if archiveErr := s.assessmentRepo.Create(recordFromAssessment(a)); archiveErr != nil {
		log.Error().Err(archiveErr).Uint64("assessmentID", a.ID).
			Msg("Submit: failed to archive assessment, journal replay is now incomplete")
	}

	log.Info().Uint64("assessmentID", a.ID).Str("submitter", caller).
		Str("scheme", a.Commitment.Scheme).Msg("Assessment submitted")

	return &dto.SubmitAssessmentResponse{
		ID:          a.ID,
		Submitter:   a.Submitter,
		Scheme:      a.Commitment.Scheme,
		SubmittedAt: a.CreatedAt,
	}, nil
}

func (s *assessmentService) RequestReveal(caller string, id uint64) error {
	if err := s.ldg.RequestReveal(caller, id); err != nil {
		return err
	}
	if archiveErr := s.assessmentRepo.MarkRevealRequested(id); archiveErr != nil {
		log.Error().Err(archiveErr).Uint64("assessmentID", id).
			Msg("RequestReveal: failed to update archived record")
	}
	return nil
}

func (s *assessmentService) ReadGuidance(caller string, id uint64) (*dto.GuidanceResponse, error) {
	score, err := s.ldg.ReadGuidance(caller, id)
	if err != nil {
		return nil, err
	}
	return &dto.GuidanceResponse{ID: id, GuidanceScore: score}, nil
}

func (s *assessmentService) Status(caller string, id uint64) (*dto.AssessmentStatusResponse, error) {
	a, err := s.ldg.Get(caller, id)
	if err != nil {
		return nil, err
	}
	return &dto.AssessmentStatusResponse{
		ID:              a.ID,
		RevealRequested: a.RevealRequested,
		SubmittedAt:     a.CreatedAt,
	}, nil
}

func (s *assessmentService) MyAssessments(caller string) (*dto.MyAssessmentsResponse, error) {
	ids := s.ldg.IDsFor(caller)
	return &dto.MyAssessmentsResponse{
		Submitter: caller,
		Count:     len(ids),
		IDs:       ids,
	}, nil
}

func (s *assessmentService) Stats() *dto.StatsResponse {
	return &dto.StatsResponse{
		TotalCount:     s.ldg.TotalCount(),
		MinFeeMicros:   s.ldg.MinFeeMicros(),
		TwoPhaseReveal: s.ldg.TwoPhaseReveal(),
		Scheme:         s.ldg.SchemeName(),
	}
}

func recordFromAssessment(a ledger.Assessment) *model.AssessmentRecord {
	return &model.AssessmentRecord{
		ID:              a.ID,
		Submitter:       a.Submitter,
		Scheme:          a.Commitment.Scheme,
		Packed:          a.Commitment.Packed,
		Digest:          a.Commitment.Digest,
		Nonce:           a.Commitment.Nonce,
		Handle:          a.Commitment.Handle,
		GuidanceScore:   a.GuidanceScore,
		FeePaidMicros:   a.FeePaidMicros,
		RevealRequested: a.RevealRequested,
		SubmittedAt:     a.CreatedAt,
	}
}

// AssessmentFromRecord is the inverse mapping, used by ledger replay.
func AssessmentFromRecord(r model.AssessmentRecord) ledger.Assessment {
	return ledger.Assessment{
		ID:        r.ID,
		Submitter: r.Submitter,
		Commitment: ledger.Commitment{
			Scheme: r.Scheme,
			Packed: r.Packed,
			Digest: r.Digest,
			Nonce:  r.Nonce,
			Handle: r.Handle,
		},
		GuidanceScore:   r.GuidanceScore,
		FeePaidMicros:   r.FeePaidMicros,
		CreatedAt:       r.SubmittedAt,
		RevealRequested: r.RevealRequested,
	}
}
