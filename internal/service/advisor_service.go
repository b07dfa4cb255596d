package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"github.com/tdhoang/careerledger/config"
	"github.com/tdhoang/careerledger/internal/dto"
	"github.com/tdhoang/careerledger/internal/ledger"
	"google.golang.org/api/option"
)

// AdvisorService turns a revealed guidance score into a short career
// narrative. Goes through the same reveal gate as ReadGuidance, so advice
// can never leak a score the submitter has not unlocked.
type AdvisorService interface {
	AdviceFor(ctx context.Context, caller string, id uint64) (*dto.AdviceResponse, error)
}

type advisorService struct {
	client *genai.GenerativeModel
	ldg    *ledger.Ledger
}

func NewAdvisorService(cfg *config.Config, ldg *ledger.Ledger) (AdvisorService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Advisor will serve static narratives.")
		return &advisorService{ldg: ldg}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &advisorService{client: client.GenerativeModel("gemini-1.5-flash"), ldg: ldg}, nil
}

func (s *advisorService) AdviceFor(ctx context.Context, caller string, id uint64) (*dto.AdviceResponse, error) {
	score, err := s.ldg.ReadGuidance(caller, id)
	if err != nil {
		return nil, err
	}

	resp := &dto.AdviceResponse{ID: id, GuidanceScore: score}

	// Signals are only available when the commitment scheme can be opened;
	// the salted-hash flavor keeps them one-way.
	in, open, err := s.ldg.OpenInputs(caller, id)
	if err != nil {
		return nil, err
	}
	if open {
		resp.Signals = &dto.SignalsDTO{
			CareerGoal:        in.CareerGoal,
			SkillLevel:        in.SkillLevel,
			EducationPriority: in.EducationPriority,
		}
	}

	if s.client == nil {
		resp.Advice = staticAdvice(score, resp.Signals)
		return resp, nil
	}

	advice, err := s.generate(ctx, score, resp.Signals)
	if err != nil {
		log.Error().Err(err).Uint64("assessmentID", id).Msg("Advisor: Gemini call failed, falling back to static narrative")
		resp.Advice = staticAdvice(score, resp.Signals)
		return resp, nil
	}
	resp.Advice = advice
	return resp, nil
}

func (s *advisorService) generate(ctx context.Context, score int, signals *dto.SignalsDTO) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a concise career coach. A career assessment produced a guidance score of %d out of 100.\n", score)
	if signals != nil {
		fmt.Fprintf(&b, "The participant's signals: clear career goal: %t, confident in current skills: %t, prioritizes further education: %t.\n",
			signals.CareerGoal, signals.SkillLevel, signals.EducationPriority)
	}
	b.WriteString("Write 3-4 sentences of practical guidance. No headings, no bullet points.")

	result, err := s.client.GenerateContent(ctx, genai.Text(b.String()))
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var out strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text parts")
	}
	return strings.TrimSpace(out.String()), nil
}

func staticAdvice(score int, signals *dto.SignalsDTO) string {
	var b strings.Builder
	switch {
	case score >= 90:
		b.WriteString("Your profile is strongly aligned across goals, skills and learning. Focus on stretch opportunities rather than fundamentals.")
	case score >= 70:
		b.WriteString("Your profile is solid with room to grow. Pick the weakest of your three signals and invest there first.")
	default:
		b.WriteString("Your profile suggests you are still exploring. Start by writing down one concrete career goal for the next year.")
	}
	if signals != nil && !signals.SkillLevel {
		b.WriteString(" A structured skills plan would raise your score the most.")
	}
	return b.String()
}
