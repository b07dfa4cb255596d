package service

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tdhoang/careerledger/internal/ledger"
	"github.com/tdhoang/careerledger/internal/model"
	"github.com/tdhoang/careerledger/internal/repository"
)

// journalSink persists ledger events in commit order. A failed append is
// logged and swallowed: the in-memory ledger already committed, and the
// event stream must not be able to reject a mutation after the fact.
type journalSink struct {
	events repository.EventRepository
}

func NewJournalSink(events repository.EventRepository) ledger.EventSink {
	return &journalSink{events: events}
}

func (s *journalSink) Publish(e ledger.Event) {
	row := model.LedgerEvent{Kind: e.Kind(), EmittedAt: time.Now()}

	switch ev := e.(type) {
	case ledger.Submitted:
		row.AssessmentID = ev.ID
		row.Submitter = ev.Submitter
		row.EmittedAt = ev.Timestamp
	case ledger.RevealRequested:
		row.AssessmentID = ev.ID
		row.Submitter = ev.Submitter
	case ledger.Withdrawn:
		row.Submitter = ev.Owner
		row.AmountMicros = ev.AmountMicros
	default:
		log.Warn().Str("kind", e.Kind()).Msg("Unknown ledger event kind, journaling kind only")
	}

	if err := s.events.Append(&row); err != nil {
		log.Error().Err(err).Str("kind", row.Kind).Uint64("assessmentID", row.AssessmentID).
			Msg("Failed to journal ledger event")
		return
	}
	log.Info().Str("kind", row.Kind).Uint64("assessmentID", row.AssessmentID).
		Str("submitter", row.Submitter).Msg("Ledger event journaled")
}
