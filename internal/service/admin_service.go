package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/tdhoang/careerledger/internal/dto"
	"github.com/tdhoang/careerledger/internal/ledger"
	"github.com/tdhoang/careerledger/internal/repository"
)

// AdminService exposes the owner-only operations: fee withdrawal, ledger
// stats and the journaled event stream.
type AdminService interface {
	Withdraw(caller string, amountMicros int64) (*dto.WithdrawResponse, error)
	Stats(caller string) (*dto.OwnerStatsResponse, error)
	RecentEvents(caller string, limit int) ([]dto.LedgerEventDTO, error)
}

type adminService struct {
	ldg       *ledger.Ledger
	eventRepo repository.EventRepository
}

func NewAdminService(ldg *ledger.Ledger, eventRepo repository.EventRepository) AdminService {
	return &adminService{ldg: ldg, eventRepo: eventRepo}
}

func (s *adminService) Withdraw(caller string, amountMicros int64) (*dto.WithdrawResponse, error) {
	remaining, err := s.ldg.Withdraw(caller, amountMicros)
	if err != nil {
		return nil, err
	}
	log.Info().Int64("amountMicros", amountMicros).Int64("remainingMicros", remaining).
		Msg("Owner withdrew collected fees")
	return &dto.WithdrawResponse{WithdrawnMicros: amountMicros, RemainingMicros: remaining}, nil
}

func (s *adminService) Stats(caller string) (*dto.OwnerStatsResponse, error) {
	balance, err := s.ldg.BalanceMicros(caller)
	if err != nil {
		return nil, err
	}
	return &dto.OwnerStatsResponse{
		TotalCount:    s.ldg.TotalCount(),
		BalanceMicros: balance,
	}, nil
}

func (s *adminService) RecentEvents(caller string, limit int) ([]dto.LedgerEventDTO, error) {
	if err := s.ldg.AuthorizeOwner(caller); err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListRecent(limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list journaled events")
		return nil, fmt.Errorf("error fetching events: %w", err)
	}

	var dtos []dto.LedgerEventDTO
	if err := copier.Copy(&dtos, events); err != nil {
		return nil, fmt.Errorf("error preparing events response: %w", err)
	}
	return dtos, nil
}
