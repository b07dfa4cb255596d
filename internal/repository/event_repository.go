package repository

import (
	"github.com/tdhoang/careerledger/internal/model"
	"gorm.io/gorm"
)

type EventRepository interface {
	Append(event *model.LedgerEvent) error
	ListRecent(limit int) ([]model.LedgerEvent, error)
	ListBySubmitter(submitter string) ([]model.LedgerEvent, error)
	SumWithdrawn() (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Append(event *model.LedgerEvent) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) ListRecent(limit int) ([]model.LedgerEvent, error) {
	var events []model.LedgerEvent
	query := r.db.Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&events).Error
	return events, err
}

func (r *eventRepository) ListBySubmitter(submitter string) ([]model.LedgerEvent, error) {
	var events []model.LedgerEvent
	err := r.db.Where("submitter = ?", submitter).Order("id ASC").Find(&events).Error
	return events, err
}

// SumWithdrawn totals the journaled withdrawal amounts. Replay subtracts it
// from the collected fees so the restored balance matches the one before the
// restart.
func (r *eventRepository) SumWithdrawn() (int64, error) {
	var total int64
	err := r.db.Model(&model.LedgerEvent{}).
		Where("kind = ?", "Withdrawn").
		Select("COALESCE(SUM(amount_micros), 0)").
		Scan(&total).Error
	return total, err
}
