package repository

import (
	"github.com/tdhoang/careerledger/internal/model"
	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Create(record *model.AssessmentRecord) error
	MarkRevealRequested(id uint64) error
	ListInOrder() ([]model.AssessmentRecord, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(record *model.AssessmentRecord) error {
	return r.db.Create(record).Error
}

func (r *assessmentRepository) MarkRevealRequested(id uint64) error {
	return r.db.Model(&model.AssessmentRecord{}).
		Where("id = ?", id).
		Update("reveal_requested", true).Error
}

// ListInOrder returns every archived record in id order, for ledger replay.
func (r *assessmentRepository) ListInOrder() ([]model.AssessmentRecord, error) {
	var records []model.AssessmentRecord
	err := r.db.Order("id ASC").Find(&records).Error
	return records, err
}
