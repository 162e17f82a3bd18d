package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Profile holds the per-user settings. There is exactly one profile
// per user and its ID is the owner id, so it does not embed
// DefaultModel.
type Profile struct {
	ID uuid.UUID `json:"id" gorm:"primaryKey" example:"a6e29a2f-5e8d-4b56-a1a1-cf0e7e6601f1"` // The owner id
	Timestamps
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" gorm:"type:DECIMAL(20,8)" example:"50000"` // Monthly income, used for the remaining budget calculation
}

func (p *Profile) AfterFind(_ *gorm.DB) error {
	p.CreatedAt = p.CreatedAt.In(time.UTC)
	p.UpdatedAt = p.UpdatedAt.In(time.UTC)

	p.DeletedAt.Time = p.DeletedAt.Time.In(time.UTC)

	return nil
}

func (p *Profile) AfterSave(_ *gorm.DB) error {
	if p.MonthlyIncome.IsNegative() {
		return ErrIncomeNegative
	}

	return nil
}
