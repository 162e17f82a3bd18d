package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget represents a monthly spending limit for one category.
//
// Spent is a derived value: it is a persisted running total over the
// expenses in the budget's category and is only ever written by the
// budget synchronizer, never directly by a user.
type Budget struct {
	DefaultModel
	OwnerID     uuid.UUID       `json:"ownerId" gorm:"uniqueIndex:budget_owner_category" example:"a6e29a2f-5e8d-4b56-a1a1-cf0e7e6601f1"` // ID of the user owning the budget
	Category    string          `json:"category" gorm:"uniqueIndex:budget_owner_category" example:"Food"`                                // Category the limit applies to, unique per owner
	LimitAmount decimal.Decimal `json:"limitAmount" gorm:"type:DECIMAL(20,8)" example:"5000"`                                            // Monthly spending limit
	Spent       decimal.Decimal `json:"spent" gorm:"type:DECIMAL(20,8)" example:"1273.94"`                                               // Running total of expenses in this category
}

// The category is stored exactly as the user entered it. Matching
// against expense categories is by exact string equality, so no
// trimming or case folding happens here.

// BeforeCreate validates the budget.
//
// Validation happens on create only: the synchronizer updates the
// spent column in isolation and already clamps it at zero.
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	err := b.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	if !b.LimitAmount.IsPositive() {
		return ErrBudgetLimitNotPositive
	}

	if b.Spent.IsNegative() {
		return ErrBudgetSpentNegative
	}

	return nil
}
