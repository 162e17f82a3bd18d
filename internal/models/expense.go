package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single recorded expense.
//
// Expenses are immutable once created: the only permitted mutation
// is deleting the whole record.
type Expense struct {
	DefaultModel
	OwnerID     uuid.UUID       `json:"ownerId" gorm:"index" example:"a6e29a2f-5e8d-4b56-a1a1-cf0e7e6601f1"` // ID of the user owning the expense
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"271.50"`                   // Amount spent
	Category    string          `json:"category" example:"Food"`                                             // Category the expense belongs to
	Description string          `json:"description" example:"Groceries for the week"`                        // What the money was spent on
	Date        time.Time       `json:"date" example:"2024-05-14T00:00:00Z"`                                 // Day the expense was made
}

// BeforeSave sets the date to the current day when it is unset
// and normalizes it to UTC midnight.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	}

	e.Date = time.Date(e.Date.UTC().Year(), e.Date.UTC().Month(), e.Date.UTC().Day(), 0, 0, 0, 0, time.UTC)
	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	err := e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if e.Amount.IsNegative() {
		return ErrExpenseAmountNegative
	}

	return nil
}
