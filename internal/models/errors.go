package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrBudgetCategoryNotUnique = errors.New("you already have a budget for this category")
	ErrBudgetLimitNotPositive  = errors.New("budget limits must be larger than zero")
	ErrBudgetSpentNegative     = errors.New("the spent amount of a budget cannot be negative")
	ErrExpenseAmountNegative   = errors.New("expense amounts cannot be negative")
	ErrIncomeNegative          = errors.New("the monthly income cannot be negative")
)
