package models_test

import (
	"time"

	"github.com/financewise/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExpenseDateDefaults() {
	expense := suite.createTestExpense(models.Expense{
		Amount:      decimal.NewFromFloat(27.13),
		Category:    "Food",
		Description: "Lunch",
	})

	today := time.Now().In(time.UTC)
	expected := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	suite.Assert().True(expense.Date.Equal(expected), "Date is %s, expected %s", expense.Date, expected)
}

func (suite *TestSuiteStandard) TestExpenseDateNormalized() {
	loc, err := time.LoadLocation("Asia/Kolkata")
	suite.Require().Nil(err)

	expense := suite.createTestExpense(models.Expense{
		Amount:      decimal.NewFromInt(100),
		Category:    "Transportation",
		Description: "Bus pass",
		Date:        time.Date(2024, 5, 14, 21, 4, 5, 0, loc),
	})

	suite.Assert().True(expense.Date.Equal(time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)), "Date is %s", expense.Date)
}

func (suite *TestSuiteStandard) TestExpenseAmountNegative() {
	expense := models.Expense{
		Amount:      decimal.NewFromInt(-10),
		Category:    "Food",
		Description: "Refund entered wrong",
	}

	err := models.DB.Create(&expense).Error
	suite.Assert().ErrorIs(err, models.ErrExpenseAmountNegative)
}

func (suite *TestSuiteStandard) TestExpenseAmountZero() {
	expense := models.Expense{
		Amount:      decimal.Zero,
		Category:    "Other",
		Description: "Free sample",
	}

	err := models.DB.Create(&expense).Error
	suite.Assert().Nil(err)
}
