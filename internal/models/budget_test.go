package models_test

import (
	"github.com/financewise/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetCategoryUniquePerOwner() {
	owner := uuid.New()

	_ = suite.createTestBudget(models.Budget{
		OwnerID:     owner,
		Category:    "Food",
		LimitAmount: decimal.NewFromInt(5000),
	})

	duplicate := models.Budget{
		OwnerID:     owner,
		Category:    "Food",
		LimitAmount: decimal.NewFromInt(3000),
	}
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetCategoryNotUnique)

	// The same category is fine for another owner
	other := models.Budget{
		OwnerID:     uuid.New(),
		Category:    "Food",
		LimitAmount: decimal.NewFromInt(3000),
	}
	err = models.DB.Create(&other).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestBudgetCategoryCaseSensitive() {
	owner := uuid.New()

	_ = suite.createTestBudget(models.Budget{
		OwnerID:     owner,
		Category:    "Food",
		LimitAmount: decimal.NewFromInt(5000),
	})

	// "food" and "Food" are distinct categories, no normalization happens
	budget := models.Budget{
		OwnerID:     owner,
		Category:    "food",
		LimitAmount: decimal.NewFromInt(1000),
	}
	err := models.DB.Create(&budget).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestBudgetLimitNotPositive() {
	budget := models.Budget{
		OwnerID:  uuid.New(),
		Category: "Food",
	}

	err := models.DB.Create(&budget).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetLimitNotPositive)

	budget.LimitAmount = decimal.NewFromInt(-100)
	err = models.DB.Create(&budget).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetLimitNotPositive)
}

func (suite *TestSuiteStandard) TestBudgetSpentNegative() {
	budget := models.Budget{
		OwnerID:     uuid.New(),
		Category:    "Food",
		LimitAmount: decimal.NewFromInt(100),
		Spent:       decimal.NewFromInt(-1),
	}

	err := models.DB.Create(&budget).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetSpentNegative)
}
