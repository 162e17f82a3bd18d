package models_test

import (
	"github.com/financewise/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestProfileIncomeNegative() {
	profile := models.Profile{
		ID:            uuid.New(),
		MonthlyIncome: decimal.NewFromInt(-50000),
	}

	err := models.DB.Create(&profile).Error
	suite.Assert().ErrorIs(err, models.ErrIncomeNegative)
}

func (suite *TestSuiteStandard) TestProfileIncomeZero() {
	profile := suite.createTestProfile(models.Profile{ID: uuid.New()})
	suite.Assert().True(profile.MonthlyIncome.IsZero())
}

func (suite *TestSuiteStandard) TestProfileTimestampsUTC() {
	profile := suite.createTestProfile(models.Profile{
		ID:            uuid.New(),
		MonthlyIncome: decimal.NewFromInt(50000),
	})

	var loaded models.Profile
	err := models.DB.First(&loaded, "id = ?", profile.ID).Error
	suite.Require().Nil(err)
	suite.Assert().Equal("UTC", loaded.CreatedAt.Location().String())
}
