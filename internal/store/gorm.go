package store

import (
	"context"
	"errors"

	"github.com/financewise/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormClient implements Client against the gorm database handle.
type GormClient struct {
	db *gorm.DB
}

func NewGormClient(db *gorm.DB) *GormClient {
	return &GormClient{db: db}
}

func (g *GormClient) CreateExpense(ctx context.Context, expense *models.Expense) error {
	return g.db.WithContext(ctx).Create(expense).Error
}

func (g *GormClient) Expenses(ctx context.Context, owner uuid.UUID) ([]models.Expense, error) {
	var expenses []models.Expense

	err := g.db.WithContext(ctx).
		Where(&models.Expense{OwnerID: owner}).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

func (g *GormClient) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	result := g.db.WithContext(ctx).Delete(&models.Expense{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (g *GormClient) CreateBudget(ctx context.Context, budget *models.Budget) error {
	return g.db.WithContext(ctx).Create(budget).Error
}

func (g *GormClient) Budgets(ctx context.Context, owner uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget

	err := g.db.WithContext(ctx).
		Where(&models.Budget{OwnerID: owner}).
		Order("created_at DESC").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

func (g *GormClient) BudgetByCategory(ctx context.Context, owner uuid.UUID, category string) (models.Budget, error) {
	var budget models.Budget

	// Exact string match. SQLite LIKE would be case-insensitive, so the
	// category condition must stay a plain equality.
	err := g.db.WithContext(ctx).
		Where("owner_id = ? AND category = ?", owner, category).
		First(&budget).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Budget{}, ErrNotFound
		}
		return models.Budget{}, err
	}

	return budget, nil
}

func (g *GormClient) UpdateBudgetSpent(ctx context.Context, id uuid.UUID, spent decimal.Decimal) error {
	result := g.db.WithContext(ctx).
		Model(&models.Budget{}).
		Where("id = ?", id).
		Update("spent", spent)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (g *GormClient) Profile(ctx context.Context, owner uuid.UUID) (models.Profile, error) {
	var profile models.Profile

	err := g.db.WithContext(ctx).First(&profile, "id = ?", owner).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Profile{}, ErrNotFound
		}
		return models.Profile{}, err
	}

	return profile, nil
}

func (g *GormClient) SaveProfile(ctx context.Context, profile *models.Profile) error {
	return g.db.WithContext(ctx).Save(profile).Error
}
