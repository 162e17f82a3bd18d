// Package store defines the boundary to the record store holding
// Expense, Budget and Profile records.
//
// All queries are scoped by an opaque owner id that is supplied by the
// caller; the store never authenticates anyone itself.
package store

import (
	"context"
	"errors"

	"github.com/financewise/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a record that was queried for does not exist.
//
// Callers decide whether that is an error: the budget synchronizer
// treats a missing budget as a legitimate no-op.
var ErrNotFound = errors.New("record not found")

// Client is the record store client.
//
// Every method is a network round-trip to the store: there is no
// transaction spanning multiple calls, and the store's per-record write
// atomicity is the only concurrency guarantee.
type Client interface {
	CreateExpense(ctx context.Context, expense *models.Expense) error
	// Expenses returns all expenses of the owner, ordered by date descending.
	Expenses(ctx context.Context, owner uuid.UUID) ([]models.Expense, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) error

	CreateBudget(ctx context.Context, budget *models.Budget) error
	// Budgets returns all budgets of the owner, ordered by creation time descending.
	Budgets(ctx context.Context, owner uuid.UUID) ([]models.Budget, error)
	// BudgetByCategory returns the budget matching the category by exact
	// string equality, scoped to the owner. ErrNotFound when there is none.
	BudgetByCategory(ctx context.Context, owner uuid.UUID, category string) (models.Budget, error)
	// UpdateBudgetSpent overwrites the spent column of a budget. It is a
	// plain write: reading the previous value and computing the new one is
	// the caller's job.
	UpdateBudgetSpent(ctx context.Context, id uuid.UUID, spent decimal.Decimal) error

	Profile(ctx context.Context, owner uuid.UUID) (models.Profile, error)
	SaveProfile(ctx context.Context, profile *models.Profile) error
}
