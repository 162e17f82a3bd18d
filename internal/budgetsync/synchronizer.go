// Package budgetsync keeps the spent total of each budget in step with
// the expenses recorded for its category.
//
// Synchronization is a secondary, best-effort step: by the time it
// runs, the expense write has already succeeded and is never rolled
// back. When the budget lookup or update fails, the expense stays
// committed and the budget goes stale until someone fixes it up.
package budgetsync

import (
	"context"
	"errors"

	"github.com/financewise/backend/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Outcome describes how an expense mutation and its budget
// synchronization ended.
type Outcome int

const (
	// Committed means the expense write succeeded and the budget, if one
	// exists for the category, was adjusted.
	Committed Outcome = iota
	// CommittedWithSyncWarning means the expense write succeeded but the
	// budget adjustment failed. The budget's spent total is stale.
	CommittedWithSyncWarning
)

func (o Outcome) String() string {
	if o == CommittedWithSyncWarning {
		return "committed-with-sync-warning"
	}

	return "committed"
}

// Result is the outcome of one synchronization run. Err is only set
// for CommittedWithSyncWarning.
type Result struct {
	Outcome Outcome
	Err     error
}

// Synchronizer applies compensating spent updates to budgets.
type Synchronizer struct {
	store store.Client
}

func New(client store.Client) *Synchronizer {
	return &Synchronizer{store: client}
}

// OnExpenseCreated adds the amount to the spent total of the budget
// matching (owner, category). A missing budget is a no-op: the expense
// is simply not budget-tracked.
func (s *Synchronizer) OnExpenseCreated(ctx context.Context, owner uuid.UUID, category string, amount decimal.Decimal) Result {
	return s.adjust(ctx, owner, category, func(spent decimal.Decimal) decimal.Decimal {
		return spent.Add(amount)
	})
}

// OnExpenseDeleted subtracts the amount from the spent total of the
// budget matching (owner, category), clamping at zero so deletions can
// never drive the total negative even after prior drift.
func (s *Synchronizer) OnExpenseDeleted(ctx context.Context, owner uuid.UUID, category string, amount decimal.Decimal) Result {
	return s.adjust(ctx, owner, category, func(spent decimal.Decimal) decimal.Decimal {
		newSpent := spent.Sub(amount)
		if newSpent.IsNegative() {
			return decimal.Zero
		}
		return newSpent
	})
}

// adjust runs the compensating update as a read-then-write sequence.
//
// This is deliberately not an atomic increment: two concurrent
// adjustments for the same budget can both read the same prior spent
// value and lose one of the updates. Sessions serialize their
// operations, so this cannot happen through the API; the store
// interface offers no transaction to do better with.
func (s *Synchronizer) adjust(ctx context.Context, owner uuid.UUID, category string, compute func(decimal.Decimal) decimal.Decimal) Result {
	budget, err := s.store.BudgetByCategory(ctx, owner, category)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// No budget tracks this category
			return Result{Outcome: Committed}
		}

		log.Warn().Err(err).Str("category", category).Msg("budget lookup failed, budget not synchronized")
		return Result{Outcome: CommittedWithSyncWarning, Err: err}
	}

	err = s.store.UpdateBudgetSpent(ctx, budget.ID, compute(budget.Spent))
	if err != nil {
		log.Warn().Err(err).Str("category", category).Stringer("budget", budget.ID).Msg("budget update failed, budget not synchronized")
		return Result{Outcome: CommittedWithSyncWarning, Err: err}
	}

	return Result{Outcome: Committed}
}
