// Package session holds the in-memory mirrors of one user's records
// and coordinates mutations against the record store.
//
// Mirrors are updated optimistically: after a successful remote write
// the local copy is patched in place instead of re-fetched. The budget
// mirror is deliberately not refreshed when an expense mutation
// adjusts a budget's spent total remotely, so derived budget
// percentages can be stale until the next LoadAll. Refreshing inline
// would hide exactly the sync failures the warning flow surfaces.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/financewise/backend/internal/budgetsync"
	"github.com/financewise/backend/internal/events"
	"github.com/financewise/backend/internal/models"
	"github.com/financewise/backend/internal/report"
	"github.com/financewise/backend/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Session is the view state for one owner.
//
// A single logical actor drives a session: operations run to
// completion before the next is accepted, which the mutex enforces.
// There is no cancellation once a remote write has been issued.
type Session struct {
	mu sync.Mutex

	owner     uuid.UUID
	store     store.Client
	sync      *budgetsync.Synchronizer
	publisher events.Publisher

	expenses []models.Expense
	budgets  []models.Budget
	profile  models.Profile
}

func New(owner uuid.UUID, client store.Client, synchronizer *budgetsync.Synchronizer, publisher events.Publisher) *Session {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	return &Session{
		owner:     owner,
		store:     client,
		sync:      synchronizer,
		publisher: publisher,
	}
}

// LoadAll replaces all mirrors with the current store contents.
//
// A failed fetch aborts the load and leaves the mirror of the failed
// record kind untouched; partial results are never merged in.
func (s *Session) LoadAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.store.Expenses(ctx, s.owner)
	if err != nil {
		return LoadError{Cause: err}
	}

	budgets, err := s.store.Budgets(ctx, s.owner)
	if err != nil {
		return LoadError{Cause: err}
	}

	profile, err := s.store.Profile(ctx, s.owner)
	if errors.Is(err, store.ErrNotFound) {
		// A user that has never set an income has no profile row yet
		profile = models.Profile{ID: s.owner, MonthlyIncome: decimal.Zero}
	} else if err != nil {
		return LoadError{Cause: err}
	}

	s.expenses = expenses
	s.budgets = budgets
	s.profile = profile

	return nil
}

// ExpenseInput is the user input for a new expense. Amount arrives as
// the raw string the user typed.
type ExpenseInput struct {
	Amount      string    `json:"amount" example:"271.50"`
	Category    string    `json:"category" example:"Food"`
	Description string    `json:"description" example:"Groceries for the week"`
	Date        time.Time `json:"date" example:"2024-05-14T00:00:00Z"` // Optional, defaults to today
}

// AddExpense validates, persists and mirrors a new expense, then runs
// the budget synchronization.
//
// The returned Result reports whether the budget adjustment succeeded;
// the expense itself is committed in every non-error case.
func (s *Session) AddExpense(ctx context.Context, input ExpenseInput) (models.Expense, budgetsync.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	amount, err := parseAmount(input.Amount, "amount")
	if err != nil {
		return models.Expense{}, budgetsync.Result{}, err
	}

	if input.Category == "" {
		return models.Expense{}, budgetsync.Result{}, ValidationError{Field: "category", Reason: "must not be empty"}
	}

	if input.Description == "" {
		return models.Expense{}, budgetsync.Result{}, ValidationError{Field: "description", Reason: "must not be empty"}
	}

	expense := models.Expense{
		OwnerID:     s.owner,
		Amount:      amount,
		Category:    input.Category,
		Description: input.Description,
		Date:        input.Date,
	}

	err = s.store.CreateExpense(ctx, &expense)
	if err != nil {
		return models.Expense{}, budgetsync.Result{}, err
	}

	result := s.sync.OnExpenseCreated(ctx, s.owner, expense.Category, expense.Amount)

	// Prepend: the mirror is ordered by date descending and the new
	// expense defaults to today. No re-fetch, the remote write already
	// succeeded.
	s.expenses = append([]models.Expense{expense}, s.expenses...)

	s.publish(ctx, events.TypeExpenseCreated, expense)

	return expense, result, nil
}

// DeleteExpense deletes the expense with the given id.
//
// An id that is not in the local mirror is a silent no-op: nothing is
// deleted and the synchronizer is not invoked.
func (s *Session) DeleteExpense(ctx context.Context, id uuid.UUID) (budgetsync.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, expense := range s.expenses {
		if expense.ID == id {
			index = i
			break
		}
	}

	if index < 0 {
		return budgetsync.Result{Outcome: budgetsync.Committed}, nil
	}

	expense := s.expenses[index]

	err := s.store.DeleteExpense(ctx, id)
	if err != nil {
		return budgetsync.Result{}, err
	}

	// The mirror recorded the amount and category at creation time, so
	// the compensating update does not need to re-read the expense.
	result := s.sync.OnExpenseDeleted(ctx, s.owner, expense.Category, expense.Amount)

	s.expenses = append(s.expenses[:index], s.expenses[index+1:]...)

	s.publish(ctx, events.TypeExpenseDeleted, expense)

	return result, nil
}

// BudgetInput is the user input for a new budget.
type BudgetInput struct {
	Category string `json:"category" example:"Food"`
	Limit    string `json:"limit" example:"5000"`
}

// AddBudget validates, persists and mirrors a new budget. The spent
// total always starts at zero.
func (s *Session) AddBudget(ctx context.Context, input BudgetInput) (models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Category == "" {
		return models.Budget{}, ValidationError{Field: "category", Reason: "must not be empty"}
	}

	limit, err := parseAmount(input.Limit, "limit")
	if err != nil {
		return models.Budget{}, err
	}

	if !limit.IsPositive() {
		return models.Budget{}, ValidationError{Field: "limit", Reason: "must be a positive number"}
	}

	budget := models.Budget{
		OwnerID:     s.owner,
		Category:    input.Category,
		LimitAmount: limit,
		Spent:       decimal.Zero,
	}

	err = s.store.CreateBudget(ctx, &budget)
	if err != nil {
		return models.Budget{}, err
	}

	s.budgets = append(s.budgets, budget)

	return budget, nil
}

// SetIncome validates and persists the monthly income.
func (s *Session) SetIncome(ctx context.Context, value string) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	income, err := parseAmount(value, "monthly income")
	if err != nil {
		return models.Profile{}, err
	}

	// Start from the mirrored profile so an existing row keeps its
	// creation timestamp on the full-row save.
	profile := s.profile
	profile.ID = s.owner
	profile.MonthlyIncome = income

	err = s.store.SaveProfile(ctx, &profile)
	if err != nil {
		return models.Profile{}, err
	}

	s.profile = profile

	return profile, nil
}

// Expenses returns a copy of the expense mirror, ordered by date descending.
func (s *Session) Expenses() []models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := make([]models.Expense, len(s.expenses))
	copy(expenses, s.expenses)
	return expenses
}

// Budgets returns a copy of the budget mirror.
func (s *Session) Budgets() []models.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets := make([]models.Budget, len(s.budgets))
	copy(budgets, s.budgets)
	return budgets
}

// Profile returns the mirrored profile.
func (s *Session) Profile() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.profile
}

// Dashboard derives the dashboard values from the current mirrors.
//
// The mirrors may be stale relative to the store, see the package
// documentation.
func (s *Session) Dashboard() report.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	return report.Overview(s.profile, s.expenses, s.budgets)
}

func (s *Session) publish(ctx context.Context, eventType string, expense models.Expense) {
	err := s.publisher.Publish(ctx, events.ExpenseEvent{
		Type:      eventType,
		ID:        expense.ID,
		OwnerID:   expense.OwnerID,
		Category:  expense.Category,
		Amount:    expense.Amount,
		Timestamp: time.Now().In(time.UTC),
	})
	if err != nil {
		log.Warn().Err(err).Str("type", eventType).Stringer("expense", expense.ID).Msg("publishing expense event failed")
	}
}

// parseAmount parses a currency value from user input. Amounts must be
// parseable decimals and not negative.
func parseAmount(value, field string) (decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return decimal.Decimal{}, ValidationError{Field: field, Reason: "must not be empty"}
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, ValidationError{Field: field, Reason: "must be a number"}
	}

	if amount.IsNegative() {
		return decimal.Decimal{}, ValidationError{Field: field, Reason: "must not be negative"}
	}

	return amount, nil
}
