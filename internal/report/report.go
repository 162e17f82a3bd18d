// Package report computes the derived dashboard values from already
// loaded records. Everything in here is a pure function: no store
// access, no side effects.
package report

import (
	"strings"

	"github.com/financewise/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Status describes how close a budget is to its limit.
type Status string

const (
	StatusNormal   Status = "normal"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

var (
	hundred           = decimal.NewFromInt(100)
	warningThreshold  = decimal.NewFromInt(70)
	criticalThreshold = decimal.NewFromInt(90)
)

// PercentageOfLimit returns spent as a percentage of the limit.
//
// A limit that is not positive cannot produce a meaningful ratio, so
// the percentage is defined as zero instead of propagating an infinite
// value. Budgets are validated to have positive limits on creation, so
// this only happens for records drifted by outside writes.
func PercentageOfLimit(spent, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		return decimal.Zero
	}

	return spent.Div(limit).Mul(hundred)
}

// StatusForPercentage bands a percentage of limit. The thresholds are
// inclusive at the lower bound: exactly 70 is a warning, exactly 90 is
// critical.
func StatusForPercentage(percentage decimal.Decimal) Status {
	if percentage.GreaterThanOrEqual(criticalThreshold) {
		return StatusCritical
	}

	if percentage.GreaterThanOrEqual(warningThreshold) {
		return StatusWarning
	}

	return StatusNormal
}

// BudgetSummary sums over all budgets of an owner.
//
// TotalSpent is computed from the budgets' persisted spent totals, not
// from the expense records. When synchronization has failed it can
// diverge from TotalExpenses; both are exposed side by side, never
// merged.
type BudgetSummary struct {
	TotalBudget    decimal.Decimal `json:"totalBudget" example:"20000"`   // Sum of all limits
	TotalSpent     decimal.Decimal `json:"totalSpent" example:"7231.50"`  // Sum of all spent totals
	TotalRemaining decimal.Decimal `json:"totalRemaining" example:"12768.50"` // Difference of the two
}

func Summarize(budgets []models.Budget) BudgetSummary {
	summary := BudgetSummary{
		TotalBudget: decimal.Zero,
		TotalSpent:  decimal.Zero,
	}

	for _, budget := range budgets {
		summary.TotalBudget = summary.TotalBudget.Add(budget.LimitAmount)
		summary.TotalSpent = summary.TotalSpent.Add(budget.Spent)
	}

	summary.TotalRemaining = summary.TotalBudget.Sub(summary.TotalSpent)
	return summary
}

// TotalExpenses sums the amounts of the expense records. This is
// independent of the budgets' spent totals.
func TotalExpenses(expenses []models.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, expense := range expenses {
		sum = sum.Add(expense.Amount)
	}

	return sum
}

// RemainingBudget is the monthly income minus the total of all expenses.
func RemainingBudget(income, totalExpenses decimal.Decimal) decimal.Decimal {
	return income.Sub(totalExpenses)
}

// BudgetStatus is the per-budget view for the dashboard.
type BudgetStatus struct {
	Budget     models.Budget   `json:"budget"`
	Percentage decimal.Decimal `json:"percentage" example:"63.5"` // Spent as percentage of the limit
	Remaining  decimal.Decimal `json:"remaining" example:"1825"`  // Limit minus spent
	Status     Status          `json:"status" example:"normal"`
}

// CategorySpend is the total spent per expense category, used for the
// spending chart.
type CategorySpend struct {
	Category string          `json:"category" example:"Food"`
	Amount   decimal.Decimal `json:"amount" example:"1273.94"`
}

// SpentByCategory groups the expense amounts by category, ordered by
// amount descending. Categories compare by exact string equality.
func SpentByCategory(expenses []models.Expense) []CategorySpend {
	sums := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		sums[expense.Category] = sums[expense.Category].Add(expense.Amount)
	}

	spends := make([]CategorySpend, 0, len(sums))
	for category, amount := range sums {
		spends = append(spends, CategorySpend{Category: category, Amount: amount})
	}

	slices.SortFunc(spends, func(a, b CategorySpend) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})

	return spends
}

// Dashboard is the full derived view over one owner's records.
type Dashboard struct {
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome" example:"50000"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses" example:"12000"`  // Sum over expense records
	RemainingBudget decimal.Decimal `json:"remainingBudget" example:"38000"` // Income minus total expenses
	Summary         BudgetSummary   `json:"summary"`
	Budgets         []BudgetStatus  `json:"budgets"`
	Categories      []CategorySpend `json:"categories"`
}

// Overview derives the dashboard from the current record sets.
func Overview(profile models.Profile, expenses []models.Expense, budgets []models.Budget) Dashboard {
	total := TotalExpenses(expenses)

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		percentage := PercentageOfLimit(budget.Spent, budget.LimitAmount)
		statuses = append(statuses, BudgetStatus{
			Budget:     budget,
			Percentage: percentage,
			Remaining:  budget.LimitAmount.Sub(budget.Spent),
			Status:     StatusForPercentage(percentage),
		})
	}

	return Dashboard{
		MonthlyIncome:   profile.MonthlyIncome,
		TotalExpenses:   total,
		RemainingBudget: RemainingBudget(profile.MonthlyIncome, total),
		Summary:         Summarize(budgets),
		Budgets:         statuses,
		Categories:      SpentByCategory(expenses),
	}
}
