package v1

import (
	"github.com/financewise/backend/internal/models"
	"github.com/financewise/backend/internal/report"
	"github.com/google/uuid"
)

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type ExpenseResponse struct {
	Data        *models.Expense `json:"data"`                                                             // The created expense
	SyncWarning *string         `json:"syncWarning,omitempty" example:"budget update failed"`             // Set when the expense was committed but the budget adjustment failed
	Error       *string         `json:"error,omitempty" example:"invalid category: must not be empty"`    // The error, if any occurred
}

type ExpenseListResponse struct {
	Data  []models.Expense `json:"data"`            // List of expenses, ordered by date descending
	Error *string          `json:"error,omitempty"` // The error, if any occurred
}

type ExpenseDeleteResponse struct {
	SyncWarning *string `json:"syncWarning,omitempty"` // Set when the expense was deleted but the budget adjustment failed
}

func newBudgetStatus(budget models.Budget) report.BudgetStatus {
	percentage := report.PercentageOfLimit(budget.Spent, budget.LimitAmount)

	return report.BudgetStatus{
		Budget:     budget,
		Percentage: percentage,
		Remaining:  budget.LimitAmount.Sub(budget.Spent),
		Status:     report.StatusForPercentage(percentage),
	}
}

type BudgetResponse struct {
	Data  *report.BudgetStatus `json:"data"`            // The budget with its derived values
	Error *string              `json:"error,omitempty"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data  []report.BudgetStatus `json:"data"`            // List of budgets with derived values, newest first
	Error *string               `json:"error,omitempty"` // The error, if any occurred
}

type ProfileResponse struct {
	Data  *models.Profile `json:"data"`            // The profile
	Error *string         `json:"error,omitempty"` // The error, if any occurred
}

// DashboardData carries the derived dashboard plus display strings for
// the headline values.
type DashboardData struct {
	report.Dashboard
	Display DashboardDisplay `json:"display"`
}

type DashboardDisplay struct {
	MonthlyIncome   string `json:"monthlyIncome" example:"₹50,000.00"`
	TotalExpenses   string `json:"totalExpenses" example:"₹12,000.00"`
	RemainingBudget string `json:"remainingBudget" example:"₹38,000.00"`
}

type DashboardResponse struct {
	Data  *DashboardData `json:"data"`            // The dashboard
	Error *string        `json:"error,omitempty"` // The error, if any occurred
}
