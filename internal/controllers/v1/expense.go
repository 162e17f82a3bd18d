package v1

import (
	"net/http"

	"github.com/financewise/backend/internal/budgetsync"
	"github.com/financewise/backend/internal/httputil"
	"github.com/financewise/backend/internal/session"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		List expenses
// @Description	Returns the expenses of the requesting user, ordered by date descending
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Param			X-Owner-ID	header	string	true	"UUID of the requesting user"
// @Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	s, err := co.loadedSessionFor(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: s.Expenses()})
}

// @Summary		Create expense
// @Description	Records a new expense and updates the matching budget's spent total
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			X-Owner-ID	header	string					true	"UUID of the requesting user"
// @Param			expense		body	session.ExpenseInput	true	"Expense"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	s, err := co.sessionFor(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	var input session.ExpenseInput
	err = httputil.BindData(c, &input)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	expense, result, err := s.AddExpense(c.Request.Context(), input)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	// The expense is committed even when the budget adjustment failed:
	// the response stays a success and carries a warning instead.
	response := ExpenseResponse{Data: &expense}
	if result.Outcome == budgetsync.CommittedWithSyncWarning {
		w := result.Err.Error()
		response.SyncWarning = &w
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary		Delete expense
// @Description	Deletes an expense and updates the matching budget's spent total. Unknown ids are a no-op.
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseDeleteResponse
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			X-Owner-ID	header	string	true	"UUID of the requesting user"
// @Param			id			path	string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	s, err := co.sessionFor(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	result, err := s.DeleteExpense(c.Request.Context(), uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if result.Outcome == budgetsync.CommittedWithSyncWarning {
		w := result.Err.Error()
		c.JSON(http.StatusOK, ExpenseDeleteResponse{SyncWarning: &w})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
