package v1

import (
	"net/http"

	"github.com/financewise/backend/internal/httputil"
	"github.com/financewise/backend/internal/report"
	"github.com/financewise/backend/internal/session"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", co.GetBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List budgets
// @Description	Returns the budgets of the requesting user with their derived percentage and status
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		400	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Param			X-Owner-ID	header	string	true	"UUID of the requesting user"
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	s, err := co.loadedSessionFor(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	budgets := s.Budgets()
	data := make([]report.BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudgetStatus(budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Create budget
// @Description	Creates a new budget with a spent total of zero. At most one budget per category.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			X-Owner-ID	header	string				true	"UUID of the requesting user"
// @Param			budget		body	session.BudgetInput	true	"Budget"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	s, err := co.sessionFor(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	var input session.BudgetInput
	err = httputil.BindData(c, &input)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	budget, err := s.AddBudget(c.Request.Context(), input)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	data := newBudgetStatus(budget)
	c.JSON(http.StatusCreated, BudgetResponse{Data: &data})
}

// @Summary		Get budget
// @Description	Returns a specific budget with its derived percentage and status
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			X-Owner-ID	header	string	true	"UUID of the requesting user"
// @Param			id			path	string	true	"ID of the budget"
// @Router			/v1/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	s, err := co.loadedSessionFor(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &e})
		return
	}

	for _, budget := range s.Budgets() {
		if budget.ID == uri.ID {
			data := newBudgetStatus(budget)
			c.JSON(http.StatusOK, BudgetResponse{Data: &data})
			return
		}
	}

	e := "there is no budget matching your query"
	c.JSON(http.StatusNotFound, BudgetResponse{Error: &e})
}
