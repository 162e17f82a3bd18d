package v1

import (
	"net/http"

	"github.com/financewise/backend/internal/httputil"
	"github.com/financewise/backend/internal/report"
	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", co.GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the derived dashboard values: income, totals, remaining budget, per-budget status and per-category spending
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		400	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Param			X-Owner-ID	header	string	true	"UUID of the requesting user"
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	s, err := co.loadedSessionFor(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	dashboard := s.Dashboard()
	data := DashboardData{
		Dashboard: dashboard,
		Display: DashboardDisplay{
			MonthlyIncome:   report.FormatAmount(dashboard.MonthlyIncome),
			TotalExpenses:   report.FormatAmount(dashboard.TotalExpenses),
			RemainingBudget: report.FormatAmount(dashboard.RemainingBudget),
		},
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
