package v1

import (
	"net/http"

	"github.com/financewise/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterProfileRoutes registers the routes for the profile with
// the RouterGroup that is passed.
func (co Controller) RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProfile)
	r.GET("", co.GetProfile)
	r.PUT("", co.UpdateProfile)
}

// IncomeInput is the body for updating the monthly income.
type IncomeInput struct {
	MonthlyIncome string `json:"monthlyIncome" example:"50000"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get profile
// @Description	Returns the profile of the requesting user
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		400	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Param			X-Owner-ID	header	string	true	"UUID of the requesting user"
// @Router			/v1/profile [get]
func (co Controller) GetProfile(c *gin.Context) {
	s, err := co.loadedSessionFor(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	profile := s.Profile()
	c.JSON(http.StatusOK, ProfileResponse{Data: &profile})
}

// @Summary		Set monthly income
// @Description	Updates the monthly income of the requesting user
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			X-Owner-ID	header	string		true	"UUID of the requesting user"
// @Param			income		body	IncomeInput	true	"Monthly income"
// @Router			/v1/profile [put]
func (co Controller) UpdateProfile(c *gin.Context) {
	s, err := co.sessionFor(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	var input IncomeInput
	err = httputil.BindData(c, &input)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	profile, err := s.SetIncome(c.Request.Context(), input.MonthlyIncome)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Data: &profile})
}
