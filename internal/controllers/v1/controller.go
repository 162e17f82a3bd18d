// Package v1 contains the handlers for the v1 API.
package v1

import (
	"github.com/financewise/backend/internal/httputil"
	"github.com/financewise/backend/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Controller holds the dependencies for the v1 handlers.
type Controller struct {
	Registry *session.Registry
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is
// passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterExpenseRoutes(r.Group("/expenses"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterProfileRoutes(r.Group("/profile"))
	co.RegisterDashboardRoutes(r.Group("/dashboard"))
}

// sessionFor resolves the owner from the X-Owner-ID header and returns
// their session. The owner id is opaque: it scopes all queries but is
// never authenticated here.
func (co Controller) sessionFor(c *gin.Context) (*session.Session, error) {
	header := c.GetHeader("X-Owner-ID")
	if header == "" {
		return nil, httputil.ErrOwnerRequired
	}

	owner, err := uuid.Parse(header)
	if err != nil {
		return nil, httputil.ErrInvalidUUID
	}

	return co.Registry.For(c.Request.Context(), owner)
}

// loadedSessionFor returns the owner's session with freshly reloaded
// mirrors. Read endpoints reload so that spent totals adjusted by
// earlier expense mutations are served, the way the web client
// re-fetches whenever a view is opened. Mutations work on the mirror
// as is.
func (co Controller) loadedSessionFor(c *gin.Context) (*session.Session, error) {
	s, err := co.sessionFor(c)
	if err != nil {
		return nil, err
	}

	err = s.LoadAll(c.Request.Context())
	if err != nil {
		return nil, err
	}

	return s, nil
}
