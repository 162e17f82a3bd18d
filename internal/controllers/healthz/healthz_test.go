package healthz_test

import (
	"net/http"
	"testing"

	"github.com/financewise/backend/internal/budgetsync"
	"github.com/financewise/backend/internal/models"
	"github.com/financewise/backend/internal/router"
	"github.com/financewise/backend/internal/session"
	"github.com/financewise/backend/internal/store"
	"github.com/financewise/backend/test"
	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	require.Nil(t, models.Connect(test.TmpFile(t)))
	sqlDB, _ := models.DB.DB()

	client := store.NewGormClient(models.DB)
	r, err := router.Router(session.NewRegistry(client, budgetsync.New(client), nil))
	require.Nil(t, err)

	recorder := test.Request(t, r, http.MethodOptions, "/healthz", "")
	test.AssertHTTPStatus(t, http.StatusNoContent, &recorder)
	require.Equal(t, "OPTIONS, GET", recorder.Header().Get("allow"))

	recorder = test.Request(t, r, http.MethodGet, "/healthz", "")
	test.AssertHTTPStatus(t, http.StatusNoContent, &recorder)

	// A closed database connection makes the health check fail
	sqlDB.Close()
	recorder = test.Request(t, r, http.MethodGet, "/healthz", "")
	test.AssertHTTPStatus(t, http.StatusInternalServerError, &recorder)
}
