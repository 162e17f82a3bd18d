package router_test

import (
	"net/http"
	"testing"

	"github.com/financewise/backend/internal/budgetsync"
	"github.com/financewise/backend/internal/models"
	"github.com/financewise/backend/internal/router"
	"github.com/financewise/backend/internal/session"
	"github.com/financewise/backend/internal/store"
	"github.com/financewise/backend/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()

	require.Nil(t, models.Connect(test.TmpFile(t)))
	t.Cleanup(func() {
		sqlDB, _ := models.DB.DB()
		sqlDB.Close()
	})

	client := store.NewGormClient(models.DB)
	r, err := router.Router(session.NewRegistry(client, budgetsync.New(client), nil))
	require.Nil(t, err)

	return r
}

func TestGetRoot(t *testing.T) {
	r := testRouter(t)

	recorder := test.Request(t, r, http.MethodGet, "/", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response router.RootResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.Equal(t, "/v1", response.Links.V1)
	assert.Equal(t, "/healthz", response.Links.Healthz)
}

func TestGetVersion(t *testing.T) {
	r := testRouter(t)

	recorder := test.Request(t, r, http.MethodGet, "/version", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response router.VersionResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.Equal(t, "0.0.0", response.Data.Version)
}

func TestGetV1(t *testing.T) {
	r := testRouter(t)

	recorder := test.Request(t, r, http.MethodGet, "/v1", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response router.V1Response
	test.DecodeResponse(t, &recorder, &response)
	assert.Equal(t, "/v1/expenses", response.Links.Expenses)
	assert.Equal(t, "/v1/dashboard", response.Links.Dashboard)
}

func TestOptions(t *testing.T) {
	r := testRouter(t)

	for _, path := range []string{"/", "/version", "/v1"} {
		recorder := test.Request(t, r, http.MethodOptions, path, "")
		test.AssertHTTPStatus(t, http.StatusNoContent, &recorder)
		assert.Equal(t, "OPTIONS, GET", recorder.Header().Get("allow"))
	}
}

func TestMethodNotAllowed(t *testing.T) {
	r := testRouter(t)

	recorder := test.Request(t, r, http.MethodDelete, "/version", "")
	test.AssertHTTPStatus(t, http.StatusMethodNotAllowed, &recorder)
}

func TestMetrics(t *testing.T) {
	r := testRouter(t)

	// Produce at least one request so the counters exist
	recorder := test.Request(t, r, http.MethodGet, "/", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	recorder = test.Request(t, r, http.MethodGet, "/metrics", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)
	assert.Contains(t, recorder.Body.String(), "requests_total")
}

func TestRouterBuildsRepeatedly(t *testing.T) {
	// Building the engine twice must not trip over already registered
	// prometheus collectors
	_ = testRouter(t)
	_ = testRouter(t)
}
