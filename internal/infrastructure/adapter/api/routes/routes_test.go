package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	"github.com/amirhossein-jamali/party-bank/internal/domain/usecase/game"
	"github.com/amirhossein-jamali/party-bank/internal/domain/usecase/guard"
	"github.com/amirhossein-jamali/party-bank/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/memstore"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/random"
	timeadapter "github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/time"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, limiter *middleware.RateLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tp := timeadapter.NewRealTimeProvider()
	log := logger.NewNoopLogger()
	m := metrics.NewNoopMetrics()
	store := memstore.NewStore(tp)

	g := guard.NewBalanceGuard(store.ReviveGateway(), store.UnitOfWork(), tp, m, log, guard.DefaultPolicy())
	users := user.NewUserUseCase(store.UserRepository(), store.UnitOfWork(), g, identity.NewUUIDGenerator(), tp, log, user.DefaultSettings())
	games := game.NewGameService(users, memstore.NewScanCounter(), random.NewSource(7, 11), m, log)

	registry := prometheus.NewRegistry()
	httpMetrics, err := middleware.NewHTTPMetrics(registry, "partybank")
	require.NoError(t, err)

	router := gin.New()
	routes.SetupMiddlewares(router, log, routes.MiddlewareOptions{HTTPMetrics: httpMetrics})
	routes.SetupRoutes(router, handler.NewUserHandler(users, log), handler.NewGameHandler(games, log), limiter,
		routes.MetricsOptions{Path: "/metrics", Gatherer: registry})
	return router
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func register(t *testing.T, router *gin.Engine, name string) string {
	t.Helper()
	w := do(t, router, http.MethodPost, "/user", map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.UserResponse](t, w).UserID
}

func TestRegisterAndBalance(t *testing.T) {
	router := newRouter(t, nil)
	id := register(t, router, "Alice")

	w := do(t, router, http.MethodGet, "/user/"+id+"/balance", nil)
	require.Equal(t, http.StatusOK, w.Code)

	balance := decode[dto.BalanceResponse](t, w)
	assert.Equal(t, id, balance.UserID)
	assert.Equal(t, "Alice", balance.Name)
	assert.Equal(t, int64(20), balance.Balance)
	assert.False(t, balance.HasRevived)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestModifyBalance_FloorReviveThenGameOver(t *testing.T) {
	router := newRouter(t, nil)
	id := register(t, router, "Bob")

	w := do(t, router, http.MethodPost, "/user/"+id+"/transaction", dto.TransactionRequest{Amount: -25})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	change := decode[dto.BalanceChangeResponse](t, w)
	assert.Equal(t, int64(-20), change.Applied)
	assert.Equal(t, int64(10), change.Balance)
	assert.True(t, change.Revived)
	assert.False(t, change.GameOver)

	w = do(t, router, http.MethodPost, "/user/"+id+"/transaction", dto.TransactionRequest{Amount: -15})
	require.Equal(t, http.StatusOK, w.Code)
	change = decode[dto.BalanceChangeResponse](t, w)
	assert.Equal(t, int64(0), change.Balance)
	assert.True(t, change.GameOver)

	balance := decode[dto.BalanceResponse](t, do(t, router, http.MethodGet, "/user/"+id+"/balance", nil))
	assert.Equal(t, "at_floor_exhausted", balance.State)
	assert.True(t, balance.HasRevived)
}

func TestErrorMapping(t *testing.T) {
	router := newRouter(t, nil)
	id := register(t, router, "Carol")

	testCases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"unknown user balance", http.MethodGet, "/user/nobody/balance", nil, http.StatusNotFound},
		{"zero amount rejected by binding", http.MethodPost, "/user/" + id + "/transaction", map[string]int{"amount": 0}, http.StatusBadRequest},
		{"amount over the limit", http.MethodPost, "/user/" + id + "/transaction", dto.TransactionRequest{Amount: 2_000_000}, http.StatusBadRequest},
		{"missing name", http.MethodPost, "/user", map[string]string{}, http.StatusBadRequest},
		{"unknown code", http.MethodPost, "/user/" + id + "/scan/NOPE", nil, http.StatusNotFound},
		{"unknown trait", http.MethodGet, "/traits/wizard/missions", nil, http.StatusNotFound},
		{"non-numeric mission index", http.MethodPost, "/user/" + id + "/missions/daredevil/x/claim", nil, http.StatusNotFound},
		{"witness mission without confirmer", http.MethodPost, "/user/" + id + "/missions/daredevil/0/claim", nil, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, router, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.status, w.Code, w.Body.String())

			resp := decode[dto.ErrorResponse](t, w)
			assert.NotZero(t, resp.Code)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestGameRoutes(t *testing.T) {
	router := newRouter(t, nil)
	id := register(t, router, "Dana")

	w := do(t, router, http.MethodPost, "/user/"+id+"/scan/HQR-GOLD", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	scan := decode[dto.ScanResponse](t, w)
	require.NotNil(t, scan.Change)
	assert.Equal(t, int64(30), scan.Change.Balance)

	// Single-use code
	w = do(t, router, http.MethodPost, "/user/"+id+"/scan/HQR-GOLD", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, router, http.MethodPost, "/user/"+id+"/missions/social_butterfly/0/claim", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	claim := decode[dto.MissionClaimResponse](t, w)
	assert.Equal(t, "Name Game", claim.Mission.Title)
	assert.Equal(t, int64(33), claim.Change.Balance)

	w = do(t, router, http.MethodPost, "/user/"+id+"/missions/social_butterfly/0/claim", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, router, http.MethodPost, "/user/"+id+"/risk-card", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	draw := decode[dto.RiskDrawResponse](t, w)
	assert.NotEmpty(t, draw.Card.ID)
	require.NotNil(t, draw.Change)
	assert.GreaterOrEqual(t, draw.Change.Balance, int64(0))
}

func TestHiddenCodeRescansKeepSharedSlots(t *testing.T) {
	router := newRouter(t, nil)
	first := register(t, router, "Gina")

	// HQR-PLANT allows four scans in total
	w := do(t, router, http.MethodPost, "/user/"+first+"/scan/HQR-PLANT", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	for i := 0; i < 3; i++ {
		w = do(t, router, http.MethodPost, "/user/"+first+"/scan/HQR-PLANT", nil)
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, errs.CodeAlreadyClaimed, decode[dto.ErrorResponse](t, w).Code)
	}

	for _, name := range []string{"Hank", "Iris", "Jon"} {
		id := register(t, router, name)
		w = do(t, router, http.MethodPost, "/user/"+id+"/scan/HQR-PLANT", nil)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	late := register(t, router, "Kim")
	w = do(t, router, http.MethodPost, "/user/"+late+"/scan/HQR-PLANT", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, errs.CodeScanLimitReached, decode[dto.ErrorResponse](t, w).Code)
}

func TestTraitCatalogRoutes(t *testing.T) {
	router := newRouter(t, nil)

	w := do(t, router, http.MethodGet, "/traits", nil)
	require.Equal(t, http.StatusOK, w.Code)
	traits := decode[[]dto.TraitDTO](t, w)
	assert.NotEmpty(t, traits)

	w = do(t, router, http.MethodGet, "/traits/daredevil/missions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	missions := decode[[]dto.MissionDTO](t, w)
	require.NotEmpty(t, missions)
	assert.Equal(t, 0, missions[0].Index)
	assert.True(t, missions[0].RequiresConfirmation)
}

func TestGameRoutesAreRateLimited(t *testing.T) {
	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}, logger.NewNoopLogger())
	router := newRouter(t, limiter)
	id := register(t, router, "Eve")

	w := do(t, router, http.MethodPost, "/user/"+id+"/risk-card", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodPost, "/user/"+id+"/risk-card", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Balance reads are not throttled
	w = do(t, router, http.MethodGet, "/user/"+id+"/balance", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	router := newRouter(t, nil)
	register(t, router, "Frank")

	w := do(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `partybank_http_requests_total{method="POST",path="/user",status="201"} 1`)
}
