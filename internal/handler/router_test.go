//go:build unit

package handler_test

import (
	"net/http"
	"testing"

	"payment-intention-service/internal/handler"
	"payment-intention-service/internal/handler/api"
	"payment-intention-service/internal/handler/middleware"
	"payment-intention-service/internal/pkg/config"
	"payment-intention-service/internal/pkg/metrics"
	"payment-intention-service/tests/common/builder"
	"payment-intention-service/tests/common/httptest"
	"payment-intention-service/tests/common/testutil"
	commandsmock "payment-intention-service/tests/mock/commands"
	queriesmock "payment-intention-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RouterTestSuite struct {
	suite.Suite
	engine   *gin.Engine
	metrics  *metrics.Metrics
	commands *commandsmock.MockPaymentIntentionCommands
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(s.T())
	s.commands = commandsmock.NewMockPaymentIntentionCommands(ctrl)
	queries := queriesmock.NewMockPaymentIntentionQueries(ctrl)

	cfg := config.NewTestConfig()
	reg := prometheus.NewRegistry()
	s.metrics = metrics.New(reg)
	s.engine = gin.New()

	handler.NewRouter(s.engine, cfg, middleware.NewLogger(cfg.Log), s.metrics, reg,
		api.NewPaymentIntentionHandler(s.commands, queries))
	s.engine.GET("/boom", func(*gin.Context) { panic("boom") })
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.engine, http.MethodGet, "/health", nil)

	var body map[string]string
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("ok", body["status"])
}

func (s *RouterTestSuite) TestRequestID() {
	s.Run("incoming id is echoed", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.engine, http.MethodGet, "/health", nil,
			map[string]string{"X-Request-ID": "req-123"})

		httptest.AssertHeaders(s.T(), rec, map[string]string{"X-Request-ID": "req-123"})
	})

	s.Run("missing id is generated", func() {
		rec := httptest.PerformRequest(s.T(), s.engine, http.MethodGet, "/health", nil)

		s.NotEmpty(rec.Header().Get("X-Request-ID"))
	})
}

func (s *RouterTestSuite) TestPanicRecovery() {
	rec := httptest.PerformRequest(s.T(), s.engine, http.MethodGet, "/boom", nil)

	httptest.AssertErrorCode(s.T(), rec, http.StatusInternalServerError, "INTERNAL")
}

func (s *RouterTestSuite) TestMetrics() {
	b := builder.NewPaymentIntentionBuilder()
	s.commands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(b.BuildDomain(), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.engine, http.MethodPost, "/api/payments",
		testutil.DtoMap(s.T(), b.BuildCreateRequestDTO(), testutil.Field("value", 150.25)))
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	s.Equal(1, promtest.CollectAndCount(s.metrics.RequestDuration))

	rec = httptest.PerformRequest(s.T(), s.engine, http.MethodGet, "/metrics", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `payment_intention_http_request_duration_seconds_count{method="POST",route="/api/payments",status="201"} 1`)
}
