package rest

import (
	"net/http"
	"strings"
	"testing"

	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/config"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/domain"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/metrics"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/mocks"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/testutils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	clientes := new(mocks.MockClienteRepository)
	produtos := new(mocks.MockProdutoRepository)
	db := new(mocks.MockPinger)
	registry := prometheus.NewRegistry()

	router := SetupRouter(testutils.TestLogger(t), registry, Dependencies{
		Clientes: clientes,
		Produtos: produtos,
		DB:       db,
		Metrics:  metrics.NewAPIMetrics(registry),
	})

	clientes.On("GetAll", mock.Anything).Return([]domain.Cliente{}, nil).Once()
	produtos.On("GetByID", mock.Anything, int64(999999)).Return(nil, domain.ErrNotFound).Once()
	db.On("Ping", mock.Anything).Return(nil).Once()

	resp := testutils.MakeRequest(t, router, http.MethodGet, "/", nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	resp = testutils.MakeRequest(t, router, http.MethodGet, "/cliente", nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)
	assert.NotEmpty(t, resp.Header().Get("X-Request-ID"))

	resp = testutils.MakeRequest(t, router, http.MethodGet, "/produto/999999", nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)
	testutils.RequireMessage(t, resp, "Produto não encontrado.")

	resp = testutils.MakeRequest(t, router, http.MethodGet, "/health", nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	resp = testutils.MakeRequest(t, router, http.MethodGet, "/metrics", nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)
	body := resp.Body.String()
	assert.True(t, strings.Contains(body, `http_requests_total{method="GET",path="/produto/:id",status="404"} 1`), body)
	assert.Contains(t, body, `resource_operations_total{operation="list",resource="cliente",result="success"} 1`)

	clientes.AssertExpectations(t)
	produtos.AssertExpectations(t)
	db.AssertExpectations(t)
}

func TestNewServer(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Host: "127.0.0.1", Port: "3000", ReadTimeout: 5, WriteTimeout: 5}}
	srv := NewServer(gin.New(), cfg, testutils.TestLogger(t))

	assert.Equal(t, "127.0.0.1:3000", srv.Addr())
}
