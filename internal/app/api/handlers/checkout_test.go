package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/fatflowers/payin-gateway/internal/app/service/payin"
	"github.com/fatflowers/payin-gateway/internal/models"
	cfgpkg "github.com/fatflowers/payin-gateway/pkg/config"
)

func checkoutTestRouter(orders *stubOrderLookup) *gin.Engine {
	cfg := &cfgpkg.Config{
		Payin: cfgpkg.PayinConfig{
			APIToken:               "token-123",
			AgentID:                "42",
			AgentName:              "Test Shop",
			OrderIDPrefix:          "Order #",
			CustomerPhoneFieldName: "field_customer_phone",
			Mode:                   cfgpkg.GatewayModeTest,
			SuccessURL:             "https://shop.example/return",
			FailURL:                "https://shop.example/cancel",
		},
	}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	builder := payin.NewRedirectBuilder(cfg, zap.NewNop().Sugar())
	r.POST("/api/v1/checkout/:order_id/redirect", ApiCheckoutRedirect(orders, builder))
	return r
}

func TestApiCheckoutRedirect_RendersProviderForm(t *testing.T) {
	orders := &stubOrderLookup{orders: map[string]*models.Order{
		"1001": {
			ID:       "1001",
			Email:    "buyer@example.com",
			Amount:   decimal.RequireFromString("99.90"),
			Currency: "RUB",
			Profile: &models.Profile{
				Fields: datatypes.JSONMap{"field_customer_phone": "+7 (900) 123-45-67"},
			},
		},
	}}
	r := checkoutTestRouter(orders)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/1001/redirect", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	require.Contains(t, body, `action="https://dev1.payin-payout.net"`)
	require.Contains(t, body, `name="agentId" value="42"`)
	require.Contains(t, body, `name="phone" value="+79001234567"`)
	require.Contains(t, body, `name="goods" value="Order #1001"`)
	require.Contains(t, body, `name="currency" value="RUR"`)
	require.Contains(t, body, `name="sign"`)
}

func TestApiCheckoutRedirect_UnknownOrder(t *testing.T) {
	r := checkoutTestRouter(&stubOrderLookup{orders: map[string]*models.Order{}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/9999/redirect", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "order not found")
}
