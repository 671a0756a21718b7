package payin

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/fatflowers/payin-gateway/internal/models"
	cfgpkg "github.com/fatflowers/payin-gateway/pkg/config"
)

func redirectTestConfig(mode cfgpkg.GatewayMode) *cfgpkg.Config {
	return &cfgpkg.Config{
		Payin: cfgpkg.PayinConfig{
			APIToken:               "token-123",
			AgentID:                "42",
			AgentName:              "Test Shop",
			OrderIDPrefix:          "Order #",
			CustomerPhoneFieldName: "field_customer_phone",
			Mode:                   mode,
			SuccessURL:             "https://shop.example/checkout/return",
			FailURL:                "https://shop.example/checkout/cancel",
		},
	}
}

func redirectTestOrder() *models.Order {
	return &models.Order{
		ID:       "1001",
		Email:    "buyer@example.com",
		Amount:   decimal.RequireFromString("99.90"),
		Currency: "RUB",
		Profile: &models.Profile{
			ID:     "p-1",
			Bundle: "customer",
			Fields: datatypes.JSONMap{"field_customer_phone": "+7 (900) 123-45-67"},
		},
	}
}

func fieldValue(t *testing.T, p *RedirectPayload, name string) string {
	t.Helper()
	for _, f := range p.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	t.Fatalf("field %q not found", name)
	return ""
}

func TestRedirectBuilder_Build(t *testing.T) {
	b := NewRedirectBuilder(redirectTestConfig(cfgpkg.GatewayModeTest), zap.NewNop().Sugar())
	o := redirectTestOrder()
	now := time.Date(2024, 12, 31, 14, 5, 9, 0, time.UTC)

	p, err := b.Build(context.Background(), o, now)
	require.NoError(t, err)
	require.Equal(t, "https://dev1.payin-payout.net", p.URL)
	require.Equal(t, "POST", p.Method)

	require.Equal(t, "42", fieldValue(t, p, "agentId"))
	require.Equal(t, "Test Shop", fieldValue(t, p, "agentName"))
	require.Equal(t, "1001", fieldValue(t, p, "orderId"))
	require.Equal(t, o.Amount.String(), fieldValue(t, p, "amount"))
	require.Equal(t, "buyer@example.com", fieldValue(t, p, "email"))
	require.Equal(t, "+79001234567", fieldValue(t, p, "phone"))
	require.Equal(t, "14:05:09 31.12.2024", fieldValue(t, p, "agentTime"))
	require.Equal(t, "Order #1001", fieldValue(t, p, "goods"))
	require.Equal(t, "RUR", fieldValue(t, p, "currency"))
	require.Equal(t, "https://shop.example/checkout/return", fieldValue(t, p, "successUrl"))
	require.Equal(t, "https://shop.example/checkout/cancel", fieldValue(t, p, "failUrl"))

	want := Sign([]string{"42", "1001", "14:05:09 31.12.2024", o.Amount.String(), "+79001234567"}, "token-123")
	require.Equal(t, want, fieldValue(t, p, "sign"))
}

func TestRedirectBuilder_FieldOrder(t *testing.T) {
	b := NewRedirectBuilder(redirectTestConfig(cfgpkg.GatewayModeTest), zap.NewNop().Sugar())

	p, err := b.Build(context.Background(), redirectTestOrder(), time.Now())
	require.NoError(t, err)

	names := make([]string, 0, len(p.Fields))
	for _, f := range p.Fields {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{
		"agentId", "agentName", "orderId", "amount", "email", "phone",
		"agentTime", "goods", "currency", "successUrl", "failUrl", "sign",
	}, names)
}

func TestRedirectBuilder_LiveEndpoint(t *testing.T) {
	b := NewRedirectBuilder(redirectTestConfig(cfgpkg.GatewayModeLive), zap.NewNop().Sugar())

	p, err := b.Build(context.Background(), redirectTestOrder(), time.Now())
	require.NoError(t, err)
	require.Equal(t, "https://lk.payin-payout.net/api/shop", p.URL)
}

func TestRedirectBuilder_UnknownModeRejected(t *testing.T) {
	b := NewRedirectBuilder(redirectTestConfig("sandbox"), zap.NewNop().Sugar())

	_, err := b.Build(context.Background(), redirectTestOrder(), time.Now())
	require.Error(t, err)
	require.Contains(t, err.Error(), "gateway mode")
}

func TestRedirectBuilder_MissingProfilePhone(t *testing.T) {
	b := NewRedirectBuilder(redirectTestConfig(cfgpkg.GatewayModeTest), zap.NewNop().Sugar())
	o := redirectTestOrder()
	o.Profile = nil

	p, err := b.Build(context.Background(), o, time.Now())
	require.NoError(t, err)
	require.Equal(t, "+", fieldValue(t, p, "phone"))
}

func TestRedirectBuilder_NilOrder(t *testing.T) {
	b := NewRedirectBuilder(redirectTestConfig(cfgpkg.GatewayModeTest), zap.NewNop().Sugar())

	_, err := b.Build(context.Background(), nil, time.Now())
	require.Error(t, err)
}
