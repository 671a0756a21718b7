package payin

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fatflowers/payin-gateway/internal/models"
	cfgpkg "github.com/fatflowers/payin-gateway/pkg/config"
)

const (
	apiURLLive = "https://lk.payin-payout.net/api/shop"
	apiURLTest = "https://dev1.payin-payout.net"
)

// agentTimeLayout renders "14:05:09 31.12.2024". The provider recomputes
// the signature from this exact string, so the format is part of the wire
// contract.
const agentTimeLayout = "15:04:05 02.01.2006"

// Field is a single form field of the redirect payload. Order matters:
// fields are submitted in the sequence the provider documents.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RedirectPayload is everything the checkout page needs to POST the
// customer to the provider.
type RedirectPayload struct {
	URL    string  `json:"url"`
	Method string  `json:"method"`
	Fields []Field `json:"fields"`
}

// RedirectBuilder assembles the signed payload that sends a customer to
// Payin-Payout for an order.
type RedirectBuilder struct {
	cfg    *cfgpkg.Config
	Logger *zap.SugaredLogger
}

func NewRedirectBuilder(cfg *cfgpkg.Config, log *zap.SugaredLogger) *RedirectBuilder {
	return &RedirectBuilder{cfg: cfg, Logger: log}
}

// Build produces the redirect payload for an order. The caller supplies the
// current time; agentTime is derived from it and covered by the signature.
func (b *RedirectBuilder) Build(ctx context.Context, o *models.Order, now time.Time) (*RedirectPayload, error) {
	if o == nil {
		return nil, fmt.Errorf("order is nil")
	}

	gw := b.cfg.Payin
	var apiURL string
	switch gw.Mode {
	case cfgpkg.GatewayModeTest:
		apiURL = apiURLTest
	case cfgpkg.GatewayModeLive:
		apiURL = apiURLLive
	default:
		return nil, fmt.Errorf("unknown gateway mode %q", gw.Mode)
	}

	phone := FormatPhone(o.Profile.FieldValue(gw.CustomerPhoneFieldName))
	agentTime := now.Format(agentTimeLayout)
	amount := o.Amount.String()

	// Outbound signature order is fixed by the provider and differs from
	// the notify callback's order.
	sign := Sign([]string{gw.AgentID, o.ID, agentTime, amount, phone}, gw.APIToken)

	payload := &RedirectPayload{
		URL:    apiURL,
		Method: "POST",
		Fields: []Field{
			{Name: "agentId", Value: gw.AgentID},
			{Name: "agentName", Value: gw.AgentName},
			{Name: "orderId", Value: o.ID},
			{Name: "amount", Value: amount},
			{Name: "email", Value: o.Email},
			{Name: "phone", Value: phone},
			{Name: "agentTime", Value: agentTime},
			{Name: "goods", Value: gw.OrderIDPrefix + o.ID},
			{Name: "currency", Value: CurrencyAlias(o.Currency)},
			{Name: "successUrl", Value: gw.SuccessURL},
			{Name: "failUrl", Value: gw.FailURL},
			{Name: "sign", Value: sign},
		},
	}

	b.Logger.Infow("built payin redirect payload", "order_id", o.ID, "mode", gw.Mode, "amount", amount)
	return payload, nil
}
