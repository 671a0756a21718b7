package payin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/fatflowers/payin-gateway/internal/app/service/payment"
	"github.com/fatflowers/payin-gateway/internal/models"
	cfgpkg "github.com/fatflowers/payin-gateway/pkg/config"
	"github.com/fatflowers/payin-gateway/pkg/logctx"
)

// AckXML tells the provider the notification was processed and delivery
// retries should stop. Byte-exact per the provider protocol; only a fully
// accepted notification may ever be answered with it.
const AckXML = `<?xml version="1.0" encoding="UTF-8"?><response><result>0</result></response>`

// paymentStatusFailed is the one outcome code treated as failure. The
// protocol defines more codes, but this integration only distinguishes
// failed from not-failed.
const paymentStatusFailed = "2"

var (
	ErrMissingFields = errors.New("notification is missing required fields")
	ErrPaymentFailed = errors.New("provider reported the payment as failed")
	ErrOrderNotFound = errors.New("notification references an unknown order")
	ErrBadSignature  = errors.New("notification signature mismatch")
)

// requiredKeys must all be present before any other check runs.
var requiredKeys = []string{
	"orderId",
	"agentId",
	"amount",
	"paymentId",
	"paymentStatus",
	"paymentDate",
	"outputId",
	"phone",
	"sign",
	"currency",
}

// OrderLookup resolves the order a notification refers to. (nil, nil) means
// no such order.
type OrderLookup interface {
	GetByID(ctx context.Context, id string) (*models.Order, error)
}

// PaymentStore persists payment records. Create returns
// payment.ErrDuplicatePayment when a record with the same remote_id exists.
type PaymentStore interface {
	Create(ctx context.Context, p *models.Payment) error
}

// NotificationAuditor records raw webhook payloads when API logging is on.
type NotificationAuditor interface {
	SaveRaw(ctx context.Context, payload map[string]string)
}

// Processor consumes one Payin-Payout notify callback. Each call is
// independent and stateless; the provider delivers at least once and stops
// only after receiving AckXML.
type Processor struct {
	cfg      *cfgpkg.Config
	orders   OrderLookup
	payments PaymentStore
	audit    NotificationAuditor
	Logger   *zap.SugaredLogger
}

func NewProcessor(cfg *cfgpkg.Config, orders OrderLookup, payments PaymentStore, audit NotificationAuditor, log *zap.SugaredLogger) *Processor {
	return &Processor{cfg: cfg, orders: orders, payments: payments, audit: audit, Logger: log}
}

// Process validates one notification payload and, on full success, creates
// a completed payment record. A nil return means the caller must answer
// with AckXML; any error means the ack must be withheld so the provider
// keeps retrying.
//
// Checks run strictly in order and short-circuit: required keys, provider
// outcome, order existence, signature.
func (p *Processor) Process(ctx context.Context, payload map[string]string) error {
	log := logctx.FromCtx(ctx, p.Logger)

	// Raw payload is recorded before any validation when API logging is on.
	if p.cfg.Payin.APILogging {
		log.Debugw("payin notify request", "payload", payload)
		p.audit.SaveRaw(ctx, payload)
	}

	missing := lo.Filter(requiredKeys, func(k string, _ int) bool {
		_, ok := payload[k]
		return !ok
	})
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	if payload["paymentStatus"] == paymentStatusFailed {
		log.Warnw("payin payment failed", "output_id", payload["outputId"])
		return fmt.Errorf("%w: outputId %s", ErrPaymentFailed, payload["outputId"])
	}

	o, err := p.orders.GetByID(ctx, payload["orderId"])
	if err != nil {
		return fmt.Errorf("failed to look up order: %w", err)
	}
	if o == nil {
		return fmt.Errorf("%w: %s", ErrOrderNotFound, payload["orderId"])
	}

	// Inbound signature order is dictated by the provider and is not the
	// same as the redirect payload's order.
	expected := Sign([]string{
		payload["agentId"],
		payload["orderId"],
		payload["paymentId"],
		payload["amount"],
		payload["phone"],
		payload["paymentStatus"],
		payload["paymentDate"],
	}, p.cfg.Payin.APIToken)
	if payload["sign"] != expected {
		return fmt.Errorf("%w: outputId %s", ErrBadSignature, payload["outputId"])
	}

	record := &models.Payment{
		RemoteID:    payload["outputId"],
		RemoteState: payload["paymentStatus"],
		OrderID:     payload["orderId"],
		Amount:      payload["amount"],
		Currency:    CurrencyAlias(payload["currency"]),
		State:       models.PaymentStateCompleted,
		GatewayMode: string(p.cfg.Payin.Mode),
	}
	if err := p.payments.Create(ctx, record); err != nil {
		if errors.Is(err, payment.ErrDuplicatePayment) {
			// Re-delivered notification for a payment we already hold.
			// Ack so the provider stops retrying.
			log.Infow("payin notification replayed", "output_id", record.RemoteID)
			return nil
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}

	log.Infow("payin payment recorded",
		"output_id", record.RemoteID,
		"order_id", record.OrderID,
		"amount", record.Amount,
		"currency", record.Currency,
	)
	return nil
}
