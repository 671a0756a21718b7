package payment

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fatflowers/payin-gateway/internal/models"
	"github.com/fatflowers/payin-gateway/pkg/logctx"
	"github.com/fatflowers/payin-gateway/pkg/tool"
	"github.com/fatflowers/payin-gateway/pkg/types"
)

// ErrDuplicatePayment means a payment with the same remote_id already
// exists. The provider re-delivers notifications; the unique index on
// remote_id turns replays into this error instead of a second record.
var ErrDuplicatePayment = errors.New("payment with this remote_id already exists")

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func New(db *gorm.DB, log *zap.SugaredLogger) *Service { return &Service{db: db, log: log} }

// Create persists a payment record. A unique-constraint violation on
// remote_id is reported as ErrDuplicatePayment.
func (s *Service) Create(ctx context.Context, p *models.Payment) error {
	if p.ID == "" {
		p.ID = tool.GenerateUUIDV7()
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePayment
		}
		logctx.FromCtx(ctx, s.log).Errorf("failed to create payment: %v", err)
		return err
	}
	return nil
}

// ListByOrder returns payments for an order, optionally narrowed by common
// filters, newest first.
func (s *Service) ListByOrder(ctx context.Context, orderID string, filters []*types.CommonFilter) ([]*models.Payment, error) {
	q := s.db.WithContext(ctx).Where("order_id = ?", orderID)
	for _, f := range filters {
		if f != nil {
			q = q.Where(clause.Expression(f))
		}
	}
	var out []*models.Payment
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		logctx.FromCtx(ctx, s.log).Errorf("failed to list payments for order %s: %v", orderID, err)
		return nil, err
	}
	return out, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// pgx surfaces SQLSTATE 23505 for unique violations
	return err != nil && strings.Contains(err.Error(), "23505")
}

var Module = fx.Options(
	fx.Provide(New),
)
