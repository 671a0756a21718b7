package order

import (
	"context"
	"errors"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fatflowers/payin-gateway/internal/models"
	"github.com/fatflowers/payin-gateway/pkg/logctx"
)

// Service reads commerce orders. Orders are owned by the checkout pipeline;
// this gateway only looks them up.
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func New(db *gorm.DB, log *zap.SugaredLogger) *Service { return &Service{db: db, log: log} }

// GetByID loads an order with its billing profile. Returns (nil, nil) when
// the order does not exist.
func (s *Service) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	err := s.db.WithContext(ctx).Preload("Profile").First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logctx.FromCtx(ctx, s.log).Errorf("failed to load order %s: %v", id, err)
		return nil, err
	}
	return &o, nil
}

var Module = fx.Options(
	fx.Provide(New),
)
