package fieldregistry

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fatflowers/payin-gateway/internal/models"
	cfgpkg "github.com/fatflowers/payin-gateway/pkg/config"
)

// Service enumerates the field definitions configured for a profile bundle.
// Only consulted at startup, to check the gateway's phone field setting.
type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List(ctx context.Context, bundle string) ([]*models.ProfileField, error) {
	var out []*models.ProfileField
	if err := s.db.WithContext(ctx).Where("bundle = ?", bundle).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Exists(ctx context.Context, bundle, name string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.ProfileField{}).
		Where("bundle = ? AND name = ?", bundle, name).Count(&n).Error
	return n > 0, err
}

// ValidatePhoneField fails startup when payin.customer_phone_field_name does
// not name a configured customer profile field.
func ValidatePhoneField(l *zap.SugaredLogger, cfg *cfgpkg.Config, s *Service) error {
	ok, err := s.Exists(context.Background(), "customer", cfg.Payin.CustomerPhoneFieldName)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("payin: customer phone field %q is not configured for the customer profile bundle", cfg.Payin.CustomerPhoneFieldName)
	}
	l.Infow("customer phone field validated", "field", cfg.Payin.CustomerPhoneFieldName)
	return nil
}

var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(ValidatePhoneField),
)
