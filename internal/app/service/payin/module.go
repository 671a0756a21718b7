package payin

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	notificationlog "github.com/fatflowers/payin-gateway/internal/app/service/notification_log"
	"github.com/fatflowers/payin-gateway/internal/app/service/order"
	"github.com/fatflowers/payin-gateway/internal/app/service/payment"
	cfgpkg "github.com/fatflowers/payin-gateway/pkg/config"
)

// Module exposes the redirect builder and notification processor via Fx.
var Module = fx.Options(
	fx.Provide(NewRedirectBuilder),
	fx.Provide(func(cfg *cfgpkg.Config, orders *order.Service, payments *payment.Service, audit *notificationlog.Service, log *zap.SugaredLogger) *Processor {
		return NewProcessor(cfg, orders, payments, audit, log)
	}),
)
