package app

import (
	"time"

	"github.com/fatflowers/payin-gateway/internal/app/api/server"
	"github.com/fatflowers/payin-gateway/internal/app/service/fieldregistry"
	notificationlog "github.com/fatflowers/payin-gateway/internal/app/service/notification_log"
	"github.com/fatflowers/payin-gateway/internal/app/service/order"
	"github.com/fatflowers/payin-gateway/internal/app/service/payin"
	"github.com/fatflowers/payin-gateway/internal/app/service/payment"
	"github.com/fatflowers/payin-gateway/internal/platform/db"
	"github.com/fatflowers/payin-gateway/pkg/config"
	"github.com/fatflowers/payin-gateway/pkg/logger"

	"go.uber.org/fx"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	server.Module,
	order.Module,
	payment.Module,
	notificationlog.Module,
	fieldregistry.Module,
	payin.Module,
)
