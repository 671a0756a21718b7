package notification_log

import (
	"context"
	"encoding/json"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fatflowers/payin-gateway/internal/models"
	"github.com/fatflowers/payin-gateway/pkg/logctx"
	"github.com/fatflowers/payin-gateway/pkg/tool"
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func New(db *gorm.DB, log *zap.SugaredLogger) *Service { return &Service{db: db, log: log} }

// SaveRaw asynchronously persists the raw webhook payload for audit. Runs
// before any validation, so the keys may be anything the caller sent.
func (s *Service) SaveRaw(ctx context.Context, payload map[string]string) {
	var traceID string
	if tid, ok := ctx.Value("traceID").(string); ok {
		traceID = tid
	}
	go func() {
		data, err := json.Marshal(payload)
		if err != nil {
			s.log.Errorf("failed to marshal notification payload: %v", err)
			return
		}
		entry := &models.PayinNotificationLog{
			ID:       tool.GenerateUUIDV7(),
			TraceID:  traceID,
			RemoteID: payload["outputId"],
			OrderID:  payload["orderId"],
			Data:     datatypes.JSON(data),
		}
		if err := s.db.Save(entry).Error; err != nil {
			logctx.FromCtx(ctx, s.log).Errorf("failed to save notification log: %v", err)
		}
	}()
}

var Module = fx.Options(
	fx.Provide(New),
)
