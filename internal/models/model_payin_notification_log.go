package models

import (
	"time"

	"gorm.io/datatypes"
)

// PayinNotificationLog is the audit row written for every inbound webhook
// call when API logging is enabled. Data holds the raw form payload exactly
// as received, before any validation ran.
type PayinNotificationLog struct {
	ID        string         `gorm:"column:id;type:uuid;primary_key" json:"id"`
	TraceID   string         `gorm:"column:trace_id;type:varchar(128)" json:"trace_id"`
	RemoteID  string         `gorm:"column:remote_id;type:varchar(64)" json:"remote_id"`
	OrderID   string         `gorm:"column:order_id;type:varchar(64)" json:"order_id"`
	Data      datatypes.JSON `gorm:"column:data;type:jsonb" json:"data"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (PayinNotificationLog) TableName() string { return "payin_notification_log" }
