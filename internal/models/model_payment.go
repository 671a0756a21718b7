package models

import "time"

const PaymentStateCompleted = "completed"

// Payment is the record created for a verified, successful payin
// notification. RemoteID is the provider's outputId; the unique index on it
// is what makes duplicate webhook deliveries idempotent. Amount keeps the
// provider's raw decimal string: that is the value the signature covered.
type Payment struct {
	ID          string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	RemoteID    string    `gorm:"column:remote_id;type:varchar(64);not null;uniqueIndex:unique_payment_remote_id" json:"remote_id"`
	RemoteState string    `gorm:"column:remote_state;type:varchar(16);not null" json:"remote_state"`
	OrderID     string    `gorm:"column:order_id;type:varchar(64);not null;index" json:"order_id"`
	Amount      string    `gorm:"column:amount;type:varchar(32);not null" json:"amount"`
	Currency    string    `gorm:"column:currency;type:varchar(8);not null" json:"currency"`
	State       string    `gorm:"column:state;type:varchar(32);not null" json:"state"`
	GatewayMode string    `gorm:"column:gateway_mode;type:varchar(8);not null" json:"gateway_mode"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Payment) TableName() string { return "commerce_payment" }
