package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the commerce order a redirect payload is built for and the
// entity a payin notification is matched against. This service only reads
// orders; checkout owns their lifecycle.
type Order struct {
	ID        string          `gorm:"column:id;type:varchar(64);primary_key" json:"id"`
	Email     string          `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Amount    decimal.Decimal `gorm:"column:amount;type:numeric(18,2);not null" json:"amount"`
	Currency  string          `gorm:"column:currency;type:varchar(8);not null" json:"currency"`
	ProfileID *string         `gorm:"column:profile_id;type:varchar(64)" json:"profile_id"`
	Profile   *Profile        `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Order) TableName() string { return "commerce_order" }
