package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile is a customer billing profile. Fields is a free-form map keyed by
// configured field name (see ProfileField); which key holds the phone number
// is decided by gateway configuration, not by the schema.
type Profile struct {
	ID        string            `gorm:"column:id;type:varchar(64);primary_key" json:"id"`
	Bundle    string            `gorm:"column:bundle;type:varchar(64);not null;default:'customer'" json:"bundle"`
	Fields    datatypes.JSONMap `gorm:"column:fields;type:jsonb;default:'{}'" json:"fields"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (Profile) TableName() string { return "profile" }

// FieldValue returns the string value of a configured profile field, or ""
// when the field is absent or not a string.
func (p *Profile) FieldValue(name string) string {
	if p == nil || p.Fields == nil {
		return ""
	}
	if v, ok := p.Fields[name].(string); ok {
		return v
	}
	return ""
}
