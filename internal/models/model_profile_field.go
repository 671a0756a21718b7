package models

import "time"

// ProfileField is a field definition for a profile bundle. The gateway
// configuration names one of these as the customer phone field; startup
// validation checks the name actually exists.
type ProfileField struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	Bundle    string    `gorm:"column:bundle;type:varchar(64);not null;uniqueIndex:unique_profile_field_bundle_name,priority:1" json:"bundle"`
	Name      string    `gorm:"column:name;type:varchar(64);not null;uniqueIndex:unique_profile_field_bundle_name,priority:2" json:"name"`
	Label     string    `gorm:"column:label;type:varchar(255)" json:"label"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProfileField) TableName() string { return "profile_field" }
