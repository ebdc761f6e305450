package model

import "time"

// SettingsID is the primary key of the single AppConfig row
const SettingsID = 1

// AppConfig holds the process-wide cost parameters
type AppConfig struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	ExchangeRate float64   `gorm:"type:double precision;not null" json:"exchangeRate"`
	CourierRate  float64   `gorm:"type:double precision;not null" json:"courierRate"` // per unit of weight
	Packaging    float64   `gorm:"type:double precision;not null" json:"packaging"`   // fixed fee per unit
	UpdatedAt    time.Time `json:"-"`
}

// DefaultAppConfig returns the configuration used before any update
func DefaultAppConfig() AppConfig {
	return AppConfig{
		ExchangeRate: 60.5,
		CourierRate:  250.0,
		Packaging:    50.0,
	}
}
