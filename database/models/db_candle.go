package database

import (
	"time"

	"gorm.io/gorm"
)

// Candle is one cached historical bar. Symbol, interval and timestamp
// identify it; re-imports overwrite in place.
type Candle struct {
	gorm.Model
	Symbol    string    `gorm:"uniqueIndex:idx_symbol_interval_ts"`
	Interval  string    `gorm:"uniqueIndex:idx_symbol_interval_ts"`
	Timestamp time.Time `gorm:"uniqueIndex:idx_symbol_interval_ts"`
	Open      float64   `gorm:"type:decimal(20,8);"`
	High      float64   `gorm:"type:decimal(20,8);"`
	Low       float64   `gorm:"type:decimal(20,8);"`
	Close     float64   `gorm:"type:decimal(20,8);"`
	Volume    int64
}
