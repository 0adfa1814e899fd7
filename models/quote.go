package models

import "time"

// Quote is a typed option quote at the provider boundary
type Quote struct {
	Price        float64
	Volume       int64
	OpenInterest int64
	Timestamp    time.Time
}
