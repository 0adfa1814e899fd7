package models

import "time"

// OptionType is the contract kind sold by a signal
type OptionType string

const (
	OptionTypeCE OptionType = "CE"
	OptionTypePE OptionType = "PE"
)

// SignalID identifies one of the eight weekly pattern rules
type SignalID string

const (
	SignalS1 SignalID = "S1"
	SignalS2 SignalID = "S2"
	SignalS3 SignalID = "S3"
	SignalS4 SignalID = "S4"
	SignalS5 SignalID = "S5"
	SignalS6 SignalID = "S6"
	SignalS7 SignalID = "S7"
	SignalS8 SignalID = "S8"
)

// Signal is emitted by the detector when a rule matches. Immutable
type Signal struct {
	SignalID      SignalID
	SignalName    string
	Timestamp     time.Time
	Direction     int // 1 bullish, -1 bearish
	OptionType    OptionType
	StrikePrice   float64
	StopLossPrice float64
	Confidence    float64
}
