package model

import "time"

// OptFloat is an indicator value that may be undefined during an indicator's
// warm-up window. An invalid value never participates in comparisons; callers
// must check Valid before reading Value.
type OptFloat struct {
	Value float64
	Valid bool
}

// Float returns a defined OptFloat.
func Float(v float64) OptFloat { return OptFloat{Value: v, Valid: true} }

// Undefined returns an OptFloat carrying no value.
func Undefined() OptFloat { return OptFloat{} }

// IndicatorRow holds all computed indicators for one trading day,
// index-aligned with the source price series.
type IndicatorRow struct {
	Time       time.Time
	Close      float64
	SMA20      OptFloat
	SMA50      OptFloat
	RSI14      OptFloat
	MACD       OptFloat
	MACDSignal OptFloat
}
