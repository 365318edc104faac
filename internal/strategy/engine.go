// Package strategy derives a buy decision from the most recent two rows of
// an indicator series. Evaluation is pure: identical input always yields an
// identical decision, and no history beyond two rows is consulted.
package strategy

import (
	"math"

	"SignalScout/internal/model"
)

const (
	// rsiOversold is the recovery threshold: RSI strictly below it yesterday
	// and at or above it today counts as an oversold recovery.
	rsiOversold = 30.0

	// minFlagsToTrigger is how many of the three conditions must fire.
	minFlagsToTrigger = 2
)

// Evaluate compares the last two rows of the series and returns the buy
// decision. A series shorter than two rows yields the zero decision (not
// triggered, no evaluation date, zero confidence). A flag referencing an
// undefined indicator value on either row is false, never an error.
func Evaluate(rows []model.IndicatorRow) model.SignalDecision {
	if len(rows) < 2 {
		return model.SignalDecision{}
	}
	prev := rows[len(rows)-2]
	cur := rows[len(rows)-1]

	flags := model.SignalFlags{
		SMACrossover:  crossedAbove(prev.SMA20, prev.SMA50, cur.SMA20, cur.SMA50),
		RSIRecovery:   recoveredAbove(prev.RSI14, cur.RSI14, rsiOversold),
		MACDCrossover: crossedAbove(prev.MACD, prev.MACDSignal, cur.MACD, cur.MACDSignal),
	}
	n := flags.Count()

	return model.SignalDecision{
		Triggered:  n >= minFlagsToTrigger,
		AsOf:       cur.Time,
		Flags:      flags,
		Confidence: int(math.Round(100.0 * float64(n) / 3.0)),
	}
}

// crossedAbove reports whether series a crossed from strictly below series b
// to strictly above it between the previous and current row. Equality on
// either side never counts as a crossover.
func crossedAbove(prevA, prevB, curA, curB model.OptFloat) bool {
	if !prevA.Valid || !prevB.Valid || !curA.Valid || !curB.Valid {
		return false
	}
	return prevA.Value < prevB.Value && curA.Value > curB.Value
}

// recoveredAbove reports whether the value was strictly below the threshold
// on the previous row and at or above it on the current row.
func recoveredAbove(prev, cur model.OptFloat, threshold float64) bool {
	if !prev.Valid || !cur.Valid {
		return false
	}
	return prev.Value < threshold && cur.Value >= threshold
}
