package model

import "time"

// SignalFlags records which of the three buy conditions fired between the
// last two trading days.
type SignalFlags struct {
	SMACrossover  bool
	RSIRecovery   bool
	MACDCrossover bool
}

// Count returns how many flags are set.
func (f SignalFlags) Count() int {
	n := 0
	if f.SMACrossover {
		n++
	}
	if f.RSIRecovery {
		n++
	}
	if f.MACDCrossover {
		n++
	}
	return n
}

// SignalDecision is the final output of the strategy engine.
// AsOf is the evaluation date (the last row's date); its zero value means
// the series was too short to evaluate. Confidence is round(100 * flags / 3).
type SignalDecision struct {
	Triggered  bool
	AsOf       time.Time
	Flags      SignalFlags
	Confidence int
}
