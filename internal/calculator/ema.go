package calculator

import "SignalScout/internal/model"

// EMASeries computes the exponential moving average over the defined portion
// of the input. The EMA is seeded with the simple average of the first
// `period` defined values, then follows the alpha = 2/(period+1) recurrence.
// Everything before the seed index is undefined. Accepting an already-optional
// series lets the MACD signal line reuse this over a series with an undefined
// head.
func EMASeries(values []model.OptFloat, period int) []model.OptFloat {
	out := make([]model.OptFloat, len(values))
	if period <= 0 {
		return out
	}

	// Find where the input becomes defined.
	start := -1
	for i, v := range values {
		if v.Valid {
			start = i
			break
		}
	}
	if start < 0 || len(values)-start < period {
		return out
	}

	seedIdx := start + period - 1
	sum := 0.0
	for i := start; i <= seedIdx; i++ {
		sum += values[i].Value
	}
	ema := sum / float64(period)
	out[seedIdx] = model.Float(ema)

	alpha := 2.0 / float64(period+1)
	for i := seedIdx + 1; i < len(values); i++ {
		ema = (values[i].Value-ema)*alpha + ema
		out[i] = model.Float(ema)
	}
	return out
}
