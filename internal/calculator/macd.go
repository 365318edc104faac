package calculator

import "SignalScout/internal/model"

// MACDSeries computes the MACD line (fast EMA minus slow EMA of close) and
// its signal line (EMA of the MACD line) for every index. The MACD line is
// undefined until the slow EMA is defined; the signal line additionally waits
// for signalPeriod defined MACD values.
func MACDSeries(closes []float64, fastPeriod, slowPeriod, signalPeriod int) (macd, signal []model.OptFloat) {
	wrapped := make([]model.OptFloat, len(closes))
	for i, c := range closes {
		wrapped[i] = model.Float(c)
	}
	fast := EMASeries(wrapped, fastPeriod)
	slow := EMASeries(wrapped, slowPeriod)

	macd = make([]model.OptFloat, len(closes))
	for i := range closes {
		if fast[i].Valid && slow[i].Valid {
			macd[i] = model.Float(fast[i].Value - slow[i].Value)
		}
	}
	signal = EMASeries(macd, signalPeriod)
	return macd, signal
}
