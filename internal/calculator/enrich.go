// Package calculator computes technical indicators over a daily price
// series. Values inside an indicator's warm-up window are left undefined so
// downstream comparisons can skip them instead of reading a placeholder.
package calculator

import "SignalScout/internal/model"

const (
	smaFastWindow = 20
	smaSlowWindow = 50
	rsiWindow     = 14
	macdFast      = 12
	macdSlow      = 26
	macdSignal    = 9
)

// Enrich computes SMA(20), SMA(50), RSI(14) and MACD(12,26) with its signal
// line for every point of the series. The result has the same length as the
// input and is index aligned with it. It never fails; short series simply
// yield undefined indicator values.
func Enrich(points []model.PricePoint) []model.IndicatorRow {
	closes := extractCloses(points)

	sma20 := SMASeries(closes, smaFastWindow)
	sma50 := SMASeries(closes, smaSlowWindow)
	rsi := RSISeries(closes, rsiWindow)
	macd, signal := MACDSeries(closes, macdFast, macdSlow, macdSignal)

	rows := make([]model.IndicatorRow, len(points))
	for i, p := range points {
		rows[i] = model.IndicatorRow{
			Time:       p.Time,
			Close:      p.Close,
			SMA20:      sma20[i],
			SMA50:      sma50[i],
			RSI14:      rsi[i],
			MACD:       macd[i],
			MACDSignal: signal[i],
		}
	}
	return rows
}

func extractCloses(points []model.PricePoint) []float64 {
	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.Close
	}
	return closes
}
