package calculator

import "SignalScout/internal/model"

// SMASeries computes the simple moving average of closes over the given
// period for every index. Indices with fewer than period observations are
// undefined.
func SMASeries(closes []float64, period int) []model.OptFloat {
	out := make([]model.OptFloat, len(closes))
	if period <= 0 {
		return out
	}
	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= period {
			sum -= closes[i-period]
		}
		if i >= period-1 {
			out[i] = model.Float(sum / float64(period))
		}
	}
	return out
}
