package model

import "time"

// PricePoint is a single daily close observation.
type PricePoint struct {
	Time  time.Time
	Close float64
}
