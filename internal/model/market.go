package model

import "time"

// PricePoint is a single daily close.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries holds normalized daily closes for one ticker,
// ordered strictly descending by date (newest first).
type PriceSeries struct {
	Ticker string
	Points []PricePoint
}

// Latest returns the most recent point. The series is non-empty by construction.
func (s *PriceSeries) Latest() PricePoint {
	return s.Points[0]
}

// Closes returns closing prices newest first.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}
