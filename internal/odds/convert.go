// Package odds converts American odds and extracts normalized betting
// opportunities from raw odds payloads.
package odds

import "math"

// Band is the acceptable American odds price band. Prices outside the band
// are discarded at parse time.
type Band struct {
	Min int
	Max int
}

// DefaultBand returns the default acceptable price band (-150..+400)
func DefaultBand() Band {
	return Band{Min: -150, Max: 400}
}

// Contains reports whether the price is inside the band. A zero price is
// never acceptable since it cannot be converted.
func (b Band) Contains(odds int) bool {
	return odds != 0 && odds >= b.Min && odds <= b.Max
}

// AmericanToDecimal converts American odds to decimal odds.
// Example: +150 → 2.50, -110 → 1.909
func AmericanToDecimal(odds int) float64 {
	if odds == 0 {
		return 0
	}
	if odds > 0 {
		return float64(odds)/100.0 + 1.0
	}
	return 100.0/math.Abs(float64(odds)) + 1.0
}

// ImpliedProbability returns the implied probability of American odds as a
// percentage. Example: -150 → 60.0, +150 → 40.0
func ImpliedProbability(odds int) float64 {
	if odds == 0 {
		return 0
	}
	if odds > 0 {
		return 100.0 / (float64(odds) + 100.0) * 100.0
	}
	abs := math.Abs(float64(odds))
	return abs / (abs + 100.0) * 100.0
}

// ImpliedFromDecimal returns the implied probability percentage of decimal odds
func ImpliedFromDecimal(decimal float64) float64 {
	if decimal <= 0 {
		return 0
	}
	return 100.0 / decimal
}
