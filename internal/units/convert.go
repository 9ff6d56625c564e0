// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// convert.go - Bounds-checked conversions between physical units.
package units

import (
	"fmt"
	"math"
)

// LandauerEnergyJoules returns the minimum thermodynamic energy, in
// joules, required to perform 2^log2Ops irreversible bit operations at
// the given temperature: E = 2^log2Ops * kT * ln 2.
//
// Working in log2 space keeps the function usable far past uint64
// range (a 94-character alphabet overflows integers around length 10).
// Returns +Inf when the energy exceeds float64 range; callers render
// that as "beyond physical limits" rather than a number.
func LandauerEnergyJoules(log2Ops float64, temperatureKelvin float64) (float64, error) {
	if temperatureKelvin <= 0 {
		return 0, fmt.Errorf("temperature %.2f K is not above absolute zero", temperatureKelvin)
	}
	if log2Ops < 0 {
		return 0, fmt.Errorf("operation count exponent must be non-negative, got %.2f", log2Ops)
	}
	perOp := BoltzmannConstant * temperatureKelvin * Ln2
	return math.Exp2(log2Ops) * perOp, nil
}

// JoulesToKilowattHours converts joules to kWh. Rejects non-finite
// input so +Inf energy markers never masquerade as real quantities.
func JoulesToKilowattHours(joules float64) (float64, error) {
	if math.IsNaN(joules) || math.IsInf(joules, 0) {
		return 0, fmt.Errorf("energy value is not finite")
	}
	if joules < 0 {
		return 0, fmt.Errorf("energy cannot be negative: %g J", joules)
	}
	return joules / JoulesPerKilowattHour, nil
}

// SecondsToYears converts a duration in seconds to Julian years.
func SecondsToYears(seconds float64) float64 {
	return seconds / SecondsPerYear
}

// Log2SecondsToYears converts a duration expressed as log2(seconds)
// into years, clamping to +Inf instead of producing NaN for huge
// exponents. Used when the combination count is only known in log space.
func Log2SecondsToYears(log2Seconds float64) float64 {
	// Exp2 overflows to +Inf past ~2^1024; that is the desired clamp.
	return math.Exp2(log2Seconds) / SecondsPerYear
}
