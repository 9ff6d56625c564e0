// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// bruteforce.go - Exhaustive-search cost estimation.
package analyzer

import (
	"math"

	"github.com/jeranaias/passrun-tui/internal/units"
)

// UncrackableYears is the cutoff past which an estimate is reported as
// effectively uncrackable (1000x the age of the universe).
const UncrackableYears = 1.4e13

// BruteForce describes the cost of exhausting the password space.
//
// Combinations saturates at MaxUint64 (Saturated=true) instead of
// wrapping: a wrapped count would report a tiny, attacker-favorable
// crack time. Time and energy are computed in log2 space so they stay
// meaningful long after the integer count saturates.
type BruteForce struct {
	// Combinations is alphabet^length, saturated at MaxUint64.
	Combinations uint64 `json:"combinations"`
	// Saturated reports that the true count exceeds uint64.
	Saturated bool `json:"saturated"`
	// AttemptsPerSecond is the modeled guess rate used below.
	AttemptsPerSecond uint64 `json:"attempts_per_second"`
	// SecondsToCrack is the average-case search time (half the space).
	// Clamped to MaxFloat64 when Uncrackable.
	SecondsToCrack float64 `json:"seconds_to_crack"`
	// YearsToCrack is SecondsToCrack in Julian years, same clamp.
	YearsToCrack float64 `json:"years_to_crack"`
	// Uncrackable marks estimates beyond UncrackableYears.
	Uncrackable bool `json:"uncrackable"`
	// EnergyKWh is the Landauer-bound minimum energy to enumerate the
	// space at room temperature, in kilowatt hours. Clamped to
	// MaxFloat64 with EnergyBeyondLimits set when it overflows float64.
	EnergyKWh          float64 `json:"energy_kwh"`
	EnergyBeyondLimits bool    `json:"energy_beyond_limits"`
}

// EstimateBruteForce computes the exhaustive-search cost for a space of
// alphabetSize^length candidates at the given guess rate.
//
// The average-case divisor of 2 models an attacker finding the target
// halfway through the space. spaceEntropy (= length*log2(alphabet)) is
// passed in so the log2-space math agrees exactly with the entropy
// stage.
func EstimateBruteForce(alphabetSize, length int, spaceEntropy float64, attemptsPerSecond uint64) BruteForce {
	est := BruteForce{AttemptsPerSecond: attemptsPerSecond}
	if alphabetSize < 1 || length < 1 || attemptsPerSecond == 0 {
		return est
	}

	// Integer count with explicit saturation. Wrapping is the one
	// policy this call site must never use.
	combos, exact, err := units.CheckedPow(uint64(alphabetSize), uint(length), units.OverflowClamp)
	if err == nil {
		est.Combinations = combos
		est.Saturated = !exact
	}

	// log2(seconds) = S - 1 - log2(rate); works for any S.
	log2Seconds := spaceEntropy - 1 - math.Log2(float64(attemptsPerSecond))
	years := units.Log2SecondsToYears(log2Seconds)
	seconds := years * units.SecondsPerYear

	if math.IsInf(years, 1) || years > UncrackableYears {
		est.Uncrackable = true
	}
	// Reports carry finite numbers only.
	if math.IsInf(seconds, 1) {
		seconds = math.MaxFloat64
	}
	if math.IsInf(years, 1) {
		years = math.MaxFloat64
	}
	est.SecondsToCrack = seconds
	est.YearsToCrack = years

	// Thermodynamic floor for enumerating the whole space.
	joules, eerr := units.LandauerEnergyJoules(spaceEntropy, units.RoomTemperatureKelvin)
	if eerr == nil {
		if kwh, kerr := units.JoulesToKilowattHours(joules); kerr == nil {
			est.EnergyKWh = kwh
		} else {
			est.EnergyKWh = math.MaxFloat64
			est.EnergyBeyondLimits = true
		}
	}

	return est
}
