// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// constants.go - Physical and calendar constants used by the estimators.
package units

// =============================================================================
// FUNDAMENTAL PHYSICAL CONSTANTS
// =============================================================================

// BoltzmannConstant relates temperature to energy (exact since the 2019
// SI redefinition). Joules per kelvin.
const BoltzmannConstant = 1.380649e-23

// ElementaryCharge in coulombs (exact since the 2019 SI redefinition).
const ElementaryCharge = 1.602176634e-19

// AvogadroNumber is the number of constituents per mole (exact).
const AvogadroNumber = 6.02214076e23

// RoomTemperatureKelvin is the conventional ambient temperature used for
// the Landauer bound (20 degrees C).
const RoomTemperatureKelvin = 293.15

// Ln2 is the natural log of 2, the per-bit factor in the Landauer bound.
const Ln2 = 0.6931471805599453

// =============================================================================
// CALENDAR AND SCALE CONSTANTS
// =============================================================================

// SecondsPerYear uses the Julian year (365.25 days), the astronomy
// convention for long-duration estimates.
const SecondsPerYear = 365.25 * 24 * 3600

// JoulesPerKilowattHour converts joules to the billing unit humans
// recognize.
const JoulesPerKilowattHour = 3.6e6

// =============================================================================
// CRYPTOGRAPHIC SIZE CONSTANTS
// =============================================================================

// SHA256HashBytes is the digest size of SHA-256.
const SHA256HashBytes = 32

// AES256KeyBytes is the key size of AES-256.
const AES256KeyBytes = 32
