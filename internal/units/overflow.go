// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// overflow.go - Explicit overflow policies for unsigned arithmetic.
//
// Go integer arithmetic wraps silently. Every call site that can
// overflow picks one of three behaviors instead of inheriting that
// default: reject (error), clamp (saturate at MaxUint64), or wrap
// (keep the native semantics, stated out loud).
package units

import (
	"errors"
	"math"
	"math/bits"
)

// ErrOverflow is returned by Reject-policy arithmetic when the result
// does not fit in uint64.
var ErrOverflow = errors.New("arithmetic overflow")

// OverflowPolicy selects what happens when a result exceeds uint64.
type OverflowPolicy int

const (
	// OverflowReject returns ErrOverflow.
	OverflowReject OverflowPolicy = iota
	// OverflowClamp saturates at math.MaxUint64.
	OverflowClamp
	// OverflowWrap keeps the low 64 bits (native Go behavior).
	OverflowWrap
)

// String returns the policy name.
func (p OverflowPolicy) String() string {
	switch p {
	case OverflowReject:
		return "reject"
	case OverflowClamp:
		return "clamp"
	case OverflowWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// CheckedMul multiplies a*b under the given policy. The bool reports
// whether the mathematical result fit without intervention.
func CheckedMul(a, b uint64, policy OverflowPolicy) (uint64, bool, error) {
	hi, lo := bits.Mul64(a, b)
	if hi == 0 {
		return lo, true, nil
	}
	switch policy {
	case OverflowClamp:
		return math.MaxUint64, false, nil
	case OverflowWrap:
		return lo, false, nil
	default:
		return 0, false, ErrOverflow
	}
}

// CheckedPow computes base^exp under the given policy via binary
// exponentiation. The bool reports whether the exact result fit.
// 0^0 is 1 by convention.
func CheckedPow(base uint64, exp uint, policy OverflowPolicy) (uint64, bool, error) {
	result := uint64(1)
	fit := true
	b := base
	e := exp
	for e > 0 {
		if e&1 == 1 {
			r, ok, err := CheckedMul(result, b, policy)
			if err != nil {
				return 0, false, err
			}
			fit = fit && ok
			result = r
		}
		e >>= 1
		if e == 0 {
			break
		}
		nb, ok, err := CheckedMul(b, b, policy)
		if err != nil {
			// The square overflowed but no further multiply was
			// needed only when e became 0, handled above. Here a
			// multiply is still pending, so the result overflows.
			return 0, false, err
		}
		fit = fit && ok
		b = nb
	}
	// Once any intermediate clamped, the final value is pinned at the
	// saturation point rather than some wrapped residue.
	if policy == OverflowClamp && !fit {
		return math.MaxUint64, false, nil
	}
	return result, fit, nil
}
